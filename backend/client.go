// Package backend talks to the MIDI-analysis service that parses pieces
// and enriches notes with hand and finger assignments.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"piano-tutor/debug"
	"piano-tutor/tutor"
)

// Difficulty is the backend's rating of a parsed piece.
type Difficulty struct {
	Level      string   `json:"level"`
	Score      float64  `json:"score"`
	TotalNotes int      `json:"total_notes"`
	NoteSpan   int      `json:"note_span"`
	Factors    []string `json:"factors"`
}

// Piece is a parsed and enriched piece ready for the player.
type Piece struct {
	Notes         []tutor.NoteEvent
	Difficulty    *Difficulty
	TotalNotes    int
	HandPositions json.RawMessage
}

// wireNote matches the backend's note JSON.
type wireNote struct {
	Pitch    string  `json:"pitch"`
	Midi     int     `json:"midi"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
	Finger   string  `json:"finger"`
	Hand     string  `json:"hand"`
}

type parseResponse struct {
	Success       bool            `json:"success"`
	Notes         []wireNote      `json:"notes"`
	HandPositions json.RawMessage `json:"hand_positions"`
	Difficulty    *Difficulty     `json:"difficulty"`
	TotalNotes    int             `json:"total_notes"`
	Error         string          `json:"error"`
}

// Client is an HTTP client for the analysis backend.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a client for the given base URL, e.g.
// "http://localhost:5000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// ParseDefault asks the backend to parse its default piece.
func (c *Client) ParseDefault(ctx context.Context) (*Piece, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/parse-midi", nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// ParseFile uploads a MIDI file for parsing.
func (c *Client) ParseFile(ctx context.Context, filename string, r io.Reader) (*Piece, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/parse-midi", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req)
}

// Health probes the backend.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend unhealthy: %s", resp.Status)
	}
	return nil
}

func (c *Client) do(req *http.Request) (*Piece, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parse-midi request: %w", err)
	}
	defer resp.Body.Close()

	var pr parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("parse-midi response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if pr.Error != "" {
			return nil, fmt.Errorf("parse-midi failed: %s", pr.Error)
		}
		return nil, fmt.Errorf("parse-midi failed: %s", resp.Status)
	}

	notes := make([]tutor.NoteEvent, len(pr.Notes))
	for i, wn := range pr.Notes {
		notes[i] = wn.toNote()
	}
	debug.Log("backend", "parsed %d notes", len(notes))
	return &Piece{
		Notes:         notes,
		Difficulty:    pr.Difficulty,
		TotalNotes:    pr.TotalNotes,
		HandPositions: pr.HandPositions,
	}, nil
}

// toNote converts a wire note, recovering missing assignments through the
// local heuristics so the tutorial never shows an unassigned note.
func (wn wireNote) toNote() tutor.NoteEvent {
	n := tutor.NoteEvent{
		PitchName:       wn.Pitch,
		MidiNumber:      wn.Midi,
		OffsetSeconds:   wn.Offset,
		DurationSeconds: wn.Duration,
	}
	switch wn.Hand {
	case string(tutor.HandLeft):
		n.Hand = tutor.HandLeft
	case string(tutor.HandRight):
		n.Hand = tutor.HandRight
	default:
		n.Hand = tutor.AssignHand(wn.Midi)
	}
	if f, ok := tutor.FingerFromLabel(wn.Finger); ok {
		n.Finger = f
	} else {
		n.Finger = tutor.AssignFingerForHand(wn.Midi, n.Hand)
	}
	if n.PitchName == "" {
		n.PitchName = tutor.NoteName(wn.Midi)
	}
	return n
}
