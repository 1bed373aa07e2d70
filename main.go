package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"piano-tutor/backend"
	"piano-tutor/config"
	"piano-tutor/debug"
	"piano-tutor/midifile"
	"piano-tutor/theme"
	"piano-tutor/tui"
	"piano-tutor/tutor"
)

// Rendered keyboard range: C2..C7.
const (
	keyboardLow  = 36
	keyboardHigh = 96
)

func main() {
	if os.Getenv("PIANO_TUTOR_DEBUG") != "" {
		debug.Enable()
		defer debug.Disable()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	th := theme.New(theme.LoadGPLOrDefault(cfg.PalettePath))

	view := tui.NewViewState(keyboardLow, keyboardHigh)
	highlighter := tutor.NewHighlighter(view)
	player := tutor.NewPlayer(tutor.NewClock(), highlighter)
	player.SetSpeed(float64(cfg.UI.LastTempoPercent) / 100)
	if h := tutor.Hand(cfg.UI.VisibleHands); h == tutor.HandLeft || h == tutor.HandRight {
		player.SetVisibleHands(h)
	}

	client := backend.NewClient(cfg.BackendURL)
	load := func() ([]tutor.NoteEvent, string) {
		return loadPiece(cfg, client)
	}

	m := tui.NewModel(player, view, th, load)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// loadPiece tries the configured sources in order: local MIDI file
// (uploaded for analysis when the backend is up, parsed locally otherwise),
// then the backend's default piece, then the built-in demo scale. The
// player is never left without a sequence.
func loadPiece(cfg *config.Config, client *backend.Client) ([]tutor.NoteEvent, string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if cfg.MidiPath != "" {
		notes, source, err := loadMidiPath(ctx, client, cfg.MidiPath)
		if err == nil {
			return notes, source
		}
		debug.Log("load", "midi file %s: %v", cfg.MidiPath, err)
	}

	piece, err := client.ParseDefault(ctx)
	if err == nil && len(piece.Notes) > 0 {
		return piece.Notes, "backend"
	}
	if err != nil {
		debug.Log("load", "backend: %v", err)
	}

	return tutor.DemoScale(), "demo: C major scale"
}

// loadMidiPath loads a local piece. A healthy backend gets the file for
// analysis, so notes carry its finger assignments; otherwise the file is
// parsed locally with heuristic assignments.
func loadMidiPath(ctx context.Context, client *backend.Client, path string) ([]tutor.NoteEvent, string, error) {
	if err := client.Health(ctx); err == nil {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		piece, err := client.ParseFile(ctx, filepath.Base(path), f)
		if err == nil && len(piece.Notes) > 0 {
			return piece.Notes, path + " (analyzed)", nil
		}
		debug.Log("load", "upload %s: %v", path, err)
	}

	notes, err := midifile.Load(path)
	if err != nil {
		return nil, "", err
	}
	return notes, path, nil
}
