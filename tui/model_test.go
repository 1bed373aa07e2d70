package tui

import (
	"strings"
	"testing"

	"piano-tutor/theme"
	"piano-tutor/tutor"
)

func newTestModel() (Model, *tutor.Player) {
	view := NewViewState(36, 96)
	player := tutor.NewPlayer(tutor.NewClock(), tutor.NewHighlighter(view))
	load := func() ([]tutor.NoteEvent, string) { return tutor.DemoScale(), "demo" }
	return NewModel(player, view, theme.New(theme.Default()), load), player
}

func TestViewShowsState(t *testing.T) {
	m, player := newTestModel()
	player.Load([]tutor.NoteEvent{{PitchName: "C4", MidiNumber: 60, DurationSeconds: 1, Hand: tutor.HandRight, Finger: tutor.FingerThumb}})

	if out := m.View(); !strings.Contains(out, "IDLE") {
		t.Error("idle state missing from the header")
	}

	// Stepping past the only note completes the piece; the header flashes.
	player.StepForward()
	out := m.View()
	if !strings.Contains(out, "COMPLETED") {
		t.Error("completed state missing from the header")
	}
	if !strings.Contains(out, "C4") {
		t.Error("info readout missing the displayed note")
	}
}

func TestViewHandCycle(t *testing.T) {
	for h, want := range map[tutor.Hand]tutor.Hand{
		tutor.HandBoth:  tutor.HandRight,
		tutor.HandRight: tutor.HandLeft,
		tutor.HandLeft:  tutor.HandBoth,
	} {
		if got := nextHands(h); got != want {
			t.Errorf("nextHands(%s) = %s, want %s", h, got, want)
		}
	}
}
