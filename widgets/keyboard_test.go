package widgets

import (
	"strings"
	"testing"

	"piano-tutor/theme"
)

func TestIsBlackKey(t *testing.T) {
	black := map[int]bool{61: true, 63: true, 66: true, 68: true, 70: true}
	for midi := 60; midi <= 72; midi++ {
		if got := IsBlackKey(midi); got != black[midi] {
			t.Errorf("IsBlackKey(%d) = %v", midi, got)
		}
	}
	if IsBlackKey(-11) != true { // pitch class 1 below zero
		t.Error("negative midi pitch class not normalized")
	}
}

func TestRenderKeyboardShape(t *testing.T) {
	th := theme.New(theme.Default())

	out := RenderKeyboard(th, 60, 72, -1, 0)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("keyboard has %d rows, want 4", len(lines))
	}
	if !strings.Contains(lines[3], "C4") || !strings.Contains(lines[3], "C5") {
		t.Errorf("label row %q misses octave marks", lines[3])
	}
	if strings.ContainsRune(out, th.Symbols.ActiveKey) {
		t.Error("inactive keyboard shows an active marker")
	}
}

func TestRenderKeyboardActiveKey(t *testing.T) {
	th := theme.New(theme.Default())

	out := RenderKeyboard(th, 60, 72, 64, 3)
	if !strings.ContainsRune(out, th.Symbols.ActiveKey) {
		t.Error("active key marker missing")
	}
	if !strings.Contains(out, "3") {
		t.Error("finger indicator missing")
	}

	// Black key highlight lands on the top row.
	out = RenderKeyboard(th, 60, 72, 61, 2)
	top := strings.Split(out, "\n")[0]
	if !strings.ContainsRune(top, th.Symbols.ActiveKey) {
		t.Error("active black key not marked on the black-key row")
	}
}

func TestRenderHandsVisibility(t *testing.T) {
	th := theme.New(theme.Default())

	both := RenderHands(th, "both", "right", 2)
	if !strings.Contains(both, "LEFT") || !strings.Contains(both, "RIGHT") {
		t.Error("both-hands view misses a diagram")
	}

	left := RenderHands(th, "left", "", 0)
	if strings.Contains(left, "RIGHT") {
		t.Error("left-only view renders the right hand")
	}

	active := RenderHands(th, "right", "right", 2)
	if !strings.ContainsRune(active, th.Symbols.FingerActive) {
		t.Error("active finger glyph missing")
	}
	idle := RenderHands(th, "right", "", 0)
	if strings.ContainsRune(idle, th.Symbols.FingerActive) {
		t.Error("idle hand shows an active finger")
	}
}
