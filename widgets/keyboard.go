package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"piano-tutor/theme"
)

// IsBlackKey reports whether a MIDI note is a black key.
func IsBlackKey(midi int) bool {
	switch ((midi % 12) + 12) % 12 {
	case 1, 3, 6, 8, 10:
		return true
	}
	return false
}

// RenderKeyboard renders a keyboard strip covering [low, high] with an
// optional active key. activeMidi < 0 means no highlight; activeFinger
// (1-5) is shown under the active key. Layout: a black-key row above a
// white-key row, a finger indicator row and octave labels below.
func RenderKeyboard(th *theme.Theme, low, high, activeMidi, activeFinger int) string {
	whiteStyle := lipgloss.NewStyle().Foreground(th.FG())
	blackStyle := lipgloss.NewStyle().Foreground(th.Muted())
	activeStyle := lipgloss.NewStyle().Foreground(th.Active())
	labelStyle := lipgloss.NewStyle().Foreground(th.Muted())

	var blackRow, whiteRow, fingerRow, labelRow strings.Builder

	for midi := low; midi <= high; midi++ {
		if IsBlackKey(midi) {
			continue // rendered with the preceding white key
		}

		// White key cell
		if midi == activeMidi {
			whiteRow.WriteString(activeStyle.Render(string(th.Symbols.ActiveKey)))
		} else {
			whiteRow.WriteString(whiteStyle.Render(string(th.Symbols.WhiteKey)))
		}
		whiteRow.WriteString(" ")

		// Black key (if any) sits in the gap after this white key
		if next := midi + 1; next <= high && IsBlackKey(next) {
			if next == activeMidi {
				blackRow.WriteString(" ")
				blackRow.WriteString(activeStyle.Render(string(th.Symbols.ActiveKey)))
			} else {
				blackRow.WriteString(" ")
				blackRow.WriteString(blackStyle.Render(string(th.Symbols.BlackKey)))
			}
		} else {
			blackRow.WriteString("  ")
		}

		// Finger indicator under the active key
		if midi == activeMidi && activeFinger >= 1 && activeFinger <= 5 {
			fingerRow.WriteString(activeStyle.Render(fmt.Sprintf("%d", activeFinger)))
			fingerRow.WriteString(" ")
		} else if next := midi + 1; next == activeMidi && IsBlackKey(next) && activeFinger >= 1 && activeFinger <= 5 {
			fingerRow.WriteString(" ")
			fingerRow.WriteString(activeStyle.Render(fmt.Sprintf("%d", activeFinger)))
		} else {
			fingerRow.WriteString("  ")
		}

		// Octave labels at every C
		if ((midi%12)+12)%12 == 0 {
			labelRow.WriteString(labelStyle.Render(fmt.Sprintf("C%d", midi/12-1)))
		} else {
			labelRow.WriteString("  ")
		}
	}

	return strings.Join([]string{
		blackRow.String(),
		whiteRow.String(),
		fingerRow.String(),
		labelRow.String(),
	}, "\n")
}
