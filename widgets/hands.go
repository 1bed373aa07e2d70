package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"piano-tutor/theme"
)

// RenderHands renders the finger diagrams for one or both hands. visible is
// "left", "right" or "both". activeHand/activeFinger (1=thumb..5=pinky)
// select at most one glyph per diagram; activeFinger 0 clears both.
// Fingers mirror at the thumbs: the left hand reads 5..1, the right 1..5.
func RenderHands(th *theme.Theme, visible, activeHand string, activeFinger int) string {
	var diagrams []string
	if visible == "left" || visible == "both" {
		diagrams = append(diagrams, renderHand(th, "left", activeHand == "left", activeFinger))
	}
	if visible == "right" || visible == "both" {
		diagrams = append(diagrams, renderHand(th, "right", activeHand == "right", activeFinger))
	}
	switch len(diagrams) {
	case 0:
		return ""
	case 1:
		return diagrams[0]
	default:
		return lipgloss.JoinHorizontal(lipgloss.Top, diagrams[0], "    ", diagrams[1])
	}
}

func renderHand(th *theme.Theme, hand string, active bool, finger int) string {
	titleStyle := lipgloss.NewStyle().Foreground(th.Muted())
	idleStyle := lipgloss.NewStyle().Foreground(th.FG())
	activeStyle := lipgloss.NewStyle().Foreground(th.Active())

	// Finger numbers in keyboard order: pinky outward on each side.
	order := []int{1, 2, 3, 4, 5}
	title := "RIGHT"
	if hand == "left" {
		order = []int{5, 4, 3, 2, 1}
		title = "LEFT "
	}

	var nums, glyphs strings.Builder
	for i, f := range order {
		if i > 0 {
			nums.WriteString(" ")
			glyphs.WriteString(" ")
		}
		nums.WriteString(titleStyle.Render(string(rune('0' + f))))
		if active && f == finger {
			glyphs.WriteString(activeStyle.Render(string(th.Symbols.FingerActive)))
		} else {
			glyphs.WriteString(idleStyle.Render(string(th.Symbols.FingerIdle)))
		}
	}

	return strings.Join([]string{
		titleStyle.Render(title),
		nums.String(),
		glyphs.String(),
	}, "\n")
}
