package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	// Keyboard strip
	WhiteKey  rune // ▓ plain white key
	BlackKey  rune // █ plain black key
	ActiveKey rune // ▶ key under the current note

	// Hand diagram
	FingerIdle   rune // ○ inactive finger glyph
	FingerActive rune // ● finger playing the current note
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			WhiteKey:  '▓',
			BlackKey:  '█',
			ActiveKey: '▶',

			FingerIdle:   '○',
			FingerActive: '●',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG       = 0.0 // background
	RoleSurface  = 0.1 // panels
	RoleMuted    = 0.25 // black keys, dimmed text
	RoleFG       = 0.4 // white keys, readable text
	RoleAccent   = 0.5 // header, progress
	RoleActive   = 0.7 // current key / finger
	RoleWarning  = 0.85 // warnings and status
	RoleComplete = 1.0 // completion flash
)

// Style helpers

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Active() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleActive))
}

func (t *Theme) Warning() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWarning))
}

func (t *Theme) Complete() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleComplete))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
