package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"piano-tutor/theme"
	"piano-tutor/tutor"
	"piano-tutor/widgets"
)

// Loader fetches a piece on demand (backend, local file or demo fallback).
// It returns the notes plus a short source description for the status line.
type Loader func() (notes []tutor.NoteEvent, source string)

type Model struct {
	Player *tutor.Player
	View_  *ViewState
	Theme  *theme.Theme
	Load   Loader

	progress progress.Model
	source   string
	quitting bool
}

type UpdateMsg struct{}

type LoadedMsg struct {
	Notes  []tutor.NoteEvent
	Source string
}

func NewModel(player *tutor.Player, view *ViewState, th *theme.Theme, load Loader) Model {
	return Model{
		Player:   player,
		View_:    view,
		Theme:    th,
		Load:     load,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func ListenForUpdates(player *tutor.Player) tea.Cmd {
	return func() tea.Msg {
		<-player.UpdateChan
		return UpdateMsg{}
	}
}

func (m Model) loadPiece() tea.Cmd {
	return func() tea.Msg {
		notes, source := m.Load()
		return LoadedMsg{Notes: notes, Source: source}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		ListenForUpdates(m.Player),
		m.loadPiece(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.Player.Pause()
			return m, tea.Quit

		case " ", "p":
			m.Player.TogglePlay()

		case "r":
			m.Player.Reset()

		case "right":
			m.Player.StepForward()

		case "left":
			m.Player.StepBack()

		case "+", "=":
			m.Player.SetSpeed(m.Player.Snapshot().Speed + 0.1)

		case "-", "_":
			m.Player.SetSpeed(m.Player.Snapshot().Speed - 0.1)

		case "h":
			m.Player.SetVisibleHands(nextHands(m.Player.Snapshot().VisibleHands))

		case "l":
			return m, m.loadPiece()
		}

	case LoadedMsg:
		m.source = msg.Source
		m.Player.Load(msg.Notes)

	case UpdateMsg:
		return m, ListenForUpdates(m.Player)
	}

	return m, nil
}

func nextHands(h tutor.Hand) tutor.Hand {
	switch h {
	case tutor.HandBoth:
		return tutor.HandRight
	case tutor.HandRight:
		return tutor.HandLeft
	default:
		return tutor.HandBoth
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.Player.Snapshot()
	view := m.View_.snapshot()

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	if snap.State == tutor.StateCompleted {
		// Completion flash: the header switches to the top of the ramp.
		headerStyle = lipgloss.NewStyle().Foreground(m.Theme.Complete()).Bold(true)
	}
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	infoStyle := lipgloss.NewStyle().Foreground(m.Theme.FG())
	warnStyle := lipgloss.NewStyle().Foreground(m.Theme.Warning())

	header := headerStyle.Render(fmt.Sprintf("piano-tutor  %-9s  speed:%3.0f%%  note %d/%d  hands:%s",
		strings.ToUpper(snap.State.String()), snap.Speed*100, snap.Cursor, snap.Length, snap.VisibleHands))

	keyboard := widgets.RenderKeyboard(m.Theme, view.lowMidi, view.highMidi, view.activeMidi, int(view.activeFinger))

	activeHand := ""
	activeFinger := 0
	if view.leftFinger != tutor.FingerNone {
		activeHand, activeFinger = "left", int(view.leftFinger)
	} else if view.rightFinger != tutor.FingerNone {
		activeHand, activeFinger = "right", int(view.rightFinger)
	}
	hands := widgets.RenderHands(m.Theme, string(snap.VisibleHands), activeHand, activeFinger)

	info := dimStyle.Render("no note")
	if view.hasInfo {
		info = infoStyle.Render(fmt.Sprintf("%s  %s %s  at %.2fs",
			view.info.Pitch, view.info.Hand, view.info.Finger, view.info.OffsetSeconds))
	}

	bar := m.progress.ViewAs(snap.Progress.Percent / 100)

	status := ""
	if snap.Status != "" {
		status = warnStyle.Render(snap.Status)
		if m.source != "" {
			status += dimStyle.Render("  (" + m.source + ")")
		}
	}

	help := dimStyle.Render("space:play/pause  r:reset  ←/→:step  +/-:tempo  h:hands  l:reload  q:quit")

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(keyboard)
	out.WriteString("\n\n")
	out.WriteString(hands)
	out.WriteString("\n\n")
	out.WriteString(info)
	out.WriteString("\n")
	out.WriteString(bar)
	out.WriteString("\n")
	if status != "" {
		out.WriteString(status)
		out.WriteString("\n")
	}
	out.WriteString("\n")
	out.WriteString(help)

	return out.String()
}
