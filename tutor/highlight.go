package tutor

// View is the rendering surface the highlighter drives. Implementations
// live at the UI boundary (or in tests); the state machine never queries
// the environment directly.
type View interface {
	// SetActiveKey marks the key for a MIDI note active with its finger
	// indicator. Implementations ignore notes outside their rendered range.
	SetActiveKey(midi int, finger Finger)
	ClearActiveKey()

	// SetActiveFinger marks one finger glyph active in the diagram for a
	// hand.
	SetActiveFinger(hand Hand, finger Finger)
	ClearActiveFingers()

	// SetInfo updates the textual readout for the current note.
	SetInfo(info NoteInfo)
}

// NoteInfo is the textual readout for the current note.
type NoteInfo struct {
	Pitch         string
	Finger        Finger
	Hand          Hand
	OffsetSeconds float64
}

// Highlighter keeps the visual active state consistent with exactly one
// current note: at most one active key, at most one active finger per hand
// diagram.
type Highlighter struct {
	view View
}

func NewHighlighter(view View) *Highlighter {
	return &Highlighter{view: view}
}

// Render shows a note. Clear-then-set makes it idempotent: rendering the
// same note twice leaves the same active set as once.
func (h *Highlighter) Render(n NoteEvent) {
	h.view.ClearActiveKey()
	h.view.ClearActiveFingers()
	h.view.SetActiveKey(n.MidiNumber, n.Finger)
	h.view.SetActiveFinger(n.Hand, n.Finger)
	h.view.SetInfo(NoteInfo{
		Pitch:         n.PitchName,
		Finger:        n.Finger,
		Hand:          n.Hand,
		OffsetSeconds: n.OffsetSeconds,
	})
}

// ClearAll removes key and finger highlights without touching the readout.
func (h *Highlighter) ClearAll() {
	h.view.ClearActiveKey()
	h.view.ClearActiveFingers()
}
