package tutor

import "errors"

// ErrOutOfRange is returned by Sequence.At for an index outside [0, Len).
var ErrOutOfRange = errors.New("note index out of range")

// Sequence is the ordered list of notes for a loaded piece. It is replaced
// wholesale on every load and never mutated in place; everything else reads
// from it.
type Sequence struct {
	notes []NoteEvent
}

// NewSequence copies notes into an immutable sequence. An empty or nil
// slice is a valid (empty) sequence.
func NewSequence(notes []NoteEvent) *Sequence {
	s := &Sequence{notes: make([]NoteEvent, len(notes))}
	copy(s.notes, notes)
	return s
}

// At returns the note at index i.
func (s *Sequence) At(i int) (NoteEvent, error) {
	if i < 0 || i >= len(s.notes) {
		return NoteEvent{}, ErrOutOfRange
	}
	return s.notes[i], nil
}

// Len returns the number of notes.
func (s *Sequence) Len() int {
	return len(s.notes)
}
