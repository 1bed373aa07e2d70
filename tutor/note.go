package tutor

import "fmt"

// Hand identifies which hand plays a note. HandBoth is only valid as a
// visibility filter, never on a NoteEvent.
type Hand string

const (
	HandLeft  Hand = "left"
	HandRight Hand = "right"
	HandBoth  Hand = "both"
)

// Finger numbers a digit 1 (thumb) through 5 (pinky).
type Finger int

const (
	FingerNone Finger = iota
	FingerThumb
	FingerIndex
	FingerMiddle
	FingerRing
	FingerPinky
)

var fingerLabels = [...]string{"", "thumb", "index", "middle", "ring", "pinky"}

func (f Finger) String() string {
	if f < FingerThumb || f > FingerPinky {
		return "?"
	}
	return fingerLabels[f]
}

// FingerFromLabel parses a semantic finger label ("thumb".."pinky").
func FingerFromLabel(label string) (Finger, bool) {
	for f := FingerThumb; f <= FingerPinky; f++ {
		if fingerLabels[f] == label {
			return f, true
		}
	}
	return FingerNone, false
}

// NoteEvent is a single timed note in a loaded piece. Offsets are seconds
// from piece start and must be non-decreasing across a sequence; the engine
// never sorts.
type NoteEvent struct {
	PitchName       string
	MidiNumber      int
	OffsetSeconds   float64
	DurationSeconds float64
	Hand            Hand
	Finger          Finger
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName converts a MIDI note number to its name, e.g. 60 -> "C4".
func NoteName(midi int) string {
	pc := ((midi % 12) + 12) % 12
	octave := midi/12 - 1
	return fmt.Sprintf("%s%d", noteNames[pc], octave)
}

// AssignFinger picks a finger from the note's position in the octave. It is
// deliberately context-free: no previous note, hand span or finger crossing
// is considered. The octave boundaries are part of the wire contract with
// the analysis backend and must not drift.
func AssignFinger(midi int) Finger {
	switch ((midi % 12) + 12) % 12 {
	case 0, 1: // C, C#
		return FingerThumb
	case 2, 3: // D, D#
		return FingerIndex
	case 4, 5: // E, F
		return FingerMiddle
	case 6, 7: // F#, G
		return FingerRing
	default: // G#, A, A#, B
		return FingerPinky
	}
}

// AssignHand splits the keyboard at middle C: right hand from C4 up.
func AssignHand(midi int) Hand {
	if midi >= 60 {
		return HandRight
	}
	return HandLeft
}

// AssignFingerForHand mirrors the finger table for the left hand, so that
// both thumbs sit toward middle C.
func AssignFingerForHand(midi int, hand Hand) Finger {
	f := AssignFinger(midi)
	if hand == HandLeft {
		return FingerPinky + FingerThumb - f
	}
	return f
}

// Enrich fills in missing pitch names, hands and fingers on notes coming
// from a source that did not assign them (demo pieces, local MIDI files).
// Notes that already carry assignments are left alone.
func Enrich(notes []NoteEvent) []NoteEvent {
	out := make([]NoteEvent, len(notes))
	for i, n := range notes {
		if n.PitchName == "" {
			n.PitchName = NoteName(n.MidiNumber)
		}
		if n.Hand != HandLeft && n.Hand != HandRight {
			n.Hand = AssignHand(n.MidiNumber)
		}
		if n.Finger == FingerNone {
			n.Finger = AssignFingerForHand(n.MidiNumber, n.Hand)
		}
		out[i] = n
	}
	return out
}
