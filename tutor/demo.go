package tutor

import (
	"fmt"
	"strconv"
	"strings"
)

// Built-in pieces used whenever the analysis backend is unreachable. The
// engine must never sit in a loaded-but-empty state, so these are always
// available.

// DemoScale returns the eight-note C major scale, one note per second,
// each held for a second.
func DemoScale() []NoteEvent {
	scale := []int{60, 62, 64, 65, 67, 69, 71, 72}
	notes := make([]NoteEvent, len(scale))
	for i, midi := range scale {
		notes[i] = NoteEvent{
			MidiNumber:      midi,
			OffsetSeconds:   float64(i),
			DurationSeconds: 1.0,
		}
	}
	return Enrich(notes)
}

// DemoMelody returns "Mary Had a Little Lamb" at 120 BPM.
func DemoMelody() []NoteEvent {
	const notation = "E4_1.0 D4_1.0 C4_1.0 D4_1.0 E4_1.0 E4_1.0 E4_2.0 " +
		"D4_1.0 D4_1.0 D4_2.0 " +
		"E4_1.0 G4_1.0 G4_2.0 " +
		"E4_1.0 D4_1.0 C4_1.0 D4_1.0 E4_1.0 E4_1.0 E4_1.0 E4_1.0 " +
		"D4_1.0 D4_1.0 E4_1.0 D4_1.0 C4_4.0"
	notes, err := ParseNotation(notation, 120)
	if err != nil {
		// The notation above is a literal; a parse failure is a programming
		// error, not an input error.
		panic(err)
	}
	return notes
}

// ParseNotation converts simple text notation into a note sequence. Each
// token is "<pitch><octave>_<beats>", e.g. "C4_1.0" or "F#3_0.5". Beats
// become seconds at the given tempo; offsets accumulate so the melody is
// strictly sequential.
func ParseNotation(notation string, tempoBPM int) ([]NoteEvent, error) {
	if tempoBPM <= 0 {
		return nil, fmt.Errorf("invalid tempo %d", tempoBPM)
	}
	secondsPerBeat := 60.0 / float64(tempoBPM)

	var notes []NoteEvent
	offset := 0.0
	for _, token := range strings.Fields(notation) {
		name, beatsStr, ok := strings.Cut(token, "_")
		if !ok {
			return nil, fmt.Errorf("malformed token %q", token)
		}
		midi, err := midiFromName(name)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", token, err)
		}
		beats, err := strconv.ParseFloat(beatsStr, 64)
		if err != nil || beats <= 0 {
			return nil, fmt.Errorf("token %q: bad duration", token)
		}
		dur := beats * secondsPerBeat
		notes = append(notes, NoteEvent{
			MidiNumber:      midi,
			OffsetSeconds:   offset,
			DurationSeconds: dur,
		})
		offset += dur
	}
	return Enrich(notes), nil
}

// midiFromName parses "C4", "F#3", "Bb2" into a MIDI note number using
// midi = (octave+1)*12 + pitchClass.
func midiFromName(name string) (int, error) {
	if len(name) < 2 {
		return 0, fmt.Errorf("bad note name %q", name)
	}
	pc := -1
	for i, n := range noteNames {
		if n == string(name[0]) {
			pc = i
			break
		}
	}
	if pc < 0 {
		return 0, fmt.Errorf("bad note name %q", name)
	}
	rest := name[1:]
	switch {
	case strings.HasPrefix(rest, "#"):
		pc++
		rest = rest[1:]
	case strings.HasPrefix(rest, "b"):
		pc--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("bad octave in %q", name)
	}
	return (octave+1)*12 + pc, nil
}
