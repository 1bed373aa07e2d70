// Package midifile loads Standard MIDI Files into the tutor's note stream,
// for practicing local pieces without the analysis backend.
package midifile

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"piano-tutor/debug"
	"piano-tutor/tutor"
)

const defaultBPM = 120.0

type tempoChange struct {
	tick uint32
	bpm  float64
}

type noteSpan struct {
	key       uint8
	startTick uint32
	endTick   uint32
}

// Load reads a .mid file and returns its notes ordered by offset, with
// hands and fingers assigned heuristically.
func Load(path string) ([]tutor.NoteEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open midi file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses SMF data from r.
func Read(r io.Reader) ([]tutor.NoteEvent, error) {
	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("read smf: %w", err)
	}

	metric, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("unsupported time format %v", s.TimeFormat)
	}

	var tempos []tempoChange
	var spans []noteSpan

	for _, track := range s.Tracks {
		var abs uint32
		open := make(map[uint8]uint32) // key -> start tick
		for _, ev := range track {
			abs += ev.Delta

			var bpm float64
			if ev.Message.GetMetaTempo(&bpm) {
				tempos = append(tempos, tempoChange{tick: abs, bpm: bpm})
				continue
			}

			var ch, key, vel uint8
			switch {
			case ev.Message.GetNoteStart(&ch, &key, &vel):
				open[key] = abs
			case ev.Message.GetNoteEnd(&ch, &key):
				start, ok := open[key]
				if !ok {
					continue // orphan note-off
				}
				delete(open, key)
				spans = append(spans, noteSpan{key: key, startTick: start, endTick: abs})
			}
		}
		// Notes still open at end of track get a zero-length hold.
		for key, start := range open {
			spans = append(spans, noteSpan{key: key, startTick: start, endTick: start})
		}
	}

	sort.Slice(tempos, func(i, j int) bool { return tempos[i].tick < tempos[j].tick })
	if len(tempos) == 0 || tempos[0].tick != 0 {
		tempos = append([]tempoChange{{tick: 0, bpm: defaultBPM}}, tempos...)
	}

	notes := make([]tutor.NoteEvent, len(spans))
	for i, sp := range spans {
		start := ticksToSeconds(metric, tempos, sp.startTick)
		end := ticksToSeconds(metric, tempos, sp.endTick)
		notes[i] = tutor.NoteEvent{
			MidiNumber:      int(sp.key),
			OffsetSeconds:   start,
			DurationSeconds: end - start,
		}
	}
	// The player requires non-decreasing offsets and never sorts itself.
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].OffsetSeconds < notes[j].OffsetSeconds
	})

	debug.Log("midifile", "loaded %d notes, %d tempo changes", len(notes), len(tempos))
	return tutor.Enrich(notes), nil
}

// ticksToSeconds converts an absolute tick to seconds by walking the tempo
// segments that precede it.
func ticksToSeconds(metric smf.MetricTicks, tempos []tempoChange, tick uint32) float64 {
	secs := 0.0
	for i, tc := range tempos {
		if tc.tick >= tick {
			break
		}
		segEnd := tick
		if i+1 < len(tempos) && tempos[i+1].tick < tick {
			segEnd = tempos[i+1].tick
		}
		secs += metric.Duration(tc.bpm, segEnd-tc.tick).Seconds()
	}
	return secs
}
