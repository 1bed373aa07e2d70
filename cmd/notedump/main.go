// notedump prints the note stream of a MIDI file the way the tutor will
// play it: offsets, durations, hand and finger assignments.
package main

import (
	"fmt"
	"os"

	"piano-tutor/midifile"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: notedump <file.mid>")
		os.Exit(2)
	}

	notes, err := midifile.Load(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "notedump: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d notes\n", len(notes))
	for i, n := range notes {
		fmt.Printf("%4d  %-4s midi=%3d  off=%7.3fs  dur=%6.3fs  %-5s %s\n",
			i, n.PitchName, n.MidiNumber, n.OffsetSeconds, n.DurationSeconds, n.Hand, n.Finger)
	}
}
