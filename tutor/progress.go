package tutor

// Progress is a pure derivation of how far playback has come. Recomputed
// after every cursor mutation; no hidden state.
type Progress struct {
	NotesPlayed int
	TotalNotes  int
	Percent     float64
}

// ComputeProgress derives completion from cursor position and sequence
// length. An empty sequence is 0%, never NaN.
func ComputeProgress(cursor, length int) Progress {
	p := Progress{NotesPlayed: cursor, TotalNotes: length}
	if length > 0 {
		p.Percent = float64(cursor) / float64(length) * 100
	}
	return p
}
