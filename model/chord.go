package model

type Notes = []uint8

// Interpretation is one way of naming a set of held pitches. Weight only
// means something relative to other interpretations of the same pitches;
// lower is simpler.
type Interpretation struct {
	Symbol string `json:"symbol"`
	Weight uint32 `json:"weight"`
}

// Snapshot is the set of keys held at a moment of a MIDI file.
type Snapshot struct {
	// microseconds from the start of the file
	Offset int64
	Notes  Notes
}
