package interval

import (
	"strings"

	"github.com/jsphweid/chordex/note"
)

type Interval uint8

const (
	Unison Interval = iota
	MinorSecond
	MajorSecond
	MinorThird
	MajorThird
	PerfectFourth
	DiminishedFifth
	PerfectFifth
	MinorSixth
	MajorSixth
	MinorSeventh
	MajorSeventh
)

var names = [12]string{
	"P1", "m2", "M2", "m3", "M3", "P4", "d5", "P5", "m6", "M6", "m7", "M7",
}

func (i Interval) Semitone() int {
	return int(i)
}

func (i Interval) String() string {
	if int(i) >= len(names) {
		return "?"
	}
	return names[i]
}

// FromSemitone is defined for 0..11 only; octave reduction is up to the caller.
func FromSemitone(semitone int) (Interval, bool) {
	if semitone < 0 || semitone > 11 {
		return 0, false
	}
	return Interval(semitone), true
}

// Bitmap has bit i set when an interval of i semitones above the root is present.
type Bitmap uint16

func Of(intervals ...Interval) Bitmap {
	var b Bitmap
	for _, i := range intervals {
		b = b.With(i)
	}
	return b
}

func (b Bitmap) Has(i Interval) bool {
	return b&(1<<i) != 0
}

func (b Bitmap) With(i Interval) Bitmap {
	return b | 1<<i
}

func (b Bitmap) Without(intervals ...Interval) Bitmap {
	for _, i := range intervals {
		b &^= 1 << i
	}
	return b
}

// Only reports whether i is the single interval present.
func (b Bitmap) Only(i Interval) bool {
	return b == 1<<i
}

func (b Bitmap) IsEmpty() bool {
	return b == 0
}

func (b Bitmap) Intervals() []Interval {
	var res []Interval
	for i := Unison; i <= MajorSeventh; i++ {
		if b.Has(i) {
			res = append(res, i)
		}
	}
	return res
}

func (b Bitmap) String() string {
	var parts []string
	for _, i := range b.Intervals() {
		parts = append(parts, i.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Build collects the intervals of every pitch above root, octave reduced.
// The unison is dropped since it says nothing about the chord quality.
func Build(pitches []note.Pitch, root note.Pitch) Bitmap {
	var b Bitmap
	rootIndex := root.Index()
	for _, p := range pitches {
		semitone := p.Index() - rootIndex
		for semitone < 0 {
			semitone += 12
		}
		i, _ := FromSemitone(semitone % 12)
		b = b.With(i)
	}
	return b.Without(Unison)
}
