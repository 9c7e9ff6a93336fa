package note

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

type Letter uint8

const (
	A Letter = iota
	B
	C
	D
	E
	F
	G
)

// semitones above C for each letter, indexed by Letter
var letterSemitones = [7]uint8{9, 11, 0, 2, 4, 5, 7}

func (l Letter) Semitone() uint8 {
	return letterSemitones[l]
}

func (l Letter) String() string {
	return string(rune('A' + l))
}

type Accidental int8

const (
	Flat    Accidental = -1
	Natural Accidental = 0
	Sharp   Accidental = 1
)

const FlatGlyph = "♭"

func (a Accidental) Offset() int {
	return int(a)
}

func (a Accidental) String() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return FlatGlyph
	default:
		return ""
	}
}

// Pitch is compared structurally, so A#4 and B♭4 are different values
// even though they share an index.
type Pitch struct {
	Letter     Letter
	Accidental Accidental
	Octave     uint8
}

func New(l Letter, a Accidental, octave uint8) Pitch {
	return Pitch{Letter: l, Accidental: a, Octave: octave}
}

// Index is the absolute pitch number. It lines up with MIDI key numbers,
// so C4 is 60.
func (p Pitch) Index() int {
	return 12*(int(p.Octave)+1) + int(p.Letter.Semitone()) + p.Accidental.Offset()
}

// Name is the pitch without its octave, as used in chord symbols.
func (p Pitch) Name() string {
	return p.Letter.String() + p.Accidental.String()
}

func (p Pitch) String() string {
	return fmt.Sprintf("%v%v", p.Name(), p.Octave)
}

const LowestKey = 21

// counted from A, which is where the 88-key range starts
var sharpNames = [12]Letter{A, A, B, C, C, D, D, E, F, F, G, G}
var flatNames = [12]Letter{A, B, B, C, D, D, E, E, F, G, G, A}

// black keys relative to A: A#, C#, D#, F#, G#
const blackKeyMask uint16 = 0b0000_1010_0101_0010

// FromKey spells a MIDI key number. Black keys also get their flat
// spelling as the second value. Keys below LowestKey are not supported.
func FromKey(key uint8) (Pitch, *Pitch, bool) {
	if key < LowestKey {
		return Pitch{}, nil, false
	}

	octave := key/12 - 1
	pos := (key - LowestKey) % 12

	if blackKeyMask&(1<<pos) == 0 {
		return New(sharpNames[pos], Natural, octave), nil, true
	}

	flat := New(flatNames[pos], Flat, octave)
	return New(sharpNames[pos], Sharp, octave), &flat, true
}

var ErrInvalidPitch = errors.New("invalid pitch")

// Parse reads names like "C4", "F#3", "Bb2" or "B♭2".
func Parse(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Pitch{}, fmt.Errorf("%w: empty", ErrInvalidPitch)
	}

	first := strings.ToUpper(s[:1])[0]
	if first < 'A' || first > 'G' {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}
	p := Pitch{Letter: Letter(first - 'A')}

	rest := s[1:]
	switch {
	case strings.HasPrefix(rest, "#"):
		p.Accidental = Sharp
		rest = rest[1:]
	case strings.HasPrefix(rest, FlatGlyph):
		p.Accidental = Flat
		rest = rest[len(FlatGlyph):]
	case strings.HasPrefix(rest, "b"):
		p.Accidental = Flat
		rest = rest[1:]
	}

	octave, err := strconv.ParseUint(rest, 10, 8)
	if err != nil || octave > 9 {
		return Pitch{}, fmt.Errorf("%w: bad octave in %q", ErrInvalidPitch, s)
	}
	p.Octave = uint8(octave)
	return p, nil
}

// SortByIndex orders pitches lowest first, keeping the given order for
// enharmonic duplicates.
func SortByIndex(pitches []Pitch) {
	slices.SortStableFunc(pitches, func(a, b Pitch) bool {
		return a.Index() < b.Index()
	})
}
