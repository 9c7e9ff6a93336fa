package keyboard

import (
	"strings"

	"github.com/jsphweid/chordex/note"
)

const NumKeys = 128

// State is the set of keys currently held, one bit per MIDI key number.
// It is not safe for concurrent use.
type State struct {
	bits [2]uint64
}

func (s *State) Press(key uint8) []note.Pitch {
	if key < NumKeys {
		s.bits[key/64] |= 1 << (key % 64)
	}
	return s.Pitches()
}

func (s *State) Release(key uint8) []note.Pitch {
	if key < NumKeys {
		s.bits[key/64] &^= 1 << (key % 64)
	}
	return s.Pitches()
}

func (s *State) IsHeld(key uint8) bool {
	return key < NumKeys && s.bits[key/64]&(1<<(key%64)) != 0
}

func (s *State) Reset() {
	s.bits = [2]uint64{}
}

func (s *State) Keys() []uint8 {
	var res []uint8
	for key := uint8(0); key < NumKeys; key++ {
		if s.IsHeld(key) {
			res = append(res, key)
		}
	}
	return res
}

// Pitches returns the held pitches lowest first, using sharp spellings.
// Keys outside the piano range are left out.
func (s *State) Pitches() []note.Pitch {
	var res []note.Pitch
	for _, key := range s.Keys() {
		if p, _, ok := note.FromKey(key); ok {
			res = append(res, p)
		}
	}
	return res
}

// String shows both spellings of black keys, e.g. "C4 C#4/D♭4".
func (s *State) String() string {
	var parts []string
	for _, key := range s.Keys() {
		p, flat, ok := note.FromKey(key)
		if !ok {
			continue
		}
		if flat != nil {
			parts = append(parts, p.String()+"/"+flat.String())
		} else {
			parts = append(parts, p.String())
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
