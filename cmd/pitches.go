package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/note"
	"github.com/jsphweid/chordex/util"
)

func pitchFromKey(key int) (note.Pitch, error) {
	if !util.InRange(key, note.LowestKey, constants.MaxKey) {
		return note.Pitch{}, fmt.Errorf("key %v is outside %v..%v", key, note.LowestKey, constants.MaxKey)
	}
	p, _, _ := note.FromKey(uint8(key))
	return p, nil
}

// parsePitches accepts pitch names ("C#4") and MIDI key numbers ("61")
// and returns them lowest first.
func parsePitches(args []string) ([]note.Pitch, error) {
	var res []note.Pitch
	for _, arg := range args {
		if key, err := strconv.Atoi(arg); err == nil {
			p, err := pitchFromKey(key)
			if err != nil {
				return nil, err
			}
			res = append(res, p)
			continue
		}
		p, err := note.Parse(arg)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	note.SortByIndex(res)
	return res, nil
}

func pitchNames(pitches []note.Pitch) []string {
	res := make([]string, 0, len(pitches))
	for _, p := range pitches {
		res = append(res, p.String())
	}
	return res
}
