package chord

import (
	"errors"
	"log/slog"

	"github.com/jsphweid/chordex/interval"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
	"golang.org/x/exp/slices"
)

const InversionCost = 3

// ResolveAll tries every pitch as the root and returns the chords found,
// simplest first. The first pitch is taken as the bass, so callers should
// pass pitches lowest first (see note.SortByIndex).
func ResolveAll(pitches []note.Pitch) []model.Interpretation {
	res := []model.Interpretation{}
	if len(pitches) == 0 {
		return res
	}

	bass := pitches[0]
	for _, root := range pitches {
		c, err := Resolve(interval.Build(pitches, root), root)
		if err != nil {
			if errors.Is(err, ErrUnexplained) {
				slog.Error("chord resolution left intervals over", "root", root.String(), "err", err)
			}
			continue
		}
		// an octave doubling of the bass is still an inversion
		if root != bass {
			c.Symbol += "/" + bass.Name()
			c.Weight += InversionCost
		}
		res = append(res, c)
	}

	slices.SortStableFunc(res, func(a, b model.Interpretation) bool {
		return a.Weight < b.Weight
	})
	return res
}

// Best returns the simplest interpretation, if there is one.
func Best(pitches []note.Pitch) (model.Interpretation, bool) {
	all := ResolveAll(pitches)
	if len(all) == 0 {
		return model.Interpretation{}, false
	}
	return all[0], true
}
