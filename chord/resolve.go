package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/interval"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
)

var (
	// ErrNoMatch means the intervals don't spell a chord over this root.
	ErrNoMatch = errors.New("no chord over this root")

	// ErrUnexplained means a bit survived every stage. That can't happen
	// for twelve-tone input, so it points at a broken rule.
	ErrUnexplained = errors.New("intervals left unexplained")
)

const (
	incompleteTriadCost = 3
	minorSusCost        = 5
)

type triad int

const (
	noTriad triad = iota
	majorTriad
	minorTriad
	diminishedTriad
	augmentedTriad
)

// step is what a stage takes out of the bitmap and what it writes for it.
type step struct {
	consumed interval.Bitmap
	token    string
	cost     uint32
}

type stage func(b interval.Bitmap, t triad) step

// run after the triad stage, in this order
var stages = []stage{susStage, fifthStage, seventhStage, addStage}

// Resolve names the chord built on root from the intervals above it.
// The unison must already be cleared, as interval.Build does.
func Resolve(b interval.Bitmap, root note.Pitch) (model.Interpretation, error) {
	if b.Only(interval.PerfectFifth) {
		return model.Interpretation{Symbol: root.Name() + "5"}, nil
	}

	first, t := triadStage(b)
	steps := []step{first}
	remaining := b &^ first.consumed
	for _, s := range stages {
		next := s(remaining, t)
		steps = append(steps, next)
		remaining &^= next.consumed
	}

	if !remaining.IsEmpty() {
		return model.Interpretation{}, fmt.Errorf("%w: %v over %v", ErrUnexplained, remaining, root.Name())
	}

	// the triad and sus stages come first
	labelled := steps[0].token != "" || steps[1].token != ""
	if !labelled && t != majorTriad {
		return model.Interpretation{}, ErrNoMatch
	}

	var symbol strings.Builder
	symbol.WriteString(root.Name())
	var weight uint32
	for _, s := range steps {
		symbol.WriteString(s.token)
		weight += s.cost
	}
	return model.Interpretation{Symbol: symbol.String(), Weight: weight}, nil
}

func triadStage(b interval.Bitmap) (step, triad) {
	switch {
	case isMajor(b):
		return thirdStep(b, interval.MajorThird, ""), majorTriad
	case isMinor(b):
		return thirdStep(b, interval.MinorThird, "min"), minorTriad
	case isDiminished(b):
		return step{
			consumed: interval.Of(interval.MinorThird, interval.DiminishedFifth),
			token:    "dim",
			cost:     3,
		}, diminishedTriad
	case isAugmented(b):
		return step{
			consumed: interval.Of(interval.MajorThird, interval.MinorSixth),
			token:    "aug",
			cost:     3,
		}, augmentedTriad
	}
	return step{}, noTriad
}

func thirdStep(b interval.Bitmap, third interval.Interval, token string) step {
	s := step{consumed: interval.Of(third), token: token, cost: 1}
	if !b.Has(interval.PerfectFifth) {
		s.cost += incompleteTriadCost
	}
	return s
}

// Suspensions replace a missing third. A minor triad may carry one too,
// written in parentheses.
func susStage(b interval.Bitmap, t triad) step {
	if !isSus(b) {
		return step{}
	}

	switch t {
	case noTriad:
		if isSus2(b) {
			return sus2Step(b)
		}
		s := sus4Step(b)
		s.token = "sus" + s.token
		return s
	case minorTriad:
		if b.Has(interval.PerfectFifth) || !isSus4(b) {
			return step{}
		}
		s := sus4Step(b)
		s.token = "(sus" + s.token + ")"
		s.cost += minorSusCost
		return s
	}
	return step{}
}

func sus2Step(b interval.Bitmap) step {
	second, label := interval.MajorSecond, "2"
	s := step{cost: 4}
	if !b.Has(interval.MajorSecond) {
		second, label = interval.MinorSecond, note.FlatGlyph+"2"
		s.cost++
	}
	s.consumed = interval.Of(second)

	rest := b.Without(second)
	if isSus4(rest) {
		fourth := sus4Step(rest)
		s.consumed |= fourth.consumed
		s.cost += fourth.cost
		s.token = "sus(" + label + "/" + fourth.token + ")"
		return s
	}

	if second == interval.MajorSecond {
		s.token = "sus2"
	} else {
		s.token = "sus(" + label + ")"
	}
	if !b.Has(interval.PerfectFifth) {
		s.cost += incompleteTriadCost
	}
	return s
}

// sus4Step returns the bare label, "4" or "#4".
func sus4Step(b interval.Bitmap) step {
	if b.Has(interval.PerfectFourth) {
		return step{consumed: interval.Of(interval.PerfectFourth), token: "4", cost: 4}
	}
	return step{consumed: interval.Of(interval.DiminishedFifth), token: "#4", cost: 5}
}

// A fifth that nothing else needed goes unmentioned.
func fifthStage(b interval.Bitmap, _ triad) step {
	if b.Has(interval.PerfectFifth) {
		return step{consumed: interval.Of(interval.PerfectFifth)}
	}
	return step{}
}

func seventhStage(b interval.Bitmap, t triad) step {
	if !hasSeventh(b) {
		return step{}
	}

	var s step
	open := false
	if b.Has(interval.MajorSeventh) && !b.Has(interval.MinorSeventh) {
		s.consumed = interval.Of(interval.MajorSeventh)
		s.cost = 5
		if t == minorTriad {
			s.token = "(maj"
			open = true
		} else {
			s.token = "maj"
		}
	} else {
		s.consumed = interval.Of(interval.MinorSeventh)
		s.cost = 4
	}

	token, consumed := extension(b)
	s.token += token
	s.consumed |= consumed
	if open {
		s.token += ")"
	}
	return s
}

// extension picks the highest stacked tone over a seventh. A thirteenth
// implies the eleventh and ninth, so those are taken along with it.
func extension(b interval.Bitmap) (string, interval.Bitmap) {
	switch {
	case b.Has(interval.MajorSixth):
		return "13", b & interval.Of(interval.MajorSixth, interval.PerfectFourth, interval.MajorSecond)
	case b.Has(interval.PerfectFourth):
		return "11", b & interval.Of(interval.PerfectFourth, interval.MajorSecond)
	case b.Has(interval.MajorSecond):
		return "9", interval.Of(interval.MajorSecond)
	}
	return "7", 0
}

var addTones = []struct {
	tone  interval.Interval
	token string
	cost  uint32
}{
	{interval.MinorSecond, "(" + note.FlatGlyph + "9)", 7},
	{interval.MajorSecond, "(9)", 6},
	{interval.MinorThird, "(#9)", 7},
	{interval.PerfectFourth, "(4)", 6},
	{interval.DiminishedFifth, "(" + note.FlatGlyph + "5)", 7},
	{interval.MinorSixth, "(" + note.FlatGlyph + "13)", 7},
	{interval.MajorSixth, "(13)", 6},
	{interval.MinorSeventh, "(7)", 6},
	{interval.MajorSeventh, "(maj7)", 7},
}

// Whatever is left gets listed as added tones.
func addStage(b interval.Bitmap, _ triad) step {
	var s step
	for _, a := range addTones {
		if b.Has(a.tone) {
			s.consumed = s.consumed.With(a.tone)
			s.token += a.token
			s.cost += a.cost
		}
	}
	return s
}
