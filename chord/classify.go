package chord

import "github.com/jsphweid/chordex/interval"

// The predicates below look at whatever is left of the bitmap, so the
// same interval can read differently depending on which stage asks.

func hasSeventh(b interval.Bitmap) bool {
	return b.Has(interval.MinorSeventh) || b.Has(interval.MajorSeventh)
}

func hasThird(b interval.Bitmap) bool {
	return b.Has(interval.MinorThird) || b.Has(interval.MajorThird)
}

func isAugmented(b interval.Bitmap) bool {
	return b.Has(interval.MajorThird) && b.Has(interval.MinorSixth) && !b.Has(interval.PerfectFifth)
}

func isDiminished(b interval.Bitmap) bool {
	return b.Has(interval.MinorThird) && b.Has(interval.DiminishedFifth) && !b.Has(interval.PerfectFifth)
}

func isMajor(b interval.Bitmap) bool {
	return b.Has(interval.MajorThird) && !isAugmented(b)
}

func isMinor(b interval.Bitmap) bool {
	return b.Has(interval.MinorThird) && !b.Has(interval.MajorThird) && !isDiminished(b)
}

// A second next to a seventh is a ninth, not a suspension.
func isSus2(b interval.Bitmap) bool {
	if hasThird(b) {
		return false
	}
	if hasSeventh(b) && b.Has(interval.MajorSecond) {
		return false
	}
	return b.Has(interval.MajorSecond) || b.Has(interval.MinorSecond)
}

// A fourth next to a seventh is an eleventh. The sharp four only counts
// when there is no perfect fifth, otherwise it is a flat five.
func isSus4(b interval.Bitmap) bool {
	if hasSeventh(b) && b.Has(interval.PerfectFourth) {
		return false
	}
	if b.Has(interval.PerfectFourth) {
		return true
	}
	return b.Has(interval.DiminishedFifth) && !b.Has(interval.PerfectFifth)
}

func isSus(b interval.Bitmap) bool {
	return isSus2(b) || isSus4(b)
}
