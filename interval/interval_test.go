package interval

import (
	"testing"

	"github.com/jsphweid/chordex/note"
	"github.com/stretchr/testify/assert"
)

func pitch(t *testing.T, s string) note.Pitch {
	t.Helper()
	p, err := note.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func pitches(t *testing.T, names ...string) []note.Pitch {
	t.Helper()
	var res []note.Pitch
	for _, n := range names {
		res = append(res, pitch(t, n))
	}
	return res
}

func TestFromSemitone(t *testing.T) {
	for s := 0; s < 12; s++ {
		i, ok := FromSemitone(s)
		assert.True(t, ok)
		assert.Equal(t, s, i.Semitone())
	}
	_, ok := FromSemitone(12)
	assert.False(t, ok)
	_, ok = FromSemitone(-1)
	assert.False(t, ok)
}

func TestBitmapOps(t *testing.T) {
	assert := assert.New(t)
	b := Of(MajorThird, PerfectFifth)
	assert.True(b.Has(MajorThird))
	assert.False(b.Has(MinorThird))
	assert.True(b.Without(MajorThird).Only(PerfectFifth))
	assert.True(b.Without(MajorThird, PerfectFifth).IsEmpty())
	assert.Equal("{M3 P5}", b.String())
	assert.Equal([]Interval{MajorThird, PerfectFifth}, b.Intervals())
}

func TestBuildMajorTriad(t *testing.T) {
	ps := pitches(t, "C3", "E3", "G3")
	assert.Equal(t, Of(MajorThird, PerfectFifth), Build(ps, ps[0]))
}

func TestBuildClearsUnisonAndOctaves(t *testing.T) {
	ps := pitches(t, "C3", "C4", "G5")
	assert.Equal(t, Of(PerfectFifth), Build(ps, ps[0]))
}

func TestBuildFromUpperRootWrapsNegativeDistances(t *testing.T) {
	// E is the root of E G C, C sits a minor sixth above it
	ps := pitches(t, "C3", "E3", "G3")
	assert.Equal(t, Of(MinorThird, MinorSixth), Build(ps, ps[1]))
}

func TestBuildFarBelowRoot(t *testing.T) {
	ps := pitches(t, "D1", "C7")
	assert.Equal(t, Of(MajorSecond), Build(ps, ps[1]))
}

func TestBuildEnharmonicRootStillClearsUnison(t *testing.T) {
	ps := pitches(t, "A#3", "D4", "F4")
	assert.Equal(t, Of(MajorThird, PerfectFifth), Build(ps, pitch(t, "Bb3")))
}
