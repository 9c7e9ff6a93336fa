package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestDecodeStatusNibbles(t *testing.T) {
	cases := map[byte]Event{
		0x80: KeyOff,
		0x93: KeyOn,
		0xA0: PolyphonicKeyPressure,
		0xB1: ControlChange,
		0xC0: ProgramChange,
		0xD0: ChannelPressure,
		0xE0: PitchBendChange,
		0xF8: SystemMessage,
	}
	for status, want := range cases {
		event, key, err := Decode([]byte{status, 60, 100})
		require.NoError(t, err)
		assert.Equal(t, want, event, "status % X", status)
		assert.Equal(t, uint8(60), key)
	}
}

func TestDecodeZeroVelocityKeyOn(t *testing.T) {
	event, key, err := Decode([]byte{0x90, 64, 0})
	require.NoError(t, err)
	assert.Equal(t, KeyOff, event)
	assert.Equal(t, uint8(64), key)
}

func TestDecodeTwoByteFrame(t *testing.T) {
	event, _, err := Decode([]byte{0xC0, 5})
	require.NoError(t, err)
	assert.Equal(t, ProgramChange, event)
}

func TestDecodeRejectsBadFrames(t *testing.T) {
	_, _, err := Decode([]byte{0x90})
	assert.ErrorIs(t, err, ErrShortFrame)
	_, _, err = Decode(nil)
	assert.ErrorIs(t, err, ErrShortFrame)
	_, _, err = Decode([]byte{0x40, 60, 1})
	assert.ErrorIs(t, err, ErrNotStatus)
}

func writeTestFile(t *testing.T) []byte {
	t.Helper()
	s := smf.New()

	// C major held for a beat, then E and G lifted while F and A come in
	var piano smf.Track
	piano.Add(0, gomidi.NoteOn(0, 60, 100))
	piano.Add(0, gomidi.NoteOn(0, 64, 100))
	piano.Add(0, gomidi.NoteOn(0, 67, 100))
	piano.Add(960, gomidi.NoteOff(0, 64))
	piano.Add(0, gomidi.NoteOff(0, 67))
	piano.Add(0, gomidi.NoteOn(0, 65, 100))
	piano.Add(0, gomidi.NoteOn(0, 69, 100))
	piano.Add(960, gomidi.NoteOff(0, 60))
	piano.Add(0, gomidi.NoteOff(0, 65))
	piano.Add(0, gomidi.NoteOff(0, 69))
	piano.Close(0)
	require.NoError(t, s.Add(piano))

	// a bass note on its own track under the second chord
	var bass smf.Track
	bass.Add(960, gomidi.NoteOn(1, 41, 100))
	bass.Add(960, gomidi.NoteOff(1, 41))
	bass.Close(0)
	require.NoError(t, s.Add(bass))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestSnapshots(t *testing.T) {
	s, err := Parse(writeTestFile(t))
	require.NoError(t, err)

	got := Snapshots(s)
	require.Len(t, got, 2)
	assert.Equal(t, model.Notes{60, 64, 67}, got[0].Notes)
	assert.Equal(t, model.Notes{41, 60, 65, 69}, got[1].Notes)
	assert.Equal(t, int64(0), got[0].Offset)
	assert.Greater(t, got[1].Offset, got[0].Offset)
}

func TestReadMidiFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mid")
	require.NoError(t, os.WriteFile(path, writeTestFile(t), 0666))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Tracks, 2)

	_, err = ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse([]byte("definitely not a midi file"))
	assert.Error(t, err)
}
