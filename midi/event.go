package midi

import (
	"errors"
	"fmt"
)

type Event int

const (
	KeyOff Event = iota
	KeyOn
	PolyphonicKeyPressure
	ControlChange
	ProgramChange
	ChannelPressure
	PitchBendChange
	SystemMessage
)

func (e Event) String() string {
	switch e {
	case KeyOff:
		return "key off"
	case KeyOn:
		return "key on"
	case PolyphonicKeyPressure:
		return "polyphonic key pressure"
	case ControlChange:
		return "control change"
	case ProgramChange:
		return "program change"
	case ChannelPressure:
		return "channel pressure"
	case PitchBendChange:
		return "pitch bend change"
	case SystemMessage:
		return "system message"
	default:
		return "unknown"
	}
}

var (
	ErrShortFrame = errors.New("midi frame too short")
	ErrNotStatus  = errors.New("midi frame does not start with a status byte")
)

// Decode reads the event kind from the high nibble of the status byte and
// returns the second byte, which is the key number for key events.
// A key on with zero velocity is a key off.
func Decode(frame []byte) (Event, uint8, error) {
	if len(frame) < 2 {
		return 0, 0, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(frame))
	}
	status, key := frame[0], frame[1]
	if status < 0x80 {
		return 0, 0, fmt.Errorf("%w: % X", ErrNotStatus, frame)
	}

	event := Event(status>>4) - 0x8
	if event == KeyOn && len(frame) > 2 && frame[2] == 0 {
		event = KeyOff
	}
	return event, key, nil
}
