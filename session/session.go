package session

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/keyboard"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/model"
)

// Session turns raw MIDI frames into printed chord names. Frames may
// arrive from the driver's goroutine while the console resets the state,
// so every read of the keyboard happens under mu.
type Session struct {
	mu       sync.Mutex
	keyboard keyboard.State
	out      io.Writer
	debounce func(f func())
}

// New prints to out. A positive delay waits for key changes to settle
// before printing.
func New(out io.Writer, delay time.Duration) *Session {
	s := &Session{out: out}
	if delay > 0 {
		s.debounce = debounce.New(delay)
	}
	return s
}

func (s *Session) HandleFrame(frame []byte) {
	event, key, err := midi.Decode(frame)
	if err != nil {
		slog.Warn("dropping midi frame", "err", err)
		return
	}

	s.mu.Lock()
	switch event {
	case midi.KeyOn:
		s.keyboard.Press(key)
	case midi.KeyOff:
		s.keyboard.Release(key)
	default:
		s.mu.Unlock()
		slog.Debug("unhandled midi message", "event", event.String(), "frame", fmt.Sprintf("% X", frame))
		return
	}
	s.mu.Unlock()

	if s.debounce != nil {
		s.debounce(s.render)
	} else {
		s.render()
	}
}

func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keyboard.Reset()
}

func (s *Session) render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintln(s.out, s.keyboard.String())
	pitches := s.keyboard.Pitches()
	if len(pitches) == 0 {
		return
	}
	Print(s.out, chord.ResolveAll(pitches))
}

// Print writes chords in the console format, one per line with its weight.
func Print(out io.Writer, chords []model.Interpretation) {
	if len(chords) == 0 {
		fmt.Fprintln(out, "No chord found")
		return
	}
	fmt.Fprint(out, "Chords: ")
	for _, c := range chords {
		fmt.Fprintf(out, "\n\t%v [%v]", c.Symbol, c.Weight)
	}
	fmt.Fprintln(out)
}
