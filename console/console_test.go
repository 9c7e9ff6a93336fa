package console

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func input(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestExitStopsReading(t *testing.T) {
	var out bytes.Buffer
	reconnects := 0
	c := Console{Out: &out, Reconnect: func() error {
		reconnects++
		return nil
	}}

	err := c.Run(input("reconnect\nexit\nreconnect\n"))
	assert.NoError(t, err)
	assert.Equal(t, 1, reconnects)
	assert.Empty(t, out.String())
}

func TestEndOfInputIsNotAnError(t *testing.T) {
	c := Console{Out: &bytes.Buffer{}}
	assert.NoError(t, c.Run(input("")))
}

func TestHelpAndUnknown(t *testing.T) {
	var out bytes.Buffer
	c := Console{Out: &out}
	assert.NoError(t, c.Run(input("help\n\n  \ndance\n")))
	assert.Contains(t, out.String(), "reconnect  pick a MIDI input again")
	assert.Contains(t, out.String(), "Unknown command: dance")
}

func TestReconnectErrorKeepsLooping(t *testing.T) {
	var out bytes.Buffer
	calls := 0
	c := Console{Out: &out, Reconnect: func() error {
		calls++
		return errors.New("no midi port available")
	}}
	assert.NoError(t, c.Run(input("reconnect\nreconnect\n")))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, strings.Count(out.String(), "[ERROR] no midi port available"))
}

func TestTrailingWhitespaceIsTrimmed(t *testing.T) {
	var out bytes.Buffer
	c := Console{Out: &out}
	assert.NoError(t, c.Run(input("exit \r\nhelp\n")))
	assert.Empty(t, out.String())
}

func TestReconnectWithoutHook(t *testing.T) {
	var out bytes.Buffer
	c := Console{Out: &out}
	assert.NoError(t, c.Run(input("reconnect\n")))
	assert.Contains(t, out.String(), "not available")
}
