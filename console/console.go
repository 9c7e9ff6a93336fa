package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const helpText = `Commands:
  help       show this message
  reconnect  pick a MIDI input again
  exit       quit`

type Console struct {
	Out io.Writer

	// called for "reconnect"; an error is printed and the loop goes on
	Reconnect func() error
}

// Run reads commands until "exit" or end of input. The reconnect hook may
// read from the same reader to prompt for a port.
func (c *Console) Run(in *bufio.Reader) error {
	for {
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line == "" && err != nil {
			return nil
		}

		switch cmd := strings.TrimSpace(line); cmd {
		case "":
		case "exit":
			return nil
		case "reconnect":
			if c.Reconnect == nil {
				fmt.Fprintln(c.Out, "Reconnect is not available")
				continue
			}
			if err := c.Reconnect(); err != nil {
				fmt.Fprintf(c.Out, "[ERROR] %v\n", err)
			}
		case "help":
			fmt.Fprintln(c.Out, helpText)
		default:
			fmt.Fprintf(c.Out, "Unknown command: %v\n", cmd)
		}
	}
}
