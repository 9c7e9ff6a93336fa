package device

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	ErrNoPorts        = errors.New("no midi port available")
	ErrPortOutOfRange = errors.New("selected a port out of range")
	ErrNotANumber     = errors.New("not a port number")
)

// SelectPort asks which port to use. A single port is picked without asking.
func SelectPort[P fmt.Stringer](ports []P, in *bufio.Reader, out io.Writer) (P, error) {
	var none P
	if len(ports) == 0 {
		return none, ErrNoPorts
	}
	if len(ports) == 1 {
		fmt.Fprintln(out, "Only one port available, selecting the only option")
		fmt.Fprintf(out, "Selected port 0 - %v\n", ports[0])
		return ports[0], nil
	}

	fmt.Fprintln(out, "Please select midi input port: ")
	for i, port := range ports {
		fmt.Fprintf(out, "  %v) %v\n", i, port)
	}

	line, err := in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return none, err
	}

	selection, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return none, fmt.Errorf("%w: %q", ErrNotANumber, strings.TrimSpace(line))
	}
	if selection < 0 || selection >= len(ports) {
		return none, fmt.Errorf("%w (0..%v)", ErrPortOutOfRange, len(ports)-1)
	}

	fmt.Fprintf(out, "Selected port %v: %v\n", selection, ports[selection])
	return ports[selection], nil
}

// SelectPortUntilValid asks again after every bad answer. Any other error,
// including a failed read, is returned.
func SelectPortUntilValid[P fmt.Stringer](ports []P, in *bufio.Reader, out io.Writer) (P, error) {
	for {
		port, err := SelectPort(ports, in, out)
		if !errors.Is(err, ErrNotANumber) && !errors.Is(err, ErrPortOutOfRange) {
			return port, err
		}
		fmt.Fprintf(out, "[ERROR] %v\n", err)
	}
}

type Connection struct {
	port drivers.In
	stop func()
}

func (c *Connection) Name() string {
	return c.port.String()
}

func (c *Connection) Close() error {
	c.stop()
	return c.port.Close()
}

// Connect lets the user pick an input and sends every raw message from it
// to handle. handle runs on the driver's goroutine.
func Connect(in *bufio.Reader, out io.Writer, handle func(frame []byte)) (*Connection, error) {
	ports, err := drivers.Get().Ins()
	if err != nil {
		return nil, fmt.Errorf("listing midi inputs: %w", err)
	}

	port, err := SelectPortUntilValid(ports, in, out)
	if err != nil {
		return nil, err
	}
	if err := port.Open(); err != nil {
		return nil, fmt.Errorf("opening %v: %w", port, err)
	}

	stop, err := midi.ListenTo(port, func(msg midi.Message, timestampms int32) {
		handle(msg.Bytes())
	})
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("listening to %v: %w", port, err)
	}

	slog.Info("midi input connected", "device", port.String())
	return &Connection{port: port, stop: stop}, nil
}

func CloseDriver() {
	midi.CloseDriver()
}
