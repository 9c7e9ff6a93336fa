package cmd

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/jsphweid/chordex/console"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/device"
	"github.com/jsphweid/chordex/session"
	"github.com/spf13/cobra"
)

var debounceDelay time.Duration

func init() {
	listenCmd.Flags().DurationVar(&debounceDelay, "debounce", constants.GetDebounce(), "wait for keys to settle before printing, e.g. 30ms")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a MIDI keyboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(), debounceDelay)
	},
}

func listen(in *bufio.Reader, out io.Writer, delay time.Duration) error {
	defer device.CloseDriver()

	s := session.New(out, delay)
	conn, err := device.Connect(in, out, s.HandleFrame)
	if err != nil {
		return err
	}
	defer func() {
		if conn != nil {
			conn.Close()
		}
	}()

	c := console.Console{
		Out: out,
		Reconnect: func() error {
			if conn != nil {
				conn.Close()
				conn = nil
			}
			s.Reset()
			next, err := device.Connect(in, out, s.HandleFrame)
			if err != nil {
				return err
			}
			conn = next
			return nil
		},
	}

	fmt.Fprintf(out, "Listening to %v, type \"help\" for commands\n", conn.Name())
	return c.Run(in)
}
