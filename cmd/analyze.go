package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/note"
	"github.com/jsphweid/chordex/util"
	"github.com/spf13/cobra"
)

var analyzeLimit int

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeLimit, "limit", "n", 0, "only print the first n chords (0 prints all)")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.mid>",
	Short: "Names every chord in a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyze(cmd.OutOrStdout(), args[0], analyzeLimit)
	},
}

func analyze(out io.Writer, path string, limit int) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}

	snapshots := midi.Snapshots(s)
	n := len(snapshots)
	if limit > 0 {
		n = util.Min(limit, n)
	}
	for _, snap := range snapshots[:n] {
		fmt.Fprintln(out, describeSnapshot(snap))
	}
	return nil
}

func describeSnapshot(snap model.Snapshot) string {
	var pitches []note.Pitch
	for _, key := range snap.Notes {
		if p, _, ok := note.FromKey(key); ok {
			pitches = append(pitches, p)
		}
	}

	symbol := "-"
	if best, ok := chord.Best(pitches); ok {
		symbol = fmt.Sprintf("%v [%v]", best.Symbol, best.Weight)
	}
	seconds := float64(snap.Offset) / 1e6
	return fmt.Sprintf("%8.3fs  %-24v %v", seconds, strings.Join(pitchNames(pitches), " "), symbol)
}
