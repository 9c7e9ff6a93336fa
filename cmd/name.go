package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/note"
	"github.com/jsphweid/chordex/session"
	"github.com/spf13/cobra"
)

var (
	nameAll  bool
	nameJSON bool
)

func init() {
	nameCmd.Flags().BoolVarP(&nameAll, "all", "a", false, "print every interpretation, not just the best")
	nameCmd.Flags().BoolVar(&nameJSON, "json", false, "print interpretations as JSON")
	rootCmd.AddCommand(nameCmd)
}

var nameCmd = &cobra.Command{
	Use:   "name <pitch|key>...",
	Short: "Names the chord formed by the given pitches",
	Example: `  chordex name C3 E3 G3
  chordex name --all 62 65 69 72`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pitches, err := parsePitches(args)
		if err != nil {
			return err
		}
		return name(cmd.OutOrStdout(), pitches, nameAll, nameJSON)
	},
}

func name(out io.Writer, pitches []note.Pitch, all bool, asJSON bool) error {
	chords := chord.ResolveAll(pitches)
	if !all && len(chords) > 1 {
		chords = chords[:1]
	}

	if asJSON {
		return json.NewEncoder(out).Encode(chords)
	}
	if all {
		session.Print(out, chords)
		return nil
	}
	if len(chords) == 0 {
		fmt.Fprintln(out, "No chord found")
		return nil
	}
	fmt.Fprintf(out, "%v [%v]\n", chords[0].Symbol, chords[0].Weight)
	return nil
}
