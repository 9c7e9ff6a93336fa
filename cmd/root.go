package cmd

import (
	"log/slog"
	"os"

	"github.com/denizsincar29/goerror"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/logging"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "chordex",
	Short: "Names the chords you play",
	Long: `chordex names the chords formed by held pitches. Pitches can come from a
MIDI keyboard, the command line, a MIDI file or an HTTP request.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := logging.Setup(os.Stderr, logLevel)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
}

func Execute() {
	err := rootCmd.Execute()
	// PersistentPreRunE has installed the configured logger by now
	goerror.NewError(slog.Default()).Must(err, "chordex failed")
}
