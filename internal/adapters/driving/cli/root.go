// Package cli implements the scribe command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/scribe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driving"
	"github.com/custodia-labs/scribe-cli/internal/logger"
)

// version is set by the composition root at startup.
var version = "dev"

// Services wired by the composition root before Execute.
var (
	parserService driving.ParserService
	noteService   driving.NoteService
	configStore   driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Turn encounter transcripts into structured clinical notes",
	Long: `Scribe extracts a structured clinical note from a raw two-party
encounter transcript. Extraction is fully deterministic and runs
offline: the same transcript always produces the same note.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// SetServices wires the services used by the commands.
func SetServices(parser driving.ParserService, notes driving.NoteService, config driven.ConfigStore) {
	parserService = parser
	noteService = notes
	configStore = config
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
