// Command scribe turns clinical encounter transcripts into structured notes.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/scribe-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/scribe-cli/internal/core/services"
	"github.com/custodia-labs/scribe-cli/internal/segmenter"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	store, err := sqlite.NewStore(configStore.GetString("notes.data_dir"))
	if err != nil {
		return fmt.Errorf("opening note store: %w", err)
	}
	defer store.Close()

	parser := services.NewParserService(segmenter.NewHeuristicClassifier())
	notes := services.NewNoteService(parser, store)

	cli.SetVersion(version)
	cli.SetServices(parser, notes, configStore)

	return cli.Execute()
}
