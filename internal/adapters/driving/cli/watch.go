package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/scribe-cli/internal/logger"
	"github.com/custodia-labs/scribe-cli/internal/watcher"
)

var watchSave bool

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and parse new transcripts",
	Long: `Watches a directory for transcript files (.txt) and parses each one
as it appears. Runs until interrupted.

The directory defaults to the watch.dir config value.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchSave, "save", false, "store each result for later retrieval")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if parserService == nil {
		return errors.New("parser service not configured")
	}

	dir := ""
	if len(args) == 1 {
		dir = args[0]
	} else if configStore != nil {
		dir = configStore.GetString("watch.dir")
	}
	if dir == "" {
		return errors.New("no watch directory: pass one or set watch.dir")
	}

	if watchSave && noteService == nil {
		return errors.New("note service not configured")
	}

	w, err := watcher.NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Stop()

	ctx := cmd.Context()
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}

	cmd.Printf("Watching %s for transcripts...\n", dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			if err := handleTranscriptFile(cmd, ev.Path); err != nil {
				// One bad transcript must not stop the watch loop.
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
			}
		}
	}
}

// handleTranscriptFile parses a single watched file and prints the note.
func handleTranscriptFile(cmd *cobra.Command, path string) error {
	logger.Info("parsing %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	cmd.Printf("--- %s ---\n", path)

	if watchSave {
		rec, err := noteService.Save(cmd.Context(), string(data))
		if err != nil {
			return fmt.Errorf("saving %s: %w", path, err)
		}
		outputRendered(cmd, rec.Rendered)
		cmd.Printf("Saved as %s\n", rec.ID)
		return nil
	}

	note, err := parserService.Parse(cmd.Context(), string(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	outputRendered(cmd, parserService.Render(note))
	return nil
}
