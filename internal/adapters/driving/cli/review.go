package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui"
)

var reviewID string

var reviewCmd = &cobra.Command{
	Use:   "review [file]",
	Short: "Review a note in the interactive terminal UI",
	Long: `Opens an extracted note for interactive review.

Parses the given transcript file, or loads a stored note with --id.

Controls:
  ↑/k, ↓/j - Scroll
  tab      - Toggle note / transcript
  q        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVar(&reviewID, "id", "", "review a stored note by ID")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	// Panic recovery keeps the terminal usable and surfaces the trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in review UI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	model, err := buildReviewModel(cmd, args)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("review UI error: %w", err)
	}
	return nil
}

// buildReviewModel resolves the note to review from the flags and args.
func buildReviewModel(cmd *cobra.Command, args []string) (*tui.Model, error) {
	if reviewID != "" {
		if noteService == nil {
			return nil, errors.New("note service not configured")
		}
		rec, err := noteService.Get(cmd.Context(), reviewID)
		if err != nil {
			return nil, fmt.Errorf("getting note: %w", err)
		}
		return tui.NewModel(&rec.Note, rec.Rendered, rec.Transcript), nil
	}

	if len(args) != 1 {
		return nil, errors.New("pass a transcript file or --id")
	}
	if parserService == nil {
		return nil, errors.New("parser service not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}

	note, err := parserService.Parse(cmd.Context(), string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing transcript: %w", err)
	}

	return tui.NewModel(note, parserService.Render(note), string(data)), nil
}
