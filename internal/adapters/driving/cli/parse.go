package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

var (
	parseJSON bool
	parseSave bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a transcript into a structured note",
	Long: `Parses an encounter transcript and prints the resulting note.

Reads from the given file, or from stdin when no file (or "-") is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output the structured note as JSON")
	parseCmd.Flags().BoolVar(&parseSave, "save", false, "store the result for later retrieval")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if parserService == nil {
		return errors.New("parser service not configured")
	}

	transcript, err := readTranscript(cmd, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if parseSave {
		if noteService == nil {
			return errors.New("note service not configured")
		}
		rec, err := noteService.Save(ctx, transcript)
		if err != nil {
			return fmt.Errorf("saving note: %w", err)
		}
		if parseJSON {
			return outputNoteJSON(cmd, &rec.Note)
		}
		outputRendered(cmd, rec.Rendered)
		cmd.Printf("Saved as %s\n", rec.ID)
		return nil
	}

	note, err := parserService.Parse(ctx, transcript)
	if err != nil {
		return fmt.Errorf("parsing transcript: %w", err)
	}

	if parseJSON {
		return outputNoteJSON(cmd, note)
	}

	outputRendered(cmd, parserService.Render(note))
	return nil
}

// readTranscript reads the transcript from the file argument or stdin.
func readTranscript(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading transcript: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func outputNoteJSON(cmd *cobra.Command, note *domain.StructuredNote) error {
	data, err := json.MarshalIndent(note, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal note: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputRendered prints the rendered note, bolding section headers when
// stdout is a terminal. Piped output gets the plain bytes.
func outputRendered(cmd *cobra.Command, rendered string) {
	if !styledOutput() {
		cmd.Print(rendered)
		return
	}

	header := lipgloss.NewStyle().Bold(true)
	for _, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		if strings.HasPrefix(line, "**") && strings.HasSuffix(line, ":**") {
			cmd.Println(header.Render(line))
		} else {
			cmd.Println(line)
		}
	}
}

// styledOutput reports whether section headers should be styled.
// Config can force it off; otherwise it follows terminal detection.
func styledOutput() bool {
	if configStore != nil {
		if v, ok := configStore.Get("output.styled"); ok {
			b, isBool := v.(bool)
			return isBool && b
		}
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
