package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var notesLimit int

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage stored notes",
	Long:  `Commands for listing, showing and deleting stored parse results.`,
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored notes",
	RunE:  runNotesList,
}

var notesShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a stored note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotesShow,
}

var notesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a stored note",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotesDelete,
}

func init() {
	notesListCmd.Flags().IntVarP(&notesLimit, "limit", "n", 20, "maximum number of notes to list")
	notesCmd.AddCommand(notesListCmd)
	notesCmd.AddCommand(notesShowCmd)
	notesCmd.AddCommand(notesDeleteCmd)
	rootCmd.AddCommand(notesCmd)
}

func runNotesList(cmd *cobra.Command, _ []string) error {
	if noteService == nil {
		return errors.New("note service not configured")
	}

	records, err := noteService.List(cmd.Context(), notesLimit)
	if err != nil {
		return fmt.Errorf("listing notes: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No stored notes.")
		return nil
	}

	for i := range records {
		cmd.Printf("%s  %s  %s\n",
			records[i].ID,
			records[i].CreatedAt.Format("2006-01-02 15:04"),
			records[i].Note.ChiefComplaint)
	}
	return nil
}

func runNotesShow(cmd *cobra.Command, args []string) error {
	if noteService == nil {
		return errors.New("note service not configured")
	}

	rec, err := noteService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting note: %w", err)
	}

	outputRendered(cmd, rec.Rendered)
	return nil
}

func runNotesDelete(cmd *cobra.Command, args []string) error {
	if noteService == nil {
		return errors.New("note service not configured")
	}

	if err := noteService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}

	cmd.Printf("Deleted %s\n", args[0])
	return nil
}
