package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesCmd_Use(t *testing.T) {
	assert.Equal(t, "notes", notesCmd.Use)
}

func TestNotesCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, 3)
	for _, c := range notesCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "show")
	assert.Contains(t, names, "delete")
}

func TestNotesListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"notes", "list"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No stored notes")
}

func TestNotesListCmd_ShowsRecords(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rec, err := noteService.Save(context.Background(), chestPainTranscript)
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"notes", "list"})
	defer rootCmd.SetArgs(nil)

	err = rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), rec.ID)
	assert.Contains(t, buf.String(), "Chest pain")
}

func TestNotesShowCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rec, err := noteService.Save(context.Background(), chestPainTranscript)
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"notes", "show", rec.ID})
	defer rootCmd.SetArgs(nil)

	err = rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "CHIEF COMPLAINT")
}

func TestNotesShowCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"notes", "show", "missing"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "getting note")
}

func TestNotesDeleteCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rec, err := noteService.Save(context.Background(), chestPainTranscript)
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"notes", "delete", rec.ID})
	defer rootCmd.SetArgs(nil)

	err = rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Deleted "+rec.ID)

	_, err = noteService.Get(context.Background(), rec.ID)
	assert.Error(t, err)
}

func TestNotesListCmd_ServiceNotConfigured(t *testing.T) {
	oldService := noteService
	noteService = nil
	defer func() {
		noteService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"notes", "list"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "note service not configured")
}
