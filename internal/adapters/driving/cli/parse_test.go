package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chestPainTranscript = `What brings you in today?
I'm having chest pain since this morning.
It's like a pressure, about 8 out of 10, and it goes to my left arm.
Any shortness of breath or nausea?
No, nothing like that.`

func writeTranscript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "encounter.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseCmd_Use(t *testing.T) {
	assert.Equal(t, "parse [file]", parseCmd.Use)
}

func TestParseCmd_HasFlags(t *testing.T) {
	require.NotNil(t, parseCmd.Flags().Lookup("json"))
	require.NotNil(t, parseCmd.Flags().Lookup("save"))
}

func TestParseCmd_File(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTranscript(t, chestPainTranscript)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"parse", path})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "CHIEF COMPLAINT")
	assert.Contains(t, buf.String(), "Chest pain")
}

func TestParseCmd_Stdin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader(chestPainTranscript))
	rootCmd.SetArgs([]string{"parse"})
	defer func() {
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Chest pain")
}

func TestParseCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTranscript(t, chestPainTranscript)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"parse", "--json", path})
	defer func() {
		rootCmd.SetArgs(nil)
		parseJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"ChiefComplaint\"")
	assert.Contains(t, buf.String(), "\"Chest pain\"")
}

func TestParseCmd_Save(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTranscript(t, chestPainTranscript)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"parse", "--save", path})
	defer func() {
		rootCmd.SetArgs(nil)
		parseSave = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Saved as ")
}

func TestParseCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"parse", filepath.Join(t.TempDir(), "missing.txt")})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reading transcript")
}

func TestParseCmd_ServiceNotConfigured(t *testing.T) {
	oldService := parserService
	parserService = nil
	defer func() {
		parserService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"parse", "whatever.txt"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parser service not configured")
}
