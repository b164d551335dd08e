package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func testRecord(id string, createdAt time.Time) *domain.NoteRecord {
	return &domain.NoteRecord{
		ID:         id,
		Transcript: "What brings you in? I'm having chest pain.",
		Note: domain.StructuredNote{
			ChiefComplaint: "Chest pain",
			Attributes:     domain.SymptomAttributes{Severity: "8/10"},
		},
		Rendered:  "**CHIEF COMPLAINT:**\nChest pain\n",
		CreatedAt: createdAt,
	}
}

func TestNewStore_Success(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	dbPath := filepath.Join(tempDir, "notes.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)

	err = store.db.Ping()
	assert.NoError(t, err)
}

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "nested", "path", "to", "db")
	store, err := NewStore(nestedDir)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, nestedDir)
}

func TestNewStore_Migrations(t *testing.T) {
	store := setupTestStore(t)

	var count int
	err := store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Greater(t, count, 0, "should have at least one migration")
}

func TestNewStore_MigrationsIdempotent(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening the same database must not re-run applied migrations.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	var count int
	err = store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_SaveAndGetNote(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	rec := testRecord("note-1", created)
	require.NoError(t, store.SaveNote(ctx, rec))

	got, err := store.GetNote(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Transcript, got.Transcript)
	assert.Equal(t, rec.Rendered, got.Rendered)
	assert.Equal(t, "Chest pain", got.Note.ChiefComplaint)
	assert.Equal(t, "8/10", got.Note.Attributes.Severity)
	assert.True(t, created.Equal(got.CreatedAt))
}

func TestStore_SaveNote_EmptyID(t *testing.T) {
	store := setupTestStore(t)

	err := store.SaveNote(context.Background(), &domain.NoteRecord{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_SaveNote_SetsCreatedAt(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	rec := testRecord("note-1", time.Time{})
	require.NoError(t, store.SaveNote(ctx, rec))

	got, err := store.GetNote(ctx, "note-1")
	require.NoError(t, err)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestStore_SaveNote_Upsert(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	rec := testRecord("note-1", time.Now().UTC())
	require.NoError(t, store.SaveNote(ctx, rec))

	rec.Rendered = "**CHIEF COMPLAINT:**\nHeadache\n"
	rec.Note.ChiefComplaint = "Headache"
	require.NoError(t, store.SaveNote(ctx, rec))

	got, err := store.GetNote(ctx, "note-1")
	require.NoError(t, err)
	assert.Equal(t, "Headache", got.Note.ChiefComplaint)

	records, err := store.ListNotes(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestStore_GetNote_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetNote(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ListNotes_NewestFirst(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveNote(ctx, testRecord("note-old", base)))
	require.NoError(t, store.SaveNote(ctx, testRecord("note-mid", base.Add(time.Hour))))
	require.NoError(t, store.SaveNote(ctx, testRecord("note-new", base.Add(2*time.Hour))))

	records, err := store.ListNotes(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "note-new", records[0].ID)
	assert.Equal(t, "note-mid", records[1].ID)
	assert.Equal(t, "note-old", records[2].ID)
}

func TestStore_ListNotes_Limit(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.SaveNote(ctx, testRecord(id, base.Add(time.Duration(i)*time.Minute))))
	}

	records, err := store.ListNotes(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "c", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
}

func TestStore_ListNotes_Empty(t *testing.T) {
	store := setupTestStore(t)

	records, err := store.ListNotes(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_DeleteNote(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveNote(ctx, testRecord("note-1", time.Now().UTC())))
	require.NoError(t, store.DeleteNote(ctx, "note-1"))

	_, err := store.GetNote(ctx, "note-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_DeleteNote_NotFound(t *testing.T) {
	store := setupTestStore(t)

	err := store.DeleteNote(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
