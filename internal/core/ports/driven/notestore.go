package driven

import (
	"context"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// NoteStore persists parse results for callers that keep past encounters.
// Backed by SQLite; an in-memory implementation exists for tests.
type NoteStore interface {
	// SaveNote stores a note record.
	SaveNote(ctx context.Context, rec *domain.NoteRecord) error

	// GetNote retrieves a record by ID.
	GetNote(ctx context.Context, id string) (*domain.NoteRecord, error)

	// ListNotes returns records ordered by creation time, newest first.
	// A limit of 0 means no limit.
	ListNotes(ctx context.Context, limit int) ([]domain.NoteRecord, error)

	// DeleteNote removes a record.
	DeleteNote(ctx context.Context, id string) error
}
