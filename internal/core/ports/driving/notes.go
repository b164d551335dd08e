package driving

import (
	"context"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// NoteService manages stored parse results.
type NoteService interface {
	// Save parses a transcript and stores the result, returning the record.
	Save(ctx context.Context, transcript string) (*domain.NoteRecord, error)

	// Get retrieves a stored record by ID.
	Get(ctx context.Context, id string) (*domain.NoteRecord, error)

	// List returns stored records, newest first. A limit of 0 means all.
	List(ctx context.Context, limit int) ([]domain.NoteRecord, error)

	// Delete removes a stored record.
	Delete(ctx context.Context, id string) error
}
