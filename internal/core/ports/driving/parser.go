package driving

import (
	"context"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// ParserService converts raw transcripts into structured clinical notes.
type ParserService interface {
	// Parse extracts a structured note from a raw two-party transcript.
	// Degenerate input is not an error: an empty transcript yields a note
	// with the sentinel chief complaint and empty collections.
	Parse(ctx context.Context, transcript string) (*domain.StructuredNote, error)

	// Render produces the plain-text note for a parse result.
	// Rendering is deterministic: identical notes render byte-identically.
	Render(note *domain.StructuredNote) string
}
