package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driving"
)

// Ensure NoteService implements the interface.
var _ driving.NoteService = (*NoteService)(nil)

// NoteService persists parse results through the NoteStore port.
type NoteService struct {
	parser driving.ParserService
	store  driven.NoteStore
	now    func() time.Time
}

// NewNoteService creates a note service. The store may be nil, in which
// case every operation reports ErrStoreUnavailable.
func NewNoteService(parser driving.ParserService, store driven.NoteStore) *NoteService {
	return &NoteService{
		parser: parser,
		store:  store,
		now:    time.Now,
	}
}

// Save parses a transcript and stores the result.
func (s *NoteService) Save(ctx context.Context, transcript string) (*domain.NoteRecord, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	parsed, err := s.parser.Parse(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("parsing transcript: %w", err)
	}

	rec := &domain.NoteRecord{
		ID:         uuid.New().String(),
		Transcript: transcript,
		Note:       *parsed,
		Rendered:   s.parser.Render(parsed),
		CreatedAt:  s.now().UTC(),
	}

	if err := s.store.SaveNote(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving note: %w", err)
	}
	return rec, nil
}

// Get retrieves a stored record by ID.
func (s *NoteService) Get(ctx context.Context, id string) (*domain.NoteRecord, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.store.GetNote(ctx, id)
}

// List returns stored records, newest first.
func (s *NoteService) List(ctx context.Context, limit int) ([]domain.NoteRecord, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.store.ListNotes(ctx, limit)
}

// Delete removes a stored record.
func (s *NoteService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrStoreUnavailable
	}
	return s.store.DeleteNote(ctx, id)
}
