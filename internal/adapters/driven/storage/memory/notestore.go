// Package memory provides in-memory store implementations for tests and
// ephemeral use.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driven"
)

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

// NoteStore is an in-memory implementation of driven.NoteStore.
type NoteStore struct {
	mu      sync.RWMutex
	records map[string]domain.NoteRecord
}

// NewNoteStore creates a new in-memory note store.
func NewNoteStore() *NoteStore {
	return &NoteStore{
		records: make(map[string]domain.NoteRecord),
	}
}

// SaveNote stores or updates a record.
func (s *NoteStore) SaveNote(_ context.Context, rec *domain.NoteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = *rec
	return nil
}

// GetNote retrieves a record by ID.
func (s *NoteStore) GetNote(_ context.Context, id string) (*domain.NoteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// ListNotes returns records ordered by creation time, newest first.
func (s *NoteStore) ListNotes(_ context.Context, limit int) ([]domain.NoteRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.NoteRecord, 0, len(s.records))
	for id := range s.records {
		out = append(out, s.records[id])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// DeleteNote removes a record.
func (s *NoteStore) DeleteNote(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.records, id)
	return nil
}
