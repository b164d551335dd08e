package mcp

import (
	"context"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// mockParserService is a mock implementation of driving.ParserService.
type mockParserService struct {
	note     *domain.StructuredNote
	rendered string
	err      error
}

func (m *mockParserService) Parse(_ context.Context, _ string) (*domain.StructuredNote, error) {
	return m.note, m.err
}

func (m *mockParserService) Render(_ *domain.StructuredNote) string {
	return m.rendered
}

// mockNoteService is a mock implementation of driving.NoteService.
type mockNoteService struct {
	record  *domain.NoteRecord
	records []domain.NoteRecord
	err     error
}

func (m *mockNoteService) Save(_ context.Context, _ string) (*domain.NoteRecord, error) {
	return m.record, m.err
}

func (m *mockNoteService) Get(_ context.Context, _ string) (*domain.NoteRecord, error) {
	return m.record, m.err
}

func (m *mockNoteService) List(_ context.Context, _ int) ([]domain.NoteRecord, error) {
	return m.records, m.err
}

func (m *mockNoteService) Delete(_ context.Context, _ string) error {
	return m.err
}
