package domain

import "time"

// NoteRecord is a stored parse result. The core pipeline itself is
// stateless; records exist only in the storage adapters for callers that
// want to keep past encounters.
type NoteRecord struct {
	// ID is the unique identifier for the record.
	ID string

	// Transcript is the raw input text the note was extracted from.
	Transcript string

	// Note is the structured extraction result.
	Note StructuredNote

	// Rendered is the plain-text rendering of Note at parse time.
	Rendered string

	// CreatedAt is when the record was stored.
	CreatedAt time.Time
}
