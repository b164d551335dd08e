package mcp

import (
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Parser turns transcripts into structured notes.
	Parser driving.ParserService

	// Notes manages stored parse results.
	Notes driving.NoteService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Parser == nil {
		return ErrMissingParserService
	}
	// Notes is optional; note tools are only registered when it is set
	return nil
}
