package cli

import (
	"github.com/custodia-labs/scribe-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/scribe-cli/internal/core/services"
	"github.com/custodia-labs/scribe-cli/internal/segmenter"
)

// setupTestServices wires real services over an in-memory store and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldParser := parserService
	oldNotes := noteService
	oldConfig := configStore

	parser := services.NewParserService(segmenter.NewHeuristicClassifier())
	parserService = parser
	noteService = services.NewNoteService(parser, memory.NewNoteStore())
	configStore = nil

	return func() {
		parserService = oldParser
		noteService = oldNotes
		configStore = oldConfig
	}
}
