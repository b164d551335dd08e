// Package domain defines the core business entities for Scribe.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Utterance: A segmented transcript fragment with an inferred speaker role
//   - Conversation: The ordered utterance sequence for one encounter
//   - StructuredNote: The extracted clinical note
//   - NoteRecord: A stored note with its source transcript
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
