package driven

import (
	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// SpeakerClassifier assigns a speaker role to a single utterance fragment.
// The default implementation is a keyword heuristic; the interface exists so
// a trained or acoustic-feature classifier can replace it without touching
// any downstream extraction stage.
type SpeakerClassifier interface {
	// Name returns the classifier identifier for configuration.
	Name() string

	// Classify returns the probable speaker role for a trimmed fragment.
	// It must be deterministic: the same text always yields the same role.
	Classify(text string) domain.SpeakerRole
}
