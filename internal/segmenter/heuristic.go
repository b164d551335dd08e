package segmenter

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driven"
)

// Ensure HeuristicClassifier implements the interface.
var _ driven.SpeakerClassifier = (*HeuristicClassifier)(nil)

// clinicianPrefixes are interrogative and prompt openings that mark an
// utterance as examiner speech.
var clinicianPrefixes = []string{
	"any ",
	"have you ",
	"do you ",
	"did you ",
	"are you ",
	"were you ",
	"what ",
	"when ",
	"how ",
	"is it ",
}

// fillerPrefixes mark short backchannel fragments worth discarding.
var fillerPrefixes = []string{
	"yeah",
	"okay",
	"mhmm",
	"uh-huh",
}

// maxFillerLen bounds the discard check: a long sentence that merely opens
// with "yeah" still carries content.
const maxFillerLen = 15

// secondPersonObservation matches observational examiner speech such as
// "your colour looks better".
var secondPersonObservation = regexp.MustCompile(`\byour\b.*\blooks?\b`)

// HeuristicClassifier assigns speaker roles from text alone using fixed
// keyword rules. It is the default SpeakerClassifier; a trained classifier
// can replace it behind the same port without touching downstream stages.
type HeuristicClassifier struct{}

// NewHeuristicClassifier creates the keyword-based role classifier.
func NewHeuristicClassifier() *HeuristicClassifier {
	return &HeuristicClassifier{}
}

// Name returns the classifier identifier for configuration.
func (c *HeuristicClassifier) Name() string {
	return "heuristic"
}

// Classify returns the probable speaker role for a trimmed fragment.
// Clinician cues are checked first, then fillers; everything else is
// attributed to the patient.
func (c *HeuristicClassifier) Classify(text string) domain.SpeakerRole {
	lower := strings.ToLower(text)

	for _, prefix := range clinicianPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return domain.RoleClinician
		}
	}
	if secondPersonObservation.MatchString(lower) {
		return domain.RoleClinician
	}

	if len(lower) < maxFillerLen {
		for _, prefix := range fillerPrefixes {
			if strings.HasPrefix(lower, prefix) {
				return domain.RoleDiscarded
			}
		}
	}

	return domain.RolePatient
}
