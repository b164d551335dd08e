// Package segmenter splits raw transcripts into role-tagged utterances.
package segmenter

import (
	"strings"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driven"
)

// minFragmentLen is the shortest fragment worth classifying.
// Anything shorter is segmentation noise.
const minFragmentLen = 5

// Segmenter splits a transcript on sentence-terminal punctuation and
// newlines and tags each retained fragment with a speaker role.
type Segmenter struct {
	classifier driven.SpeakerClassifier
}

// New creates a segmenter using the given role classifier.
func New(classifier driven.SpeakerClassifier) *Segmenter {
	return &Segmenter{classifier: classifier}
}

// Segment produces the ordered conversation for a transcript.
// Fragments shorter than five characters and backchannel fillers are
// dropped; everything else is kept in transcript order with a sequence
// index so downstream stages can reason about true adjacency.
func (s *Segmenter) Segment(transcript string) domain.Conversation {
	var conv domain.Conversation

	seq := 0
	for _, fragment := range splitFragments(transcript) {
		fragment = strings.TrimSpace(fragment)
		if len(fragment) < minFragmentLen {
			continue
		}

		role := s.classifier.Classify(fragment)
		if role == domain.RoleDiscarded {
			continue
		}

		conv.Utterances = append(conv.Utterances, domain.Utterance{
			Text:     fragment,
			Role:     role,
			Sequence: seq,
		})
		seq++
	}

	return conv
}

// splitFragments breaks the transcript on '.', '!', '?' and newlines.
func splitFragments(transcript string) []string {
	return strings.FieldsFunc(transcript, func(r rune) bool {
		switch r {
		case '.', '!', '?', '\n', '\r':
			return true
		}
		return false
	})
}
