// Package timeline resolves onset, duration, progression and frequency.
package timeline

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

var (
	// relativeOnset matches "<N> hours/days/weeks/months ago".
	relativeOnset = regexp.MustCompile(`\b(\d+)\s+(hour|day|week|month)s?\s+ago\b`)

	// durationPattern matches "for/lasted/lasting (about) <N> <unit>(s)".
	durationPattern = regexp.MustCompile(`\b(?:for|lasted|lasting)\s+(?:about\s+)?(\d+)\s+(hour|minute|day)(s?)\b`)
)

// fixedOnsetPhrases latch verbatim.
var fixedOnsetPhrases = []string{
	"this morning",
	"last night",
	"yesterday",
	"today",
}

var wakingPhrases = []string{"woke up with", "woke up and"}

var earlyMorningPhrases = []string{
	"5 am",
	"5 in the morning",
	"five in the morning",
}

// progressionPatterns map in priority order; first match latches.
var progressionPatterns = []struct {
	phrase string
	value  string
}{
	{"getting worse", "worsening"},
	{"worsening", "worsening"},
	{"getting better", "improving"},
	{"improving", "improving"},
	{"comes and goes", "intermittent"},
	{"unchanged", "stable"},
	{"same", "stable"},
}

var frequencyPatterns = []struct {
	phrase string
	value  string
}{
	{"constant", "constant"},
	{"all the time", "constant"},
	{"intermittent", "intermittent"},
	{"comes and goes", "intermittent"},
	{"occasional", "occasional"},
}

// Extractor resolves the four timeline fields. Each field latches
// independently on the first statement satisfying its own pattern list.
type Extractor struct{}

// New creates a timeline extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract scans patient statements in order for each timeline field.
func (e *Extractor) Extract(statements []domain.Utterance) domain.Timeline {
	var tl domain.Timeline

	for _, st := range statements {
		lower := strings.ToLower(st.Text)

		if tl.Onset == "" {
			tl.Onset = extractOnset(lower)
		}
		if tl.Duration == "" {
			tl.Duration = extractDuration(lower)
		}
		if tl.Progression == "" {
			tl.Progression = firstMapped(lower, progressionPatterns)
		}
		if tl.Frequency == "" {
			tl.Frequency = firstMapped(lower, frequencyPatterns)
		}
	}

	return tl
}

// extractOnset tests the onset patterns in priority order within one
// statement: relative expression, fixed phrase, waking, early morning.
func extractOnset(lower string) string {
	if m := relativeOnset.FindStringSubmatch(lower); m != nil {
		unit := m[2]
		if m[1] != "1" {
			unit += "s"
		}
		return m[1] + " " + unit + " ago"
	}
	for _, phrase := range fixedOnsetPhrases {
		if strings.Contains(lower, phrase) {
			return phrase
		}
	}
	for _, phrase := range wakingPhrases {
		if strings.Contains(lower, phrase) {
			return "upon waking"
		}
	}
	for _, phrase := range earlyMorningPhrases {
		if strings.Contains(lower, phrase) {
			return "5 AM today"
		}
	}
	return ""
}

func extractDuration(lower string) string {
	m := durationPattern.FindStringSubmatch(lower)
	if m == nil {
		return ""
	}
	return m[1] + " " + m[2] + m[3]
}

func firstMapped(lower string, patterns []struct {
	phrase string
	value  string
}) string {
	for _, p := range patterns {
		if strings.Contains(lower, p.phrase) {
			return p.value
		}
	}
	return ""
}
