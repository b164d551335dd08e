// Package attributes resolves OLDCARTS symptom attributes from patient speech.
package attributes

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// numericSeverity matches "8 out of 10" and "8/10" expressions.
var numericSeverity = regexp.MustCompile(`\b(\d{1,2})\s*(?:out of|/)\s*10\b`)

// qualityKeywords are pain/symptom character descriptors, tested in order.
var qualityKeywords = []string{
	"pressure",
	"squeezing",
	"sharp",
	"dull",
	"burning",
	"stabbing",
	"throbbing",
	"aching",
	"cramping",
	"tightness",
}

var descriptiveSeverities = []string{"severe", "moderate", "mild"}

// centralLocationPhrases resolve before any left/right phrasing.
var centralLocationPhrases = []string{
	"middle of my chest",
	"center of my chest",
	"centre of my chest",
	"substernal",
	"behind my breastbone",
	"behind the breastbone",
}

// radiationVerbs must immediately precede a body part for radiation to latch.
var radiationVerbs = []string{
	"radiates",
	"goes to",
	"spreads to",
	"goes into",
	"travels to",
	"shoots to",
}

// radiationTargets are ordered longest-first so "left arm" wins over "arm".
var radiationTargets = []string{
	"left shoulder",
	"right shoulder",
	"left arm",
	"right arm",
	"shoulder",
	"arm",
	"jaw",
	"neck",
	"back",
}

var aggravatingMarkers = []string{"worse with", "worse when"}

var aggravatingFactors = []string{
	"exertion",
	"exercise",
	"climbing stairs",
	"stairs",
	"walking",
	"deep breath",
	"breathing",
	"movement",
	"moving",
	"lying down",
	"lying flat",
	"eating",
	"coughing",
	"stress",
}

var relievingMarkers = []string{"better with", "relieved by"}

var relievingFactors = []string{
	"sitting up",
	"sitting down",
	"leaning forward",
	"lying still",
	"rest",
	"nitroglycerin",
	"antacids",
	"ibuprofen",
	"tylenol",
	"medication",
}

// Extractor resolves quality, severity, location, radiation and the
// modifying factor lists. Single-valued fields latch on the first
// qualifying statement; the factor lists accumulate every match.
type Extractor struct{}

// New creates a symptom attribute extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract scans all patient statements for each attribute independently.
func (e *Extractor) Extract(statements []domain.Utterance, chiefComplaint string) domain.SymptomAttributes {
	attrs := domain.SymptomAttributes{
		Severity: extractSeverity(statements),
	}

	wantLocation := strings.Contains(strings.ToLower(chiefComplaint), "pain")

	for _, st := range statements {
		lower := strings.ToLower(st.Text)

		if attrs.Quality == "" {
			attrs.Quality = firstContained(lower, qualityKeywords)
		}
		if wantLocation && attrs.Location == "" {
			attrs.Location = extractLocation(lower)
		}
		if attrs.Radiation == "" {
			attrs.Radiation = extractRadiation(lower)
		}

		if containsAny(lower, aggravatingMarkers) {
			attrs.AggravatingFactors = append(attrs.AggravatingFactors, matchedFactors(lower, aggravatingFactors)...)
		}
		if containsAny(lower, relievingMarkers) {
			attrs.RelievingFactors = append(attrs.RelievingFactors, matchedFactors(lower, relievingFactors)...)
		}
	}

	return attrs
}

// extractSeverity applies the two-tier priority: a numeric expression
// anywhere in the statement set always beats a descriptive keyword,
// independent of statement order.
func extractSeverity(statements []domain.Utterance) string {
	for _, st := range statements {
		if m := numericSeverity.FindStringSubmatch(strings.ToLower(st.Text)); m != nil {
			return fmt.Sprintf("%s/10", m[1])
		}
	}
	for _, st := range statements {
		if kw := firstContained(strings.ToLower(st.Text), descriptiveSeverities); kw != "" {
			return kw
		}
	}
	return ""
}

func extractLocation(lower string) string {
	if containsAny(lower, centralLocationPhrases) {
		return "substernal"
	}
	if strings.Contains(lower, "chest") {
		if strings.Contains(lower, "left") {
			return "left chest"
		}
		if strings.Contains(lower, "right") {
			return "right chest"
		}
	}
	return ""
}

// extractRadiation requires an explicit radiation verb with a body part
// following it in the same statement.
func extractRadiation(lower string) string {
	for _, verb := range radiationVerbs {
		idx := strings.Index(lower, verb)
		if idx < 0 {
			continue
		}
		rest := lower[idx+len(verb):]
		for _, target := range radiationTargets {
			if strings.Contains(rest, target) {
				return "to " + target
			}
		}
	}
	return ""
}

// matchedFactors returns each recognised factor in the statement. A factor
// that is a substring of an already-matched factor is skipped, so
// "climbing stairs" does not also record "stairs".
func matchedFactors(lower string, factors []string) []string {
	var out []string
	for _, f := range factors {
		if !strings.Contains(lower, f) {
			continue
		}
		covered := false
		for _, prev := range out {
			if strings.Contains(prev, f) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, f)
		}
	}
	return out
}

func firstContained(s string, keywords []string) string {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return kw
		}
	}
	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
