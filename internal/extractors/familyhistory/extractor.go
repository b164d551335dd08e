// Package familyhistory extracts family-attributed conditions.
package familyhistory

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// memberMarkers map possessive references to canonical family members.
var memberMarkers = []struct {
	marker string
	member string
}{
	{"my dad", "Father"},
	{"my father", "Father"},
	{"my mom", "Mother"},
	{"my mother", "Mother"},
	{"my brother", "Brother"},
	{"my sister", "Sister"},
}

// conditionKeywords map cue phrases to canonical condition labels.
var conditionKeywords = []struct {
	keyword   string
	condition string
}{
	{"heart attack", "MI"},
	{"myocardial infarction", "MI"},
	{"stroke", "stroke"},
	{"cva", "stroke"},
	{"diabetes", "diabetes"},
	{"cancer", "cancer"},
	{"high blood pressure", "hypertension"},
	{"hypertension", "hypertension"},
}

// onsetAge matches "when he was 52" / "when she was 47".
var onsetAge = regexp.MustCompile(`\bwhen\s+(?:he|she)\s+was\s+(\d{1,3})\b`)

// Extractor collects family history entries with optional onset age.
type Extractor struct{}

// New creates a family history extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract scans statements carrying a family-member marker for condition
// keywords and composes "<Member> with <condition>", adding "at age <N>"
// when an onset age is stated. The result is deduplicated and sorted.
func (e *Extractor) Extract(statements []domain.Utterance) []string {
	found := make(map[string]bool)

	for _, st := range statements {
		lower := strings.ToLower(st.Text)

		member := matchMember(lower)
		if member == "" {
			continue
		}

		for _, ck := range conditionKeywords {
			if !strings.Contains(lower, ck.keyword) {
				continue
			}

			entry := fmt.Sprintf("%s with %s", member, ck.condition)
			// Onset age is recorded for MI only.
			if ck.condition == "MI" {
				if m := onsetAge.FindStringSubmatch(lower); m != nil {
					entry = fmt.Sprintf("%s at age %s", entry, m[1])
				}
			}
			found[entry] = true
		}
	}

	if len(found) == 0 {
		return nil
	}

	out := make([]string, 0, len(found))
	for f := range found {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func matchMember(lower string) string {
	for _, mm := range memberMarkers {
		if strings.Contains(lower, mm.marker) {
			return mm.member
		}
	}
	return ""
}
