// Package associated collects affirmed, non-primary symptoms.
package associated

import (
	"sort"
	"strings"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// symptomKeywords maps literal cue phrases to canonical symptom names.
var symptomKeywords = []struct {
	keyword   string
	canonical string
}{
	{"shortness of breath", "shortness of breath"},
	{"short of breath", "shortness of breath"},
	{"breathless", "shortness of breath"},
	{"nauseous", "nausea"},
	{"nauseated", "nausea"},
	{"nausea", "nausea"},
	{"vomit", "vomiting"},
	{"threw up", "vomiting"},
	{"sweating", "diaphoresis"},
	{"sweaty", "diaphoresis"},
	{"diaphore", "diaphoresis"},
	{"dizzy", "dizziness"},
	{"dizziness", "dizziness"},
	{"lightheaded", "lightheadedness"},
	{"palpitations", "palpitations"},
	{"heart racing", "palpitations"},
	{"heart is racing", "palpitations"},
	{"feverish", "fever"},
	{"fever", "fever"},
	{"chills", "chills"},
	{"cough", "cough"},
	{"fatigue", "fatigue"},
	{"headache", "headache"},
}

var denialMarkers = []string{
	"no ",
	"no,",
	"not ",
	"nope",
	"none",
	"nothing like that",
	"denies",
	"negative for",
}

var affirmationMarkers = []string{
	"yes",
	"yeah",
	"i have",
	"i've been",
	"i feel",
	"a little bit",
	"pretty",
	"very",
	"really",
}

// clauseSeparators bound the negation scope within a statement.
var clauseSeparators = []string{",", ";", " but ", " and "}

// Extractor collects affirmed non-primary symptoms, negation-aware.
type Extractor struct{}

// New creates an associated symptom extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract scans patient statements for symptom keywords. A statement must
// carry an affirmation marker to be eligible; negation is scoped to the
// clause containing the keyword, so "I feel dizzy but no nausea" records
// dizziness while still skipping nausea. Symptoms whose cue keyword occurs
// in the chief complaint are excluded. The result is deduplicated and
// sorted alphabetically.
func (e *Extractor) Extract(statements []domain.Utterance, chiefComplaint string) []string {
	chiefLower := strings.ToLower(chiefComplaint)

	// Exclude any canonical symptom with a cue inside the chief complaint.
	excluded := make(map[string]bool)
	for _, sk := range symptomKeywords {
		if strings.Contains(chiefLower, sk.keyword) {
			excluded[sk.canonical] = true
		}
	}

	found := make(map[string]bool)
	for _, st := range statements {
		lower := strings.ToLower(st.Text)
		if !containsAny(lower, affirmationMarkers) {
			continue
		}

		for _, clause := range splitClauses(lower) {
			if containsAny(clause, denialMarkers) {
				continue
			}
			for _, sk := range symptomKeywords {
				if excluded[sk.canonical] {
					continue
				}
				if strings.Contains(clause, sk.keyword) {
					found[sk.canonical] = true
				}
			}
		}
	}

	if len(found) == 0 {
		return nil
	}

	out := make([]string, 0, len(found))
	for s := range found {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// splitClauses breaks a statement at clause separators.
func splitClauses(lower string) []string {
	clauses := []string{lower}
	for _, sep := range clauseSeparators {
		var next []string
		for _, c := range clauses {
			next = append(next, strings.Split(c, sep)...)
		}
		clauses = next
	}
	return clauses
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
