// Package complaint resolves the chief complaint from early patient speech.
package complaint

import (
	"strings"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// maxStatements bounds the search: the reason for visit is stated early or
// not at all.
const maxStatements = 10

// trigger maps a literal substring to a canonical complaint label.
type trigger struct {
	phrase string
	label  string
}

// category is one trigger family. Categories are tested in declaration
// order; within a category, triggers are tested in declaration order.
type category struct {
	name string
	// marker gates the category: when non-empty, the statement must contain
	// at least one marker for the triggers to apply.
	markers  []string
	triggers []trigger
}

var categories = []category{
	{
		name:    "possessive",
		markers: []string{"having", "i have", "i've got", "my "},
		triggers: []trigger{
			{"chest pain", "Chest pain"},
			{"chest pressure", "Chest pressure"},
			{"chest tightness", "Chest tightness"},
			{"palpitations", "Palpitations"},
			{"heart racing", "Palpitations"},
			{"heart is racing", "Palpitations"},
			{"headache", "Headache"},
			{"abdominal pain", "Abdominal pain"},
			{"stomach pain", "Abdominal pain"},
			{"back pain", "Back pain"},
			{"sore throat", "Sore throat"},
			{"fever", "Fever"},
		},
	},
	{
		name: "hurts",
		triggers: []trigger{
			{"chest hurts", "Chest pain"},
			{"head hurts", "Headache"},
			{"stomach hurts", "Abdominal pain"},
			{"belly hurts", "Abdominal pain"},
			{"back hurts", "Back pain"},
			{"throat hurts", "Sore throat"},
		},
	},
	{
		name: "breathing",
		triggers: []trigger{
			{"can't breathe", "Shortness of breath"},
			{"cannot breathe", "Shortness of breath"},
			{"can't catch my breath", "Shortness of breath"},
			{"hard to breathe", "Shortness of breath"},
			{"trouble breathing", "Shortness of breath"},
			{"short of breath", "Shortness of breath"},
			{"shortness of breath", "Shortness of breath"},
		},
	},
	{
		name:    "waking",
		markers: []string{"woke up"},
		triggers: []trigger{
			{"chest", "Chest pain"},
		},
	},
}

// Extractor selects the single chief complaint.
type Extractor struct{}

// New creates a chief complaint extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract tests the first ten patient statements, in order, against the
// trigger categories. The first statement matching any category wins and
// extraction stops. With no match the sentinel complaint is returned, so
// the result is never empty.
func (e *Extractor) Extract(statements []domain.Utterance) string {
	limit := len(statements)
	if limit > maxStatements {
		limit = maxStatements
	}

	for i := 0; i < limit; i++ {
		lower := strings.ToLower(statements[i].Text)
		for _, cat := range categories {
			if label, ok := cat.match(lower); ok {
				return label
			}
		}
	}

	return domain.UnspecifiedComplaint
}

func (c category) match(lower string) (string, bool) {
	if len(c.markers) > 0 && !containsAny(lower, c.markers) {
		return "", false
	}
	for _, t := range c.triggers {
		if strings.Contains(lower, t.phrase) {
			return t.label, true
		}
	}
	return "", false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
