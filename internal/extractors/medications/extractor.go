// Package medications extracts named medications with dose and frequency.
package medications

import (
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// drugNames is the fixed generic-name vocabulary, capitalised for output.
var drugNames = []string{
	"Lisinopril",
	"Losartan",
	"Amlodipine",
	"Metoprolol",
	"Carvedilol",
	"Atenolol",
	"Hydrochlorothiazide",
	"Furosemide",
	"Atorvastatin",
	"Simvastatin",
	"Metformin",
	"Insulin",
	"Glipizide",
	"Aspirin",
	"Clopidogrel",
	"Warfarin",
	"Ibuprofen",
	"Naproxen",
	"Acetaminophen",
	"Omeprazole",
	"Pantoprazole",
	"Albuterol",
	"Prednisone",
	"Levothyroxine",
	"Amoxicillin",
	"Azithromycin",
	"Cephalexin",
	"Ciprofloxacin",
	"Doxycycline",
}

// specificAntibiotics suppress the generic antibiotics entry.
var specificAntibiotics = map[string]bool{
	"Amoxicillin":   true,
	"Azithromycin":  true,
	"Cephalexin":    true,
	"Ciprofloxacin": true,
	"Doxycycline":   true,
}

var antibioticClassCues = []string{"antibiotic", "z-pack", "zpack"}

// blanketDenials skip the entire statement.
var blanketDenials = []string{
	"no medications",
	"not taking",
	"don't take any",
}

var dosePattern = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(?:mg\b|milligrams\b)`)

// RecentAntibiotics is the generic entry for an unnamed antibiotic course.
const RecentAntibiotics = "Recent antibiotics"

// Extractor extracts medication entries from patient statements.
type Extractor struct{}

// New creates a medication extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract matches the drug vocabulary in each statement, composing one
// entry per drug with dose and frequency when stated. Statements with a
// blanket denial are skipped entirely. An unnamed antibiotic course adds
// the generic RecentAntibiotics entry. The result is deduplicated and
// sorted.
func (e *Extractor) Extract(statements []domain.Utterance) []string {
	found := make(map[string]bool)

	for _, st := range statements {
		lower := strings.ToLower(st.Text)
		if containsAny(lower, blanketDenials) {
			continue
		}

		sawSpecificAntibiotic := false
		for _, name := range drugNames {
			idx := strings.Index(lower, strings.ToLower(name))
			if idx < 0 {
				continue
			}
			if specificAntibiotics[name] {
				sawSpecificAntibiotic = true
			}
			found[composeEntry(name, lower, idx)] = true
		}

		if !sawSpecificAntibiotic && containsAny(lower, antibioticClassCues) {
			found[RecentAntibiotics] = true
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

// composeEntry builds "<Name> <dose> <frequency>" from what the statement
// provides, degrading to the bare name.
func composeEntry(name, lower string, nameIdx int) string {
	entry := name

	// Dose is taken from the text after the drug name so a second drug's
	// dose earlier in the statement is not picked up.
	if m := dosePattern.FindStringSubmatch(lower[nameIdx:]); m != nil {
		entry += " " + m[1] + "mg"
	} else if m := dosePattern.FindStringSubmatch(lower); m != nil {
		entry += " " + m[1] + "mg"
	}

	if freq := extractFrequency(lower); freq != "" {
		entry += " " + freq
	}
	return entry
}

func extractFrequency(lower string) string {
	switch {
	case strings.Contains(lower, "three times"):
		return "TID"
	case strings.Contains(lower, "twice") && (strings.Contains(lower, "daily") || strings.Contains(lower, "a day")):
		return "BID"
	case strings.Contains(lower, "once a day"),
		strings.Contains(lower, "once daily"),
		strings.Contains(lower, "every morning"),
		strings.Contains(lower, "daily"):
		return "daily"
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
