// Package history extracts self-attributed past medical history.
package history

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// familyMarkers exclude a statement from self-history consideration.
var familyMarkers = []string{
	"my dad",
	"my father",
	"my mom",
	"my mother",
	"my brother",
	"my sister",
	"family history",
}

// selfMarkers gate a condition match to the patient themself.
var selfMarkers = []string{
	"i have",
	"i'm on",
	"i am on",
	"been on medication",
	"my ",
}

// conditionKeywords map cue phrases to canonical condition names.
var conditionKeywords = []struct {
	keyword   string
	condition string
}{
	{"diabetes", "Diabetes"},
	{"diabetic", "Diabetes"},
	{"high blood pressure", "Hypertension"},
	{"hypertension", "Hypertension"},
	{"high cholesterol", "Hyperlipidemia"},
	{"hyperlipidemia", "Hyperlipidemia"},
	{"asthma", "Asthma"},
	{"copd", "COPD"},
	{"emphysema", "COPD"},
	{"coronary artery disease", "Coronary artery disease"},
	{"heart disease", "Coronary artery disease"},
	{"cancer", "Cancer"},
	{"bronchitis", "Bronchitis"},
	{"pneumonia", "Pneumonia"},
}

var (
	yearsSmoked  = regexp.MustCompile(`\b(\d+)\s+years\b`)
	packsPerDay  = regexp.MustCompile(`\b(?:a|one|1)\s+pack\s+(?:a|per)\s+day\b|\bpacks?\s+(?:a|per)\s+day\b`)
	quitYearsAgo = regexp.MustCompile(`(?:quit|stopped)[^0-9]*(\d+)\s+years?\s+ago\b`)
)

// nonSmokerPhrases veto the smoking sub-parser.
var nonSmokerPhrases = []string{
	"non-smoker",
	"nonsmoker",
	"don't smoke",
	"do not smoke",
	"never smoked",
}

var quitPhrases = []string{"quit", "stopped smoking", "gave up smoking"}

// Extractor collects self-attributed conditions and composes a smoking
// history entry when one is described.
type Extractor struct{}

// New creates a medical history extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract scans patient statements, skipping any with a family-member
// reference. Condition keywords count only alongside a self-attribution
// marker. The smoking sub-parser composes the most specific template the
// statement supports. Conditions are sorted; a smoking entry is appended
// after them.
func (e *Extractor) Extract(statements []domain.Utterance) []string {
	conditions := make(map[string]bool)
	smoking := ""

	for _, st := range statements {
		lower := strings.ToLower(st.Text)
		if containsAny(lower, familyMarkers) {
			continue
		}

		if containsAny(lower, selfMarkers) {
			for _, ck := range conditionKeywords {
				if strings.Contains(lower, ck.keyword) {
					conditions[ck.condition] = true
				}
			}
		}

		if smoking == "" {
			smoking = parseSmoking(lower)
		}
	}

	if len(conditions) == 0 && smoking == "" {
		return nil
	}

	out := make([]string, 0, len(conditions)+1)
	for c := range conditions {
		out = append(out, c)
	}
	sort.Strings(out)
	if smoking != "" {
		out = append(out, smoking)
	}
	return out
}

// parseSmoking composes the most specific smoking template the statement
// supports, degrading field by field when sub-fields are missing.
func parseSmoking(lower string) string {
	if !strings.Contains(lower, "smok") {
		return ""
	}
	if containsAny(lower, nonSmokerPhrases) {
		return ""
	}

	packADay := packsPerDay.MatchString(lower)
	quit := containsAny(lower, quitPhrases)

	quitYears := 0
	if m := quitYearsAgo.FindStringSubmatch(lower); m != nil {
		fmt.Sscanf(m[1], "%d", &quitYears)
	}

	// Strip the quit clause first so its year count is not mistaken for
	// the years-smoked figure.
	smokedText := quitYearsAgo.ReplaceAllString(lower, "")
	years := 0
	if m := yearsSmoked.FindStringSubmatch(smokedText); m != nil {
		fmt.Sscanf(m[1], "%d", &years)
	}

	status := "Active smoker"
	if quit {
		status = "Former smoker"
	}

	var details []string
	if years > 0 && packADay {
		details = append(details, fmt.Sprintf("%d pack-years", years))
	} else if years > 0 {
		details = append(details, fmt.Sprintf("%d years", years))
	}
	if quit && quitYears > 0 {
		details = append(details, fmt.Sprintf("quit %d years ago", quitYears))
	}

	if len(details) == 0 {
		return status
	}
	return fmt.Sprintf("%s (%s)", status, strings.Join(details, ", "))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
