// Package assessment maps complaint and acuity to an assessment string.
package assessment

import (
	"strings"
)

// FallbackAssessment covers complaints outside the decision table.
const FallbackAssessment = "Clinical assessment based on presentation"

// acuteOnsetPhrases mark a recent onset.
var acuteOnsetPhrases = []string{"minute", "hour"}

var acuteOnsetExact = []string{"today", "this morning"}

// decisionTable branches on chief-complaint substrings in order.
var decisionTable = []struct {
	cues    []string
	acute   string
	routine string
}{
	{
		cues:    []string{"chest pain", "chest pressure", "chest tightness"},
		acute:   "Acute chest pain; rule out acute coronary syndrome, evaluate for pulmonary embolism and aortic dissection",
		routine: "Chest pain, likely musculoskeletal or gastroesophageal; cardiac risk stratification indicated",
	},
	{
		cues:    []string{"palpitation"},
		acute:   "Acute palpitations; evaluate for arrhythmia with ECG and electrolytes",
		routine: "Intermittent palpitations; consider ambulatory rhythm monitoring",
	},
	{
		cues:    []string{"breath"},
		acute:   "Acute dyspnea; evaluate for pulmonary embolism, pneumonia and acute heart failure",
		routine: "Chronic dyspnea; consider pulmonary function testing and cardiac workup",
	},
	{
		cues:    []string{"headache"},
		acute:   "Acute headache; assess for red flag features, consider neuroimaging",
		routine: "Recurrent headache, likely primary; symptomatic management and trigger review",
	},
}

// Extractor synthesizes the assessment line.
type Extractor struct{}

// New creates an assessment synthesizer.
func New() *Extractor {
	return &Extractor{}
}

// Extract derives acuity from the onset and applies the decision table.
func (e *Extractor) Extract(chiefComplaint, onset string) string {
	acute := isAcute(onset)
	lower := strings.ToLower(chiefComplaint)

	for _, branch := range decisionTable {
		for _, cue := range branch.cues {
			if strings.Contains(lower, cue) {
				if acute {
					return branch.acute
				}
				return branch.routine
			}
		}
	}
	return FallbackAssessment
}

// isAcute reports whether the onset denotes recency.
func isAcute(onset string) bool {
	lower := strings.ToLower(onset)
	for _, phrase := range acuteOnsetPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	for _, exact := range acuteOnsetExact {
		if lower == exact {
			return true
		}
	}
	return false
}
