// Package negatives records explicit denials of expected symptoms.
package negatives

import (
	"sort"
	"strings"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// expectedVocabulary keys a chief-complaint cue to the symptoms a clinician
// is expected to screen for. Pertinent negatives are only ever drawn from
// this table.
var expectedVocabulary = []struct {
	complaintCues []string
	symptoms      []string
}{
	{
		complaintCues: []string{"chest", "palpitation"},
		symptoms: []string{
			"shortness of breath",
			"diaphoresis",
			"nausea",
			"radiation",
			"dizziness",
			"syncope",
			"lightheadedness",
		},
	},
	{
		complaintCues: []string{"headache"},
		symptoms: []string{
			"vision changes",
			"nausea",
			"vomiting",
			"neck stiffness",
			"fever",
			"weakness",
			"numbness",
		},
	},
	{
		complaintCues: []string{"breath"},
		symptoms: []string{
			"chest pain",
			"cough",
			"fever",
			"wheezing",
			"leg swelling",
			"orthopnea",
		},
	},
	{
		complaintCues: []string{"abdominal", "stomach"},
		symptoms: []string{
			"nausea",
			"vomiting",
			"diarrhea",
			"constipation",
			"fever",
			"blood in stool",
		},
	},
}

// questionCues are the phrasings a clinician uses when asking about each
// expected symptom.
var questionCues = map[string][]string{
	"shortness of breath": {"shortness of breath", "short of breath", "breathless", "trouble breathing"},
	"diaphoresis":         {"sweat", "diaphore"},
	"nausea":              {"nausea", "nauseous", "sick to your stomach"},
	"radiation":           {"radiat", "spread", "go anywhere", "travel"},
	"dizziness":           {"dizzy", "dizziness"},
	"syncope":             {"pass out", "passed out", "faint", "black out"},
	"lightheadedness":     {"lightheaded"},
	"vision changes":      {"vision", "seeing"},
	"vomiting":            {"vomit", "throw up", "thrown up"},
	"neck stiffness":      {"stiff neck", "neck stiff"},
	"fever":               {"fever", "temperature"},
	"weakness":            {"weakness", "weak"},
	"numbness":            {"numb"},
	"chest pain":          {"chest pain", "chest hurt"},
	"cough":               {"cough"},
	"wheezing":            {"wheez"},
	"leg swelling":        {"swelling", "swollen"},
	"orthopnea":           {"lying flat", "extra pillows"},
	"diarrhea":            {"diarrhea"},
	"constipation":        {"constipat"},
	"blood in stool":      {"blood in your stool", "bloody stool"},
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

// Extractor pairs clinician questions with patient answers to record
// pertinent negatives.
type Extractor struct{}

// New creates a pertinent negative extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract inspects each clinician question that mentions an expected
// symptom for the resolved chief complaint. The answer is the next patient
// utterance in true transcript order; when it carries a denial marker the
// symptom is recorded. The result is deduplicated and sorted, and is
// always a subset of the expected vocabulary for the complaint.
func (e *Extractor) Extract(conv domain.Conversation, chiefComplaint string) []string {
	expected := expectedSymptoms(chiefComplaint)
	if len(expected) == 0 {
		return nil
	}

	found := make(map[string]bool)
	for _, q := range conv.ClinicianQuestions() {
		qLower := strings.ToLower(q.Text)

		answer, ok := conv.NextPatientAfter(q.Sequence)
		if !ok {
			continue
		}
		if !containsAny(strings.ToLower(answer.Text), denialMarkers) {
			continue
		}

		for _, symptom := range expected {
			if containsAny(qLower, questionCues[symptom]) {
				found[symptom] = true
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

// ExpectedSymptoms exposes the vocabulary for a complaint. The empty slice
// means the complaint has no screening set and no negatives can be derived.
func ExpectedSymptoms(chiefComplaint string) []string {
	return expectedSymptoms(chiefComplaint)
}

func expectedSymptoms(chiefComplaint string) []string {
	lower := strings.ToLower(chiefComplaint)
	for _, entry := range expectedVocabulary {
		if containsAny(lower, entry.complaintCues) {
			return entry.symptoms
		}
	}
	return nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
