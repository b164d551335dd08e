package attributes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

func statements(texts ...string) []domain.Utterance {
	out := make([]domain.Utterance, len(texts))
	for i, t := range texts {
		out[i] = domain.Utterance{Text: t, Role: domain.RolePatient, Sequence: i}
	}
	return out
}

func TestExtract_Quality(t *testing.T) {
	e := New()

	attrs := e.Extract(statements("It feels like pressure on my chest", "Sometimes it's sharp too"), "Chest pain")
	assert.Equal(t, "pressure", attrs.Quality, "quality latches on the first qualifying statement")
}

func TestExtract_SeverityNumericWins(t *testing.T) {
	e := New()

	tests := []struct {
		name  string
		texts []string
		want  string
	}{
		{"out of ten", []string{"It's an 8 out of 10"}, "8/10"},
		{"slash form", []string{"I'd say 6/10"}, "6/10"},
		{"descriptive only", []string{"It's pretty severe"}, "severe"},
		{"numeric beats earlier descriptive", []string{"The pain is severe", "Maybe a 7 out of 10"}, "7/10"},
		{"numeric beats later descriptive", []string{"It's a 9 out of 10", "Really severe"}, "9/10"},
		{"none", []string{"It just aches"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := e.Extract(statements(tt.texts...), "Chest pain")
			assert.Equal(t, tt.want, attrs.Severity)
		})
	}
}

func TestExtract_Location(t *testing.T) {
	e := New()

	tests := []struct {
		name  string
		texts []string
		chief string
		want  string
	}{
		{"central phrasing", []string{"It's right in the middle of my chest"}, "Chest pain", "substernal"},
		{"left chest", []string{"It's on the left side of my chest"}, "Chest pain", "left chest"},
		{"central beats lateral", []string{"Middle of my chest, maybe a bit left"}, "Chest pain", "substernal"},
		{"no location for non-pain complaint", []string{"It's in the middle of my chest"}, "Palpitations", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := e.Extract(statements(tt.texts...), tt.chief)
			assert.Equal(t, tt.want, attrs.Location)
		})
	}
}

func TestExtract_Radiation(t *testing.T) {
	e := New()

	tests := []struct {
		name  string
		text  string
		want  string
	}{
		{"radiates to left arm", "It radiates to my left arm", "to left arm"},
		{"goes to jaw", "The pain goes to my jaw", "to jaw"},
		{"shoots to shoulder", "It shoots to my left shoulder", "to left shoulder"},
		{"verb without body part", "It radiates sometimes", ""},
		{"body part without verb", "My left arm aches", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := e.Extract(statements(tt.text), "Chest pain")
			assert.Equal(t, tt.want, attrs.Radiation)
		})
	}
}

func TestExtract_ModifyingFactors(t *testing.T) {
	e := New()

	attrs := e.Extract(statements(
		"It gets worse with exertion",
		"Worse when climbing stairs",
		"It's better with rest",
	), "Chest pain")

	assert.Equal(t, []string{"exertion"}, attrs.AggravatingFactors[:1])
	assert.Contains(t, attrs.AggravatingFactors, "climbing stairs")
	assert.NotContains(t, attrs.AggravatingFactors, "stairs")
	assert.Equal(t, []string{"rest"}, attrs.RelievingFactors)
}

func TestExtract_DuplicateFactorsKept(t *testing.T) {
	e := New()

	attrs := e.Extract(statements(
		"It's worse with walking",
		"Definitely worse when walking",
	), "Chest pain")

	assert.Equal(t, []string{"walking", "walking"}, attrs.AggravatingFactors)
}

func TestExtract_Empty(t *testing.T) {
	e := New()

	attrs := e.Extract(nil, domain.UnspecifiedComplaint)
	assert.Equal(t, domain.SymptomAttributes{}, attrs)
}
