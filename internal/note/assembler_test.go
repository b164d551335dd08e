package note

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

func sampleNote() *domain.StructuredNote {
	return &domain.StructuredNote{
		ChiefComplaint: "Chest pain",
		Attributes: domain.SymptomAttributes{
			Quality:            "pressure",
			Severity:           "8/10",
			Location:           "substernal",
			Radiation:          "to left arm",
			AggravatingFactors: []string{"exertion"},
			RelievingFactors:   []string{"rest"},
		},
		Timeline: domain.Timeline{
			Onset:       "this morning",
			Duration:    "20 minutes",
			Progression: "worsening",
			Frequency:   "intermittent",
		},
		AssociatedSymptoms: []string{"diaphoresis", "nausea"},
		PertinentNegatives: []string{"syncope"},
		MedicalHistory:     []string{"Hypertension"},
		FamilyHistory:      []string{"Father with MI at age 52"},
		Medications:        []string{"Lisinopril 20mg daily"},
		Vitals:             &domain.VitalSigns{HeartRate: 110, BloodPressure: "140/90"},
		Assessment:         "Acute chest pain; rule out acute coronary syndrome, evaluate for pulmonary embolism and aortic dissection",
	}
}

func TestRender_SectionOrder(t *testing.T) {
	a := NewAssembler()

	out := a.Render(sampleNote())

	headers := []string{
		"**CHIEF COMPLAINT:**",
		"**HISTORY OF PRESENT ILLNESS:**",
		"**PAST MEDICAL HISTORY:**",
		"**PAST SURGICAL HISTORY:**",
		"**FAMILY HISTORY:**",
		"**MEDICATIONS:**",
		"**VITALS:**",
		"**ASSESSMENT:**",
	}

	last := -1
	for _, h := range headers {
		idx := strings.Index(out, h)
		assert.Greater(t, idx, last, "section %s out of order", h)
		last = idx
	}
	assert.True(t, strings.HasSuffix(out, trailer+"\n"))
}

func TestRender_Narrative(t *testing.T) {
	a := NewAssembler()

	out := a.Render(sampleNote())

	assert.Contains(t, out, "Patient reports chest pain")
	assert.Contains(t, out, "Described as pressure")
	assert.Contains(t, out, "Rated 8/10")
	assert.Contains(t, out, "Radiating to left arm")
	assert.Contains(t, out, "Onset this morning")
	assert.Contains(t, out, "Worse with exertion")
	assert.Contains(t, out, "Associated with diaphoresis, nausea")
	assert.Contains(t, out, "Denies syncope")
	assert.Contains(t, out, "- Father with MI at age 52")
	assert.Contains(t, out, "HR 110 bpm | BP 140/90")
}

func TestRender_EmptySectionsUsePlaceholders(t *testing.T) {
	a := NewAssembler()

	out := a.Render(&domain.StructuredNote{
		ChiefComplaint: domain.UnspecifiedComplaint,
		Assessment:     "Clinical assessment based on presentation",
	})

	assert.Contains(t, out, "Reason for visit not clearly stated.")
	assert.Contains(t, out, noMedicalHistory)
	assert.Contains(t, out, noSurgicalHistory)
	assert.Contains(t, out, noFamilyHistory)
	assert.Contains(t, out, noMedications)
	assert.Contains(t, out, noVitals)
}

func TestRender_Deterministic(t *testing.T) {
	a := NewAssembler()

	n := sampleNote()
	assert.Equal(t, a.Render(n), a.Render(n))
}
