// Package note composes the final structured note rendering.
package note

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// Section placeholders. Every section always renders; an empty one prints
// its placeholder rather than being omitted.
const (
	noMedicalHistory  = "No significant past medical history reported."
	noSurgicalHistory = "No prior surgeries reported."
	noFamilyHistory   = "No significant family history reported."
	noMedications     = "No current medications reported."
	noVitals          = "Not recorded."
)

// trailer is the fixed attribution line closing every note.
const trailer = "Generated from the encounter transcript by Scribe. Review and verify before signing."

// Assembler renders a structured note into its plain-text form.
// Rendering is deterministic: identical notes render byte-identically.
type Assembler struct{}

// NewAssembler creates a note assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Render produces the plain-text note with fixed section order: chief
// complaint, HPI narrative, past medical history, past surgical history,
// family history, medications, vitals, assessment, trailer.
func (a *Assembler) Render(n *domain.StructuredNote) string {
	var b strings.Builder

	section(&b, "CHIEF COMPLAINT", n.ChiefComplaint)
	section(&b, "HISTORY OF PRESENT ILLNESS", a.narrative(n))
	section(&b, "PAST MEDICAL HISTORY", bulleted(n.MedicalHistory, noMedicalHistory))
	section(&b, "PAST SURGICAL HISTORY", noSurgicalHistory)
	section(&b, "FAMILY HISTORY", bulleted(n.FamilyHistory, noFamilyHistory))
	section(&b, "MEDICATIONS", bulleted(n.Medications, noMedications))
	section(&b, "VITALS", vitalsLine(n.Vitals))
	section(&b, "ASSESSMENT", n.Assessment)

	b.WriteString(trailer)
	b.WriteString("\n")
	return b.String()
}

// narrative composes the HPI from complaint, attributes, timeline,
// modifying factors, associated symptoms and pertinent negatives, joined
// with ". ".
func (a *Assembler) narrative(n *domain.StructuredNote) string {
	var fragments []string

	if n.ChiefComplaint == domain.UnspecifiedComplaint {
		fragments = append(fragments, "Reason for visit not clearly stated")
	} else {
		fragments = append(fragments, "Patient reports "+strings.ToLower(n.ChiefComplaint))
	}

	attrs := n.Attributes
	if attrs.Quality != "" {
		fragments = append(fragments, "Described as "+attrs.Quality)
	}
	if attrs.Severity != "" {
		fragments = append(fragments, "Rated "+attrs.Severity)
	}
	if attrs.Location != "" {
		fragments = append(fragments, "Localized to the "+attrs.Location)
	}
	if attrs.Radiation != "" {
		fragments = append(fragments, "Radiating "+attrs.Radiation)
	}

	tl := n.Timeline
	if tl.Onset != "" {
		fragments = append(fragments, "Onset "+tl.Onset)
	}
	if tl.Duration != "" {
		fragments = append(fragments, "Duration "+tl.Duration)
	}
	if tl.Progression != "" {
		fragments = append(fragments, "Course is "+tl.Progression)
	}
	if tl.Frequency != "" {
		fragments = append(fragments, "Symptoms are "+tl.Frequency)
	}

	if len(attrs.AggravatingFactors) > 0 {
		fragments = append(fragments, "Worse with "+strings.Join(attrs.AggravatingFactors, ", "))
	}
	if len(attrs.RelievingFactors) > 0 {
		fragments = append(fragments, "Improved with "+strings.Join(attrs.RelievingFactors, ", "))
	}

	if len(n.AssociatedSymptoms) > 0 {
		fragments = append(fragments, "Associated with "+strings.Join(n.AssociatedSymptoms, ", "))
	}
	if len(n.PertinentNegatives) > 0 {
		fragments = append(fragments, "Denies "+strings.Join(n.PertinentNegatives, ", "))
	}

	return strings.Join(fragments, ". ") + "."
}

func section(b *strings.Builder, header, body string) {
	b.WriteString("**")
	b.WriteString(header)
	b.WriteString(":**\n")
	b.WriteString(body)
	b.WriteString("\n\n")
}

func bulleted(items []string, placeholder string) string {
	if len(items) == 0 {
		return placeholder
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

func vitalsLine(vs *domain.VitalSigns) string {
	if vs == nil {
		return noVitals
	}

	var parts []string
	if vs.HeartRate > 0 {
		parts = append(parts, "HR "+strconv.Itoa(vs.HeartRate)+" bpm")
	}
	if vs.BloodPressure != "" {
		parts = append(parts, "BP "+vs.BloodPressure)
	}
	if vs.Temperature > 0 {
		parts = append(parts, "Temp "+strconv.FormatFloat(vs.Temperature, 'f', -1, 64)+"°F")
	}
	if vs.OxygenSaturation > 0 {
		parts = append(parts, "SpO2 "+strconv.Itoa(vs.OxygenSaturation)+"%")
	}
	if len(parts) == 0 {
		return noVitals
	}
	return strings.Join(parts, " | ")
}
