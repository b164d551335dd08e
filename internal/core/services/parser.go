package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driving"
	"github.com/custodia-labs/scribe-cli/internal/extractors/assessment"
	"github.com/custodia-labs/scribe-cli/internal/extractors/associated"
	"github.com/custodia-labs/scribe-cli/internal/extractors/attributes"
	"github.com/custodia-labs/scribe-cli/internal/extractors/complaint"
	"github.com/custodia-labs/scribe-cli/internal/extractors/familyhistory"
	"github.com/custodia-labs/scribe-cli/internal/extractors/history"
	"github.com/custodia-labs/scribe-cli/internal/extractors/medications"
	"github.com/custodia-labs/scribe-cli/internal/extractors/negatives"
	"github.com/custodia-labs/scribe-cli/internal/extractors/timeline"
	"github.com/custodia-labs/scribe-cli/internal/extractors/vitals"
	"github.com/custodia-labs/scribe-cli/internal/note"
	"github.com/custodia-labs/scribe-cli/internal/segmenter"
)

// Ensure ParserService implements the interface.
var _ driving.ParserService = (*ParserService)(nil)

// ParserService orchestrates the extraction pipeline. Every stage is a
// pure function over immutable inputs, so the independent stages run
// concurrently once the segmenter and the complaint extractor have
// resolved their outputs.
type ParserService struct {
	segmenter *segmenter.Segmenter
	assembler *note.Assembler

	complaint     *complaint.Extractor
	attributes    *attributes.Extractor
	timeline      *timeline.Extractor
	associated    *associated.Extractor
	negatives     *negatives.Extractor
	history       *history.Extractor
	familyhistory *familyhistory.Extractor
	medications   *medications.Extractor
	vitals        *vitals.Extractor
	assessment    *assessment.Extractor
}

// NewParserService creates a parser service using the given role classifier.
func NewParserService(classifier driven.SpeakerClassifier) *ParserService {
	return &ParserService{
		segmenter:     segmenter.New(classifier),
		assembler:     note.NewAssembler(),
		complaint:     complaint.New(),
		attributes:    attributes.New(),
		timeline:      timeline.New(),
		associated:    associated.New(),
		negatives:     negatives.New(),
		history:       history.New(),
		familyhistory: familyhistory.New(),
		medications:   medications.New(),
		vitals:        vitals.New(),
		assessment:    assessment.New(),
	}
}

// Parse extracts a structured note from a raw transcript. Degenerate input
// is not an error: an empty transcript yields the sentinel complaint with
// all collections empty and no vitals.
func (s *ParserService) Parse(_ context.Context, transcript string) (*domain.StructuredNote, error) {
	conv := s.segmenter.Segment(transcript)
	statements := conv.PatientStatements()

	// The complaint resolves first: the associated-symptom, negative and
	// assessment stages all key off it.
	chief := s.complaint.Extract(statements)

	n := &domain.StructuredNote{ChiefComplaint: chief}

	var wg sync.WaitGroup
	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	run(func() { n.Attributes = s.attributes.Extract(statements, chief) })
	run(func() { n.Timeline = s.timeline.Extract(statements) })
	run(func() { n.AssociatedSymptoms = s.associated.Extract(statements, chief) })
	run(func() { n.PertinentNegatives = s.negatives.Extract(conv, chief) })
	run(func() { n.MedicalHistory = s.history.Extract(statements) })
	run(func() { n.FamilyHistory = s.familyhistory.Extract(statements) })
	run(func() { n.Medications = s.medications.Extract(statements) })
	run(func() { n.Vitals = s.vitals.Extract(transcript) })
	wg.Wait()

	// A symptom the patient affirmed elsewhere is not a pertinent
	// negative; keep the two sets disjoint.
	n.PertinentNegatives = subtract(n.PertinentNegatives, n.AssociatedSymptoms)

	n.Assessment = s.assessment.Extract(chief, n.Timeline.Onset)

	return n, nil
}

// Render produces the plain-text note for a parse result.
func (s *ParserService) Render(n *domain.StructuredNote) string {
	return s.assembler.Render(n)
}

// subtract returns the elements of a not present in b, preserving order.
func subtract(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return a
	}
	drop := make(map[string]bool, len(b))
	for _, s := range b {
		drop[s] = true
	}
	var out []string
	for _, s := range a {
		if !drop[s] {
			out = append(out, s)
		}
	}
	return out
}
