// Package vitals extracts vital signs from the raw transcript.
package vitals

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// Vitals are usually clinician-stated and may be lost to role filtering,
// so extraction runs over the whole raw transcript.
var (
	heartRatePattern = regexp.MustCompile(`(?:heart rate|pulse)(?:\s+is|\s+of|:)?\s*(\d{2,3})\b`)

	// bloodPressurePattern pairs two readings; plausibility bounds keep
	// severity scores like "10/10" from matching.
	bloodPressurePattern = regexp.MustCompile(`\b(\d{2,3})\s*/\s*(\d{2,3})\b`)

	temperaturePattern = regexp.MustCompile(`\b(\d{2,3}(?:\.\d)?)\s*degrees\b`)

	oxygenPattern = regexp.MustCompile(`(?:oxygen saturation|o2 sat|spo2|sat(?:ting|s)?)(?:\s+is|\s+of|\s+at|:)?\s*(\d{2,3})\b`)
)

const (
	minSystolic  = 60
	maxSystolic  = 260
	minDiastolic = 30
	maxDiastolic = 160
)

// Extractor extracts heart rate, blood pressure, temperature and oxygen
// saturation with four independent first-match patterns.
type Extractor struct{}

// New creates a vitals extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the vitals mentioned in the transcript, or nil when no
// field matched.
func (e *Extractor) Extract(transcript string) *domain.VitalSigns {
	lower := strings.ToLower(transcript)

	var vs domain.VitalSigns
	matched := false

	if m := heartRatePattern.FindStringSubmatch(lower); m != nil {
		vs.HeartRate, _ = strconv.Atoi(m[1])
		matched = true
	}
	if systolic, diastolic, ok := findBloodPressure(lower); ok {
		vs.BloodPressure = systolic + "/" + diastolic
		matched = true
	}
	if m := temperaturePattern.FindStringSubmatch(lower); m != nil {
		vs.Temperature, _ = strconv.ParseFloat(m[1], 64)
		matched = true
	}
	if m := oxygenPattern.FindStringSubmatch(lower); m != nil {
		vs.OxygenSaturation, _ = strconv.Atoi(m[1])
		matched = true
	}

	if !matched {
		return nil
	}
	return &vs
}

// findBloodPressure returns the first reading pair within plausible adult
// ranges.
func findBloodPressure(lower string) (string, string, bool) {
	for _, m := range bloodPressurePattern.FindAllStringSubmatch(lower, -1) {
		systolic, _ := strconv.Atoi(m[1])
		diastolic, _ := strconv.Atoi(m[2])
		if systolic >= minSystolic && systolic <= maxSystolic &&
			diastolic >= minDiastolic && diastolic <= maxDiastolic {
			return m[1], m[2], true
		}
	}
	return "", "", false
}
