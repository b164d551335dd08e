package domain

// UnspecifiedComplaint is the sentinel chief complaint used when no trigger
// phrase matches any early patient statement. ChiefComplaint is never empty.
const UnspecifiedComplaint = "Unspecified complaint"

// SymptomAttributes describes the presenting symptom in OLDCARTS terms.
// Single-valued fields latch on the first qualifying statement; the factor
// lists accumulate every match in statement order, duplicates included.
type SymptomAttributes struct {
	// Quality is the pain/symptom character (e.g. "pressure", "sharp").
	Quality string

	// Severity is either a numeric "N/10" or a descriptive grade.
	// A numeric expression anywhere in the transcript always wins.
	Severity string

	// Location is the anatomic location, resolved only for pain complaints.
	Location string

	// Radiation records where the symptom travels (e.g. "to left arm").
	Radiation string

	// AggravatingFactors lists factors that worsen the symptom.
	AggravatingFactors []string

	// RelievingFactors lists factors that improve the symptom.
	RelievingFactors []string
}

// Timeline captures the temporal course of the presenting symptom.
// Each field latches independently on its first qualifying statement.
type Timeline struct {
	Onset       string
	Duration    string
	Progression string
	Frequency   string
}

// VitalSigns holds vitals mentioned anywhere in the raw transcript.
// A zero field means the vital was not mentioned.
type VitalSigns struct {
	// HeartRate in beats per minute.
	HeartRate int

	// BloodPressure as stated, e.g. "140/90".
	BloodPressure string

	// Temperature in degrees as stated.
	Temperature float64

	// OxygenSaturation as a percentage.
	OxygenSaturation int
}

// StructuredNote is the extracted clinical note for one transcript.
// All collection fields are deduplicated and sorted; Vitals is nil when no
// vital sign was mentioned.
type StructuredNote struct {
	// ChiefComplaint is the canonical reason for visit. Never empty;
	// falls back to UnspecifiedComplaint.
	ChiefComplaint string

	Attributes SymptomAttributes
	Timeline   Timeline

	// AssociatedSymptoms are affirmed non-primary symptoms. No entry's
	// keyword is a substring of ChiefComplaint.
	AssociatedSymptoms []string

	// PertinentNegatives are expected symptoms the patient explicitly
	// denied when asked. Always a subset of the complaint-keyed expected
	// symptom vocabulary.
	PertinentNegatives []string

	// MedicalHistory holds self-attributed past conditions, including a
	// composed smoking history entry when present.
	MedicalHistory []string

	// FamilyHistory holds family-attributed conditions, e.g.
	// "Father with MI at age 52".
	FamilyHistory []string

	// Medications holds named medications with dose and frequency when
	// stated, e.g. "Lisinopril 20mg daily".
	Medications []string

	Vitals *VitalSigns

	// Assessment is a differential-oriented summary keyed off the chief
	// complaint and acuity.
	Assessment string
}
