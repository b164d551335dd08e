package domain

// SpeakerRole identifies who most likely produced an utterance.
// Roles are inferred from text alone; there is no audio-level diarization.
type SpeakerRole string

const (
	// RoleClinician marks questions and observational prompts from the examiner.
	RoleClinician SpeakerRole = "clinician"

	// RolePatient marks statements attributed to the patient.
	RolePatient SpeakerRole = "patient"

	// RoleDiscarded marks backchannel fillers excluded from extraction.
	RoleDiscarded SpeakerRole = "discarded"
)

// Utterance is one segmented transcript fragment.
// It is created once by the segmenter and immutable thereafter.
type Utterance struct {
	// Text is the trimmed fragment text.
	Text string

	// Role is the inferred speaker role.
	Role SpeakerRole

	// Sequence is the fragment's position in the original transcript order,
	// counted across all retained utterances regardless of role.
	Sequence int
}

// Conversation is the ordered utterance sequence for a single encounter.
// It preserves true transcript order so stages can reason about adjacency
// instead of relying on per-role index correlation.
type Conversation struct {
	// Utterances holds every retained utterance in transcript order.
	// Discarded fragments are not included.
	Utterances []Utterance
}

// PatientStatements returns patient utterances in transcript order.
func (c Conversation) PatientStatements() []Utterance {
	return c.byRole(RolePatient)
}

// ClinicianQuestions returns clinician utterances in transcript order.
func (c Conversation) ClinicianQuestions() []Utterance {
	return c.byRole(RoleClinician)
}

// NextPatientAfter returns the first patient utterance whose sequence index
// is greater than seq. This defines question/answer adjacency: the answer to
// a clinician question is the next patient utterance in true transcript order.
func (c Conversation) NextPatientAfter(seq int) (Utterance, bool) {
	for _, u := range c.Utterances {
		if u.Sequence > seq && u.Role == RolePatient {
			return u, true
		}
	}
	return Utterance{}, false
}

// IsEmpty reports whether the conversation holds no retained utterances.
func (c Conversation) IsEmpty() bool {
	return len(c.Utterances) == 0
}

func (c Conversation) byRole(role SpeakerRole) []Utterance {
	var out []Utterance
	for _, u := range c.Utterances {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}
