package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// ParseInput is the input schema for the parse_transcript tool.
type ParseInput struct {
	Transcript string `json:"transcript" jsonschema:"the raw two-party encounter transcript to parse"`
	Save       bool   `json:"save,omitempty" jsonschema:"store the result for later retrieval (requires note storage)"`
}

// ParseOutput is the output schema for the parse_transcript tool.
type ParseOutput struct {
	Note     NoteOutput `json:"note"`
	Rendered string     `json:"rendered"`
	RecordID string     `json:"record_id,omitempty"`
}

// NoteOutput represents a structured note.
type NoteOutput struct {
	ChiefComplaint     string       `json:"chief_complaint"`
	Quality            string       `json:"quality,omitempty"`
	Severity           string       `json:"severity,omitempty"`
	Location           string       `json:"location,omitempty"`
	Radiation          string       `json:"radiation,omitempty"`
	AggravatingFactors []string     `json:"aggravating_factors,omitempty"`
	RelievingFactors   []string     `json:"relieving_factors,omitempty"`
	Onset              string       `json:"onset,omitempty"`
	Duration           string       `json:"duration,omitempty"`
	Progression        string       `json:"progression,omitempty"`
	Frequency          string       `json:"frequency,omitempty"`
	AssociatedSymptoms []string     `json:"associated_symptoms,omitempty"`
	PertinentNegatives []string     `json:"pertinent_negatives,omitempty"`
	MedicalHistory     []string     `json:"medical_history,omitempty"`
	FamilyHistory      []string     `json:"family_history,omitempty"`
	Medications        []string     `json:"medications,omitempty"`
	Vitals             *VitalOutput `json:"vitals,omitempty"`
	Assessment         string       `json:"assessment"`
}

// VitalOutput represents recorded vital signs.
type VitalOutput struct {
	HeartRate        int     `json:"heart_rate,omitempty"`
	BloodPressure    string  `json:"blood_pressure,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
	OxygenSaturation int     `json:"oxygen_saturation,omitempty"`
}

// ListNotesInput is the input schema for the list_notes tool.
type ListNotesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 10)"`
}

// ListNotesOutput is the output schema for the list_notes tool.
type ListNotesOutput struct {
	Records []NoteRecordOutput `json:"records"`
	Count   int                `json:"count"`
}

// GetNoteInput is the input schema for the get_note tool.
type GetNoteInput struct {
	ID string `json:"id" jsonschema:"the record identifier"`
}

// NoteRecordOutput represents a stored parse result.
type NoteRecordOutput struct {
	ID             string `json:"id"`
	ChiefComplaint string `json:"chief_complaint"`
	Rendered       string `json:"rendered,omitempty"`
	CreatedAt      string `json:"created_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_transcript",
		Description: "Extract a structured clinical note from an encounter transcript",
	}, s.handleParse)

	if s.ports.Notes != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_notes",
			Description: "List stored notes, newest first",
		}, s.handleListNotes)

		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_note",
			Description: "Retrieve a stored note by ID",
		}, s.handleGetNote)
	}
}

// handleParse handles the parse_transcript tool invocation.
func (s *Server) handleParse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ParseInput,
) (*mcp.CallToolResult, ParseOutput, error) {
	if input.Save && s.ports.Notes != nil {
		rec, err := s.ports.Notes.Save(ctx, input.Transcript)
		if err != nil {
			return nil, ParseOutput{}, err
		}
		return nil, ParseOutput{
			Note:     noteOutput(&rec.Note),
			Rendered: rec.Rendered,
			RecordID: rec.ID,
		}, nil
	}

	note, err := s.ports.Parser.Parse(ctx, input.Transcript)
	if err != nil {
		return nil, ParseOutput{}, err
	}

	return nil, ParseOutput{
		Note:     noteOutput(note),
		Rendered: s.ports.Parser.Render(note),
	}, nil
}

// handleListNotes handles the list_notes tool invocation.
func (s *Server) handleListNotes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListNotesInput,
) (*mcp.CallToolResult, ListNotesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	records, err := s.ports.Notes.List(ctx, limit)
	if err != nil {
		return nil, ListNotesOutput{}, err
	}

	output := ListNotesOutput{
		Records: make([]NoteRecordOutput, len(records)),
		Count:   len(records),
	}
	for i := range records {
		output.Records[i] = NoteRecordOutput{
			ID:             records[i].ID,
			ChiefComplaint: records[i].Note.ChiefComplaint,
			CreatedAt:      records[i].CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return nil, output, nil
}

// handleGetNote handles the get_note tool invocation.
func (s *Server) handleGetNote(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetNoteInput,
) (*mcp.CallToolResult, NoteRecordOutput, error) {
	rec, err := s.ports.Notes.Get(ctx, input.ID)
	if err != nil {
		return nil, NoteRecordOutput{}, err
	}

	return nil, NoteRecordOutput{
		ID:             rec.ID,
		ChiefComplaint: rec.Note.ChiefComplaint,
		Rendered:       rec.Rendered,
		CreatedAt:      rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// noteOutput maps a domain note onto the tool output schema.
func noteOutput(note *domain.StructuredNote) NoteOutput {
	out := NoteOutput{
		ChiefComplaint:     note.ChiefComplaint,
		Quality:            note.Attributes.Quality,
		Severity:           note.Attributes.Severity,
		Location:           note.Attributes.Location,
		Radiation:          note.Attributes.Radiation,
		AggravatingFactors: note.Attributes.AggravatingFactors,
		RelievingFactors:   note.Attributes.RelievingFactors,
		Onset:              note.Timeline.Onset,
		Duration:           note.Timeline.Duration,
		Progression:        note.Timeline.Progression,
		Frequency:          note.Timeline.Frequency,
		AssociatedSymptoms: note.AssociatedSymptoms,
		PertinentNegatives: note.PertinentNegatives,
		MedicalHistory:     note.MedicalHistory,
		FamilyHistory:      note.FamilyHistory,
		Medications:        note.Medications,
		Assessment:         note.Assessment,
	}

	if note.Vitals != nil {
		out.Vitals = &VitalOutput{
			HeartRate:        note.Vitals.HeartRate,
			BloodPressure:    note.Vitals.BloodPressure,
			Temperature:      note.Vitals.Temperature,
			OxygenSaturation: note.Vitals.OxygenSaturation,
		}
	}

	return out
}
