// Package tui provides the interactive review screen for extracted notes.
// The reviewer sees the rendered note in a scrollable viewport and can flip
// to the raw transcript to check any statement against its extraction.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/scribe-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// pane identifies which text the viewport is showing.
type pane int

const (
	paneNote pane = iota
	paneTranscript
)

// Model is the bubbletea model for the note review screen.
type Model struct {
	styles *styles.Styles

	note       *domain.StructuredNote
	rendered   string
	transcript string

	viewport viewport.Model
	active   pane
	ready    bool
	width    int
	height   int
}

// NewModel creates a review model for a parsed note.
func NewModel(note *domain.StructuredNote, rendered, transcript string) *Model {
	return &Model{
		styles:     styles.DefaultStyles(),
		note:       note,
		rendered:   rendered,
		transcript: transcript,
		active:     paneNote,
	}
}

// Init initialises the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the review screen.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Reserve lines for the title bar and help footer.
		vpHeight := msg.Height - 4
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.viewport.SetContent(m.activeContent())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "t":
			m.togglePane()
			return m, nil
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// togglePane flips between the rendered note and the raw transcript.
func (m *Model) togglePane() {
	if m.active == paneNote {
		m.active = paneTranscript
	} else {
		m.active = paneNote
	}
	if m.ready {
		m.viewport.SetContent(m.activeContent())
		m.viewport.GotoTop()
	}
}

// activeContent returns the text for the current pane.
func (m *Model) activeContent() string {
	if m.active == paneTranscript {
		if strings.TrimSpace(m.transcript) == "" {
			return m.styles.Muted.Render("(Empty transcript)")
		}
		return m.transcript
	}
	return m.rendered
}

// View renders the review screen.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title()))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", minInt(m.width, 60)))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("[↑/↓] scroll  [g/G] top/bottom  [tab] note/transcript  [q] quit"))

	return b.String()
}

// title names the current pane and the chief complaint.
func (m *Model) title() string {
	label := "Note"
	if m.active == paneTranscript {
		label = "Transcript"
	}
	if m.note != nil && m.note.ChiefComplaint != "" {
		return label + ": " + m.note.ChiefComplaint
	}
	return label
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
