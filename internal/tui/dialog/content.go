package dialog

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/stepform/internal/form"
	"github.com/mark3labs/stepform/internal/tui/theme"
)

// StepContent is the pluggable rendering unit behind a step. A step's
// form.Step.Content is type-asserted to this interface; anything else
// is rendered through StaticContent. Implementations read and write
// field values through the orchestrator handed to Bind.
type StepContent interface {
	// Bind attaches the shared orchestrator before any other call.
	Bind(o *form.Orchestrator)
	// Init returns the content's startup command.
	Init() tea.Cmd
	// Update handles a message and returns any follow-up command.
	Update(msg tea.Msg) tea.Cmd
	// View renders the content body.
	View() string
	// SetSize updates the available content area.
	SetSize(width, height int)
	// Focus gives the content keyboard focus.
	Focus() tea.Cmd
	// Blur removes keyboard focus.
	Blur()
}

// StaticContent renders fixed text with no interaction. Tab passes
// focus straight to the button bar.
type StaticContent struct {
	Text  string
	width int
}

// NewStaticContent creates a static text content.
func NewStaticContent(text string) *StaticContent {
	return &StaticContent{Text: text}
}

func (s *StaticContent) Bind(*form.Orchestrator) {}

func (s *StaticContent) Init() tea.Cmd { return nil }

func (s *StaticContent) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab":
			return func() tea.Msg { return TabExitForwardMsg{} }
		case "shift+tab":
			return func() tea.Msg { return TabExitBackwardMsg{} }
		}
	}
	return nil
}

func (s *StaticContent) View() string {
	t := theme.Current()
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase))
	if s.width > 0 {
		style = style.Width(s.width)
	}
	return style.Render(s.Text)
}

func (s *StaticContent) SetSize(width, _ int) { s.width = width }

func (s *StaticContent) Focus() tea.Cmd { return nil }

func (s *StaticContent) Blur() {}

// contentFor resolves a step's opaque Content into a StepContent.
func contentFor(step form.Step) StepContent {
	switch c := step.Content.(type) {
	case StepContent:
		return c
	case string:
		return NewStaticContent(c)
	default:
		return NewStaticContent("")
	}
}
