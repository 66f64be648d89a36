package dialog

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/stepform/internal/form"
	"github.com/mark3labs/stepform/internal/logger"
	"gopkg.in/yaml.v3"
)

// ReviewContent is a read-only step body that shows an intro rendered
// as markdown followed by a highlighted YAML preview of everything the
// user has entered so far. Typically used as the last step of a
// wizard.
type ReviewContent struct {
	intro  string
	o      *form.Orchestrator
	width  int
	height int
}

// NewReviewContent creates a review content with the given markdown
// intro.
func NewReviewContent(intro string) *ReviewContent {
	return &ReviewContent{intro: intro}
}

func (r *ReviewContent) Bind(o *form.Orchestrator) {
	r.o = o
}

func (r *ReviewContent) Init() tea.Cmd { return nil }

func (r *ReviewContent) Update(msg tea.Msg) tea.Cmd {
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

func (r *ReviewContent) View() string {
	width := r.width
	if width <= 0 {
		width = 60
	}

	parts := []string{renderMarkdown(r.intro, width)}

	if r.o != nil {
		if preview := r.valuesPreview(); preview != "" {
			parts = append(parts, "", preview)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// valuesPreview renders the shared value store as highlighted YAML.
func (r *ReviewContent) valuesPreview() string {
	values := r.o.ValuesCopy()
	if len(values) == 0 {
		return ""
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		logger.Warn("Failed to render value preview: %v", err)
		return ""
	}
	return highlightYAML(string(data))
}

func (r *ReviewContent) SetSize(width, height int) {
	r.width = width
	r.height = height
}

func (r *ReviewContent) Focus() tea.Cmd { return nil }

func (r *ReviewContent) Blur() {}
