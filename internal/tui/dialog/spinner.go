package dialog

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/stepform/internal/tui/theme"
)

// Spinner wraps the bubbles spinner for the loading slot that replaces
// a step's content while its Loading flag is set.
type Spinner struct {
	model spinner.Model
}

// NewSpinner creates a spinner in the theme's primary color.
func NewSpinner() Spinner {
	t := theme.Current()
	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary))),
	)
	return Spinner{model: s}
}

// Update handles spinner tick messages.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return cmd
}

// View renders the current spinner frame.
func (s *Spinner) View() string {
	return s.model.View()
}

// Tick returns the tick command that starts the animation.
func (s *Spinner) Tick() tea.Cmd {
	return s.model.Tick
}
