package dialog

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/stepform/internal/form"
	"github.com/mark3labs/stepform/internal/tui/theme"
)

// Step marker glyphs.
const (
	markerDone    = "✓"
	markerPending = "○"
	markerActive  = "●"
)

// renderStepper renders the numbered step header. A single-step wizard
// gets no header at all.
func renderStepper(o *form.Orchestrator, width int) string {
	steps := o.Steps()
	if len(steps) < 2 {
		return ""
	}

	t := theme.Current()

	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true)
	pendingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgSurface2))

	var parts []string
	for i, s := range steps {
		var marker string
		style := pendingStyle
		switch {
		case i == o.ActiveIndex():
			marker = markerActive
			style = activeStyle
		case o.StepComplete(i):
			marker = markerDone
			style = doneStyle
		default:
			marker = markerPending
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s %d %s", marker, i+1, s.Label)))
	}

	header := strings.Join(parts, sepStyle.Render(" ── "))
	return lipgloss.Place(width, 1, lipgloss.Center, lipgloss.Center, header)
}
