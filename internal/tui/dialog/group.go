package dialog

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/stepform/internal/form"
)

// FieldGroup stacks several fields vertically and cycles keyboard
// focus between them. Tab past the last field (or shift+tab before the
// first) hands focus to the button bar.
type FieldGroup struct {
	fields  []Field
	focused int
	width   int
	height  int
}

// NewFieldGroup creates a group over the given fields.
func NewFieldGroup(fields ...Field) *FieldGroup {
	return &FieldGroup{fields: fields}
}

func (g *FieldGroup) Bind(o *form.Orchestrator) {
	for _, f := range g.fields {
		f.Bind(o)
	}
}

func (g *FieldGroup) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, f := range g.fields {
		cmds = append(cmds, f.Init())
	}
	return tea.Batch(cmds...)
}

func (g *FieldGroup) Update(msg tea.Msg) tea.Cmd {
	if len(g.fields) == 0 {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab":
			if g.focused+1 >= len(g.fields) {
				return func() tea.Msg { return TabExitForwardMsg{} }
			}
			g.fields[g.focused].Blur()
			g.focused++
			return g.fields[g.focused].Focus()
		case "shift+tab":
			if g.focused == 0 {
				return func() tea.Msg { return TabExitBackwardMsg{} }
			}
			g.fields[g.focused].Blur()
			g.focused--
			return g.fields[g.focused].Focus()
		}
		// Other keys go to the focused field only.
		return g.fields[g.focused].Update(msg)

	case FieldEditedMsg:
		// Editor results are addressed by field name.
		for _, f := range g.fields {
			if f.Name() == msg.Field {
				return f.Update(msg)
			}
		}
		return nil
	}

	// Broadcast everything else (blink ticks, resizes).
	var cmds []tea.Cmd
	for _, f := range g.fields {
		cmds = append(cmds, f.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (g *FieldGroup) View() string {
	var parts []string
	for i, f := range g.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, f.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (g *FieldGroup) SetSize(width, height int) {
	g.width = width
	g.height = height
	for _, f := range g.fields {
		f.SetSize(width, height)
	}
}

// Focus focuses the first field.
func (g *FieldGroup) Focus() tea.Cmd {
	if len(g.fields) == 0 {
		return nil
	}
	g.focused = 0
	return g.fields[0].Focus()
}

// FocusLast focuses the last field, for shift+tab wrap-around from the
// button bar.
func (g *FieldGroup) FocusLast() tea.Cmd {
	if len(g.fields) == 0 {
		return nil
	}
	g.focused = len(g.fields) - 1
	return g.fields[g.focused].Focus()
}

func (g *FieldGroup) Blur() {
	for _, f := range g.fields {
		f.Blur()
	}
}
