package dialog

import (
	"os"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/stepform/internal/form"
	"github.com/mark3labs/stepform/internal/logger"
	"github.com/mark3labs/stepform/internal/tui/theme"
)

// Field is one labeled input inside a FieldGroup. Every edit is pushed
// into the orchestrator's shared value store immediately, so the
// submission gate recomputes on each keystroke.
type Field interface {
	StepContent
	// Name returns the field's key in the shared value store.
	Name() string
}

// TextField is a single-line input backed by bubbles textinput.
type TextField struct {
	name        string
	label       string
	placeholder string
	input       textinput.Model
	o           *form.Orchestrator
	touched     bool
	width       int
}

// NewTextField creates a single-line field writing to the given name.
func NewTextField(name, label, placeholder string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	return &TextField{
		name:        name,
		label:       label,
		placeholder: placeholder,
		input:       ti,
	}
}

// Name returns the field's key in the shared value store.
func (f *TextField) Name() string { return f.name }

// Bind seeds the input from the shared store so values survive
// navigating away and back.
func (f *TextField) Bind(o *form.Orchestrator) {
	f.o = o
	f.input.SetValue(o.Value(f.name))
}

func (f *TextField) Init() tea.Cmd {
	return textinput.Blink
}

func (f *TextField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.sync()
	return cmd
}

// sync pushes the widget's value into the shared store when changed.
func (f *TextField) sync() {
	if f.o == nil {
		return
	}
	if v := f.input.Value(); v != f.o.Value(f.name) {
		f.touched = true
		f.o.SetValue(f.name, v)
	}
}

func (f *TextField) View() string {
	return renderField(f.label, f.input.View(), f.errorText(), f.width)
}

func (f *TextField) errorText() string {
	if f.o == nil {
		return ""
	}
	// Untouched fields stay quiet until a submit reports against them.
	if !f.touched && !f.o.State().SubmitFailed {
		return ""
	}
	return f.o.FieldError(f.name)
}

func (f *TextField) SetSize(width, _ int) { f.width = width }

func (f *TextField) Focus() tea.Cmd {
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.input.Blur()
}

// MultilineField is a textarea-backed field. Ctrl+E opens $EDITOR on
// the current content; the edited result replaces the value.
type MultilineField struct {
	name    string
	label   string
	area    textarea.Model
	o       *form.Orchestrator
	touched bool
	width   int
}

// NewMultilineField creates a multi-line field writing to the given
// name.
func NewMultilineField(name, label, placeholder string) *MultilineField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 5000
	ta.SetHeight(5)
	ta.SetWidth(56)
	return &MultilineField{
		name:  name,
		label: label,
		area:  ta,
	}
}

// Name returns the field's key in the shared value store.
func (f *MultilineField) Name() string { return f.name }

func (f *MultilineField) Bind(o *form.Orchestrator) {
	f.o = o
	f.area.SetValue(o.Value(f.name))
}

func (f *MultilineField) Init() tea.Cmd {
	return textarea.Blink
}

func (f *MultilineField) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+e" {
			return f.openEditor()
		}
	case FieldEditedMsg:
		if msg.Field == f.name {
			f.area.SetValue(msg.Value)
			f.sync()
			return nil
		}
	}

	var cmd tea.Cmd
	f.area, cmd = f.area.Update(msg)
	f.sync()
	return cmd
}

func (f *MultilineField) sync() {
	if f.o == nil {
		return
	}
	if v := f.area.Value(); v != f.o.Value(f.name) {
		f.touched = true
		f.o.SetValue(f.name, v)
	}
}

// openEditor writes the field content to a temp file, opens $EDITOR on
// it, and reads the result back via FieldEditedMsg.
func (f *MultilineField) openEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "stepform-*.txt")
	if err != nil {
		logger.Warn("Failed to create temp file for editor: %v", err)
		return nil
	}
	if _, err := tmpfile.WriteString(f.area.Value()); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()

	cmd, err := editor.Command("stepform", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		return nil
	}

	field := f.name
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer func() { _ = os.Remove(tmpfile.Name()) }()
		if err != nil {
			return nil
		}
		content, err := os.ReadFile(tmpfile.Name())
		if err != nil {
			return nil
		}
		return FieldEditedMsg{Field: field, Value: string(content)}
	})
}

func (f *MultilineField) View() string {
	return renderField(f.label, f.area.View(), f.errorText(), f.width)
}

func (f *MultilineField) errorText() string {
	if f.o == nil {
		return ""
	}
	if !f.touched && !f.o.State().SubmitFailed {
		return ""
	}
	return f.o.FieldError(f.name)
}

func (f *MultilineField) SetSize(width, _ int) {
	f.width = width
	if width > 4 {
		f.area.SetWidth(width - 4)
	}
}

func (f *MultilineField) Focus() tea.Cmd {
	return f.area.Focus()
}

func (f *MultilineField) Blur() {
	f.area.Blur()
}

// renderField renders a labeled input with an optional inline error.
func renderField(label, input, errText string, width int) string {
	t := theme.Current()

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgSubtle)).
		Bold(true)

	parts := []string{labelStyle.Render(label), input}
	if errText != "" {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error))
		parts = append(parts, errStyle.Render("✗ "+errText))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if width > 0 {
		return lipgloss.NewStyle().Width(width).Render(body)
	}
	return body
}
