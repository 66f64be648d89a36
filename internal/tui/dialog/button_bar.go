package dialog

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/stepform/internal/tui/theme"
)

// ButtonID identifies a button in the bar.
type ButtonID int

const (
	ButtonCancel ButtonID = iota
	ButtonAction          // Next/Submit, depending on position
)

// Button is a single button in the bar.
type Button struct {
	ID       ButtonID
	Label    string
	Disabled bool
}

// ButtonBar manages the dialog's Cancel and Next/Submit buttons with
// focus tracking. Focus index -1 means no button is focused.
type ButtonBar struct {
	buttons []Button
	focused int
	width   int
}

// NewButtonBar creates a button bar with the given buttons, unfocused.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focused: -1,
		width:   60,
	}
}

// SetWidth updates the rendering width.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// SetLabel updates a button's label.
func (b *ButtonBar) SetLabel(id ButtonID, label string) {
	for i := range b.buttons {
		if b.buttons[i].ID == id {
			b.buttons[i].Label = label
		}
	}
}

// SetDisabled updates a button's disabled state.
func (b *ButtonBar) SetDisabled(id ButtonID, disabled bool) {
	for i := range b.buttons {
		if b.buttons[i].ID == id {
			b.buttons[i].Disabled = disabled
		}
	}
}

// FocusFirst moves focus to the first button.
func (b *ButtonBar) FocusFirst() {
	if len(b.buttons) > 0 {
		b.focused = 0
	}
}

// FocusLast moves focus to the last button.
func (b *ButtonBar) FocusLast() {
	b.focused = len(b.buttons) - 1
}

// FocusNext moves focus to the next button. Returns false when focus
// would leave the bar.
func (b *ButtonBar) FocusNext() bool {
	if b.focused+1 >= len(b.buttons) {
		return false
	}
	b.focused++
	return true
}

// FocusPrev moves focus to the previous button. Returns false when
// focus would leave the bar.
func (b *ButtonBar) FocusPrev() bool {
	if b.focused <= 0 {
		return false
	}
	b.focused--
	return true
}

// Blur removes button focus.
func (b *ButtonBar) Blur() {
	b.focused = -1
}

// Focused reports whether any button holds focus.
func (b *ButtonBar) Focused() bool {
	return b.focused >= 0
}

// FocusedButton returns the ID of the focused button. Only meaningful
// while Focused() is true.
func (b *ButtonBar) FocusedButton() ButtonID {
	if b.focused < 0 || b.focused >= len(b.buttons) {
		return ButtonCancel
	}
	return b.buttons[b.focused].ID
}

// Render renders the button bar centered in its width.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	t := theme.Current()

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		Background(lipgloss.Color(t.BgSurface0)).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	disabledStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		Background(lipgloss.Color(t.BgMantle)).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.FgBright)).
		Bold(true).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	var rendered []string
	for i, btn := range b.buttons {
		switch {
		case i == b.focused:
			rendered = append(rendered, focusedStyle.Render(btn.Label))
		case btn.Disabled:
			rendered = append(rendered, disabledStyle.Render(btn.Label))
		default:
			rendered = append(rendered, normalStyle.Render(btn.Label))
		}
	}

	result := strings.Join(rendered, "")
	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, result)
}
