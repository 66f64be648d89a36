// Package dialog renders a stepform wizard inside a centered modal for
// Bubble Tea v2 applications: stepper header, pluggable step content,
// Cancel/Next/Submit button bar, and a loading slot for steps that are
// still fetching their content.
package dialog

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/stepform/internal/form"
	"github.com/mark3labs/stepform/internal/logger"
	"github.com/mark3labs/stepform/internal/tui/theme"
)

// Modal layout constants.
const (
	defaultModalWidth = 70
	modalPadding      = 2 // Horizontal padding on each side
	modalBorderWidth  = 1 // Border width on each side
)

// Options configures the wizard dialog.
type Options struct {
	// Title is shown at the top of the modal.
	Title string

	// Steps is the ordered step list handed to the orchestrator.
	Steps []form.Step

	// Form carries the orchestrator options: callbacks, initial
	// values, label overrides, backdrop behavior.
	Form form.Options

	// MaxWidth caps the modal width (default 70). FullWidth stretches
	// the modal to the terminal width instead.
	MaxWidth  int
	FullWidth bool
}

// Result is what Run hands back to the caller.
type Result struct {
	Values    map[string]string
	Submitted bool
	Cancelled bool
}

// Model is the Bubble Tea model hosting one wizard dialog.
type Model struct {
	orch     *form.Orchestrator
	opts     Options
	contents []StepContent

	buttonBar     *ButtonBar
	buttonFocused bool

	spinner Spinner

	width     int
	height    int
	cancelled bool

	ctx context.Context
}

// New builds the dialog model. It fails on an invalid step list.
func New(opts Options) (*Model, error) {
	orch, err := form.New(opts.Steps, opts.Form)
	if err != nil {
		return nil, err
	}

	contents := make([]StepContent, len(opts.Steps))
	for i, s := range opts.Steps {
		contents[i] = contentFor(s)
		contents[i].Bind(orch)
	}

	bar := NewButtonBar([]Button{
		{ID: ButtonCancel, Label: orch.CancelLabel()},
		{ID: ButtonAction, Label: orch.ActionLabel()},
	})

	return &Model{
		orch:      orch,
		opts:      opts,
		contents:  contents,
		buttonBar: bar,
		spinner:   NewSpinner(),
		ctx:       context.Background(),
	}, nil
}

// Run opens the wizard as a standalone Bubble Tea program and blocks
// until it closes.
func Run(opts Options) (*Result, error) {
	m, err := New(opts)
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard dialog failed: %w", err)
	}

	dlg, ok := finalModel.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	return dlg.Result(), nil
}

// Result snapshots the wizard's outcome.
func (m *Model) Result() *Result {
	return &Result{
		Values:    m.orch.ValuesCopy(),
		Submitted: m.orch.State().Submitted,
		Cancelled: m.cancelled,
	}
}

// Orchestrator exposes the underlying controller, mainly for tests.
func (m *Model) Orchestrator() *form.Orchestrator {
	return m.orch
}

// Init initializes the dialog and focuses the first step.
func (m *Model) Init() tea.Cmd {
	return m.enterStep()
}

// Update handles messages for the dialog.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeContent()
		return m, nil

	case TabExitForwardMsg:
		m.buttonFocused = true
		m.activeContent().Blur()
		m.buttonBar.FocusFirst()
		return m, nil

	case TabExitBackwardMsg:
		m.buttonFocused = true
		m.activeContent().Blur()
		m.buttonBar.FocusLast()
		return m, nil

	case SubmitFinishedMsg:
		m.orch.FinishSubmit(msg.Result)
		if m.orch.State().Submitted {
			return m, tea.Quit
		}
		// Stay on the last step so the user can correct and retry.
		return m, nil
	}

	// Everything else goes to the active step content (spinner ticks
	// included, which only matter while a loading slot is visible).
	var cmds []tea.Cmd
	if m.orch.ActiveStep().Loading || m.orch.Submitting() {
		cmds = append(cmds, m.spinner.Update(msg))
	}
	if !m.orch.ActiveStep().Loading {
		cmds = append(cmds, m.activeContent().Update(msg))
	}
	return m, tea.Batch(cmds...)
}

// handleKey processes dialog-level keys. Returns handled=false when the
// key should fall through to the step content.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		m.close(false)
		return tea.Quit, true
	case "esc":
		// Esc is the terminal's backdrop: dismiss unless suppressed.
		if m.orch.RequestClose(true) {
			m.cancelled = true
			return tea.Quit, true
		}
		logger.Debug("Backdrop dismiss suppressed")
		return nil, true
	}

	// Non-linear jumps: alt+N targets step N-1, subject to the
	// adjacency rule. Illegal requests are silently ignored.
	if len(key) == 5 && key[:4] == "alt+" && key[4] >= '1' && key[4] <= '9' {
		target := int(key[4] - '1')
		if m.orch.JumpTo(target) {
			return m.enterStep(), true
		}
		return nil, true
	}

	if m.buttonFocused {
		switch key {
		case "tab", "right":
			if !m.buttonBar.FocusNext() {
				m.buttonFocused = false
				m.buttonBar.Blur()
				return m.focusContentFirst(), true
			}
			return nil, true
		case "shift+tab", "left":
			if !m.buttonBar.FocusPrev() {
				m.buttonFocused = false
				m.buttonBar.Blur()
				return m.focusContentLast(), true
			}
			return nil, true
		case "enter", " ":
			return m.activateButton(m.buttonBar.FocusedButton()), true
		}
		// Swallow remaining keys while buttons hold focus.
		return nil, true
	}

	// While a loading slot is shown the content cannot take keys, so
	// tab goes straight to the buttons.
	if m.orch.ActiveStep().Loading {
		switch key {
		case "tab", "shift+tab":
			m.buttonFocused = true
			m.buttonBar.FocusFirst()
			return nil, true
		}
	}

	return nil, false
}

// activateButton handles button activation.
func (m *Model) activateButton(id ButtonID) tea.Cmd {
	switch id {
	case ButtonCancel:
		m.close(false)
		return tea.Quit
	case ButtonAction:
		return m.activatePrimary()
	}
	return nil
}

// activatePrimary runs the primary action: validate, then advance or
// start the final submit.
func (m *Model) activatePrimary() tea.Cmd {
	if m.orch.ActionDisabled() {
		return nil
	}

	if m.orch.AdvanceOrSubmit() {
		if !m.orch.BeginSubmit() {
			return nil
		}
		// Run the caller's submit routine off the main loop and feed
		// the outcome back as a message.
		orch := m.orch
		ctx := m.ctx
		return tea.Batch(m.spinner.Tick(), func() tea.Msg {
			return SubmitFinishedMsg{Result: orch.RunSubmit(ctx)}
		})
	}

	before := m.orch.ActiveIndex()
	m.orch.Activate(m.ctx)
	if m.orch.ActiveIndex() != before {
		return m.enterStep()
	}
	return nil
}

// close invokes the caller's close callback and marks the dialog
// cancelled.
func (m *Model) close(backdrop bool) {
	m.orch.RequestClose(backdrop)
	m.cancelled = true
}

// enterStep prepares the newly active step: size, focus, and startup
// commands.
func (m *Model) enterStep() tea.Cmd {
	m.buttonFocused = false
	m.buttonBar.Blur()
	m.resizeContent()

	content := m.activeContent()
	cmds := []tea.Cmd{content.Init(), content.Focus()}
	if m.orch.ActiveStep().Loading {
		cmds = append(cmds, m.spinner.Tick())
	}
	return tea.Batch(cmds...)
}

func (m *Model) activeContent() StepContent {
	return m.contents[m.orch.ActiveIndex()]
}

func (m *Model) focusContentFirst() tea.Cmd {
	return m.activeContent().Focus()
}

func (m *Model) focusContentLast() tea.Cmd {
	if g, ok := m.activeContent().(*FieldGroup); ok {
		return g.FocusLast()
	}
	return m.activeContent().Focus()
}

// modalWidth computes the modal's outer width.
func (m *Model) modalWidth() int {
	if m.opts.FullWidth && m.width > 0 {
		return m.width - 4
	}
	w := m.opts.MaxWidth
	if w <= 0 {
		w = defaultModalWidth
	}
	if m.width > 0 && w > m.width-4 {
		w = m.width - 4
	}
	if w < 40 {
		w = 40
	}
	return w
}

// contentWidth is the modal width minus padding and border.
func (m *Model) contentWidth() int {
	return m.modalWidth() - (modalPadding * 2) - (modalBorderWidth * 2)
}

func (m *Model) resizeContent() {
	contentHeight := m.height - 12
	if contentHeight < 6 {
		contentHeight = 6
	}
	for _, c := range m.contents {
		c.SetSize(m.contentWidth(), contentHeight)
	}
	m.buttonBar.SetWidth(m.contentWidth())
}

// View renders the dialog.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	content := m.renderModal()

	centered := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderModal renders the modal body: title, stepper, content (or the
// loading slot), general error, buttons, hint.
func (m *Model) renderModal() string {
	t := theme.Current()

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Primary)).
		MarginBottom(1)
	title := titleStyle.Render(m.opts.Title)

	sections := []string{title}

	if header := renderStepper(m.orch, m.contentWidth()); header != "" {
		sections = append(sections, header, "")
	}

	sections = append(sections, m.renderBody(), "")

	if generalErr := m.orch.State().GeneralError; generalErr != "" {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true)
		sections = append(sections, errStyle.Render("✗ "+generalErr), "")
	}

	m.refreshButtons()
	sections = append(sections, m.buttonBar.Render(), "")

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		Render(renderHintBar("tab", "navigate", "alt+n", "jump to step", "esc", "close"))
	sections = append(sections, hint)

	modalStyle := lipgloss.NewStyle().
		Width(m.modalWidth()).
		Padding(modalPadding).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderDefault))

	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderBody renders the step content, or the loading/submitting slot
// in its place.
func (m *Model) renderBody() string {
	t := theme.Current()

	if m.orch.Submitting() {
		msgStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle))
		return m.spinner.View() + " " + msgStyle.Render("Submitting...")
	}

	step := m.orch.ActiveStep()
	if step.Loading {
		message := step.LoadingMessage
		if message == "" {
			message = "Loading..."
		}
		msgStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle))
		return m.spinner.View() + " " + msgStyle.Render(message)
	}

	return m.activeContent().View()
}

// refreshButtons syncs the button bar with the gate and navigator.
func (m *Model) refreshButtons() {
	m.buttonBar.SetLabel(ButtonAction, m.orch.ActionLabel())
	m.buttonBar.SetDisabled(ButtonAction, m.orch.ActionDisabled())
}

// renderHintBar formats key/description pairs for the footer line.
func renderHintBar(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  •  ")
		}
		b.WriteString(pairs[i])
		b.WriteString(" ")
		b.WriteString(pairs[i+1])
	}
	return b.String()
}
