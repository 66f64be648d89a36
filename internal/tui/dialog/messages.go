package dialog

import "github.com/mark3labs/stepform/internal/form"

// SubmitFinishedMsg carries a finished submit call's outcome back to
// the main loop, where it is applied to the orchestrator.
type SubmitFinishedMsg struct {
	Result form.SubmitResult
}

// FieldEditedMsg is sent when an external editor returns with new
// content for a field.
type FieldEditedMsg struct {
	Field string
	Value string
}

// TabExitForwardMsg is sent when tab leaves the last input of the step
// content, moving focus to the button bar.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent when shift+tab leaves the first input of
// the step content, moving focus to the button bar from the end.
type TabExitBackwardMsg struct{}
