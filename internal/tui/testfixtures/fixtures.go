package testfixtures

import (
	"context"
	"errors"
	"regexp"

	"github.com/mark3labs/stepform/internal/form"
)

// Patterns shared by the wizard fixtures.
var (
	EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ProfileSteps returns the canonical three-step wizard used across
// dialog tests: a details step, a contact step with an email pattern,
// and a schema-less review step.
func ProfileSteps() []form.Step {
	return []form.Step{
		{
			Label: "Details",
			Schema: form.Schema{
				"name": {Required: true},
			},
		},
		{
			Label: "Contact",
			Schema: form.Schema{
				"email": {Required: true, Pattern: EmailPattern, Message: "enter a valid email"},
			},
		},
		{
			Label: "Review",
		},
	}
}

// SingleStep returns a one-step wizard for degenerate-case tests.
func SingleStep() []form.Step {
	return []form.Step{
		{
			Label:  "Everything",
			Schema: form.Schema{"name": {Required: true}},
		},
	}
}

// FilledValues returns values that satisfy every ProfileSteps schema.
func FilledValues() map[string]string {
	return map[string]string{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
	}
}

// SubmitOK is a submit routine that always succeeds.
func SubmitOK(context.Context, map[string]string, *form.Helpers) error {
	return nil
}

// SubmitGeneralFailure is a submit routine that fails with a plain
// error, which surfaces as the wizard's general error line.
func SubmitGeneralFailure(context.Context, map[string]string, *form.Helpers) error {
	return errors.New("service unavailable")
}

// SubmitFieldFailure is a submit routine that rejects the email field
// the way a backend uniqueness check would.
func SubmitFieldFailure(_ context.Context, _ map[string]string, h *form.Helpers) error {
	h.SetFieldError("email", "already registered")
	return nil
}
