// Package form implements the headless state machine behind the
// stepform wizard dialog: step descriptors, per-step validation rules,
// navigation, completion tracking, and submission orchestration.
// It has no rendering dependencies and is testable without a terminal.
package form

import "fmt"

// Step describes one page of the wizard. Steps are supplied once as an
// ordered slice and are immutable for the wizard's lifetime.
type Step struct {
	// Label identifies the step in the stepper header. Must be unique
	// across the wizard; labels are the stable identity key, the index
	// only encodes position.
	Label string

	// Schema declares the validation rules for the fields this step
	// owns. A nil Schema means the step is unconditionally valid.
	Schema Schema

	// Loading swaps the step's content for a spinner with
	// LoadingMessage while set. It does not block navigation or
	// validation.
	Loading        bool
	LoadingMessage string

	// Content is the opaque renderable for this step. The core never
	// inspects it; the TUI layer type-asserts it to its own widget
	// interface.
	Content any
}

// validateSteps checks the step list invariants at construction time.
func validateSteps(steps []Step) error {
	if len(steps) == 0 {
		return fmt.Errorf("wizard requires at least one step")
	}
	seen := make(map[string]bool, len(steps))
	for i, s := range steps {
		if s.Label == "" {
			return fmt.Errorf("step %d has an empty label", i)
		}
		if seen[s.Label] {
			return fmt.Errorf("duplicate step label %q", s.Label)
		}
		seen[s.Label] = true
	}
	return nil
}
