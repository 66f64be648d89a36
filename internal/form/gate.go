package form

import "strings"

// ActionDisabled computes whether the primary action button should be
// disabled, purely from current state. Precedence:
//
//  1. a submit already in flight always disables
//  2. a step with no schema is disabled only while pristine; the
//     remaining rules do not apply to it
//  3. an all-empty form disables (guards the initial render)
//  4. an error on any field named in the active step's schema disables
//  5. an unmodified (not dirty) form disables
func ActionDisabled(step Step, st *State) bool {
	if st.submitting {
		return true
	}
	if step.Schema == nil {
		return !st.Dirty
	}
	if !anyValueSet(st.Values) {
		return true
	}
	for field := range step.Schema {
		if st.Errors[field] != "" {
			return true
		}
	}
	return !st.Dirty
}

// ActionLabel returns the primary action label: nextLabel while not on
// the last step, submitLabel on the last step. Independent of
// enablement.
func ActionLabel(nav *Navigator, nextLabel, submitLabel string) string {
	if nav.IsLast() {
		return submitLabel
	}
	return nextLabel
}

// anyValueSet reports whether at least one field anywhere in the form
// holds a non-empty value.
func anyValueSet(values map[string]string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
