package form

import (
	"regexp"
	"strings"
)

// Rule is a single declarative constraint on one field. Rules are
// plain data so steps can be described without pulling in any external
// validation library's object model.
type Rule struct {
	// Required rejects empty (or whitespace-only) values.
	Required bool

	// Pattern, when set, must match non-empty values. Empty optional
	// values skip the pattern check.
	Pattern *regexp.Regexp

	// Check is an optional custom predicate run after Required and
	// Pattern pass. Its error message is shown inline.
	Check func(value string) error

	// Message overrides the default error text for Required and
	// Pattern failures.
	Message string
}

// Schema maps field names to their rules. A schema is scoped to one
// step: validation only ever inspects the fields named here, so fields
// belonging to other steps never block the active one.
type Schema map[string]Rule

// Default error messages.
const (
	msgRequired = "this field is required"
	msgPattern  = "invalid format"
)

// Validate evaluates the schema against the shared value store and
// returns an error message per failing field. Fields not named in the
// schema are ignored. A nil schema validates everything.
func (s Schema) Validate(values map[string]string) map[string]string {
	errs := make(map[string]string)
	for field, rule := range s {
		value := values[field]
		if msg := rule.apply(value); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// apply runs one rule against one value and returns the error message,
// or "" if the value passes.
func (r Rule) apply(value string) string {
	trimmed := strings.TrimSpace(value)
	if r.Required && trimmed == "" {
		return r.message(msgRequired)
	}
	if trimmed == "" {
		// Optional and empty: nothing further to check.
		return ""
	}
	if r.Pattern != nil && !r.Pattern.MatchString(value) {
		return r.message(msgPattern)
	}
	if r.Check != nil {
		if err := r.Check(value); err != nil {
			return err.Error()
		}
	}
	return ""
}

func (r Rule) message(fallback string) string {
	if r.Message != "" {
		return r.Message
	}
	return fallback
}
