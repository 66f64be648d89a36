package form

import (
	"fmt"
	"regexp"
	"testing"
)

func TestSchemaValidate_Required(t *testing.T) {
	schema := Schema{
		"name": {Required: true},
	}

	tests := []struct {
		name    string
		values  map[string]string
		wantErr bool
	}{
		{"missing", map[string]string{}, true},
		{"empty", map[string]string{"name": ""}, true},
		{"whitespace only", map[string]string{"name": "   "}, true},
		{"set", map[string]string{"name": "Ada"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := schema.Validate(tt.values)
			if tt.wantErr && errs["name"] == "" {
				t.Error("expected an error for name")
			}
			if !tt.wantErr && errs["name"] != "" {
				t.Errorf("unexpected error: %s", errs["name"])
			}
		})
	}
}

func TestSchemaValidate_Pattern(t *testing.T) {
	schema := Schema{
		"email": {Pattern: regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)},
	}

	// Optional field: empty passes, malformed fails.
	if errs := schema.Validate(map[string]string{"email": ""}); len(errs) != 0 {
		t.Errorf("empty optional field should pass, got %v", errs)
	}
	if errs := schema.Validate(map[string]string{"email": "not-an-email"}); errs["email"] == "" {
		t.Error("malformed value should fail the pattern")
	}
	if errs := schema.Validate(map[string]string{"email": "ada@example.com"}); len(errs) != 0 {
		t.Errorf("valid value should pass, got %v", errs)
	}
}

func TestSchemaValidate_CustomCheck(t *testing.T) {
	schema := Schema{
		"port": {
			Required: true,
			Check: func(v string) error {
				if v == "0" {
					return fmt.Errorf("port must be non-zero")
				}
				return nil
			},
		},
	}

	errs := schema.Validate(map[string]string{"port": "0"})
	if errs["port"] != "port must be non-zero" {
		t.Errorf("expected custom check message, got %q", errs["port"])
	}
	if errs := schema.Validate(map[string]string{"port": "8080"}); len(errs) != 0 {
		t.Errorf("valid value should pass, got %v", errs)
	}
}

func TestSchemaValidate_MessageOverride(t *testing.T) {
	schema := Schema{
		"zip": {
			Required: true,
			Pattern:  regexp.MustCompile(`^\d{5}$`),
			Message:  "enter a 5-digit zip code",
		},
	}

	if got := schema.Validate(map[string]string{})["zip"]; got != "enter a 5-digit zip code" {
		t.Errorf("required failure should use override, got %q", got)
	}
	if got := schema.Validate(map[string]string{"zip": "abc"})["zip"]; got != "enter a 5-digit zip code" {
		t.Errorf("pattern failure should use override, got %q", got)
	}
}

func TestSchemaValidate_ScopedToOwnFields(t *testing.T) {
	// The schema only inspects its own fields; broken values belonging
	// to other steps never produce errors here.
	schema := Schema{
		"city": {Required: true},
	}

	errs := schema.Validate(map[string]string{
		"city":  "Berlin",
		"email": "definitely not an email",
	})
	if len(errs) != 0 {
		t.Errorf("cross-step fields must not be validated, got %v", errs)
	}
}

func TestSchemaValidate_NilSchema(t *testing.T) {
	var schema Schema
	if errs := schema.Validate(map[string]string{"anything": ""}); len(errs) != 0 {
		t.Errorf("nil schema should validate everything, got %v", errs)
	}
}
