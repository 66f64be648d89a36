package dialog

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/stepform/internal/form"
	"github.com/mark3labs/stepform/internal/tui/testfixtures"
)

func TestRenderStepper_SingleStepHidden(t *testing.T) {
	o, err := form.New(testfixtures.SingleStep(), form.Options{OnSubmit: testfixtures.SubmitOK})
	if err != nil {
		t.Fatal(err)
	}

	if out := renderStepper(o, 60); out != "" {
		t.Errorf("single-step wizard should render no stepper, got %q", out)
	}
}

func TestRenderStepper_Markers(t *testing.T) {
	o, err := form.New(testfixtures.ProfileSteps(), form.Options{OnSubmit: testfixtures.SubmitOK})
	if err != nil {
		t.Fatal(err)
	}

	out := renderStepper(o, 80)
	for _, label := range []string{"Details", "Contact", "Review"} {
		if !strings.Contains(out, label) {
			t.Errorf("stepper missing label %q: %q", label, out)
		}
	}
	if !strings.Contains(out, markerActive) {
		t.Errorf("stepper should mark the active step: %q", out)
	}
	if strings.Contains(out, markerDone) {
		t.Errorf("nothing is complete yet, no done marker expected: %q", out)
	}

	// Complete the first step and move on.
	o.SetValue("name", "Ada")
	o.Activate(context.Background())

	out = renderStepper(o, 80)
	if !strings.Contains(out, markerDone) {
		t.Errorf("completed first step should show a done marker: %q", out)
	}
}
