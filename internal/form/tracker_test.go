package form

import "testing"

func TestTracker_MarkCompleteIdempotent(t *testing.T) {
	tr := NewTracker(3)
	tr.MarkComplete(0)
	tr.MarkComplete(0)
	tr.MarkComplete(0)

	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
	if !tr.IsComplete(0) {
		t.Error("step 0 should be complete")
	}
}

func TestTracker_LastIndexNeverInserted(t *testing.T) {
	tr := NewTracker(3)
	tr.MarkComplete(2)

	if tr.IsComplete(2) {
		t.Error("last index must never enter the completion set")
	}
	if tr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tr.Len())
	}
}

func TestTracker_SizeNeverExceedsNMinusOne(t *testing.T) {
	tr := NewTracker(4)
	for i := -1; i <= 5; i++ {
		tr.MarkComplete(i)
	}
	if tr.Len() > 3 {
		t.Errorf("Len() = %d, must not exceed N-1 = 3", tr.Len())
	}
}

func TestTracker_FullyComplete(t *testing.T) {
	tr := NewTracker(3)
	if tr.FullyComplete() {
		t.Error("empty tracker over 3 steps is not fully complete")
	}
	tr.MarkComplete(0)
	if tr.FullyComplete() {
		t.Error("one of two required completions is not fully complete")
	}
	tr.MarkComplete(1)
	if !tr.FullyComplete() {
		t.Error("all steps before the last complete: should be fully complete")
	}
}

func TestTracker_FullyCompleteSingleStep(t *testing.T) {
	// A 1-step wizard has nothing to complete before the last step.
	tr := NewTracker(1)
	if !tr.FullyComplete() {
		t.Error("single-step tracker is vacuously fully complete")
	}
}

func TestTracker_FirstIncomplete(t *testing.T) {
	tr := NewTracker(4)
	tr.MarkComplete(0)
	tr.MarkComplete(2)

	i, ok := tr.FirstIncomplete()
	if !ok || i != 1 {
		t.Errorf("FirstIncomplete() = %d,%v, want 1,true", i, ok)
	}

	tr.MarkComplete(1)
	if _, ok := tr.FirstIncomplete(); ok {
		t.Error("no incomplete step should remain")
	}
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker(3)
	tr.MarkComplete(0)
	tr.MarkComplete(1)
	tr.Reset()

	if tr.Len() != 0 || tr.IsComplete(0) {
		t.Error("reset should clear the completion set")
	}
}
