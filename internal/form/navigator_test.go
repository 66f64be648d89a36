package form

import "testing"

func TestNavigator_AdvanceForward(t *testing.T) {
	nav := NewNavigator(3)
	done := NewTracker(3)

	if !nav.IsFirst() || nav.IsLast() {
		t.Fatal("fresh navigator should sit on the first step")
	}

	nav.Advance(done)
	if nav.Current() != 1 {
		t.Errorf("Current() = %d, want 1", nav.Current())
	}

	nav.Advance(done)
	if !nav.IsLast() {
		t.Error("expected last step after two advances")
	}
}

func TestNavigator_LastStepRecoversToFirstIncomplete(t *testing.T) {
	// Scenario: user reached the end without completing step 1.
	nav := NewNavigator(3)
	done := NewTracker(3)
	done.MarkComplete(0)

	nav.Advance(done)
	nav.Advance(done)
	if nav.Current() != 2 {
		t.Fatalf("setup: Current() = %d, want 2", nav.Current())
	}

	nav.Advance(done)
	if nav.Current() != 1 {
		t.Errorf("advance on last step should recover to step 1, got %d", nav.Current())
	}
	if done.Len() != 1 {
		t.Errorf("completion set must be unchanged, got %d entries", done.Len())
	}
}

func TestNavigator_LastStepNoOpWhenFullyComplete(t *testing.T) {
	nav := NewNavigator(3)
	done := NewTracker(3)
	done.MarkComplete(0)
	done.MarkComplete(1)

	nav.Advance(done)
	nav.Advance(done)
	nav.Advance(done)
	if nav.Current() != 2 {
		t.Errorf("advance on a fully complete last step must be a no-op, got %d", nav.Current())
	}
}

func TestNavigator_JumpToRequiresCompletedAdjacency(t *testing.T) {
	nav := NewNavigator(4)
	done := NewTracker(4)

	// Nothing completed: any jump is rejected.
	if nav.JumpTo(2, done) {
		t.Error("jump to 2 with empty completion set should be rejected")
	}
	if nav.Current() != 0 {
		t.Errorf("rejected jump must not move the index, got %d", nav.Current())
	}

	done.MarkComplete(0)

	// 0 is complete: may revisit 0 and move one past the boundary to 1.
	if !nav.JumpTo(1, done) {
		t.Error("jump to 1 should be allowed with 0 complete")
	}
	if !nav.JumpTo(0, done) {
		t.Error("revisiting completed step 0 should be allowed")
	}

	// 2 is neither complete nor adjacent to a completed index.
	if nav.JumpTo(2, done) {
		t.Error("far jump to 2 should be rejected")
	}
	if nav.Current() != 0 {
		t.Errorf("rejected jump must not move the index, got %d", nav.Current())
	}
}

func TestNavigator_JumpToOutOfRange(t *testing.T) {
	nav := NewNavigator(2)
	done := NewTracker(2)
	done.MarkComplete(0)

	if nav.JumpTo(-1, done) {
		t.Error("negative target should be rejected")
	}
	if nav.JumpTo(2, done) {
		t.Error("target past the end should be rejected")
	}
	if nav.Current() != 0 {
		t.Errorf("index must stay put, got %d", nav.Current())
	}
}

func TestNavigator_IndexAlwaysInRange(t *testing.T) {
	// Hammer the navigator with every operation; the index must stay
	// within [0, N-1] throughout.
	for n := 1; n <= 5; n++ {
		nav := NewNavigator(n)
		done := NewTracker(n)
		for i := 0; i < 3*n; i++ {
			nav.Advance(done)
			done.MarkComplete(i % n)
			nav.JumpTo(i%n, done)
			if cur := nav.Current(); cur < 0 || cur >= n {
				t.Fatalf("n=%d: index %d out of range", n, cur)
			}
		}
	}
}

func TestNavigator_SingleStep(t *testing.T) {
	nav := NewNavigator(1)
	done := NewTracker(1)

	if !nav.IsFirst() || !nav.IsLast() {
		t.Error("single-step wizard is both first and last")
	}
	nav.Advance(done)
	if nav.Current() != 0 {
		t.Errorf("single-step advance must be a no-op, got %d", nav.Current())
	}
}
