package form

import "github.com/mark3labs/stepform/internal/logger"

// Navigator owns the active step index and computes legal transitions.
// The index always stays in [0, count-1]; "done" is represented by the
// orchestrator's submitted flag, not by leaving the index range.
type Navigator struct {
	active int
	count  int
}

// NewNavigator creates a navigator over count steps, starting at 0.
func NewNavigator(count int) *Navigator {
	return &Navigator{count: count}
}

// Current returns the active step index.
func (n *Navigator) Current() int {
	return n.active
}

// IsFirst reports whether the active step is the first one.
func (n *Navigator) IsFirst() bool {
	return n.active == 0
}

// IsLast reports whether the active step is the last one.
func (n *Navigator) IsLast() bool {
	return n.active == n.count-1
}

// Count returns the number of steps.
func (n *Navigator) Count() int {
	return n.count
}

// Advance moves forward one step. On the last step it instead recovers
// to the lowest incomplete step, for users who reached the end via a
// jump without finishing everything. When the last step is reached and
// all prior steps are complete it is a no-op; submission is the
// orchestrator's job, not the navigator's.
func (n *Navigator) Advance(completed *Tracker) {
	if !n.IsLast() {
		n.active++
		return
	}
	if completed.FullyComplete() {
		return
	}
	if i, ok := completed.FirstIncomplete(); ok {
		logger.Debug("Recovering from last step to first incomplete step %d", i)
		n.active = i
	}
}

// JumpTo moves directly to target when target is adjacent to the
// completed boundary: either target itself or target-1 must already be
// complete. This allows revisiting a completed step or moving exactly
// one step past it, while rejecting arbitrary far jumps. Illegal
// requests leave the index unchanged and return false.
func (n *Navigator) JumpTo(target int, completed *Tracker) bool {
	if target < 0 || target >= n.count {
		return false
	}
	if completed.IsComplete(target) || (target > 0 && completed.IsComplete(target-1)) {
		n.active = target
		return true
	}
	logger.Debug("Rejected jump to step %d: not adjacent to a completed step", target)
	return false
}
