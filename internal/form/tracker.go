package form

// Tracker maintains the set of step indices the user has successfully
// advanced past. The final step is never inserted: finishing the whole
// wizard is signaled by the orchestrator's submitted flag, not by
// completing the last index.
type Tracker struct {
	done  map[int]bool
	count int // total number of steps
}

// NewTracker creates a tracker for a wizard with count steps.
func NewTracker(count int) *Tracker {
	return &Tracker{
		done:  make(map[int]bool),
		count: count,
	}
}

// MarkComplete records that the user has passed index's validation and
// advanced beyond it. Idempotent. The last index is rejected so the
// completion set size never exceeds count-1.
func (t *Tracker) MarkComplete(index int) {
	if index < 0 || index >= t.count-1 {
		return
	}
	t.done[index] = true
}

// IsComplete reports whether index is in the completion set.
func (t *Tracker) IsComplete(index int) bool {
	return t.done[index]
}

// FullyComplete reports whether every step before the last has been
// completed. Vacuously true for a single-step wizard.
func (t *Tracker) FullyComplete() bool {
	return len(t.done) == t.count-1
}

// FirstIncomplete returns the lowest index not yet completed, scanning
// only the steps before the last. The bool is false when there is no
// incomplete step.
func (t *Tracker) FirstIncomplete() (int, bool) {
	for i := 0; i < t.count-1; i++ {
		if !t.done[i] {
			return i, true
		}
	}
	return 0, false
}

// Len returns the completion set size.
func (t *Tracker) Len() int {
	return len(t.done)
}

// Reset clears the completion set. Used by wizard restart only.
func (t *Tracker) Reset() {
	t.done = make(map[int]bool)
}
