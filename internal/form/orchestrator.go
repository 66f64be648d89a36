package form

import (
	"context"

	"github.com/mark3labs/stepform/internal/logger"
)

// State is the explicit mutable state behind the wizard: the shared
// value store, the current scoped errors, and the dirty/submitted
// flags the submission gate reads. It is owned by the Orchestrator and
// only mutated through its methods.
type State struct {
	// Values is the single field-value store shared across all steps.
	// Steps are views over one growing record, not independent
	// sub-forms; colliding field names merge by design.
	Values map[string]string

	// Errors holds the current per-field error messages, scoped to the
	// active step's schema. Recomputed on every edit and transition.
	Errors map[string]string

	// GeneralError is a form-level message reported by a failed
	// submit, rendered under the step content.
	GeneralError string

	// Dirty is set on the first edit and cleared by Reinitialize.
	Dirty bool

	// Submitted is set once the final submit succeeds.
	Submitted bool

	// SubmitFailed is set when a submit is rejected, so the UI can
	// surface reported field errors even on fields the user never
	// edited. Cleared when the next submit starts.
	SubmitFailed bool

	submitting bool
}

// Helpers is handed to the caller's submit routine so it can report
// submission-level errors back into the wizard. Errors are collected
// here and applied to the state by FinishSubmit, keeping the submit
// goroutine away from shared state.
type Helpers struct {
	fieldErrors map[string]string
	general     string
}

// SetFieldError records an error against a single field.
func (h *Helpers) SetFieldError(field, message string) {
	if h.fieldErrors == nil {
		h.fieldErrors = make(map[string]string)
	}
	h.fieldErrors[field] = message
}

// SetError records a form-level error message.
func (h *Helpers) SetError(message string) {
	h.general = message
}

func (h *Helpers) failed() bool {
	return len(h.fieldErrors) > 0 || h.general != ""
}

// SubmitFunc is the caller's terminal submit routine. It receives the
// full value store and reports failures either by returning an error
// or through the helpers.
type SubmitFunc func(ctx context.Context, values map[string]string, helpers *Helpers) error

// SubmitResult carries a finished submit call's outcome back to the
// event loop so it can be applied on the main goroutine.
type SubmitResult struct {
	Err          error
	FieldErrors  map[string]string
	GeneralError string
}

// OK reports whether the submit succeeded.
func (r SubmitResult) OK() bool {
	return r.Err == nil && len(r.FieldErrors) == 0 && r.GeneralError == ""
}

// Options configures an Orchestrator.
type Options struct {
	// InitialValues seeds the shared value store.
	InitialValues map[string]string

	// OnSubmit is invoked, and awaited, exactly once per successful
	// final-step activation. Required.
	OnSubmit SubmitFunc

	// OnClose is invoked when the user cancels or dismisses the
	// dialog. The orchestrator performs no cleanup of its own.
	OnClose func()

	// OnAdvance, when set, receives the accumulated values once per
	// non-final activation, before navigation advances.
	OnAdvance func(values map[string]string)

	// DisableBackdropClose suppresses close-on-backdrop dismissal.
	// The explicit cancel action still closes.
	DisableBackdropClose bool

	// EnableReinitialize allows Reinitialize to replace the value
	// store after construction.
	EnableReinitialize bool

	// CancelLabel and SubmitLabel override the button texts. NextLabel
	// defaults to "Next".
	CancelLabel string
	SubmitLabel string
	NextLabel   string
}

// Orchestrator is the top-level wizard controller. It owns the shared
// value store, scopes validation to the active step, and on activation
// either advances the navigator or runs the caller's submit routine.
type Orchestrator struct {
	steps []Step
	nav   *Navigator
	done  *Tracker
	state State
	opts  Options

	// submitValues is the value snapshot taken by BeginSubmit. It is
	// what RunSubmit hands to the submit routine, so a worker goroutine
	// never reads the live value store while the event loop keeps
	// writing to it.
	submitValues map[string]string
}

// New builds an Orchestrator over the ordered step list. It fails on
// an empty list or duplicate labels.
func New(steps []Step, opts Options) (*Orchestrator, error) {
	if err := validateSteps(steps); err != nil {
		return nil, err
	}
	if opts.CancelLabel == "" {
		opts.CancelLabel = "Cancel"
	}
	if opts.SubmitLabel == "" {
		opts.SubmitLabel = "Submit"
	}
	if opts.NextLabel == "" {
		opts.NextLabel = "Next"
	}

	values := make(map[string]string, len(opts.InitialValues))
	for k, v := range opts.InitialValues {
		values[k] = v
	}

	o := &Orchestrator{
		steps: steps,
		nav:   NewNavigator(len(steps)),
		done:  NewTracker(len(steps)),
		opts:  opts,
		state: State{
			Values: values,
			Errors: make(map[string]string),
		},
	}
	o.revalidate()
	return o, nil
}

// Steps returns the ordered step descriptors.
func (o *Orchestrator) Steps() []Step {
	return o.steps
}

// ActiveStep returns the descriptor for the active step.
func (o *Orchestrator) ActiveStep() Step {
	return o.steps[o.nav.Current()]
}

// ActiveIndex returns the active step index.
func (o *Orchestrator) ActiveIndex() int {
	return o.nav.Current()
}

// IsLastStep reports whether the active step is the last one.
func (o *Orchestrator) IsLastStep() bool {
	return o.nav.IsLast()
}

// StepComplete reports whether index is in the completion set.
func (o *Orchestrator) StepComplete(index int) bool {
	return o.done.IsComplete(index)
}

// CompletedCount returns the completion set size.
func (o *Orchestrator) CompletedCount() int {
	return o.done.Len()
}

// State returns the current wizard state for rendering.
func (o *Orchestrator) State() *State {
	return &o.state
}

// Value returns the current value of a field.
func (o *Orchestrator) Value(field string) string {
	return o.state.Values[field]
}

// FieldError returns the current error for a field, or "".
func (o *Orchestrator) FieldError(field string) string {
	return o.state.Errors[field]
}

// SetValue writes one field into the shared store, marks the form
// dirty, and revalidates the active step's schema. Values persist when
// the user navigates away and back.
func (o *Orchestrator) SetValue(field, value string) {
	o.state.Values[field] = value
	o.state.Dirty = true
	o.state.GeneralError = ""
	o.revalidate()
}

// ActionDisabled reports the submission gate's verdict for the current
// state.
func (o *Orchestrator) ActionDisabled() bool {
	return ActionDisabled(o.ActiveStep(), &o.state)
}

// ActionLabel returns the primary action button label.
func (o *Orchestrator) ActionLabel() string {
	return ActionLabel(o.nav, o.opts.NextLabel, o.opts.SubmitLabel)
}

// CancelLabel returns the cancel button label.
func (o *Orchestrator) CancelLabel() string {
	return o.opts.CancelLabel
}

// Activate handles a primary-action press synchronously: it validates
// the active step and, depending on position, advances or runs the
// submit routine to completion. Event loops that must not block should
// use BeginSubmit/RunSubmit/FinishSubmit for the final step instead.
func (o *Orchestrator) Activate(ctx context.Context) {
	if !o.validateActive() {
		return
	}
	if !o.nav.IsLast() {
		o.advance()
		return
	}
	if !o.done.FullyComplete() {
		// Reached the end with unfinished steps: recover instead of
		// submitting.
		o.nav.Advance(o.done)
		o.revalidate()
		return
	}
	if !o.BeginSubmit() {
		return
	}
	o.FinishSubmit(o.RunSubmit(ctx))
}

// AdvanceOrSubmit reports what the next activation would do, after
// validation: either advance (or recover), or start the final submit.
func (o *Orchestrator) AdvanceOrSubmit() (submit bool) {
	return o.nav.IsLast() && o.done.FullyComplete()
}

// validateActive runs the scoped validator for the active step and
// records the result. Returns true when the step passes.
func (o *Orchestrator) validateActive() bool {
	o.revalidate()
	return len(o.state.Errors) == 0
}

// advance marks the current step complete and moves the navigator
// forward, feeding the per-advance sink first when one is configured.
func (o *Orchestrator) advance() {
	if o.opts.OnAdvance != nil {
		o.opts.OnAdvance(o.ValuesCopy())
	}
	o.done.MarkComplete(o.nav.Current())
	o.nav.Advance(o.done)
	o.revalidate()
}

// Advance validates the active step and moves forward when it passes.
// Returns true when navigation happened.
func (o *Orchestrator) Advance() bool {
	if o.nav.IsLast() || !o.validateActive() {
		return false
	}
	o.advance()
	return true
}

// JumpTo attempts a non-linear jump. Legal only when target or
// target-1 is already complete; illegal requests are a silent no-op.
func (o *Orchestrator) JumpTo(target int) bool {
	if !o.nav.JumpTo(target, o.done) {
		return false
	}
	o.revalidate()
	return true
}

// BeginSubmit gates the start of a final submit: it refuses while one
// is already outstanding, off the last step, with incomplete steps, or
// while the gate is disabled. On success the submitting flag is set,
// which disables the gate until FinishSubmit, and the value store is
// snapshotted for the submit routine.
func (o *Orchestrator) BeginSubmit() bool {
	if o.state.submitting || !o.nav.IsLast() || !o.done.FullyComplete() {
		return false
	}
	if !o.validateActive() {
		return false
	}
	if ActionDisabled(o.ActiveStep(), &o.state) {
		return false
	}
	o.state.submitting = true
	o.state.GeneralError = ""
	o.state.SubmitFailed = false
	o.submitValues = o.ValuesCopy()
	return true
}

// RunSubmit invokes the caller's submit routine on the snapshot taken
// by BeginSubmit and collects its outcome without touching wizard
// state, so it is safe to call from a worker goroutine between
// BeginSubmit and FinishSubmit even while the event loop keeps
// editing values.
func (o *Orchestrator) RunSubmit(ctx context.Context) SubmitResult {
	values := o.submitValues
	if values == nil {
		values = o.ValuesCopy()
	}
	helpers := &Helpers{}
	err := o.opts.OnSubmit(ctx, values, helpers)
	return SubmitResult{
		Err:          err,
		FieldErrors:  helpers.fieldErrors,
		GeneralError: helpers.general,
	}
}

// FinishSubmit applies a submit outcome. Success marks every step
// complete and flags the wizard submitted; failure surfaces the
// reported errors and leaves the user on the last step to retry.
func (o *Orchestrator) FinishSubmit(res SubmitResult) {
	o.state.submitting = false
	o.submitValues = nil
	if res.OK() {
		for i := range o.steps {
			o.done.MarkComplete(i)
		}
		o.state.Submitted = true
		logger.Debug("Wizard submitted with %d fields", len(o.state.Values))
		return
	}
	if res.Err != nil {
		logger.Debug("Submit failed: %v", res.Err)
		if res.GeneralError == "" {
			res.GeneralError = res.Err.Error()
		}
	}
	for field, msg := range res.FieldErrors {
		o.state.Errors[field] = msg
	}
	o.state.GeneralError = res.GeneralError
	o.state.SubmitFailed = true
}

// Submitting reports whether a final submit is outstanding.
func (o *Orchestrator) Submitting() bool {
	return o.state.submitting
}

// Reinitialize replaces the value store with fresh initial values and
// clears errors and dirtiness. No-op unless EnableReinitialize is set.
func (o *Orchestrator) Reinitialize(values map[string]string) {
	if !o.opts.EnableReinitialize {
		logger.Debug("Ignoring reinitialize: not enabled")
		return
	}
	o.state.Values = make(map[string]string, len(values))
	for k, v := range values {
		o.state.Values[k] = v
	}
	o.state.Dirty = false
	o.state.GeneralError = ""
	o.state.SubmitFailed = false
	o.revalidate()
}

// RequestClose runs the caller's close callback. Backdrop-initiated
// requests are ignored when DisableBackdropClose is set; the explicit
// cancel action always closes. Returns true when the dialog closed.
func (o *Orchestrator) RequestClose(backdrop bool) bool {
	if backdrop && o.opts.DisableBackdropClose {
		return false
	}
	if o.opts.OnClose != nil {
		o.opts.OnClose()
	}
	return true
}

// ValuesCopy returns a copy of the shared value store, for handing to
// caller callbacks without aliasing internal state.
func (o *Orchestrator) ValuesCopy() map[string]string {
	out := make(map[string]string, len(o.state.Values))
	for k, v := range o.state.Values {
		out[k] = v
	}
	return out
}

// revalidate recomputes the error map, scoped to the active step's
// schema only.
func (o *Orchestrator) revalidate() {
	schema := o.ActiveStep().Schema
	if schema == nil {
		o.state.Errors = make(map[string]string)
		return
	}
	o.state.Errors = schema.Validate(o.state.Values)
}
