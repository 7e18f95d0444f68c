package component

import (
	"fmt"

	"github.com/fenestra-dev/fenestra/internal/diag"
	"github.com/fenestra-dev/fenestra/pkg/vdom"
)

// FallbackRenderer builds the tree an error boundary commits in place of a
// panicking descendant's output. err is the captured panic, wrapped in a
// *diag.Diagnostic when the panic value wasn't already one.
type FallbackRenderer func(err error) *vdom.VNode

// boundaryState holds the fallback renderer for an instance that has opted
// into catching descendant render panics, plus the error that last tripped
// it (cleared by Reset).
type boundaryState struct {
	fallback FallbackRenderer
	lastErr  error
}

// SetErrorBoundary installs fallback as inst's error boundary: a panic
// during the render of inst or any descendant instance that has no closer
// boundary of its own is caught here instead of propagating to inst's
// parent.
func (inst *Instance) SetErrorBoundary(fallback FallbackRenderer) {
	inst.boundary = &boundaryState{fallback: fallback}
}

// BoundaryError returns the error currently held by inst's own error
// boundary, or nil if inst has no boundary or it isn't tripped.
func (inst *Instance) BoundaryError() error {
	if inst.boundary == nil {
		return nil
	}
	return inst.boundary.lastErr
}

// ResetErrorBoundary clears a tripped boundary on inst and marks it dirty so
// the next scheduled commit attempts a real render again instead of
// repeating the fallback.
func (inst *Instance) ResetErrorBoundary() {
	if inst.boundary == nil {
		return
	}
	inst.boundary.lastErr = nil
	inst.MarkDirty()
}

// recoverRender turns a panic captured during Render into either a fallback
// tree (when inst or an ancestor owns a boundary) or an error the caller
// must propagate. It walks Parent rather than Owner.Parent since boundary
// placement follows the component tree, not the reactive scope tree.
func (inst *Instance) recoverRender(r any) (*vdom.VNode, error) {
	err := panicToError(r)

	for b := inst; b != nil; b = b.Parent {
		if b.boundary == nil {
			continue
		}
		b.boundary.lastErr = err
		return b.boundary.fallback(err), nil
	}

	return nil, err
}

func panicToError(r any) error {
	if err, ok := r.(error); ok {
		return diag.New("E011").Wrap(err)
	}
	return diag.New("E011").WithDetail(fmt.Sprintf("%v", r))
}

// LastCapturedError holds the most recent error reported through
// CaptureError for a phase that isn't a render (effect bodies, lifecycle
// hooks, fenestrate calls). Unlike the error-boundary protocol, capturing
// one of these never unmounts or re-renders the instance; it's a report,
// not recovery.
type LastCapturedError struct {
	Phase string
	Err   error
}

// CaptureError reports err as having occurred during phase (one of the
// lifecycle phase names, "effect", or "fenestrate:<id>"). It is
// re-entrancy-guarded per spec §7: an error captured while already
// handling another error on this instance is swallowed, so a broken error
// reporter can't recurse into itself indefinitely.
func (inst *Instance) CaptureError(phase string, err error) {
	if err == nil || inst.capturing {
		return
	}
	inst.capturing = true
	defer func() { inst.capturing = false }()

	inst.lastCaptured = &LastCapturedError{Phase: phase, Err: err}
	if inst.onCapturedError != nil {
		inst.onCapturedError(*inst.lastCaptured)
	}
}

// LastCapturedErrorValue returns the last non-render error reported on inst via
// CaptureError, or nil if none has been reported.
func (inst *Instance) LastCapturedErrorValue() *LastCapturedError {
	return inst.lastCaptured
}

// OnCapturedError installs fn to run synchronously every time CaptureError
// records a new error on inst. pkg/devtools uses this to surface
// effect/lifecycle/fenestrate failures without the reconciler having to
// poll.
func (inst *Instance) OnCapturedError(fn func(LastCapturedError)) {
	inst.onCapturedError = fn
}
