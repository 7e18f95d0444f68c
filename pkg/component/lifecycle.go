package component

import "context"

// Phase identifies a point in a component instance's lifecycle at which
// hooks registered via On may run.
type Phase int

const (
	PhaseBeforeMount Phase = iota
	PhaseMounted
	PhaseBeforeRender
	PhaseAfterRender
	PhaseUpdated
	PhaseBeforeUnmount
	PhaseUnmounted
)

func (p Phase) String() string {
	switch p {
	case PhaseBeforeMount:
		return "beforeMount"
	case PhaseMounted:
		return "mounted"
	case PhaseBeforeRender:
		return "beforeRender"
	case PhaseAfterRender:
		return "afterRender"
	case PhaseUpdated:
		return "updated"
	case PhaseBeforeUnmount:
		return "beforeUnmount"
	case PhaseUnmounted:
		return "unmounted"
	default:
		return "unknown"
	}
}

// HookOptions controls how a registered lifecycle hook runs.
type HookOptions struct {
	// Once runs the hook at most once, then discards it. Useful for
	// beforeMount/mounted hooks that have no reason to fire again.
	Once bool
	// Priority orders hooks registered for the same phase; hooks with a
	// lower Priority run first. Ties preserve registration order.
	Priority int
	// RequiredCapability gates the hook on a capability id: the hook is
	// skipped for any phase run where inst's capability checker (see
	// SetCapabilityChecker) reports the id as not granted. Empty means
	// unconditional. A skipped once-hook is not consumed; it fires the
	// next time the phase runs with the capability granted.
	RequiredCapability string
}

type registeredHook struct {
	fn       func()
	opts     HookOptions
	fired    bool
	position int
}

type lifecycleHooks struct {
	byPhase map[Phase][]*registeredHook
	seq     int
}

// On registers fn to run when inst enters phase, per opts (priority and
// a once flag for self-deregistration).
func (inst *Instance) On(phase Phase, fn func(), opts HookOptions) {
	if inst.lifecycle.byPhase == nil {
		inst.lifecycle.byPhase = make(map[Phase][]*registeredHook)
	}
	inst.lifecycle.seq++
	h := &registeredHook{fn: fn, opts: opts, position: inst.lifecycle.seq}

	hooks := inst.lifecycle.byPhase[phase]
	hooks = append(hooks, h)
	sortHooks(hooks)
	inst.lifecycle.byPhase[phase] = hooks
}

func sortHooks(hooks []*registeredHook) {
	for i := 1; i < len(hooks); i++ {
		j := i
		for j > 0 && less(hooks[j], hooks[j-1]) {
			hooks[j], hooks[j-1] = hooks[j-1], hooks[j]
			j--
		}
	}
}

func less(a, b *registeredHook) bool {
	if a.opts.Priority != b.opts.Priority {
		return a.opts.Priority < b.opts.Priority
	}
	return a.position < b.position
}

// runPhase runs every hook registered for phase, in priority/insertion
// order. A hook that panics is reported via CaptureError under the phase's
// own name rather than aborting the remaining hooks of that phase (spec
// §4.D "Hook execution").
func (inst *Instance) runPhase(phase Phase) {
	hooks := inst.lifecycle.byPhase[phase]
	remaining := hooks[:0]
	for _, h := range hooks {
		if h.fired && h.opts.Once {
			continue
		}
		if h.opts.RequiredCapability != "" && !inst.hasCapability(h.opts.RequiredCapability) {
			remaining = append(remaining, h)
			continue
		}
		inst.runHookSafely(phase, h.fn)
		h.fired = true
		if !h.opts.Once {
			remaining = append(remaining, h)
		}
	}
	inst.lifecycle.byPhase[phase] = remaining
}

// hasCapability reports whether capabilityID is currently granted to inst,
// per the checker installed with SetCapabilityChecker. An instance with no
// checker installed treats every RequiredCapability as ungranted, so a
// capability-gated hook simply never fires rather than firing
// unconditionally.
func (inst *Instance) hasCapability(capabilityID string) bool {
	if inst.capChecker == nil {
		return false
	}
	return inst.capChecker(capabilityID)
}

// SetCapabilityChecker installs the predicate runPhase consults for
// RequiredCapability-gated hooks. pkg/capability wires this from the
// registry's grant list at construction time.
func (inst *Instance) SetCapabilityChecker(fn func(capabilityID string) bool) {
	inst.capChecker = fn
}

func (inst *Instance) runHookSafely(phase Phase, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			inst.CaptureError(phase.String(), panicToError(r))
		}
	}()
	fn()
}

// Mount runs the beforeMount/mounted lifecycle pair and performs the
// instance's first render, attaching its tree via the wired Committer.
// Callers must call Mount exactly once, before the instance's first
// Commit.
func (inst *Instance) Mount() (err error) {
	inst.runPhase(PhaseBeforeMount)
	if err := inst.Commit(context.Background()); err != nil {
		return err
	}
	inst.runPhase(PhaseMounted)
	return nil
}
