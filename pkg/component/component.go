// Package component implements the per-instance lifecycle that sits between
// a Component's Render method and the reconciler: instance identity across
// re-renders, the phase-ordered lifecycle hook list, and error boundary
// capture.
//
// An Instance tracks Owner, Parent, Children, Props, a dirty flag, and the
// last rendered tree, and generalizes a plain mount/unmount pair into a
// full ordered lifecycle.
package component

import (
	"context"
	"sync/atomic"

	"github.com/fenestra-dev/fenestra/pkg/reactive"
	"github.com/fenestra-dev/fenestra/pkg/scheduler"
	"github.com/fenestra-dev/fenestra/pkg/vdom"
)

// Component is anything that can render a virtual tree inside an owner's
// reactive scope.
type Component interface {
	Render() *vdom.VNode
}

// FuncComponent adapts a plain render function to the Component interface.
type FuncComponent func() *vdom.VNode

// Render implements Component.
func (f FuncComponent) Render() *vdom.VNode { return f() }

var nextInstanceID uint64

// Instance wraps a Component with the reactive owner that scopes its
// signals/effects, its place in the instance tree, and the last tree it
// committed — the identity the reconciler keys cross-structural reuse and
// the scheduler keys storm-budget tracking on.
type Instance struct {
	id        uint64
	Component Component
	Owner     *reactive.Owner
	Parent    *Instance
	Children  []*Instance
	Props     any

	root     bool
	dirty    atomic.Bool
	lastTree *vdom.VNode

	lifecycle lifecycleHooks
	boundary  *boundaryState
	commit    Committer

	renderEffect *reactive.RenderEffect
	scheduler    *scheduler.Scheduler
	schedCtx     context.Context

	capturing       bool
	lastCaptured    *LastCapturedError
	onCapturedError func(LastCapturedError)
	caps            map[string]any
	capChecker      func(capabilityID string) bool
}

// Committer diffs inst's freshly rendered tree against its last committed
// one and applies the resulting patches through a reconciler. It is
// injected rather than called directly so pkg/component never has to
// import pkg/reconciler (which itself depends on Instance for
// cross-structural component reuse).
type Committer func(inst *Instance, tree *vdom.VNode) error

// SetCommitter wires the function the instance uses to apply a render to
// the live (or string-buffer) tree it's attached to. The runtime that
// constructs the component tree sets this once, at mount.
func (inst *Instance) SetCommitter(c Committer) { inst.commit = c }

// FlushMode satisfies scheduler.Instance.
func (inst *Instance) FlushMode() scheduler.FlushMode {
	if inst.root {
		return scheduler.FlushRoot
	}
	return scheduler.FlushChild
}

// Commit satisfies scheduler.Instance: it re-renders (whether or not the
// instance is dirty) and hands the result to the wired Committer.
func (inst *Instance) Commit(ctx context.Context) error {
	tree, err := inst.Render()
	if err != nil {
		return err
	}
	if inst.commit == nil {
		inst.SetLastTree(tree)
		return nil
	}
	if err := inst.commit(inst, tree); err != nil {
		return err
	}
	inst.SetLastTree(tree)
	inst.runPhase(PhaseUpdated)
	return nil
}

// New constructs an Instance for comp, scoped under parent's owner (nil for
// a root instance). root controls the scheduler's FlushMode: root
// instances coalesce onto the next frame, non-root instances commit
// synchronously as part of their parent's pass.
func New(comp Component, parent *Instance, root bool) *Instance {
	var parentOwner *reactive.Owner
	var parentInst *Instance
	if parent != nil {
		parentOwner = parent.Owner
		parentInst = parent
	}

	inst := &Instance{
		id:        atomic.AddUint64(&nextInstanceID, 1),
		Component: comp,
		Owner:     reactive.NewOwner(parentOwner),
		Parent:    parentInst,
		root:      root,
	}
	if parent != nil {
		parent.Children = append(parent.Children, inst)
	}
	return inst
}

// AttachScheduler wires inst to sched: from this point on, a signal read
// during Render and later written triggers MarkDirty and asks sched to
// commit inst, rather than requiring an external caller to poll. Mounting
// code (pkg/reconciler) calls this once, before the instance's first
// render; instances exercised purely with Render()/Commit() in tests (no
// scheduler attached) keep working exactly as before.
func (inst *Instance) AttachScheduler(ctx context.Context, sched *scheduler.Scheduler) {
	inst.scheduler = sched
	inst.schedCtx = ctx
	inst.renderEffect = reactive.NewRenderEffect(func() {
		inst.MarkDirty()
		sched.ScheduleUpdate(ctx, inst)
	})
}

// InstanceID satisfies scheduler.Instance.
func (inst *Instance) InstanceID() uint64 { return inst.id }

// IsRoot reports whether this instance coalesces onto the scheduler's frame
// boundary rather than flushing synchronously.
func (inst *Instance) IsRoot() bool { return inst.root }

// MarkDirty flags the instance as needing a re-render on its next commit.
func (inst *Instance) MarkDirty() { inst.dirty.Store(true) }

// LastTree returns the tree this instance committed on its last render,
// nil before the first render.
func (inst *Instance) LastTree() *vdom.VNode { return inst.lastTree }

// Render runs the instance's render phase inside its owner's tracking
// scope, invoking beforeRender/afterRender hooks and capturing panics into
// the nearest error boundary. It returns the freshly rendered tree; the
// caller (the reconciler) is responsible for diffing it against LastTree
// and committing the result before calling SetLastTree.
func (inst *Instance) Render() (tree *vdom.VNode, err error) {
	defer func() {
		if r := recover(); r != nil {
			tree, err = inst.recoverRender(r)
		}
	}()

	inst.runPhase(PhaseBeforeRender)
	inst.Owner.StartRender()
	var rendered *vdom.VNode
	renderOnce := func() {
		reactive.WithOwner(inst.Owner, func() {
			rendered = inst.Component.Render()
		})
	}
	if inst.renderEffect != nil {
		inst.renderEffect.Run(renderOnce)
	} else {
		renderOnce()
	}
	inst.Owner.EndRender()
	inst.runPhase(PhaseAfterRender)

	inst.dirty.Store(false)
	return rendered, nil
}

// SetLastTree records tree as the instance's last committed render, called
// by the reconciler once patches from the previous tree have been applied.
func (inst *Instance) SetLastTree(tree *vdom.VNode) { inst.lastTree = tree }

// FlushEffects runs the instance's pending effects, gated by budget.
func (inst *Instance) FlushEffects(budget reactive.CommitBudget) {
	inst.Owner.RunPendingEffects(budget)
}

// CacheGet returns the cached result Fenestrate stored under key for this
// instance, if any. pkg/capability uses this so a repeated Pierce call
// during the same mounted lifetime of an instance can skip re-resolving a
// capability that returned a stable result.
func (inst *Instance) CacheGet(key string) (any, bool) {
	if inst.caps == nil {
		return nil, false
	}
	v, ok := inst.caps[key]
	return v, ok
}

// CacheSet stores value under key in inst's per-instance capability cache.
func (inst *Instance) CacheSet(key string, value any) {
	if inst.caps == nil {
		inst.caps = make(map[string]any)
	}
	inst.caps[key] = value
}

// CacheClear drops every cached capability result for inst. Called on
// Dispose, and available to a capability registry that wants to force
// re-resolution (e.g. after a session/tenant change).
func (inst *Instance) CacheClear() {
	inst.caps = nil
}

// Dispose runs unmount lifecycle hooks and tears down the owner, releasing
// every signal/effect/memo the instance created.
func (inst *Instance) Dispose() {
	inst.runPhase(PhaseBeforeUnmount)
	if inst.renderEffect != nil {
		inst.renderEffect.Dispose()
	}
	inst.Owner.Dispose()
	inst.CacheClear()
	inst.runPhase(PhaseUnmounted)
}
