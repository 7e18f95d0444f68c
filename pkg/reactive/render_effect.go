package reactive

import (
	"sync"
	"sync/atomic"
)

// RenderEffect is a dependency-tracked Listener like Effect, but instead of
// queuing itself onto its owner's pending-effects list when a dependency
// changes, it invokes onDirty synchronously and leaves deciding when (and
// whether) to re-run up to the caller.
//
// pkg/reconciler uses one RenderEffect per component instance to bridge a
// render pass to pkg/scheduler: Run wraps the instance's actual Component.Render
// call, so the dependency set recorded is exactly the cells that render call
// read (not some separate tracking pass), and onDirty asks the scheduler for
// a commit instead of waiting for an Owner's next RunPendingEffects flush —
// satisfying spec invariant 3 ("at most one render effect active at any
// time") without requiring the render pass to live inside an Effect's
// owner-queued re-run cycle, which is tuned for ordinary side effects, not
// for a pass that must run synchronously before the caller can diff its
// output.
type RenderEffect struct {
	id        uint64
	sources   []*signalBase
	sourcesMu sync.Mutex
	onDirty   func()
	disposed  atomic.Bool
}

// NewRenderEffect constructs a RenderEffect that calls onDirty whenever a
// signal read during its last Run changes.
func NewRenderEffect(onDirty func()) *RenderEffect {
	return &RenderEffect{id: nextID(), onDirty: onDirty}
}

// ID satisfies Listener.
func (r *RenderEffect) ID() uint64 { return r.id }

// MarkDirty satisfies Listener. It does not re-run anything itself; it only
// notifies onDirty, once per dirty transition is not enforced here since
// the scheduler's own dedup (by instance id) absorbs repeated notifications
// within one turn.
func (r *RenderEffect) MarkDirty() {
	if r.disposed.Load() {
		return
	}
	if r.onDirty != nil {
		r.onDirty()
	}
}

// Run executes fn with r installed as the current listener, after first
// unsubscribing r from every signal it read on the previous Run. This is
// the same clear-then-resubscribe cycle Effect.run performs, so a
// RenderEffect's dependency set always equals exactly the cells read during
// its last Run — no phantom subscriptions survive a render that stopped
// reading a cell it used to read (spec §8 property 1).
func (r *RenderEffect) Run(fn func()) {
	r.sourcesMu.Lock()
	for _, s := range r.sources {
		s.unsubscribe(r)
	}
	r.sources = r.sources[:0]
	r.sourcesMu.Unlock()

	old := setCurrentListener(r)
	defer setCurrentListener(old)
	fn()
}

// addSource records that r depends on s, read from Signal.Get/Memo.Get
// while r is the current listener. Deduplicated by pointer identity.
func (r *RenderEffect) addSource(s *signalBase) {
	r.sourcesMu.Lock()
	defer r.sourcesMu.Unlock()
	for _, existing := range r.sources {
		if existing == s {
			return
		}
	}
	r.sources = append(r.sources, s)
}

// Dispose unsubscribes r from every remaining source. Idempotent.
func (r *RenderEffect) Dispose() {
	if r.disposed.Swap(true) {
		return
	}
	r.sourcesMu.Lock()
	for _, s := range r.sources {
		s.unsubscribe(r)
	}
	r.sources = nil
	r.sourcesMu.Unlock()
}
