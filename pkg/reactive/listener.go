package reactive

// Listener is anything that can be notified when a dependency changes.
// Concrete implementers in this repo: Memo, Effect, and the render effect
// each signal write schedules.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies has
	// changed. A component schedules a re-render; a Memo invalidates its
	// cached value; an Effect schedules itself to re-run.
	MarkDirty()

	// ID returns a unique identifier for this listener, used to collapse
	// duplicate notifications queued for the same listener within a Batch.
	ID() uint64
}

// Cleanup is a function returned by effects to clean up resources.
// It is called before the effect re-runs and when the effect is disposed.
type Cleanup func()
