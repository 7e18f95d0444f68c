package reactive

// Batch groups multiple signal updates into a single notification phase.
// All signal updates within the batch function are collected, deduplicated,
// and then all affected listeners are notified once when the batch completes.
//
// This is useful for updating multiple related signals without triggering
// intermediate re-renders.
//
// Batches can be nested. Notifications only fire when the outermost batch completes.
//
// Example:
//
//	Batch(func() {
//	    firstName.Set("John")
//	    lastName.Set("Doe")
//	    age.Set(30)
//	})
//	// Component re-renders once with all three changes
func Batch(fn func()) {
	incrementBatchDepth()

	defer func() {
		if decrementBatchDepth() {
			processPendingUpdates()
		}
	}()

	fn()
}

// processPendingUpdates notifies every listener queued during the batch,
// exactly once each, regardless of how many signals it depended on changed.
func processPendingUpdates() {
	updates := drainPendingUpdates()
	if len(updates) == 0 {
		return
	}

	for _, listener := range dedupListeners(updates) {
		listener.MarkDirty()
	}
}

// dedupListeners returns listeners with duplicate IDs removed, preserving
// the order of first occurrence. A listener that depends on two signals
// changed within the same batch would otherwise queue twice and re-render
// twice.
func dedupListeners(listeners []Listener) []Listener {
	seen := make(map[uint64]bool, len(listeners))
	unique := make([]Listener, 0, len(listeners))

	for _, listener := range listeners {
		id := listener.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, listener)
	}

	return unique
}

// Untracked runs a function without tracking signal reads as dependencies.
// This is useful when you need to read a signal's value without creating
// a subscription.
//
// Example:
//
//	Untracked(func() {
//	    // Reading count here won't subscribe the current component
//	    value := count.Get()
//	    fmt.Println("Current value:", value)
//	})
//
// Note: For single signal reads, use signal.Peek() instead which is more
// efficient and clearer in intent.
func Untracked(fn func()) {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	fn()
}

// UntrackedGet reads a signal's value without creating a dependency.
// This is a convenience function equivalent to signal.Peek().
func UntrackedGet[T any](s *Signal[T]) T {
	return s.Peek()
}
