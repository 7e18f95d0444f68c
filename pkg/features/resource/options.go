package resource

import "time"

// configure runs fn with r's option fields protected against a concurrent
// Refetch goroutine reading them; every builder method below goes through
// this instead of taking/releasing r.mu itself.
func (r *Resource[T]) configure(fn func()) *Resource[T] {
	r.mu.Lock()
	fn()
	r.mu.Unlock()
	return r
}

// StaleTime sets how long previously-loaded data is served without
// refetching when Fetch is called again. A negative duration is clamped to
// zero (every Fetch refetches), since a negative staleness window has no
// sensible meaning for the time.Since comparison in Fetch.
func (r *Resource[T]) StaleTime(d time.Duration) *Resource[T] {
	if d < 0 {
		d = 0
	}
	return r.configure(func() { r.staleTime = d })
}

// RetryOnError sets how many additional attempts Refetch makes after an
// initial failure, and the delay between attempts. A negative count is
// clamped to zero.
func (r *Resource[T]) RetryOnError(count int, delay time.Duration) *Resource[T] {
	if count < 0 {
		count = 0
	}
	return r.configure(func() {
		r.retryCount = count
		r.retryDelay = delay
	})
}

// OnSuccess registers fn to run on the goroutine that completed a
// successful fetch, after state has already flipped to Ready. Registering
// a new callback replaces any previous one rather than chaining them, so
// callers can re-call OnSuccess to swap behavior without accumulating
// handlers across re-renders.
func (r *Resource[T]) OnSuccess(fn func(T)) *Resource[T] {
	return r.configure(func() { r.onSuccess = fn })
}

// OnError registers fn to run on the goroutine that exhausted every retry
// attempt, after state has already flipped to Error.
func (r *Resource[T]) OnError(fn func(error)) *Resource[T] {
	return r.configure(func() { r.onError = fn })
}
