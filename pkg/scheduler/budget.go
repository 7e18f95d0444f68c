package scheduler

import (
	"sync"
	"time"

	"github.com/fenestra-dev/fenestra/pkg/reactive"
)

// Config tunes a Budget's rolling-window throttle.
type Config struct {
	// MaxCommitsPerWindow caps how many times a single instance may
	// commit within WindowDuration before further commits are dropped.
	MaxCommitsPerWindow int
	WindowDuration      time.Duration
}

// DefaultConfig allows roughly one commit per display frame, sustained.
func DefaultConfig() Config {
	return Config{
		MaxCommitsPerWindow: 60,
		WindowDuration:      time.Second,
	}
}

// Budget tracks a rolling window of commit timestamps per instance ID and
// rejects commits past the configured rate.
type Budget struct {
	cfg     Config
	mu      sync.Mutex
	windows map[uint64]*window
}

// NewBudget constructs a Budget with the given configuration.
func NewBudget(cfg Config) *Budget {
	return &Budget{cfg: cfg, windows: make(map[uint64]*window)}
}

type window struct {
	events []time.Time
}

// CheckEffectRun records a commit attempt for instanceID and returns
// reactive.ErrBudgetExceeded if it would exceed the configured rate.
func (b *Budget) CheckEffectRun(instanceID uint64) error {
	now := time.Now()

	b.mu.Lock()
	defer b.mu.Unlock()

	w, ok := b.windows[instanceID]
	if !ok {
		w = &window{}
		b.windows[instanceID] = w
	}

	cutoff := now.Add(-b.cfg.WindowDuration)
	kept := w.events[:0]
	for _, t := range w.events {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	w.events = kept

	if len(w.events) >= b.cfg.MaxCommitsPerWindow {
		return reactive.ErrBudgetExceeded
	}

	w.events = append(w.events, now)
	return nil
}

// Forget drops tracking state for instanceID, called when a component
// instance unmounts so its window doesn't leak for the scheduler's
// lifetime.
func (b *Budget) Forget(instanceID uint64) {
	b.mu.Lock()
	delete(b.windows, instanceID)
	b.mu.Unlock()
}
