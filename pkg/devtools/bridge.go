package devtools

import (
	"os"
	"sync"
	"time"
)

// EventKind distinguishes the framework-raised lifecycle events from a
// user's own RecordEvent/RecordTyped calls.
type EventKind string

const (
	EventMount       EventKind = "mount"
	EventUpdate      EventKind = "update"
	EventUnmount     EventKind = "unmount"
	EventUntyped     EventKind = "event"
	EventTyped       EventKind = "typed-event"
	EventCapturedErr EventKind = "captured-error"
)

// Event is one record pushed to every connected inspector.
type Event struct {
	Kind       EventKind `json:"kind"`
	InstanceID uint64    `json:"instanceId,omitempty"`
	TypeName   string    `json:"typeName,omitempty"`
	Name       string    `json:"name,omitempty"`
	Payload    any       `json:"payload,omitempty"`
	At         time.Time `json:"at"`
}

// EnvVar is the flag spec §6 describes as "enabled by environment or
// global flag, disabled by default".
const EnvVar = "FENESTRA_DEVTOOLS"

// EnabledByEnv reports whether EnvVar requests the bridge be active.
func EnabledByEnv() bool {
	v := os.Getenv(EnvVar)
	return v != "" && v != "0" && v != "false"
}

// sink receives every Event a Bridge emits. websocket.go's connection type
// implements this; so does any test double that just wants to collect a
// slice.
type sink interface {
	send(Event)
}

// Bridge is the reference devtools bridge: a fan-out point for
// mount/update/unmount notifications and arbitrary typed/untyped events,
// delivered to every currently attached sink. A *Bridge with Enabled()
// false (the zero value, or one built via NewBridge(false)) is cheap to
// call into from hot paths — every method short-circuits before doing any
// work.
type Bridge struct {
	enabled bool

	mu    sync.RWMutex
	sinks map[sink]struct{}
}

// NewBridge constructs a Bridge. Most callers should use FromEnv instead,
// so the "disabled by default" rule is enforced in one place.
func NewBridge(enabled bool) *Bridge {
	return &Bridge{enabled: enabled, sinks: make(map[sink]struct{})}
}

// FromEnv constructs a Bridge enabled according to EnabledByEnv.
func FromEnv() *Bridge {
	return NewBridge(EnabledByEnv())
}

// Enabled reports whether b will do any work. A nil *Bridge is always
// disabled, so callers may hold a nil Bridge and call its methods freely.
func (b *Bridge) Enabled() bool {
	return b != nil && b.enabled
}

func (b *Bridge) broadcast(evt Event) {
	if !b.Enabled() {
		return
	}
	evt.At = time.Now()

	b.mu.RLock()
	defer b.mu.RUnlock()
	for s := range b.sinks {
		s.send(evt)
	}
}

func (b *Bridge) attach(s sink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sinks[s] = struct{}{}
}

func (b *Bridge) detach(s sink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.sinks, s)
}

// Mount implements pkg/reconciler.Devtools.
func (b *Bridge) Mount(instanceID uint64, typeName string) {
	b.broadcast(Event{Kind: EventMount, InstanceID: instanceID, TypeName: typeName})
}

// Update implements pkg/reconciler.Devtools.
func (b *Bridge) Update(instanceID uint64) {
	b.broadcast(Event{Kind: EventUpdate, InstanceID: instanceID})
}

// Unmount implements pkg/reconciler.Devtools.
func (b *Bridge) Unmount(instanceID uint64) {
	b.broadcast(Event{Kind: EventUnmount, InstanceID: instanceID})
}

// RecordEvent records an untyped, free-form event under name, with an
// arbitrary JSON-serializable payload.
func (b *Bridge) RecordEvent(name string, payload any) {
	b.broadcast(Event{Kind: EventUntyped, Name: name, Payload: payload})
}

// RecordTyped records an event whose payload is a known Go type, letting
// an inspector render it without a generic any-shaped fallback. It's
// distinguished from RecordEvent purely by Kind; the wire shape is
// identical, since JSON itself is untyped once encoded.
func RecordTyped[T any](b *Bridge, name string, payload T) {
	b.broadcast(Event{Kind: EventTyped, Name: name, Payload: payload})
}

// RecordCapturedError reports a CaptureError call (effect/lifecycle/
// fenestrate failure) to attached inspectors, so a developer can see
// reported-but-not-thrown errors without instrumenting their own code.
func (b *Bridge) RecordCapturedError(instanceID uint64, phase string, err error) {
	if !b.Enabled() {
		return
	}
	b.broadcast(Event{
		Kind:       EventCapturedErr,
		InstanceID: instanceID,
		Name:       phase,
		Payload:    err.Error(),
	})
}
