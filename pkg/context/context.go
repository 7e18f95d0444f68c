package context

import (
	"os"
	"sync"

	"github.com/fenestra-dev/fenestra/pkg/reactive"
	"github.com/fenestra-dev/fenestra/pkg/vdom"
)

// Ctx is a context created by Create. Consume its value from anywhere in
// the component tree below a Provider call with Use.
type Ctx[T any] struct {
	key          any
	defaultValue T
}

// ctxKey gives each Ctx[T] a unique, comparable map key distinct from any
// other Ctx[T] with the same type parameter.
type ctxKey[T any] struct {
	ctx *Ctx[T]
}

// Create returns a new context holding defaultValue, returned by Use when
// no enclosing Provider has set one.
func Create[T any](defaultValue T) *Ctx[T] {
	c := &Ctx[T]{defaultValue: defaultValue}
	c.key = ctxKey[T]{ctx: c}
	return c
}

// Default returns the context's default value.
func (c *Ctx[T]) Default() T {
	return c.defaultValue
}

var (
	subscribeOnce   sync.Once
	subscribeEnable bool
)

// subscriptionEnabled reports whether Use should track its read through a
// signal. Resolved once per process from FENESTRA_CONTEXT_SUBSCRIBE,
// defaulting to on.
func subscriptionEnabled() bool {
	subscribeOnce.Do(func() {
		subscribeEnable = os.Getenv("FENESTRA_CONTEXT_SUBSCRIBE") != "0"
	})
	return subscribeEnable
}

// Provider makes value available to children via Use, attached to the
// currently active Owner. Re-rendering a component that calls Provider with
// a new value updates the existing signal in place rather than replacing
// it, so descendants already subscribed via Use re-render exactly once.
func (c *Ctx[T]) Provider(value T, children ...any) *vdom.VNode {
	owner := reactive.CurrentOwner()
	if owner == nil {
		return vdom.Fragment(children...)
	}

	if existing, ok := owner.GetValue(c.key).(*reactive.Signal[T]); ok {
		existing.Set(value)
		return vdom.Fragment(children...)
	}

	sig := reactive.NewSignal(value)
	owner.SetValue(c.key, sig)
	owner.OnCleanup(func() {
		owner.SetValue(c.key, nil)
	})

	return vdom.Fragment(children...)
}

// Use retrieves the value from the nearest enclosing Provider, or the
// context's default if none is found. With subscription mode on (the
// default), calling Use during render subscribes the current effect to the
// provider's signal, so a later Provider update re-renders the consumer.
//
// Use is hook-like: call it unconditionally during render.
func (c *Ctx[T]) Use() T {
	reactive.TrackHook(reactive.HookContext)

	owner := reactive.CurrentOwner()
	if owner == nil {
		return c.defaultValue
	}

	sig, ok := owner.GetValue(c.key).(*reactive.Signal[T])
	if !ok {
		return c.defaultValue
	}

	if subscriptionEnabled() {
		return sig.Get()
	}
	return sig.Peek()
}
