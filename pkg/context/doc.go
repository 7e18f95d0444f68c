// Package context provides dependency injection through the component
// owner tree, keyed by the pointer identity of a *Ctx[T] rather than a
// string name.
//
// It generalizes pkg/reactive's Context[T]/Provider/Use pattern with a
// reactive subscription mode: by default, Use reads its value through a
// signal, so a component that calls Use during render automatically
// re-renders when the nearest enclosing Provider's value changes.
// Subscription mode can be disabled process-wide by setting
// FENESTRA_CONTEXT_SUBSCRIBE=0, reverting Use to a plain snapshot read
// with no dependency tracking.
package context
