package component

import (
	"github.com/fenestra-dev/fenestra/pkg/features/resource"
)

// UseResource attaches a resource.Resource[T] to inst: resource.New starts
// the fetch immediately (spec §5 "in-flight async loaders"). When inst is
// disposed the resource is invalidated and its OnSuccess/OnError callbacks
// are cleared, so a fetch still in flight can't call them against a
// component that's already unmounted; the fetch itself still runs to
// completion and updates the resource's own state.
//
// Call UseResource from a Component's constructor or the first line of
// Render, the way a computed field is set up, so the resource is created
// once per instance rather than once per render.
func UseResource[T any](inst *Instance, fetcher func() (T, error)) *resource.Resource[T] {
	r := resource.New(fetcher)
	inst.Owner.OnCleanup(func() {
		r.Invalidate()
		r.OnSuccess(nil).OnError(nil)
	})
	return r
}

// UseResourceWithKey is the keyed variant of UseResource: fetcher reruns
// whenever key's reactively-tracked return value changes, per
// resource.NewWithKey.
func UseResourceWithKey[K comparable, T any](inst *Instance, key func() K, fetcher func(K) (T, error)) *resource.Resource[T] {
	r := resource.NewWithKey(key, fetcher)
	inst.Owner.OnCleanup(func() {
		r.Invalidate()
		r.OnSuccess(nil).OnError(nil)
	})
	return r
}
