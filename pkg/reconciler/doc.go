// Package reconciler drives a component instance tree against a live DOM
// (or a test double standing in for one): it mounts a root instance, keeps
// it in sync as reactive writes mark descendants dirty, and tears the
// whole tree down on unmount.
//
// pkg/vdom.Diff produces the patch list for a single instance's own
// rendered subtree. Everything Diff can't see — deciding whether a
// Component node's previous instance is reused, cross-structurally
// transplanted, or discarded in favor of a freshly constructed one — is
// this package's job. A DOMApplier is the only thing that actually
// touches a node; two are provided here (StringApplier for tests and
// server-rendered hydration bookkeeping) with a syscall/js-backed one
// living behind a build tag for the browser runtime.
package reconciler
