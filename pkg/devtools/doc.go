// Package devtools implements the consumed-not-implemented inspector
// bridge described in spec §6: mount/update/unmount events carrying a
// per-instance id, plus typed and untyped event recording, gated by an
// environment variable (disabled by default).
//
// Bridge satisfies pkg/reconciler.Devtools without either package
// importing the other; the reconciler calls Mount/Update/Unmount on
// whatever WithDevtools was given, and this package's *Bridge happens to
// be the one non-test implementation.
package devtools
