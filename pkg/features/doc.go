// Package features provides higher-level abstractions for building fenestra
// applications.
//
// This package contains the productive APIs that developers interact with
// daily, built on top of the primitives in pkg/reactive, pkg/vdom, and
// pkg/component.
//
// # Subsystems
//
//   - resource: Async data loading with loading/error/success states
//   - hooks: Client-side event interactions with server-held state
//
// Dependency injection through the component tree lives in the top-level
// pkg/context package, not here, since it is consumed by pkg/reconciler and
// pkg/capability as well as by features code.
//
// # Usage
//
// Each subsystem is in its own sub-package and can be imported independently:
//
//	import "github.com/fenestra-dev/fenestra/pkg/features/resource"
//	import "github.com/fenestra-dev/fenestra/pkg/features/hooks"
//
// See the individual package documentation for detailed usage examples.
package features
