// Package el provides the UI DSL for fenestra.
//
// It re-exports HTML element constructors, attribute helpers, event helpers,
// and common VDOM utilities from github.com/fenestra-dev/fenestra/pkg/vdom.
//
// Typical usage:
//
//	import (
//	    "github.com/fenestra-dev/fenestra/pkg/reactive"
//	    . "github.com/fenestra-dev/fenestra/el"
//	)
//
// This keeps the DSL in a dedicated package while the reactive primitives
// live in pkg/reactive and component wiring lives in pkg/component.
package el
