// Package vdom provides the virtual DOM representation shared by every
// fenestra component render.
//
// The virtual DOM (VDOM) is an in-memory tree describing the UI that can be
// efficiently diffed to produce a minimal set of DOM mutations. Diff never
// touches a real DOM node itself; it produces a Patch list that
// pkg/reconciler applies to whatever DOMApplier is wired in (a live
// syscall/js document, or a string builder for renderToString's SSR path).
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes and event
// handlers. Attr and EventHandler are used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// # Diffing
//
// The Diff function compares two VNode trees and returns a slice of Patch
// operations. Keyed reconciliation is used when children have Key attributes.
//
// # Hydration
//
// AssignHIDs walks the tree and assigns hydration IDs to every element,
// interactive or not. These IDs let the reconciler re-attach a
// server-rendered DOM tree to a fresh VNode tree without discarding it.
package vdom
