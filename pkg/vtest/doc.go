// Package vtest provides testing helpers for fenestra components: render
// assertions against the string output of a VNode tree, and a harness for
// driving a component through pkg/reconciler without a real DOM.
//
// # Render Assertions
//
//	func TestWelcome(t *testing.T) {
//	    node := Welcome("Ada")
//	    vtest.ExpectContains(t, node, "Welcome Ada")
//	}
//
// # Mount Harness
//
// Mount drives a component through the same reconciler a production
// runtime would use, backed by an in-memory StringApplier instead of a
// live DOM, so tests can assert on committed DOM structure across
// re-renders:
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.Mount(t, NewCounter())
//	    vtest.ExpectElement(t, h.Tree(), "button")
//	    h.Commit()
//	}
package vtest
