package vtest

import (
	"context"
	"strings"
	"testing"

	"github.com/fenestra-dev/fenestra/pkg/component"
	"github.com/fenestra-dev/fenestra/pkg/reconciler"
	"github.com/fenestra-dev/fenestra/pkg/render"
	"github.com/fenestra-dev/fenestra/pkg/vdom"
)

// Harness drives a component through a real Reconciler backed by an
// in-memory StringApplier, for tests that want to assert on committed DOM
// structure (not just a single render's output).
type Harness struct {
	t        *testing.T
	rec      *reconciler.Reconciler
	applier  *reconciler.StringApplier
	instance *component.Instance
}

// Mount constructs comp's instance and performs its first commit under a
// synthetic root container.
//
// Example:
//
//	h := vtest.Mount(t, NewCounter())
//	vtest.ExpectElement(t, h.Tree(), "button")
func Mount(t *testing.T, comp component.Component) *Harness {
	t.Helper()
	applier := reconciler.NewStringApplier("root")
	rec := reconciler.New(applier)
	inst, err := rec.Mount(context.Background(), comp, "root")
	if err != nil {
		t.Fatalf("vtest.Mount: %v", err)
	}
	return &Harness{t: t, rec: rec, applier: applier, instance: inst}
}

// Instance returns the mounted component.Instance, for tests that need to
// reach into lifecycle hooks or error-boundary state directly.
func (h *Harness) Instance() *component.Instance { return h.instance }

// Tree returns the instance's last committed virtual tree.
func (h *Harness) Tree() *vdom.VNode { return h.instance.LastTree() }

// Applier returns the underlying StringApplier, for assertions against the
// committed DOM tree (node identity, attributes, text).
func (h *Harness) Applier() *reconciler.StringApplier { return h.applier }

// Commit re-renders and reconciles the instance against its previous tree,
// the way a scheduled write would after a signal changes.
func (h *Harness) Commit() {
	h.t.Helper()
	if err := h.instance.Commit(context.Background()); err != nil {
		h.t.Fatalf("vtest.Harness.Commit: %v", err)
	}
}

// Unmount tears the instance down.
func (h *Harness) Unmount() {
	h.rec.Unmount(h.instance)
}

// RenderToString renders a VNode and returns the HTML string.
// This is useful for asserting on rendered output.
//
// Example:
//
//	html := vtest.RenderToString(MyComponent())
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, comp.Render(), "Welcome Admin")
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
//
// Example:
//
//	vtest.ExpectNotContains(t, comp.Render(), "Error")
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
//
// Example:
//
//	vtest.ExpectElement(t, comp.Render(), "button")
func ExpectElement(t *testing.T, node *vdom.VNode, tag string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, comp.Render(), "class", "btn-primary")
func ExpectAttribute(t *testing.T, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
