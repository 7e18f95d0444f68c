package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
	KindRaw                    // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node. Two fields are mutable back-references
// populated by the reconciler as it mounts and updates a tree rather than
// by whatever built the node: DOM (the live DOM handle this node owns, nil
// until mounted) and Inst (the component instance hosting this node, only
// ever set on a KindComponent node). Key is set by the element builder from
// a key attribute. Everything else is the frozen description the render
// produced.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Props    Props     // Attributes and event handlers
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText and KindRaw
	Comp     Component // Stateless constructor reference, used by renderToString
	HID      string    // Hydration ID (assigned during render)

	// DOM is the live DOM handle (a DOMApplier-specific value, or a string
	// builder offset for SSR) this node owns once mounted. nil for a node
	// that has never been committed, or whose owner unmounted it.
	DOM any
	// Inst is the component instance this node hosts. Only meaningful when
	// Kind == KindComponent; populated by the reconciler at mount, carried
	// forward across matched renders, and cleared on unmount. Typed any to
	// avoid vdom importing pkg/component.
	Inst any
}

// Props holds attributes and event handlers.
type Props map[string]any

// IsInteractive returns true if this node has event handlers and needs a HID.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// PreservesChildren reports whether v carries the preserve-children marker
// attribute. A node marked this way opts its child list out of
// reconciliation entirely — used for host-owned DOM subtrees (e.g.
// third-party widgets) that the reconciler must never touch below the
// node's own attributes.
func (v *VNode) PreservesChildren() bool {
	if v == nil || v.Props == nil {
		return false
	}
	pc, ok := v.Props["preserve-children"]
	if !ok {
		return false
	}
	truthy, _ := pc.(bool)
	return truthy
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // Function to call
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
