package vdom

import (
	"fmt"
	"sync"
)

// HIDGenerator generates unique hydration IDs for interactive elements.
type HIDGenerator struct {
	counter uint32
	mu      sync.Mutex
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID (e.g., "h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("h%d", g.counter)
}

// Reset resets the counter to 0.
func (g *HIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// Current returns the current counter value without incrementing.
func (g *HIDGenerator) Current() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counter
}

// walkPreOrder visits node and every descendant, depth-first, calling visit
// on each. Component nodes are walked like any other node: their own Comp
// field carries no VNode tree, so nothing is skipped, but a component's
// rendered output isn't reachable from here — the reconciler assigns HIDs
// to that subtree only once it's been expanded into real VNodes.
func walkPreOrder(node *VNode, visit func(*VNode)) {
	if node == nil {
		return
	}
	visit(node)
	for _, child := range node.Children {
		walkPreOrder(child, visit)
	}
}

// AssignHIDs walks the tree and assigns HIDs to every element, so that
// patches can address any element, not only interactive ones. Text,
// fragment, component and raw nodes get no HID.
func AssignHIDs(node *VNode, gen *HIDGenerator) {
	walkPreOrder(node, func(n *VNode) {
		if n.Kind == KindElement {
			n.HID = gen.Next()
		}
	})
}

// AssignAllHIDs assigns HIDs to ALL element nodes, not just interactive ones.
// This is useful for debugging or when all elements need to be addressable.
func AssignAllHIDs(node *VNode, gen *HIDGenerator) {
	walkPreOrder(node, func(n *VNode) {
		if n.Kind == KindElement {
			n.HID = gen.Next()
		}
	})
}

// CollectHIDs returns a map of HID to VNode for all nodes with HIDs.
func CollectHIDs(node *VNode) map[string]*VNode {
	result := make(map[string]*VNode)
	walkPreOrder(node, func(n *VNode) {
		if n.HID != "" {
			result[n.HID] = n
		}
	})
	return result
}

// FindByHID finds a node by its HID in the tree.
func FindByHID(node *VNode, hid string) *VNode {
	var found *VNode
	walkPreOrder(node, func(n *VNode) {
		if found == nil && n.HID == hid {
			found = n
		}
	})
	return found
}

// CountInteractive returns the number of interactive elements in the tree.
func CountInteractive(node *VNode) int {
	count := 0
	walkPreOrder(node, func(n *VNode) {
		if n.Kind == KindElement && n.IsInteractive() {
			count++
		}
	})
	return count
}

// ClearHIDs removes all HIDs from the tree.
func ClearHIDs(node *VNode) {
	walkPreOrder(node, func(n *VNode) {
		n.HID = ""
	})
}

// CopyHIDs copies HIDs from the source tree to the destination tree.
// This is useful when diffing to preserve HIDs between renders.
// Returns true if all HIDs were successfully copied.
func CopyHIDs(src, dst *VNode) bool {
	if src == nil || dst == nil {
		return src == nil && dst == nil
	}

	dst.HID = src.HID

	if len(src.Children) != len(dst.Children) {
		return false
	}

	for i := range src.Children {
		if !CopyHIDs(src.Children[i], dst.Children[i]) {
			return false
		}
	}

	return true
}
