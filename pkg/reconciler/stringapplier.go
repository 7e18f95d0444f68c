package reconciler

import (
	"fmt"
	"strconv"

	"github.com/fenestra-dev/fenestra/pkg/vdom"
)

// DOMNode is an in-memory stand-in for a live DOM element or text node. It
// is StringApplier's concrete node type; pointer identity is what §8's
// "DOM reuse" property (and S1/S2's scenario assertions) actually checks,
// the same way a browser's Element identity would be checked via `===`.
type DOMNode struct {
	HID      string
	Tag      string
	Text     string
	Attrs    map[string]string
	Value    string
	Checked  bool
	Selected bool
	Focused  bool
	Parent   *DOMNode
	Children []*DOMNode
}

// StringApplier is a DOMApplier backed by an in-memory node tree rather
// than a real browser DOM. It exists for unit tests and for
// renderToString-adjacent tooling that wants to inspect the tree a real
// DOM would end up with; the production target is a syscall/js-backed
// applier living behind a js,wasm build tag.
type StringApplier struct {
	Root    *DOMNode
	byHID   map[string]*DOMNode
	nextHID uint64
}

// NewStringApplier returns a StringApplier whose root container carries
// containerHID — the HID a Mount call's parentHID argument should use.
func NewStringApplier(containerHID string) *StringApplier {
	root := &DOMNode{HID: containerHID, Tag: "#container"}
	return &StringApplier{
		Root:  root,
		byHID: map[string]*DOMNode{containerHID: root},
	}
}

// Find returns the node registered under hid, or nil.
func (a *StringApplier) Find(hid string) *DOMNode {
	return a.byHID[hid]
}

func (a *StringApplier) allocHID() string {
	a.nextHID++
	return "h" + strconv.FormatUint(a.nextHID, 10)
}

func (a *StringApplier) register(n *DOMNode) {
	a.byHID[n.HID] = n
}

func (a *StringApplier) insertAt(parent *DOMNode, index int, n *DOMNode) {
	n.Parent = parent
	if index < 0 || index >= len(parent.Children) {
		parent.Children = append(parent.Children, n)
		return
	}
	parent.Children = append(parent.Children, nil)
	copy(parent.Children[index+1:], parent.Children[index:])
	parent.Children[index] = n
}

func (a *StringApplier) removeFromParent(n *DOMNode) {
	if n.Parent == nil {
		return
	}
	siblings := n.Parent.Children
	for i, c := range siblings {
		if c == n {
			n.Parent.Children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.Parent = nil
}

// CreateNode implements DOMApplier: it recursively materializes node's own
// DOM representation, assigning node.HID/node.DOM (and every descendant's)
// as it goes. Component-kind nodes are never passed here directly by
// pkg/reconciler — it expands them into their rendered subtree first — so
// CreateNode only ever sees Element/Text/Fragment/Raw nodes.
func (a *StringApplier) CreateNode(parentHID string, index int, node *vdom.VNode) {
	parent := a.byHID[parentHID]
	if parent == nil {
		parent = a.Root
	}
	a.createRecursive(parent, index, node)
}

func (a *StringApplier) createRecursive(parent *DOMNode, index int, node *vdom.VNode) {
	if node == nil {
		return
	}
	switch node.Kind {
	case vdom.KindFragment:
		// No DOM node of its own; splice children in at index, in order.
		for i, child := range node.Children {
			a.createRecursive(parent, indexOrAppend(index, i), child)
		}
		node.DOM = parent
		return
	}

	if node.HID == "" {
		node.HID = a.allocHID()
	}
	dn := &DOMNode{HID: node.HID, Attrs: map[string]string{}}
	switch node.Kind {
	case vdom.KindText:
		dn.Tag = "#text"
		dn.Text = node.Text
	case vdom.KindRaw:
		dn.Tag = "#raw"
		dn.Text = node.Text
	case vdom.KindElement:
		dn.Tag = node.Tag
		for k, v := range node.Props {
			if isEventProp(k) {
				continue
			}
			dn.Attrs[k] = fmt.Sprintf("%v", v)
		}
	case vdom.KindComponent:
		// Defensive: treat as a transparent wrapper so a test double never
		// panics even if a caller skips expansion.
		dn.Tag = "#component"
	}
	a.insertAt(parent, index, dn)
	a.register(dn)
	node.DOM = dn

	if node.Kind == vdom.KindElement && !node.PreservesChildren() {
		for i, child := range node.Children {
			a.createRecursive(dn, i, child)
		}
	}
}

func indexOrAppend(base, offset int) int {
	if base < 0 {
		return -1
	}
	return base + offset
}

func isEventProp(key string) bool {
	return len(key) > 2 && (key[0] == 'o' || key[0] == 'O') && (key[1] == 'n' || key[1] == 'N')
}

// RemoveNode implements DOMApplier.
func (a *StringApplier) RemoveNode(hid string) {
	n := a.byHID[hid]
	if n == nil {
		return
	}
	a.removeFromParent(n)
	delete(a.byHID, hid)
}

// ReplaceNode implements DOMApplier.
func (a *StringApplier) ReplaceNode(hid string, node *vdom.VNode) {
	old := a.byHID[hid]
	if old == nil {
		return
	}
	parent := old.Parent
	index := -1
	for i, c := range parent.Children {
		if c == old {
			index = i
			break
		}
	}
	a.removeFromParent(old)
	delete(a.byHID, hid)
	node.HID = ""
	a.createRecursive(parent, index, node)
}

// MoveNode implements DOMApplier.
func (a *StringApplier) MoveNode(hid, parentHID string, index int) {
	n := a.byHID[hid]
	if n == nil {
		return
	}
	parent := a.byHID[parentHID]
	if parent == nil {
		parent = a.Root
	}
	a.removeFromParent(n)
	a.insertAt(parent, index, n)
}

// SetText implements DOMApplier.
func (a *StringApplier) SetText(hid, value string) {
	if n := a.byHID[hid]; n != nil {
		n.Text = value
	}
}

// SetAttr implements DOMApplier.
func (a *StringApplier) SetAttr(hid, key, value string) {
	if n := a.byHID[hid]; n != nil {
		if n.Attrs == nil {
			n.Attrs = map[string]string{}
		}
		n.Attrs[key] = value
	}
}

// RemoveAttr implements DOMApplier.
func (a *StringApplier) RemoveAttr(hid, key string) {
	if n := a.byHID[hid]; n != nil {
		delete(n.Attrs, key)
	}
}

// SetValue implements DOMApplier.
func (a *StringApplier) SetValue(hid, value string) {
	if n := a.byHID[hid]; n != nil {
		n.Value = value
	}
}

// SetChecked implements DOMApplier.
func (a *StringApplier) SetChecked(hid string, checked bool) {
	if n := a.byHID[hid]; n != nil {
		n.Checked = checked
	}
}

// SetSelected implements DOMApplier.
func (a *StringApplier) SetSelected(hid string, selected bool) {
	if n := a.byHID[hid]; n != nil {
		n.Selected = selected
	}
}

// Focus implements DOMApplier.
func (a *StringApplier) Focus(hid string) {
	if n := a.byHID[hid]; n != nil {
		n.Focused = true
	}
}

var _ DOMApplier = (*StringApplier)(nil)
