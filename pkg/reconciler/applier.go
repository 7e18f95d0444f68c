package reconciler

import "github.com/fenestra-dev/fenestra/pkg/vdom"

// DOMApplier is the narrow surface the reconciler needs from whatever DOM
// it is driving. HID-addressed, matching pkg/vdom.Patch exactly, so the
// same patch list that would otherwise cross a websocket to a browser
// client can instead be applied in-process.
type DOMApplier interface {
	// CreateNode materializes node (and its subtree) under parentHID at
	// index, assigning node.DOM and every descendant's DOM field. Used for
	// both the initial mount and PatchInsertNode.
	CreateNode(parentHID string, index int, node *vdom.VNode)
	RemoveNode(hid string)
	ReplaceNode(hid string, node *vdom.VNode)
	MoveNode(hid, parentHID string, index int)
	SetText(hid, value string)
	SetAttr(hid, key, value string)
	RemoveAttr(hid, key string)
	SetValue(hid, value string)
	SetChecked(hid string, checked bool)
	SetSelected(hid string, selected bool)
	Focus(hid string)
}

// Apply replays patches against applier in order. Patch order from
// Patches are applied in the order vdom.Diff emits them (for keyed
// children: inserts and moves first, removals last); Apply does no
// reordering of its own.
func Apply(applier DOMApplier, patches []vdom.Patch) {
	for _, p := range patches {
		applyOne(applier, p)
	}
}

func applyOne(applier DOMApplier, p vdom.Patch) {
	switch p.Op {
	case vdom.PatchSetText:
		applier.SetText(p.HID, p.Value)
	case vdom.PatchSetAttr:
		applier.SetAttr(p.HID, p.Key, p.Value)
	case vdom.PatchRemoveAttr:
		applier.RemoveAttr(p.HID, p.Key)
	case vdom.PatchInsertNode:
		applier.CreateNode(p.ParentID, p.Index, p.Node)
	case vdom.PatchRemoveNode:
		applier.RemoveNode(p.HID)
	case vdom.PatchMoveNode:
		applier.MoveNode(p.HID, p.ParentID, p.Index)
	case vdom.PatchReplaceNode:
		applier.ReplaceNode(p.HID, p.Node)
	case vdom.PatchSetValue:
		applier.SetValue(p.HID, p.Value)
	case vdom.PatchSetChecked:
		applier.SetChecked(p.HID, p.Value == "true")
	case vdom.PatchSetSelected:
		applier.SetSelected(p.HID, p.Value == "true")
	case vdom.PatchFocus:
		applier.Focus(p.HID)
	}
}
