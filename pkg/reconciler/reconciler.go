// Package reconciler drives a component instance tree against a live DOM
// (or a test double standing in for one): it mounts a root instance, keeps
// it in sync as reactive writes mark descendants dirty, and tears the
// whole tree down on unmount.
//
// pkg/vdom.Diff produces the patch list for a single instance's own
// rendered subtree, stopping at every Component boundary — it carries a
// matched Component node's Inst field forward but never renders anything
// itself (see vdom.diffComponent). Deciding whether that instance is
// reused, cross-structurally transplanted, or discarded in favor of a
// freshly constructed one is this package's job, along with mounting new
// instances Diff has no way to construct and disposing ones Diff only
// knows to drop a patch for. A DOMApplier is the only thing that actually
// touches a node; two are provided here (StringApplier for tests and
// server-rendered hydration bookkeeping) with a syscall/js-backed one
// living behind a build tag for the browser runtime.
package reconciler

import (
	"context"
	"reflect"

	"github.com/fenestra-dev/fenestra/pkg/component"
	"github.com/fenestra-dev/fenestra/pkg/reactive"
	"github.com/fenestra-dev/fenestra/pkg/scheduler"
	"github.com/fenestra-dev/fenestra/pkg/vdom"
)

// Devtools is the narrow slice of pkg/devtools.Bridge the reconciler calls
// into. Declared here (rather than importing pkg/devtools) so the two
// packages don't need to know about each other beyond this shape; any
// *devtools.Bridge implementation satisfies it.
type Devtools interface {
	Mount(instanceID uint64, typeName string)
	Update(instanceID uint64)
	Unmount(instanceID uint64)
}

// Reconciler owns the applier a tree is mounted against plus the optional
// scheduler and devtools bridge every instance it constructs is wired to.
type Reconciler struct {
	applier  DOMApplier
	sched    *scheduler.Scheduler
	devtools Devtools
	ctx      context.Context

	// domToInstance lets a Component node that lost its Inst back-reference
	// (spec §4.E "DOM back-reference preservation") recover the instance
	// still hosted by the live DOM node at that position, keyed by the
	// node's DOM handle (an applier-specific value: *DOMNode for
	// StringApplier, an opaque js.Value wrapper in the browser build). A
	// real weak map (Go 1.24's weak package) would let entries die with
	// their DOM node without an explicit Unmount call; we use a plain map
	// cleared on unmountNode instead, since DOM handles here are
	// applier-defined `any` values and not all appliers' handles are
	// pointer types weak.Pointer can wrap.
	domToInstance map[any]*component.Instance

	// reusePool is a stack of in-flight cross-structural reuse searches:
	// replaceNode pushes the constructor-keyed instances it found under
	// the subtree being replaced, mountComponent consults the top of the
	// stack before constructing a fresh instance, and replaceNode pops it
	// once the replacement subtree is fully mounted.
	reusePool []map[reflect.Type]*component.Instance
}

// Option configures a Reconciler at construction time.
type Option func(*Reconciler)

// WithScheduler attaches sched to every instance the reconciler mounts, so
// reactive writes during that instance's render schedule a real re-commit
// instead of requiring a caller to poll for dirtiness.
func WithScheduler(sched *scheduler.Scheduler) Option {
	return func(r *Reconciler) { r.sched = sched }
}

// WithDevtools attaches a devtools bridge that is notified of every
// mount/update/unmount this reconciler performs.
func WithDevtools(d Devtools) Option {
	return func(r *Reconciler) { r.devtools = d }
}

// New constructs a Reconciler driving applier.
func New(applier DOMApplier, opts ...Option) *Reconciler {
	r := &Reconciler{
		applier:       applier,
		domToInstance: make(map[any]*component.Instance),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount constructs a root component instance and performs its first
// commit under containerHID. The returned instance is the caller's handle
// for later operations (ResetErrorBoundary, explicit Commit, Dispose).
func (r *Reconciler) Mount(ctx context.Context, comp component.Component, containerHID string) (*component.Instance, error) {
	r.ctx = ctx
	node := &vdom.VNode{Kind: vdom.KindComponent, Comp: componentAdapter{comp}}
	r.mountComponent(containerHID, 0, node, nil)
	inst, _ := node.Inst.(*component.Instance)
	if inst == nil {
		return nil, errMountFailed
	}
	return inst, nil
}

// componentAdapter lets a pkg/component.Component satisfy vdom.Component
// (identical method set, distinct named interfaces so neither package has
// to import the other) when a VNode needs to carry it in its Comp field.
type componentAdapter struct{ component.Component }

func (a componentAdapter) Render() *vdom.VNode { return a.Component.Render() }

// errMountFailed is returned by Mount when constructing the root instance
// somehow leaves node.Inst unset; Render panics are already converted to
// fallback trees or returned errors well before this point, so this only
// guards a programming error in mountComponent itself.
var errMountFailed = mountError("reconciler: root instance failed to mount")

type mountError string

func (e mountError) Error() string { return string(e) }

// mountSlot records where an instance's own rendered subtree attaches:
// the parent DOM element's HID and the child index within it. Captured
// once at first mount and reused by every later commit, since a surviving
// instance never changes which DOM parent hosts it without going through
// a full replace (which constructs a fresh slot of its own).
type mountSlot struct {
	parentHID string
	index     int
}

// committer returns the Committer closure wired into inst at construction
// time: the first call (inst.LastTree() == nil) mounts tree fresh at slot,
// every later call reconciles tree against the previous committed one.
func (r *Reconciler) committer(node *vdom.VNode, slot *mountSlot) component.Committer {
	return func(inst *component.Instance, tree *vdom.VNode) error {
		prev := inst.LastTree()
		if prev == nil {
			r.mountTree(slot.parentHID, slot.index, tree, inst)
		} else {
			r.reconcileNode(inst, prev, tree, slot.parentHID)
		}
		node.DOM = tree.DOM
		node.HID = tree.HID
		r.domToInstance[tree.DOM] = inst
		if r.devtools != nil {
			if prev == nil {
				r.devtools.Mount(inst.InstanceID(), reflect.TypeOf(inst.Component).String())
			} else {
				r.devtools.Update(inst.InstanceID())
			}
		}
		return nil
	}
}

// mountComponent constructs (or, inside an active cross-structural reuse
// search, reclaims) the instance hosting node and performs its first
// commit.
func (r *Reconciler) mountComponent(parentHID string, index int, node *vdom.VNode, parent *component.Instance) {
	var inst *component.Instance
	reused := r.takeReusable(node)
	if reused != nil {
		inst = reused
		r.reattach(inst, parent)
	} else {
		comp, _ := node.Comp.(component.Component)
		inst = component.New(comp, parent, parent == nil)
	}
	inst.Props = node.Props
	node.Inst = inst
	slot := &mountSlot{parentHID: parentHID, index: index}
	inst.SetCommitter(r.committer(node, slot))

	if reused != nil {
		// A cross-structurally reused instance already ran beforeMount/
		// mounted once; re-running Mount would fire them a second time.
		// It only needs a fresh commit against its new slot.
		_ = inst.Commit(r.backgroundCtx())
		return
	}
	if r.sched != nil {
		inst.AttachScheduler(r.ctx, r.sched)
	}
	_ = inst.Mount()
}

// takeReusable pops the instance matching node.Comp's concrete type from
// the innermost active reuse search, if any, consuming the match so the
// same old instance is never handed out twice.
func (r *Reconciler) takeReusable(node *vdom.VNode) *component.Instance {
	if len(r.reusePool) == 0 || node.Comp == nil {
		return nil
	}
	pool := r.reusePool[len(r.reusePool)-1]
	t := reflect.TypeOf(node.Comp)
	inst, ok := pool[t]
	if !ok {
		return nil
	}
	delete(pool, t)
	return inst
}

// reattach rewires a cross-structurally reused instance onto parent and
// resets it to render from scratch at its new position: its previous
// rendered subtree lived under DOM that replaceNode has already torn
// down, and its own stale child instances (which belonged to that old
// subtree, not wherever it renders next) are disposed rather than carried
// forward, bounding the reuse search to a single constructor match per
// transplant rather than chasing it recursively.
func (r *Reconciler) reattach(inst *component.Instance, parent *component.Instance) {
	detachChild(inst.Parent, inst)
	for _, child := range inst.Children {
		r.disposeInstance(child)
	}
	inst.Children = nil
	inst.Parent = parent
	if parent != nil {
		parent.Children = append(parent.Children, inst)
	}
	var newOwner *reactive.Owner
	if parent != nil {
		newOwner = parent.Owner
	}
	inst.Owner.Reparent(newOwner)
	inst.SetLastTree(nil)
}

func detachChild(parent *component.Instance, child *component.Instance) {
	if parent == nil {
		return
	}
	for i, c := range parent.Children {
		if c == child {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return
		}
	}
}

// mountTree recursively materializes a freshly rendered subtree that has
// no previous counterpart: DOM nodes for Element/Text/Fragment/Raw kinds,
// fresh (or cross-structurally reused) instances for Component kinds.
func (r *Reconciler) mountTree(parentHID string, index int, node *vdom.VNode, parent *component.Instance) {
	if node == nil {
		return
	}
	switch node.Kind {
	case vdom.KindComponent:
		r.mountComponent(parentHID, index, node, parent)
	case vdom.KindFragment:
		for i, child := range node.Children {
			r.mountTree(parentHID, index+i, child, parent)
		}
		node.DOM = parentHID
	default:
		if !containsComponent(node) {
			r.applier.CreateNode(parentHID, index, node)
			return
		}
		// The applier materializes an entire subtree in one call and has
		// no notion of a component instance, so any Component descendant
		// must be mounted by us, individually. Create node's own shell
		// first (no children), then mount each child at its own slot.
		children := node.Children
		node.Children = nil
		r.applier.CreateNode(parentHID, index, node)
		node.Children = children
		if node.Kind == vdom.KindElement && !node.PreservesChildren() {
			for i, child := range node.Children {
				r.mountTree(node.HID, i, child, parent)
			}
		}
	}
}

func containsComponent(node *vdom.VNode) bool {
	if node == nil {
		return false
	}
	if node.Kind == vdom.KindComponent {
		return true
	}
	for _, c := range node.Children {
		if containsComponent(c) {
			return true
		}
	}
	return false
}

// reconcileNode updates a previously-mounted (prev) position to reflect
// next, which is assumed to sit at the same tree position (the identity
// rule's "position or key" half is the caller's job: reconcileChildren).
func (r *Reconciler) reconcileNode(parent *component.Instance, prev, next *vdom.VNode, parentHID string) {
	if prev == nil || next == nil {
		return
	}

	typeMismatch := prev.Kind != next.Kind ||
		(prev.Kind == vdom.KindElement && prev.Tag != next.Tag) ||
		(prev.Kind == vdom.KindComponent && reflect.TypeOf(prev.Comp) != reflect.TypeOf(next.Comp))
	if typeMismatch {
		r.replaceNode(parent, prev, next, parentHID)
		return
	}

	switch next.Kind {
	case vdom.KindText:
		next.HID, next.DOM = prev.HID, prev.DOM
		if prev.Text != next.Text {
			if target := targetHID(next.HID, parentHID); target != "" {
				r.applier.SetText(target, next.Text)
			}
		}
	case vdom.KindRaw:
		next.HID, next.DOM = prev.HID, prev.DOM
		if prev.Text != next.Text {
			if target := targetHID(next.HID, parentHID); target != "" {
				next.HID = ""
				r.applier.ReplaceNode(target, next)
			}
		}
	case vdom.KindElement:
		next.HID, next.DOM = prev.HID, prev.DOM
		r.reconcileProps(prev, next)
		if next.PreservesChildren() {
			// Escape hatch (spec §4.E): the element's own properties were
			// just reconciled above, but its DOM children belong to
			// whatever host-owned widget planted them there.
			next.Children = prev.Children
			return
		}
		r.reconcileChildren(parent, prev, next, next.HID)
	case vdom.KindFragment:
		next.HID, next.DOM = prev.HID, prev.DOM
		r.reconcileChildren(parent, prev, next, parentHID)
	case vdom.KindComponent:
		r.reconcileComponent(parent, prev, next, parentHID)
	}
}

// reconcileComponent carries a matched Component mount point's instance
// forward, restoring the back-reference from the DOM side table first if
// prev itself already lost it (spec §4.E "DOM back-reference
// preservation" — without this, an update to the root component would
// orphan and re-create every child component below it).
func (r *Reconciler) reconcileComponent(parent *component.Instance, prev, next *vdom.VNode, parentHID string) {
	next.HID, next.DOM = prev.HID, prev.DOM
	inst, _ := prev.Inst.(*component.Instance)
	if inst == nil {
		inst, _ = r.domToInstance[prev.DOM].(*component.Instance)
	}
	if inst == nil {
		// Nothing to recover; treat as a fresh mount in place rather than
		// silently dropping the subtree.
		next.Inst = nil
		r.mountComponent(parentHID, 0, next, parent)
		return
	}
	next.Inst = inst
	inst.Props = next.Props
	_ = inst.Commit(r.backgroundCtx())
}

func (r *Reconciler) backgroundCtx() context.Context {
	if r.ctx != nil {
		return r.ctx
	}
	return context.Background()
}

// reconcileProps diffs prev and next's own attributes (not children) by
// delegating to vdom.Diff over shallow, childless clones: reconciler
// never reimplements the class/style alias and boolean-attribute rules
// vdom.diffProps already encodes, it only needs Diff to stop at the
// child boundary so component-aware recursion stays in this package.
func (r *Reconciler) reconcileProps(prev, next *vdom.VNode) {
	prevShallow := *prev
	prevShallow.Children = nil
	nextShallow := *next
	nextShallow.Children = nil
	Apply(r.applier, vdom.Diff(&prevShallow, &nextShallow))
}

// reconcileChildren dispatches to the keyed or unkeyed sibling-matching
// strategy per spec §4.E's "child reconciliation" rule, mirroring
// vdom.diffChildren's keyed-detection but additionally mounting, updating,
// or unmounting component instances as it walks.
func (r *Reconciler) reconcileChildren(parent *component.Instance, prevParent, nextParent *vdom.VNode, parentHID string) {
	prev := prevParent.Children
	next := nextParent.Children
	if vdom.HasKeys(prev) || vdom.HasKeys(next) {
		r.reconcileKeyedChildren(parent, prev, next, parentHID)
	} else {
		r.reconcileUnkeyedChildren(parent, prev, next, parentHID)
	}
}

func (r *Reconciler) reconcileUnkeyedChildren(parent *component.Instance, prev, next []*vdom.VNode, parentHID string) {
	max := len(prev)
	if len(next) > max {
		max = len(next)
	}
	for i := 0; i < max; i++ {
		var p, n *vdom.VNode
		if i < len(prev) {
			p = prev[i]
		}
		if i < len(next) {
			n = next[i]
		}
		switch {
		case p == nil && n != nil:
			r.mountTree(parentHID, i, n, parent)
		case p != nil && n == nil:
			r.unmountNode(p, nil)
			r.applier.RemoveNode(targetHID(p.HID, parentHID))
		case p != nil && n != nil:
			r.reconcileNode(parent, p, n, parentHID)
		}
	}
}

func (r *Reconciler) reconcileKeyedChildren(parent *component.Instance, prev, next []*vdom.VNode, parentHID string) {
	prevKeyMap := make(map[string]int, len(prev))
	for i, c := range prev {
		if k := vdom.GetKey(c); k != "" {
			prevKeyMap[k] = i
		}
	}
	matched := make(map[int]bool, len(prev))

	for nextIdx, n := range next {
		key := vdom.GetKey(n)
		if key == "" {
			r.mountTree(parentHID, nextIdx, n, parent)
			continue
		}
		prevIdx, ok := prevKeyMap[key]
		if !ok {
			r.mountTree(parentHID, nextIdx, n, parent)
			continue
		}
		matched[prevIdx] = true
		p := prev[prevIdx]
		if prevIdx != nextIdx {
			r.applier.MoveNode(targetHID(p.HID, parentHID), parentHID, nextIdx)
		}
		r.reconcileNode(parent, p, n, parentHID)
	}

	for i, p := range prev {
		if !matched[i] {
			r.unmountNode(p, nil)
			r.applier.RemoveNode(targetHID(p.HID, parentHID))
		}
	}
}

// replaceNode handles a position whose variant or type no longer matches.
// Before tearing prev down, it searches prev's subtree for component
// instances whose constructor also appears somewhere under next (spec
// §4.E "cross-structural component reuse") so a leaf component's state
// survives an enclosing element/tag change, then mounts next fresh with
// that pool available to mountComponent.
func (r *Reconciler) replaceNode(parent *component.Instance, prev, next *vdom.VNode, parentHID string) {
	pool := make(map[reflect.Type]*component.Instance)
	collectInstances(prev, pool)
	r.reusePool = append(r.reusePool, pool)
	defer func() { r.reusePool = r.reusePool[:len(r.reusePool)-1] }()

	target := targetHID(prev.HID, parentHID)

	if next.Kind == vdom.KindComponent {
		r.applier.RemoveNode(target)
		r.mountTree(parentHID, 0, next, parent)
	} else {
		children := next.Children
		next.Children = nil
		next.HID = ""
		r.applier.ReplaceNode(target, next)
		next.Children = children
		if next.Kind == vdom.KindElement && !next.PreservesChildren() {
			for i, c := range children {
				r.mountTree(next.HID, i, c, parent)
			}
		} else if next.Kind == vdom.KindFragment {
			for i, c := range children {
				r.mountTree(parentHID, i, c, parent)
			}
		}
	}

	// Anything left in pool was not claimed by next's subtree: dispose it
	// for real.
	for _, inst := range pool {
		r.disposeInstance(inst)
	}
	r.clearDOMSideTable(prev)
}

// collectInstances walks node's subtree (through Children, and through a
// Component node's own rendered LastTree) recording the first instance
// found for each distinct constructor type. The search is intentionally
// shallow past a match — spec §9 flags the reference implementation's
// equivalent search as "quadratic in subtree size... whether this is
// intentional or bug-prone is unclear"; capping it at one candidate per
// type keeps the cost linear in the old subtree's size instead.
func collectInstances(node *vdom.VNode, pool map[reflect.Type]*component.Instance) {
	if node == nil {
		return
	}
	if node.Kind == vdom.KindComponent {
		if inst, ok := node.Inst.(*component.Instance); ok && node.Comp != nil {
			t := reflect.TypeOf(node.Comp)
			if _, exists := pool[t]; !exists {
				pool[t] = inst
			}
		}
		if inst, ok := node.Inst.(*component.Instance); ok {
			if tree := inst.LastTree(); tree != nil {
				collectInstances(tree, pool)
			}
		}
		return
	}
	for _, c := range node.Children {
		collectInstances(c, pool)
	}
}

// unmountNode recursively disposes every component instance in node's
// subtree, skipping any instance present in skip (already handed off by
// cross-structural reuse) along with its own descendants.
func (r *Reconciler) unmountNode(node *vdom.VNode, skip map[reflect.Type]*component.Instance) {
	if node == nil {
		return
	}
	if node.Kind == vdom.KindComponent {
		inst, ok := node.Inst.(*component.Instance)
		if !ok {
			return
		}
		if skip != nil {
			if kept, exists := skip[reflect.TypeOf(node.Comp)]; exists && kept == inst {
				return
			}
		}
		r.disposeInstance(inst)
		if tree := inst.LastTree(); tree != nil {
			r.unmountNode(tree, nil)
		}
		return
	}
	for _, c := range node.Children {
		r.unmountNode(c, skip)
	}
}

// clearDOMSideTable is the replaceNode companion to unmountNode for the
// subtree whose DOM was already swapped out by applier.ReplaceNode /
// RemoveNode: it only needs to walk for bookkeeping (domToInstance
// cleanup), disposal already happened in replaceNode's pool sweep.
func (r *Reconciler) clearDOMSideTable(node *vdom.VNode) {
	if node == nil {
		return
	}
	if node.Kind != vdom.KindComponent {
		for _, c := range node.Children {
			r.clearDOMSideTable(c)
		}
		return
	}
	delete(r.domToInstance, node.DOM)
}

// disposeInstance runs inst's unmount lifecycle, detaches it from its
// parent's child list, and clears every side table entry pointing at it.
func (r *Reconciler) disposeInstance(inst *component.Instance) {
	if inst == nil {
		return
	}
	if tree := inst.LastTree(); tree != nil {
		r.unmountNode(tree, nil)
	}
	for dom, owner := range r.domToInstance {
		if owner == inst {
			delete(r.domToInstance, dom)
		}
	}
	detachChild(inst.Parent, inst)
	inst.Dispose()
}

// targetHID returns hid if non-empty, otherwise parentHID — text and raw
// nodes have no HID of their own and patch against their parent element.
func targetHID(hid, parentHID string) string {
	if hid != "" {
		return hid
	}
	return parentHID
}

// Unmount tears down inst and everything below it: effects disposed, DOM
// detached, context/capability caches cleared (spec §8 property 7).
func (r *Reconciler) Unmount(inst *component.Instance) {
	if inst == nil {
		return
	}
	if tree := inst.LastTree(); tree != nil {
		r.applier.RemoveNode(targetHID(tree.HID, ""))
		r.unmountNode(tree, nil)
		delete(r.domToInstance, tree.DOM)
	}
	detachChild(inst.Parent, inst)
	inst.Dispose()
	if r.devtools != nil {
		r.devtools.Unmount(inst.InstanceID())
	}
}
