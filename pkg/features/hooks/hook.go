// Package hooks attaches client-held interaction state to a server-rendered
// element without a full round-trip through the reconciler: a v-hook
// attribute names a client-side behavior and carries its configuration, and
// events the client behavior raises come back tagged with the hook's name
// so a component can filter to the ones it cares about.
package hooks

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fenestra-dev/fenestra/internal/diag"
	"github.com/fenestra-dev/fenestra/pkg/vdom"
)

// attrKey is the vdom.Attr key a Hook call's payload is stored under. Kept
// unexported so Hook is the only constructor of a well-formed value.
const attrKey = "v-hook"

// Hook attaches a named client-side behavior to an element, with config
// serialized as the JSON payload of the v-hook attribute value
// ("name:{...}"). A marshal failure is never swallowed: it is reported as
// an E050 diagnostic and the hook degrades to a bare name with an empty
// object, so a malformed config can't silently disable the behavior
// entirely.
func Hook(name string, config any) vdom.Attr {
	payload, err := json.Marshal(config)
	if err != nil {
		diag.Print(diag.New("E050").Wrap(err).WithDetail(fmt.Sprintf("hook %q: %s", name, err)))
		payload = []byte("{}")
	}
	return vdom.Attr{Key: attrKey, Value: name + ":" + string(payload)}
}

// OnEvent registers handler for events the named client hook raises. Unlike
// Hook, which is keyed by the v-hook attribute, OnEvent attaches an
// ordinary DOM event handler under the hook's event name, so it composes
// with vdom's existing property-reconciliation and listener side-table
// machinery rather than needing hook-specific dispatch in the reconciler.
func OnEvent(name string, handler func(HookEvent)) vdom.EventHandler {
	return vdom.EventHandler{Event: name, Handler: handler}
}

// HookEvent is the payload delivered to an OnEvent handler when a client
// hook raises an event. Data holds the event's JSON-decoded fields; revert,
// if the dispatcher that constructed this HookEvent supplied one, lets the
// handler undo an optimistic client-side change.
type HookEvent struct {
	Name string
	Data map[string]any

	revert func()
}

// NewHookEvent constructs a HookEvent carrying a revert callback, used by a
// hook's client transport when it dispatches an event that represents an
// optimistic, revertible client-side change (e.g. a drag that hasn't been
// confirmed server-side yet). Callers constructing a HookEvent directly
// (tests, or a transport with nothing to revert) get a safe no-op Revert.
func NewHookEvent(name string, data map[string]any, revert func()) HookEvent {
	return HookEvent{Name: name, Data: data, revert: revert}
}

// Revert undoes the client's optimistic change, if the dispatcher supplied
// a callback for it. Safe to call on a zero-value HookEvent.
func (e HookEvent) Revert() {
	if e.revert != nil {
		e.revert()
	}
}

// Raw returns the field at key with no type coercion.
func (e HookEvent) Raw(key string) any {
	return e.Data[key]
}

// String coerces the field at key to a string, returning "" if absent.
func (e HookEvent) String(key string) string {
	v, ok := e.Data[key]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// Int coerces the field at key to an int, returning 0 if absent or
// unparsable.
func (e HookEvent) Int(key string) int {
	switch v := e.Data[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		i, _ := strconv.Atoi(v)
		return i
	default:
		return 0
	}
}

// Float coerces the field at key to a float64, returning 0 if absent or
// unparsable.
func (e HookEvent) Float(key string) float64 {
	switch v := e.Data[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}

// Bool coerces the field at key to a bool, returning false if absent or
// unparsable.
func (e HookEvent) Bool(key string) bool {
	v, ok := e.Data[key]
	if !ok {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	b, _ := strconv.ParseBool(fmt.Sprintf("%v", v))
	return b
}

// Strings coerces the field at key to a string slice, handling both a
// JSON-decoded []any and an already-typed []string.
func (e HookEvent) Strings(key string) []string {
	switch v := e.Data[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fmt.Sprintf("%v", item)
		}
		return out
	default:
		return nil
	}
}
