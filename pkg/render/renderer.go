package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fenestra-dev/fenestra/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// IncludeCSRF is not read by the renderer: the CSRF token is written
	// whenever PageData.CSRFToken is non-empty.
	IncludeCSRF bool

	// AssetPath is the base path for assets. It is not read by the renderer.
	AssetPath string

	// InlineCriticalCSS is not read by the renderer; no critical CSS is
	// inlined.
	InlineCriticalCSS bool
}

// Renderer handles server-side rendering of VNode trees to HTML.
type Renderer struct {
	config     RendererConfig
	hidCounter uint32
	handlers   map[string]any
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{
		config:   config,
		handlers: make(map[string]any),
	}
}

// RenderToString renders a VNode tree to a complete HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// GetHandlers returns the handler registry collected during rendering.
// The map keys are in the format "hid_eventname" (e.g., "h1_onclick").
func (r *Renderer) GetHandlers() map[string]any {
	return r.handlers
}

// Reset resets the renderer state for reuse.
// This clears the HID counter and handler registry.
func (r *Renderer) Reset() {
	r.hidCounter = 0
	r.handlers = make(map[string]any)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		return r.renderText(w, node)
	case vdom.KindFragment:
		return r.renderFragment(w, node, depth)
	case vdom.KindComponent:
		return r.renderComponent(w, node, depth)
	case vdom.KindRaw:
		return r.renderRaw(w, node)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	// Indentation (if pretty printing)
	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	// Opening tag
	if _, err := w.Write([]byte{'<'}); err != nil {
		return err
	}
	if _, err := w.Write([]byte(tag)); err != nil {
		return err
	}

	// Render attributes
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	// Check if this element needs a hydration ID
	if r.needsHID(node) {
		hid := node.HID
		if hid == "" {
			hid = r.nextHID()
			node.HID = hid
		}
		if _, err := fmt.Fprintf(w, ` data-hid="%s"`, hid); err != nil {
			return err
		}
		// Store handler references
		r.registerHandlers(hid, node)
	}

	// Self-closing check for void elements
	if isVoidElement(tag) {
		if _, err := w.Write([]byte{'>'}); err != nil {
			return err
		}
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	// Handle dangerouslySetInnerHTML
	if rawHTML, ok := node.Props["dangerouslySetInnerHTML"].(string); ok {
		if _, err := w.Write([]byte(rawHTML)); err != nil {
			return err
		}
	} else {
		// Newline after opening tag if has children and pretty printing
		hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
		if r.config.Pretty && hasBlockChildren {
			w.Write([]byte{'\n'})
		}

		// Render children
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth+1); err != nil {
				return err
			}
		}

		// Closing tag indentation
		if r.config.Pretty && hasBlockChildren {
			r.writeIndent(w, depth)
		}
	}

	// Closing tag
	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}

	return nil
}

// renderText renders a text node with HTML escaping.
func (r *Renderer) renderText(w io.Writer, node *vdom.VNode) error {
	escaped := escapeHTML(node.Text)
	_, err := w.Write([]byte(escaped))
	return err
}

// renderFragment renders a fragment's children without a wrapper element.
func (r *Renderer) renderFragment(w io.Writer, node *vdom.VNode, depth int) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderComponent renders a component by rendering its output VNode.
func (r *Renderer) renderComponent(w io.Writer, node *vdom.VNode, depth int) error {
	// If the component has already been rendered to a VNode, render that
	if node.Comp != nil {
		output := node.Comp.Render()
		return r.renderNode(w, output, depth)
	}
	return nil
}

// renderRaw renders raw HTML without escaping.
func (r *Renderer) renderRaw(w io.Writer, node *vdom.VNode) error {
	_, err := w.Write([]byte(node.Text))
	return err
}

// renderAttributes renders all attributes for an element: regular
// attributes, legacy v-hook/_hook/_optimistic expansions, and (for real
// handler values only, never injected strings) the data-ve event marker
// plus per-event modifier attributes.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if node.Props == nil {
		return nil
	}

	// Sort keys for deterministic output
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	events := make([]string, 0, 2)
	eventHandlers := make(map[string]any, 2)

	for _, key := range keys {
		value := node.Props[key]
		if value == nil {
			continue
		}

		switch key {
		case "dangerouslySetInnerHTML", "key":
			continue
		case "v-hook":
			if raw, ok := value.(string); ok {
				if err := renderVHook(w, raw); err != nil {
					return err
				}
			}
			continue
		case "_hook":
			if cfg, ok := value.(HookConfig); ok {
				if err := renderHookConfig(w, cfg); err != nil {
					return err
				}
			}
			continue
		case "_optimistic":
			if cfg, ok := value.(OptimisticConfig); ok {
				if err := renderOptimisticConfig(w, cfg); err != nil {
					return err
				}
			}
			continue
		}

		if strings.HasPrefix(key, "_") {
			continue
		}

		if strings.HasPrefix(key, "on") && len(key) > 2 {
			eventName := strings.ToLower(key[2:])
			if isEventHandler(value) {
				events = append(events, eventName)
				eventHandlers[eventName] = value
				continue
			}
			// A non-handler value under an on* key is rejected outright: it
			// is never rendered as an attribute and never marked as an
			// interceptable event.
			continue
		}

		renderKey := key
		switch renderKey {
		case "className":
			renderKey = "class"
		case "htmlFor":
			renderKey = "for"
		}

		// Boolean attributes
		if isBooleanAttr(renderKey) {
			if boolValue, ok := value.(bool); ok {
				if boolValue {
					if _, err := fmt.Fprintf(w, " %s", renderKey); err != nil {
						return err
					}
				}
				continue
			}
		}

		// Regular attributes
		strValue := attrToString(value)
		if strValue != "" {
			escaped := escapeAttr(strValue)
			if _, err := fmt.Fprintf(w, ` %s="%s"`, renderKey, escaped); err != nil {
				return err
			}
		}
	}

	if len(events) > 0 {
		sort.Strings(events)
		if _, err := fmt.Fprintf(w, ` data-ve="%s"`, strings.Join(events, ",")); err != nil {
			return err
		}
		for _, eventName := range events {
			for _, attr := range getModifierAttrs(eventName, eventHandlers[eventName]) {
				if _, err := w.Write([]byte(attr)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// renderVHook expands the legacy "Name:{json}" v-hook attribute shorthand
// into data-hook/data-hook-config, matching the expansion EffectiveAttrs
// performs for the live DOM applier.
func renderVHook(w io.Writer, raw string) error {
	idx := strings.Index(raw, ":")
	if idx == -1 {
		return fmt.Errorf("invalid v-hook format: %q", raw)
	}
	name, cfg := raw[:idx], raw[idx+1:]
	if _, err := fmt.Fprintf(w, ` data-hook="%s"`, escapeAttr(name)); err != nil {
		return err
	}
	if cfg != "" && cfg != "{}" && cfg != "null" {
		if _, err := fmt.Fprintf(w, ` data-hook-config='%s'`, cfg); err != nil {
			return err
		}
	}
	return nil
}

// getModifierAttrs renders the per-event data-pd-*/data-sp-*/... modifier
// attributes for handler, when handler carries the ModifiedHandler shape
// (PreventDefault, StopPropagation, Self, Once, Passive, Capture, Debounce,
// Throttle). Non-modified handlers yield no extra attributes.
func getModifierAttrs(eventName string, handler any) []string {
	mods, ok := vdom.ExtractModifiers(handler)
	if !ok {
		return nil
	}

	var attrs []string
	if mods.PreventDefault {
		attrs = append(attrs, fmt.Sprintf(` data-pd-%s="true"`, eventName))
	}
	if mods.StopPropagation {
		attrs = append(attrs, fmt.Sprintf(` data-sp-%s="true"`, eventName))
	}
	if mods.Self {
		attrs = append(attrs, fmt.Sprintf(` data-self-%s="true"`, eventName))
	}
	if mods.Once {
		attrs = append(attrs, fmt.Sprintf(` data-once-%s="true"`, eventName))
	}
	if mods.Passive {
		attrs = append(attrs, fmt.Sprintf(` data-passive-%s="true"`, eventName))
	}
	if mods.Capture {
		attrs = append(attrs, fmt.Sprintf(` data-capture-%s="true"`, eventName))
	}
	if mods.DebounceMs > 0 {
		attrs = append(attrs, fmt.Sprintf(` data-debounce-%s="%d"`, eventName, mods.DebounceMs))
	}
	if mods.ThrottleMs > 0 {
		attrs = append(attrs, fmt.Sprintf(` data-throttle-%s="%d"`, eventName, mods.ThrottleMs))
	}
	return attrs
}

// needsHID returns true if the element needs a hydration ID.
// This must match the logic in vdom.AssignHIDs to ensure consistency
// between SSR-rendered HTML and WebSocket session handlers.
func (r *Renderer) needsHID(node *vdom.VNode) bool {
	if node.Kind != vdom.KindElement {
		return false
	}

	// Assign HIDs to all elements to match vdom.AssignHIDs behavior.
	// This ensures consistency between SSR and WebSocket logic.
	return true
}

// nextHID generates the next sequential hydration ID.
func (r *Renderer) nextHID() string {
	r.hidCounter++
	return fmt.Sprintf("h%d", r.hidCounter)
}

// registerHandlers stores handler references for the given HID.
func (r *Renderer) registerHandlers(hid string, node *vdom.VNode) {
	for key, value := range node.Props {
		if strings.HasPrefix(key, "on") && isEventHandler(value) {
			r.handlers[hid+"_"+key] = value
		}
	}
}

// isEventHandler returns true if the value looks like an event handler.
func isEventHandler(value any) bool {
	if value == nil {
		return false
	}
	// Check for common handler types
	switch value.(type) {
	case func():
		return true
	case func(any):
		return true
	case vdom.EventHandler:
		return true
	case vdom.ModifiedHandler:
		return true
	default:
		// Use reflection to check for function types
		return strings.HasPrefix(fmt.Sprintf("%T", value), "func")
	}
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
