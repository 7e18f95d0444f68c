package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// flag creates a boolean presence attribute constructor: key is only ever
// set to true, mirroring how the renderer treats these as HTML boolean
// attributes (present => emitted bare, absent => omitted entirely).
func flag(key string) func() Attr {
	return func() Attr { return attr(key, true) }
}

// str creates a string-valued attribute constructor for key.
func str(key string) func(string) Attr {
	return func(v string) Attr { return attr(key, v) }
}

// num creates an int-valued attribute constructor for key.
func num(key string) func(int) Attr {
	return func(v int) Attr { return attr(key, v) }
}

// boolVal creates a bool-valued attribute constructor for key, for
// attributes whose value is a live true/false rather than mere presence
// (aria-* state attributes, contenteditable, spellcheck).
func boolVal(key string) func(bool) Attr {
	return func(v bool) Attr { return attr(key, v) }
}

// float creates a float64-valued attribute constructor for key.
func float(key string) func(float64) Attr {
	return func(v float64) Attr { return attr(key, v) }
}

// Identity attributes

var (
	ID        = str("id")
	StyleAttr = str("style") // named to avoid conflict with the Style element
	TitleAttr = str("title") // named to avoid conflict with the Title element
	FormAttr  = str("form")  // associates with a form by id
)

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// Data creates a data-* attribute. This is the primary way to add data attributes.
// Example: Data("id", "123") -> data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// DataAttr is an alias for Data(). Provided for backwards compatibility.
func DataAttr(key, value string) Attr { return Data(key, value) }

// Accessibility attributes

var (
	Role            = str("role")
	AriaLabel       = str("aria-label")
	AriaHidden      = boolVal("aria-hidden")
	AriaExpanded    = boolVal("aria-expanded")
	AriaDescribedBy = str("aria-describedby")
	AriaLabelledBy  = str("aria-labelledby")
	AriaLive        = str("aria-live")
	AriaControls    = str("aria-controls")
	AriaCurrent     = str("aria-current")
	AriaDisabled    = boolVal("aria-disabled")
	AriaPressed     = str("aria-pressed")
	AriaSelected    = boolVal("aria-selected")
	AriaHasPopup    = str("aria-haspopup")
	AriaModal       = boolVal("aria-modal")
	AriaAtomic      = boolVal("aria-atomic")
	AriaBusy        = boolVal("aria-busy")
	AriaValueNow    = float("aria-valuenow")
	AriaValueMin    = float("aria-valuemin")
	AriaValueMax    = float("aria-valuemax")
)

// Keyboard attributes

var (
	TabIndex  = num("tabindex")
	AccessKey = str("accesskey")
)

// Visibility attributes

// Hidden sets the hidden attribute.
var Hidden = flag("hidden")

// Behavior attributes

var (
	ContentEditable = boolVal("contenteditable")
	Spellcheck      = boolVal("spellcheck")
)

// Draggable sets the draggable attribute. This is the bare markup-level
// HTML attribute; a component wanting pointer-driven drag behavior attaches
// that separately via pkg/features/hooks.Hook.
var Draggable = flag("draggable")

// Language attributes

var (
	Lang = str("lang")
	Dir  = str("dir")
)

// Link attributes

var (
	Href     = str("href")
	Target   = str("target")
	Rel      = str("rel")
	Hreflang = str("hreflang")
)

// Download sets the download attribute. With no filename it is a bare
// boolean attribute; with one it carries the suggested filename as its
// value.
func Download(filename ...string) Attr {
	if len(filename) > 0 {
		return attr("download", filename[0])
	}
	return attr("download", true)
}

// Form input attributes

var (
	Name        = str("name")
	Value       = str("value")
	Type        = str("type")
	Placeholder = str("placeholder")
)

// Form state attributes (boolean presence)

var (
	Disabled  = flag("disabled")
	Readonly  = flag("readonly")
	Required  = flag("required")
	Checked   = flag("checked")
	Selected  = flag("selected")
	Multiple  = flag("multiple")
	Autofocus = flag("autofocus")
)

// Autocomplete sets the autocomplete attribute.
var Autocomplete = str("autocomplete")

// Form validation attributes

var (
	Pattern   = str("pattern")
	MinLength = num("minlength")
	MaxLength = num("maxlength")
	Min       = str("min")
	Max       = str("max")
	Step      = str("step")
)

// File input attributes

var (
	Accept  = str("accept")
	Capture = str("capture")
)

// Textarea attributes

var (
	Rows = num("rows")
	Cols = num("cols")
	Wrap = str("wrap")
)

// Form element attributes

var (
	Action  = str("action")
	Method  = str("method")
	Enctype = str("enctype")
	For     = str("for") // labels
)

// Novalidate sets the novalidate attribute.
var Novalidate = flag("novalidate")

// Media attributes

var (
	Src      = str("src")
	Alt      = str("alt")
	Loading  = str("loading")
	Decoding = str("decoding")
	Srcset   = str("srcset")
)

var (
	Width  = num("width")
	Height = num("height")
)

// SizesAttr sets the sizes attribute.
var SizesAttr = str("sizes")

// Video/Audio attributes (boolean presence)

var (
	Controls    = flag("controls")
	Autoplay    = flag("autoplay")
	Loop        = flag("loop")
	MutedAttr   = flag("muted")
	Playsinline = flag("playsinline")
)

var (
	Preload = str("preload")
	Poster  = str("poster")
)

// Iframe attributes

var (
	Sandbox = str("sandbox")
	Allow   = str("allow")
)

// Allowfullscreen sets the allowfullscreen attribute.
var Allowfullscreen = flag("allowfullscreen")

// Table attributes

var (
	Colspan     = num("colspan")
	Rowspan     = num("rowspan")
	Scope       = str("scope")
	HeadersAttr = str("headers")
)

// Meta/Link attributes

var (
	Charset   = str("charset")
	Content   = str("content")
	HttpEquiv = str("http-equiv")
)

// Conditional attributes

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return attr("class", class)
	}
	return Attr{} // Empty attr, will be ignored
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Classes merges multiple class values.
// Accepts string, []string, and map[string]bool.
func Classes(classes ...any) Attr {
	var result []string
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			if v != "" {
				result = append(result, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					result = append(result, s)
				}
			}
		case map[string]bool:
			for class, include := range v {
				if include && class != "" {
					result = append(result, class)
				}
			}
		}
	}
	return attr("class", strings.Join(result, " "))
}

// Open sets the open attribute (for details, dialog).
var Open = flag("open")

// Defer_ sets the defer attribute for script elements.
var Defer_ = flag("defer")

// Async sets the async attribute for script elements.
var Async = flag("async")

var (
	Crossorigin  = str("crossorigin")
	Integrity    = str("integrity")
	List         = str("list")
	Inputmode    = str("inputmode")
	Enterkeyhint = str("enterkeyhint")
)
