package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// setProp records a single key/value pair on node, applying the domain
// rules every Attr assignment shares regardless of whether it arrived as a
// lone Attr or as part of an []Attr: a "key" attribute drives reconciler
// identity rather than becoming a DOM prop, and "onhook" accumulates into a
// slice since more than one client hook can be attached to the same
// element.
func setProp(node *VNode, key string, value any) {
	if key == "" {
		return
	}
	if key == "key" {
		if s, ok := value.(string); ok {
			node.Key = s
		}
		return
	}
	if key != "onhook" {
		node.Props[key] = value
		return
	}
	switch existing := node.Props["onhook"].(type) {
	case nil:
		node.Props["onhook"] = value
	case []any:
		node.Props["onhook"] = append(existing, value)
	default:
		node.Props["onhook"] = []any{existing, value}
	}
}

// createElement builds a *VNode for tag from a mixed-type argument list.
// Supported element types: nil (ignored, enables conditional attributes),
// Attr, []Attr, *VNode, []*VNode, Component, string (text shorthand), and
// EventHandler.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue

		case Attr:
			setProp(node, v.Key, v.Value)

		case []Attr:
			for _, a := range v {
				setProp(node, a.Key, a.Value)
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})

		case string:
			node.Children = append(node.Children, &VNode{
				Kind: KindText,
				Text: v,
			})

		case EventHandler:
			node.Props[v.Event] = v.Handler
		}
	}

	return node
}

// tag returns an element constructor bound to the given HTML tag name.
func tag(name string) func(args ...any) *VNode {
	return func(args ...any) *VNode { return createElement(name, args) }
}

// Document structure elements

var (
	Html  = tag("html")
	Head  = tag("head")
	Body  = tag("body")
	Title = tag("title")
	Meta  = tag("meta")
	Link  = tag("link")
	Base  = tag("base")
)

// Content sectioning elements

var (
	Header  = tag("header")
	Footer  = tag("footer")
	Main    = tag("main")
	Nav     = tag("nav")
	Section = tag("section")
	Article = tag("article")
	Aside   = tag("aside")
	Address = tag("address")
	H1      = tag("h1")
	H2      = tag("h2")
	H3      = tag("h3")
	H4      = tag("h4")
	H5      = tag("h5")
	H6      = tag("h6")
	Hgroup  = tag("hgroup")
)

// Text content elements

var (
	Div        = tag("div")
	P          = tag("p")
	Span       = tag("span")
	Pre        = tag("pre")
	Blockquote = tag("blockquote")
	Ul         = tag("ul")
	Ol         = tag("ol")
	Li         = tag("li")
	Dl         = tag("dl")
	Dt         = tag("dt")
	Dd         = tag("dd")
	Hr         = tag("hr")
	Figure     = tag("figure")
	Figcaption = tag("figcaption")
)

// Inline text semantics

var (
	A      = tag("a")
	Strong = tag("strong")
	Em     = tag("em")
	B      = tag("b")
	I      = tag("i")
	U      = tag("u")
	S      = tag("s")
	Small  = tag("small")
	Mark   = tag("mark")
	Sub    = tag("sub")
	Sup    = tag("sup")
	Code   = tag("code")
	Kbd    = tag("kbd")
	Samp   = tag("samp")
	Var    = tag("var")
	Abbr   = tag("abbr")
	Cite   = tag("cite")
	Q      = tag("q")
	Dfn    = tag("dfn")
	Ruby   = tag("ruby")
	Rt     = tag("rt")
	Rp     = tag("rp")
	Bdi    = tag("bdi")
	Bdo    = tag("bdo")
)

// Time_ creates a <time> element (named to avoid conflict with the time package).
var Time_ = tag("time")

// DataElement creates a <data> HTML element.
// Note: For data-* attributes, use Data(key, value) from attributes.go instead.
var DataElement = tag("data")

var (
	Br  = tag("br")
	Wbr = tag("wbr")
)

// Form elements

var (
	Form     = tag("form")
	Input    = tag("input")
	Textarea = tag("textarea")
	Select   = tag("select")
	Option   = tag("option")
	Optgroup = tag("optgroup")
	Button   = tag("button")
	Label    = tag("label")
	Fieldset = tag("fieldset")
	Legend   = tag("legend")
	Datalist = tag("datalist")
	Output   = tag("output")
	Progress = tag("progress")
	Meter    = tag("meter")
)

// Table elements

var (
	Table    = tag("table")
	Thead    = tag("thead")
	Tbody    = tag("tbody")
	Tfoot    = tag("tfoot")
	Tr       = tag("tr")
	Th       = tag("th")
	Td       = tag("td")
	Caption  = tag("caption")
	Colgroup = tag("colgroup")
	Col      = tag("col")
)

// Media elements

var (
	Img     = tag("img")
	Picture = tag("picture")
	Source  = tag("source")
	Video   = tag("video")
	Audio   = tag("audio")
	Track   = tag("track")
	Iframe  = tag("iframe")
	Embed   = tag("embed")
	Object  = tag("object")
	Param   = tag("param")
	Canvas  = tag("canvas")
	Svg     = tag("svg")
	Math    = tag("math")
	Area    = tag("area")
)

// Map_ creates a <map> element (named to avoid conflict with the built-in map type).
var Map_ = tag("map")

// Interactive elements

var (
	Details = tag("details")
	Summary = tag("summary")
	Dialog  = tag("dialog")
	Menu    = tag("menu")
)

// Scripting elements

var (
	Script   = tag("script")
	Noscript = tag("noscript")
	Template = tag("template")
	Slot     = tag("slot")
	Style    = tag("style")
)

// CustomElement creates an element with a custom tag name.
func CustomElement(t string, args ...any) *VNode {
	return createElement(t, args)
}
