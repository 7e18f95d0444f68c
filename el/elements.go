// This file re-exports vdom element constructors for the el package.
package el

import "github.com/fenestra-dev/fenestra/pkg/vdom"

func IsVoidElement(tag string) bool {
	return vdom.IsVoidElement(tag)
}
func Html(args ...any) *VNode {
	return vdom.Html(args...)
}
func Head(args ...any) *VNode {
	return vdom.Head(args...)
}
func Body(args ...any) *VNode {
	return vdom.Body(args...)
}
func Title(args ...any) *VNode {
	return vdom.Title(args...)
}
func Meta(args ...any) *VNode {
	return vdom.Meta(args...)
}
func LinkEl(args ...any) *VNode {
	return vdom.LinkEl(args...)
}
func Base(args ...any) *VNode {
	return vdom.Base(args...)
}
func Header(args ...any) *VNode {
	return vdom.Header(args...)
}
func Footer(args ...any) *VNode {
	return vdom.Footer(args...)
}
func Main(args ...any) *VNode {
	return vdom.Main(args...)
}
func Nav(args ...any) *VNode {
	return vdom.Nav(args...)
}
func Section(args ...any) *VNode {
	return vdom.Section(args...)
}
func Article(args ...any) *VNode {
	return vdom.Article(args...)
}
func Aside(args ...any) *VNode {
	return vdom.Aside(args...)
}
func Address(args ...any) *VNode {
	return vdom.Address(args...)
}
func H1(args ...any) *VNode {
	return vdom.H1(args...)
}
func H2(args ...any) *VNode {
	return vdom.H2(args...)
}
func H3(args ...any) *VNode {
	return vdom.H3(args...)
}
func H4(args ...any) *VNode {
	return vdom.H4(args...)
}
func H5(args ...any) *VNode {
	return vdom.H5(args...)
}
func H6(args ...any) *VNode {
	return vdom.H6(args...)
}
func Hgroup(args ...any) *VNode {
	return vdom.Hgroup(args...)
}
func Div(args ...any) *VNode {
	return vdom.Div(args...)
}
func P(args ...any) *VNode {
	return vdom.P(args...)
}
func Span(args ...any) *VNode {
	return vdom.Span(args...)
}
func Pre(args ...any) *VNode {
	return vdom.Pre(args...)
}
func Blockquote(args ...any) *VNode {
	return vdom.Blockquote(args...)
}
func Ul(args ...any) *VNode {
	return vdom.Ul(args...)
}
func Ol(args ...any) *VNode {
	return vdom.Ol(args...)
}
func Li(args ...any) *VNode {
	return vdom.Li(args...)
}
func Dl(args ...any) *VNode {
	return vdom.Dl(args...)
}
func Dt(args ...any) *VNode {
	return vdom.Dt(args...)
}
func Dd(args ...any) *VNode {
	return vdom.Dd(args...)
}
func Hr(args ...any) *VNode {
	return vdom.Hr(args...)
}
func Figure(args ...any) *VNode {
	return vdom.Figure(args...)
}
func Figcaption(args ...any) *VNode {
	return vdom.Figcaption(args...)
}
func A(args ...any) *VNode {
	return vdom.A(args...)
}
func Strong(args ...any) *VNode {
	return vdom.Strong(args...)
}
func Em(args ...any) *VNode {
	return vdom.Em(args...)
}
func B(args ...any) *VNode {
	return vdom.B(args...)
}
func I(args ...any) *VNode {
	return vdom.I(args...)
}
func U(args ...any) *VNode {
	return vdom.U(args...)
}
func S(args ...any) *VNode {
	return vdom.S(args...)
}
func Small(args ...any) *VNode {
	return vdom.Small(args...)
}
func Mark(args ...any) *VNode {
	return vdom.Mark(args...)
}
func Sub(args ...any) *VNode {
	return vdom.Sub(args...)
}
func Sup(args ...any) *VNode {
	return vdom.Sup(args...)
}
func Code(args ...any) *VNode {
	return vdom.Code(args...)
}
func Kbd(args ...any) *VNode {
	return vdom.Kbd(args...)
}
func Samp(args ...any) *VNode {
	return vdom.Samp(args...)
}
func Var(args ...any) *VNode {
	return vdom.Var(args...)
}
func Abbr(args ...any) *VNode {
	return vdom.Abbr(args...)
}
func Time_(args ...any) *VNode {
	return vdom.Time_(args...)
}
func Cite(args ...any) *VNode {
	return vdom.Cite(args...)
}
func Q(args ...any) *VNode {
	return vdom.Q(args...)
}
func Dfn(args ...any) *VNode {
	return vdom.Dfn(args...)
}
func Ruby(args ...any) *VNode {
	return vdom.Ruby(args...)
}
func Rt(args ...any) *VNode {
	return vdom.Rt(args...)
}
func Rp(args ...any) *VNode {
	return vdom.Rp(args...)
}
func Bdi(args ...any) *VNode {
	return vdom.Bdi(args...)
}
func Bdo(args ...any) *VNode {
	return vdom.Bdo(args...)
}
func DataElement(args ...any) *VNode {
	return vdom.DataElement(args...)
}
func Br(args ...any) *VNode {
	return vdom.Br(args...)
}
func Wbr(args ...any) *VNode {
	return vdom.Wbr(args...)
}
func Form(args ...any) *VNode {
	return vdom.Form(args...)
}
func Input(args ...any) *VNode {
	return vdom.Input(args...)
}
func Textarea(args ...any) *VNode {
	return vdom.Textarea(args...)
}
func Select(args ...any) *VNode {
	return vdom.Select(args...)
}
func Option(args ...any) *VNode {
	return vdom.Option(args...)
}
func Optgroup(args ...any) *VNode {
	return vdom.Optgroup(args...)
}
func Button(args ...any) *VNode {
	return vdom.Button(args...)
}
func Label(args ...any) *VNode {
	return vdom.Label(args...)
}
func Fieldset(args ...any) *VNode {
	return vdom.Fieldset(args...)
}
func Legend(args ...any) *VNode {
	return vdom.Legend(args...)
}
func Datalist(args ...any) *VNode {
	return vdom.Datalist(args...)
}
func Output(args ...any) *VNode {
	return vdom.Output(args...)
}
func Progress(args ...any) *VNode {
	return vdom.Progress(args...)
}
func Meter(args ...any) *VNode {
	return vdom.Meter(args...)
}
func Table(args ...any) *VNode {
	return vdom.Table(args...)
}
func Thead(args ...any) *VNode {
	return vdom.Thead(args...)
}
func Tbody(args ...any) *VNode {
	return vdom.Tbody(args...)
}
func Tfoot(args ...any) *VNode {
	return vdom.Tfoot(args...)
}
func Tr(args ...any) *VNode {
	return vdom.Tr(args...)
}
func Th(args ...any) *VNode {
	return vdom.Th(args...)
}
func Td(args ...any) *VNode {
	return vdom.Td(args...)
}
func Caption(args ...any) *VNode {
	return vdom.Caption(args...)
}
func Colgroup(args ...any) *VNode {
	return vdom.Colgroup(args...)
}
func Col(args ...any) *VNode {
	return vdom.Col(args...)
}
func Img(args ...any) *VNode {
	return vdom.Img(args...)
}
func Picture(args ...any) *VNode {
	return vdom.Picture(args...)
}
func Source(args ...any) *VNode {
	return vdom.Source(args...)
}
func Video(args ...any) *VNode {
	return vdom.Video(args...)
}
func Audio(args ...any) *VNode {
	return vdom.Audio(args...)
}
func Track(args ...any) *VNode {
	return vdom.Track(args...)
}
func Iframe(args ...any) *VNode {
	return vdom.Iframe(args...)
}
func Embed(args ...any) *VNode {
	return vdom.Embed(args...)
}
func Object(args ...any) *VNode {
	return vdom.Object(args...)
}
func Param(args ...any) *VNode {
	return vdom.Param(args...)
}
func Canvas(args ...any) *VNode {
	return vdom.Canvas(args...)
}
func Svg(args ...any) *VNode {
	return vdom.Svg(args...)
}

// SVG child elements
func Circle(args ...any) *VNode {
	return vdom.Circle(args...)
}
func Ellipse(args ...any) *VNode {
	return vdom.Ellipse(args...)
}
func Line(args ...any) *VNode {
	return vdom.Line(args...)
}
func Path(args ...any) *VNode {
	return vdom.Path(args...)
}
func Polygon(args ...any) *VNode {
	return vdom.Polygon(args...)
}
func Polyline(args ...any) *VNode {
	return vdom.Polyline(args...)
}
func Rect(args ...any) *VNode {
	return vdom.Rect(args...)
}
func G(args ...any) *VNode {
	return vdom.G(args...)
}
func Defs(args ...any) *VNode {
	return vdom.Defs(args...)
}
func Use(args ...any) *VNode {
	return vdom.Use(args...)
}

func Math(args ...any) *VNode {
	return vdom.Math(args...)
}
func Map_(args ...any) *VNode {
	return vdom.Map_(args...)
}
func Area(args ...any) *VNode {
	return vdom.Area(args...)
}
func Details(args ...any) *VNode {
	return vdom.Details(args...)
}
func Summary(args ...any) *VNode {
	return vdom.Summary(args...)
}
func Dialog(args ...any) *VNode {
	return vdom.Dialog(args...)
}
func Menu(args ...any) *VNode {
	return vdom.Menu(args...)
}
func Script(args ...any) *VNode {
	return vdom.Script(args...)
}
func Noscript(args ...any) *VNode {
	return vdom.Noscript(args...)
}
func Template(args ...any) *VNode {
	return vdom.Template(args...)
}
func Slot(args ...any) *VNode {
	return vdom.Slot(args...)
}
func Style(args ...any) *VNode {
	return vdom.Style(args...)
}
func CustomElement(tag string, args ...any) *VNode {
	return vdom.CustomElement(tag, args...)
}
