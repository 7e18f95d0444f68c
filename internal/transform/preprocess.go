package transform

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fenestra-dev/fenestra/internal/diag"
)

// Recognised block headers. Each is rewritten in place, consuming the
// matching closing brace found by findBlockEnd rather than a regex over
// the full (possibly multi-line, possibly nested) body, since braces can
// nest arbitrarily inside a block.
var (
	componentHeader = regexp.MustCompile(`(?m)^component\s+([A-Za-z_][A-Za-z0-9_]*)\s*\{`)
	stateHeader     = regexp.MustCompile(`(?m)^\s*state\s*\{`)
	shapeHeader     = regexp.MustCompile(`(?m)^shape\s+[A-Za-z_][A-Za-z0-9_]*\s*\{`)
	mountHeader     = regexp.MustCompile(`(?m)^\s*mount\s*\{`)
	unmountHeader   = regexp.MustCompile(`(?m)^\s*unmount\s*\{`)
	effectHeader    = regexp.MustCompile(`(?m)^\s*effect\s*\{`)

	reactiveVarRe = regexp.MustCompile(`(?m)^\s*reactive\s+var\s+([A-Za-z_][A-Za-z0-9_]*)\s+([A-Za-z_][A-Za-z0-9_.\[\]]*)\s*=\s*(.+)$`)
	computedRe    = regexp.MustCompile(`(?m)^\s*computed\s+func\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(\)\s*([A-Za-z_][A-Za-z0-9_.\[\]]*)\s*\{`)
)

// Preprocess runs phase 1: it rewrites a .ui/.uix dialect source into
// valid Go source text, ready for go/parser. The returned text is not
// guaranteed to be gofmt-clean; phase 2 and a final go/format.Source pass
// handle that.
func Preprocess(src string, path string) (string, []*diag.Diagnostic) {
	src, diags := stripShapeBlocks(src, path)
	if len(diags) > 0 {
		return src, diags
	}
	return rewriteComponents(src, path)
}

// findBlockEnd returns the index just past the closing brace matching the
// opening brace at openIdx (src[openIdx] == '{'), or -1 if unbalanced.
func findBlockEnd(src string, openIdx int) int {
	depth := 0
	for i := openIdx; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}

func malformedBlock(path, construct string, offset int, src string) *diag.Diagnostic {
	line := 1 + strings.Count(src[:offset], "\n")
	return diag.New("LC1001").
		WithLocation(path, line, 0).
		WithDetail(fmt.Sprintf("unterminated %s block starting here", construct))
}

// stripShapeBlocks removes `shape Name { ... }` declarations entirely.
// A shape is a dialect-only authoring aid (documents a props/state
// structure for editor tooling) with no Go runtime representation, so it
// is stripped before transpilation since it would otherwise vanish at
// runtime anyway.
func stripShapeBlocks(src, path string) (string, []*diag.Diagnostic) {
	var diags []*diag.Diagnostic
	for {
		loc := shapeHeader.FindStringIndex(src)
		if loc == nil {
			break
		}
		openIdx := loc[1] - 1
		endIdx := findBlockEnd(src, openIdx)
		if endIdx == -1 {
			diags = append(diags, malformedBlock(path, "shape", loc[0], src))
			break
		}
		src = src[:loc[0]] + src[endIdx:]
	}
	return src, diags
}

// rewriteComponents turns each `component Name { BODY }` into a struct
// declaration holding its state fields, plus sibling methods for its
// mount/unmount/effect/computed blocks — the latter must be hoisted out of
// BODY before wrapping, since a Go struct type literal cannot itself
// contain function declarations.
func rewriteComponents(src, path string) (string, []*diag.Diagnostic) {
	var diags []*diag.Diagnostic
	for {
		loc := componentHeader.FindStringSubmatchIndex(src)
		if loc == nil {
			break
		}
		name := src[loc[2]:loc[3]]
		openIdx := loc[1] - 1
		endIdx := findBlockEnd(src, openIdx)
		if endIdx == -1 {
			diags = append(diags, malformedBlock(path, "component", loc[0], src))
			break
		}
		body := src[openIdx+1 : endIdx-1]

		body, methods, d := extractMethods(body, name, path)
		diags = append(diags, d...)

		body, d = rewriteStateBlocks(body, path)
		diags = append(diags, d...)
		body = rewriteReactiveVars(body)

		var out strings.Builder
		out.WriteString(fmt.Sprintf("type %s struct {\n\tfenestra.BaseComponent\n%s\n}\n", name, body))
		for _, m := range methods {
			out.WriteString("\n")
			out.WriteString(m)
			out.WriteString("\n")
		}

		src = src[:loc[0]] + out.String() + src[endIdx:]
	}
	return src, diags
}

// rewriteStateBlocks inlines a `state { FIELDS }` block's field
// declarations directly into the surrounding struct body.
func rewriteStateBlocks(src, path string) (string, []*diag.Diagnostic) {
	var diags []*diag.Diagnostic
	for {
		loc := stateHeader.FindStringIndex(src)
		if loc == nil {
			break
		}
		openIdx := loc[1] - 1
		endIdx := findBlockEnd(src, openIdx)
		if endIdx == -1 {
			diags = append(diags, malformedBlock(path, "state", loc[0], src))
			break
		}
		body := src[openIdx+1 : endIdx-1]
		src = src[:loc[0]] + body + src[endIdx:]
	}
	return src, diags
}

// extractMethods pulls every mount/unmount/effect/computed block out of a
// component's body, returning the body with those blocks removed and the
// corresponding method source texts (receiver already bound to
// componentName, since it is known at this point in phase 1 — no
// placeholder-and-resolve step is needed).
func extractMethods(body, componentName, path string) (string, []string, []*diag.Diagnostic) {
	var methods []string
	var diags []*diag.Diagnostic

	// pragmaStart walks back from a block header over the `//fenestra:`
	// pragma lines directly above it, so they move with the hoisted method
	// as its doc comment instead of staying behind in the struct body.
	pragmaStart := func(start int) int {
		for start > 0 {
			lineStart := strings.LastIndex(body[:start-1], "\n") + 1
			if !strings.HasPrefix(strings.TrimSpace(body[lineStart:start]), "//fenestra:") {
				break
			}
			start = lineStart
		}
		return start
	}

	type lifecycleSpec struct {
		header *regexp.Regexp
		method string
	}
	for _, spec := range []lifecycleSpec{
		{mountHeader, "OnMount"},
		{unmountHeader, "OnUnmount"},
		{effectHeader, "OnEffect"},
	} {
		for {
			loc := spec.header.FindStringIndex(body)
			if loc == nil {
				break
			}
			openIdx := loc[1] - 1
			endIdx := findBlockEnd(body, openIdx)
			if endIdx == -1 {
				diags = append(diags, malformedBlock(path, spec.method, loc[0], body))
				break
			}
			blockBody := body[openIdx+1 : endIdx-1]
			start := pragmaStart(loc[0])
			methods = append(methods, body[start:loc[0]]+fmt.Sprintf("func (c *%s) %s() {\n%s\n}", componentName, spec.method, blockBody))
			body = body[:start] + body[endIdx:]
		}
	}

	for {
		loc := computedRe.FindStringSubmatchIndex(body)
		if loc == nil {
			break
		}
		fnName := body[loc[2]:loc[3]]
		retType := body[loc[4]:loc[5]]
		openIdx := loc[1] - 1
		endIdx := findBlockEnd(body, openIdx)
		if endIdx == -1 {
			diags = append(diags, malformedBlock(path, "computed", loc[0], body))
			break
		}
		blockBody := body[openIdx+1 : endIdx-1]
		start := pragmaStart(loc[0])
		methods = append(methods, body[start:loc[0]]+fmt.Sprintf("//fenestra:computed\nfunc (c *%s) %s() %s {\n%s\n}", componentName, fnName, retType, blockBody))
		body = body[:start] + body[endIdx:]
	}

	return body, methods, diags
}

// rewriteReactiveVars turns `reactive var x T = v` into a field
// declaration `x *reactive.Signal[T]`, annotated with the initial value so
// a future constructor-generation pass can wire `reactive.NewSignal(v)`.
func rewriteReactiveVars(src string) string {
	return reactiveVarRe.ReplaceAllString(src, `$1 *reactive.Signal[$2] /*fenestra:init=$3*/`)
}
