package transform

import (
	"go/format"
	"strings"

	"github.com/fenestra-dev/fenestra/internal/diag"
)

// Result is the outcome of transforming one dialect source file.
type Result struct {
	Path   string
	Output []byte
	Diags  []*diag.Diagnostic
}

// OK reports whether the transform produced no diagnostics and emitted
// output.
func (r Result) OK() bool {
	return len(r.Diags) == 0 && r.Output != nil
}

// File transforms a single .ui/.uix dialect source into formatted Go.
// It never silently succeeds on a diagnostic-producing input: if any phase
// reports a diagnostic, Output is nil and Diags is non-empty.
func File(src, path string) Result {
	if d := rejectStyleTags(src, path); d != nil {
		return Result{Path: path, Diags: []*diag.Diagnostic{d}}
	}

	preprocessed, diags := Preprocess(src, path)
	if len(diags) > 0 {
		return Result{Path: path, Diags: diags}
	}

	lowered, diags := parseAndLower(preprocessed, path)
	if len(diags) > 0 {
		return Result{Path: path, Diags: diags}
	}

	lowerPropsField(lowered.file)
	injectRuntimeImports(lowered.file)

	out, err := formatLowered(lowered)
	if err != nil {
		return Result{Path: path, Diags: []*diag.Diagnostic{
			diag.New("LC1003").Wrap(err).WithDetail("a lowering pass produced Go source go/format rejected"),
		}}
	}

	return Result{Path: path, Output: out}
}

func formatLowered(r *lowerResult) ([]byte, error) {
	var buf strings.Builder
	if err := format.Node(&buf, r.fset, r.file); err != nil {
		return nil, err
	}
	// format.Node does not itself guarantee canonical gofmt output when
	// the AST was hand-assembled (as our injected import/capability
	// decls are); a final format.Source pass over the rendered text
	// canonicalizes it and is, like format.Node, purely a function of
	// its input bytes — the determinism property holds end to end.
	return format.Source([]byte(buf.String()))
}

// rejectStyleTags enforces the dialect's "no <style> tags in component
// source" rule (external stylesheets are required instead).
func rejectStyleTags(src, path string) *diag.Diagnostic {
	idx := strings.Index(src, "<style")
	if idx == -1 {
		return nil
	}
	line := 1 + strings.Count(src[:idx], "\n")
	return diag.New("LC1002").
		WithLocation(path, line, 0).
		WithDetail("component source may not contain <style> tags; use an external stylesheet")
}
