package transform

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/fenestra-dev/fenestra/internal/diag"
)

// knownDecorators are the pragma-comment decorators the dialect
// recognises, each translated from the dialect's `@onMount`/`@render`/etc
// decorator into a Go-idiomatic `//fenestra:name` comment pragma
// immediately above the decorated declaration.
var knownDecorators = map[string]bool{
	"onMount":    true,
	"onUpdate":   true,
	"onDestroy":  true,
	"onError":    true,
	"render":     true,
	"bind":       true,
	"computed":   true,
	"requires":   true,
	"provides":   true,
	"capability": true,
}

// lowerResult carries the parsed file plus the component type name it
// declares (receivers are already bound by phase 1's extractMethods, which
// knows the enclosing component's name when it hoists a lifecycle or
// computed block out).
type lowerResult struct {
	file          *ast.File
	fset          *token.FileSet
	componentName string
}

// parseAndLower runs phase 2: it parses the phase-1 output, lowers
// decorator pragmas, and validates capability annotations — each producing
// an LC1xxx diagnostic on failure.
func parseAndLower(src, path string) (*lowerResult, []*diag.Diagnostic) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		return nil, []*diag.Diagnostic{
			diag.New("LC1003").Wrap(err).WithDetail("phase 1 output did not parse as Go; this is a transformer bug, not a dialect error"),
		}
	}

	componentName := findComponentName(file)

	var diags []*diag.Diagnostic
	diags = append(diags, lowerDecorators(file, fset)...)
	diags = append(diags, lowerCapabilities(file, fset)...)

	return &lowerResult{file: file, fset: fset, componentName: componentName}, diags
}

// findComponentName returns the name of the sole struct type in file that
// embeds fenestra.BaseComponent.
func findComponentName(file *ast.File) string {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}
			for _, field := range st.Fields.List {
				if len(field.Names) != 0 {
					continue
				}
				sel, ok := field.Type.(*ast.SelectorExpr)
				if !ok {
					continue
				}
				if ident, ok := sel.X.(*ast.Ident); ok && ident.Name == "fenestra" && sel.Sel.Name == "BaseComponent" {
					return ts.Name.Name
				}
			}
		}
	}
	return ""
}

// lowerDecorators scans doc comments for `//fenestra:name(args)` pragmas,
// validates the decorated declaration shape, and reports unknown names.
func lowerDecorators(file *ast.File, fset *token.FileSet) []*diag.Diagnostic {
	var diags []*diag.Diagnostic

	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			name, ok := parsePragma(c.Text)
			if !ok {
				continue
			}
			if !knownDecorators[name] {
				pos := fset.Position(c.Pos())
				diags = append(diags, diag.New("LC1002").
					WithLocation(pos.Filename, pos.Line, pos.Column).
					WithDetail("unrecognized decorator `"+name+"`"))
				continue
			}
			if name == "render" && fd.Recv == nil {
				pos := fset.Position(c.Pos())
				diags = append(diags, diag.New("LC1001").
					WithLocation(pos.Filename, pos.Line, pos.Column).
					WithDetail("@render must decorate a method"))
			}
		}
	}

	return diags
}

// parsePragma extracts the decorator name from a `//fenestra:name` or
// `//fenestra:name(args)` comment line.
func parsePragma(text string) (string, bool) {
	const prefix = "//fenestra:"
	if !strings.HasPrefix(text, prefix) {
		return "", false
	}
	rest := strings.TrimPrefix(text, prefix)
	if idx := strings.IndexAny(rest, "( \t"); idx >= 0 {
		rest = rest[:idx]
	}
	return rest, rest != ""
}
