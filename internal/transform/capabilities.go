package transform

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/fenestra-dev/fenestra/internal/diag"
)

// lowerCapabilities scans a component type's doc comment for
// `//fenestra:requires(a, b)` and `//fenestra:provides(a, b)` pragmas and
// appends a package-level `<Name>Requires`/`<Name>Provides []string` var
// declaration for each, the Go-idiomatic rendering of the dialect's
// `requires = [...]` / `provides = [...]` static fields.
func lowerCapabilities(file *ast.File, fset *token.FileSet) []*diag.Diagnostic {
	var diags []*diag.Diagnostic

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE || gd.Doc == nil {
			continue
		}
		name := typeSpecName(gd)
		if name == "" {
			continue
		}

		for _, c := range gd.Doc.List {
			pragma, ok := parsePragma(c.Text)
			if !ok || (pragma != "requires" && pragma != "provides") {
				continue
			}
			caps, err := parsePragmaArgs(c.Text)
			if err != nil {
				pos := fset.Position(c.Pos())
				diags = append(diags, diag.New("LC1002").
					WithLocation(pos.Filename, pos.Line, pos.Column).
					WithDetail(err.Error()))
				continue
			}
			varName := name + "Requires"
			if pragma == "provides" {
				varName = name + "Provides"
			}
			file.Decls = append(file.Decls, capabilitySliceDecl(varName, caps))
		}
	}

	return diags
}

func typeSpecName(gd *ast.GenDecl) string {
	for _, spec := range gd.Specs {
		if ts, ok := spec.(*ast.TypeSpec); ok {
			return ts.Name.Name
		}
	}
	return ""
}

// parsePragmaArgs extracts the comma-separated argument list out of a
// `//fenestra:name(a, b, c)` comment.
func parsePragmaArgs(text string) ([]string, error) {
	open := strings.Index(text, "(")
	close := strings.LastIndex(text, ")")
	if open == -1 || close == -1 || close < open {
		return nil, errMissingArgs
	}
	raw := text[open+1 : close]
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	caps := make([]string, len(parts))
	for i, p := range parts {
		caps[i] = strings.TrimSpace(p)
	}
	return caps, nil
}

var errMissingArgs = capabilityArgsError{}

type capabilityArgsError struct{}

func (capabilityArgsError) Error() string {
	return "capability decorator requires a parenthesized argument list, e.g. requires(storage.read)"
}

func capabilitySliceDecl(varName string, caps []string) *ast.GenDecl {
	elems := make([]ast.Expr, len(caps))
	for i, c := range caps {
		elems[i] = &ast.BasicLit{Kind: token.STRING, Value: `"` + c + `"`}
	}
	return &ast.GenDecl{
		Tok: token.VAR,
		Specs: []ast.Spec{
			&ast.ValueSpec{
				Names: []*ast.Ident{ast.NewIdent(varName)},
				Values: []ast.Expr{
					&ast.CompositeLit{
						Type: &ast.ArrayType{Elt: ast.NewIdent("string")},
						Elts: elems,
					},
				},
			},
		},
	}
}
