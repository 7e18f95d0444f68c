package transform

import (
	"go/ast"
	"go/token"
)

const fenestraImportPath = `"github.com/fenestra-dev/fenestra"`
const reactiveImportPath = `"github.com/fenestra-dev/fenestra/pkg/reactive"`

// injectRuntimeImports adds the fenestra and pkg/reactive imports if the
// lowered file references fenestra.BaseComponent or reactive.Signal/Memo
// but lacks the corresponding import, injecting the canonical import at
// the top of the file.
func injectRuntimeImports(file *ast.File) {
	if referencesSelector(file, "fenestra") && !hasImport(file, fenestraImportPath) {
		addImport(file, fenestraImportPath)
	}
	if referencesSelector(file, "reactive") && !hasImport(file, reactiveImportPath) {
		addImport(file, reactiveImportPath)
	}
}

func referencesSelector(file *ast.File, pkg string) bool {
	found := false
	ast.Inspect(file, func(n ast.Node) bool {
		if found {
			return false
		}
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if ident, ok := sel.X.(*ast.Ident); ok && ident.Name == pkg {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

func hasImport(file *ast.File, path string) bool {
	for _, imp := range file.Imports {
		if imp.Path.Value == path {
			return true
		}
	}
	return false
}

func addImport(file *ast.File, path string) {
	imp := &ast.ImportSpec{Path: &ast.BasicLit{Kind: token.STRING, Value: path}}
	file.Imports = append(file.Imports, imp)

	if len(file.Decls) > 0 {
		if gd, ok := file.Decls[0].(*ast.GenDecl); ok && gd.Tok == token.IMPORT {
			gd.Specs = append(gd.Specs, imp)
			return
		}
	}

	importDecl := &ast.GenDecl{
		Tok:   token.IMPORT,
		Specs: []ast.Spec{imp},
	}
	file.Decls = append([]ast.Decl{importDecl}, file.Decls...)
}
