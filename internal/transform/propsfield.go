package transform

import "go/ast"

// lowerPropsField rewrites an instance field named `Props` on a component
// struct to `PropTypes` of the same declared type, the Go-idiomatic analog
// of the dialect's props-field rewrite (`props` → `static propTypes`): the
// instance-level Props value the base component wires in at mount must not
// be shadowed by a zero-valued field of the same name declared on the
// struct itself.
func lowerPropsField(file *ast.File) {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
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
			if !embedsBaseComponent(st) {
				continue
			}
			for _, field := range st.Fields.List {
				for _, n := range field.Names {
					if n.Name == "Props" {
						n.Name = "PropTypes"
					}
				}
			}
		}
	}
}

func embedsBaseComponent(st *ast.StructType) bool {
	for _, field := range st.Fields.List {
		if len(field.Names) != 0 {
			continue
		}
		sel, ok := field.Type.(*ast.SelectorExpr)
		if ok {
			if ident, ok := sel.X.(*ast.Ident); ok && ident.Name == "fenestra" && sel.Sel.Name == "BaseComponent" {
				return true
			}
		}
	}
	return false
}
