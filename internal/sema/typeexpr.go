package sema

import "github.com/scriptumlang/scriptum/internal/ast"

// resolveTypeExpr converts a syntactic ast.TypeExpr into a resolved Type.
// Unknown bare names (anything other than the five primitive keywords)
// fall back to quodlibet: Scriptum has no nominal user-defined types, so a
// name like `Puncta` in a type position can only ever mean "whatever the
// author intended", which the dynamic top type already expresses.
func (a *Analyzer) resolveTypeExpr(t ast.TypeExpr) Type {
	if t == nil {
		return Quodlibet()
	}
	switch x := t.(type) {
	case *ast.SimpleTypeExpr:
		name := a.interner.MustLookup(x.Name)
		switch name {
		case "numerus":
			return Numerus()
		case "textus":
			return Textus()
		case "booleanum":
			return Booleanum()
		case "vacuum":
			return Vacuum()
		case "quodlibet":
			return Quodlibet()
		default:
			return Quodlibet()
		}
	case *ast.ArrayTypeExpr:
		return ArrayOf(a.resolveTypeExpr(x.Elem))
	case *ast.ObjectTypeExpr:
		fields := make([]ObjectField, len(x.Fields))
		for i, f := range x.Fields {
			fields[i] = ObjectField{Name: a.interner.MustLookup(f.Name), Type: a.resolveTypeExpr(f.Type)}
		}
		return ObjectOf(fields)
	case *ast.FunctionTypeExpr:
		params := make([]Type, len(x.Params))
		for i, p := range x.Params {
			params[i] = a.resolveTypeExpr(p)
		}
		return FunctionOf(params, a.resolveTypeExpr(x.Ret))
	case *ast.OptionalTypeExpr:
		return OptionalOf(a.resolveTypeExpr(x.Elem))
	default:
		return Quodlibet()
	}
}
