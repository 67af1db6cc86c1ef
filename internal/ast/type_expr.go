package ast

// TypeExpr is a syntactic type annotation as written in source: a simple
// symbol, an array, an object shape, a function signature, or an optional
// wrapper. It is distinct from sema's resolved Type — TypeExpr is what the
// parser produced; Type is what the analyzer computed from it.
type TypeExpr interface {
	Node
	typeExprNode()
}

// SimpleTypeExpr is a bare name: a primitive (`numerus`, `textus`, ...) or
// a user-defined type name.
type SimpleTypeExpr struct {
	base
	Name Symbol
}

// ArrayTypeExpr is `Elem[]`.
type ArrayTypeExpr struct {
	base
	Elem TypeExpr
}

// ObjectTypeField is one `name: Type` entry in an object type shape.
type ObjectTypeField struct {
	Name Symbol
	Type TypeExpr
}

// ObjectTypeExpr is a `structura { name: Type, ... }` type shape.
type ObjectTypeExpr struct {
	base
	Fields []ObjectTypeField
}

// FunctionTypeExpr is a function signature type: `(Params) -> Ret`.
type FunctionTypeExpr struct {
	base
	Params []TypeExpr
	Ret    TypeExpr
}

// OptionalTypeExpr is `Type?`.
type OptionalTypeExpr struct {
	base
	Elem TypeExpr
}

func (*SimpleTypeExpr) typeExprNode()   {}
func (*ArrayTypeExpr) typeExprNode()    {}
func (*ObjectTypeExpr) typeExprNode()   {}
func (*FunctionTypeExpr) typeExprNode() {}
func (*OptionalTypeExpr) typeExprNode() {}
