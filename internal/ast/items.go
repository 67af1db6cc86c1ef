package ast

// FunctionDecl is `functio Name Generics? ( Params? ) ( -> Type )? Block`.
type FunctionDecl struct {
	base
	Name       Symbol
	Generics   []Symbol // raw type-parameter names; accepted, never resolved
	Params     []*Parameter
	ReturnType TypeExpr // nil if unannotated (defaults to vacuum)
	Body       *Block
}

// GlobalVarDecl is a top-level `mutabilis`/`constans` declaration.
type GlobalVarDecl struct {
	base
	Name    Symbol
	Mutable bool
	Type    TypeExpr // nil if unannotated
	Init    Expr     // nil if no initializer
}

func (*FunctionDecl) itemNode()  {}
func (*GlobalVarDecl) itemNode() {}
