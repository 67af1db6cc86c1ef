package ast

import "github.com/scriptumlang/scriptum/internal/lexer"

// NumberLit is a numeric literal, retaining both the decoded value and the
// raw lexeme so IR lowering can round-trip it for formatting.
type NumberLit struct {
	base
	Value float64
	Raw   string
}

// TextLit is a string literal.
type TextLit struct {
	base
	Value string
	Raw   string
}

// BoolLit is `verum` or `falsum`.
type BoolLit struct {
	base
	Value bool
}

// NullumLit is the `nullum` literal.
type NullumLit struct{ base }

// IndefinitumLit is the `indefinitum` literal.
type IndefinitumLit struct{ base }

// Ident is an identifier reference.
type Ident struct {
	base
	Name Symbol
}

// UnaryExpr is a prefix unary operator: + - !.
type UnaryExpr struct {
	base
	Op      lexer.TokenKind
	Operand Expr
}

// BinaryExpr is an arithmetic, comparison, or logical infix operator.
type BinaryExpr struct {
	base
	Op    lexer.TokenKind
	Left  Expr
	Right Expr
}

// NullishExpr is `a ?? b`.
type NullishExpr struct {
	base
	Left  Expr
	Right Expr
}

// ConditionalExpr is the ternary `c ? a : b`.
type ConditionalExpr struct {
	base
	Cond Expr
	Then Expr
	Else Expr
}

// AssignExpr is `target = value`. Op is always ASSIGN: the parser rejects
// compound assignment operators.
type AssignExpr struct {
	base
	Op     lexer.TokenKind
	Target Expr
	Value  Expr
}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	base
	Callee Expr
	Args   []Expr
}

// IndexExpr is `object[index]`.
type IndexExpr struct {
	base
	Object Expr
	Index  Expr
}

// MemberExpr is `object.name`.
type MemberExpr struct {
	base
	Object Expr
	Name   Symbol
}

// ArrayLit is `[items...]`.
type ArrayLit struct {
	base
	Items []Expr
}

// ObjectField is one `ident: expr` entry in an object literal, in source
// order (spec.md §4.6: "Object literal fields preserve source order").
type ObjectField struct {
	Name  Symbol
	Value Expr
}

// ObjectLit is `structura { ident: expr, ... }`.
type ObjectLit struct {
	base
	Fields []ObjectField
}

// LambdaExpr is `functio (...) -> T? ( => Expr | Block )`.
type LambdaExpr struct {
	base
	Params     []*Parameter
	ReturnType TypeExpr // nil if unannotated
	ExprBody   Expr     // non-nil for `=> Expr` form
	BlockBody  *Block   // non-nil for block form
}

func (*NumberLit) exprNode()      {}
func (*TextLit) exprNode()        {}
func (*BoolLit) exprNode()        {}
func (*NullumLit) exprNode()      {}
func (*IndefinitumLit) exprNode() {}
func (*Ident) exprNode()          {}
func (*UnaryExpr) exprNode()      {}
func (*BinaryExpr) exprNode()     {}
func (*NullishExpr) exprNode()    {}
func (*ConditionalExpr) exprNode() {}
func (*AssignExpr) exprNode()     {}
func (*CallExpr) exprNode()       {}
func (*IndexExpr) exprNode()      {}
func (*MemberExpr) exprNode()     {}
func (*ArrayLit) exprNode()       {}
func (*ObjectLit) exprNode()      {}
func (*LambdaExpr) exprNode()     {}
