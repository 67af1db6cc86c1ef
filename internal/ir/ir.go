// Package ir defines Scriptum's structural intermediate representation: a
// pure, span-preserving translation of internal/ast's syntax tree that
// materializes control-flow bodies as statement vectors, per spec.md §4.5.
// No single teacher file is a 1:1 analogue — DWScript interprets its AST
// directly and separately compiles to a stack-machine bytecode
// (internal/bytecode), which is out of scope here — so this package's
// *shape* is grounded on the teacher's AST node layout
// (control_flow.go's IfStatement/WhileStatement, functions.go's
// FunctionLiteral) mapped mechanically onto spec.md §4.5's requirements.
package ir

import (
	"github.com/scriptumlang/scriptum/internal/ast"
	"github.com/scriptumlang/scriptum/internal/lexer"
	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

// base is embedded by every concrete IR node to provide Span() without
// repeating the field and method on every node type — same pattern as
// internal/ast's base.
type base struct {
	span sourcemap.Span
}

func (b base) Span() sourcemap.Span { return b.span }

// Module is the IR root: an ordered sequence of lowered top-level items,
// still sharing the originating ast.Module's interner (Symbol keys are
// never recycled, so they remain valid across both trees).
type Module struct {
	Items    []Item
	Interner *ast.Interner
}

// Item is a lowered top-level declaration.
type Item interface {
	itemNode()
	Span() sourcemap.Span
}

// Param is a lowered function/lambda parameter.
type Param struct {
	base
	Name    ast.Symbol
	Type    ast.TypeExpr // nil if unannotated
	Default Expr         // nil if no default
}

// Function is a lowered `functio` declaration. Generics is carried
// verbatim from the AST and never consulted by lowering or the
// interpreter — generics resolution is an explicit Non-goal.
type Function struct {
	base
	Name       ast.Symbol
	Generics   []ast.Symbol
	Params     []Param
	ReturnType ast.TypeExpr // nil if unannotated
	Body       []Stmt
}

// GlobalVar is a lowered top-level `mutabilis`/`constans` declaration.
type GlobalVar struct {
	base
	Name    ast.Symbol
	Mutable bool
	Type    ast.TypeExpr // nil if unannotated
	Init    Expr         // nil if no initializer
}

func (*Function) itemNode()  {}
func (*GlobalVar) itemNode() {}

// Stmt is a lowered statement.
type Stmt interface {
	stmtNode()
	Span() sourcemap.Span
}

// Block is a lowered brace-delimited statement sequence, used wherever a
// nested block appears in a position that is not one of If/While/ForIn's
// vector-materializing body slots (those unwrap their Block directly into
// a []Stmt instead of wrapping it in this node).
type Block struct {
	base
	Stmts []Stmt
}

// LocalVar is a lowered `mutabilis`/`constans` declaration inside a block.
type LocalVar struct {
	base
	Name    ast.Symbol
	Mutable bool
	Type    ast.TypeExpr // nil if unannotated
	Init    Expr         // nil if no initializer
}

// ExprStmt wraps an expression evaluated for its side effects.
type ExprStmt struct {
	base
	X Expr
}

// Return is a lowered `redde Expr? ;`.
type Return struct {
	base
	Value Expr // nil for a bare `redde;`
}

// If always materializes Then/Else as statement vectors (possibly empty),
// per spec.md §4.5's shape-preservation rule — no conditional omission of
// either slice based on whether the branch was a block in source.
type If struct {
	base
	Cond Expr
	Then []Stmt
	Else []Stmt // empty, not nil, when there is no `aliter`
}

// While always materializes Body as a statement vector.
type While struct {
	base
	Cond Expr
	Body []Stmt
}

// ForTarget is the loop variable's binding record: spec.md §4.5 requires a
// mutability flag and optional type annotation even though Scriptum's
// `pro x in e` grammar has no syntax for either — the loop variable is
// always a fresh, reassignable binding with no source-level annotation.
type ForTarget struct {
	Name    ast.Symbol
	Mutable bool
	Type    ast.TypeExpr // always nil: `pro` has no type-annotation syntax
}

// ForIn is a lowered `pro Ident in Expr Stmt`.
type ForIn struct {
	base
	Target   ForTarget
	Iterable Expr
	Body     []Stmt
}

// Break is a lowered `frange;`.
type Break struct{ base }

// Continue is a lowered `perge;`.
type Continue struct{ base }

func (*Block) stmtNode()    {}
func (*LocalVar) stmtNode() {}
func (*ExprStmt) stmtNode() {}
func (*Return) stmtNode()   {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
func (*ForIn) stmtNode()    {}
func (*Break) stmtNode()    {}
func (*Continue) stmtNode() {}

// Expr is a lowered expression.
type Expr interface {
	exprNode()
	Span() sourcemap.Span
}

// NumberLit retains both the decoded value and the raw lexeme, per
// spec.md §4.5's round-trippable-formatting requirement.
type NumberLit struct {
	base
	Value float64
	Raw   string
}

// TextLit retains both the decoded value and the raw lexeme.
type TextLit struct {
	base
	Value string
	Raw   string
}

type BoolLit struct {
	base
	Value bool
}

type NullumLit struct{ base }

type IndefinitumLit struct{ base }

type Ident struct {
	base
	Name ast.Symbol
}

type Unary struct {
	base
	Op      lexer.TokenKind
	Operand Expr
}

type Binary struct {
	base
	Op    lexer.TokenKind
	Left  Expr
	Right Expr
}

type Nullish struct {
	base
	Left  Expr
	Right Expr
}

type Conditional struct {
	base
	Cond Expr
	Then Expr
	Else Expr
}

type Assign struct {
	base
	Op     lexer.TokenKind
	Target Expr
	Value  Expr
}

type Call struct {
	base
	Callee Expr
	Args   []Expr
}

type Index struct {
	base
	Object Expr
	Index  Expr
}

type Member struct {
	base
	Object Expr
	Name   ast.Symbol
}

type ArrayLit struct {
	base
	Items []Expr
}

// ObjectField is one `ident: expr` entry, in source order (spec.md §4.6:
// "Object literal fields preserve source order").
type ObjectField struct {
	Name  ast.Symbol
	Value Expr
}

type ObjectLit struct {
	base
	Fields []ObjectField
}

// Lambda retains parameter list, optional return type, and either an
// expression-body or a block-body flag, per spec.md §4.5. Exactly one of
// ExprBody/BlockBody is populated; IsExprBody says which.
type Lambda struct {
	base
	Params     []Param
	ReturnType ast.TypeExpr // nil if unannotated
	IsExprBody bool
	ExprBody   Expr   // non-nil iff IsExprBody
	BlockBody  []Stmt // non-nil iff !IsExprBody
}

func (*NumberLit) exprNode()      {}
func (*TextLit) exprNode()        {}
func (*BoolLit) exprNode()        {}
func (*NullumLit) exprNode()      {}
func (*IndefinitumLit) exprNode() {}
func (*Ident) exprNode()          {}
func (*Unary) exprNode()          {}
func (*Binary) exprNode()         {}
func (*Nullish) exprNode()        {}
func (*Conditional) exprNode()    {}
func (*Assign) exprNode()         {}
func (*Call) exprNode()           {}
func (*Index) exprNode()          {}
func (*Member) exprNode()         {}
func (*ArrayLit) exprNode()       {}
func (*ObjectLit) exprNode()      {}
func (*Lambda) exprNode()         {}
