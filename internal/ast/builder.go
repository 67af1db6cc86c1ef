package ast

import (
	"github.com/scriptumlang/scriptum/internal/lexer"
	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

// Builder assigns NodeIDs during one parse session and owns the Interner
// the resulting Module will carry. The parser holds exactly one Builder for
// the whole file, mirroring spec.md §3's "NodeId generator: Monotonic
// counter local to a parse session."
type Builder struct {
	gen      idGen
	Interner *Interner
}

// NewBuilder creates a Builder with a fresh Interner.
func NewBuilder() *Builder {
	return &Builder{Interner: NewInterner()}
}

func (b *Builder) next(span sourcemap.Span) base {
	return base{id: b.gen.fresh(), span: span}
}

func (b *Builder) Module(span sourcemap.Span, items []Item) *Module {
	return &Module{base: b.next(span), Items: items, Interner: b.Interner}
}

func (b *Builder) Parameter(span sourcemap.Span, name Symbol, typ TypeExpr, def Expr) *Parameter {
	return &Parameter{base: b.next(span), Name: name, Type: typ, Default: def}
}

func (b *Builder) FunctionDecl(span sourcemap.Span, name Symbol, params []*Parameter, ret TypeExpr, body *Block) *FunctionDecl {
	return &FunctionDecl{base: b.next(span), Name: name, Params: params, ReturnType: ret, Body: body}
}

func (b *Builder) GlobalVarDecl(span sourcemap.Span, name Symbol, mutable bool, typ TypeExpr, init Expr) *GlobalVarDecl {
	return &GlobalVarDecl{base: b.next(span), Name: name, Mutable: mutable, Type: typ, Init: init}
}

func (b *Builder) Block(span sourcemap.Span, stmts []Stmt) *Block {
	return &Block{base: b.next(span), Stmts: stmts}
}

func (b *Builder) LocalVarDecl(span sourcemap.Span, name Symbol, mutable bool, typ TypeExpr, init Expr) *LocalVarDecl {
	return &LocalVarDecl{base: b.next(span), Name: name, Mutable: mutable, Type: typ, Init: init}
}

func (b *Builder) ExprStmt(span sourcemap.Span, x Expr) *ExprStmt {
	return &ExprStmt{base: b.next(span), X: x}
}

func (b *Builder) ReturnStmt(span sourcemap.Span, value Expr) *ReturnStmt {
	return &ReturnStmt{base: b.next(span), Value: value}
}

func (b *Builder) IfStmt(span sourcemap.Span, cond Expr, then, els Stmt) *IfStmt {
	return &IfStmt{base: b.next(span), Cond: cond, Then: then, Else: els}
}

func (b *Builder) WhileStmt(span sourcemap.Span, cond Expr, body Stmt) *WhileStmt {
	return &WhileStmt{base: b.next(span), Cond: cond, Body: body}
}

func (b *Builder) ForInStmt(span sourcemap.Span, target Symbol, iterable Expr, body Stmt) *ForInStmt {
	return &ForInStmt{base: b.next(span), Target: target, Iterable: iterable, Body: body}
}

func (b *Builder) BreakStmt(span sourcemap.Span) *BreakStmt       { return &BreakStmt{base: b.next(span)} }
func (b *Builder) ContinueStmt(span sourcemap.Span) *ContinueStmt { return &ContinueStmt{base: b.next(span)} }

func (b *Builder) NumberLit(span sourcemap.Span, value float64, raw string) *NumberLit {
	return &NumberLit{base: b.next(span), Value: value, Raw: raw}
}

func (b *Builder) TextLit(span sourcemap.Span, value, raw string) *TextLit {
	return &TextLit{base: b.next(span), Value: value, Raw: raw}
}

func (b *Builder) BoolLit(span sourcemap.Span, value bool) *BoolLit {
	return &BoolLit{base: b.next(span), Value: value}
}

func (b *Builder) NullumLit(span sourcemap.Span) *NullumLit           { return &NullumLit{base: b.next(span)} }
func (b *Builder) IndefinitumLit(span sourcemap.Span) *IndefinitumLit { return &IndefinitumLit{base: b.next(span)} }

func (b *Builder) Ident(span sourcemap.Span, name Symbol) *Ident {
	return &Ident{base: b.next(span), Name: name}
}

func (b *Builder) UnaryExpr(span sourcemap.Span, op lexer.TokenKind, operand Expr) *UnaryExpr {
	return &UnaryExpr{base: b.next(span), Op: op, Operand: operand}
}

func (b *Builder) BinaryExpr(span sourcemap.Span, op lexer.TokenKind, left, right Expr) *BinaryExpr {
	return &BinaryExpr{base: b.next(span), Op: op, Left: left, Right: right}
}

func (b *Builder) NullishExpr(span sourcemap.Span, left, right Expr) *NullishExpr {
	return &NullishExpr{base: b.next(span), Left: left, Right: right}
}

func (b *Builder) ConditionalExpr(span sourcemap.Span, cond, then, els Expr) *ConditionalExpr {
	return &ConditionalExpr{base: b.next(span), Cond: cond, Then: then, Else: els}
}

func (b *Builder) AssignExpr(span sourcemap.Span, op lexer.TokenKind, target, value Expr) *AssignExpr {
	return &AssignExpr{base: b.next(span), Op: op, Target: target, Value: value}
}

func (b *Builder) CallExpr(span sourcemap.Span, callee Expr, args []Expr) *CallExpr {
	return &CallExpr{base: b.next(span), Callee: callee, Args: args}
}

func (b *Builder) IndexExpr(span sourcemap.Span, object, index Expr) *IndexExpr {
	return &IndexExpr{base: b.next(span), Object: object, Index: index}
}

func (b *Builder) MemberExpr(span sourcemap.Span, object Expr, name Symbol) *MemberExpr {
	return &MemberExpr{base: b.next(span), Object: object, Name: name}
}

func (b *Builder) ArrayLit(span sourcemap.Span, items []Expr) *ArrayLit {
	return &ArrayLit{base: b.next(span), Items: items}
}

func (b *Builder) ObjectLit(span sourcemap.Span, fields []ObjectField) *ObjectLit {
	return &ObjectLit{base: b.next(span), Fields: fields}
}

func (b *Builder) LambdaExpr(span sourcemap.Span, params []*Parameter, ret TypeExpr, exprBody Expr, blockBody *Block) *LambdaExpr {
	return &LambdaExpr{base: b.next(span), Params: params, ReturnType: ret, ExprBody: exprBody, BlockBody: blockBody}
}

func (b *Builder) SimpleTypeExpr(span sourcemap.Span, name Symbol) *SimpleTypeExpr {
	return &SimpleTypeExpr{base: b.next(span), Name: name}
}

func (b *Builder) ArrayTypeExpr(span sourcemap.Span, elem TypeExpr) *ArrayTypeExpr {
	return &ArrayTypeExpr{base: b.next(span), Elem: elem}
}

func (b *Builder) ObjectTypeExpr(span sourcemap.Span, fields []ObjectTypeField) *ObjectTypeExpr {
	return &ObjectTypeExpr{base: b.next(span), Fields: fields}
}

func (b *Builder) FunctionTypeExpr(span sourcemap.Span, params []TypeExpr, ret TypeExpr) *FunctionTypeExpr {
	return &FunctionTypeExpr{base: b.next(span), Params: params, Ret: ret}
}

func (b *Builder) OptionalTypeExpr(span sourcemap.Span, elem TypeExpr) *OptionalTypeExpr {
	return &OptionalTypeExpr{base: b.next(span), Elem: elem}
}
