// Package ast defines Scriptum's Abstract Syntax Tree: a closed sum of
// module/item/statement/expression/type-expression nodes, each carrying a
// stable NodeID and a source Span.
package ast

import "github.com/scriptumlang/scriptum/internal/sourcemap"

// NodeID is a stable, monotonically-assigned identifier for an AST node,
// unique within the module that produced it.
type NodeID int

// Node is the base interface every AST node implements: an identity and a
// source location. Unlike the teacher's single-point Pos(), Scriptum nodes
// carry a full Span, per spec.md's span-nesting invariant.
type Node interface {
	ID() NodeID
	Span() sourcemap.Span
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action without itself producing a value.
type Stmt interface {
	Node
	stmtNode()
}

// Item is a top-level declaration: a function or a global variable.
type Item interface {
	Node
	itemNode()
}

// base is embedded by every concrete node to provide ID()/Span() without
// repeating the same two fields and methods on every node type.
type base struct {
	id   NodeID
	span sourcemap.Span
}

func (b base) ID() NodeID           { return b.id }
func (b base) Span() sourcemap.Span { return b.span }

// Module is the AST root: an ordered sequence of top-level items, plus the
// interner that owns every identifier string referenced in the tree.
type Module struct {
	base
	Items    []Item
	Interner *Interner
}

// Parameter is {symbol, optional type, optional default expression}.
type Parameter struct {
	base
	Name    Symbol
	Type    TypeExpr // nil if unannotated
	Default Expr     // nil if no default
}
