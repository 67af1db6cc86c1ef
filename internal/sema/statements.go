package sema

import "github.com/scriptumlang/scriptum/internal/ast"

// analyzeBlock pushes a fresh child scope over parent and analyzes each
// statement in turn, so a block's own locals never leak to its enclosing
// scope while still seeing everything the enclosing scope declares.
func (a *Analyzer) analyzeBlock(b *ast.Block, parent *Scope) {
	scope := NewScope(parent)
	for _, stmt := range b.Stmts {
		a.analyzeStmt(stmt, scope)
	}
}

func (a *Analyzer) analyzeStmt(s ast.Stmt, scope *Scope) {
	switch x := s.(type) {
	case *ast.Block:
		a.analyzeBlock(x, scope)
	case *ast.LocalVarDecl:
		a.declareVar(scope, x.Name, x.Mutable, x.Type, x.Init, x.Span())
	case *ast.ExprStmt:
		a.typeOfExpr(x.X, scope)
	case *ast.ReturnStmt:
		a.analyzeReturn(x, scope)
	case *ast.IfStmt:
		a.analyzeIf(x, scope)
	case *ast.WhileStmt:
		a.analyzeWhile(x, scope)
	case *ast.ForInStmt:
		a.analyzeForIn(x, scope)
	case *ast.BreakStmt:
		if a.loopDepth == 0 {
			a.errorf("T031", x.Span(), "'frange' used outside a loop")
		}
	case *ast.ContinueStmt:
		if a.loopDepth == 0 {
			a.errorf("T031", x.Span(), "'perge' used outside a loop")
		}
	}
}

func (a *Analyzer) analyzeReturn(x *ast.ReturnStmt, scope *Scope) {
	vt := Vacuum()
	if x.Value != nil {
		vt = a.typeOfExpr(x.Value, scope)
	}
	if !IsAssignable(a.currentReturn, vt) {
		a.errorf("T010", x.Span(), "function returns %s, but this statement returns %s", a.currentReturn, vt)
	}
}

func (a *Analyzer) analyzeIf(x *ast.IfStmt, scope *Scope) {
	ct := a.typeOfExpr(x.Cond, scope)
	if !IsBoolish(ct) {
		a.errorf("T020", x.Cond.Span(), "'si' condition must be booleanum, found %s", ct)
	}
	a.analyzeStmt(x.Then, scope)
	if x.Else != nil {
		a.analyzeStmt(x.Else, scope)
	}
}

func (a *Analyzer) analyzeWhile(x *ast.WhileStmt, scope *Scope) {
	ct := a.typeOfExpr(x.Cond, scope)
	if !IsBoolish(ct) {
		a.errorf("T021", x.Cond.Span(), "'dum' condition must be booleanum, found %s", ct)
	}
	a.loopDepth++
	a.analyzeStmt(x.Body, scope)
	a.loopDepth--
}

func (a *Analyzer) analyzeForIn(x *ast.ForInStmt, scope *Scope) {
	it := a.typeOfExpr(x.Iterable, scope)
	var elem Type
	switch {
	case it.Kind == KindArray:
		elem = *it.Elem
	case it.Kind == KindQuodlibet:
		elem = Quodlibet()
	default:
		a.errorf("T023", x.Iterable.Span(), "'pro ... in' requires an array, found %s", it)
		elem = Quodlibet()
	}
	inner := NewScope(scope)
	inner.Define(x.Target, elem, true, x.Span())
	a.loopDepth++
	a.analyzeStmt(x.Body, inner)
	a.loopDepth--
}
