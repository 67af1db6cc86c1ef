package sema

import (
	"fmt"

	"github.com/scriptumlang/scriptum/internal/ast"
	"github.com/scriptumlang/scriptum/internal/diag"
	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

// Analyzer walks a parsed ast.Module in three passes — grounded on the
// teacher's SymbolTable/Analyzer split between signature registration and
// per-function body analysis, generalized to spec.md §4.4's two-phase
// description:
//
//  1. register every function's signature in the module scope, so any
//     function may call any other regardless of declaration order;
//  2. declare global variables in source order, type-checking each
//     initializer against the global scope built so far;
//  3. analyze every function body against the now-complete global scope.
type Analyzer struct {
	module   *ast.Module
	interner *ast.Interner
	global   *Scope
	diags    []diag.Diagnostic

	currentReturn Type
	loopDepth     int
}

// Analyze runs all three passes over module and returns the accumulated
// diagnostics (empty, not nil, if the program is well-formed).
func Analyze(module *ast.Module) []diag.Diagnostic {
	a := &Analyzer{
		module:   module,
		interner: module.Interner,
		global:   NewScope(nil),
	}
	a.registerSignatures()
	a.declareGlobals()
	a.analyzeFunctionBodies()
	if a.diags == nil {
		return []diag.Diagnostic{}
	}
	return a.diags
}

func (a *Analyzer) errorf(code string, span sourcemap.Span, format string, args ...interface{}) {
	a.diags = append(a.diags, diag.Diagnostic{Code: code, Message: fmt.Sprintf(format, args...), Span: span, Sev: diag.Error})
}

func (a *Analyzer) functionType(fn *ast.FunctionDecl) Type {
	params := make([]Type, len(fn.Params))
	minArgs := len(fn.Params)
	for i, p := range fn.Params {
		params[i] = a.resolveTypeExpr(p.Type)
		if p.Default != nil && i < minArgs {
			minArgs = i
		}
	}
	ret := Vacuum()
	if fn.ReturnType != nil {
		ret = a.resolveTypeExpr(fn.ReturnType)
	}
	return FunctionOfWithDefaults(params, minArgs, ret)
}

func (a *Analyzer) registerSignatures() {
	for _, item := range a.module.Items {
		fn, ok := item.(*ast.FunctionDecl)
		if !ok {
			continue
		}
		if !a.global.Define(fn.Name, a.functionType(fn), false, fn.Span()) {
			a.errorf("S110", fn.Span(), "duplicate declaration of %q in this scope", a.interner.MustLookup(fn.Name))
		}
	}
}

func (a *Analyzer) declareGlobals() {
	for _, item := range a.module.Items {
		gv, ok := item.(*ast.GlobalVarDecl)
		if !ok {
			continue
		}
		a.declareVar(a.global, gv.Name, gv.Mutable, gv.Type, gv.Init, gv.Span())
	}
}

func (a *Analyzer) analyzeFunctionBodies() {
	for _, item := range a.module.Items {
		if fn, ok := item.(*ast.FunctionDecl); ok {
			a.analyzeFunction(fn)
		}
	}
}

// declareVar is the shared implementation behind global and local variable
// declarations: resolve the annotation (if any), type-check the
// initializer (if any) against it, and install the binding.
func (a *Analyzer) declareVar(scope *Scope, name ast.Symbol, mutable bool, typeExpr ast.TypeExpr, init ast.Expr, span sourcemap.Span) {
	var declared Type
	annotated := typeExpr != nil
	if annotated {
		declared = a.resolveTypeExpr(typeExpr)
	}

	var initType Type
	haveInit := init != nil
	if haveInit {
		initType = a.typeOfExpr(init, scope)
	}

	switch {
	case annotated && haveInit:
		if !IsAssignable(declared, initType) {
			a.errorf("T010", init.Span(), "cannot initialize %q of type %s with a value of type %s",
				a.interner.MustLookup(name), declared, initType)
		}
	case !annotated && haveInit:
		declared = initType
	case !annotated && !haveInit:
		declared = Quodlibet()
	}

	if !scope.Define(name, declared, mutable, span) {
		a.errorf("S110", span, "duplicate declaration of %q in this scope", a.interner.MustLookup(name))
	}
}

func (a *Analyzer) analyzeFunction(fn *ast.FunctionDecl) {
	scope := NewScope(a.global)
	for _, p := range fn.Params {
		pt := a.resolveTypeExpr(p.Type)
		if p.Default != nil {
			dt := a.typeOfExpr(p.Default, scope)
			if !IsAssignable(pt, dt) {
				a.errorf("T011", p.Default.Span(), "default value for parameter %q has type %s, want %s",
					a.interner.MustLookup(p.Name), dt, pt)
			}
		}
		if !scope.Define(p.Name, pt, true, p.Span()) {
			a.errorf("S110", p.Span(), "duplicate parameter name %q", a.interner.MustLookup(p.Name))
		}
	}

	ret := Vacuum()
	if fn.ReturnType != nil {
		ret = a.resolveTypeExpr(fn.ReturnType)
	}

	prevReturn, prevLoop := a.currentReturn, a.loopDepth
	a.currentReturn, a.loopDepth = ret, 0
	a.analyzeBlock(fn.Body, scope)
	a.currentReturn, a.loopDepth = prevReturn, prevLoop
}
