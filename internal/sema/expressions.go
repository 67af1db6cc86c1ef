package sema

import (
	"github.com/scriptumlang/scriptum/internal/ast"
	"github.com/scriptumlang/scriptum/internal/lexer"
)

// typeOfExpr computes e's type, recording any diagnostics it triggers
// along the way. It never returns a nil Type: unresolvable expressions
// fall back to quodlibet so callers can keep checking without a second
// "and what do I do with no type" branch.
func (a *Analyzer) typeOfExpr(e ast.Expr, scope *Scope) Type {
	switch x := e.(type) {
	case *ast.NumberLit:
		return Numerus()
	case *ast.TextLit:
		return Textus()
	case *ast.BoolLit:
		return Booleanum()
	case *ast.NullumLit:
		return Nullum()
	case *ast.IndefinitumLit:
		return Indefinitum()
	case *ast.Ident:
		b, ok := scope.Lookup(x.Name)
		if !ok {
			a.errorf("S100", x.Span(), "undeclared identifier %q", a.interner.MustLookup(x.Name))
			return Quodlibet()
		}
		return b.Type
	case *ast.UnaryExpr:
		return a.typeOfUnary(x, scope)
	case *ast.BinaryExpr:
		return a.typeOfBinary(x, scope)
	case *ast.NullishExpr:
		return a.typeOfNullish(x, scope)
	case *ast.ConditionalExpr:
		return a.typeOfTernary(x, scope)
	case *ast.AssignExpr:
		return a.typeOfAssign(x, scope)
	case *ast.CallExpr:
		return a.typeOfCall(x, scope)
	case *ast.IndexExpr:
		return a.typeOfIndex(x, scope)
	case *ast.MemberExpr:
		return a.typeOfMember(x, scope)
	case *ast.ArrayLit:
		return a.typeOfArrayLit(x, scope)
	case *ast.ObjectLit:
		return a.typeOfObjectLit(x, scope)
	case *ast.LambdaExpr:
		return a.typeOfLambda(x, scope)
	default:
		return Quodlibet()
	}
}

func (a *Analyzer) typeOfUnary(x *ast.UnaryExpr, scope *Scope) Type {
	operand := a.typeOfExpr(x.Operand, scope)
	switch x.Op {
	case lexer.BANG:
		if !IsBoolish(operand) {
			a.errorf("T022", x.Span(), "'!' requires booleanum, found %s", operand)
		}
		return Booleanum()
	default: // PLUS, MINUS
		if !IsNumeric(operand) {
			a.errorf("T022", x.Span(), "unary sign requires numerus, found %s", operand)
		}
		return Numerus()
	}
}

func (a *Analyzer) typeOfBinary(x *ast.BinaryExpr, scope *Scope) Type {
	lt := a.typeOfExpr(x.Left, scope)
	rt := a.typeOfExpr(x.Right, scope)
	switch x.Op {
	case lexer.PLUS:
		if lt.Kind == KindTextus && rt.Kind == KindTextus {
			return Textus()
		}
		if IsNumeric(lt) && IsNumeric(rt) {
			return Numerus()
		}
		a.errorf("T012", x.Span(), "'+' requires two numerus or two textus operands, found %s and %s", lt, rt)
		return Quodlibet()
	case lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.PERCENT, lexer.STARSTAR:
		if !IsNumeric(lt) || !IsNumeric(rt) {
			a.errorf("T012", x.Span(), "arithmetic operator requires numerus operands, found %s and %s", lt, rt)
		}
		return Numerus()
	case lexer.EQ, lexer.NOTEQ, lexer.EQEQEQ, lexer.NOTEQEQ:
		return Booleanum()
	case lexer.LT, lexer.LTE, lexer.GT, lexer.GTE:
		if !IsNumeric(lt) || !IsNumeric(rt) {
			a.errorf("T013", x.Span(), "relational comparison requires numerus operands, found %s and %s", lt, rt)
		}
		return Booleanum()
	case lexer.AMPAMP, lexer.PIPEPIPE:
		if !IsBoolish(lt) || !IsBoolish(rt) {
			a.errorf("T014", x.Span(), "logical operator requires booleanum operands, found %s and %s", lt, rt)
		}
		return Booleanum()
	default:
		return Quodlibet()
	}
}

func (a *Analyzer) typeOfNullish(x *ast.NullishExpr, scope *Scope) Type {
	lt := a.typeOfExpr(x.Left, scope)
	rt := a.typeOfExpr(x.Right, scope)
	base := lt
	if lt.Kind == KindOptional {
		base = *lt.Elem
	}
	if IsAssignable(base, rt) {
		return base
	}
	if IsAssignable(rt, base) {
		return rt
	}
	return Quodlibet()
}

func (a *Analyzer) typeOfTernary(x *ast.ConditionalExpr, scope *Scope) Type {
	ct := a.typeOfExpr(x.Cond, scope)
	if !IsBoolish(ct) {
		a.errorf("T020", x.Cond.Span(), "ternary condition must be booleanum, found %s", ct)
	}
	tt := a.typeOfExpr(x.Then, scope)
	et := a.typeOfExpr(x.Else, scope)
	if Equal(tt, et) {
		return tt
	}
	if IsAssignable(tt, et) {
		return tt
	}
	if IsAssignable(et, tt) {
		return et
	}
	return Quodlibet()
}

func (a *Analyzer) typeOfAssign(x *ast.AssignExpr, scope *Scope) Type {
	vt := a.typeOfExpr(x.Value, scope)
	tt := a.typeOfExpr(x.Target, scope)

	switch target := x.Target.(type) {
	case *ast.Ident:
		if b, found := scope.Lookup(target.Name); found && !b.Mutable {
			a.errorf("S120", x.Span(), "cannot assign to %q: declared 'constans'", a.interner.MustLookup(target.Name))
		}
	case *ast.MemberExpr, *ast.IndexExpr:
		// member access and index expressions are always valid targets;
		// no identifier to check for mutability.
	default:
		// spec.md §4.4: "target must be a mutable identifier, a member
		// access, or an index expression" — anything else (a literal, a
		// parenthesized binary expression, a call result, ...) is not an
		// assignable place, and must be rejected here so it can never
		// reach the interpreter's evalAssign as an unchecked TypeFault.
		a.errorf("S130", x.Span(), "invalid assignment target: expected an identifier, member access, or index expression")
		return tt
	}
	if !IsAssignable(tt, vt) {
		a.errorf("T010", x.Span(), "cannot assign a value of type %s to a target of type %s", vt, tt)
	}
	return tt
}

func (a *Analyzer) typeOfCall(x *ast.CallExpr, scope *Scope) Type {
	ct := a.typeOfExpr(x.Callee, scope)
	args := make([]Type, len(x.Args))
	for i, arg := range x.Args {
		args[i] = a.typeOfExpr(arg, scope)
	}
	if ct.Kind == KindQuodlibet {
		return Quodlibet()
	}
	if ct.Kind != KindFunction {
		a.errorf("T040", x.Span(), "call target is %s, not a function", ct)
		return Quodlibet()
	}
	if len(args) < ct.MinArgs || len(args) > len(ct.Params) {
		if ct.MinArgs == len(ct.Params) {
			a.errorf("T041", x.Span(), "function expects %d argument(s), got %d", len(ct.Params), len(args))
		} else {
			a.errorf("T041", x.Span(), "function expects between %d and %d argument(s), got %d", ct.MinArgs, len(ct.Params), len(args))
		}
		return *ct.Ret
	}
	for i, arg := range args {
		if !IsAssignable(ct.Params[i], arg) {
			a.errorf("T041", x.Args[i].Span(), "argument %d has type %s, want %s", i+1, arg, ct.Params[i])
		}
	}
	return *ct.Ret
}

func (a *Analyzer) typeOfIndex(x *ast.IndexExpr, scope *Scope) Type {
	ot := a.typeOfExpr(x.Object, scope)
	it := a.typeOfExpr(x.Index, scope)
	if !IsNumeric(it) {
		a.errorf("T015", x.Index.Span(), "array index must be numerus, found %s", it)
	}
	switch ot.Kind {
	case KindArray:
		return *ot.Elem
	case KindQuodlibet:
		return Quodlibet()
	default:
		a.errorf("T015", x.Object.Span(), "cannot index into %s", ot)
		return Quodlibet()
	}
}

func (a *Analyzer) typeOfMember(x *ast.MemberExpr, scope *Scope) Type {
	ot := a.typeOfExpr(x.Object, scope)
	switch ot.Kind {
	case KindObject:
		name := a.interner.MustLookup(x.Name)
		for _, f := range ot.Fields {
			if f.Name == name {
				return f.Type
			}
		}
		a.errorf("T016", x.Span(), "no field %q on %s", name, ot)
		return Quodlibet()
	case KindQuodlibet:
		return Quodlibet()
	default:
		a.errorf("T016", x.Span(), "cannot access a member of %s", ot)
		return Quodlibet()
	}
}

func (a *Analyzer) typeOfArrayLit(x *ast.ArrayLit, scope *Scope) Type {
	if len(x.Items) == 0 {
		return ArrayOf(Quodlibet())
	}
	elem := a.typeOfExpr(x.Items[0], scope)
	for _, item := range x.Items[1:] {
		it := a.typeOfExpr(item, scope)
		if !Equal(elem, it) {
			elem = Quodlibet()
		}
	}
	return ArrayOf(elem)
}

func (a *Analyzer) typeOfObjectLit(x *ast.ObjectLit, scope *Scope) Type {
	fields := make([]ObjectField, len(x.Fields))
	for i, f := range x.Fields {
		fields[i] = ObjectField{Name: a.interner.MustLookup(f.Name), Type: a.typeOfExpr(f.Value, scope)}
	}
	return ObjectOf(fields)
}

func (a *Analyzer) typeOfLambda(x *ast.LambdaExpr, scope *Scope) Type {
	inner := NewScope(scope)
	params := make([]Type, len(x.Params))
	minArgs := len(x.Params)
	for i, p := range x.Params {
		pt := a.resolveTypeExpr(p.Type)
		params[i] = pt
		inner.Define(p.Name, pt, true, p.Span())
		if p.Default != nil && i < minArgs {
			minArgs = i
		}
	}
	ret := Vacuum()
	if x.ReturnType != nil {
		ret = a.resolveTypeExpr(x.ReturnType)
	}

	prevReturn, prevLoop := a.currentReturn, a.loopDepth
	a.currentReturn, a.loopDepth = ret, 0
	switch {
	case x.ExprBody != nil:
		bt := a.typeOfExpr(x.ExprBody, inner)
		if !IsAssignable(ret, bt) {
			a.errorf("T010", x.ExprBody.Span(), "lambda returns %s, but its body has type %s", ret, bt)
		}
	case x.BlockBody != nil:
		a.analyzeBlock(x.BlockBody, inner)
	}
	a.currentReturn, a.loopDepth = prevReturn, prevLoop

	return FunctionOfWithDefaults(params, minArgs, ret)
}
