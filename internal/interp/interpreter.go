package interp

import (
	"math"

	"github.com/scriptumlang/scriptum/internal/ast"
	"github.com/scriptumlang/scriptum/internal/ir"
	"github.com/scriptumlang/scriptum/internal/lexer"
	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

// Run walks m and returns the value main() produces, per spec.md §4.6's
// contract: nullum if main does not explicitly redde, or the first
// RuntimeError encountered. Grounded on the teacher's top-level
// Interpreter.Run driving statements.go's executeStatement dispatch, but
// single-pass since Scriptum has no unit/program preamble to load first.
func Run(m *ir.Module) (Value, *RuntimeError) {
	itp := &interpreter{interner: m.Interner}
	genv := NewEnvironment()

	// Signatures first: every function is visible to every other function
	// and to every global initializer, mirroring the semantic analyzer's
	// signature-registration pass (see DESIGN.md).
	var mainFn *ir.Function
	for _, item := range m.Items {
		if fn, ok := item.(*ir.Function); ok {
			itp.defineFunction(genv, fn)
			if m.Interner.MustLookup(fn.Name) == "main" {
				mainFn = fn
			}
		}
	}

	for _, item := range m.Items {
		if gv, ok := item.(*ir.GlobalVar); ok {
			val, err := itp.evalOptional(gv.Init, genv)
			if err != nil {
				return nil, err
			}
			genv.Define(gv.Name, val)
		}
	}

	if mainFn == nil {
		return Nullum, nil
	}
	return itp.callFunction(&FunctionValue{
		Name:      "main",
		Params:    mainFn.Params,
		BlockBody: mainFn.Body,
		Env:       genv,
		Interner:  m.Interner,
	}, nil, mainFn.Span())
}

// interpreter carries the read-only context shared across one Run: the
// interner needed to render field/identifier names in fault messages.
type interpreter struct {
	interner *ast.Interner
}

func (itp *interpreter) defineFunction(env *Environment, fn *ir.Function) {
	env.Define(fn.Name, &FunctionValue{
		Name:      itp.interner.MustLookup(fn.Name),
		Params:    fn.Params,
		BlockBody: fn.Body,
		Env:       env,
		Interner:  itp.interner,
	})
}

// execStmts runs stmts in sequence, short-circuiting on the first non-none
// signal or error, exactly the teacher's executeBlockStatement propagation.
func (itp *interpreter) execStmts(stmts []ir.Stmt, env *Environment) (signal, *RuntimeError) {
	for _, s := range stmts {
		sig, err := itp.execStmt(s, env)
		if err != nil {
			return signalDone, err
		}
		if sig.kind != signalNone {
			return sig, nil
		}
	}
	return signalDone, nil
}

func (itp *interpreter) execStmt(s ir.Stmt, env *Environment) (signal, *RuntimeError) {
	switch x := s.(type) {
	case *ir.Block:
		return itp.execStmts(x.Stmts, NewEnclosedEnvironment(env))
	case *ir.LocalVar:
		val, err := itp.evalOptional(x.Init, env)
		if err != nil {
			return signalDone, err
		}
		env.Define(x.Name, val)
		return signalDone, nil
	case *ir.ExprStmt:
		_, err := itp.evalExpr(x.X, env)
		return signalDone, err
	case *ir.Return:
		val, err := itp.evalOptional(x.Value, env)
		if err != nil {
			return signalDone, err
		}
		return returnSignal(val), nil
	case *ir.If:
		return itp.execIf(x, env)
	case *ir.While:
		return itp.execWhile(x, env)
	case *ir.ForIn:
		return itp.execForIn(x, env)
	case *ir.Break:
		return breakSignal(), nil
	case *ir.Continue:
		return continueSignal(), nil
	default:
		panic("interp: execStmt: unknown ir.Stmt type")
	}
}

func (itp *interpreter) execIf(x *ir.If, env *Environment) (signal, *RuntimeError) {
	cond, err := itp.evalExpr(x.Cond, env)
	if err != nil {
		return signalDone, err
	}
	b, ok := cond.(*BooleanumValue)
	if !ok {
		return signalDone, newFault(TypeFault, x.Cond.Span(), "'si' condition must be booleanum, found %s", cond.Type())
	}
	branch := x.Else
	if b.Value {
		branch = x.Then
	}
	return itp.execStmts(branch, NewEnclosedEnvironment(env))
}

func (itp *interpreter) execWhile(x *ir.While, env *Environment) (signal, *RuntimeError) {
	for {
		cond, err := itp.evalExpr(x.Cond, env)
		if err != nil {
			return signalDone, err
		}
		b, ok := cond.(*BooleanumValue)
		if !ok {
			return signalDone, newFault(TypeFault, x.Cond.Span(), "'dum' condition must be booleanum, found %s", cond.Type())
		}
		if !b.Value {
			return signalDone, nil
		}
		sig, err := itp.execStmts(x.Body, NewEnclosedEnvironment(env))
		if err != nil {
			return signalDone, err
		}
		switch sig.kind {
		case signalBreak:
			return signalDone, nil
		case signalReturn:
			return sig, nil
		}
	}
}

func (itp *interpreter) execForIn(x *ir.ForIn, env *Environment) (signal, *RuntimeError) {
	iterable, err := itp.evalExpr(x.Iterable, env)
	if err != nil {
		return signalDone, err
	}
	arr, ok := iterable.(*ArrayValue)
	if !ok {
		return signalDone, newFault(TypeFault, x.Iterable.Span(), "'pro ... in' requires an array, found %s", iterable.Type())
	}
	for _, elem := range arr.Elements {
		inner := NewEnclosedEnvironment(env)
		inner.Define(x.Target.Name, elem)
		sig, err := itp.execStmts(x.Body, inner)
		if err != nil {
			return signalDone, err
		}
		switch sig.kind {
		case signalBreak:
			return signalDone, nil
		case signalReturn:
			return sig, nil
		}
	}
	return signalDone, nil
}

// evalOptional evaluates e, returning nullum for a nil e (no initializer,
// no return value).
func (itp *interpreter) evalOptional(e ir.Expr, env *Environment) (Value, *RuntimeError) {
	if e == nil {
		return Nullum, nil
	}
	return itp.evalExpr(e, env)
}

func (itp *interpreter) evalExpr(e ir.Expr, env *Environment) (Value, *RuntimeError) {
	switch x := e.(type) {
	case *ir.NumberLit:
		return &NumerusValue{Value: x.Value}, nil
	case *ir.TextLit:
		return &TextusValue{Value: x.Value}, nil
	case *ir.BoolLit:
		return &BooleanumValue{Value: x.Value}, nil
	case *ir.NullumLit:
		return Nullum, nil
	case *ir.IndefinitumLit:
		return Indefinitum, nil
	case *ir.Ident:
		v, ok := env.Get(x.Name)
		if !ok {
			return nil, newFault(TypeFault, x.Span(), "undeclared identifier %q", itp.interner.MustLookup(x.Name))
		}
		return v, nil
	case *ir.Unary:
		return itp.evalUnary(x, env)
	case *ir.Binary:
		return itp.evalBinary(x, env)
	case *ir.Nullish:
		return itp.evalNullish(x, env)
	case *ir.Conditional:
		return itp.evalConditional(x, env)
	case *ir.Assign:
		return itp.evalAssign(x, env)
	case *ir.Call:
		return itp.evalCall(x, env)
	case *ir.Index:
		return itp.evalIndex(x, env)
	case *ir.Member:
		return itp.evalMember(x, env)
	case *ir.ArrayLit:
		return itp.evalArrayLit(x, env)
	case *ir.ObjectLit:
		return itp.evalObjectLit(x, env)
	case *ir.Lambda:
		return &FunctionValue{
			Params:     x.Params,
			IsExprBody: x.IsExprBody,
			ExprBody:   x.ExprBody,
			BlockBody:  x.BlockBody,
			Env:        env,
			Interner:   itp.interner,
		}, nil
	default:
		panic("interp: evalExpr: unknown ir.Expr type")
	}
}

func (itp *interpreter) evalUnary(x *ir.Unary, env *Environment) (Value, *RuntimeError) {
	operand, err := itp.evalExpr(x.Operand, env)
	if err != nil {
		return nil, err
	}
	switch x.Op {
	case lexer.BANG:
		b, ok := operand.(*BooleanumValue)
		if !ok {
			return nil, newFault(TypeFault, x.Span(), "'!' requires booleanum, found %s", operand.Type())
		}
		return &BooleanumValue{Value: !b.Value}, nil
	case lexer.MINUS:
		n, ok := operand.(*NumerusValue)
		if !ok {
			return nil, newFault(TypeFault, x.Span(), "unary '-' requires numerus, found %s", operand.Type())
		}
		return &NumerusValue{Value: -n.Value}, nil
	case lexer.PLUS:
		n, ok := operand.(*NumerusValue)
		if !ok {
			return nil, newFault(TypeFault, x.Span(), "unary '+' requires numerus, found %s", operand.Type())
		}
		return &NumerusValue{Value: n.Value}, nil
	default:
		return nil, newFault(TypeFault, x.Span(), "unsupported unary operator %s", x.Op)
	}
}

// evalBinary evaluates x, short-circuiting && and || before the operands
// are both forced, exactly as spec.md's left-to-right determinism rule
// requires: the right operand must not be evaluated when the left already
// decides the result.
func (itp *interpreter) evalBinary(x *ir.Binary, env *Environment) (Value, *RuntimeError) {
	if x.Op == lexer.AMPAMP || x.Op == lexer.PIPEPIPE {
		left, err := itp.evalExpr(x.Left, env)
		if err != nil {
			return nil, err
		}
		lb, ok := left.(*BooleanumValue)
		if !ok {
			return nil, newFault(TypeFault, x.Left.Span(), "logical operator requires booleanum, found %s", left.Type())
		}
		if x.Op == lexer.AMPAMP && !lb.Value {
			return &BooleanumValue{Value: false}, nil
		}
		if x.Op == lexer.PIPEPIPE && lb.Value {
			return &BooleanumValue{Value: true}, nil
		}
		right, err := itp.evalExpr(x.Right, env)
		if err != nil {
			return nil, err
		}
		rb, ok := right.(*BooleanumValue)
		if !ok {
			return nil, newFault(TypeFault, x.Right.Span(), "logical operator requires booleanum, found %s", right.Type())
		}
		return &BooleanumValue{Value: rb.Value}, nil
	}

	left, err := itp.evalExpr(x.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := itp.evalExpr(x.Right, env)
	if err != nil {
		return nil, err
	}

	switch x.Op {
	case lexer.EQ:
		return &BooleanumValue{Value: valuesEqual(left, right, false)}, nil
	case lexer.NOTEQ:
		return &BooleanumValue{Value: !valuesEqual(left, right, false)}, nil
	case lexer.EQEQEQ:
		return &BooleanumValue{Value: valuesEqual(left, right, true)}, nil
	case lexer.NOTEQEQ:
		return &BooleanumValue{Value: !valuesEqual(left, right, true)}, nil
	}

	if x.Op == lexer.PLUS {
		lt, lok := left.(*TextusValue)
		rt, rok := right.(*TextusValue)
		if lok && rok {
			return &TextusValue{Value: lt.Value + rt.Value}, nil
		}
	}

	ln, lok := left.(*NumerusValue)
	rn, rok := right.(*NumerusValue)
	if !lok || !rok {
		return nil, newFault(TypeFault, x.Span(), "operator %s requires numerus operands, found %s and %s", x.Op, left.Type(), right.Type())
	}

	switch x.Op {
	case lexer.PLUS:
		return &NumerusValue{Value: ln.Value + rn.Value}, nil
	case lexer.MINUS:
		return &NumerusValue{Value: ln.Value - rn.Value}, nil
	case lexer.STAR:
		return &NumerusValue{Value: ln.Value * rn.Value}, nil
	case lexer.SLASH:
		// IEEE-754 division naturally yields ±Inf/NaN on division by zero,
		// per spec.md §4.6 — no special-casing needed.
		return &NumerusValue{Value: ln.Value / rn.Value}, nil
	case lexer.PERCENT:
		return &NumerusValue{Value: math.Mod(ln.Value, rn.Value)}, nil
	case lexer.STARSTAR:
		return &NumerusValue{Value: math.Pow(ln.Value, rn.Value)}, nil
	case lexer.LT:
		return &BooleanumValue{Value: ln.Value < rn.Value}, nil
	case lexer.LTE:
		return &BooleanumValue{Value: ln.Value <= rn.Value}, nil
	case lexer.GT:
		return &BooleanumValue{Value: ln.Value > rn.Value}, nil
	case lexer.GTE:
		return &BooleanumValue{Value: ln.Value >= rn.Value}, nil
	default:
		return nil, newFault(TypeFault, x.Span(), "unsupported binary operator %s", x.Op)
	}
}

// evalNullish implements `??`: evaluate left; if nullum or indefinitum,
// evaluate and return right instead.
func (itp *interpreter) evalNullish(x *ir.Nullish, env *Environment) (Value, *RuntimeError) {
	left, err := itp.evalExpr(x.Left, env)
	if err != nil {
		return nil, err
	}
	switch left.(type) {
	case *NullumValue, *IndefinitumValue:
		return itp.evalExpr(x.Right, env)
	default:
		return left, nil
	}
}

func (itp *interpreter) evalConditional(x *ir.Conditional, env *Environment) (Value, *RuntimeError) {
	cond, err := itp.evalExpr(x.Cond, env)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(*BooleanumValue)
	if !ok {
		return nil, newFault(TypeFault, x.Cond.Span(), "'?:' condition must be booleanum, found %s", cond.Type())
	}
	if b.Value {
		return itp.evalExpr(x.Then, env)
	}
	return itp.evalExpr(x.Else, env)
}

// evalAssign evaluates value, then writes it to target, which must be an
// identifier, index, or member expression — the semantic analyzer has
// already rejected any other assignment target.
func (itp *interpreter) evalAssign(x *ir.Assign, env *Environment) (Value, *RuntimeError) {
	val, err := itp.evalExpr(x.Value, env)
	if err != nil {
		return nil, err
	}
	switch target := x.Target.(type) {
	case *ir.Ident:
		if !env.Assign(target.Name, val) {
			return nil, newFault(TypeFault, x.Span(), "undeclared identifier %q", itp.interner.MustLookup(target.Name))
		}
		return val, nil
	case *ir.Index:
		obj, err := itp.evalExpr(target.Object, env)
		if err != nil {
			return nil, err
		}
		idx, err := itp.evalExpr(target.Index, env)
		if err != nil {
			return nil, err
		}
		arr, ok := obj.(*ArrayValue)
		if !ok {
			return nil, newFault(TypeFault, target.Span(), "cannot index into %s", obj.Type())
		}
		i, ok := idx.(*NumerusValue)
		if !ok {
			return nil, newFault(TypeFault, target.Index.Span(), "array index must be numerus, found %s", idx.Type())
		}
		n := int(i.Value)
		if n < 0 || n >= len(arr.Elements) {
			return nil, newFault(IndexOutOfBounds, target.Span(), "index %d out of bounds for array of length %d", n, len(arr.Elements))
		}
		arr.Elements[n] = val
		return val, nil
	case *ir.Member:
		obj, err := itp.evalExpr(target.Object, env)
		if err != nil {
			return nil, err
		}
		o, ok := obj.(*ObjectValue)
		if !ok {
			return nil, newFault(TypeFault, target.Span(), "cannot access a member of %s", obj.Type())
		}
		if !o.Set(target.Name, val) {
			return nil, newFault(UnknownMember, target.Span(), "no field %q on %s", itp.interner.MustLookup(target.Name), obj.Type())
		}
		return val, nil
	default:
		return nil, newFault(TypeFault, x.Span(), "invalid assignment target")
	}
}

func (itp *interpreter) evalCall(x *ir.Call, env *Environment) (Value, *RuntimeError) {
	callee, err := itp.evalExpr(x.Callee, env)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*FunctionValue)
	if !ok {
		return nil, newFault(TypeFault, x.Span(), "call target is %s, not callable", callee.Type())
	}
	args := make([]Value, len(x.Args))
	for i, a := range x.Args {
		v, err := itp.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return itp.callFunction(fn, args, x.Span())
}

// callFunction pushes a new frame whose parent is fn's captured
// environment — never the caller's frame — exactly spec.md §4.6's closure
// contract, and binds each parameter, falling back to its default
// expression (evaluated in the new frame, so later defaults may reference
// earlier parameters) when the caller omitted the argument.
func (itp *interpreter) callFunction(fn *FunctionValue, args []Value, callSpan sourcemap.Span) (Value, *RuntimeError) {
	if len(args) > len(fn.Params) {
		return nil, newFault(ArityMismatch, callSpan, "function expects %d argument(s), got %d", len(fn.Params), len(args))
	}
	frame := NewEnclosedEnvironment(fn.Env)
	for i, p := range fn.Params {
		if i < len(args) {
			frame.Define(p.Name, args[i])
			continue
		}
		if p.Default == nil {
			return nil, newFault(ArityMismatch, callSpan, "function expects %d argument(s), got %d", len(fn.Params), len(args))
		}
		def, err := itp.evalExpr(p.Default, frame)
		if err != nil {
			return nil, err
		}
		frame.Define(p.Name, def)
	}

	if fn.IsExprBody {
		return itp.evalExpr(fn.ExprBody, frame)
	}
	sig, err := itp.execStmts(fn.BlockBody, frame)
	if err != nil {
		return nil, err
	}
	if sig.kind == signalReturn {
		return sig.value, nil
	}
	return Nullum, nil
}
