package interp

import (
	"github.com/scriptumlang/scriptum/internal/ast"
	"github.com/scriptumlang/scriptum/internal/ir"
)

func (itp *interpreter) evalIndex(x *ir.Index, env *Environment) (Value, *RuntimeError) {
	obj, err := itp.evalExpr(x.Object, env)
	if err != nil {
		return nil, err
	}
	idx, err := itp.evalExpr(x.Index, env)
	if err != nil {
		return nil, err
	}
	arr, ok := obj.(*ArrayValue)
	if !ok {
		return nil, newFault(TypeFault, x.Object.Span(), "cannot index into %s", obj.Type())
	}
	i, ok := idx.(*NumerusValue)
	if !ok {
		return nil, newFault(TypeFault, x.Index.Span(), "array index must be numerus, found %s", idx.Type())
	}
	n := int(i.Value)
	if n < 0 || n >= len(arr.Elements) {
		return nil, newFault(IndexOutOfBounds, x.Span(), "index %d out of bounds for array of length %d", n, len(arr.Elements))
	}
	return arr.Elements[n], nil
}

func (itp *interpreter) evalMember(x *ir.Member, env *Environment) (Value, *RuntimeError) {
	obj, err := itp.evalExpr(x.Object, env)
	if err != nil {
		return nil, err
	}
	o, ok := obj.(*ObjectValue)
	if !ok {
		return nil, newFault(TypeFault, x.Object.Span(), "cannot access a member of %s", obj.Type())
	}
	v, ok := o.Get(x.Name)
	if !ok {
		return nil, newFault(UnknownMember, x.Span(), "no field %q on %s", itp.interner.MustLookup(x.Name), obj.Type())
	}
	return v, nil
}

func (itp *interpreter) evalArrayLit(x *ir.ArrayLit, env *Environment) (Value, *RuntimeError) {
	elems := make([]Value, len(x.Items))
	for i, item := range x.Items {
		v, err := itp.evalExpr(item, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return &ArrayValue{Elements: elems}, nil
}

// evalObjectLit evaluates fields left-to-right and preserves declaration
// order in the resulting ObjectValue, per spec.md's determinism rule.
func (itp *interpreter) evalObjectLit(x *ir.ObjectLit, env *Environment) (Value, *RuntimeError) {
	names := make([]interface{ Symbol() }, 0) // placeholder, replaced below
	_ = names
	keys := make([]ir.ObjectField, len(x.Fields))
	copy(keys, x.Fields)
	vals := make([]Value, len(x.Fields))
	for i, f := range x.Fields {
		v, err := itp.evalExpr(f.Value, env)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	symNames := make([]ast.Symbol, len(x.Fields))
	for i, f := range x.Fields {
		symNames[i] = f.Name
	}
	return NewObjectValue(itp.interner, symNames, vals), nil
}

// valuesEqual implements == (strict false) and === (strict true).
// Numerus, textus and booleanum values are equal when both tag and payload
// match. nullum and indefinitum equal themselves, and equal each other only
// when not strict. Arrays, objects and callables compare by identity.
func valuesEqual(a, b Value, strict bool) bool {
	switch x := a.(type) {
	case *NumerusValue:
		y, ok := b.(*NumerusValue)
		return ok && x.Value == y.Value
	case *TextusValue:
		y, ok := b.(*TextusValue)
		return ok && x.Value == y.Value
	case *BooleanumValue:
		y, ok := b.(*BooleanumValue)
		return ok && x.Value == y.Value
	case *NullumValue, *IndefinitumValue:
		return a.Type() == b.Type() || (!strict && (b.Type() == "nullum" || b.Type() == "indefinitum"))
	}
	return a == b
}
