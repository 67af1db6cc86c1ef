// Package interp is Scriptum's tree-walking IR interpreter: it walks an
// *ir.Module and produces the Value main() returns, or a RuntimeError at
// the faulting IR span. Grounded on the teacher's internal/interp/value.go
// (Value{Type() string; String() string} tagged sum of concrete pointer
// types), internal/interp/environment.go (lexical frame chain), and the
// statements_control.go/statements_loops.go signal-propagation style.
package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scriptumlang/scriptum/internal/ast"
	"github.com/scriptumlang/scriptum/internal/ir"
)

// Value is any runtime value the interpreter produces or operates on,
// mirroring spec.md §4.6's tagged sum. Every concrete type uses a pointer
// receiver, matching the teacher's *IntegerValue/*StringValue/... style.
type Value interface {
	Type() string
	String() string
}

// NumerusValue is a 64-bit IEEE-754 float.
type NumerusValue struct{ Value float64 }

func (v *NumerusValue) Type() string   { return "numerus" }
func (v *NumerusValue) String() string { return strconv.FormatFloat(v.Value, 'g', -1, 64) }

// TextusValue is a UTF-8 string.
type TextusValue struct{ Value string }

func (v *TextusValue) Type() string   { return "textus" }
func (v *TextusValue) String() string { return v.Value }

// BooleanumValue is a boolean.
type BooleanumValue struct{ Value bool }

func (v *BooleanumValue) Type() string { return "booleanum" }
func (v *BooleanumValue) String() string {
	if v.Value {
		return "verum"
	}
	return "falsum"
}

// NullumValue is the singleton explicit-absence value.
type NullumValue struct{}

func (v *NullumValue) Type() string   { return "nullum" }
func (v *NullumValue) String() string { return "nullum" }

// Nullum is the single shared nullum instance: nullum carries no payload,
// so every site that needs one can share it instead of allocating.
var Nullum = &NullumValue{}

// IndefinitumValue is the singleton default/uninitialized-variant value.
type IndefinitumValue struct{}

func (v *IndefinitumValue) Type() string   { return "indefinitum" }
func (v *IndefinitumValue) String() string { return "indefinitum" }

// Indefinitum is the single shared indefinitum instance.
var Indefinitum = &IndefinitumValue{}

// ArrayValue is a mutable, reference-semantics sequence of values.
type ArrayValue struct{ Elements []Value }

func (v *ArrayValue) Type() string { return "array" }
func (v *ArrayValue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, e := range v.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// ObjectValue is a structural object backed by an ordered map: a slice of
// keys alongside a name→slot index, so member access is O(1) while
// iteration and String() preserve source field-declaration order per
// spec.md's determinism requirement.
type ObjectValue struct {
	interner *ast.Interner
	keys     []ast.Symbol
	index    map[ast.Symbol]int
	values   []Value
}

// NewObjectValue builds an ObjectValue from fields in declaration order.
func NewObjectValue(interner *ast.Interner, names []ast.Symbol, values []Value) *ObjectValue {
	o := &ObjectValue{
		interner: interner,
		keys:     make([]ast.Symbol, len(names)),
		index:    make(map[ast.Symbol]int, len(names)),
		values:   make([]Value, len(values)),
	}
	copy(o.keys, names)
	copy(o.values, values)
	for i, n := range o.keys {
		o.index[n] = i
	}
	return o
}

func (o *ObjectValue) Type() string { return "object" }

func (o *ObjectValue) String() string {
	var sb strings.Builder
	sb.WriteString("structura { ")
	for i, k := range o.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(o.interner.MustLookup(k))
		sb.WriteString(": ")
		sb.WriteString(o.values[i].String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// Get looks up a field by interned name.
func (o *ObjectValue) Get(name ast.Symbol) (Value, bool) {
	i, ok := o.index[name]
	if !ok {
		return nil, false
	}
	return o.values[i], true
}

// Set overwrites an existing field's value; it never introduces a new
// field, matching spec.md's closed object-literal shape (no dynamic field
// addition after construction).
func (o *ObjectValue) Set(name ast.Symbol, val Value) bool {
	i, ok := o.index[name]
	if !ok {
		return false
	}
	o.values[i] = val
	return true
}

// Keys returns the field names in declaration order.
func (o *ObjectValue) Keys() []ast.Symbol { return o.keys }

// FunctionValue is a Callable closure: parameters, the environment
// captured at the point the function/lambda was defined (shared by
// reference, not copied — see DESIGN.md's closure Open Question), and
// either a block body or a single expression body.
type FunctionValue struct {
	Name       string // empty for anonymous lambdas
	Params     []ir.Param
	IsExprBody bool
	ExprBody   ir.Expr
	BlockBody  []ir.Stmt
	Env        *Environment
	Interner   *ast.Interner
}

func (v *FunctionValue) Type() string { return "callable" }

func (v *FunctionValue) String() string {
	if v.Name != "" {
		return fmt.Sprintf("<functio %s>", v.Name)
	}
	return "<lambda>"
}
