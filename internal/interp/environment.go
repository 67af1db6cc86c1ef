package interp

import "github.com/scriptumlang/scriptum/internal/ast"

// Environment is a lexical frame: a symbol→value store plus a parent
// pointer, the same two-field shape as the teacher's
// internal/interp/runtime.Environment, keyed on interned ast.Symbol
// instead of a case-folded string map.
type Environment struct {
	store map[ast.Symbol]Value
	outer *Environment
}

// NewEnvironment creates a root-level environment with no outer scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[ast.Symbol]Value)}
}

// NewEnclosedEnvironment creates an environment nested inside outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[ast.Symbol]Value), outer: outer}
}

// Get resolves name by walking outward through enclosing frames.
func (e *Environment) Get(name ast.Symbol) (Value, bool) {
	if v, ok := e.store[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Define binds name in this frame, shadowing any outer binding of the same
// name. Used for parameter binding and every mutabilis/constans
// declaration, which the semantic analyzer has already confirmed is legal.
func (e *Environment) Define(name ast.Symbol, val Value) {
	e.store[name] = val
}

// Assign updates an existing binding, searching outward through enclosing
// frames, mutating the frame that owns it. Returns false if name is bound
// nowhere in the chain, which should be unreachable for an
// analyzer-approved program.
func (e *Environment) Assign(name ast.Symbol, val Value) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = val
		return true
	}
	if e.outer != nil {
		return e.outer.Assign(name, val)
	}
	return false
}
