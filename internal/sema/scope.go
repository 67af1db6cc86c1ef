package sema

import (
	"github.com/scriptumlang/scriptum/internal/ast"
	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

// Binding is what a Scope stores per declared name: its type, whether it
// was declared `mutabilis` (assignable) or `constans`, and where it was
// declared (for future uses such as "declared here" diagnostic notes).
type Binding struct {
	Type    Type
	Mutable bool
	Span    sourcemap.Span
}

// Scope is one lexical frame of Scriptum's scope chain. Unlike the
// teacher's SymbolTable, which normalizes keys with strings.ToLower for
// DWScript's case-insensitive identifiers, Scope keys on ast.Symbol
// directly: Scriptum's identifiers are case-sensitive by design (see
// DESIGN.md's Open Question on identifier casing).
type Scope struct {
	symbols map[ast.Symbol]*Binding
	outer   *Scope
}

// NewScope creates a scope nested inside outer (nil for the outermost,
// module-level scope).
func NewScope(outer *Scope) *Scope {
	return &Scope{symbols: make(map[ast.Symbol]*Binding), outer: outer}
}

// Define installs name in this scope's own frame. It reports false,
// without modifying the scope, if name is already bound in this same
// frame — spec.md §4.4's S110 "duplicate declaration in the same scope".
// Shadowing an outer scope's binding is always permitted, so Define does
// not consult outer.
func (s *Scope) Define(name ast.Symbol, typ Type, mutable bool, span sourcemap.Span) bool {
	if _, exists := s.symbols[name]; exists {
		return false
	}
	s.symbols[name] = &Binding{Type: typ, Mutable: mutable, Span: span}
	return true
}

// Lookup walks outward through the scope chain and returns the nearest
// enclosing binding for name.
func (s *Scope) Lookup(name ast.Symbol) (*Binding, bool) {
	for sc := s; sc != nil; sc = sc.outer {
		if b, ok := sc.symbols[name]; ok {
			return b, true
		}
	}
	return nil, false
}
