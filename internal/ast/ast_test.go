package ast

import (
	"testing"

	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

func TestInternerDedupes(t *testing.T) {
	in := NewInterner()
	a := in.Intern("foo")
	b := in.Intern("bar")
	c := in.Intern("foo")
	if a != c {
		t.Fatalf("interning %q twice gave different symbols: %d vs %d", "foo", a, c)
	}
	if a == b {
		t.Fatalf("distinct strings got the same symbol")
	}
	if s, ok := in.Lookup(a); !ok || s != "foo" {
		t.Fatalf("Lookup(%d) = (%q,%v), want (foo,true)", a, s, ok)
	}
}

func TestBuilderAssignsUniqueMonotonicIDs(t *testing.T) {
	b := NewBuilder()
	sp := sourcemap.Span{Start: 0, End: 1}
	n1 := b.NumberLit(sp, 1, "1")
	n2 := b.NumberLit(sp, 2, "2")
	if n1.ID() == n2.ID() {
		t.Fatalf("expected distinct NodeIDs, got %d and %d", n1.ID(), n2.ID())
	}
	if n2.ID() <= n1.ID() {
		t.Fatalf("expected monotonically increasing IDs, got %d then %d", n1.ID(), n2.ID())
	}
}

func TestModuleOwnsInterner(t *testing.T) {
	b := NewBuilder()
	sym := b.Interner.Intern("main")
	mod := b.Module(sourcemap.Span{Start: 0, End: 10}, nil)
	if mod.Interner != b.Interner {
		t.Fatal("Module should reference the Builder's interner")
	}
	if s, _ := mod.Interner.Lookup(sym); s != "main" {
		t.Fatalf("got %q, want main", s)
	}
}

func TestNodeSpanRoundTrips(t *testing.T) {
	b := NewBuilder()
	sp := sourcemap.Span{Start: 5, End: 9}
	id := b.Ident(sp, 0)
	if id.Span() != sp {
		t.Fatalf("got %+v, want %+v", id.Span(), sp)
	}
}
