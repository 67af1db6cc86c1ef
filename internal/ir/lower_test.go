package ir

import (
	"testing"

	"github.com/kr/pretty"

	"github.com/scriptumlang/scriptum/internal/lexer"
	"github.com/scriptumlang/scriptum/internal/parser"
	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

func lower(t *testing.T, src string) *Module {
	t.Helper()
	l := lexer.New(sourcemap.New(0, "t.stm", []byte(src)))
	out := parser.Parse(l)
	if len(out.Diagnostics) != 0 {
		t.Fatalf("unexpected parse diagnostics: %# v", pretty.Formatter(out.Diagnostics))
	}
	return Lower(out.Module)
}

func TestLowerIfMaterializesEmptyElseVector(t *testing.T) {
	m := lower(t, `functio main() -> numerus { si 1 > 0 { redde 1; } redde 0; }`)
	fn := m.Items[0].(*Function)
	ifStmt := fn.Body[0].(*If)
	if ifStmt.Then == nil || len(ifStmt.Then) != 1 {
		t.Fatalf("Then should be a one-element vector, got %+v", ifStmt.Then)
	}
	if ifStmt.Else == nil {
		t.Fatal("Else must be an empty vector, not nil, when there is no 'aliter'")
	}
	if len(ifStmt.Else) != 0 {
		t.Fatalf("got %d else statements, want 0", len(ifStmt.Else))
	}
}

func TestLowerWhileMaterializesBodyVector(t *testing.T) {
	m := lower(t, `functio main() -> numerus {
		mutabilis i: numerus = 0;
		dum i < 3 { i = i + 1; }
		redde i;
	}`)
	fn := m.Items[0].(*Function)
	while := fn.Body[1].(*While)
	if len(while.Body) != 1 {
		t.Fatalf("got %d while-body statements, want 1", len(while.Body))
	}
}

func TestLowerForInMaterializesForTarget(t *testing.T) {
	m := lower(t, `functio main() -> numerus {
		pro y in [1, 2, 3] { redde y; }
		redde 0;
	}`)
	fn := m.Items[0].(*Function)
	forIn := fn.Body[0].(*ForIn)
	if !forIn.Target.Mutable {
		t.Fatal("for-in target should be mutable per the IR shape contract")
	}
	if len(forIn.Body) != 1 {
		t.Fatalf("got %d for-in body statements, want 1", len(forIn.Body))
	}
}

func TestLowerNumberLitRetainsRawLexeme(t *testing.T) {
	m := lower(t, `functio main() -> numerus { redde 1_000; }`)
	fn := m.Items[0].(*Function)
	ret := fn.Body[0].(*Return)
	num := ret.Value.(*NumberLit)
	if num.Raw != "1_000" {
		t.Fatalf("got raw %q, want %q", num.Raw, "1_000")
	}
	if num.Value != 1000 {
		t.Fatalf("got decoded value %v, want 1000", num.Value)
	}
}

func TestLowerLambdaExprBodyVsBlockBody(t *testing.T) {
	m := lower(t, `functio main() -> quodlibet {
		mutabilis f: quodlibet = functio (x: numerus) -> numerus => x + 1;
		mutabilis g: quodlibet = functio (x: numerus) -> numerus { redde x + 1; };
		redde 0;
	}`)
	fn := m.Items[0].(*Function)
	f := fn.Body[0].(*LocalVar)
	lam := f.Init.(*Lambda)
	if !lam.IsExprBody || lam.ExprBody == nil || lam.BlockBody != nil {
		t.Fatal("expression-bodied lambda should set IsExprBody and ExprBody only")
	}
	g := fn.Body[1].(*LocalVar)
	lam2 := g.Init.(*Lambda)
	if lam2.IsExprBody || lam2.BlockBody == nil || lam2.ExprBody != nil {
		t.Fatal("block-bodied lambda should clear IsExprBody and set BlockBody only")
	}
}

func TestLowerObjectLiteralPreservesFieldOrder(t *testing.T) {
	m := lower(t, `functio main() -> quodlibet { redde structura { a: 1, b: 2 }; }`)
	fn := m.Items[0].(*Function)
	ret := fn.Body[0].(*Return)
	obj := ret.Value.(*ObjectLit)
	if len(obj.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(obj.Fields))
	}
	names := []string{"a", "b"}
	for i, want := range names {
		got := m.Interner.MustLookup(obj.Fields[i].Name)
		if got != want {
			t.Fatalf("field %d: got %q, want %q", i, got, want)
		}
	}
}

func TestLowerGlobalVarDecl(t *testing.T) {
	m := lower(t, `constans pi: numerus = 3;
		functio main() -> numerus { redde pi; }
	`)
	gv := m.Items[0].(*GlobalVar)
	if gv.Mutable {
		t.Fatal("'constans' global should lower with Mutable == false")
	}
	if gv.Init == nil {
		t.Fatal("global initializer should not be nil")
	}
}
