package parser

import (
	"testing"

	"github.com/kr/pretty"

	"github.com/scriptumlang/scriptum/internal/ast"
	"github.com/scriptumlang/scriptum/internal/lexer"
	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

func parse(t *testing.T, src string) ParseOutput {
	t.Helper()
	l := lexer.New(sourcemap.New(0, "t.stm", []byte(src)))
	return Parse(l)
}

func TestParseArithmeticReturn(t *testing.T) {
	out := parse(t, `functio main() -> numerus { redde 1 + 2 * 3; }`)
	if len(out.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %# v", pretty.Formatter(out.Diagnostics))
	}
	if len(out.Module.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(out.Module.Items))
	}
	fn, ok := out.Module.Items[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("item is %T, want *ast.FunctionDecl", out.Module.Items[0])
	}
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("got %d body statements, want 1", len(fn.Body.Stmts))
	}
	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ReturnStmt", fn.Body.Stmts[0])
	}
	bin, ok := ret.Value.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("return value is %T, want *ast.BinaryExpr", ret.Value)
	}
	// Precedence: "1 + 2 * 3" must group as 1 + (2 * 3), so the top-level
	// operator is '+' and its right operand is itself a BinaryExpr.
	if bin.Op != lexer.PLUS {
		t.Fatalf("top-level op is %s, want PLUS", bin.Op)
	}
	if _, ok := bin.Right.(*ast.BinaryExpr); !ok {
		t.Fatalf("right operand is %T, want *ast.BinaryExpr (2 * 3)", bin.Right)
	}
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	out := parse(t, `functio main() -> numerus { redde 2 ** 3 ** 2; }`)
	ret := out.Module.Items[0].(*ast.FunctionDecl).Body.Stmts[0].(*ast.ReturnStmt)
	top := ret.Value.(*ast.BinaryExpr)
	if _, ok := top.Left.(*ast.NumberLit); !ok {
		t.Fatalf("2 ** 3 ** 2 should group as 2 ** (3 ** 2); left is %T", top.Left)
	}
	if _, ok := top.Right.(*ast.BinaryExpr); !ok {
		t.Fatalf("2 ** 3 ** 2 should group as 2 ** (3 ** 2); right is %T", top.Right)
	}
}

func TestDanglingElseBindsToInnerIf(t *testing.T) {
	out := parse(t, `functio main() -> numerus {
		si 1 > 0 si 0 > 1 redde 1; aliter redde 2;
		redde 3;
	}`)
	if len(out.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", out.Diagnostics)
	}
	fn := out.Module.Items[0].(*ast.FunctionDecl)
	if len(fn.Body.Stmts) != 2 {
		t.Fatalf("got %d body statements, want 2", len(fn.Body.Stmts))
	}
	outer := fn.Body.Stmts[0].(*ast.IfStmt)
	if outer.Else != nil {
		t.Fatalf("outer 'si' should have no 'aliter'; got %+v", outer.Else)
	}
	inner, ok := outer.Then.(*ast.IfStmt)
	if !ok {
		t.Fatalf("outer Then is %T, want nested *ast.IfStmt", outer.Then)
	}
	if inner.Else == nil {
		t.Fatalf("inner 'si' should own the 'aliter'")
	}
}

func TestNodeIDsAreUnique(t *testing.T) {
	out := parse(t, `
		mutabilis x: numerus = 1;
		functio add(a: numerus, b: numerus) -> numerus { redde a + b; }
		functio main() -> numerus {
			mutabilis i: numerus = 0;
			dum i < 5 { i = i + 1; }
			pro y in [1, 2, 3] { redde y; }
			redde add(x, 2);
		}
	`)
	if len(out.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", out.Diagnostics)
	}
	seen := make(map[ast.NodeID]bool)
	var walk func(n ast.Node)
	count := 0
	walk = func(n ast.Node) {
		if n == nil {
			return
		}
		count++
		if seen[n.ID()] {
			t.Fatalf("duplicate NodeID %d", n.ID())
		}
		seen[n.ID()] = true
	}
	walk(out.Module)
	for _, item := range out.Module.Items {
		walk(item)
	}
	if count == 0 {
		t.Fatal("walked zero nodes")
	}
}

func TestSpanNestingWithinFunctionBody(t *testing.T) {
	out := parse(t, `functio main() -> numerus { redde 1 + 2; }`)
	fn := out.Module.Items[0].(*ast.FunctionDecl)
	if !fn.Span().Contains(fn.Body.Span()) {
		t.Fatalf("function span %+v does not contain body span %+v", fn.Span(), fn.Body.Span())
	}
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	if !fn.Body.Span().Contains(ret.Span()) {
		t.Fatalf("body span %+v does not contain return span %+v", fn.Body.Span(), ret.Span())
	}
	if !ret.Span().Contains(ret.Value.Span()) {
		t.Fatalf("return span %+v does not contain value span %+v", ret.Span(), ret.Value.Span())
	}
}

func TestParseErrorRecoveryContinuesAfterSynchronization(t *testing.T) {
	out := parse(t, `
		mutabilis x: numerus = ;
		functio main() -> numerus { redde 1; }
	`)
	if len(out.Diagnostics) == 0 {
		t.Fatal("expected at least one diagnostic for the malformed initializer")
	}
	// Recovery should still find the well-formed function after the broken
	// global declaration.
	found := false
	for _, item := range out.Module.Items {
		if fn, ok := item.(*ast.FunctionDecl); ok {
			if name, _ := out.Module.Interner.Lookup(fn.Name); name == "main" {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("parser did not recover to parse the well-formed function after the error")
	}
}

func TestParseObjectAndArrayLiteralsPreserveOrder(t *testing.T) {
	out := parse(t, `functio main() -> quodlibet {
		redde structura { a: 1, b: 2, c: [1, 2, 3] };
	}`)
	if len(out.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", out.Diagnostics)
	}
	fn := out.Module.Items[0].(*ast.FunctionDecl)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	obj := ret.Value.(*ast.ObjectLit)
	if len(obj.Fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(obj.Fields))
	}
	names := []string{"a", "b", "c"}
	for i, want := range names {
		got, _ := out.Module.Interner.Lookup(obj.Fields[i].Name)
		if got != want {
			t.Fatalf("field %d: got %q, want %q", i, got, want)
		}
	}
}

func TestParseLambdaExpressionBodyAndBlockBody(t *testing.T) {
	out := parse(t, `functio main() -> quodlibet {
		mutabilis f: quodlibet = functio (x: numerus) -> numerus => x + 1;
		mutabilis g: quodlibet = functio (x: numerus) -> numerus { redde x + 1; };
		redde 0;
	}`)
	if len(out.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", out.Diagnostics)
	}
	fn := out.Module.Items[0].(*ast.FunctionDecl)
	f := fn.Body.Stmts[0].(*ast.LocalVarDecl)
	lam := f.Init.(*ast.LambdaExpr)
	if lam.ExprBody == nil || lam.BlockBody != nil {
		t.Fatal("expression-bodied lambda should set ExprBody, not BlockBody")
	}
	g := fn.Body.Stmts[1].(*ast.LocalVarDecl)
	lam2 := g.Init.(*ast.LambdaExpr)
	if lam2.BlockBody == nil || lam2.ExprBody != nil {
		t.Fatal("block-bodied lambda should set BlockBody, not ExprBody")
	}
}

func TestReservedWordDeIsRejected(t *testing.T) {
	out := parse(t, `functio main() -> numerus { de x; }`)
	if len(out.Diagnostics) == 0 {
		t.Fatal("expected a diagnostic rejecting the reserved word 'de'")
	}
}

func TestGenericsAcceptedSyntactically(t *testing.T) {
	out := parse(t, `functio identity<T>(x: quodlibet) -> quodlibet { redde x; }`)
	if len(out.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", out.Diagnostics)
	}
	fn := out.Module.Items[0].(*ast.FunctionDecl)
	if len(fn.Generics) != 1 {
		t.Fatalf("got %d generic params, want 1", len(fn.Generics))
	}
}
