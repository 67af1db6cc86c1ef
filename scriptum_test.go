package scriptum

import (
	"testing"

	"github.com/scriptumlang/scriptum/internal/diag"
	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

func compile(t *testing.T, src string) (*sourcemap.Source, []diag.Diagnostic) {
	t.Helper()
	source := sourcemap.New(0, "t.stm", []byte(src))
	_, diags := Compile(source)
	return source, diags
}

func hasCode(diags []diag.Diagnostic, code string) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

// TestCompileArithmeticAndReturn is spec.md §8 scenario 1.
func TestCompileArithmeticAndReturn(t *testing.T) {
	src := sourcemap.New(0, "t.stm", []byte(`functio main() -> numerus { redde 1 + 2 * 3; }`))
	moduleIr, diags := Compile(src)
	if diag.HasErrors(diags) {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
	value, rtErr := Run(moduleIr)
	if rtErr != nil {
		t.Fatalf("unexpected runtime fault: %v", rtErr)
	}
	if value.String() != "7" {
		t.Fatalf("want 7, got %s", value.String())
	}
}

// TestCompileMutabilityEnforcement is spec.md §8 scenario 2.
func TestCompileMutabilityEnforcement(t *testing.T) {
	_, diags := compile(t, `
		constans x: numerus = 1;
		functio main() -> numerus { x = 2; redde x; }
	`)
	if !hasCode(diags, "S120") {
		t.Fatalf("expected S120 immutability diagnostic, got %+v", diags)
	}
}

// TestCompileTypeMismatchOnAssignment is spec.md §8 scenario 3.
func TestCompileTypeMismatchOnAssignment(t *testing.T) {
	_, diags := compile(t, `
		functio main() -> numerus {
			mutabilis n: numerus = "hello";
			redde 0;
		}
	`)
	if !hasCode(diags, "T010") {
		t.Fatalf("expected T010 type-mismatch diagnostic, got %+v", diags)
	}
}

// TestCompileDanglingElse is spec.md §8 scenario 5: the inner `si` owns the
// `aliter`, so the program returns 2.
func TestCompileDanglingElse(t *testing.T) {
	src := sourcemap.New(0, "t.stm", []byte(`
		functio main() -> numerus {
			si 1 > 0 si 0 > 1 redde 1; aliter redde 2;
			redde 3;
		}
	`))
	moduleIr, diags := Compile(src)
	if diag.HasErrors(diags) {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
	value, rtErr := Run(moduleIr)
	if rtErr != nil {
		t.Fatalf("unexpected runtime fault: %v", rtErr)
	}
	if value.String() != "2" {
		t.Fatalf("want 2, got %s", value.String())
	}
}

// TestLexInvalidCharacterRecovers is spec.md §8 scenario 6: the lexer
// reports one InvalidChar fault at '@' and still produces a token stream,
// rather than aborting tokenization outright.
func TestLexInvalidCharacterRecovers(t *testing.T) {
	src := sourcemap.New(0, "t.stm", []byte(`mutabilis @x: numerus = 10;`))
	tokens, lexErrs := Lex(src)
	if len(lexErrs) != 1 {
		t.Fatalf("want exactly one lexer error, got %d: %+v", len(lexErrs), lexErrs)
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind.String() != "EOF" {
		t.Fatalf("want a token stream ending in EOF, got %+v", tokens)
	}
}
