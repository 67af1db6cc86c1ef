package diag

import (
	"strings"
	"testing"

	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

func TestFormatIncludesCaretAndCode(t *testing.T) {
	src := sourcemap.New(0, "t.stm", []byte("mutabilis x = 1;\n"))
	d := Diagnostic{
		Code:    "S100",
		Message: "undeclared identifier \"x\"",
		Span:    sourcemap.Span{Start: 10, End: 11},
		Notes:   []string{"expected numerus, found textus"},
		Sev:     Error,
	}
	out := Format(d, "t.stm", src)
	if !strings.Contains(out, "t.stm:1:11") {
		t.Errorf("missing position in output: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret in output: %q", out)
	}
	if !strings.Contains(out, "S100: undeclared identifier") {
		t.Errorf("missing code in output: %q", out)
	}
	if !strings.Contains(out, "note: expected numerus, found textus") {
		t.Errorf("missing note in output: %q", out)
	}
}

func TestHasErrors(t *testing.T) {
	warnOnly := []Diagnostic{{Sev: Warning}}
	if HasErrors(warnOnly) {
		t.Errorf("warning-only set should not report HasErrors")
	}
	withError := []Diagnostic{{Sev: Warning}, {Sev: Error}}
	if !HasErrors(withError) {
		t.Errorf("expected HasErrors true when an Error severity diagnostic is present")
	}
}
