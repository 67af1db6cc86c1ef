package lexer

import (
	"testing"

	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

func collect(t *testing.T, src string, opts ...Option) []Token {
	t.Helper()
	l := New(sourcemap.New(0, "t.stm", []byte(src)), opts...)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return toks
}

func TestIdentifiersAndKeywords(t *testing.T) {
	toks := collect(t, "mutabilis x functio foo")
	want := []TokenKind{MUTABILIS, IDENT, FUNCTIO, IDENT, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	toks := collect(t, "1_000 3.14 2e10")
	if len(toks) != 4 { // 3 numbers + EOF
		t.Fatalf("got %d tokens, want 4: %+v", len(toks), toks)
	}
	if toks[0].NumberValue != 1000 {
		t.Errorf("1_000 decoded as %v, want 1000", toks[0].NumberValue)
	}
	if toks[1].NumberValue != 3.14 {
		t.Errorf("3.14 decoded as %v, want 3.14", toks[1].NumberValue)
	}
	if toks[2].NumberValue != 2e10 {
		t.Errorf("2e10 decoded as %v, want 2e10", toks[2].NumberValue)
	}
}

func TestStringLiteralWithEscapes(t *testing.T) {
	toks := collect(t, `"hello\nworld\x41\u{1F600}"`)
	if toks[0].Kind != STRING {
		t.Fatalf("got %s, want STRING", toks[0].Kind)
	}
	want := "hello\nworldA\U0001F600"
	if toks[0].StringValue != want {
		t.Errorf("got %q, want %q", toks[0].StringValue, want)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(sourcemap.New(0, "t.stm", []byte(`"abc`)))
	tok := l.NextToken()
	if tok.Kind != ILLEGAL {
		t.Fatalf("got %s, want ILLEGAL", tok.Kind)
	}
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Kind != UnterminatedString {
		t.Fatalf("got %+v, want one UnterminatedString error", errs)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	l := New(sourcemap.New(0, "t.stm", []byte("/* never closes")))
	tok := l.NextToken()
	if tok.Kind != ILLEGAL && tok.Kind != EOF {
		t.Fatalf("got %s", tok.Kind)
	}
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Kind != UnterminatedComment {
		t.Fatalf("got %+v, want one UnterminatedComment error", errs)
	}
}

func TestCommentsFilteredByDefault(t *testing.T) {
	toks := collect(t, "x // trailing comment\ny")
	want := []TokenKind{IDENT, IDENT, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %+v", toks)
	}
}

func TestPreserveComments(t *testing.T) {
	toks := collect(t, "x /* block */ y", WithPreserveComments(true))
	want := []TokenKind{IDENT, COMMENT, IDENT, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %+v", toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestOperatorsMaximalMunch(t *testing.T) {
	toks := collect(t, "a ?? b ** c === d")
	want := []TokenKind{IDENT, QUESTQUEST, IDENT, STARSTAR, IDENT, EQEQEQ, IDENT, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %+v", toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestInvalidCharRecorded(t *testing.T) {
	l := New(sourcemap.New(0, "t.stm", []byte("x # y")))
	for {
		tok := l.NextToken()
		if tok.Kind == EOF {
			break
		}
	}
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Kind != InvalidChar {
		t.Fatalf("got %+v, want one InvalidChar error", errs)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New(sourcemap.New(0, "t.stm", []byte("a b c")))
	first := l.Peek(0)
	second := l.Peek(1)
	if first.Lexeme != "a" || second.Lexeme != "b" {
		t.Fatalf("got %q, %q", first.Lexeme, second.Lexeme)
	}
	// NextToken should still return "a" first.
	if tok := l.NextToken(); tok.Lexeme != "a" {
		t.Fatalf("got %q, want a", tok.Lexeme)
	}
}

func TestSaveRestoreState(t *testing.T) {
	l := New(sourcemap.New(0, "t.stm", []byte("a b c")))
	l.NextToken() // consume "a"
	state := l.SaveState()
	l.NextToken() // consume "b"
	l.RestoreState(state)
	if tok := l.NextToken(); tok.Lexeme != "b" {
		t.Fatalf("got %q, want b after restore", tok.Lexeme)
	}
}

func TestEOFSpanIsZeroLength(t *testing.T) {
	toks := collect(t, "x")
	last := toks[len(toks)-1]
	if last.Kind != EOF || last.Span.Start != last.Span.End {
		t.Fatalf("got %+v, want zero-length EOF span", last)
	}
}

func TestMalformedNumberOutOfRange(t *testing.T) {
	l := New(sourcemap.New(0, "t.stm", []byte("1e400")))
	tok := l.NextToken()
	if tok.Kind != NUMBER {
		t.Fatalf("got %s, want NUMBER (still tokenized despite overflow)", tok.Kind)
	}
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Kind != MalformedNumber {
		t.Fatalf("got %+v, want one MalformedNumber error", errs)
	}
}
