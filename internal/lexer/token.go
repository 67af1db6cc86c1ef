package lexer

import "github.com/scriptumlang/scriptum/internal/sourcemap"

// Token is a single lexical unit: a kind, the source slice it came from,
// its span, and — for numeric and string literals — a decoded value.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Span   sourcemap.Span

	// NumberValue holds the decoded float64 for NUMBER tokens.
	NumberValue float64
	// StringValue holds the escape-decoded text for STRING tokens.
	StringValue string
}

func (t Token) String() string {
	return t.Kind.String() + " " + t.Lexeme
}
