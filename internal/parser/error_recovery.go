package parser

import (
	"fmt"

	"github.com/scriptumlang/scriptum/internal/lexer"
	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

func (p *Parser) errorf(kind ErrorKind, span sourcemap.Span, format string, args ...any) {
	p.diags = append(p.diags, ParseError{Kind: kind, Span: span, Message: fmt.Sprintf(format, args...)})
}

// unexpected records an ErrUnexpected at the current token, naming what the
// caller wanted instead.
func (p *Parser) unexpected(want string) {
	p.errorf(ErrUnexpected, p.cur.Span, "expected %s, got %s", want, p.cur.Kind)
}

// reservedWord rejects the "de" keyword, spec.md §9(b): reserved but
// grammatically unused, rejected wherever an identifier or a statement is
// expected rather than silently accepted as a no-op.
func (p *Parser) reservedWord() {
	p.errorf(ErrUnexpected, p.cur.Span, "unused reserved word %q", p.cur.Lexeme)
}

// synchronize discards tokens until the next ';' (consumed, since it
// terminates the broken construct) or '}' (left in place, so the enclosing
// block's closing check sees it), per spec.md §4.3's error recovery.
func (p *Parser) synchronize() {
	for p.cur.Kind != lexer.EOF {
		if p.cur.Kind == lexer.SEMICOLON {
			p.advance()
			return
		}
		if p.cur.Kind == lexer.RBRACE {
			return
		}
		p.advance()
	}
}
