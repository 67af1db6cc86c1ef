// Package parser implements Scriptum's hybrid parser: recursive descent for
// top-level declarations and statements, precedence-climbing (Pratt) for
// expressions, producing a fully-spanned ast.Module with stable NodeIds.
//
// One file per syntactic concern, mirroring the teacher's layout:
// parser.go (driver/cursor), declarations.go (functio/mutabilis/constans),
// statements.go (si/dum/pro/redde/frange/perge/block), expressions.go (the
// Pratt loop), types.go (type-expression grammar), error.go +
// error_recovery.go (diagnostic accumulation and synchronization).
package parser

import (
	"github.com/scriptumlang/scriptum/internal/ast"
	"github.com/scriptumlang/scriptum/internal/lexer"
	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

// ParseOutput is the parser's full result: the best-effort Module plus
// every diagnostic accumulated along the way, per spec.md §4.3.
type ParseOutput struct {
	Module      *ast.Module
	Diagnostics []ParseError
}

// Parser walks a token stream exactly once, left to right, never
// backtracking past what error recovery discards.
type Parser struct {
	lex     *lexer.Lexer
	b       *ast.Builder
	cur     lexer.Token
	prevEnd int
	diags   []ParseError
}

// New creates a Parser over l. The first token is already buffered in cur.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{lex: l, b: ast.NewBuilder()}
	p.cur = l.NextToken()
	return p
}

// Parse tokenizes and parses source in one call, the spec.md §6 `parse`
// driver entry point.
func Parse(l *lexer.Lexer) ParseOutput {
	p := New(l)
	module := p.parseModule()
	return ParseOutput{Module: module, Diagnostics: p.diags}
}

// Errors returns every ParseError accumulated so far.
func (p *Parser) Errors() []ParseError { return p.diags }

// advance consumes and returns the current token, buffering the next one.
func (p *Parser) advance() lexer.Token {
	consumed := p.cur
	p.prevEnd = consumed.Span.End
	p.cur = p.lex.NextToken()
	return consumed
}

// peek returns the token n positions past cur without consuming anything.
func (p *Parser) peek(n int) lexer.Token { return p.lex.Peek(n) }

// span builds a Span running from start to the end of the most recently
// consumed token, the "first consumed token's start to last consumed
// token's end" rule spec.md §4.3 requires of every node.
func (p *Parser) span(start int) sourcemap.Span {
	return sourcemap.Span{Start: start, End: p.prevEnd}
}

// expect consumes cur if it matches kind, else records an ErrUnexpected
// naming want and leaves cur in place for the caller's recovery to handle.
func (p *Parser) expect(kind lexer.TokenKind, want string) (lexer.Token, bool) {
	if p.cur.Kind == kind {
		return p.advance(), true
	}
	p.unexpected(want)
	return lexer.Token{}, false
}

// expectIdent consumes an IDENT, interning its lexeme. It rejects the "de"
// reserved word explicitly (spec.md §9(b)) rather than folding it into a
// generic "expected identifier" message.
func (p *Parser) expectIdent() (ast.Symbol, sourcemap.Span, bool) {
	if p.cur.Kind == lexer.DE {
		p.reservedWord()
		p.advance()
		return 0, sourcemap.Span{}, false
	}
	if p.cur.Kind != lexer.IDENT {
		p.unexpected("an identifier")
		return 0, sourcemap.Span{}, false
	}
	tok := p.advance()
	return p.b.Interner.Intern(tok.Lexeme), tok.Span, true
}

// parseModule is the grammar's `Module ::= Item*`.
func (p *Parser) parseModule() *ast.Module {
	start := p.cur.Span.Start
	var items []ast.Item
	for p.cur.Kind != lexer.EOF {
		before := p.cur
		item := p.parseItem()
		if item != nil {
			items = append(items, item)
		}
		if p.cur == before {
			// Safety net: guarantee progress even if a production neither
			// consumed a token nor synchronized.
			p.advance()
		}
	}
	return p.b.Module(p.span(start), items)
}

// parseItem is `Item ::= Function | GlobalVar`.
func (p *Parser) parseItem() ast.Item {
	switch p.cur.Kind {
	case lexer.FUNCTIO:
		return p.parseFunctionDecl()
	case lexer.MUTABILIS, lexer.CONSTANS:
		return p.parseGlobalVarDecl()
	case lexer.DE:
		p.reservedWord()
		p.advance()
		p.synchronize()
		return nil
	default:
		p.unexpected("a top-level declaration (functio, mutabilis, or constans)")
		p.synchronize()
		return nil
	}
}
