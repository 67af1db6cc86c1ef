package parser

import (
	"github.com/scriptumlang/scriptum/internal/ast"
	"github.com/scriptumlang/scriptum/internal/lexer"
)

// parseTypeExpr is `TypeExpr ::= TypePrimary ( "[]" | "?" )*`, applying
// array and optional postfixes left to right so `numerus[]?` parses as
// Optional(Array(numerus)).
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	t := p.parseTypePrimary()
	if t == nil {
		return nil
	}
	for {
		switch p.cur.Kind {
		case lexer.LBRACK:
			start := t.Span().Start
			p.advance()
			p.expect(lexer.RBRACK, "']'")
			t = p.b.ArrayTypeExpr(p.span(start), t)
		case lexer.QUESTION:
			start := t.Span().Start
			p.advance()
			t = p.b.OptionalTypeExpr(p.span(start), t)
		default:
			return t
		}
	}
}

// parseTypePrimary is a bare name (identifier or primitive keyword), an
// object shape, or a function signature type.
func (p *Parser) parseTypePrimary() ast.TypeExpr {
	switch p.cur.Kind {
	case lexer.IDENT, lexer.NUMERUS, lexer.TEXTUS, lexer.BOOLEANUM, lexer.VACUUM, lexer.QUODLIBET:
		tok := p.advance()
		return p.b.SimpleTypeExpr(tok.Span, p.b.Interner.Intern(tok.Lexeme))
	case lexer.STRUCTURA:
		return p.parseObjectTypeExpr()
	case lexer.LPAREN:
		return p.parseFunctionTypeExpr()
	default:
		p.unexpected("a type")
		return nil
	}
}

// parseObjectTypeExpr is `"structura" "{" (Ident ":" Type ("," Ident ":" Type)*)? "}"`.
func (p *Parser) parseObjectTypeExpr() ast.TypeExpr {
	start := p.cur.Span.Start
	p.advance() // 'structura'
	p.expect(lexer.LBRACE, "'{'")
	var fields []ast.ObjectTypeField
	if p.cur.Kind != lexer.RBRACE {
		for {
			name, _, ok := p.expectIdent()
			if !ok {
				break
			}
			p.expect(lexer.COLON, "':'")
			typ := p.parseTypeExpr()
			fields = append(fields, ast.ObjectTypeField{Name: name, Type: typ})
			if p.cur.Kind == lexer.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	p.expect(lexer.RBRACE, "'}'")
	return p.b.ObjectTypeExpr(p.span(start), fields)
}

// parseFunctionTypeExpr is `"(" (Type ("," Type)*)? ")" "->" Type`.
func (p *Parser) parseFunctionTypeExpr() ast.TypeExpr {
	start := p.cur.Span.Start
	p.advance() // '('
	var params []ast.TypeExpr
	if p.cur.Kind != lexer.RPAREN {
		for {
			params = append(params, p.parseTypeExpr())
			if p.cur.Kind == lexer.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	p.expect(lexer.RPAREN, "')'")
	p.expect(lexer.ARROW, "'->'")
	ret := p.parseTypeExpr()
	return p.b.FunctionTypeExpr(p.span(start), params, ret)
}
