package parser

import (
	"github.com/scriptumlang/scriptum/internal/ast"
	"github.com/scriptumlang/scriptum/internal/lexer"
)

// parseFunctionDecl is `Function ::= "functio" Ident Generics? "(" Params? ")"
// ( "->" Type )? Block`. Generics are accepted syntactically and stored raw
// on the node; spec.md's Non-goals leave them semantically unresolved.
func (p *Parser) parseFunctionDecl() ast.Item {
	start := p.cur.Span.Start
	p.advance() // 'functio'

	name, _, ok := p.expectIdent()
	if !ok {
		p.synchronize()
		return nil
	}

	generics := p.parseOptionalGenerics()

	if _, ok := p.expect(lexer.LPAREN, "'('"); !ok {
		p.synchronize()
		return nil
	}
	params := p.parseParamList()
	if _, ok := p.expect(lexer.RPAREN, "')'"); !ok {
		p.synchronize()
		return nil
	}

	var ret ast.TypeExpr
	if p.cur.Kind == lexer.ARROW {
		p.advance()
		ret = p.parseTypeExpr()
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	fn := p.b.FunctionDecl(p.span(start), name, params, ret, body)
	fn.Generics = generics
	return fn
}

// parseOptionalGenerics accepts `< Ident ("," Ident)* >` after a function
// name. Never resolved by the semantic analyzer (spec.md §1 Non-goals).
func (p *Parser) parseOptionalGenerics() []ast.Symbol {
	if p.cur.Kind != lexer.LT {
		return nil
	}
	p.advance()
	var names []ast.Symbol
	if p.cur.Kind != lexer.GT {
		for {
			if name, _, ok := p.expectIdent(); ok {
				names = append(names, name)
			}
			if p.cur.Kind == lexer.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	p.expect(lexer.GT, "'>'")
	return names
}

// parseParamList parses zero or more comma-separated parameters. Entry:
// cur is the first parameter or ')'. Exit: cur is ')'.
func (p *Parser) parseParamList() []*ast.Parameter {
	var params []*ast.Parameter
	if p.cur.Kind == lexer.RPAREN {
		return params
	}
	for {
		params = append(params, p.parseParameter())
		if p.cur.Kind == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	return params
}

// parseParameter is `Parameter ::= Ident (":" Type)? ("=" Expr)?`.
func (p *Parser) parseParameter() *ast.Parameter {
	start := p.cur.Span.Start
	name, _, _ := p.expectIdent()

	var typ ast.TypeExpr
	if p.cur.Kind == lexer.COLON {
		p.advance()
		typ = p.parseTypeExpr()
	}

	var def ast.Expr
	if p.cur.Kind == lexer.ASSIGN {
		p.advance()
		def = p.parseExpression(precAssign)
	}

	return p.b.Parameter(p.span(start), name, typ, def)
}

// parseGlobalVarDecl is `GlobalVar ::= ("mutabilis"|"constans") Ident
// ( ":" Type )? ( "=" Expr )? ";"`.
func (p *Parser) parseGlobalVarDecl() ast.Item {
	start := p.cur.Span.Start
	mutable := p.cur.Kind == lexer.MUTABILIS
	p.advance() // 'mutabilis' | 'constans'

	name, _, ok := p.expectIdent()
	if !ok {
		p.synchronize()
		return nil
	}

	var typ ast.TypeExpr
	if p.cur.Kind == lexer.COLON {
		p.advance()
		typ = p.parseTypeExpr()
	}

	var init ast.Expr
	if p.cur.Kind == lexer.ASSIGN {
		p.advance()
		init = p.parseExpression(precAssign)
	}

	p.expect(lexer.SEMICOLON, "';'")
	return p.b.GlobalVarDecl(p.span(start), name, mutable, typ, init)
}

// parseLocalVarDecl is the statement-position twin of parseGlobalVarDecl,
// used inside a Block's Declaration* list.
func (p *Parser) parseLocalVarDecl() ast.Stmt {
	start := p.cur.Span.Start
	mutable := p.cur.Kind == lexer.MUTABILIS
	p.advance() // 'mutabilis' | 'constans'

	name, _, ok := p.expectIdent()
	if !ok {
		p.synchronize()
		return nil
	}

	var typ ast.TypeExpr
	if p.cur.Kind == lexer.COLON {
		p.advance()
		typ = p.parseTypeExpr()
	}

	var init ast.Expr
	if p.cur.Kind == lexer.ASSIGN {
		p.advance()
		init = p.parseExpression(precAssign)
	}

	p.expect(lexer.SEMICOLON, "';'")
	return p.b.LocalVarDecl(p.span(start), name, mutable, typ, init)
}
