package parser

import (
	"github.com/scriptumlang/scriptum/internal/ast"
	"github.com/scriptumlang/scriptum/internal/lexer"
)

// parseBlock is `Block ::= "{" Declaration* "}"`.
func (p *Parser) parseBlock() *ast.Block {
	start := p.cur.Span.Start
	if _, ok := p.expect(lexer.LBRACE, "'{'"); !ok {
		return nil
	}
	var stmts []ast.Stmt
	for p.cur.Kind != lexer.RBRACE && p.cur.Kind != lexer.EOF {
		before := p.cur
		stmt := p.parseDeclaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.cur == before {
			p.advance()
		}
	}
	p.expect(lexer.RBRACE, "'}'")
	return p.b.Block(p.span(start), stmts)
}

// parseDeclaration is `Declaration ::= LocalVar | Statement`.
func (p *Parser) parseDeclaration() ast.Stmt {
	switch p.cur.Kind {
	case lexer.MUTABILIS, lexer.CONSTANS:
		return p.parseLocalVarDecl()
	default:
		return p.parseStatement()
	}
}

// parseStatement is `Statement ::= ExprStmt | Return | If | While | For |
// Block | "frange" ";" | "perge" ";"`.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Kind {
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.SI:
		return p.parseIfStmt()
	case lexer.DUM:
		return p.parseWhileStmt()
	case lexer.PRO:
		return p.parseForStmt()
	case lexer.REDDE:
		return p.parseReturnStmt()
	case lexer.FRANGE:
		start := p.cur.Span.Start
		p.advance()
		p.expect(lexer.SEMICOLON, "';'")
		return p.b.BreakStmt(p.span(start))
	case lexer.PERGE:
		start := p.cur.Span.Start
		p.advance()
		p.expect(lexer.SEMICOLON, "';'")
		return p.b.ContinueStmt(p.span(start))
	case lexer.DE:
		p.reservedWord()
		p.advance()
		p.synchronize()
		return nil
	default:
		return p.parseExprStmt()
	}
}

// parseIfStmt is `If ::= "si" Expr Statement ("aliter" Statement)?`. The
// dangling `aliter` is resolved by consuming it right here, immediately
// after the nearest enclosing `si`'s Then statement returns — no
// backtracking, per spec.md §4.3's dangling-else rule.
func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.cur.Span.Start
	p.advance() // 'si'

	cond := p.parseExpression(precAssign)
	then := p.parseStatement()
	if then == nil {
		return nil
	}

	var els ast.Stmt
	if p.cur.Kind == lexer.ALITER {
		p.advance()
		els = p.parseStatement()
	}

	return p.b.IfStmt(p.span(start), cond, then, els)
}

// parseWhileStmt is `While ::= "dum" Expr Statement`.
func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.cur.Span.Start
	p.advance() // 'dum'

	cond := p.parseExpression(precAssign)
	body := p.parseStatement()
	if body == nil {
		return nil
	}
	return p.b.WhileStmt(p.span(start), cond, body)
}

// parseForStmt is `For ::= "pro" Ident "in" Expr Statement`.
func (p *Parser) parseForStmt() ast.Stmt {
	start := p.cur.Span.Start
	p.advance() // 'pro'

	target, _, ok := p.expectIdent()
	if !ok {
		p.synchronize()
		return nil
	}
	if _, ok := p.expect(lexer.IN, "'in'"); !ok {
		p.synchronize()
		return nil
	}
	iterable := p.parseExpression(precAssign)
	body := p.parseStatement()
	if body == nil {
		return nil
	}
	return p.b.ForInStmt(p.span(start), target, iterable, body)
}

// parseReturnStmt is `"redde" Expr? ";"`.
func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.cur.Span.Start
	p.advance() // 'redde'

	var value ast.Expr
	if p.cur.Kind != lexer.SEMICOLON {
		value = p.parseExpression(precAssign)
	}
	p.expect(lexer.SEMICOLON, "';'")
	return p.b.ReturnStmt(p.span(start), value)
}

// parseExprStmt wraps a bare expression evaluated for its side effects.
func (p *Parser) parseExprStmt() ast.Stmt {
	start := p.cur.Span.Start
	expr := p.parseExpression(precAssign)
	if expr == nil {
		p.synchronize()
		return nil
	}
	p.expect(lexer.SEMICOLON, "';'")
	return p.b.ExprStmt(p.span(start), expr)
}
