package parser

import (
	"github.com/scriptumlang/scriptum/internal/ast"
	"github.com/scriptumlang/scriptum/internal/lexer"
)

// parseExpression is the precedence-climbing core: parse a unary operand,
// then repeatedly fold in infix operators whose left binding power is at
// least minPrec, recursing with the matched operator's right binding power
// for the operand on its right. Right-associative operators recurse with
// the same precedence they were matched at; left-associative ones recurse
// one level higher, per spec.md §4.3/§9.
func (p *Parser) parseExpression(minPrec int) ast.Expr {
	left := p.parseUnary()
	if left == nil {
		return nil
	}

loop:
	for {
		switch p.cur.Kind {
		case lexer.ASSIGN:
			if precAssign < minPrec {
				break loop
			}
			left = p.parseAssign(left)
		case lexer.QUESTION:
			if precTernary < minPrec {
				break loop
			}
			left = p.parseTernary(left)
		case lexer.QUESTQUEST:
			if precNullish < minPrec {
				break loop
			}
			p.advance()
			start := left.Span().Start
			right := p.parseExpression(precNullish + 1) // left-assoc
			left = p.b.NullishExpr(p.span(start), left, right)
		case lexer.PLUSEQ, lexer.MINUSEQ, lexer.STAREQ, lexer.SLASHEQ, lexer.PERCENTEQ:
			// The lexer tokenizes these by maximal munch, but Scriptum has no
			// compound-assignment operators; reject with a specific
			// diagnostic instead of falling through to a generic "unexpected
			// token" at the statement level.
			p.errorf(ErrUnexpected, p.cur.Span, "compound assignment is not supported; use '=' instead")
			p.advance()
			break loop
		default:
			prec, ok := binaryPrecedence[p.cur.Kind]
			if !ok || prec < minPrec {
				break loop
			}
			op := p.cur.Kind
			p.advance()
			nextMin := prec + 1
			if rightAssociative[op] {
				nextMin = prec
			}
			start := left.Span().Start
			right := p.parseExpression(nextMin)
			left = p.b.BinaryExpr(p.span(start), op, left, right)
		}
	}
	return left
}

// parseAssign handles `target = value`, right-associative (spec.md §4.3
// level 1). Whether target is a legal assignment target (identifier,
// member, or index) is a semantic question, not a parse-time restriction.
func (p *Parser) parseAssign(target ast.Expr) ast.Expr {
	start := target.Span().Start
	op := p.cur.Kind
	p.advance() // '='
	value := p.parseExpression(precAssign)
	return p.b.AssignExpr(p.span(start), op, target, value)
}

// parseTernary handles `cond ? then : else`, right-associative so that
// `a ? b : c ? d : e` groups as `a ? b : (c ? d : e)`.
func (p *Parser) parseTernary(cond ast.Expr) ast.Expr {
	start := cond.Span().Start
	p.advance() // '?'
	thenExpr := p.parseExpression(precAssign)
	p.expect(lexer.COLON, "':'")
	elseExpr := p.parseExpression(precTernary)
	return p.b.ConditionalExpr(p.span(start), cond, thenExpr, elseExpr)
}

// parseUnary handles prefix `+ - !`, right-associative (`!!x` parses as
// `!(!x)`), bottoming out in parsePostfix for everything else.
func (p *Parser) parseUnary() ast.Expr {
	switch p.cur.Kind {
	case lexer.PLUS, lexer.MINUS, lexer.BANG:
		start := p.cur.Span.Start
		op := p.cur.Kind
		p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return p.b.UnaryExpr(p.span(start), op, operand)
	default:
		return p.parsePostfix()
	}
}

// parsePostfix handles call/index/member chaining, left-associative and
// binding tighter than everything else (spec.md §4.3 level 12).
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}
	for {
		switch p.cur.Kind {
		case lexer.LPAREN:
			expr = p.parseCall(expr)
		case lexer.LBRACK:
			expr = p.parseIndex(expr)
		case lexer.DOT:
			expr = p.parseMember(expr)
		default:
			return expr
		}
	}
}

func (p *Parser) parseCall(callee ast.Expr) ast.Expr {
	start := callee.Span().Start
	p.advance() // '('
	var args []ast.Expr
	if p.cur.Kind != lexer.RPAREN {
		for {
			arg := p.parseExpression(precAssign)
			if arg != nil {
				args = append(args, arg)
			}
			if p.cur.Kind == lexer.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	p.expect(lexer.RPAREN, "')'")
	return p.b.CallExpr(p.span(start), callee, args)
}

func (p *Parser) parseIndex(object ast.Expr) ast.Expr {
	start := object.Span().Start
	p.advance() // '['
	index := p.parseExpression(precAssign)
	p.expect(lexer.RBRACK, "']'")
	return p.b.IndexExpr(p.span(start), object, index)
}

func (p *Parser) parseMember(object ast.Expr) ast.Expr {
	start := object.Span().Start
	p.advance() // '.'
	name, _, ok := p.expectIdent()
	if !ok {
		return object
	}
	return p.b.MemberExpr(p.span(start), object, name)
}

// parsePrimary handles every primary expression form spec.md §4.3 lists:
// literals, identifiers, grouping, array/object/lambda literals.
func (p *Parser) parsePrimary() ast.Expr {
	switch p.cur.Kind {
	case lexer.NUMBER:
		tok := p.advance()
		return p.b.NumberLit(tok.Span, tok.NumberValue, tok.Lexeme)
	case lexer.STRING:
		tok := p.advance()
		return p.b.TextLit(tok.Span, tok.StringValue, tok.Lexeme)
	case lexer.VERUM:
		tok := p.advance()
		return p.b.BoolLit(tok.Span, true)
	case lexer.FALSUM:
		tok := p.advance()
		return p.b.BoolLit(tok.Span, false)
	case lexer.NULLUM:
		tok := p.advance()
		return p.b.NullumLit(tok.Span)
	case lexer.INDEFINITUM:
		tok := p.advance()
		return p.b.IndefinitumLit(tok.Span)
	case lexer.IDENT:
		tok := p.advance()
		return p.b.Ident(tok.Span, p.b.Interner.Intern(tok.Lexeme))
	case lexer.LPAREN:
		p.advance()
		expr := p.parseExpression(precAssign)
		p.expect(lexer.RPAREN, "')'")
		return expr
	case lexer.LBRACK:
		return p.parseArrayLit()
	case lexer.STRUCTURA:
		return p.parseObjectLit()
	case lexer.FUNCTIO:
		return p.parseLambda()
	case lexer.DE:
		p.reservedWord()
		p.advance()
		return nil
	default:
		p.unexpected("an expression")
		return nil
	}
}

// parseArrayLit is `"[" (Expr ("," Expr)*)? "]"`.
func (p *Parser) parseArrayLit() ast.Expr {
	start := p.cur.Span.Start
	p.advance() // '['
	var items []ast.Expr
	if p.cur.Kind != lexer.RBRACK {
		for {
			item := p.parseExpression(precAssign)
			if item != nil {
				items = append(items, item)
			}
			if p.cur.Kind == lexer.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	p.expect(lexer.RBRACK, "']'")
	return p.b.ArrayLit(p.span(start), items)
}

// parseObjectLit is `"structura" "{" (Ident ":" Expr ("," Ident ":" Expr)*)? "}"`,
// preserving field declaration order (spec.md §4.6's determinism rule).
func (p *Parser) parseObjectLit() ast.Expr {
	start := p.cur.Span.Start
	p.advance() // 'structura'
	p.expect(lexer.LBRACE, "'{'")
	var fields []ast.ObjectField
	if p.cur.Kind != lexer.RBRACE {
		for {
			name, _, ok := p.expectIdent()
			if !ok {
				break
			}
			p.expect(lexer.COLON, "':'")
			value := p.parseExpression(precAssign)
			fields = append(fields, ast.ObjectField{Name: name, Value: value})
			if p.cur.Kind == lexer.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	p.expect(lexer.RBRACE, "'}'")
	return p.b.ObjectLit(p.span(start), fields)
}

// parseLambda is `"functio" "(" Params? ")" ( "->" Type )? ( "=>" Expr | Block )`.
func (p *Parser) parseLambda() ast.Expr {
	start := p.cur.Span.Start
	p.advance() // 'functio'
	p.expect(lexer.LPAREN, "'('")
	params := p.parseParamList()
	p.expect(lexer.RPAREN, "')'")

	var ret ast.TypeExpr
	if p.cur.Kind == lexer.ARROW {
		p.advance()
		ret = p.parseTypeExpr()
	}

	if p.cur.Kind == lexer.FATARROW {
		p.advance()
		body := p.parseExpression(precAssign)
		return p.b.LambdaExpr(p.span(start), params, ret, body, nil)
	}
	block := p.parseBlock()
	return p.b.LambdaExpr(p.span(start), params, ret, nil, block)
}
