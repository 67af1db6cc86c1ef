package parser

import "github.com/scriptumlang/scriptum/internal/lexer"

// Precedence levels, lowest to highest, exactly spec.md §4.3's 12-level
// table collapsed to the levels the Pratt loop actually dispatches on
// (unary and postfix are handled structurally, not through this table).
const (
	precNone = iota
	precAssign    // =                 (level 1, right-assoc)
	precTernary   // ?:                (level 2, right-assoc)
	precNullish   // ??                (level 3, left-assoc)
	precOr        // ||                (level 4, left-assoc)
	precAnd       // &&                (level 5, left-assoc)
	precEquality  // == != === !==     (level 6, left-assoc)
	precRelational // < <= > >=        (level 7, left-assoc)
	precAdditive   // + -              (level 8, left-assoc)
	precMultiplicative // * / %        (level 9, left-assoc)
	precPower      // **               (level 10, right-assoc)
	precUnary      // unary + - !      (level 11, right-assoc)
	precPostfix    // () [] .          (level 12, left-assoc)
)

// binaryPrecedence maps an infix operator token to its precedence level.
// ??, ?:, and = are handled specially in parseExpression because each
// builds a distinct AST node shape; every token here becomes a
// ast.BinaryExpr with Op set to the matched token kind.
var binaryPrecedence = map[lexer.TokenKind]int{
	lexer.PIPEPIPE: precOr,
	lexer.AMPAMP:   precAnd,

	lexer.EQ:      precEquality,
	lexer.NOTEQ:   precEquality,
	lexer.EQEQEQ:  precEquality,
	lexer.NOTEQEQ: precEquality,

	lexer.LT:  precRelational,
	lexer.LTE: precRelational,
	lexer.GT:  precRelational,
	lexer.GTE: precRelational,

	lexer.PLUS:  precAdditive,
	lexer.MINUS: precAdditive,

	lexer.STAR:    precMultiplicative,
	lexer.SLASH:   precMultiplicative,
	lexer.PERCENT: precMultiplicative,

	lexer.STARSTAR: precPower,
}

// rightAssociative marks the one binary operator that groups to the right
// (`**`, spec.md §4.3's table: "level 10 | ** | right").
var rightAssociative = map[lexer.TokenKind]bool{
	lexer.STARSTAR: true,
}
