package lexer

import (
	"fmt"

	"github.com/scriptumlang/scriptum/internal/automata"
	"github.com/scriptumlang/scriptum/internal/regex"
)

// patternSpec is the input contract spec.md §4.1 describes: a declarative
// token pattern with a name, regex text, and the kind it maps to once the
// DFA accepts it. Declaration order is the pattern's priority.
type patternSpec struct {
	name  string
	regex string
	kind  TokenKind
}

// scriptumPatterns enumerates every token the DFA recognizes directly:
// identifiers, numeric literals, and the fixed operator/punctuator set.
// String literals and comments are not DFA patterns — they need
// hand-written scanning to report UnterminatedString/UnterminatedComment
// with a precise opener-to-EOF span, so NextToken dispatches to readString/
// readLineComment/readBlockComment on their leading rune before ever
// consulting the table (see lexer.go).
var scriptumPatterns = []patternSpec{
	{"IDENT", "[a-zA-Z_][a-zA-Z0-9_]*", IDENT},
	{"NUMBER", "[0-9][0-9_]*(\\.[0-9][0-9_]*)?([eE][-+]?[0-9]+)?", NUMBER},

	{"ARROW", "->", ARROW},
	{"FATARROW", "=>", FATARROW},

	{"STARSTAR", "\\*\\*", STARSTAR},
	{"QUESTQUEST", "\\?\\?", QUESTQUEST},
	{"AMPAMP", "&&", AMPAMP},
	{"PIPEPIPE", "\\|\\|", PIPEPIPE},
	{"EQEQEQ", "===", EQEQEQ},
	{"NOTEQEQ", "!==", NOTEQEQ},
	{"EQ", "==", EQ},
	{"NOTEQ", "!=", NOTEQ},
	{"LTE", "<=", LTE},
	{"GTE", ">=", GTE},
	{"PLUSEQ", "\\+=", PLUSEQ},
	{"MINUSEQ", "-=", MINUSEQ},
	{"STAREQ", "\\*=", STAREQ},
	{"SLASHEQ", "/=", SLASHEQ},
	{"PERCENTEQ", "%=", PERCENTEQ},

	{"LPAREN", "\\(", LPAREN},
	{"RPAREN", "\\)", RPAREN},
	{"LBRACK", "\\[", LBRACK},
	{"RBRACK", "\\]", RBRACK},
	{"LBRACE", "\\{", LBRACE},
	{"RBRACE", "\\}", RBRACE},
	{"SEMICOLON", ";", SEMICOLON},
	{"COMMA", ",", COMMA},
	{"DOT", "\\.", DOT},
	{"COLON", ":", COLON},
	{"PLUS", "\\+", PLUS},
	{"MINUS", "-", MINUS},
	{"STAR", "\\*", STAR},
	{"SLASH", "/", SLASH},
	{"PERCENT", "%", PERCENT},
	{"BANG", "!", BANG},
	{"QUESTION", "\\?", QUESTION},
	{"LT", "<", LT},
	{"GT", ">", GT},
	{"ASSIGN", "=", ASSIGN},
}

// kindByName maps a pattern's declared name back to its TokenKind, used
// once the DFA reports which AcceptInfo entry won.
var kindByName = func() map[string]TokenKind {
	m := make(map[string]TokenKind, len(scriptumPatterns))
	for _, p := range scriptumPatterns {
		m[p.name] = p.kind
	}
	return m
}()

func buildTokenTable() *automata.Table {
	patterns := make([]automata.Pattern, len(scriptumPatterns))
	for i, p := range scriptumPatterns {
		node, err := regex.Parse(p.regex)
		if err != nil {
			panic(fmt.Sprintf("lexer: invalid built-in pattern %q (%s): %v", p.name, p.regex, err))
		}
		patterns[i] = automata.Pattern{Name: p.name, Node: node}
	}
	table, err := automata.BuildTable(patterns, automata.DefaultLimits)
	if err != nil {
		panic(fmt.Sprintf("lexer: failed to build token DFA: %v", err))
	}
	return table
}

// tokenDFA is built once per process at package init, never re-parsed at
// runtime — spec.md §4.1's "Construction is offline... runtime load cannot
// invoke it."
var tokenDFA = buildTokenTable()
