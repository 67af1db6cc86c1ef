package lexer

// TokenKind identifies the closed set of token categories spec.md §3
// defines: identifier, keyword (sub-tagged), numeric literal, string
// literal, operator (sub-tagged), punctuator, and end-of-file. Whitespace
// and comments are scanned by hand outside the DFA; whitespace is always
// skipped, and comments are emitted as tokens only when
// WithPreserveComments is set.
type TokenKind int

const (
	ILLEGAL TokenKind = iota
	EOF
	COMMENT

	IDENT
	NUMBER
	STRING

	// Keywords, one per reserved word in spec.md §6.
	MUTABILIS
	CONSTANS
	FUNCTIO
	STRUCTURA
	SI
	ALITER
	DUM
	PRO
	IN
	DE
	REDDE
	FRANGE
	PERGE
	VERUM
	FALSUM
	NULLUM
	INDEFINITUM

	// Primitive type names, also reserved words.
	NUMERUS
	TEXTUS
	BOOLEANUM
	VACUUM
	QUODLIBET

	// Punctuators.
	LPAREN
	RPAREN
	LBRACK
	RBRACK
	LBRACE
	RBRACE
	SEMICOLON
	COMMA
	DOT
	COLON
	ARROW    // ->
	FATARROW // =>

	// Operators.
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	STARSTAR // **
	BANG
	QUESTION
	QUESTQUEST // ??
	AMPAMP     // &&
	PIPEPIPE   // ||
	ASSIGN
	EQ     // ==
	NOTEQ  // !=
	EQEQEQ // ===
	NOTEQEQ
	LT
	LTE
	GT
	GTE
	PLUSEQ
	MINUSEQ
	STAREQ
	SLASHEQ
	PERCENTEQ
)

var tokenKindNames = map[TokenKind]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF", COMMENT: "COMMENT",
	IDENT: "IDENT", NUMBER: "NUMBER", STRING: "STRING",
	MUTABILIS: "MUTABILIS", CONSTANS: "CONSTANS", FUNCTIO: "FUNCTIO",
	STRUCTURA: "STRUCTURA", SI: "SI", ALITER: "ALITER", DUM: "DUM",
	PRO: "PRO", IN: "IN", DE: "DE", REDDE: "REDDE", FRANGE: "FRANGE",
	PERGE: "PERGE", VERUM: "VERUM", FALSUM: "FALSUM", NULLUM: "NULLUM",
	INDEFINITUM: "INDEFINITUM",
	NUMERUS:     "NUMERUS", TEXTUS: "TEXTUS", BOOLEANUM: "BOOLEANUM",
	VACUUM: "VACUUM", QUODLIBET: "QUODLIBET",
	LPAREN: "LPAREN", RPAREN: "RPAREN", LBRACK: "LBRACK", RBRACK: "RBRACK",
	LBRACE: "LBRACE", RBRACE: "RBRACE", SEMICOLON: "SEMICOLON", COMMA: "COMMA",
	DOT: "DOT", COLON: "COLON", ARROW: "ARROW", FATARROW: "FATARROW",
	PLUS: "PLUS", MINUS: "MINUS", STAR: "STAR", SLASH: "SLASH",
	PERCENT: "PERCENT", STARSTAR: "STARSTAR", BANG: "BANG",
	QUESTION: "QUESTION", QUESTQUEST: "QUESTQUEST", AMPAMP: "AMPAMP",
	PIPEPIPE: "PIPEPIPE", ASSIGN: "ASSIGN", EQ: "EQ", NOTEQ: "NOTEQ",
	EQEQEQ: "EQEQEQ", NOTEQEQ: "NOTEQEQ", LT: "LT", LTE: "LTE", GT: "GT",
	GTE: "GTE", PLUSEQ: "PLUSEQ", MINUSEQ: "MINUSEQ", STAREQ: "STAREQ",
	SLASHEQ: "SLASHEQ", PERCENTEQ: "PERCENTEQ",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// keywords maps a lexeme to its reserved-word kind. NextToken consults this
// only after the DFA has already classified a lexeme as IDENT, exactly the
// keyword-reclassification step spec.md §4.2 describes.
var keywords = map[string]TokenKind{
	"mutabilis": MUTABILIS, "constans": CONSTANS, "functio": FUNCTIO,
	"structura": STRUCTURA, "si": SI, "aliter": ALITER, "dum": DUM,
	"pro": PRO, "in": IN, "de": DE, "redde": REDDE, "frange": FRANGE,
	"perge": PERGE, "verum": VERUM, "falsum": FALSUM, "nullum": NULLUM,
	"indefinitum": INDEFINITUM,
	"numerus":     NUMERUS, "textus": TEXTUS, "booleanum": BOOLEANUM,
	"vacuum": VACUUM, "quodlibet": QUODLIBET,
}

// LookupIdent reclassifies an IDENT lexeme as a keyword kind if it matches a
// reserved word, otherwise it returns IDENT unchanged.
func LookupIdent(lexeme string) TokenKind {
	if kind, ok := keywords[lexeme]; ok {
		return kind
	}
	return IDENT
}
