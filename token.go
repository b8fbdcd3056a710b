package lox

// Tok is the kind of a lexical token.
type Tok int

const (
	// Single-character tokens
	LEFT_PAREN Tok = iota
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR

	// One or two character tokens
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL

	// Literals
	IDENTIFIER
	STRING
	NUMBER

	// Keywords
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE

	// Discarded by the scanner's post-pass
	WHITESPACE
	COMMENT

	// End of input
	EOF
)

var tokNames = map[Tok]string{
	LEFT_PAREN: "LEFT_PAREN", RIGHT_PAREN: "RIGHT_PAREN",
	LEFT_BRACE: "LEFT_BRACE", RIGHT_BRACE: "RIGHT_BRACE",
	COMMA: "COMMA", DOT: "DOT", MINUS: "MINUS", PLUS: "PLUS",
	SEMICOLON: "SEMICOLON", SLASH: "SLASH", STAR: "STAR",
	BANG: "BANG", BANG_EQUAL: "BANG_EQUAL",
	EQUAL: "EQUAL", EQUAL_EQUAL: "EQUAL_EQUAL",
	GREATER: "GREATER", GREATER_EQUAL: "GREATER_EQUAL",
	LESS: "LESS", LESS_EQUAL: "LESS_EQUAL",
	IDENTIFIER: "IDENTIFIER", STRING: "STRING", NUMBER: "NUMBER",
	AND: "AND", CLASS: "CLASS", ELSE: "ELSE", FALSE: "FALSE",
	FUN: "FUN", FOR: "FOR", IF: "IF", NIL: "NIL", OR: "OR",
	PRINT: "PRINT", RETURN: "RETURN", SUPER: "SUPER", THIS: "THIS",
	TRUE: "TRUE", VAR: "VAR", WHILE: "WHILE",
	WHITESPACE: "WHITESPACE", COMMENT: "COMMENT", EOF: "EOF",
}

func (t Tok) String() string {
	if s, ok := tokNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Token is one lexical token. Tokens are immutable once produced.
//
// Start, Line and Length identify the exact source span the token was read
// from; Newlines counts '\n' characters inside the lexeme (non-zero only for
// multi-line strings and whitespace runs), so consumers can keep line numbers
// accurate without rescanning the source.
type Token struct {
	Type     Tok
	Lexeme   string
	Literal  any // float64 for NUMBER, string for STRING, otherwise nil
	Start    int // byte offset of the first character
	Line     int // 1-based line of the first character
	Length   int // bytes consumed
	Newlines int
}

// keywords maps reserved identifiers to their token kinds.
var keywords = map[string]Tok{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}
