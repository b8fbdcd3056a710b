// scanner.go — lexical scanner for Lox source text.
//
// The scanner walks the source byte by byte, classifying the character at the
// cursor and consuming a maximal lexeme for it. Whitespace runs and comments
// are produced as ordinary tokens so every byte of the source is accounted
// for; ScanTokens discards them in a post-pass and appends a single EOF token.
// Line numbers advance exactly once per '\n', including newlines embedded in
// strings and whitespace runs, and each token records how many it swallowed.
package lox

import (
	"fmt"
	"strconv"
)

// Scanner scans a Lox source string into tokens.
type Scanner struct {
	src    string
	start  int // start index of the current lexeme
	cur    int // current index
	line   int // 1-based line at the cursor
	tokens []Token

	tokStartLine int
	newlines     int // '\n' seen inside the current lexeme
}

// NewScanner creates a scanner for the given source.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src, line: 1}
}

// Scan tokenizes src and returns the useful tokens (EOF appended,
// whitespace and comments removed).
func Scan(src string) ([]Token, error) {
	return NewScanner(src).ScanTokens()
}

// ScanTokens tokenizes the entire source. Whitespace and comment tokens are
// filtered out of the returned stream; the final token is always EOF.
func (s *Scanner) ScanTokens() ([]Token, error) {
	for !s.isAtEnd() {
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	out := make([]Token, 0, len(s.tokens)+1)
	for _, tok := range s.tokens {
		if isUsefulToken(tok) {
			out = append(out, tok)
		}
	}
	out = append(out, Token{Type: EOF, Start: len(s.src), Line: s.line})
	return out, nil
}

func isUsefulToken(t Token) bool {
	return t.Type != WHITESPACE && t.Type != COMMENT
}

func (s *Scanner) isAtEnd() bool { return s.cur >= len(s.src) }

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.src[s.cur]
}

func (s *Scanner) peekNext() byte {
	if s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

func (s *Scanner) advance() byte {
	ch := s.src[s.cur]
	s.cur++
	if ch == '\n' {
		s.line++
		s.newlines++
	}
	return ch
}

// match consumes the next character when it equals want.
func (s *Scanner) match(want byte) bool {
	if s.isAtEnd() || s.src[s.cur] != want {
		return false
	}
	s.cur++
	return true
}

func (s *Scanner) addToken(tt Tok, literal any) {
	s.tokens = append(s.tokens, Token{
		Type:     tt,
		Lexeme:   s.src[s.start:s.cur],
		Literal:  literal,
		Start:    s.start,
		Line:     s.tokStartLine,
		Length:   s.cur - s.start,
		Newlines: s.newlines,
	})
}

func (s *Scanner) err(format string, args ...any) error {
	return &ScannerError{Line: s.line, Message: fmt.Sprintf(format, args...)}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
func isAlphaNum(b byte) bool { return isAlpha(b) || isDigit(b) }
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// scanToken consumes one maximal lexeme starting at the cursor.
func (s *Scanner) scanToken() error {
	s.start = s.cur
	s.tokStartLine = s.line
	s.newlines = 0

	ch := s.advance()
	switch ch {
	case '(':
		s.addToken(LEFT_PAREN, nil)
	case ')':
		s.addToken(RIGHT_PAREN, nil)
	case '{':
		s.addToken(LEFT_BRACE, nil)
	case '}':
		s.addToken(RIGHT_BRACE, nil)
	case ',':
		s.addToken(COMMA, nil)
	case '.':
		s.addToken(DOT, nil)
	case '-':
		s.addToken(MINUS, nil)
	case '+':
		s.addToken(PLUS, nil)
	case ';':
		s.addToken(SEMICOLON, nil)
	case '*':
		s.addToken(STAR, nil)
	case '!':
		if s.match('=') {
			s.addToken(BANG_EQUAL, nil)
		} else {
			s.addToken(BANG, nil)
		}
	case '=':
		if s.match('=') {
			s.addToken(EQUAL_EQUAL, nil)
		} else {
			s.addToken(EQUAL, nil)
		}
	case '<':
		if s.match('=') {
			s.addToken(LESS_EQUAL, nil)
		} else {
			s.addToken(LESS, nil)
		}
	case '>':
		if s.match('=') {
			s.addToken(GREATER_EQUAL, nil)
		} else {
			s.addToken(GREATER, nil)
		}
	case '/':
		if s.match('/') {
			for !s.isAtEnd() && s.peek() != '\n' {
				s.advance()
			}
			s.addToken(COMMENT, nil)
		} else {
			s.addToken(SLASH, nil)
		}
	case '"':
		return s.scanString()
	default:
		switch {
		case isWhitespace(ch):
			s.scanWhitespace()
		case isDigit(ch):
			s.scanNumber()
		case isAlpha(ch):
			s.scanIdentifier()
		default:
			return s.err("Unexpected Character: %c", ch)
		}
	}
	return nil
}

// scanWhitespace consumes a maximal whitespace run, tracking newlines.
func (s *Scanner) scanWhitespace() {
	for !s.isAtEnd() && isWhitespace(s.peek()) {
		s.advance()
	}
	s.addToken(WHITESPACE, nil)
}

// scanString consumes a string literal; the opening quote has been consumed.
// Strings may span lines.
func (s *Scanner) scanString() error {
	for !s.isAtEnd() && s.peek() != '"' {
		s.advance()
	}
	if s.isAtEnd() {
		return s.err("unterminated string")
	}
	s.advance() // closing quote
	value := s.src[s.start+1 : s.cur-1]
	s.addToken(STRING, value)
	return nil
}

// scanNumber consumes an integer or decimal literal. A trailing dot with no
// digit after it is not part of the number. The literal value is always a
// float64.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	value, _ := strconv.ParseFloat(s.src[s.start:s.cur], 64)
	s.addToken(NUMBER, value)
}

// scanIdentifier consumes an identifier or keyword.
func (s *Scanner) scanIdentifier() {
	for isAlphaNum(s.peek()) {
		s.advance()
	}
	lexeme := s.src[s.start:s.cur]
	if tt, ok := keywords[lexeme]; ok {
		s.addToken(tt, nil)
		return
	}
	s.addToken(IDENTIFIER, nil)
}
