// scanner_test.go
package lox

import (
	"reflect"
	"strings"
	"testing"
)

func scanToks(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := Scan(src)
	if err != nil {
		t.Fatalf("Scan(%q) error: %v", src, err)
	}
	return tokens
}

func tokTypes(tokens []Token) []Tok {
	out := make([]Tok, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []Tok) []Token {
	t.Helper()
	got := scanToks(t, src)
	gotTypes := tokTypes(got)
	want = append(want, EOF)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource: %q\nwant types: %v\ngot types:  %v", src, want, gotTypes)
	}
	return got
}

func Test_Scanner_PrintHelloWorld(t *testing.T) {
	got := scanToks(t, `print "hello world";`)
	want := []Token{
		{Type: PRINT, Lexeme: "print", Start: 0, Line: 1, Length: 5},
		{Type: STRING, Lexeme: `"hello world"`, Literal: "hello world", Start: 6, Line: 1, Length: 13},
		{Type: SEMICOLON, Lexeme: ";", Start: 19, Line: 1, Length: 1},
		{Type: EOF, Start: 20, Line: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %#v\ngot  %#v", want, got)
	}
}

func Test_Scanner_SingleCharacterTokens(t *testing.T) {
	wantTypes(t, "(){},.-+;*/", []Tok{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE,
		COMMA, DOT, MINUS, PLUS, SEMICOLON, STAR, SLASH,
	})
}

func Test_Scanner_OneOrTwoCharacterOperators(t *testing.T) {
	cases := []struct {
		src  string
		want []Tok
	}{
		{"!", []Tok{BANG}},
		{"!=", []Tok{BANG_EQUAL}},
		{"=", []Tok{EQUAL}},
		{"==", []Tok{EQUAL_EQUAL}},
		{"<", []Tok{LESS}},
		{"<=", []Tok{LESS_EQUAL}},
		{">", []Tok{GREATER}},
		{">=", []Tok{GREATER_EQUAL}},
		{"! =", []Tok{BANG, EQUAL}},
		{"===", []Tok{EQUAL_EQUAL, EQUAL}},
	}
	for _, tc := range cases {
		wantTypes(t, tc.src, tc.want)
	}
}

func Test_Scanner_NumberLiterals(t *testing.T) {
	cases := []struct {
		src   string
		value float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.14", 3.14},
		{"1234.5678", 1234.5678},
	}
	for _, tc := range cases {
		got := wantTypes(t, tc.src, []Tok{NUMBER})
		if got[0].Literal != tc.value {
			t.Fatalf("scan %q: literal = %v, want %v", tc.src, got[0].Literal, tc.value)
		}
		if got[0].Lexeme != tc.src || got[0].Length != len(tc.src) {
			t.Fatalf("scan %q: lexeme %q length %d", tc.src, got[0].Lexeme, got[0].Length)
		}
	}
}

func Test_Scanner_TrailingDotIsNotPartOfNumber(t *testing.T) {
	got := wantTypes(t, "12.", []Tok{NUMBER, DOT})
	if got[0].Literal != 12.0 {
		t.Fatalf("literal = %v, want 12", got[0].Literal)
	}
}

func Test_Scanner_StringLiteral(t *testing.T) {
	got := wantTypes(t, `"cats"`, []Tok{STRING})
	if got[0].Literal != "cats" {
		t.Fatalf("literal = %v, want cats", got[0].Literal)
	}
}

func Test_Scanner_MultiLineString(t *testing.T) {
	got := wantTypes(t, "\"hello\nworld\" 1", []Tok{STRING, NUMBER})
	str := got[0]
	if str.Literal != "hello\nworld" {
		t.Fatalf("literal = %q", str.Literal)
	}
	if str.Newlines != 1 {
		t.Fatalf("newlines = %d, want 1", str.Newlines)
	}
	if str.Line != 1 {
		t.Fatalf("string line = %d, want 1", str.Line)
	}
	// The token after the string must account for the embedded newline.
	if got[1].Line != 2 {
		t.Fatalf("number line = %d, want 2", got[1].Line)
	}
}

func Test_Scanner_StringNewlineCountMatchesContent(t *testing.T) {
	for _, body := range []string{"", "a", "a\nb", "\n\n\n", "one\ntwo\nthree"} {
		got := wantTypes(t, `"`+body+`"`, []Tok{STRING})
		if got[0].Literal != body {
			t.Fatalf("literal = %q, want %q", got[0].Literal, body)
		}
		if want := strings.Count(body, "\n"); got[0].Newlines != want {
			t.Fatalf("newlines for %q = %d, want %d", body, got[0].Newlines, want)
		}
	}
}

func Test_Scanner_KeywordsAndIdentifiers(t *testing.T) {
	cases := []struct {
		src  string
		want Tok
	}{
		{"and", AND}, {"class", CLASS}, {"else", ELSE}, {"false", FALSE},
		{"for", FOR}, {"fun", FUN}, {"if", IF}, {"nil", NIL}, {"or", OR},
		{"print", PRINT}, {"return", RETURN}, {"super", SUPER},
		{"this", THIS}, {"true", TRUE}, {"var", VAR}, {"while", WHILE},
		{"cats", IDENTIFIER}, {"printx", IDENTIFIER}, {"_under", IDENTIFIER},
		{"x1", IDENTIFIER},
	}
	for _, tc := range cases {
		wantTypes(t, tc.src, []Tok{tc.want})
	}
}

func Test_Scanner_CommentsAndWhitespaceAreFiltered(t *testing.T) {
	src := "// leading comment\nprint 1; // trailing\n"
	got := wantTypes(t, src, []Tok{PRINT, NUMBER, SEMICOLON})
	if got[0].Line != 2 {
		t.Fatalf("print line = %d, want 2", got[0].Line)
	}
}

func Test_Scanner_LineTrackingAcrossBlankLines(t *testing.T) {
	got := wantTypes(t, "1\n\n\n2", []Tok{NUMBER, NUMBER})
	if got[0].Line != 1 || got[1].Line != 4 {
		t.Fatalf("lines = %d, %d; want 1, 4", got[0].Line, got[1].Line)
	}
}

func Test_Scanner_SpanRecomputesLexeme(t *testing.T) {
	src := "var answer = 40 + 2; // comment\nprint answer;"
	for _, tok := range scanToks(t, src) {
		if tok.Type == EOF {
			continue
		}
		if got := src[tok.Start : tok.Start+tok.Length]; got != tok.Lexeme {
			t.Fatalf("span [%d:%d] = %q, want lexeme %q", tok.Start, tok.Start+tok.Length, got, tok.Lexeme)
		}
	}
}

func Test_Scanner_UnexpectedCharacter(t *testing.T) {
	_, err := Scan("var x = @;")
	se, ok := err.(*ScannerError)
	if !ok {
		t.Fatalf("error = %v, want *ScannerError", err)
	}
	if se.Line != 1 || se.Message != "Unexpected Character: @" {
		t.Fatalf("got ScannerError{%d, %q}", se.Line, se.Message)
	}
}

func Test_Scanner_UnterminatedString(t *testing.T) {
	_, err := Scan("\"one\ntwo")
	se, ok := err.(*ScannerError)
	if !ok {
		t.Fatalf("error = %v, want *ScannerError", err)
	}
	if se.Message != "unterminated string" {
		t.Fatalf("message = %q", se.Message)
	}
	if se.Line != 2 {
		t.Fatalf("line = %d, want 2", se.Line)
	}
}

func Test_Scanner_EmptySource(t *testing.T) {
	got := scanToks(t, "")
	if len(got) != 1 || got[0].Type != EOF {
		t.Fatalf("tokens = %v, want a lone EOF", got)
	}
}
