// errors_test.go
package lox

import (
	"strings"
	"testing"
)

func Test_ErrorStrings(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{
			&ScannerError{Line: 3, Message: "Unexpected Character: @"},
			"[line 3] Error: Unexpected Character: @",
		},
		{
			&ParserError{Token: Token{Type: SEMICOLON, Lexeme: ";", Line: 2}, Message: "Expect expression."},
			"[line 2] Error at ';': Expect expression.",
		},
		{
			&ParserError{Token: Token{Type: EOF, Line: 4}, Message: "Expect `;` after value"},
			"[line 4] Error at end: Expect `;` after value",
		},
		{
			&RuntimeError{Token: Token{Type: MINUS, Lexeme: "-", Line: 5}, Message: "Operands must be numbers."},
			"Operands must be numbers.\n[line 5]",
		},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("Error() = %q, want %q", got, tc.want)
		}
	}
}

func Test_LineColAt(t *testing.T) {
	src := "ab\ncde\n\nf"
	cases := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{5, 2, 3},
		{7, 3, 1},
		{8, 4, 1},
	}
	for _, tc := range cases {
		line, col := lineColAt(src, tc.offset)
		if line != tc.line || col != tc.col {
			t.Fatalf("lineColAt(%d) = (%d, %d), want (%d, %d)", tc.offset, line, col, tc.line, tc.col)
		}
	}
}

func Test_WrapWithSource_CaretPosition(t *testing.T) {
	src := "var x = 1;\nprint x +;\nprint 2;"
	tokens := scanToks(t, src)
	_, errs := Parse(tokens)
	if len(errs) != 0 {
		// `x +;` parses with the Empty sentinel, so force a runtime error
		// location instead.
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	// The `+` of line 2 sits at byte offset 19, column 9.
	re := &RuntimeError{
		Token:   Token{Type: PLUS, Lexeme: "+", Start: 19, Line: 2, Length: 1},
		Message: "Cannot evaluate an empty expression.",
	}
	got := WrapWithSource(re, src).Error()

	for _, wantLine := range []string{
		"Cannot evaluate an empty expression.",
		"   1 | var x = 1;",
		"   2 | print x +;",
		"     |         ^",
		"   3 | print 2;",
	} {
		if !strings.Contains(got, wantLine) {
			t.Fatalf("snippet missing %q:\n%s", wantLine, got)
		}
	}
}

func Test_WrapWithSource_PassesOtherErrorsThrough(t *testing.T) {
	err := &testError{}
	if got := WrapWithSource(err, "print 1;"); got != err {
		t.Fatalf("got %v, want the error unchanged", got)
	}
}

type testError struct{}

func (*testError) Error() string { return "unrelated" }
