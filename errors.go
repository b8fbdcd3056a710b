// errors.go — the three error kinds surfaced by the pipeline, plus the
// caret-snippet renderer used by the CLI.
//
// Each stage has its own type: *ScannerError (fatal to the scan),
// *ParserError (recovered per statement; see synchronize in parser.go) and
// *RuntimeError (aborts the remaining statements of an Interpret call). The
// core never prints these; WrapWithSource turns one into a readable snippet
// with a caret under the offending column:
//
//	[line 3] Error at ')': Expect expression.
//
//	   2 | var x = (1 + 2
//	   3 |              );
//	     |              ^
//	   4 | print x;
package lox

import (
	"fmt"
	"strings"
)

// ScannerError reports an unexpected character or an unterminated string.
// No partial token stream is usable after one.
type ScannerError struct {
	Line    int
	Message string
}

func (e *ScannerError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// ParserError reports malformed statement or expression structure at a token.
type ParserError struct {
	Token   Token
	Message string
}

func (e *ParserError) Error() string {
	if e.Token.Type == EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Token.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}

// RuntimeError reports a type mismatch, undefined variable, bad call arity or
// a call of a non-callable value, located at the offending token.
type RuntimeError struct {
	Token   Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// WrapWithSource augments a pipeline error with a caret-annotated snippet of
// the source it came from. Other errors are returned unchanged.
func WrapWithSource(err error, src string) error {
	switch e := err.(type) {
	case *ScannerError:
		return fmt.Errorf("%s", snippet(src, e.Error(), e.Line, 1, false))
	case *ParserError:
		line, col := lineColAt(src, e.Token.Start)
		return fmt.Errorf("%s", snippet(src, e.Error(), line, col, true))
	case *RuntimeError:
		line, col := lineColAt(src, e.Token.Start)
		return fmt.Errorf("%s", snippet(src, e.Message, line, col, true))
	default:
		return err
	}
}

// lineColAt converts a byte offset into 1-based line and column numbers.
func lineColAt(src string, offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}
	line := 1 + strings.Count(src[:offset], "\n")
	lastNL := strings.LastIndex(src[:offset], "\n")
	return line, offset - lastNL // lastNL is -1 on the first line
}

// snippet renders a header, up to one line of context on either side, and
// optionally a caret under the 1-based column. Out-of-range coordinates are
// clamped so rendering never fails.
func snippet(src, header string, line, col int, caret bool) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", header)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	if caret {
		fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	}
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
