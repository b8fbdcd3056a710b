// printer.go — parenthesized debug rendering of the AST.
//
// The output is a Lisp-style prefix form, one line per statement:
//
//	print (1 + 2) * 3;   →   (print (* (group (+ 1 2)) 3))
//
// It exists for the CLI's -a flag and for tests that assert on tree shape;
// the evaluator never consults it.
package lox

import (
	"strconv"
	"strings"
)

// FormatStmt renders one statement as a parenthesized prefix expression.
func FormatStmt(st Stmt) string {
	switch s := st.(type) {
	case *ExpressionStmt:
		return parenthesize("expr", FormatExpr(s.Expression))
	case *PrintStmt:
		return parenthesize("print", FormatExpr(s.Expression))
	case *VarStmt:
		if s.Initializer == nil {
			return parenthesize("var", s.Name.Lexeme)
		}
		return parenthesize("var", s.Name.Lexeme, FormatExpr(s.Initializer))
	case *BlockStmt:
		parts := make([]string, 0, len(s.Statements))
		for _, inner := range s.Statements {
			parts = append(parts, FormatStmt(inner))
		}
		return parenthesize("block", parts...)
	case *IfStmt:
		if s.Else == nil {
			return parenthesize("if", FormatExpr(s.Condition), FormatStmt(s.Then))
		}
		return parenthesize("if", FormatExpr(s.Condition), FormatStmt(s.Then), FormatStmt(s.Else))
	case *WhileStmt:
		return parenthesize("while", FormatExpr(s.Condition), FormatStmt(s.Body))
	case *FunctionStmt:
		params := make([]string, 0, len(s.Params))
		for _, p := range s.Params {
			params = append(params, p.Lexeme)
		}
		body := make([]string, 0, len(s.Body))
		for _, inner := range s.Body {
			body = append(body, FormatStmt(inner))
		}
		head := []string{s.Name.Lexeme, parenthesize("params", params...)}
		return parenthesize("fun", append(head, body...)...)
	}
	return "(unknown)"
}

// FormatExpr renders one expression as a parenthesized prefix expression.
func FormatExpr(e Expr) string {
	switch x := e.(type) {
	case *Literal:
		switch v := x.Value.(type) {
		case nil:
			return "nil"
		case string:
			return strconv.Quote(v)
		default:
			return Stringify(v)
		}
	case *Grouping:
		return parenthesize("group", FormatExpr(x.Expression))
	case *Unary:
		return parenthesize(x.Operator.Lexeme, FormatExpr(x.Right))
	case *Binary:
		return parenthesize(x.Operator.Lexeme, FormatExpr(x.Left), FormatExpr(x.Right))
	case *Logical:
		return parenthesize(x.Operator.Lexeme, FormatExpr(x.Left), FormatExpr(x.Right))
	case *Variable:
		return x.Name.Lexeme
	case *Assign:
		return parenthesize("=", x.Name.Lexeme, FormatExpr(x.Value))
	case *Call:
		parts := []string{FormatExpr(x.Callee)}
		for _, a := range x.Arguments {
			parts = append(parts, FormatExpr(a))
		}
		return parenthesize("call", parts...)
	case *Empty:
		return "(empty)"
	}
	return "(unknown)"
}

func parenthesize(name string, parts ...string) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, p := range parts {
		b.WriteByte(' ')
		b.WriteString(p)
	}
	b.WriteByte(')')
	return b.String()
}
