// parser.go — recursive-descent parser over the scanner's token stream.
//
// Every parsing function threads an explicit offset: it takes the token
// slice and the index to start at, and returns the node it built together
// with the index of the first unconsumed token. There is no cursor object;
// the position is part of every function's contract.
//
// Precedence ladder, lowest to highest binding:
//
//	assignment → or → and → equality → comparison → term → factor
//	           → unary → call → primary
//
// Each binary level parses the next-higher level for its left operand and,
// when one of its operators follows, recurses into the *same* level for the
// right operand. A run of same-precedence operators therefore becomes a
// right-leaning chain with one node per operator; this is a deliberate
// design choice shared by the logical and arithmetic levels.
//
// Error policy: a missing required token raises a *ParserError at the
// offending token. Parse recovers by synchronizing to the next statement
// boundary, so one malformed statement never aborts the whole parse. Inside
// expressions, a position where no expression can start yields the Empty
// sentinel without consuming anything (see ast.go).
package lox

import "errors"

// Parse consumes the token stream (terminated by EOF) and returns the
// statements it could build plus every parse error encountered along the way.
func Parse(tokens []Token) ([]Stmt, []*ParserError) {
	var stmts []Stmt
	var errs []*ParserError
	i := 0
	for get(tokens, i).Type != EOF {
		st, next, err := declaration(tokens, i)
		if err != nil {
			var pe *ParserError
			if !errors.As(err, &pe) {
				pe = &ParserError{Token: get(tokens, next), Message: err.Error()}
			}
			errs = append(errs, pe)
			i = synchronize(tokens, next)
			continue
		}
		stmts = append(stmts, st)
		i = next
	}
	return stmts, errs
}

// get returns the token at i, or the stream's final token (EOF) when i runs
// past the end.
func get(tokens []Token, i int) Token {
	if i < len(tokens) {
		return tokens[i]
	}
	if len(tokens) > 0 {
		return tokens[len(tokens)-1]
	}
	return Token{Type: EOF}
}

func check(tokens []Token, i int, tt Tok) bool {
	return get(tokens, i).Type == tt
}

// need consumes the token at i when it has the wanted type, and fails with a
// *ParserError at that token otherwise.
func need(tokens []Token, i int, tt Tok, msg string) (Token, int, error) {
	t := get(tokens, i)
	if t.Type == tt {
		return t, i + 1, nil
	}
	return t, i, &ParserError{Token: t, Message: msg}
}

// synchronize skips tokens until just past a ';' or just before a keyword
// that can start a statement.
func synchronize(tokens []Token, i int) int {
	if get(tokens, i).Type == EOF {
		return i
	}
	i++
	for get(tokens, i).Type != EOF {
		if tokens[i-1].Type == SEMICOLON {
			return i
		}
		switch get(tokens, i).Type {
		case CLASS, FUN, VAR, FOR, IF, WHILE, PRINT, RETURN:
			return i
		}
		i++
	}
	return i
}

// ───────────────────────────── statements ─────────────────────────────

func declaration(tokens []Token, i int) (Stmt, int, error) {
	switch get(tokens, i).Type {
	case VAR:
		return varDeclaration(tokens, i+1)
	case FUN:
		return function(tokens, i+1)
	default:
		return statement(tokens, i)
	}
}

func statement(tokens []Token, i int) (Stmt, int, error) {
	switch get(tokens, i).Type {
	case FOR:
		return forStatement(tokens, i+1)
	case IF:
		return ifStatement(tokens, i+1)
	case PRINT:
		return printStatement(tokens, i+1)
	case WHILE:
		return whileStatement(tokens, i+1)
	case LEFT_BRACE:
		stmts, next, err := block(tokens, i+1)
		if err != nil {
			return nil, next, err
		}
		return &BlockStmt{Statements: stmts}, next, nil
	default:
		return expressionStatement(tokens, i)
	}
}

func varDeclaration(tokens []Token, i int) (Stmt, int, error) {
	name, i, err := need(tokens, i, IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, i, err
	}
	var initializer Expr
	if check(tokens, i, EQUAL) {
		initializer, i, err = expression(tokens, i+1)
		if err != nil {
			return nil, i, err
		}
	}
	_, i, err = need(tokens, i, SEMICOLON, "Expect `;` after variable declaration")
	if err != nil {
		return nil, i, err
	}
	return &VarStmt{Name: name, Initializer: initializer}, i, nil
}

func function(tokens []Token, i int) (Stmt, int, error) {
	name, i, err := need(tokens, i, IDENTIFIER, "Expect function name.")
	if err != nil {
		return nil, i, err
	}
	_, i, err = need(tokens, i, LEFT_PAREN, "Expect `(` after function name.")
	if err != nil {
		return nil, i, err
	}
	var params []Token
	if !check(tokens, i, RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				return nil, i, &ParserError{Token: get(tokens, i), Message: "Cannot have more than 255 parameters."}
			}
			var p Token
			p, i, err = need(tokens, i, IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, i, err
			}
			params = append(params, p)
			if !check(tokens, i, COMMA) {
				break
			}
			i++
		}
	}
	_, i, err = need(tokens, i, RIGHT_PAREN, "Expect `)` after parameters")
	if err != nil {
		return nil, i, err
	}
	_, i, err = need(tokens, i, LEFT_BRACE, "Expect `{` before function body")
	if err != nil {
		return nil, i, err
	}
	body, i, err := block(tokens, i)
	if err != nil {
		return nil, i, err
	}
	return &FunctionStmt{Name: name, Params: params, Body: body}, i, nil
}

func block(tokens []Token, i int) ([]Stmt, int, error) {
	var stmts []Stmt
	for !check(tokens, i, RIGHT_BRACE) && !check(tokens, i, EOF) {
		st, next, err := declaration(tokens, i)
		if err != nil {
			return nil, next, err
		}
		stmts = append(stmts, st)
		i = next
	}
	_, i, err := need(tokens, i, RIGHT_BRACE, "Expect `}` after block.")
	if err != nil {
		return nil, i, err
	}
	return stmts, i, nil
}

func printStatement(tokens []Token, i int) (Stmt, int, error) {
	value, i, err := expression(tokens, i)
	if err != nil {
		return nil, i, err
	}
	_, i, err = need(tokens, i, SEMICOLON, "Expect `;` after value")
	if err != nil {
		return nil, i, err
	}
	return &PrintStmt{Expression: value}, i, nil
}

func expressionStatement(tokens []Token, i int) (Stmt, int, error) {
	expr, i, err := expression(tokens, i)
	if err != nil {
		return nil, i, err
	}
	_, i, err = need(tokens, i, SEMICOLON, "Expect `;` after value")
	if err != nil {
		return nil, i, err
	}
	return &ExpressionStmt{Expression: expr}, i, nil
}

func ifStatement(tokens []Token, i int) (Stmt, int, error) {
	_, i, err := need(tokens, i, LEFT_PAREN, "Expect `(` after `if`.")
	if err != nil {
		return nil, i, err
	}
	condition, i, err := expression(tokens, i)
	if err != nil {
		return nil, i, err
	}
	_, i, err = need(tokens, i, RIGHT_PAREN, "Expect `)` after condition.")
	if err != nil {
		return nil, i, err
	}
	thenBranch, i, err := statement(tokens, i)
	if err != nil {
		return nil, i, err
	}
	// `else` binds to the nearest enclosing unmatched `if`: the innermost
	// ifStatement call gets first claim on it.
	var elseBranch Stmt
	if check(tokens, i, ELSE) {
		elseBranch, i, err = statement(tokens, i+1)
		if err != nil {
			return nil, i, err
		}
	}
	return &IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}, i, nil
}

func whileStatement(tokens []Token, i int) (Stmt, int, error) {
	_, i, err := need(tokens, i, LEFT_PAREN, "Expect `(` after `while`.")
	if err != nil {
		return nil, i, err
	}
	condition, i, err := expression(tokens, i)
	if err != nil {
		return nil, i, err
	}
	_, i, err = need(tokens, i, RIGHT_PAREN, "Expect `)` after condition.")
	if err != nil {
		return nil, i, err
	}
	body, i, err := statement(tokens, i)
	if err != nil {
		return nil, i, err
	}
	return &WhileStmt{Condition: condition, Body: body}, i, nil
}

// forStatement desugars `for (init; cond; incr) body` at parse time:
//
//	{ init; while (cond) { body; incr; } }
//
// with each wrapper only added when the corresponding clause was written,
// and a missing condition replaced by literal true.
func forStatement(tokens []Token, i int) (Stmt, int, error) {
	_, i, err := need(tokens, i, LEFT_PAREN, "Expect `(` after for.")
	if err != nil {
		return nil, i, err
	}

	var initializer Stmt
	switch get(tokens, i).Type {
	case SEMICOLON:
		i++
	case VAR:
		initializer, i, err = varDeclaration(tokens, i+1)
		if err != nil {
			return nil, i, err
		}
	default:
		initializer, i, err = expressionStatement(tokens, i)
		if err != nil {
			return nil, i, err
		}
	}

	var condition Expr
	if !check(tokens, i, SEMICOLON) {
		condition, i, err = expression(tokens, i)
		if err != nil {
			return nil, i, err
		}
	}
	_, i, err = need(tokens, i, SEMICOLON, "Expect `;` after loop condition")
	if err != nil {
		return nil, i, err
	}

	var increment Expr
	if !check(tokens, i, RIGHT_PAREN) {
		increment, i, err = expression(tokens, i)
		if err != nil {
			return nil, i, err
		}
	}
	_, i, err = need(tokens, i, RIGHT_PAREN, "Expect `)` after for clauses")
	if err != nil {
		return nil, i, err
	}

	body, i, err := statement(tokens, i)
	if err != nil {
		return nil, i, err
	}

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &Literal{Value: true}
	}
	body = &WhileStmt{Condition: condition, Body: body}
	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}
	return body, i, nil
}

// ───────────────────────────── expressions ─────────────────────────────

func expression(tokens []Token, i int) (Expr, int, error) {
	return assignment(tokens, i)
}

func assignment(tokens []Token, i int) (Expr, int, error) {
	left, i, err := orExpression(tokens, i)
	if err != nil {
		return left, i, err
	}
	if !check(tokens, i, EQUAL) {
		return left, i, nil
	}
	equals := get(tokens, i)
	value, i, err := assignment(tokens, i+1) // right-associative
	if err != nil {
		return value, i, err
	}
	target, ok := left.(*Variable)
	if !ok {
		return left, i, &ParserError{Token: equals, Message: "Invalid assignment target"}
	}
	return &Assign{Name: target.Name, Value: value}, i, nil
}

func orExpression(tokens []Token, i int) (Expr, int, error) {
	left, i, err := andExpression(tokens, i)
	if err != nil || !check(tokens, i, OR) {
		return left, i, err
	}
	op := get(tokens, i)
	right, i, err := orExpression(tokens, i+1)
	if err != nil {
		return right, i, err
	}
	return &Logical{Left: left, Operator: op, Right: right}, i, nil
}

func andExpression(tokens []Token, i int) (Expr, int, error) {
	left, i, err := equality(tokens, i)
	if err != nil || !check(tokens, i, AND) {
		return left, i, err
	}
	op := get(tokens, i)
	right, i, err := andExpression(tokens, i+1)
	if err != nil {
		return right, i, err
	}
	return &Logical{Left: left, Operator: op, Right: right}, i, nil
}

func equality(tokens []Token, i int) (Expr, int, error) {
	left, i, err := comparison(tokens, i)
	if err != nil {
		return left, i, err
	}
	op := get(tokens, i)
	if op.Type != BANG_EQUAL && op.Type != EQUAL_EQUAL {
		return left, i, nil
	}
	right, i, err := equality(tokens, i+1)
	if err != nil {
		return right, i, err
	}
	return &Binary{Left: left, Operator: op, Right: right}, i, nil
}

func comparison(tokens []Token, i int) (Expr, int, error) {
	left, i, err := term(tokens, i)
	if err != nil {
		return left, i, err
	}
	op := get(tokens, i)
	switch op.Type {
	case GREATER, GREATER_EQUAL, LESS, LESS_EQUAL:
	default:
		return left, i, nil
	}
	right, i, err := comparison(tokens, i+1)
	if err != nil {
		return right, i, err
	}
	return &Binary{Left: left, Operator: op, Right: right}, i, nil
}

func term(tokens []Token, i int) (Expr, int, error) {
	left, i, err := factor(tokens, i)
	if err != nil {
		return left, i, err
	}
	op := get(tokens, i)
	if op.Type != PLUS && op.Type != MINUS {
		return left, i, nil
	}
	right, i, err := term(tokens, i+1)
	if err != nil {
		return right, i, err
	}
	return &Binary{Left: left, Operator: op, Right: right}, i, nil
}

func factor(tokens []Token, i int) (Expr, int, error) {
	left, i, err := unary(tokens, i)
	if err != nil {
		return left, i, err
	}
	op := get(tokens, i)
	if op.Type != STAR && op.Type != SLASH {
		return left, i, nil
	}
	right, i, err := factor(tokens, i+1)
	if err != nil {
		return right, i, err
	}
	return &Binary{Left: left, Operator: op, Right: right}, i, nil
}

func unary(tokens []Token, i int) (Expr, int, error) {
	if op := get(tokens, i); op.Type == BANG || op.Type == MINUS {
		right, i, err := unary(tokens, i+1)
		if err != nil {
			return right, i, err
		}
		return &Unary{Operator: op, Right: right}, i, nil
	}
	return callExpression(tokens, i)
}

func callExpression(tokens []Token, i int) (Expr, int, error) {
	callee, i, err := primary(tokens, i)
	if err != nil {
		return callee, i, err
	}
	if check(tokens, i, LEFT_PAREN) {
		return finishCall(tokens, i+1, callee)
	}
	return callee, i, nil
}

func finishCall(tokens []Token, i int, callee Expr) (Expr, int, error) {
	var args []Expr
	if !check(tokens, i, RIGHT_PAREN) {
		for {
			if len(args) >= 255 {
				return callee, i, &ParserError{Token: get(tokens, i), Message: "Cannot have more than 255 arguments."}
			}
			arg, next, err := expression(tokens, i)
			if err != nil {
				return callee, next, err
			}
			args = append(args, arg)
			i = next
			if !check(tokens, i, COMMA) {
				break
			}
			i++
		}
	}
	paren, i, err := need(tokens, i, RIGHT_PAREN, "Expect `)` after arguments.")
	if err != nil {
		return callee, i, err
	}
	return &Call{Callee: callee, Paren: paren, Arguments: args}, i, nil
}

// primary never consumes a token it cannot use: when nothing that starts an
// expression is next, it yields the Empty sentinel and leaves the offset
// unchanged for the caller.
func primary(tokens []Token, i int) (Expr, int, error) {
	t := get(tokens, i)
	switch t.Type {
	case FALSE:
		return &Literal{Value: false}, i + 1, nil
	case TRUE:
		return &Literal{Value: true}, i + 1, nil
	case NIL:
		return &Literal{Value: nil}, i + 1, nil
	case NUMBER, STRING:
		return &Literal{Value: t.Literal}, i + 1, nil
	case IDENTIFIER:
		return &Variable{Name: t}, i + 1, nil
	case LEFT_PAREN:
		inner, i, err := expression(tokens, i+1)
		if err != nil {
			return inner, i, err
		}
		_, i, err = need(tokens, i, RIGHT_PAREN, "Expect ')' after expression.")
		if err != nil {
			return inner, i, err
		}
		return &Grouping{Expression: inner}, i, nil
	}
	return &Empty{}, i, nil
}
