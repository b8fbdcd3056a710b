// ast.go — the two closed node sets produced by the parser.
//
// Expressions and statements are each a sealed interface with a marker
// method; the evaluator and printer dispatch over them with exhaustive type
// switches. For-loops have no node of their own: the parser desugars them
// into Block/While/Block (see forStatement in parser.go).
package lox

// Expr is an expression node.
type Expr interface{ isExpr() }

// Literal holds a constant value: nil, bool, float64 or string.
type Literal struct {
	Value any
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Expression Expr
}

// Unary is a prefix operator application ('!' or '-').
type Unary struct {
	Operator Token
	Right    Expr
}

// Binary is an infix operator application.
type Binary struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// Logical is a short-circuiting 'and' or 'or'.
type Logical struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// Variable is a reference to a name.
type Variable struct {
	Name Token
}

// Assign writes a new value to an existing name.
type Assign struct {
	Name  Token
	Value Expr
}

// Call applies a callee to zero or more arguments. Paren is the closing
// parenthesis, kept for runtime error locations.
type Call struct {
	Callee    Expr
	Paren     Token
	Arguments []Expr
}

// Empty is the sentinel produced when a required sub-expression could not be
// parsed. It lets the parser keep building a (deliberately wrong) tree
// instead of unwinding; evaluating it is a runtime error.
type Empty struct{}

func (*Literal) isExpr()  {}
func (*Grouping) isExpr() {}
func (*Unary) isExpr()    {}
func (*Binary) isExpr()   {}
func (*Logical) isExpr()  {}
func (*Variable) isExpr() {}
func (*Assign) isExpr()   {}
func (*Call) isExpr()     {}
func (*Empty) isExpr()    {}

// Stmt is a statement node.
type Stmt interface{ isStmt() }

// ExpressionStmt evaluates an expression for its side effects.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt writes the stringified value of an expression to stdout.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares a name, with an optional initializer (nil means the name
// is bound to the nil value).
type VarStmt struct {
	Name        Token
	Initializer Expr
}

// BlockStmt runs its statements in a child scope.
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt branches on the truthiness of Condition. Else may be nil.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// WhileStmt re-evaluates Condition before every iteration.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// FunctionStmt declares a named function with parameters and a body.
type FunctionStmt struct {
	Name   Token
	Params []Token
	Body   []Stmt
}

func (*ExpressionStmt) isStmt() {}
func (*PrintStmt) isStmt()      {}
func (*VarStmt) isStmt()        {}
func (*BlockStmt) isStmt()      {}
func (*IfStmt) isStmt()         {}
func (*WhileStmt) isStmt()      {}
func (*FunctionStmt) isStmt()   {}
