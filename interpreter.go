// interpreter.go — tree-walking evaluator.
//
// Executing a statement and evaluating an expression both thread the current
// environment explicitly: Interpret returns the resulting environment,
// Evaluate returns (value, environment). Nothing here mutates a frame; all
// binding changes go through the persistent operations in environment.go.
//
// Runtime errors carry the offending token and abort the remaining
// statements of the Interpret call that raised them. The interpreter itself
// never prints errors; print statements are the only output, written to the
// injected writer.
package lox

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Interpreter executes parsed statements. The zero value is not usable; use
// NewInterpreter.
type Interpreter struct {
	stdout io.Writer
}

// NewInterpreter returns an interpreter writing print output to stdout.
// A nil writer means os.Stdout.
func NewInterpreter(stdout io.Writer) *Interpreter {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Interpreter{stdout: stdout}
}

// Callable is the contract the evaluator trusts when invoking a value: a
// declared arity and an invocation that receives the argument values and the
// call-site environment, and yields a result value and a resulting
// environment.
type Callable interface {
	Arity() int
	Call(ip *Interpreter, args []any, env *Environment) (any, *Environment, error)
}

// Function is a user-declared function value. Parameters bind in a fresh
// frame chained to the global frame, not the call site, so scoping is
// lexical rather than dynamic.
type Function struct {
	Declaration *FunctionStmt
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

func (f *Function) Call(ip *Interpreter, args []any, env *Environment) (any, *Environment, error) {
	frame := NewEnclosed(env.Globals())
	for i, param := range f.Declaration.Params {
		frame = frame.Define(param.Lexeme, args[i])
	}
	if _, err := ip.Interpret(f.Declaration.Body, frame); err != nil {
		return nil, env, err
	}
	return nil, env, nil
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s >", f.Declaration.Name.Lexeme)
}

// Interpret executes statements in order against env and returns the
// resulting environment. The first runtime error aborts the rest.
func (ip *Interpreter) Interpret(statements []Stmt, env *Environment) (*Environment, error) {
	for _, st := range statements {
		var err error
		env, err = ip.execute(st, env)
		if err != nil {
			return env, err
		}
	}
	return env, nil
}

func (ip *Interpreter) execute(st Stmt, env *Environment) (*Environment, error) {
	switch s := st.(type) {
	case *ExpressionStmt:
		_, env, err := ip.Evaluate(s.Expression, env)
		return env, err

	case *PrintStmt:
		v, env, err := ip.Evaluate(s.Expression, env)
		if err != nil {
			return env, err
		}
		fmt.Fprintln(ip.stdout, Stringify(v))
		return env, nil

	case *VarStmt:
		var value any
		var err error
		if s.Initializer != nil {
			value, env, err = ip.Evaluate(s.Initializer, env)
			if err != nil {
				return env, err
			}
		}
		return env.Define(s.Name.Lexeme, value), nil

	case *BlockStmt:
		return ip.executeBlock(s, env)

	case *IfStmt:
		cond, env, err := ip.Evaluate(s.Condition, env)
		if err != nil {
			return env, err
		}
		if isTruthy(cond) {
			return ip.execute(s.Then, env)
		}
		if s.Else != nil {
			return ip.execute(s.Else, env)
		}
		return env, nil

	case *WhileStmt:
		for {
			cond, next, err := ip.Evaluate(s.Condition, env)
			if err != nil {
				return next, err
			}
			env = next
			if !isTruthy(cond) {
				return env, nil
			}
			env, err = ip.execute(s.Body, env)
			if err != nil {
				return env, err
			}
		}

	case *FunctionStmt:
		return env.Define(s.Name.Lexeme, &Function{Declaration: s}), nil
	}
	panic(fmt.Sprintf("unhandled statement %T", st))
}

// executeBlock runs the block's statements in a fresh child frame and
// returns the enclosing frame implied by the child's final state: the
// block's own bindings are discarded, while assignments to outer names
// survive because Assign rebuilt the enclosing chain.
func (ip *Interpreter) executeBlock(block *BlockStmt, env *Environment) (*Environment, error) {
	child := NewEnclosed(env)
	final, err := ip.Interpret(block.Statements, child)
	if err != nil {
		return env, err
	}
	return final.Enclosing(), nil
}

// Evaluate reduces an expression to a value, returning the environment that
// results from any assignments or calls inside it.
func (ip *Interpreter) Evaluate(e Expr, env *Environment) (any, *Environment, error) {
	switch x := e.(type) {
	case *Literal:
		return x.Value, env, nil

	case *Grouping:
		return ip.Evaluate(x.Expression, env)

	case *Variable:
		v, err := env.Get(x.Name)
		return v, env, err

	case *Assign:
		value, env, err := ip.Evaluate(x.Value, env)
		if err != nil {
			return nil, env, err
		}
		next, err := env.Assign(x.Name, value)
		if err != nil {
			return nil, env, err
		}
		return value, next, nil

	case *Unary:
		right, env, err := ip.Evaluate(x.Right, env)
		if err != nil {
			return nil, env, err
		}
		switch x.Operator.Type {
		case MINUS:
			n, ok := right.(float64)
			if !ok {
				return nil, env, &RuntimeError{Token: x.Operator, Message: "Operand must be a number."}
			}
			return -n, env, nil
		case BANG:
			return !isTruthy(right), env, nil
		}
		panic(fmt.Sprintf("unhandled unary operator %s", x.Operator.Type))

	case *Binary:
		return ip.evaluateBinary(x, env)

	case *Logical:
		left, env, err := ip.Evaluate(x.Left, env)
		if err != nil {
			return nil, env, err
		}
		// Short-circuit: the result is the last-evaluated operand's value,
		// never a coerced boolean.
		if x.Operator.Type == OR {
			if isTruthy(left) {
				return left, env, nil
			}
		} else {
			if !isTruthy(left) {
				return left, env, nil
			}
		}
		return ip.Evaluate(x.Right, env)

	case *Call:
		return ip.evaluateCall(x, env)

	case *Empty:
		return nil, env, &RuntimeError{Message: "Cannot evaluate an empty expression."}
	}
	panic(fmt.Sprintf("unhandled expression %T", e))
}

func (ip *Interpreter) evaluateBinary(x *Binary, env *Environment) (any, *Environment, error) {
	left, env, err := ip.Evaluate(x.Left, env)
	if err != nil {
		return nil, env, err
	}
	right, env, err := ip.Evaluate(x.Right, env)
	if err != nil {
		return nil, env, err
	}

	switch x.Operator.Type {
	case BANG_EQUAL:
		return !isEqual(left, right), env, nil
	case EQUAL_EQUAL:
		return isEqual(left, right), env, nil
	case PLUS:
		if lf, ok := left.(float64); ok {
			if rf, ok := right.(float64); ok {
				return lf + rf, env, nil
			}
		}
		if ls, ok := left.(string); ok {
			if rs, ok := right.(string); ok {
				return ls + rs, env, nil
			}
		}
		return nil, env, &RuntimeError{Token: x.Operator, Message: "Operands must be two numbers or two strings"}
	}

	lf, rf, err := numberOperands(x.Operator, left, right)
	if err != nil {
		return nil, env, err
	}
	switch x.Operator.Type {
	case GREATER:
		return lf > rf, env, nil
	case GREATER_EQUAL:
		return lf >= rf, env, nil
	case LESS:
		return lf < rf, env, nil
	case LESS_EQUAL:
		return lf <= rf, env, nil
	case MINUS:
		return lf - rf, env, nil
	case SLASH:
		return lf / rf, env, nil
	case STAR:
		return lf * rf, env, nil
	}
	panic(fmt.Sprintf("unhandled binary operator %s", x.Operator.Type))
}

func (ip *Interpreter) evaluateCall(x *Call, env *Environment) (any, *Environment, error) {
	callee, env, err := ip.Evaluate(x.Callee, env)
	if err != nil {
		return nil, env, err
	}
	fn, ok := callee.(Callable)
	if !ok {
		return nil, env, &RuntimeError{Token: x.Paren, Message: "Can only call functions and classes."}
	}
	args := make([]any, 0, len(x.Arguments))
	for _, a := range x.Arguments {
		var v any
		v, env, err = ip.Evaluate(a, env)
		if err != nil {
			return nil, env, err
		}
		args = append(args, v)
	}
	if len(args) != fn.Arity() {
		return nil, env, &RuntimeError{
			Token:   x.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
		}
	}
	return fn.Call(ip, args, env)
}

func numberOperands(op Token, left, right any) (float64, float64, error) {
	lf, lok := left.(float64)
	rf, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, &RuntimeError{Token: op, Message: "Operands must be numbers."}
	}
	return lf, rf, nil
}

// isTruthy: nil is false, booleans are themselves, every other value
// (including 0 and the empty string) is true.
func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	default:
		return true
	}
}

// isEqual is value equality; nil equals only nil.
func isEqual(left, right any) bool {
	if left == nil && right == nil {
		return true
	}
	if left == nil || right == nil {
		return false
	}
	return left == right
}

// Stringify renders a value the way print shows it: "nil" for nil,
// true/false for booleans, the shortest round-trippable decimal for numbers,
// raw characters for strings.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}
