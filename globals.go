// globals.go — the host-provided global frame.
package lox

import "time"

// clockFn is the inbuilt clock: zero arity, returns seconds since the Unix
// epoch as a number.
type clockFn struct{}

func (clockFn) Arity() int { return 0 }

func (clockFn) Call(_ *Interpreter, _ []any, env *Environment) (any, *Environment, error) {
	return float64(time.Now().UnixNano()) / 1e9, env, nil
}

func (clockFn) String() string { return "<native fn>" }

// NewGlobals builds the global frame a program starts in, pre-populated with
// the native functions the runtime provides.
func NewGlobals() *Environment {
	return NewEnvironment().Define("clock", clockFn{})
}
