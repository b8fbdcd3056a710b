// environment.go — persistent, chained variable-binding frames.
//
// Frames are never mutated after construction: Define and Assign return a new
// *Environment value and leave the receiver intact, with the enclosing chain
// structurally shared. Assign rebuilds the chain up to the frame that owns
// the name, which is what lets an assignment inside a block survive block
// exit — the evaluator simply drops the block's inner frame and keeps the
// rebuilt enclosing one.
package lox

import "fmt"

// Environment is one frame of the scope chain.
type Environment struct {
	values    map[string]any
	enclosing *Environment
}

// NewEnvironment creates an empty global (outermost) frame.
func NewEnvironment() *Environment {
	return &Environment{values: map[string]any{}}
}

// NewEnclosed creates an empty frame chained to enclosing.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{values: map[string]any{}, enclosing: enclosing}
}

// Enclosing returns the next-outer frame, or nil for the global frame.
func (e *Environment) Enclosing() *Environment { return e.enclosing }

// Globals walks the chain to the outermost frame.
func (e *Environment) Globals() *Environment {
	for e.enclosing != nil {
		e = e.enclosing
	}
	return e
}

// copyWith clones this frame's bindings with one entry added or replaced.
func (e *Environment) copyWith(name string, value any) *Environment {
	values := make(map[string]any, len(e.values)+1)
	for k, v := range e.values {
		values[k] = v
	}
	values[name] = value
	return &Environment{values: values, enclosing: e.enclosing}
}

// Define binds name in this frame, shadowing any outer binding, and returns
// the resulting frame.
func (e *Environment) Define(name string, value any) *Environment {
	return e.copyWith(name, value)
}

// Get resolves name starting at this frame and walking outward.
func (e *Environment) Get(name Token) (any, error) {
	for frame := e; frame != nil; frame = frame.enclosing {
		if v, ok := frame.values[name.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable `%s`.", name.Lexeme)}
}

// Assign updates the nearest visible binding of name and returns the rebuilt
// chain. It never creates a binding; assigning an undefined name is a
// runtime error.
func (e *Environment) Assign(name Token, value any) (*Environment, error) {
	if _, ok := e.values[name.Lexeme]; ok {
		return e.copyWith(name.Lexeme, value), nil
	}
	if e.enclosing != nil {
		outer, err := e.enclosing.Assign(name, value)
		if err != nil {
			return nil, err
		}
		return &Environment{values: e.values, enclosing: outer}, nil
	}
	return nil, &RuntimeError{Token: name, Message: fmt.Sprintf("Undefined variable `%s`.", name.Lexeme)}
}
