package internal

// Env is a scope of name bindings. A scope created for a function call
// keeps a pointer to the scope the function was defined in, lookups and
// assignments walk that chain outward.
//
// An Env graph is not safe for concurrent use.
type Env struct {
	enclosing *Env
	values    map[string]Value
}

// NewEnv creates a scope nested in enclosing, which may be nil for a
// global scope.
func NewEnv(enclosing *Env) *Env {
	return &Env{
		enclosing: enclosing,
		values:    make(map[string]Value),
	}
}

func (e *Env) get(name string) (Value, bool) {
	if value, ok := e.values[name]; ok {
		return value, true
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	return nil, false
}

// define binds name in this scope, shadowing outer bindings
func (e *Env) define(name string, value Value) Value {
	e.values[name] = value
	return value
}

// assign rebinds name in the closest scope that holds it
func (e *Env) assign(name string, value Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.assign(name, value)
	}
	return false
}

// Get looks name up through the scope chain
func (e *Env) Get(name string) (Value, bool) {
	return e.get(name)
}

// Set defines name in this scope
func (e *Env) Set(name string, value Value) Value {
	return e.define(name, value)
}
