package internal

import "fmt"

type callable interface {
	call(exec *exec, arguments []Value) Value
}

// eveFunction is a function literal bundled with the scope it was
// evaluated in
type eveFunction struct {
	declaration *functionExpr
	closure     *Env
}

// call binds the arguments positionally in a fresh scope nested in the
// closure. Missing arguments are null, extra ones are ignored.
func (f *eveFunction) call(exec *exec, arguments []Value) Value {
	env := NewEnv(f.closure)
	for i, param := range f.declaration.params.body {
		if i < len(arguments) {
			env.define(param.value, arguments[i])
		} else {
			env.define(param.value, null)
		}
	}

	result := exec.executeBlock(f.declaration.body.stmts, env)
	if ret, ok := result.(*eveReturn); ok {
		return ret.value
	}
	return result
}

func (f *eveFunction) Type() string {
	return typeFunction
}

func (f *eveFunction) Inspect() string {
	return printExpr(f.declaration)
}

type eveBuiltin struct {
	name   string
	callFn func(exec *exec, arguments []Value) Value
}

func (b *eveBuiltin) call(exec *exec, arguments []Value) Value {
	return b.callFn(exec, arguments)
}

func (b *eveBuiltin) Type() string {
	return typeFunction
}

func (b *eveBuiltin) Inspect() string {
	return fmt.Sprintf("<fn %s>", b.name)
}
