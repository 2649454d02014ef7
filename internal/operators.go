package internal

import "fmt"

type operator string

const (
	opAdd operator = "+"
	opSub operator = "-"
	opDiv operator = "/"
	opMul operator = "*"
	opEq  operator = "=="
	opNeq operator = "!="
	opLt  operator = "<"
	opLte operator = "<="
	opGt  operator = ">"
	opGte operator = ">="
	opNot operator = "!"
)

type operatorApply func(x, y Value) Value

// operand is implemented by values that support operators beyond
// equality
type operand interface {
	getOperator(op operator) (operatorApply, bool)
}

func newError(format string, a ...interface{}) *eveError {
	return &eveError{message: fmt.Sprintf(format, a...)}
}

func isError(v Value) bool {
	_, ok := v.(*eveError)
	return ok
}

func unknownOperator(x Value, op operator, y Value) Value {
	return newError("unknown operator: %s %s %s", x.Type(), op, y.Type())
}

// applyInfix evaluates x op y. Equality works for every pair of values,
// everything else requires both operands to be of the same type.
func applyInfix(op operator, x, y Value) Value {
	if x.Type() != y.Type() {
		switch op {
		case opEq:
			return eveBool(false)
		case opNeq:
			return eveBool(true)
		}
		return newError("type mismatch: %s %s %s", x.Type(), op, y.Type())
	}

	if o, ok := x.(operand); ok {
		if apply, ok := o.getOperator(op); ok {
			return apply(x, y)
		}
	}

	switch op {
	case opEq:
		return eveBool(valuesEqual(x, y))
	case opNeq:
		return eveBool(!valuesEqual(x, y))
	}
	return unknownOperator(x, op, y)
}

// applyPrefix evaluates a unary operator
func applyPrefix(op operator, x Value) Value {
	switch op {
	case opNot:
		switch x := x.(type) {
		case eveNull:
			return null
		case eveBool:
			return !x
		}
		return eveBool(false)
	case opSub:
		if n, ok := x.(eveNumber); ok {
			return -n
		}
	case opAdd:
		if n, ok := x.(eveNumber); ok {
			return n
		}
	}
	return newError("unknown operator: %s%s", op, x.Type())
}
