package internal

type eveString string

var stringOperations = map[operator]func(x, y string) Value{
	opAdd: func(x, y string) Value { return eveString(x + y) },
}

func (s eveString) getOperator(op operator) (operatorApply, bool) {
	apply, ok := stringOperations[op]
	if !ok {
		return nil, false
	}
	return func(x, y Value) Value {
		return apply(string(x.(eveString)), string(y.(eveString)))
	}, true
}

func (s eveString) Type() string {
	return typeString
}

func (s eveString) Inspect() string {
	return string(s)
}

func (s eveString) chars() []Value {
	runes := []rune(s)
	out := make([]Value, len(runes))
	for i, r := range runes {
		out[i] = eveString(r)
	}
	return out
}
