package internal

type eveNumber float64

var numberOperations = map[operator]func(x, y float64) Value{
	opAdd: func(x, y float64) Value { return eveNumber(x + y) },
	opSub: func(x, y float64) Value { return eveNumber(x - y) },
	opMul: func(x, y float64) Value { return eveNumber(x * y) },
	opDiv: func(x, y float64) Value { return eveNumber(x / y) },
	opLt:  func(x, y float64) Value { return eveBool(x < y) },
	opLte: func(x, y float64) Value { return eveBool(x <= y) },
	opGt:  func(x, y float64) Value { return eveBool(x > y) },
	opGte: func(x, y float64) Value { return eveBool(x >= y) },
}

func (n eveNumber) getOperator(op operator) (operatorApply, bool) {
	apply, ok := numberOperations[op]
	if !ok {
		return nil, false
	}
	return func(x, y Value) Value {
		return apply(float64(x.(eveNumber)), float64(y.(eveNumber)))
	}, true
}

func (n eveNumber) Type() string {
	return typeNumber
}

func (n eveNumber) Inspect() string {
	return formatNumber(float64(n))
}
