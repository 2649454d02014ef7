package internal

import (
	"math"
	"strconv"
)

// Value is a runtime value
type Value interface {
	// Type is the name used in error messages and by type()
	Type() string
	// Inspect renders the value for display
	Inspect() string
}

const (
	typeNull     = "Null"
	typeBoolean  = "Boolean"
	typeNumber   = "Number"
	typeString   = "String"
	typeArray    = "Array"
	typeHash     = "Hash"
	typeFunction = "Function"
	typeReturn   = "Return"
	typeError    = "Error"
)

// Inspect renders v, nil included
func Inspect(v Value) string {
	if v == nil {
		return null.Inspect()
	}
	return v.Inspect()
}

// ErrorMessage reports whether v is an error value and its message
func ErrorMessage(v Value) (string, bool) {
	if err, ok := v.(*eveError); ok {
		return err.message, true
	}
	return "", false
}

type eveNull struct{}

var null = eveNull{}

func (n eveNull) Type() string {
	return typeNull
}

func (n eveNull) Inspect() string {
	return "null"
}

// truthy is false only for false and null
func truthy(v Value) bool {
	switch v := v.(type) {
	case eveNull:
		return false
	case eveBool:
		return bool(v)
	}
	return true
}

// valuesEqual compares values of the same type by their contents
func valuesEqual(x, y Value) bool {
	if x.Type() != y.Type() {
		return false
	}
	switch x := x.(type) {
	case eveArray:
		return x.equals(y.(eveArray))
	case *eveHash:
		return x.equals(y.(*eveHash))
	}
	return x == y
}

// formatNumber prints numbers the way scripts expect to read them: no
// trailing zeros, integers without a decimal point
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}
	if abs := math.Abs(n); abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(n, 'e', -1, 64)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
