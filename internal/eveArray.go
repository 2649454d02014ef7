package internal

import "strings"

type eveArray []Value

func (a eveArray) Type() string {
	return typeArray
}

func (a eveArray) Inspect() string {
	out := make([]string, len(a))
	for i, el := range a {
		out[i] = el.Inspect()
	}
	return "[" + strings.Join(out, ",") + "]"
}

// at returns the element at a whole, in range index and null otherwise
func (a eveArray) at(index Value) Value {
	n, ok := index.(eveNumber)
	if !ok {
		return null
	}
	i := float64(n)
	if i < 0 || i >= float64(len(a)) || i != float64(int(i)) {
		return null
	}
	return a[int(i)]
}

func (a eveArray) equals(b eveArray) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !valuesEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
