package internal

import (
	"sort"
	"strings"
)

type methodKey struct {
	receiver string
	name     string
}

// method is a built-in member. Accessors are computed when the member is
// read, the rest evaluate to a function bound to the receiver.
type method struct {
	accessor bool
	fn       func(exec *exec, receiver Value, arguments []Value) Value
}

var methods = make(map[methodKey]method)

func init() {
	for _, receiver := range []string{typeString, typeArray, typeHash} {
		defineAccessor(receiver, "length", length)
		defineAccessor(receiver, "count", length)
	}

	defineAccessor(typeString, "first", func(exec *exec, receiver Value, _ []Value) Value {
		return first(receiver.(eveString).chars())
	})
	defineAccessor(typeString, "last", func(exec *exec, receiver Value, _ []Value) Value {
		return last(receiver.(eveString).chars())
	})
	defineAccessor(typeString, "rest", func(exec *exec, receiver Value, _ []Value) Value {
		return joinChars(rest(receiver.(eveString).chars()))
	})
	defineAccessor(typeString, "reverse", func(exec *exec, receiver Value, _ []Value) Value {
		return joinChars(reverse(receiver.(eveString).chars()))
	})
	defineMethod(typeString, "map", func(exec *exec, receiver Value, arguments []Value) Value {
		return mapElements(exec, "map", receiver.(eveString).chars(), arguments)
	})
	defineMethod(typeString, "filter", func(exec *exec, receiver Value, arguments []Value) Value {
		filtered := filterElements(exec, "filter", receiver.(eveString).chars(), arguments)
		if isError(filtered) {
			return filtered
		}
		return joinChars(filtered.(eveArray))
	})
	defineMethod(typeString, "each", func(exec *exec, receiver Value, arguments []Value) Value {
		if err := eachElement(exec, "each", receiver.(eveString).chars(), arguments); err != nil {
			return err
		}
		return receiver
	})

	defineAccessor(typeArray, "first", func(exec *exec, receiver Value, _ []Value) Value {
		return first(receiver.(eveArray))
	})
	defineAccessor(typeArray, "last", func(exec *exec, receiver Value, _ []Value) Value {
		return last(receiver.(eveArray))
	})
	defineAccessor(typeArray, "rest", func(exec *exec, receiver Value, _ []Value) Value {
		return rest(receiver.(eveArray))
	})
	defineAccessor(typeArray, "reverse", func(exec *exec, receiver Value, _ []Value) Value {
		return reverse(receiver.(eveArray))
	})
	defineAccessor(typeArray, "sum", func(exec *exec, receiver Value, _ []Value) Value {
		return sum(receiver.(eveArray))
	})
	defineAccessor(typeArray, "avg", func(exec *exec, receiver Value, _ []Value) Value {
		elements := receiver.(eveArray)
		if len(elements) == 0 {
			return null
		}
		total := sum(elements)
		if isError(total) {
			return total
		}
		return total.(eveNumber) / eveNumber(len(elements))
	})
	defineMethod(typeArray, "map", func(exec *exec, receiver Value, arguments []Value) Value {
		return mapElements(exec, "map", receiver.(eveArray), arguments)
	})
	defineMethod(typeArray, "filter", func(exec *exec, receiver Value, arguments []Value) Value {
		return filterElements(exec, "filter", receiver.(eveArray), arguments)
	})
	defineMethod(typeArray, "each", func(exec *exec, receiver Value, arguments []Value) Value {
		if err := eachElement(exec, "each", receiver.(eveArray), arguments); err != nil {
			return err
		}
		return receiver
	})
	defineMethod(typeArray, "sort", sortElements)

	defineAccessor(typeHash, "keys", func(exec *exec, receiver Value, _ []Value) Value {
		h := receiver.(*eveHash)
		keys := make(eveArray, len(h.keys))
		for i, key := range h.keys {
			keys[i] = eveString(key)
		}
		return keys
	})
	defineAccessor(typeHash, "values", func(exec *exec, receiver Value, _ []Value) Value {
		h := receiver.(*eveHash)
		values := make(eveArray, len(h.keys))
		for i, key := range h.keys {
			values[i] = h.pairs[key]
		}
		return values
	})
	defineMethod(typeHash, "map", func(exec *exec, receiver Value, arguments []Value) Value {
		h := receiver.(*eveHash)
		fn, err := callback(exec, "map", arguments)
		if err != nil {
			return err
		}
		out := make(eveArray, 0, len(h.keys))
		for _, key := range h.keys {
			result := exec.applyFunction(fn, []Value{eveString(key), h.pairs[key]})
			if isError(result) {
				return result
			}
			out = append(out, result)
		}
		return out
	})
	defineMethod(typeHash, "filter", func(exec *exec, receiver Value, arguments []Value) Value {
		h := receiver.(*eveHash)
		fn, err := callback(exec, "filter", arguments)
		if err != nil {
			return err
		}
		out := newHash()
		for _, key := range h.keys {
			keep := exec.applyFunction(fn, []Value{eveString(key), h.pairs[key]})
			if isError(keep) {
				return keep
			}
			if truthy(keep) {
				out.set(key, h.pairs[key])
			}
		}
		return out
	})
	defineMethod(typeHash, "each", func(exec *exec, receiver Value, arguments []Value) Value {
		h := receiver.(*eveHash)
		fn, err := callback(exec, "each", arguments)
		if err != nil {
			return err
		}
		for _, key := range h.keys {
			if result := exec.applyFunction(fn, []Value{eveString(key), h.pairs[key]}); isError(result) {
				return result
			}
		}
		return receiver
	})
}

func defineAccessor(receiver, name string, fn func(exec *exec, receiver Value, arguments []Value) Value) {
	methods[methodKey{receiver: receiver, name: name}] = method{accessor: true, fn: fn}
}

func defineMethod(receiver, name string, fn func(exec *exec, receiver Value, arguments []Value) Value) {
	methods[methodKey{receiver: receiver, name: name}] = method{fn: fn}
}

// lookupMethod resolves receiver.name. Unknown members are null.
func lookupMethod(ex *exec, receiver Value, name string) Value {
	m, ok := methods[methodKey{receiver: receiver.Type(), name: name}]
	if !ok {
		return null
	}
	if m.accessor {
		return m.fn(ex, receiver, nil)
	}
	return &eveBuiltin{
		name: name,
		callFn: func(exec *exec, arguments []Value) Value {
			return m.fn(exec, receiver, arguments)
		},
	}
}

func length(exec *exec, receiver Value, _ []Value) Value {
	switch r := receiver.(type) {
	case eveString:
		return eveNumber(len([]rune(r)))
	case eveArray:
		return eveNumber(len(r))
	case *eveHash:
		return eveNumber(len(r.keys))
	}
	return null
}

func first(elements []Value) Value {
	if len(elements) == 0 {
		return null
	}
	return elements[0]
}

func last(elements []Value) Value {
	if len(elements) == 0 {
		return null
	}
	return elements[len(elements)-1]
}

func rest(elements []Value) eveArray {
	if len(elements) == 0 {
		return eveArray{}
	}
	out := make(eveArray, len(elements)-1)
	copy(out, elements[1:])
	return out
}

func reverse(elements []Value) eveArray {
	out := make(eveArray, len(elements))
	for i, el := range elements {
		out[len(elements)-1-i] = el
	}
	return out
}

func joinChars(chars eveArray) eveString {
	var b strings.Builder
	for _, c := range chars {
		b.WriteString(string(c.(eveString)))
	}
	return eveString(b.String())
}

func sum(elements eveArray) Value {
	var total eveNumber
	for _, el := range elements {
		n, ok := el.(eveNumber)
		if !ok {
			return newError("sum expects numbers, found %s", el.Type())
		}
		total += n
	}
	return total
}

// callback returns the function argument of a higher order method
func callback(exec *exec, name string, arguments []Value) (Value, *eveError) {
	if len(arguments) == 0 {
		return nil, newError("%s expects a function argument", name)
	}
	if _, ok := arguments[0].(callable); !ok {
		return nil, newError("%s expects a function argument", name)
	}
	return arguments[0], nil
}

func mapElements(exec *exec, name string, elements []Value, arguments []Value) Value {
	fn, err := callback(exec, name, arguments)
	if err != nil {
		return err
	}
	out := make(eveArray, len(elements))
	for i, el := range elements {
		result := exec.applyFunction(fn, []Value{el, eveNumber(i)})
		if isError(result) {
			return result
		}
		out[i] = result
	}
	return out
}

func filterElements(exec *exec, name string, elements []Value, arguments []Value) Value {
	fn, err := callback(exec, name, arguments)
	if err != nil {
		return err
	}
	out := make(eveArray, 0)
	for i, el := range elements {
		keep := exec.applyFunction(fn, []Value{el, eveNumber(i)})
		if isError(keep) {
			return keep
		}
		if truthy(keep) {
			out = append(out, el)
		}
	}
	return out
}

func eachElement(exec *exec, name string, elements []Value, arguments []Value) Value {
	fn, err := callback(exec, name, arguments)
	if err != nil {
		return err
	}
	for i, el := range elements {
		if result := exec.applyFunction(fn, []Value{el, eveNumber(i)}); isError(result) {
			return result
		}
	}
	return nil
}

// sortElements sorts a copy of the receiver. Without a comparator numbers
// and strings sort ascending; a comparator fn(a, b) returns true when a
// goes first.
func sortElements(exec *exec, receiver Value, arguments []Value) Value {
	out := make(eveArray, len(receiver.(eveArray)))
	copy(out, receiver.(eveArray))

	var failure Value
	var less func(x, y Value) bool
	if len(arguments) > 0 {
		fn, err := callback(exec, "sort", arguments)
		if err != nil {
			return err
		}
		less = func(x, y Value) bool {
			result := exec.applyFunction(fn, []Value{x, y})
			if isError(result) {
				failure = result
				return false
			}
			return truthy(result)
		}
	} else {
		less = func(x, y Value) bool {
			switch x := x.(type) {
			case eveNumber:
				if y, ok := y.(eveNumber); ok {
					return x < y
				}
			case eveString:
				if y, ok := y.(eveString); ok {
					return x < y
				}
			}
			failure = newError("sort cannot compare %s and %s", x.Type(), y.Type())
			return false
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if failure != nil {
			return false
		}
		return less(out[i], out[j])
	})
	if failure != nil {
		return failure
	}
	return out
}
