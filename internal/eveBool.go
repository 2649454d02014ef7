package internal

import "strconv"

type eveBool bool

func (b eveBool) Type() string {
	return typeBoolean
}

func (b eveBool) Inspect() string {
	return strconv.FormatBool(bool(b))
}
