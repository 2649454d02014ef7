package internal

// eveReturn carries the value of a return statement up to the enclosing
// call. Scripts never observe it.
type eveReturn struct {
	value Value
}

func (r *eveReturn) Type() string {
	return typeReturn
}

func (r *eveReturn) Inspect() string {
	return r.value.Inspect()
}

// eveError is a runtime failure. It short-circuits evaluation up to the
// end of the program.
type eveError struct {
	message string
}

func (e *eveError) Type() string {
	return typeError
}

func (e *eveError) Inspect() string {
	return "ERROR: " + e.message
}

func (e *eveError) Error() string {
	return e.message
}
