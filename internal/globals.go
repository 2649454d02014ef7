package internal

import (
	"fmt"
	"io"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

// StdPrinter writes to standard output
func StdPrinter() IPrinter {
	return stdPrinter{}
}

// globals are resolved before any scope and cannot be shadowed
type globals map[string]*eveBuiltin

func defineGlobals(p IPrinter) globals {
	g := make(globals)
	g.define("print", func(exec *exec, arguments []Value) Value {
		out := make([]interface{}, len(arguments))
		for i, arg := range arguments {
			out[i] = arg.Inspect()
		}
		if _, err := p.Println(out...); err != nil {
			exec.logger.WithError(err).Warn("print failed")
		}
		return null
	})
	g.define("type", func(exec *exec, arguments []Value) Value {
		if len(arguments) != 1 {
			return newError("type expects 1 argument, got %d", len(arguments))
		}
		return eveString(arguments[0].Type())
	})
	return g
}

func (g globals) define(name string, fn func(exec *exec, arguments []Value) Value) {
	g[name] = &eveBuiltin{name: name, callFn: fn}
}

func (g globals) get(name string) (Value, bool) {
	fn, ok := g[name]
	if !ok {
		return nil, false
	}
	return fn, true
}
