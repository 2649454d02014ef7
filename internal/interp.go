package internal

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Options tune a run
type Options struct {
	// Printer receives the output of print. Defaults to standard output.
	Printer IPrinter
	// Logger defaults to the logrus standard logger
	Logger *logrus.Logger
	// MaxDepth bounds nested calls. Zero means unbounded.
	MaxDepth int
}

func (o Options) withDefaults() Options {
	if o.Printer == nil {
		o.Printer = stdPrinter{}
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return o
}

// Run evaluates source in env and returns the value of the last statement.
// Syntax errors are returned as *SyntaxError; runtime failures are error
// values.
func Run(source string, env *Env) (Value, error) {
	return RunWithOptions(source, env, Options{})
}

// RunWithOptions is Run with a custom printer, logger or call depth limit
func RunWithOptions(source string, env *Env, opts Options) (Value, error) {
	opts = opts.withDefaults()
	if env == nil {
		env = NewEnv(nil)
	}
	state := newInterpreterState(source, opts.Logger.WithField("component", "interpreter"))

	prog, err := parse(state)
	if err != nil {
		return nil, err
	}

	e := &exec{
		state:    state,
		globals:  defineGlobals(opts.Printer),
		env:      env,
		logger:   state.logger,
		maxDepth: opts.MaxDepth,
	}
	return e.interpret(prog), nil
}

// parse turns source into a program. Fatal lexing and parsing errors
// panic with a *SyntaxError which is recovered here.
func parse(state *interpreterState) (prog *program, err error) {
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			prog, err = nil, se
		}
	}()

	prog = newParser(state).parseProgram()
	if !state.Valid() {
		return nil, state.err()
	}
	return prog, nil
}

// Tokens lists the tokens of source, one per line
func Tokens(source string) (out string, err error) {
	state := newInterpreterState(source, logrus.StandardLogger().WithField("component", "lexer"))
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			out, err = "", se
		}
	}()

	var b strings.Builder
	for _, tk := range newLexer(state).scan() {
		b.WriteString(tk.String())
		b.WriteString("\n")
	}
	return b.String(), nil
}

// ParseTree renders the canonical form of every statement of source
func ParseTree(source string) (string, error) {
	state := newInterpreterState(source, logrus.StandardLogger().WithField("component", "parser"))
	prog, err := parse(state)
	if err != nil {
		return "", err
	}
	return printProgram(prog), nil
}

// Interpreter keeps a global scope across runs, as a prompt does. Runs
// on the same Interpreter are serialized.
type Interpreter struct {
	mx   sync.Mutex
	env  *Env
	opts Options
}

// NewInterpreter creates an interpreter with an empty global scope
func NewInterpreter(opts Options) *Interpreter {
	return &Interpreter{
		env:  NewEnv(nil),
		opts: opts,
	}
}

// Run evaluates source in the interpreter's global scope
func (i *Interpreter) Run(source string) (Value, error) {
	i.mx.Lock()
	defer i.mx.Unlock()
	return RunWithOptions(source, i.env, i.opts)
}

// Reset drops every global binding
func (i *Interpreter) Reset() {
	i.mx.Lock()
	defer i.mx.Unlock()
	i.env = NewEnv(nil)
}
