package internal

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// SyntaxError is a lexing or parsing failure. It aborts a run before
// evaluation starts.
type SyntaxError struct {
	Err  error
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error: %s (line %d)", e.Msg, e.Line)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// interpreterState stores the state of a single run
type interpreterState struct {
	source string
	errors []*SyntaxError
	logger *logrus.Entry
}

func newInterpreterState(source string, logger *logrus.Entry) *interpreterState {
	return &interpreterState{
		source: source,
		errors: make([]*SyntaxError, 0),
		logger: logger,
	}
}

func (s *interpreterState) setError(err error, line int, detail string) {
	se := &SyntaxError{Err: err, Line: line, Msg: err.Error()}
	if detail != "" {
		se.Msg += " " + detail
	}
	s.logger.WithField("line", line).Debug(se.Msg)
	s.errors = append(s.errors, se)
}

func (s *interpreterState) fatalError(err error, line int, detail string) {
	s.setError(err, line, detail)
	panic(s.errors[len(s.errors)-1])
}

// Valid returns true if no syntax error was recorded
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// err returns the first recorded syntax error; later ones are usually
// consequences of it
func (s *interpreterState) err() error {
	if len(s.errors) == 0 {
		return nil
	}
	return s.errors[0]
}

// Lexer errors
var errIllegalChar = errors.New("unrecognized token")
var errUnclosedString = errors.New("unterminated string")

// Parser errors
var errUnexpectedToken = errors.New("unexpected token")
var errUnclosedParen = errors.New("expected ')'")
var errUnclosedBracket = errors.New("expected ']'")
var errUnclosedBrace = errors.New("expected '}'")
var errExpectedOpeningParen = errors.New("expected '('")
var errExpectedOpeningBrace = errors.New("expected '{'")
var errExpectedColon = errors.New("expected ':' after key")
var errExpectedProp = errors.New("expected property name after '.'")
var errExpectedIdentifier = errors.New("expected identifier")
var errExpectedParam = errors.New("expected parameter name")
var errExpectedArrow = errors.New("expected '=>' after parameter list")
