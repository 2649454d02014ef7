package internal

import (
	"fmt"
	"unicode/utf8"
)

// lexer produces tokens on demand. It never backtracks and looks at most
// one character ahead.
type lexer struct {
	source  string
	start   int
	current int
	line    int

	state *interpreterState
}

var keywords = map[string]tokenType{
	"let":    tkLet,
	"if":     tkIf,
	"else":   tkElse,
	"return": tkReturn,
	"fn":     tkFn,
	"while":  tkWhile,
	"true":   tkTrue,
	"false":  tkFalse,
	"null":   tkNull,
}

func newLexer(state *interpreterState) *lexer {
	return &lexer{
		source: state.source,
		line:   1,
		state:  state,
	}
}

// scan materializes the whole token stream, EOF included
func (l *lexer) scan() []token {
	var tokens []token
	for {
		tk := l.scanToken()
		tokens = append(tokens, tk)
		if tk.token == tkEOF {
			return tokens
		}
	}
}

// scanToken returns the next token. Once the input is exhausted every
// call returns EOF.
func (l *lexer) scanToken() token {
	for !l.isAtEnd() {
		l.start = l.current
		c := l.advance()
		switch c {
		case '+':
			return l.emit(tkPlus)
		case '-':
			return l.emit(tkMinus)
		case '*':
			return l.emit(tkStar)
		case ';':
			return l.emit(tkSemicolon)
		case ':':
			return l.emit(tkColon)
		case ',':
			return l.emit(tkComma)
		case '.':
			return l.emit(tkPeriod)
		case '(':
			return l.emit(tkLeftParen)
		case ')':
			return l.emit(tkRightParen)
		case '[':
			return l.emit(tkLeftBracket)
		case ']':
			return l.emit(tkRightBracket)
		case '{':
			return l.emit(tkLeftBrace)
		case '}':
			return l.emit(tkRightBrace)
		case '=':
			if l.match('=') {
				return l.emit(tkEqualEqual)
			}
			if l.match('>') {
				return l.emit(tkArrow)
			}
			return l.emit(tkEqual)
		case '!':
			if l.match('=') {
				return l.emit(tkBangEqual)
			}
			return l.emit(tkBang)
		case '<':
			if l.match('=') {
				return l.emit(tkLessEqual)
			}
			return l.emit(tkLess)
		case '>':
			if l.match('=') {
				return l.emit(tkGreaterEqual)
			}
			return l.emit(tkGreater)
		case '/':
			if l.match('/') {
				for l.peek() != '\n' && !l.isAtEnd() {
					l.advance()
				}
				continue
			}
			return l.emit(tkSlash)

		// Ignore whitespace
		case ' ', '\r', '\t':
		case '\n':
			l.line++

		case '\'':
			return l.string()

		default:
			if isDigit(c) {
				return l.number()
			}
			if isAlpha(c) {
				return l.identifier()
			}
			r, _ := utf8.DecodeRuneInString(l.source[l.start:])
			l.state.fatalError(errIllegalChar, l.line, fmt.Sprintf("%q", string(r)))
		}
	}
	l.start = l.current
	return token{token: tkEOF, lexeme: "", line: l.line}
}

func (l *lexer) string() token {
	line := l.line
	for l.peek() != '\'' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		l.state.fatalError(errUnclosedString, line, "")
	}

	// Consume ending '
	l.advance()

	return token{
		token:  tkString,
		lexeme: l.source[l.start+1 : l.current-1],
		line:   line,
	}
}

func (l *lexer) number() token {
	for isDigit(l.peek()) || l.peek() == '.' {
		l.advance()
	}
	return l.emit(tkNumber)
}

func (l *lexer) identifier() token {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}

	kind, ok := keywords[l.source[l.start:l.current]]
	if !ok {
		kind = tkIdentifier
	}
	return l.emit(kind)
}

func (l *lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	return c
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *lexer) emit(tk tokenType) token {
	return token{
		token:  tk,
		lexeme: l.source[l.start:l.current],
		line:   l.line,
	}
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
