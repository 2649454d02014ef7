package internal

import "fmt"

type tokenType int

const (
	tkEOF tokenType = iota

	// Single-character tokens.
	// +, -, /, *, ;, :, ',', ., (, ), [, ], {, }
	tkPlus
	tkMinus
	tkSlash
	tkStar
	tkSemicolon
	tkColon
	tkComma
	tkPeriod
	tkLeftParen
	tkRightParen
	tkLeftBracket
	tkRightBracket
	tkLeftBrace
	tkRightBrace

	// One or two character tokens.
	// =, ==, =>, !, !=, <, <=, >, >=
	tkEqual
	tkEqualEqual
	tkArrow
	tkBang
	tkBangEqual
	tkLess
	tkLessEqual
	tkGreater
	tkGreaterEqual

	// Literals.
	tkIdentifier
	tkNumber
	tkString

	// Keywords.
	// let, if, else, return, fn, while, true, false, null
	tkLet
	tkIf
	tkElse
	tkReturn
	tkFn
	tkWhile
	tkTrue
	tkFalse
	tkNull
)

var tokenNames = map[tokenType]string{
	tkEOF:          "EOF",
	tkPlus:         "PLUS",
	tkMinus:        "MINUS",
	tkSlash:        "SLASH",
	tkStar:         "STAR",
	tkSemicolon:    "SEMICOLON",
	tkColon:        "COLON",
	tkComma:        "COMMA",
	tkPeriod:       "PERIOD",
	tkLeftParen:    "LEFT_PAREN",
	tkRightParen:   "RIGHT_PAREN",
	tkLeftBracket:  "LEFT_BRACKET",
	tkRightBracket: "RIGHT_BRACKET",
	tkLeftBrace:    "LEFT_BRACE",
	tkRightBrace:   "RIGHT_BRACE",
	tkEqual:        "EQUAL",
	tkEqualEqual:   "EQUAL_EQUAL",
	tkArrow:        "ARROW",
	tkBang:         "BANG",
	tkBangEqual:    "BANG_EQUAL",
	tkLess:         "LESS",
	tkLessEqual:    "LESS_EQUAL",
	tkGreater:      "GREATER",
	tkGreaterEqual: "GREATER_EQUAL",
	tkIdentifier:   "IDENTIFIER",
	tkNumber:       "NUMBER",
	tkString:       "STRING",
	tkLet:          "LET",
	tkIf:           "IF",
	tkElse:         "ELSE",
	tkReturn:       "RETURN",
	tkFn:           "FN",
	tkWhile:        "WHILE",
	tkTrue:         "TRUE",
	tkFalse:        "FALSE",
	tkNull:         "NULL",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tokenType(%d)", int(t))
}

// token is a lexical token. For strings the lexeme holds the contents
// without the surrounding quotes.
type token struct {
	token  tokenType
	lexeme string
	line   int
}

func (t token) String() string {
	return fmt.Sprintf("%s %q (line %d)", t.token, t.lexeme, t.line)
}
