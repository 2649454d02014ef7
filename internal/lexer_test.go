package internal

import (
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func scanSource(source string) []token {
	state := newInterpreterState(source, logrus.NewEntry(logrus.New()))
	return newLexer(state).scan()
}

func checkTokens(t *testing.T, source string, expected ...tokenType) {
	t.Helper()
	tokens := scanSource(source)
	if len(tokens) != len(expected)+1 {
		t.Errorf("%q: expected %d tokens, found %v", source, len(expected)+1, tokens)
		return
	}
	for i, tk := range expected {
		if tokens[i].token != tk {
			t.Errorf("%q: token %d should be %s instead of %s", source, i, tk, tokens[i].token)
		}
	}
	if last := tokens[len(tokens)-1]; last.token != tkEOF {
		t.Errorf("%q: stream should end with EOF, found %s", source, last)
	}
}

func TestLexer(t *testing.T) {
	checkTokens(t, "")
	checkTokens(t, "   \t\r\n")
	checkTokens(t, "let five = 5;", tkLet, tkIdentifier, tkEqual, tkNumber, tkSemicolon)
	checkTokens(t, "+-*/;:,.()[]{}",
		tkPlus, tkMinus, tkStar, tkSlash, tkSemicolon, tkColon, tkComma, tkPeriod,
		tkLeftParen, tkRightParen, tkLeftBracket, tkRightBracket, tkLeftBrace, tkRightBrace)
	checkTokens(t, "= == => ! != < <= > >=",
		tkEqual, tkEqualEqual, tkArrow, tkBang, tkBangEqual,
		tkLess, tkLessEqual, tkGreater, tkGreaterEqual)
	checkTokens(t, "let if else return fn while true false null",
		tkLet, tkIf, tkElse, tkReturn, tkFn, tkWhile, tkTrue, tkFalse, tkNull)
	checkTokens(t, "_a a1 letter fnx", tkIdentifier, tkIdentifier, tkIdentifier, tkIdentifier)
	checkTokens(t, "a // comment ; 'x\nb", tkIdentifier, tkIdentifier)
	checkTokens(t, "1 / 2", tkNumber, tkSlash, tkNumber)
	checkTokens(t, "x=>x", tkIdentifier, tkArrow, tkIdentifier)
	checkTokens(t, "!=>", tkBangEqual, tkGreater)
}

func TestLexemes(t *testing.T) {
	tests := []struct {
		source string
		lexeme string
		line   int
	}{
		{"'hello world'", "hello world", 1},
		{"''", "", 1},
		{"'a\nb'", "a\nb", 1},
		{"\n\n'x'", "x", 3},
		{"1.2.3", "1.2.3", 1},
		{"42", "42", 1},
		{"// only a comment\nname", "name", 2},
	}
	for _, test := range tests {
		tk := scanSource(test.source)[0]
		if tk.lexeme != test.lexeme || tk.line != test.line {
			t.Errorf("%q: expected %q on line %d, found %s", test.source, test.lexeme, test.line, tk)
		}
	}
}

func TestLexerKeepsReturningEOF(t *testing.T) {
	state := newInterpreterState("a", logrus.NewEntry(logrus.New()))
	l := newLexer(state)
	if tk := l.scanToken(); tk.token != tkIdentifier {
		t.Fatalf("expected identifier, found %s", tk)
	}
	for i := 0; i < 3; i++ {
		if tk := l.scanToken(); tk.token != tkEOF {
			t.Errorf("expected EOF, found %s", tk)
		}
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		source string
		err    error
		msg    string
	}{
		{"let a = 'abc", errUnclosedString, "Syntax error: unterminated string (line 1)"},
		{"a\n\n'abc", errUnclosedString, "Syntax error: unterminated string (line 3)"},
		{"let a = 1; @", errIllegalChar, `Syntax error: unrecognized token "@" (line 1)`},
		{"\"double\"", errIllegalChar, `Syntax error: unrecognized token "\"" (line 1)`},
		{"a ∆ b", errIllegalChar, `Syntax error: unrecognized token "∆" (line 1)`},
	}
	for _, test := range tests {
		_, err := Tokens(test.source)
		if !errors.Is(err, test.err) {
			t.Errorf("%q: expected %v, found %v", test.source, test.err, err)
			continue
		}
		if err.Error() != test.msg {
			t.Errorf("%q: expected %q, found %q", test.source, test.msg, err.Error())
		}
	}
}

func TestTokens(t *testing.T) {
	out, err := Tokens("let a = 'x';")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	expected := []string{
		`LET "let" (line 1)`,
		`IDENTIFIER "a" (line 1)`,
		`EQUAL "=" (line 1)`,
		`STRING "x" (line 1)`,
		`SEMICOLON ";" (line 1)`,
		`EOF "" (line 1)`,
	}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, found %q", len(expected), out)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d: expected %s, found %s", i, expected[i], lines[i])
		}
	}
}
