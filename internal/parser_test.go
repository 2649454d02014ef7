package internal

import (
	"errors"
	"testing"
)

func checkParse(t *testing.T, source string, expected string) {
	t.Helper()
	out, err := ParseTree(source)
	if err != nil {
		t.Errorf("%s: unexpected error %v", source, err)
		return
	}
	if out != expected {
		t.Errorf("%s:\n\texpected %s\n\tfound    %s", source, expected, out)
	}
}

func TestPrecedence(t *testing.T) {
	checkParse(t, "a + b * c", "(a + (b * c));")
	checkParse(t, "a * b + c", "((a * b) + c);")
	checkParse(t, "a + b - c", "((a + b) - c);")
	checkParse(t, "a * b / c", "((a * b) / c);")
	checkParse(t, "a + b / c", "(a + (b / c));")
	checkParse(t, "-a * b", "((-a) * b);")
	checkParse(t, "!-a", "(!(-a));")
	checkParse(t, "+a", "(+a);")
	checkParse(t, "a == b != c", "((a == b) != c);")
	checkParse(t, "1 < 2 == true", "((1 < 2) == true);")
	checkParse(t, "a + b > c * d", "((a + b) > (c * d));")
	checkParse(t, "a = b = c", "(a = (b = c));")
	checkParse(t, "a = b + c", "(a = (b + c));")
	checkParse(t, "(((a)))", "a;")
	checkParse(t, "(a + b) * c", "((a + b) * c);")
	checkParse(t, "-(a + b)", "(-(a + b));")
}

func TestPostfix(t *testing.T) {
	checkParse(t, "add(a, b * c)", "add(a, (b * c));")
	checkParse(t, "add()", "add();")
	checkParse(t, "a(b)(c)", "a(b)(c);")
	checkParse(t, "a + add(b)[0]", "(a + add(b)[0]);")
	checkParse(t, "[1, 2][3]", "[1, 2][3];")
	checkParse(t, "a[b][c]", "a[b][c];")
	checkParse(t, "a.b.c", "a.b.c;")
	checkParse(t, "a.b(c)", "a.b(c);")
	checkParse(t, "-a.b", "(-a.b);")
	checkParse(t, "a.b + c.d", "(a.b + c.d);")
	checkParse(t, "a // comment\n+ b", "(a + b);")
}

func TestLiterals(t *testing.T) {
	checkParse(t, "10", "10;")
	checkParse(t, "1.5", "1.5;")
	checkParse(t, "1.2.3", "1.2;")
	checkParse(t, "1.", "1;")
	checkParse(t, "'str'", "'str';")
	checkParse(t, "null; true; false", "null;\ntrue;\nfalse;")
	checkParse(t, "[]", "[];")
	checkParse(t, "[1, 'a', [b]]", "[1, 'a', [b]];")
	checkParse(t, "let h = {};", "let h = {};")
	checkParse(t, "let h = {'k': 1 + 2, b: c};", "let h = {'k': (1 + 2), b: c};")
}

func TestFunctionLiterals(t *testing.T) {
	checkParse(t, "fn(x) { return x * x; }", "fn(x) { return (x * x); };")
	checkParse(t, "fn() {}", "fn() {  };")
	checkParse(t, "fn(a, b) { a; b }", "fn(a, b) { a;b; };")
	checkParse(t, "x => x + 1", "fn(x) { (x + 1); };")
	checkParse(t, "(a, b) => a", "fn(a, b) { a; };")
	checkParse(t, "() => 1", "fn() { 1; };")
	checkParse(t, "a => b => c", "fn(a) { fn(b) { c; }; };")
	checkParse(t, "f = x => x", "(f = fn(x) { x; });")
	checkParse(t, "map(x => x * 2)", "map(fn(x) { (x * 2); });")
}

func TestStatementParsing(t *testing.T) {
	checkParse(t, "let a;", "let a;")
	checkParse(t, "let a = 1", "let a = 1;")
	checkParse(t, "let a = 1;;;", "let a = 1;")
	checkParse(t, "return;", "return;")
	checkParse(t, "return", "return;")
	checkParse(t, "return x", "return x;")
	checkParse(t, "{ a; b }", "{ a;b; }")
	checkParse(t, "{}", "{  }")
	checkParse(t, "if (x >= 0) return true; else return false;", "if ((x >= 0)) return true; else return false;")
	checkParse(t, "if (a) { b }", "if (a) { b; }")
	checkParse(t, "if (a) b; else if (c) d; else e;", "if (a) b; else if (c) d; else e;")
	checkParse(t, "while (i < 3) i = i + 1;", "while ((i < 3)) (i = (i + 1));")
	checkParse(t, "while (true) { return; }", "while (true) { return; }")
	checkParse(t, "let a = 1\nlet b = a", "let a = 1;\nlet b = a;")
	checkParse(t, "", "")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		source string
		err    error
		msg    string
	}{
		{"let = 1", errExpectedIdentifier, "Syntax error: expected identifier but found = (line 1)"},
		{"let a = ;", errUnexpectedToken, "Syntax error: unexpected token ; (line 1)"},
		{"1 +", errUnexpectedToken, "Syntax error: unexpected token EOF (line 1)"},
		{")", errUnexpectedToken, "Syntax error: unexpected token ) (line 1)"},
		{"(1 + 2", errUnclosedParen, "Syntax error: expected ')' but found EOF (line 1)"},
		{"f(1, 2", errUnclosedParen, "Syntax error: expected ')' but found EOF (line 1)"},
		{"[1, 2", errUnclosedBracket, "Syntax error: expected ']' but found EOF (line 1)"},
		{"a[1", errUnclosedBracket, "Syntax error: expected ']' but found EOF (line 1)"},
		{"if (true) {\n1;\n", errUnclosedBrace, "Syntax error: expected '}' (line 1)"},
		{"let h = {'a' 1};", errExpectedColon, "Syntax error: expected ':' after key but found 1 (line 1)"},
		{"let h = {'a': 1 'b': 2};", errUnclosedBrace, "Syntax error: expected '}' but found b (line 1)"},
		{"a.", errExpectedProp, "Syntax error: expected property name after '.' but found EOF (line 1)"},
		{"a.1", errExpectedProp, "Syntax error: expected property name after '.' but found 1 (line 1)"},
		{"if true) 1;", errExpectedOpeningParen, "Syntax error: expected '(' but found true (line 1)"},
		{"while (a 1;", errUnclosedParen, "Syntax error: expected ')' but found 1 (line 1)"},
		{"fn(1) {}", errExpectedParam, "Syntax error: expected parameter name but found 1 (line 1)"},
		{"fn(x) x", errExpectedOpeningBrace, "Syntax error: expected '{' but found x (line 1)"},
		{"(a, b) + 1", errExpectedArrow, "Syntax error: expected '=>' after parameter list but found + (line 1)"},
		{"() + 1", errExpectedArrow, "Syntax error: expected '=>' after parameter list but found + (line 1)"},
		{"(1, 2) => 3", errExpectedParam, "Syntax error: expected parameter name 1 (line 1)"},
		{"1 => 2", errExpectedParam, "Syntax error: expected parameter name 1 (line 1)"},
		{"if (c) ;", errUnexpectedToken, "Syntax error: unexpected token ; (line 1)"},
		{"while (c) ;", errUnexpectedToken, "Syntax error: unexpected token ; (line 1)"},
		{"if (c) 1; else ;", errUnexpectedToken, "Syntax error: unexpected token ; (line 1)"},
		{"let a = 1;\nlet b = (2;", errUnclosedParen, "Syntax error: expected ')' but found ; (line 2)"},
	}
	for _, test := range tests {
		_, err := Run(test.source, NewEnv(nil))
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q: expected a syntax error, found %v", test.source, err)
			continue
		}
		if !errors.Is(err, test.err) {
			t.Errorf("%q: expected %v, found %v", test.source, test.err, se.Err)
		}
		if se.Error() != test.msg {
			t.Errorf("%q:\n\texpected %s\n\tfound    %s", test.source, test.msg, se.Error())
		}
	}
}

func TestSyntaxErrorStopsBeforeEvaluation(t *testing.T) {
	sources := []string{
		"print(1);\nlet = 2;",
		"if (print('condition')) ;",
		"while (print('condition')) ;",
	}
	for _, source := range sources {
		tp := &testPrinter{}
		_, err := RunWithOptions(source, nil, Options{Printer: tp})
		if err == nil {
			t.Errorf("%q: expected a syntax error", source)
		}
		if tp.printed != "" {
			t.Errorf("%q: nothing should run, found %q", source, tp.printed)
		}
	}
}
