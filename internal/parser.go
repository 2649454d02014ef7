package internal

import (
	"strconv"
	"strings"
)

//go:generate sh -c "go run ../cmd/ast Expr > expr.go && go run ../cmd/ast Stmt > stmt.go && gofmt -w expr.go stmt.go"

type program struct {
	statements []stmt
}

type hashPair struct {
	key   expr
	value expr
}

type precedence int

const (
	precLowest precedence = iota
	precAssignment
	precConditional
	precSum
	precProduct
	precPrefix
	precCall
)

var precedences = map[tokenType]precedence{
	tkEqual:        precAssignment,
	tkArrow:        precAssignment,
	tkEqualEqual:   precConditional,
	tkBangEqual:    precConditional,
	tkLess:         precConditional,
	tkLessEqual:    precConditional,
	tkGreater:      precConditional,
	tkGreaterEqual: precConditional,
	tkPlus:         precSum,
	tkMinus:        precSum,
	tkSlash:        precProduct,
	tkStar:         precProduct,
	tkLeftParen:    precCall,
	tkLeftBracket:  precCall,
	tkPeriod:       precCall,
}

type (
	prefixParseFn func() expr
	infixParseFn  func(left expr) expr
)

// parser stores parser data. It pulls tokens from the lexer keeping
// two of them in sight: cur and peek.
type parser struct {
	lexer *lexer
	cur   token
	peek  token

	prefixParsers map[tokenType]prefixParseFn
	infixParsers  map[tokenType]infixParseFn

	state *interpreterState
}

func newParser(state *interpreterState) *parser {
	p := &parser{
		lexer: newLexer(state),
		state: state,
	}

	p.prefixParsers = map[tokenType]prefixParseFn{
		tkIdentifier:  p.identifier,
		tkNumber:      p.number,
		tkString:      p.string,
		tkTrue:        p.boolean,
		tkFalse:       p.boolean,
		tkNull:        p.null,
		tkMinus:       p.prefix,
		tkPlus:        p.prefix,
		tkBang:        p.prefix,
		tkLeftParen:   p.group,
		tkLeftBracket: p.array,
		tkLeftBrace:   p.hash,
		tkFn:          p.function,
	}

	p.infixParsers = map[tokenType]infixParseFn{
		tkEqual:       p.assignment,
		tkArrow:       p.lambda,
		tkLeftParen:   p.call,
		tkLeftBracket: p.index,
		tkPeriod:      p.property,
	}
	for _, tk := range []tokenType{
		tkPlus, tkMinus, tkSlash, tkStar,
		tkEqualEqual, tkBangEqual,
		tkLess, tkLessEqual, tkGreater, tkGreaterEqual,
	} {
		p.infixParsers[tk] = p.infix
	}

	// Fill cur and peek
	p.advance()
	p.advance()

	return p
}

func (p *parser) parseProgram() *program {
	prog := &program{statements: make([]stmt, 0)}
	for !p.curIs(tkEOF) && p.state.Valid() {
		if st := p.parseStatement(); st != nil {
			prog.statements = append(prog.statements, st)
		}
	}
	p.state.logger.WithField("statements", len(prog.statements)).Debug("parsed program")
	return prog
}

// parseStatement leaves cur on the first token after the statement,
// an optional trailing ';' included.
func (p *parser) parseStatement() stmt {
	var st stmt
	switch p.cur.token {
	case tkSemicolon:
		p.advance()
		return nil
	case tkLet:
		st = p.letStatement()
	case tkIf:
		st = p.ifStatement()
	case tkReturn:
		st = p.returnStatement()
	case tkWhile:
		st = p.whileStatement()
	case tkLeftBrace:
		st = p.blockStatement()
	default:
		st = p.expressionStatement()
	}
	if st == nil {
		return nil
	}
	if p.curIs(tkSemicolon) {
		p.advance()
	}
	return st
}

func (p *parser) letStatement() stmt {
	if !p.expectPeek(tkIdentifier, errExpectedIdentifier) {
		return nil
	}
	st := &letStmt{name: &identifierExpr{value: p.cur.lexeme}}

	if p.peekIs(tkEqual) {
		p.advance()
		p.advance()
		st.value = p.parseExpression(precLowest)
		if st.value == nil {
			return nil
		}
	}
	p.advance()
	return st
}

func (p *parser) returnStatement() stmt {
	if p.peekIs(tkSemicolon) || p.peekIs(tkRightBrace) || p.peekIs(tkEOF) {
		p.advance()
		return &returnStmt{}
	}
	p.advance()
	value := p.parseExpression(precLowest)
	if value == nil {
		return nil
	}
	p.advance()
	return &returnStmt{expression: value}
}

func (p *parser) ifStatement() stmt {
	cond := p.condition()
	if cond == nil {
		return nil
	}
	st := &ifStmt{condition: cond}
	if st.thenArm = p.armStatement(); st.thenArm == nil {
		return nil
	}
	if p.curIs(tkElse) {
		p.advance()
		if st.elseArm = p.armStatement(); st.elseArm == nil {
			return nil
		}
	}
	return st
}

func (p *parser) whileStatement() stmt {
	cond := p.condition()
	if cond == nil {
		return nil
	}
	body := p.armStatement()
	if body == nil {
		return nil
	}
	return &whileStmt{condition: cond, body: body}
}

// armStatement parses the body of if, else and while. A lone ';' is not
// a statement there.
func (p *parser) armStatement() stmt {
	if p.curIs(tkSemicolon) {
		p.state.setError(errUnexpectedToken, p.cur.line, p.cur.lexeme)
		return nil
	}
	return p.parseStatement()
}

// condition parses '(' expression ')' and leaves cur on the token that
// follows the closing paren.
func (p *parser) condition() expr {
	if !p.expectPeek(tkLeftParen, errExpectedOpeningParen) {
		return nil
	}
	p.advance()
	cond := p.parseExpression(precLowest)
	if cond == nil || !p.expectPeek(tkRightParen, errUnclosedParen) {
		return nil
	}
	p.advance()
	return cond
}

func (p *parser) blockStatement() stmt {
	block := p.block()
	if block == nil {
		return nil
	}
	p.advance()
	return block
}

// block parses '{' statements '}' leaving cur on the closing brace
func (p *parser) block() *blockStmt {
	line := p.cur.line
	p.advance()
	block := &blockStmt{stmts: make([]stmt, 0)}
	for !p.curIs(tkRightBrace) {
		if p.curIs(tkEOF) {
			p.state.setError(errUnclosedBrace, line, "")
			return nil
		}
		st := p.parseStatement()
		if !p.state.Valid() {
			return nil
		}
		if st != nil {
			block.stmts = append(block.stmts, st)
		}
	}
	return block
}

func (p *parser) expressionStatement() stmt {
	e := p.parseExpression(precLowest)
	if e == nil {
		return nil
	}
	p.advance()
	return &exprStmt{expression: e}
}

// parseExpression starts on the first token of an expression and stops on
// its last one.
func (p *parser) parseExpression(prec precedence) expr {
	prefix, ok := p.prefixParsers[p.cur.token]
	if !ok {
		detail := p.cur.lexeme
		if p.curIs(tkEOF) {
			detail = tkEOF.String()
		}
		p.state.fatalError(errUnexpectedToken, p.cur.line, detail)
	}

	left := prefix()
	for left != nil && prec < p.peekPrecedence() {
		infix, ok := p.infixParsers[p.peek.token]
		if !ok {
			return left
		}
		p.advance()
		left = infix(left)
	}
	return left
}

func (p *parser) identifier() expr {
	return &identifierExpr{value: p.cur.lexeme}
}

func (p *parser) number() expr {
	return &numberExpr{value: parseNumber(p.cur.lexeme)}
}

func (p *parser) string() expr {
	return &stringExpr{value: p.cur.lexeme}
}

func (p *parser) boolean() expr {
	return &booleanExpr{value: p.curIs(tkTrue)}
}

func (p *parser) null() expr {
	return &nullExpr{}
}

func (p *parser) prefix() expr {
	operator := p.cur
	p.advance()
	right := p.parseExpression(precPrefix)
	if right == nil {
		return nil
	}
	return &prefixExpr{operator: &operator, right: right}
}

func (p *parser) infix(left expr) expr {
	operator := p.cur
	prec := p.curPrecedence()
	p.advance()
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	return &infixExpr{left: left, operator: &operator, right: right}
}

// assignment is right associative: a = b = c is a = (b = c)
func (p *parser) assignment(left expr) expr {
	p.advance()
	right := p.parseExpression(precLowest)
	if right == nil {
		return nil
	}
	return &assignExpr{left: left, right: right}
}

// group parses a parenthesized expression. A comma separated list of
// identifiers, or an empty pair of parens, is the parameter list of an
// arrow function.
func (p *parser) group() expr {
	if p.peekIs(tkRightParen) {
		p.advance()
		return p.arrow(&parametersExpr{body: make([]*identifierExpr, 0)})
	}

	p.advance()
	first := p.parseExpression(precLowest)
	if first == nil {
		return nil
	}
	if !p.peekIs(tkComma) {
		if !p.expectPeek(tkRightParen, errUnclosedParen) {
			return nil
		}
		return first
	}

	exprs := []expr{first}
	for p.peekIs(tkComma) {
		p.advance()
		p.advance()
		e := p.parseExpression(precLowest)
		if e == nil {
			return nil
		}
		exprs = append(exprs, e)
	}
	if !p.expectPeek(tkRightParen, errUnclosedParen) {
		return nil
	}

	params := &parametersExpr{body: make([]*identifierExpr, 0, len(exprs))}
	for _, e := range exprs {
		id, ok := e.(*identifierExpr)
		if !ok {
			p.state.setError(errExpectedParam, p.cur.line, printExpr(e))
			return nil
		}
		params.body = append(params.body, id)
	}
	return p.arrow(params)
}

// arrow expects '=>' right after a parameter list
func (p *parser) arrow(params *parametersExpr) expr {
	if !p.expectPeek(tkArrow, errExpectedArrow) {
		return nil
	}
	return p.lambdaBody(params)
}

// lambda handles x => expr
func (p *parser) lambda(left expr) expr {
	id, ok := left.(*identifierExpr)
	if !ok {
		p.state.setError(errExpectedParam, p.cur.line, printExpr(left))
		return nil
	}
	return p.lambdaBody(&parametersExpr{body: []*identifierExpr{id}})
}

func (p *parser) lambdaBody(params *parametersExpr) expr {
	p.advance()
	body := p.parseExpression(precLowest)
	if body == nil {
		return nil
	}
	return &functionExpr{
		params: params,
		body:   &blockStmt{stmts: []stmt{&exprStmt{expression: body}}},
	}
}

func (p *parser) function() expr {
	if !p.expectPeek(tkLeftParen, errExpectedOpeningParen) {
		return nil
	}

	params := &parametersExpr{body: make([]*identifierExpr, 0)}
	if p.peekIs(tkRightParen) {
		p.advance()
	} else {
		for {
			if !p.expectPeek(tkIdentifier, errExpectedParam) {
				return nil
			}
			params.body = append(params.body, &identifierExpr{value: p.cur.lexeme})
			if !p.peekIs(tkComma) {
				break
			}
			p.advance()
		}
		if !p.expectPeek(tkRightParen, errUnclosedParen) {
			return nil
		}
	}

	if !p.expectPeek(tkLeftBrace, errExpectedOpeningBrace) {
		return nil
	}
	body := p.block()
	if body == nil {
		return nil
	}
	return &functionExpr{params: params, body: body}
}

func (p *parser) array() expr {
	elements := p.expressionList(tkRightBracket, errUnclosedBracket)
	if elements == nil {
		return nil
	}
	return &arrayExpr{elements: elements}
}

// hash parses {key: value, ...}. Keys are arbitrary expressions.
func (p *parser) hash() expr {
	pairs := make([]hashPair, 0)
	for !p.peekIs(tkRightBrace) {
		p.advance()
		key := p.parseExpression(precLowest)
		if key == nil || !p.expectPeek(tkColon, errExpectedColon) {
			return nil
		}
		p.advance()
		value := p.parseExpression(precLowest)
		if value == nil {
			return nil
		}
		pairs = append(pairs, hashPair{key: key, value: value})
		if !p.peekIs(tkRightBrace) && !p.expectPeek(tkComma, errUnclosedBrace) {
			return nil
		}
	}
	p.advance()
	return &hashExpr{pairs: pairs}
}

func (p *parser) call(callee expr) expr {
	arguments := p.expressionList(tkRightParen, errUnclosedParen)
	if arguments == nil {
		return nil
	}
	return &callExpr{callee: callee, arguments: arguments}
}

func (p *parser) index(left expr) expr {
	p.advance()
	idx := p.parseExpression(precLowest)
	if idx == nil || !p.expectPeek(tkRightBracket, errUnclosedBracket) {
		return nil
	}
	return &indexExpr{left: left, index: idx}
}

func (p *parser) property(left expr) expr {
	operator := p.cur
	if !p.expectPeek(tkIdentifier, errExpectedProp) {
		return nil
	}
	return &infixExpr{
		left:     left,
		operator: &operator,
		right:    &propertyExpr{value: p.cur.lexeme},
	}
}

// expressionList parses comma separated expressions up to end. The
// result is nil only on failure.
func (p *parser) expressionList(end tokenType, err error) []expr {
	list := make([]expr, 0)
	if p.peekIs(end) {
		p.advance()
		return list
	}

	p.advance()
	for {
		e := p.parseExpression(precLowest)
		if e == nil {
			return nil
		}
		list = append(list, e)
		if !p.peekIs(tkComma) {
			break
		}
		p.advance()
		p.advance()
	}

	if !p.expectPeek(end, err) {
		return nil
	}
	return list
}

func (p *parser) advance() {
	p.cur = p.peek
	p.peek = p.lexer.scanToken()
}

func (p *parser) curIs(tk tokenType) bool {
	return p.cur.token == tk
}

func (p *parser) peekIs(tk tokenType) bool {
	return p.peek.token == tk
}

// expectPeek advances when peek has the expected type, otherwise it
// records err and reports false
func (p *parser) expectPeek(tk tokenType, err error) bool {
	if p.peekIs(tk) {
		p.advance()
		return true
	}
	found := p.peek.lexeme
	if p.peekIs(tkEOF) {
		found = tkEOF.String()
	}
	p.state.setError(err, p.peek.line, "but found "+found)
	return false
}

func (p *parser) peekPrecedence() precedence {
	if prec, ok := precedences[p.peek.token]; ok {
		return prec
	}
	return precLowest
}

func (p *parser) curPrecedence() precedence {
	if prec, ok := precedences[p.cur.token]; ok {
		return prec
	}
	return precLowest
}

// parseNumber reads the longest valid decimal prefix of a number lexeme,
// so 1.2.3 is 1.2
func parseNumber(lexeme string) float64 {
	if first := strings.IndexByte(lexeme, '.'); first >= 0 {
		if second := strings.IndexByte(lexeme[first+1:], '.'); second >= 0 {
			lexeme = lexeme[:first+1+second]
		}
	}
	lexeme = strings.TrimSuffix(lexeme, ".")
	value, _ := strconv.ParseFloat(lexeme, 64)
	return value
}
