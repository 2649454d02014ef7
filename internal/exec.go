package internal

import (
	"github.com/sirupsen/logrus"
)

// exec walks the tree. Every visit returns a Value; errors are values
// too and each visit hands them back as soon as a sub evaluation yields
// one.
type exec struct {
	state *interpreterState

	globals globals
	env     *Env

	logger   *logrus.Entry
	depth    int
	maxDepth int
}

func (e *exec) interpret(prog *program) Value {
	result := e.executeStmts(prog.statements)
	if ret, ok := result.(*eveReturn); ok {
		return ret.value
	}
	if err, ok := result.(*eveError); ok {
		e.logger.WithField("error", err.message).Debug("runtime error")
	}
	return result
}

func (e *exec) eval(ex expr) Value {
	return ex.accept(e).(Value)
}

func (e *exec) execute(s stmt) Value {
	return s.accept(e).(Value)
}

// executeStmts runs statements in order. The first return or error stops
// the sequence, otherwise the last value is the result.
func (e *exec) executeStmts(stmts []stmt) Value {
	var result Value = null
	for _, s := range stmts {
		result = e.execute(s)
		switch result.(type) {
		case *eveReturn, *eveError:
			return result
		}
	}
	return result
}

func (e *exec) executeBlock(stmts []stmt, env *Env) Value {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	return e.executeStmts(stmts)
}

func (e *exec) visitExprStmt(stmt *exprStmt) R {
	return e.eval(stmt.expression)
}

func (e *exec) visitLetStmt(stmt *letStmt) R {
	var value Value = null
	if stmt.value != nil {
		value = e.eval(stmt.value)
		if isError(value) {
			return value
		}
	}
	return e.env.define(stmt.name.value, value)
}

func (e *exec) visitReturnStmt(stmt *returnStmt) R {
	var value Value = null
	if stmt.expression != nil {
		value = e.eval(stmt.expression)
		if isError(value) {
			return value
		}
	}
	return &eveReturn{value: value}
}

// visitBlockStmt shares the current scope, only calls open new ones
func (e *exec) visitBlockStmt(stmt *blockStmt) R {
	return e.executeStmts(stmt.stmts)
}

func (e *exec) visitIfStmt(stmt *ifStmt) R {
	cond := e.eval(stmt.condition)
	if isError(cond) {
		return cond
	}
	if truthy(cond) {
		return e.execute(stmt.thenArm)
	}
	if stmt.elseArm != nil {
		return e.execute(stmt.elseArm)
	}
	return null
}

func (e *exec) visitWhileStmt(stmt *whileStmt) R {
	var result Value = null
	for {
		cond := e.eval(stmt.condition)
		if isError(cond) {
			return cond
		}
		if !truthy(cond) {
			return result
		}
		result = e.execute(stmt.body)
		switch result.(type) {
		case *eveReturn, *eveError:
			return result
		}
	}
}

func (e *exec) visitIdentifierExpr(expr *identifierExpr) R {
	if fn, ok := e.globals.get(expr.value); ok {
		return fn
	}
	if value, ok := e.env.get(expr.value); ok {
		return value
	}
	return newError("%s is not defined", expr.value)
}

func (e *exec) visitNumberExpr(expr *numberExpr) R {
	return eveNumber(expr.value)
}

func (e *exec) visitStringExpr(expr *stringExpr) R {
	return eveString(expr.value)
}

func (e *exec) visitBooleanExpr(expr *booleanExpr) R {
	return eveBool(expr.value)
}

func (e *exec) visitNullExpr(expr *nullExpr) R {
	return null
}

func (e *exec) visitPrefixExpr(expr *prefixExpr) R {
	right := e.eval(expr.right)
	if isError(right) {
		return right
	}
	return applyPrefix(operator(expr.operator.lexeme), right)
}

func (e *exec) visitInfixExpr(expr *infixExpr) R {
	if expr.operator.token == tkPeriod {
		return e.property(expr)
	}

	left := e.eval(expr.left)
	if isError(left) {
		return left
	}
	right := e.eval(expr.right)
	if isError(right) {
		return right
	}
	return applyInfix(operator(expr.operator.lexeme), left, right)
}

// property resolves receiver.name: hash keys first, then built-in
// methods, null when neither matches
func (e *exec) property(expr *infixExpr) Value {
	receiver := e.eval(expr.left)
	if isError(receiver) {
		return receiver
	}
	name := expr.right.(*propertyExpr).value
	if h, ok := receiver.(*eveHash); ok && h.has(name) {
		return h.get(name)
	}
	return lookupMethod(e, receiver, name)
}

func (e *exec) visitAssignExpr(expr *assignExpr) R {
	id, ok := expr.left.(*identifierExpr)
	if !ok {
		return newError("invalid assignment target: %s", printExpr(expr.left))
	}
	value := e.eval(expr.right)
	if isError(value) {
		return value
	}
	if !e.env.assign(id.value, value) {
		return newError("%s is not defined", id.value)
	}
	return value
}

func (e *exec) visitCallExpr(expr *callExpr) R {
	callee := e.eval(expr.callee)
	if isError(callee) {
		return callee
	}
	arguments := make([]Value, len(expr.arguments))
	for i, arg := range expr.arguments {
		arguments[i] = e.eval(arg)
		if isError(arguments[i]) {
			return arguments[i]
		}
	}
	return e.applyFunction(callee, arguments)
}

// applyFunction calls fn with already evaluated arguments
func (e *exec) applyFunction(fn Value, arguments []Value) Value {
	c, ok := fn.(callable)
	if !ok {
		return newError("not a function: %s", fn.Type())
	}
	if e.maxDepth > 0 && e.depth >= e.maxDepth {
		return newError("maximum call depth exceeded")
	}
	e.depth++
	defer func() {
		e.depth--
	}()
	if e.logger.Logger.IsLevelEnabled(logrus.TraceLevel) {
		e.logger.WithFields(logrus.Fields{
			"function":  fn.Inspect(),
			"arguments": len(arguments),
			"depth":     e.depth,
		}).Trace("call")
	}
	return c.call(e, arguments)
}

func (e *exec) visitIndexExpr(expr *indexExpr) R {
	left := e.eval(expr.left)
	if isError(left) {
		return left
	}
	index := e.eval(expr.index)
	if isError(index) {
		return index
	}
	switch left := left.(type) {
	case eveArray:
		return left.at(index)
	case *eveHash:
		return left.get(index.Inspect())
	case eveString:
		return eveArray(left.chars()).at(index)
	}
	return newError("index operator not supported: %s", left.Type())
}

func (e *exec) visitPropertyExpr(expr *propertyExpr) R {
	return newError("unexpected property name: %s", expr.value)
}

func (e *exec) visitArrayExpr(expr *arrayExpr) R {
	elements := make(eveArray, len(expr.elements))
	for i, el := range expr.elements {
		elements[i] = e.eval(el)
		if isError(elements[i]) {
			return elements[i]
		}
	}
	return elements
}

// visitHashExpr stores every value under the rendered text of its key
func (e *exec) visitHashExpr(expr *hashExpr) R {
	h := newHash()
	for _, pair := range expr.pairs {
		key := e.eval(pair.key)
		if isError(key) {
			return key
		}
		value := e.eval(pair.value)
		if isError(value) {
			return value
		}
		h.set(key.Inspect(), value)
	}
	return h
}

func (e *exec) visitParametersExpr(expr *parametersExpr) R {
	return newError("unexpected parameter list: %s", printExpr(expr))
}

func (e *exec) visitFunctionExpr(expr *functionExpr) R {
	return &eveFunction{declaration: expr, closure: e.env}
}
