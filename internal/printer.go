package internal

import (
	"fmt"
	"strings"
)

// R generic type
type R interface{}

// stringVisitor renders nodes back to canonical source text. Every
// operator application is fully parenthesized.
type stringVisitor struct{}

func printExpr(e expr) string {
	return e.accept(stringVisitor{}).(string)
}

func printStmt(s stmt) string {
	return s.accept(stringVisitor{}).(string)
}

func printProgram(p *program) string {
	out := make([]string, len(p.statements))
	for i, s := range p.statements {
		out[i] = printStmt(s)
	}
	return strings.Join(out, "\n")
}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) R {
	return printExpr(stmt.expression) + ";"
}

func (v stringVisitor) visitLetStmt(stmt *letStmt) R {
	if stmt.value == nil {
		return fmt.Sprintf("let %s;", stmt.name.value)
	}
	return fmt.Sprintf("let %s = %s;", stmt.name.value, printExpr(stmt.value))
}

func (v stringVisitor) visitReturnStmt(stmt *returnStmt) R {
	if stmt.expression == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", printExpr(stmt.expression))
}

func (v stringVisitor) visitBlockStmt(stmt *blockStmt) R {
	out := make([]string, len(stmt.stmts))
	for i, s := range stmt.stmts {
		out[i] = printStmt(s)
	}
	return "{ " + strings.Join(out, "") + " }"
}

func (v stringVisitor) visitIfStmt(stmt *ifStmt) R {
	out := fmt.Sprintf("if (%s) %s", printExpr(stmt.condition), printStmt(stmt.thenArm))
	if stmt.elseArm != nil {
		out += " else " + printStmt(stmt.elseArm)
	}
	return out
}

func (v stringVisitor) visitWhileStmt(stmt *whileStmt) R {
	return fmt.Sprintf("while (%s) %s", printExpr(stmt.condition), printStmt(stmt.body))
}

func (v stringVisitor) visitIdentifierExpr(expr *identifierExpr) R {
	return expr.value
}

func (v stringVisitor) visitNumberExpr(expr *numberExpr) R {
	return formatNumber(expr.value)
}

func (v stringVisitor) visitStringExpr(expr *stringExpr) R {
	return "'" + expr.value + "'"
}

func (v stringVisitor) visitBooleanExpr(expr *booleanExpr) R {
	return fmt.Sprintf("%v", expr.value)
}

func (v stringVisitor) visitNullExpr(expr *nullExpr) R {
	return "null"
}

func (v stringVisitor) visitPrefixExpr(expr *prefixExpr) R {
	return fmt.Sprintf("(%s%s)", expr.operator.lexeme, printExpr(expr.right))
}

func (v stringVisitor) visitInfixExpr(expr *infixExpr) R {
	if expr.operator.token == tkPeriod {
		return printExpr(expr.left) + "." + printExpr(expr.right)
	}
	return fmt.Sprintf("(%s %s %s)", printExpr(expr.left), expr.operator.lexeme, printExpr(expr.right))
}

func (v stringVisitor) visitAssignExpr(expr *assignExpr) R {
	return fmt.Sprintf("(%s = %s)", printExpr(expr.left), printExpr(expr.right))
}

func (v stringVisitor) visitCallExpr(expr *callExpr) R {
	return printExpr(expr.callee) + "(" + printList(expr.arguments) + ")"
}

func (v stringVisitor) visitIndexExpr(expr *indexExpr) R {
	return fmt.Sprintf("%s[%s]", printExpr(expr.left), printExpr(expr.index))
}

func (v stringVisitor) visitPropertyExpr(expr *propertyExpr) R {
	return expr.value
}

func (v stringVisitor) visitArrayExpr(expr *arrayExpr) R {
	return "[" + printList(expr.elements) + "]"
}

func (v stringVisitor) visitHashExpr(expr *hashExpr) R {
	pairs := make([]string, len(expr.pairs))
	for i, pair := range expr.pairs {
		pairs[i] = printExpr(pair.key) + ": " + printExpr(pair.value)
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

func (v stringVisitor) visitParametersExpr(expr *parametersExpr) R {
	names := make([]string, len(expr.body))
	for i, id := range expr.body {
		names[i] = id.value
	}
	return "(" + strings.Join(names, ", ") + ")"
}

func (v stringVisitor) visitFunctionExpr(expr *functionExpr) R {
	return "fn" + printExpr(expr.params) + " " + printStmt(expr.body)
}

func printList(exprs []expr) string {
	out := make([]string, len(exprs))
	for i, e := range exprs {
		out[i] = printExpr(e)
	}
	return strings.Join(out, ", ")
}
