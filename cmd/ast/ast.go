// Command ast generates the AST node definitions of package internal.
//
//	go run ./cmd/ast Expr > internal/expr.go
//	go run ./cmd/ast Stmt > internal/stmt.go
package main

import (
	"fmt"
	"os"
	"strings"
)

var definitions = map[string][]string{
	"Stmt": {
		"Expr: expression expr",
		"Let: name *identifierExpr, value expr",
		"Return: expression expr",
		"Block: stmts []stmt",
		"If: condition expr, thenArm stmt, elseArm stmt",
		"While: condition expr, body stmt",
	},
	"Expr": {
		"Identifier: value string",
		"Number: value float64",
		"String: value string",
		"Boolean: value bool",
		"Null: ",
		"Prefix: operator *token, right expr",
		"Infix: left expr, operator *token, right expr",
		"Assign: left expr, right expr",
		"Call: callee expr, arguments []expr",
		"Index: left expr, index expr",
		"Property: value string",
		"Array: elements []expr",
		"Hash: pairs []hashPair",
		"Parameters: body []*identifierExpr",
		"Function: params *parametersExpr, body *blockStmt",
	},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast Expr|Stmt")
		os.Exit(2)
	}
	types, ok := definitions[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown base type %q\n", os.Args[1])
		os.Exit(2)
	}
	fmt.Print(generateAst(os.Args[1], types))
}

func generateAst(baseName string, types []string) string {
	base := strings.ToLower(baseName)

	out := "// Code generated by cmd/ast. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + base + " interface {\n"
	out += "\taccept(" + base + "Visitor) R\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", base)
	for _, t := range types {
		name := strings.TrimSpace(strings.Split(t, ":")[0])
		out += "\tvisit" + name + baseName + "(" + base + " *" + structName(baseName, name) + ") R\n"
	}
	out += "}\n"
	// End Visitor interface

	for _, t := range types {
		typeDef := strings.SplitN(t, ":", 2)
		out += generateType(baseName, strings.TrimSpace(typeDef[0]), strings.TrimSpace(typeDef[1]))
	}

	return out
}

func structName(baseName, name string) string {
	return strings.ToLower(string(name[0])) + name[1:] + baseName
}

func generateType(baseName, name, fields string) string {
	sn := structName(baseName, name)

	// Start Structure Definition
	out := "\ntype " + sn + " struct {"
	if fields == "" {
		out += "}\n"
	} else {
		out += "\n"
		for _, field := range strings.Split(fields, ",") {
			out += "\t" + strings.TrimSpace(field) + "\n"
		}
		out += "}\n"
	}
	// End Structure Definition

	// Start Method Definition
	out += "\nfunc (s *" + sn + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) R {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n"
	// End Method Definition

	return out
}
