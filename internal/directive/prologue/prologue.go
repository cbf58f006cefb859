// Package prologue classifies directive prologue statements such as "use strict".
package prologue

import "github.com/mpyw/unusedexpr/estree"

// LooksLikeDirective reports whether stmt has the shape of a directive:
// an expression statement whose expression is a string literal.
func LooksLikeDirective(stmt estree.Node) bool {
	es, ok := stmt.(*estree.ExpressionStatement)
	if !ok {
		return false
	}
	lit, ok := es.Expression.(*estree.Literal)
	return ok && lit.IsString()
}

// Directives returns the directive prologue of body: its leading run of
// statements that look like directives. The result shares body's backing
// array.
func Directives(body []estree.Stmt) []estree.Stmt {
	for i, stmt := range body {
		if !LooksLikeDirective(stmt) {
			return body[:i]
		}
	}
	return body
}

// IsDirective reports whether stmt is a directive in its position.
// ancestors runs from the root down to stmt's parent.
//
// stmt is a directive when its parent is the Program, or a block whose own
// parent is function-like, and stmt is part of that parent's prologue.
func IsDirective(stmt estree.Stmt, ancestors []estree.Node) bool {
	body, ok := directiveContainer(ancestors)
	if !ok {
		return false
	}
	for _, d := range Directives(body) {
		if d == stmt {
			return true
		}
	}
	return false
}

// directiveContainer returns the statement list of the immediate parent when
// that parent is a place where directives are meaningful.
func directiveContainer(ancestors []estree.Node) ([]estree.Stmt, bool) {
	if len(ancestors) == 0 {
		return nil, false
	}

	switch parent := ancestors[len(ancestors)-1].(type) {
	case *estree.Program:
		return parent.Body, true
	case *estree.BlockStatement:
		if len(ancestors) < 2 {
			return nil, false
		}
		if !ancestors[len(ancestors)-2].Kind().IsFunction() {
			return nil, false
		}
		return parent.Body, true
	default:
		return nil, false
	}
}
