package ttl

import "github.com/ttl-lang/ttlc/internal/ast"

// This file is component C1: uniform accessors over the host AST shape
// fixed by spec §6. The validator and evaluator never type-switch on
// ast.Node themselves; they go through these helpers, so swapping in a
// different concrete AST package that produces the same shape only means
// reimplementing this file.

// asCall reports whether n is a call node, returning its head name and
// ordered arguments.
func asCall(n ast.Node) (head string, args []ast.Node, ok bool) {
	c, ok := n.(*ast.Call)
	if !ok {
		return "", nil, false
	}
	return c.Head.Value, c.Args, true
}

// asFunction reports whether n is a function-literal node, returning its
// formal parameter names and body.
func asFunction(n ast.Node) (params []string, body ast.Node, ok bool) {
	f, ok := n.(*ast.Function)
	if !ok {
		return nil, nil, false
	}
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name.Value
	}
	return names, f.Body, true
}

// asName reports whether n is an identifier leaf.
func asName(n ast.Node) (name string, ok bool) {
	id, ok := n.(*ast.Name)
	if !ok {
		return "", false
	}
	return id.Value, true
}

// asStringLit reports whether n is a string-literal leaf.
func asStringLit(n ast.Node) (value string, ok bool) {
	s, ok := n.(*ast.StringLit)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// asNumberLit reports whether n is a numeric-literal leaf.
func asNumberLit(n ast.Node) (value float64, ok bool) {
	num, ok := n.(*ast.NumberLit)
	if !ok {
		return 0, false
	}
	return num.Value, true
}

// asObjectLiteral reports whether n is an object-literal node, returning its
// properties in source order.
func asObjectLiteral(n ast.Node) (props []*ast.Property, ok bool) {
	o, ok := n.(*ast.ObjectLiteral)
	if !ok {
		return nil, false
	}
	return o.Properties, true
}

// propertyKey returns a property's literal name (plain-name properties) or
// its computed key identifier (computed-name properties), along with
// whether it is computed.
func propertyKey(p *ast.Property) (key string, computed bool) {
	if p.IsComputed() {
		return p.Computed.Key.Value, true
	}
	return p.PlainName, false
}
