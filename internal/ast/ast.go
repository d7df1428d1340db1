// Package ast defines the AST node shapes the TTL core consumes, as fixed
// by spec §6: name, string literal, number literal, call, function,
// computed-property, and object literal. The general expression parser that
// produces these nodes is an external collaborator (out of scope); this
// package only fixes the shape the validator and evaluator are written
// against.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Pos is a source location, carried on every node for diagnostics.
type Pos struct {
	File   string
	Line   int
	Column int
}

func (p Pos) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Node is the base interface implemented by every node the core looks at.
type Node interface {
	String() string
	Position() Pos
}

// Name is an identifier leaf: a TypeVar reference, a streq operand, a
// function parameter, or a computed-property key.
type Name struct {
	Value string
	Pos   Pos
}

func (n *Name) String() string  { return n.Value }
func (n *Name) Position() Pos   { return n.Pos }

// StringLit is a string literal leaf: a TypeName reference or a streq operand.
type StringLit struct {
	Value string
	Pos   Pos
}

func (s *StringLit) String() string { return strconv.Quote(s.Value) }
func (s *StringLit) Position() Pos  { return s.Pos }

// NumberLit is a numeric literal leaf, used for templateTypeOf's index.
type NumberLit struct {
	Value float64
	Pos   Pos
}

func (n *NumberLit) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (n *NumberLit) Position() Pos  { return n.Pos }

// Call is a call node: head identifier plus ordered arguments.
type Call struct {
	Head Name
	Args []Node
	Pos  Pos
}

func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Head.Value, strings.Join(parts, ", "))
}
func (c *Call) Position() Pos { return c.Pos }

// Param is a function-literal formal parameter (always a Name in this AST).
type Param struct {
	Name Name
}

// Function is a function-literal argument, used by mapunion (1 formal) and
// maprecord (2 formals). Its body is itself a TTL term.
type Function struct {
	Params []Param
	Body   Node
	Pos    Pos
}

func (f *Function) String() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name.Value
	}
	return fmt.Sprintf("(%s) => %s", strings.Join(names, ", "), f.Body.String())
}
func (f *Function) Position() Pos { return f.Pos }

// Property is an entry of an ObjectLiteral: either a plain-name property
// (Computed == nil) or a computed-name property (Computed holds the key
// name expression).
type Property struct {
	PlainName string // set when this is a plain-name property
	Computed  *ComputedProperty
	Value     Node
	Pos       Pos
}

func (p *Property) IsComputed() bool { return p.Computed != nil }

func (p *Property) String() string {
	if p.IsComputed() {
		return fmt.Sprintf("[%s]: %s", p.Computed.Key.Value, p.Value.String())
	}
	return fmt.Sprintf("%s: %s", p.PlainName, p.Value.String())
}
func (p *Property) Position() Pos { return p.Pos }

// ComputedProperty holds the key name of a computed-name property; its
// Value lives on the owning Property.
type ComputedProperty struct {
	Key Name
	Pos Pos
}

func (c *ComputedProperty) String() string { return fmt.Sprintf("[%s]", c.Key.Value) }
func (c *ComputedProperty) Position() Pos  { return c.Pos }

// ObjectLiteral is the sole argument shape accepted by record(...).
type ObjectLiteral struct {
	Properties []*Property
	Pos        Pos
}

func (o *ObjectLiteral) String() string {
	parts := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		parts[i] = p.String()
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}
func (o *ObjectLiteral) Position() Pos { return o.Pos }
