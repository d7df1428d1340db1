// Package ttl implements the Type Transformation Language core: the
// syntactic validator (C3) and semantic evaluator (C4) of spec §3–§4.
package ttl

import (
	"fmt"
	"strings"

	"github.com/ttl-lang/ttlc/internal/ast"
)

// Term is a validated TTL abstract syntax tree node (spec §3). It is a
// closed sum type with four arms: TypeName, TypeVar, IndexLit (only as
// templateTypeOf's index), and Call, whose Keyword field tells the
// keywords apart. A Term is only ever produced by the
// validator (see Validate) and is immutable once built.
type Term interface {
	fmt.Stringer
	termNode()
	// Pos returns the source position of the underlying AST node.
	Pos() ast.Pos
}

// TypeName is a string-literal leaf denoting a host type name.
type TypeName struct {
	Name string
	At   ast.Pos
}

func (t *TypeName) termNode()      {}
func (t *TypeName) Pos() ast.Pos   { return t.At }
func (t *TypeName) String() string { return fmt.Sprintf("%q", t.Name) }

// IndexLit is a non-negative integer literal leaf, used only as
// templateTypeOf's second argument (spec §3).
type IndexLit struct {
	Value int
	At    ast.Pos
}

func (i *IndexLit) termNode()      {}
func (i *IndexLit) Pos() ast.Pos   { return i.At }
func (i *IndexLit) String() string { return fmt.Sprintf("%d", i.Value) }

// TypeVar is an identifier leaf denoting a variable bound in TypeVars.
type TypeVar struct {
	Name string
	At   ast.Pos
}

func (t *TypeVar) termNode()      {}
func (t *TypeVar) Pos() ast.Pos   { return t.At }
func (t *TypeVar) String() string { return t.Name }

// Call is a call term: a keyword head and its ordered argument terms. Some
// arguments are not ordinary Terms: mapunion/maprecord's last argument is a
// function literal (Arg.Func), and record's sole argument is an
// object-literal (Arg.Record).
type Call struct {
	Keyword string // canonical keyword name (keyword.Spec.Name), e.g. "type", "rawTypeOf"
	Args    []Arg
	At      ast.Pos
}

func (c *Call) termNode()    {}
func (c *Call) Pos() ast.Pos { return c.At }
func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Keyword, strings.Join(parts, ", "))
}

// Arg is one argument position of a Call. Exactly one of Term, Func, or
// Record is set, depending on the keyword's per-form rules (spec §3).
type Arg struct {
	Term   Term
	Func   *Func
	Record *RecordLiteral
}

func (a Arg) String() string {
	switch {
	case a.Func != nil:
		return a.Func.String()
	case a.Record != nil:
		return a.Record.String()
	default:
		return a.Term.String()
	}
}

// Func is a function-literal argument: its formals are identifier names and
// its body is itself a validated Term (spec §3: "whose body is itself a TTL
// term and whose formal parameters are identifier leaves").
type Func struct {
	Params []string
	Body   Term
	At     ast.Pos
}

func (f *Func) String() string {
	return fmt.Sprintf("(%s) => %s", strings.Join(f.Params, ", "), f.Body.String())
}

// RecordLiteral is record(...)'s validated object-literal argument: an
// ordered list of properties, each with a value subterm.
type RecordLiteral struct {
	Properties []RecordProperty
	At         ast.Pos
}

func (r *RecordLiteral) String() string {
	parts := make([]string, len(r.Properties))
	for i, p := range r.Properties {
		parts[i] = p.String()
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

// RecordProperty is one property of a RecordLiteral: either a plain-name
// property (Computed == false, Name holds the literal name) or a
// computed-name property (Computed == true, Name holds the key
// identifier to resolve through NameVars at evaluation time).
type RecordProperty struct {
	Name     string
	Computed bool
	Value    Term
}

func (p RecordProperty) String() string {
	if p.Computed {
		return fmt.Sprintf("[%s]: %s", p.Name, p.Value.String())
	}
	return fmt.Sprintf("%s: %s", p.Name, p.Value.String())
}
