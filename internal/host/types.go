package host

import (
	"fmt"
	"strings"
)

// Native is a host-native type: one of the three canonical types (unknown,
// no, all) or a named primitive/nominal type resolved out of a registry.
type Native struct {
	Name string
}

func (n *Native) String() string { return n.Name }

// Templatized is a host type formed by applying a templatizable base to an
// ordered tuple of type parameters.
type Templatized struct {
	Base   Type
	Params []Type
}

func (t *Templatized) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s<%s>", t.Base.String(), strings.Join(parts, ", "))
}

// Union is a deduplicated union of alternates, in first-seen order: members
// are kept in a stable slice rather than a set, so iteration order is
// deterministic and observable (spec §9: "ordering of alternates follows
// the host's alternates() iteration").
type Union struct {
	alternates []Type
}

func (u *Union) String() string {
	parts := make([]string, len(u.alternates))
	for i, a := range u.alternates {
		parts[i] = a.String()
	}
	return strings.Join(parts, " | ")
}

// Alternates returns the union's members in iteration order.
func (u *Union) Alternates() []Type { return u.alternates }

// Record is a host structural type with named properties, in insertion
// order. No row polymorphism (not needed by TTL: spec §4.2 only requires
// own_properties()).
type Record struct {
	order []string
	props map[string]Type
}

func (r *Record) String() string {
	parts := make([]string, 0, len(r.order))
	for _, name := range r.order {
		parts = append(parts, fmt.Sprintf("%s: %s", name, r.props[name].String()))
	}
	return fmt.Sprintf("{ %s }", strings.Join(parts, ", "))
}

// OwnProperties returns the record's (name, type) pairs in insertion order.
func (r *Record) OwnProperties() []Property {
	out := make([]Property, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Property{Name: name, Type: r.props[name]})
	}
	return out
}

// recordBuilder is the reference RecordBuilder implementation.
type recordBuilder struct {
	order []string
	props map[string]Type
}

func (b *recordBuilder) Add(name string, t Type) {
	if _, exists := b.props[name]; !exists {
		b.order = append(b.order, name)
	}
	b.props[name] = t
}

func (b *recordBuilder) Build() Type {
	order := make([]string, len(b.order))
	copy(order, b.order)
	props := make(map[string]Type, len(b.props))
	for k, v := range b.props {
		props[k] = v
	}
	return &Record{order: order, props: props}
}

// slot is the reference Slot implementation.
type slot struct {
	typ Type
}

func (s *slot) Type() Type { return s.typ }

// Builder provides a fluent API for constructing reference host.Type
// values in tests and fixtures.
type Builder struct{}

// NewBuilder creates a new reference type builder.
func NewBuilder() *Builder { return &Builder{} }

// Named returns a named host type not backed by the canonical sentinels
// (e.g. a templatizable base like "Array", or a nominal record constructor
// name).
func (b *Builder) Named(name string) Type { return &Native{Name: name} }

// Templatized builds a Templatized type directly (bypassing Env.Templatize),
// useful for constructing fixture data.
func (b *Builder) Templatized(base Type, params ...Type) Type {
	return &Templatized{Base: base, Params: params}
}

// Record builds a Record from name/type pairs, preserving the given order.
func (b *Builder) Record(fields ...Property) Type {
	rb := &recordBuilder{props: make(map[string]Type)}
	for _, f := range fields {
		rb.Add(f.Name, f.Type)
	}
	return rb.Build()
}

// Union builds a deduplicated Union directly, for fixtures.
func (b *Builder) Union(types ...Type) Type {
	return dedupUnion(types)
}

// dedupUnion flattens nothing (spec §9: no flattening by the evaluator) but
// deduplicates alternates by their String() representation, first-seen
// order preserved, mirroring a registry whose equivalence check is
// structural.
func dedupUnion(types []Type) Type {
	seen := make(map[string]bool, len(types))
	out := make([]Type, 0, len(types))
	for _, t := range types {
		key := t.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	if len(out) == 1 {
		return out[0]
	}
	return &Union{alternates: out}
}
