package ttl

import "github.com/ttl-lang/ttlc/internal/host"

// TypeVars maps identifiers to host types. Immutable; Extend returns a new
// environment sharing structure with the parent (spec §3: "environments
// flow through the evaluator by value; the recursion is purely
// functional, no environment is ever mutated in place").
type TypeVars struct {
	name   string
	value  host.Type
	parent *TypeVars
}

// NewTypeVars returns an empty TypeVars environment.
func NewTypeVars() *TypeVars { return nil }

// Extend returns a new environment with name bound to t, leaving the
// receiver (and anything already holding it) untouched.
func (e *TypeVars) Extend(name string, t host.Type) *TypeVars {
	return &TypeVars{name: name, value: t, parent: e}
}

// Lookup finds a binding, searching from the most recently extended
// binding outward.
func (e *TypeVars) Lookup(name string) (host.Type, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.value, true
		}
	}
	return nil, false
}

// Has reports whether name is already bound, used by the binder-hygiene
// checks on mapunion/maprecord (spec §4.4, §8 property 5).
func (e *TypeVars) Has(name string) bool {
	_, ok := e.Lookup(name)
	return ok
}

// NameVars maps identifiers to strings. Immutable, same Extend/Lookup shape
// as TypeVars.
type NameVars struct {
	name   string
	value  string
	parent *NameVars
}

// NewNameVars returns an empty NameVars environment.
func NewNameVars() *NameVars { return nil }

func (e *NameVars) Extend(name string, v string) *NameVars {
	return &NameVars{name: name, value: v, parent: e}
}

func (e *NameVars) Lookup(name string) (string, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.value, true
		}
	}
	return "", false
}

func (e *NameVars) Has(name string) bool {
	_, ok := e.Lookup(name)
	return ok
}
