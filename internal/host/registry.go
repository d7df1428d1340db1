package host

import "sort"

// Registry is the named-type table of the reference host; Env pairs it with
// a parent-linked lexical Scope to implement host.Env. Scope.Extend allocates
// a new map and a parent pointer rather than mutating the parent, so
// concurrent reads on disjoint scopes are safe (spec §5) without any locking
// in this package.
type Registry struct {
	named         map[string]Type
	templatizable map[string]bool
}

// NewRegistry creates an empty registry. Use WithNative/WithTemplatizable to
// populate it before building scopes.
func NewRegistry() *Registry {
	return &Registry{
		named:         make(map[string]Type),
		templatizable: make(map[string]bool),
	}
}

// WithNative registers a named host type resolvable via Resolve/TypeName
// lookup (e.g. "number", "string").
func (r *Registry) WithNative(name string, t Type) *Registry {
	r.named[name] = t
	return r
}

// WithTemplatizable marks a named base type as templatizable (e.g. "Array"),
// so type(base, ...) may apply it.
func (r *Registry) WithTemplatizable(name string) *Registry {
	r.templatizable[name] = true
	if _, ok := r.named[name]; !ok {
		r.named[name] = &Native{Name: name}
	}
	return r
}

// Scope is a lexical scope chain of program symbols (spec §4.2's slot(name)
// mechanism): each scope holds its own bindings and a pointer to its parent,
// and lookup walks outward. The named-type registry is a single flat map.
type Scope struct {
	bindings map[string]Type
	parent   *Scope
}

// NewScope creates a root scope with no bindings.
func NewScope() *Scope {
	return &Scope{bindings: make(map[string]Type)}
}

// Extend returns a new child scope with name bound to t, without mutating
// the receiver.
func (s *Scope) Extend(name string, t Type) *Scope {
	return &Scope{bindings: map[string]Type{name: t}, parent: s}
}

func (s *Scope) lookup(name string) (Type, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if t, ok := cur.bindings[name]; ok {
			return t, true
		}
	}
	return nil, false
}

// Env binds a Registry (named types) to a Scope (program symbols) to form a
// concrete host.Env.
type Env struct {
	reg   *Registry
	scope *Scope
}

// NewEnv builds a host.Env from a Registry and a root Scope.
func NewEnv(reg *Registry, scope *Scope) *Env {
	if scope == nil {
		scope = NewScope()
	}
	return &Env{reg: reg, scope: scope}
}

// WithScope returns a new Env sharing this Env's registry but using scope
// in place of the current one, used by integrators to push a call-site
// scope without touching the named-type registry.
func (e *Env) WithScope(scope *Scope) *Env {
	return &Env{reg: e.reg, scope: scope}
}

func (e *Env) Resolve(name string) (Type, bool) {
	if t, ok := e.scope.lookup(name); ok {
		return t, true
	}
	if t, ok := e.reg.named[name]; ok {
		return t, true
	}
	return nil, false
}

func (e *Env) Native(c Canonical) Type {
	switch c {
	case No:
		return &Native{Name: "no"}
	case All:
		return &Native{Name: "all"}
	default:
		return &Native{Name: "unknown"}
	}
}

func (e *Env) Union(types ...Type) Type {
	return dedupUnion(types)
}

func (e *Env) Templatize(base Type, params ...Type) Type {
	return &Templatized{Base: base, Params: append([]Type(nil), params...)}
}

func (e *Env) NewRecordBuilder() RecordBuilder {
	return &recordBuilder{props: make(map[string]Type)}
}

func (e *Env) Slot(name string) (Slot, bool) {
	t, ok := e.scope.lookup(name)
	if !ok {
		return nil, false
	}
	return &slot{typ: t}, true
}

func (e *Env) IsTemplatizable(t Type) bool {
	n, ok := t.(*Native)
	if !ok {
		return false
	}
	return e.reg.templatizable[n.Name]
}

func (e *Env) IsUnion(t Type) ([]Type, bool) {
	u, ok := t.(*Union)
	if !ok {
		return nil, false
	}
	return u.alternates, true
}

func (e *Env) IsTemplatized(t Type) (Type, []Type, bool) {
	app, ok := t.(*Templatized)
	if !ok {
		return nil, nil, false
	}
	return app.Base, app.Params, true
}

func (e *Env) IsRecord(t Type) ([]Property, bool) {
	rec, ok := t.(*Record)
	if !ok {
		return nil, false
	}
	return rec.OwnProperties(), true
}

func (e *Env) IsNoType(t Type) bool {
	n, ok := t.(*Native)
	return ok && n.Name == "no"
}

// Equivalent performs a structural equality check. Native types compare by
// name; Templatized types by base and params; Records by their full
// (unordered) field set; Unions by their alternate set, order-independent.
func (e *Env) Equivalent(a, b Type) bool {
	switch av := a.(type) {
	case *Native:
		bv, ok := b.(*Native)
		return ok && av.Name == bv.Name
	case *Templatized:
		bv, ok := b.(*Templatized)
		if !ok || len(av.Params) != len(bv.Params) || !e.Equivalent(av.Base, bv.Base) {
			return false
		}
		for i := range av.Params {
			if !e.Equivalent(av.Params[i], bv.Params[i]) {
				return false
			}
		}
		return true
	case *Record:
		bv, ok := b.(*Record)
		if !ok || len(av.props) != len(bv.props) {
			return false
		}
		for name, t := range av.props {
			bt, ok := bv.props[name]
			if !ok || !e.Equivalent(t, bt) {
				return false
			}
		}
		return true
	case *Union:
		bv, ok := b.(*Union)
		if !ok || len(av.alternates) != len(bv.alternates) {
			return false
		}
		return e.sameAlternateSet(av.alternates, bv.alternates)
	default:
		return a.String() == b.String()
	}
}

func (e *Env) sameAlternateSet(as, bs []Type) bool {
	used := make([]bool, len(bs))
	for _, a := range as {
		found := false
		for i, b := range bs {
			if used[i] {
				continue
			}
			if e.Equivalent(a, b) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Subtype is width/depth subtyping for records (every field of b present in
// a, with a's field a subtype of b's) and exact-match otherwise; a union is
// a subtype of b when every alternate of a is. This is a minimal but
// well-defined relation sufficient to exercise sub(...), not a full
// structural type system (out of scope per spec §1).
func (e *Env) Subtype(a, b Type) bool {
	if e.Equivalent(a, b) {
		return true
	}
	if av, ok := a.(*Union); ok {
		for _, alt := range av.alternates {
			if !e.Subtype(alt, b) {
				return false
			}
		}
		return true
	}
	if av, ok := a.(*Record); ok {
		if bv, ok := b.(*Record); ok {
			for name, bt := range bv.props {
				at, ok := av.props[name]
				if !ok || !e.Subtype(at, bt) {
					return false
				}
			}
			return true
		}
	}
	return false
}

// NamedType returns the registered host type for name, or nil if absent.
// Convenience accessor for callers (tests, fixtures) that already know a
// name is registered and want the Type directly rather than going through
// Env.Resolve.
func (r *Registry) NamedType(name string) Type {
	return r.named[name]
}

// Names returns the registry's native type names, sorted, for diagnostics.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.named))
	for n := range r.named {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
