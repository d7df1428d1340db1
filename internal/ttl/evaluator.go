package ttl

import (
	"strconv"

	"github.com/ttl-lang/ttlc/internal/host"
)

// Eval is the public entry point of component C4 (spec §4.4): it always
// returns a host type, recording warnings for dynamic failures rather than
// aborting. env is the abstract host type environment (spec §4.2); tv and nv
// are the persistent TypeVars/NameVars environments threaded through the
// recursion.
func Eval(t Term, env host.Env, tv *TypeVars, nv *NameVars, w *Warnings) host.Type {
	return evalType(t, env, tv, nv, w)
}

// evalType is eval_type of spec §4.4: the type-valued half of the mutual
// recursion with evalBool. Dispatch is by node shape and, for calls, by
// keyword kind.
func evalType(t Term, env host.Env, tv *TypeVars, nv *NameVars, w *Warnings) host.Type {
	switch n := t.(type) {
	case *TypeName:
		if resolved, ok := env.Resolve(n.Name); ok {
			return resolved
		}
		w.Add(UnknownTypeName, n.At, n.Name)
		return env.Native(host.Unknown)
	case *TypeVar:
		if v, ok := tv.Lookup(n.Name); ok {
			return v
		}
		w.Add(UnknownTypeVar, n.At, n.Name)
		return env.Native(host.Unknown)
	case *Call:
		return evalCall(n, env, tv, nv, w)
	default:
		// The only other Term arm, IndexLit, appears solely as
		// templateTypeOf's index, which evalTemplateTypeOf reads directly;
		// a validated term never brings it here (spec §7: the only panic the core allows
		// is this invariant guard for a malformed keyword reaching the
		// evaluator, which indicates a validator bug).
		panic("ttl: impossible term shape reached evalType")
	}
}

// evalCall dispatches a validated Call by its canonical keyword (spec
// §4.1's kind classification, mirrored in internal/keyword's table).
func evalCall(c *Call, env host.Env, tv *TypeVars, nv *NameVars, w *Warnings) host.Type {
	switch c.Keyword {
	case "all":
		return env.Native(host.All)
	case "none":
		return env.Native(host.No)
	case "unknown":
		return env.Native(host.Unknown)
	case "type":
		return evalTypeConstructor(c, env, tv, nv, w)
	case "union":
		return evalUnion(c, env, tv, nv, w)
	case "record":
		return evalRecord(c, env, tv, nv, w)
	case "rawTypeOf":
		return evalRawTypeOf(c, env, tv, nv, w)
	case "templateTypeOf":
		return evalTemplateTypeOf(c, env, tv, nv, w)
	case "cond":
		return evalCond(c, env, tv, nv, w)
	case "typeOfVar":
		return evalTypeOfVar(c, env, w)
	case "mapunion":
		return evalMapUnion(c, env, tv, nv, w)
	case "maprecord":
		return evalMapRecord(c, env, tv, nv, w)
	default:
		panic("ttl: impossible keyword reached evalType: " + c.Keyword)
	}
}

// evalTypeConstructor evaluates type(base, p1, ..., pk) (spec §4.4).
func evalTypeConstructor(c *Call, env host.Env, tv *TypeVars, nv *NameVars, w *Warnings) host.Type {
	base := evalType(c.Args[0].Term, env, tv, nv, w)
	if !env.IsTemplatizable(base) {
		w.Add(BaseTypeInvalid, c.At, base.String())
		return env.Native(host.Unknown)
	}
	params := make([]host.Type, 0, len(c.Args)-1)
	for _, a := range c.Args[1:] {
		params = append(params, evalType(a.Term, env, tv, nv, w))
	}
	return env.Templatize(base, params...)
}

// evalUnion evaluates union(t1, ..., tn). No flattening is performed here;
// deduplication is the host's responsibility (spec §4.4, §9).
func evalUnion(c *Call, env host.Env, tv *TypeVars, nv *NameVars, w *Warnings) host.Type {
	results := make([]host.Type, len(c.Args))
	for i, a := range c.Args {
		results[i] = evalType(a.Term, env, tv, nv, w)
	}
	return env.Union(results...)
}

// evalRecord evaluates record({name: expr, ...}).
func evalRecord(c *Call, env host.Env, tv *TypeVars, nv *NameVars, w *Warnings) host.Type {
	lit := c.Args[0].Record
	rb := env.NewRecordBuilder()
	for _, p := range lit.Properties {
		name := p.Name
		if p.Computed {
			resolved, ok := nv.Lookup(p.Name)
			if !ok {
				w.Add(UnknownNameVar, lit.At, p.Name)
				return env.Native(host.Unknown)
			}
			name = resolved
		}
		rb.Add(name, evalType(p.Value, env, tv, nv, w))
	}
	return rb.Build()
}

// evalRawTypeOf evaluates rawTypeOf(t).
func evalRawTypeOf(c *Call, env host.Env, tv *TypeVars, nv *NameVars, w *Warnings) host.Type {
	val := evalType(c.Args[0].Term, env, tv, nv, w)
	raw, _, ok := env.IsTemplatized(val)
	if !ok {
		w.Add(TempTypeInvalid, c.At, "rawTypeOf", val.String())
		return env.Native(host.Unknown)
	}
	return raw
}

// evalTemplateTypeOf evaluates templateTypeOf(t, i). The bound check is a
// strict `>`, preserved intentionally from the source behaviour (spec §9):
// an index equal to the parameter count is in-range.
func evalTemplateTypeOf(c *Call, env host.Env, tv *TypeVars, nv *NameVars, w *Warnings) host.Type {
	val := evalType(c.Args[0].Term, env, tv, nv, w)
	_, params, ok := env.IsTemplatized(val)
	if !ok {
		w.Add(TempTypeInvalid, c.At, "templateTypeOf", val.String())
		return env.Native(host.Unknown)
	}
	idx := c.Args[1].Term.(*IndexLit).Value
	if idx > len(params) {
		w.Add(IndexOutOfBounds, c.At, strconv.Itoa(idx), strconv.Itoa(len(params)))
		return env.Native(host.Unknown)
	}
	if idx == len(params) {
		// Preserved off-by-one (spec): i == length is in-range by the
		// strict `>` check above, but there is no parameter at that index.
		// The source evaluator's equivalent out-of-bounds read yields an
		// undefined value here; we surface that as unknown without a
		// warning, since this index was judged in-range.
		return env.Native(host.Unknown)
	}
	return params[idx]
}

// evalTypeOfVar evaluates typeOfVar(name). validateTypeOfVar requires the
// argument to be a TypeName or TypeVar leaf, so it reaches here as one of
// those two shapes; either way its literal spelling is the host scope slot
// name being queried.
func evalTypeOfVar(c *Call, env host.Env, w *Warnings) host.Type {
	var name string
	switch leaf := c.Args[0].Term.(type) {
	case *TypeName:
		name = leaf.Name
	case *TypeVar:
		name = leaf.Name
	default:
		panic("ttl: impossible typeOfVar argument shape")
	}
	slot, ok := env.Slot(name)
	if !ok {
		w.Add(VarUndefined, c.At, name)
		return env.Native(host.Unknown)
	}
	return slot.Type()
}

// evalCond evaluates cond(b, t, e).
func evalCond(c *Call, env host.Env, tv *TypeVars, nv *NameVars, w *Warnings) host.Type {
	if evalBool(c.Args[0].Term, env, tv, nv, w) {
		return evalType(c.Args[1].Term, env, tv, nv, w)
	}
	return evalType(c.Args[2].Term, env, tv, nv, w)
}
