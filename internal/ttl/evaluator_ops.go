package ttl

import "github.com/ttl-lang/ttlc/internal/host"

// evalMapUnion evaluates mapunion(u, λx.body) (spec §4.4). The union
// singleton law (spec §8 property 6) falls out of the fallthrough: when the
// evaluated u is not a union, it is a singleton value and the result is
// simply eval(body) under x bound to it.
func evalMapUnion(c *Call, env host.Env, tv *TypeVars, nv *NameVars, w *Warnings) host.Type {
	fn := c.Args[1].Func
	x := fn.Params[0]
	if tv.Has(x) {
		w.Add(DuplicateVariable, c.At, x)
		return env.Native(host.Unknown)
	}

	u := evalType(c.Args[0].Term, env, tv, nv, w)
	alternates, isUnion := env.IsUnion(u)
	if !isUnion {
		return evalType(fn.Body, env, tv.Extend(x, u), nv, w)
	}

	results := make([]host.Type, len(alternates))
	for i, a := range alternates {
		results[i] = evalType(fn.Body, env, tv.Extend(x, a), nv, w)
	}
	return env.Union(results...)
}

// evalMapRecord evaluates maprecord(r, λ(k, v).body) (spec §4.4), applying
// the property merge rule to combine each property's mapped result into the
// accumulator.
func evalMapRecord(c *Call, env host.Env, tv *TypeVars, nv *NameVars, w *Warnings) host.Type {
	r := evalType(c.Args[0].Term, env, tv, nv, w)
	props, isRecord := env.IsRecord(r)
	if !isRecord {
		w.Add(RecTypeInvalid, c.At, r.String())
		return env.Native(host.Unknown)
	}

	fn := c.Args[1].Func
	k, v := fn.Params[0], fn.Params[1]
	fatal := false
	if nv.Has(k) {
		w.Add(DuplicateVariable, c.At, k)
		fatal = true
	}
	if tv.Has(v) {
		w.Add(DuplicateVariable, c.At, v)
		fatal = true
	}
	if fatal {
		return env.Native(host.Unknown)
	}

	acc := make(map[string]host.Type)
	var order []string
	for _, p := range props {
		bodyType := evalType(fn.Body, env, tv.Extend(v, p.Type), nv.Extend(k, p.Name), w)
		if env.IsNoType(bodyType) {
			continue
		}
		ownProps, bodyIsRecord := env.IsRecord(bodyType)
		if !bodyIsRecord {
			w.Add(MapRecordBodyBad, c.At, bodyType.String())
			return env.Native(host.Unknown)
		}
		for _, op := range ownProps {
			mergeProperty(env, acc, &order, op.Name, op.Type)
		}
	}

	rb := env.NewRecordBuilder()
	for _, name := range order {
		rb.Add(name, acc[name])
	}
	return rb.Build()
}
