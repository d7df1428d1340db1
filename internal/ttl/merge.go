package ttl

import "github.com/ttl-lang/ttlc/internal/host"

// mergeProperty implements the property merge rule used inside maprecord
// (spec §4.4): when adding (name, next) to acc, if name is absent, insert
// it; if present, let prev = acc[name]. If both prev and next are record
// types, replace with the flat union of their own properties, applying the
// same rule recursively on conflicts; otherwise next replaces prev.
func mergeProperty(env host.Env, acc map[string]host.Type, order *[]string, name string, next host.Type) {
	prev, exists := acc[name]
	if !exists {
		*order = append(*order, name)
		acc[name] = next
		return
	}
	acc[name] = mergeValues(env, prev, next)
}

func mergeValues(env host.Env, prev, next host.Type) host.Type {
	prevProps, prevIsRecord := env.IsRecord(prev)
	nextProps, nextIsRecord := env.IsRecord(next)
	if !prevIsRecord || !nextIsRecord {
		return next
	}

	merged := make(map[string]host.Type, len(prevProps)+len(nextProps))
	var order []string
	for _, p := range prevProps {
		mergeProperty(env, merged, &order, p.Name, p.Type)
	}
	for _, p := range nextProps {
		mergeProperty(env, merged, &order, p.Name, p.Type)
	}

	rb := env.NewRecordBuilder()
	for _, name := range order {
		rb.Add(name, merged[name])
	}
	return rb.Build()
}
