// Package keyword defines the closed TTL keyword table (spec §4.1): the
// name -> (kind, min-arity, max-arity) mapping that fixes the DSL surface.
// Lookup is case-insensitive on the surface; the table is keyed by the
// lowercase spelling.
package keyword

import "strings"

// Kind classifies the operational role a keyword plays in the evaluator.
type Kind int

const (
	// TypeConstructor keywords evaluate to a host type directly.
	TypeConstructor Kind = iota
	// Operation keywords evaluate to a host type by combining sub-evaluations.
	Operation
	// BooleanTypePredicate keywords evaluate two type subterms and return bool.
	BooleanTypePredicate
	// BooleanStringPredicate keywords compare two name/string subterms and return bool.
	BooleanStringPredicate
)

func (k Kind) String() string {
	switch k {
	case TypeConstructor:
		return "TYPE_CONSTRUCTOR"
	case Operation:
		return "OPERATION"
	case BooleanTypePredicate:
		return "BOOLEAN_TYPE_PREDICATE"
	case BooleanStringPredicate:
		return "BOOLEAN_STRING_PREDICATE"
	default:
		return "UNKNOWN_KIND"
	}
}

// Unbounded is the sentinel max-arity value for variadic keywords.
const Unbounded = -1

// Spec describes one keyword's arity and kind.
type Spec struct {
	Name string
	Min  int
	Max  int // Unbounded for variadic
	Kind Kind
}

// InRange reports whether n arguments satisfies this keyword's arity.
func (s Spec) InRange(n int) bool {
	if n < s.Min {
		return false
	}
	if s.Max == Unbounded {
		return true
	}
	return n <= s.Max
}

// table is the canonical keyword registry of spec §4.1. It is the single
// source of truth for both the validator and the evaluator's dispatch.
var table = map[string]Spec{
	"all":            {"all", 0, 0, TypeConstructor},
	"none":           {"none", 0, 0, TypeConstructor},
	"unknown":        {"unknown", 0, 0, TypeConstructor},
	"type":           {"type", 2, Unbounded, TypeConstructor},
	"union":          {"union", 2, Unbounded, TypeConstructor},
	"record":         {"record", 1, 1, TypeConstructor},
	"rawtypeof":      {"rawTypeOf", 1, 1, TypeConstructor},
	"templatetypeof": {"templateTypeOf", 2, 2, TypeConstructor},
	"cond":           {"cond", 3, 3, Operation},
	"mapunion":       {"mapunion", 2, 2, Operation},
	"maprecord":      {"maprecord", 2, 2, Operation},
	"typeofvar":      {"typeOfVar", 1, 1, Operation},
	"eq":             {"eq", 2, 2, BooleanTypePredicate},
	"sub":            {"sub", 2, 2, BooleanTypePredicate},
	"streq":          {"streq", 2, 2, BooleanStringPredicate},
}

// Lookup resolves a surface identifier (case-insensitive) to its Spec.
// The returned Spec.Name is the keyword's canonical display spelling as
// fixed in the table above, which is mixed case for rawTypeOf,
// templateTypeOf and typeOfVar; only the table keys are lowercase.
func Lookup(name string) (Spec, bool) {
	s, ok := table[strings.ToLower(name)]
	return s, ok
}

// IsKeyword reports whether name (case-insensitive) is a known TTL keyword.
func IsKeyword(name string) bool {
	_, ok := Lookup(name)
	return ok
}

// FunctionArity reports the number of required formal parameters for a
// function-literal argument to the given keyword, if any. mapunion expects
// 1 (the bound type variable); maprecord expects 2 (name, value).
func FunctionArity(name string) (int, bool) {
	switch strings.ToLower(name) {
	case "mapunion":
		return 1, true
	case "maprecord":
		return 2, true
	default:
		return 0, false
	}
}
