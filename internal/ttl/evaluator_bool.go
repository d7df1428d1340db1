package ttl

import (
	"golang.org/x/text/unicode/norm"

	"github.com/ttl-lang/ttlc/internal/host"
)

// evalBool is eval_bool of spec §4.4: the boolean-valued half of the mutual
// recursion with evalType.
func evalBool(t Term, env host.Env, tv *TypeVars, nv *NameVars, w *Warnings) bool {
	c, ok := t.(*Call)
	if !ok {
		panic("ttl: impossible term shape reached evalBool")
	}
	switch c.Keyword {
	case "eq":
		a := evalType(c.Args[0].Term, env, tv, nv, w)
		b := evalType(c.Args[1].Term, env, tv, nv, w)
		return env.Equivalent(a, b)
	case "sub":
		a := evalType(c.Args[0].Term, env, tv, nv, w)
		b := evalType(c.Args[1].Term, env, tv, nv, w)
		return env.Subtype(a, b)
	case "streq":
		return evalStreq(c, nv, w)
	default:
		panic("ttl: impossible keyword reached evalBool: " + c.Keyword)
	}
}

// evalStreq evaluates streq(a, b) (spec §4.4). Each operand is an
// identifier (resolved through NameVars) or a non-empty string literal
// (already enforced by the validator). If either operand resolves to the
// empty string, the forms return false without comparing; UNKNOWN_STRVAR is
// emitted only when that empty resolution came from an unbound identifier,
// not from a literal (preserved exactly as the source evaluator behaves).
func evalStreq(c *Call, nv *NameVars, w *Warnings) bool {
	a, aEmpty := resolveStreqOperand(c.Args[0].Term, nv, w)
	b, bEmpty := resolveStreqOperand(c.Args[1].Term, nv, w)
	if aEmpty || bEmpty {
		return false
	}
	return norm.NFC.String(a) == norm.NFC.String(b)
}

// resolveStreqOperand resolves one streq operand to its string value.
// emptyResolution is true whenever the value is the empty string, whether
// because it was an unbound identifier (in which case UNKNOWN_STRVAR is
// warned here) or a literal empty string.
func resolveStreqOperand(t Term, nv *NameVars, w *Warnings) (value string, emptyResolution bool) {
	switch leaf := t.(type) {
	case *TypeVar:
		v, ok := nv.Lookup(leaf.Name)
		if !ok {
			w.Add(UnknownStrVar, leaf.At, leaf.Name)
			return "", true
		}
		return v, v == ""
	case *TypeName:
		return leaf.Name, leaf.Name == ""
	default:
		panic("ttl: impossible streq operand shape")
	}
}
