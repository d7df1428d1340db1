package ttl

import (
	"github.com/ttl-lang/ttlc/internal/ast"
	"github.com/ttl-lang/ttlc/internal/keyword"
)

// Validate checks whether n is a well-formed TTL term (spec §4.3) and
// builds the corresponding Term if so. It returns (term, true) on success;
// on failure it returns (nil, false) but still emits as many diagnostics as
// possible by continuing to validate sibling subterms (spec: "warns on
// every rule violation and continues validating siblings when reasonable
// ... but each recursive call returns false as soon as it detects any
// invalidity in its own subterm"). Validation is total: terms are finite
// trees, so this always terminates (spec §4.3).
func Validate(n ast.Node, w *Warnings) (Term, bool) {
	if n == nil {
		w.Add(Invalid, ast.Pos{}, "missing term")
		return nil, false
	}
	if name, ok := asName(n); ok {
		return &TypeVar{Name: name, At: n.Position()}, true
	}
	if s, ok := asStringLit(n); ok {
		return &TypeName{Name: s, At: n.Position()}, true
	}

	head, args, ok := asCall(n)
	if !ok {
		w.Add(Invalid, n.Position(), "expected a name, string literal, or call")
		return nil, false
	}

	spec, ok := keyword.Lookup(head)
	if !ok {
		w.Add(Invalid, n.Position(), head)
		return nil, false
	}
	if len(args) < spec.Min {
		w.Add(MissingParam, n.Position(), spec.Name)
		return nil, false
	}
	if spec.Max != keyword.Unbounded && len(args) > spec.Max {
		w.Add(ExtraParam, n.Position(), spec.Name)
		return nil, false
	}
	if spec.Kind == keyword.BooleanTypePredicate || spec.Kind == keyword.BooleanStringPredicate {
		// Boolean predicates are only meaningful as cond's first argument
		// (spec §4.3); validateCond reaches them via validateBooleanForm,
		// which calls validateForm directly rather than going through this
		// general entry point. Accepting them here would let a boolean
		// form reach evalType, which only handles type-valued keywords.
		w.Add(Invalid, n.Position(), spec.Name+": boolean predicate is only valid as cond's first argument")
		return nil, false
	}

	// Pass the canonical (not surface-cased) keyword name through so every
	// Call.Keyword the evaluator dispatches on is already normalized to the
	// keyword table's spelling (spec.Name), whatever case the source used.
	return validateForm(spec, n, spec.Name, args, w)
}

// validateForm applies the per-keyword shape rules (spec §3, §4.3) once
// arity is already known to be in range.
func validateForm(spec keyword.Spec, n ast.Node, head string, args []ast.Node, w *Warnings) (Term, bool) {
	canonical := spec.Name
	switch canonical {
	case "type":
		return validateType(n, head, args, w)
	case "record":
		return validateRecord(n, head, args, w)
	case "templateTypeOf":
		return validateTemplateTypeOf(n, head, args, w)
	case "mapunion":
		return validateMapUnion(n, head, args, w)
	case "maprecord":
		return validateMapRecord(n, head, args, w)
	case "cond":
		return validateCond(n, head, args, w)
	case "streq":
		return validateStreq(n, head, args, w)
	case "typeOfVar":
		return validateTypeOfVar(n, head, args, w)
	default:
		// all, none, unknown, union, rawTypeOf, eq, sub: every argument is
		// an ordinary TTL term with no additional shape rule beyond arity
		// (already checked).
		return validatePlainArgs(n, head, args, w)
	}
}

// validateTypeOfVar validates typeOfVar(name): the sole argument must be a
// TypeName or TypeVar leaf (spec §4.4 dispatches on its literal spelling as
// a host scope slot name), the same rule validateType applies to type(...)'s
// base argument.
func validateTypeOfVar(n ast.Node, head string, args []ast.Node, w *Warnings) (Term, bool) {
	arg, ok := validateLeafOnly(args[0], w)
	if !ok {
		w.Add(InvalidInside, args[0].Position(), "typeOfVar: argument must be a type name or type variable")
		return nil, false
	}
	return &Call{Keyword: head, At: n.Position(), Args: []Arg{{Term: arg}}}, true
}

// validatePlainArgs validates every argument as an ordinary subterm,
// collecting them in order. Used by forms with no further per-argument
// shape constraint.
func validatePlainArgs(n ast.Node, head string, args []ast.Node, w *Warnings) (Term, bool) {
	call := &Call{Keyword: head, At: n.Position()}
	ok := true
	for _, a := range args {
		t, good := Validate(a, w)
		if !good {
			ok = false
			continue
		}
		call.Args = append(call.Args, Arg{Term: t})
	}
	if !ok {
		return nil, false
	}
	return call, true
}
