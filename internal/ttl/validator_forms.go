package ttl

import (
	"github.com/ttl-lang/ttlc/internal/ast"
	"github.com/ttl-lang/ttlc/internal/keyword"
)

// validateType validates type(base, p1, ..., pk): base must be a TypeName
// or TypeVar leaf (spec §3); the remaining parameters are ordinary terms.
func validateType(n ast.Node, head string, args []ast.Node, w *Warnings) (Term, bool) {
	call := &Call{Keyword: head, At: n.Position()}
	ok := true

	base, baseOK := validateLeafOnly(args[0], w)
	if !baseOK {
		w.Add(InvalidInside, args[0].Position(), "type: first argument must be a type name or type variable")
		ok = false
	} else {
		call.Args = append(call.Args, Arg{Term: base})
	}

	for _, a := range args[1:] {
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

// validateLeafOnly validates n as a TypeName or TypeVar leaf specifically
// (not any call), used for type(...)'s base argument.
func validateLeafOnly(n ast.Node, w *Warnings) (Term, bool) {
	if name, ok := asName(n); ok {
		return &TypeVar{Name: name, At: n.Position()}, true
	}
	if s, ok := asStringLit(n); ok {
		return &TypeName{Name: s, At: n.Position()}, true
	}
	return nil, false
}

// validateRecord validates record({...}): the sole argument must be an
// object literal whose properties each carry a value subterm (spec §3,
// §4.3). Plain-name and computed-name properties are both valid; computed
// name resolution is deferred to evaluation.
func validateRecord(n ast.Node, head string, args []ast.Node, w *Warnings) (Term, bool) {
	props, isObj := asObjectLiteral(args[0])
	if !isObj {
		w.Add(InvalidExpression, args[0].Position(), "record: argument must be an object literal")
		return nil, false
	}

	lit := &RecordLiteral{At: args[0].Position()}
	ok := true
	for _, p := range props {
		key, computed := propertyKey(p)
		valueNode := p.Value
		if valueNode == nil {
			w.Add(Invalid, p.Position(), "record: property must have a value")
			ok = false
			continue
		}
		val, good := Validate(valueNode, w)
		if !good {
			ok = false
			continue
		}
		lit.Properties = append(lit.Properties, RecordProperty{Name: key, Computed: computed, Value: val})
	}
	if !ok {
		return nil, false
	}
	return &Call{Keyword: head, At: n.Position(), Args: []Arg{{Record: lit}}}, true
}

// validateTemplateTypeOf validates templateTypeOf(t, i): t is an ordinary
// term; i must be a non-negative integer literal (spec §3, §4.3).
func validateTemplateTypeOf(n ast.Node, head string, args []ast.Node, w *Warnings) (Term, bool) {
	call := &Call{Keyword: head, At: n.Position()}
	ok := true

	t, good := Validate(args[0], w)
	if !good {
		ok = false
	} else {
		call.Args = append(call.Args, Arg{Term: t})
	}

	idx, isNum := asNumberLit(args[1])
	if !isNum || idx < 0 || idx != float64(int64(idx)) {
		w.Add(InvalidInside, args[1].Position(), "templateTypeOf: index must be a non-negative integer literal")
		ok = false
	} else {
		call.Args = append(call.Args, Arg{Term: &IndexLit{Value: int(idx), At: args[1].Position()}})
	}

	if !ok {
		return nil, false
	}
	return call, true
}

// validateMapUnion validates mapunion(u, λx.body): u is an ordinary term;
// the second argument must be a function literal with exactly one formal
// (spec §3: "function-shaped arguments ... have exactly the required
// number of formals").
func validateMapUnion(n ast.Node, head string, args []ast.Node, w *Warnings) (Term, bool) {
	return validateHigherOrder(n, head, args, 1, w)
}

// validateMapRecord validates maprecord(r, λ(k,v).body): r is an ordinary
// term; the second argument must be a function literal with exactly two
// formals.
func validateMapRecord(n ast.Node, head string, args []ast.Node, w *Warnings) (Term, bool) {
	return validateHigherOrder(n, head, args, 2, w)
}

func validateHigherOrder(n ast.Node, head string, args []ast.Node, wantFormals int, w *Warnings) (Term, bool) {
	call := &Call{Keyword: head, At: n.Position()}
	ok := true

	first, good := Validate(args[0], w)
	if !good {
		ok = false
	} else {
		call.Args = append(call.Args, Arg{Term: first})
	}

	params, body, isFunc := asFunction(args[1])
	if !isFunc {
		w.Add(InvalidExpression, args[1].Position(), head+": second argument must be a function literal")
		return nil, false
	}
	if len(params) != wantFormals {
		w.Add(Invalid, args[1].Position(), head+": function literal has the wrong number of parameters")
		ok = false
	}
	bodyTerm, bodyOK := Validate(body, w)
	if !bodyOK {
		ok = false
	}
	if !ok {
		return nil, false
	}
	call.Args = append(call.Args, Arg{Func: &Func{Params: params, Body: bodyTerm, At: args[1].Position()}})
	return call, true
}

// validateCond validates cond(b, t, e): b must itself be a valid boolean
// form (spec §4.3: "the head keyword must be a boolean predicate; its
// arguments must satisfy that predicate's sub-rules"); t and e are ordinary
// terms.
func validateCond(n ast.Node, head string, args []ast.Node, w *Warnings) (Term, bool) {
	call := &Call{Keyword: head, At: n.Position()}
	ok := true

	condTerm, condOK := validateBooleanForm(args[0], w)
	if !condOK {
		ok = false
	} else {
		call.Args = append(call.Args, Arg{Term: condTerm})
	}

	for _, a := range args[1:] {
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

// validateBooleanForm validates n as a call whose head is one of the
// boolean predicate keywords (eq, sub, streq), applying that keyword's own
// sub-rules.
func validateBooleanForm(n ast.Node, w *Warnings) (Term, bool) {
	head, args, ok := asCall(n)
	if !ok {
		w.Add(InvalidInside, n.Position(), "cond: first argument must be a boolean predicate call")
		return nil, false
	}
	spec, ok := keyword.Lookup(head)
	if !ok || (spec.Kind != keyword.BooleanTypePredicate && spec.Kind != keyword.BooleanStringPredicate) {
		w.Add(InvalidInside, n.Position(), "cond: first argument must be eq, sub, or streq")
		return nil, false
	}
	if len(args) < spec.Min {
		w.Add(MissingParam, n.Position(), spec.Name)
		return nil, false
	}
	if !spec.InRange(len(args)) {
		w.Add(ExtraParam, n.Position(), spec.Name)
		return nil, false
	}
	return validateForm(spec, n, spec.Name, args, w)
}

// validateStreq validates streq(a, b): each argument must be an identifier
// leaf or a non-empty string literal (spec §3, §4.3).
func validateStreq(n ast.Node, head string, args []ast.Node, w *Warnings) (Term, bool) {
	call := &Call{Keyword: head, At: n.Position()}
	ok := true
	for _, a := range args {
		t, good := validateStreqOperand(a, w)
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

func validateStreqOperand(n ast.Node, w *Warnings) (Term, bool) {
	if name, ok := asName(n); ok {
		return &TypeVar{Name: name, At: n.Position()}, true
	}
	if s, ok := asStringLit(n); ok {
		if s == "" {
			w.Add(InvalidExpression, n.Position(), "streq: string literal operand must be non-empty")
			return nil, false
		}
		return &TypeName{Name: s, At: n.Position()}, true
	}
	w.Add(InvalidExpression, n.Position(), "streq: operand must be an identifier or non-empty string literal")
	return nil, false
}
