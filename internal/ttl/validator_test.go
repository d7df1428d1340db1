package ttl

import (
	"testing"

	"github.com/ttl-lang/ttlc/internal/ttlsrc"
)

func mustParse(t *testing.T, src string) Term {
	t.Helper()
	n, err := ttlsrc.Parse(src, "<test>", 1, 1)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	w := &Warnings{}
	term, ok := Validate(n, w)
	if !ok {
		t.Fatalf("Validate(%q): expected ok, warnings: %v", src, w.Items())
	}
	return term
}

func TestValidateLeaves(t *testing.T) {
	if _, ok := Validate(nil, &Warnings{}); ok {
		t.Fatalf("Validate(nil) should fail")
	}
	mustParse(t, `"number"`)
	mustParse(t, `T`)
}

func TestValidateArityEnforcement(t *testing.T) {
	cases := []string{
		`all(1)`,
		`record()`,
		`record(a, b)`,
		`type(T)`,
		`union(T)`,
		`templateTypeOf(T)`,
		`templateTypeOf(T, 0, 1)`,
	}
	for _, src := range cases {
		n, err := ttlsrc.Parse(src, "<test>", 1, 1)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		w := &Warnings{}
		if _, ok := Validate(n, w); ok {
			t.Errorf("Validate(%q): expected arity violation to fail", src)
		}
		if w.Len() == 0 {
			t.Errorf("Validate(%q): expected at least one warning", src)
		}
		foundArityCode := false
		for _, item := range w.Items() {
			if item.Code == MissingParam || item.Code == ExtraParam {
				foundArityCode = true
			}
		}
		if !foundArityCode {
			t.Errorf("Validate(%q): expected missing.param or extra.param, got %v", src, w.Items())
		}
	}
}

func TestValidateTypeBaseMustBeLeaf(t *testing.T) {
	w := &Warnings{}
	n, err := ttlsrc.Parse(`type(all(), number)`, "<test>", 1, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := Validate(n, w); ok {
		t.Fatalf("Validate: expected failure, type(...)'s base must be a leaf")
	}
}

func TestValidateTypeOfVarArgMustBeLeaf(t *testing.T) {
	mustParse(t, `typeOfVar(self)`)

	w := &Warnings{}
	n, err := ttlsrc.Parse(`typeOfVar(type(A, N))`, "<test>", 1, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := Validate(n, w); ok {
		t.Fatalf("Validate: typeOfVar's argument must be a leaf, not a call")
	}
}

func TestValidateBooleanPredicateRejectedOutsideCond(t *testing.T) {
	w := &Warnings{}
	n, err := ttlsrc.Parse(`union(eq(a, b), number)`, "<test>", 1, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := Validate(n, w); ok {
		t.Fatalf("Validate: eq(...) must not validate as an ordinary type-valued argument")
	}
}

func TestValidateCondAcceptsBooleanForms(t *testing.T) {
	mustParse(t, `cond(eq(a, b), number, string)`)
	mustParse(t, `cond(sub(a, b), number, string)`)
	mustParse(t, `cond(streq(a, "x"), number, string)`)
}

func TestValidateCondRejectsNonBooleanHead(t *testing.T) {
	w := &Warnings{}
	n, err := ttlsrc.Parse(`cond(union(a, b), number, string)`, "<test>", 1, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := Validate(n, w); ok {
		t.Fatalf("Validate: cond's first argument must be a boolean predicate call")
	}
}

func TestValidateStreqRejectsEmptyLiteral(t *testing.T) {
	w := &Warnings{}
	n, err := ttlsrc.Parse(`cond(streq(a, ""), number, string)`, "<test>", 1, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := Validate(n, w); ok {
		t.Fatalf("Validate: streq must reject an empty string literal operand")
	}
}

func TestValidateTemplateTypeOfRequiresNonNegativeIntegerIndex(t *testing.T) {
	for _, src := range []string{`templateTypeOf(T, -1)`, `templateTypeOf(T, 1.5)`, `templateTypeOf(T, "x")`} {
		w := &Warnings{}
		n, err := ttlsrc.Parse(src, "<test>", 1, 1)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		if _, ok := Validate(n, w); ok {
			t.Errorf("Validate(%q): expected failure", src)
		}
	}
	mustParse(t, `templateTypeOf(T, 0)`)
}

func TestValidateMapUnionRequiresOneFormal(t *testing.T) {
	mustParse(t, `mapunion(u, (x) => x)`)

	w := &Warnings{}
	n, err := ttlsrc.Parse(`mapunion(u, (x, y) => x)`, "<test>", 1, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := Validate(n, w); ok {
		t.Fatalf("Validate: mapunion's function literal must have exactly one formal")
	}
}

func TestValidateMapRecordRequiresTwoFormals(t *testing.T) {
	mustParse(t, `maprecord(r, (k, v) => record({}))`)

	w := &Warnings{}
	n, err := ttlsrc.Parse(`maprecord(r, (k) => record({}))`, "<test>", 1, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := Validate(n, w); ok {
		t.Fatalf("Validate: maprecord's function literal must have exactly two formals")
	}
}

func TestValidateRecordComputedAndPlainProperties(t *testing.T) {
	term := mustParse(t, `record({a: number, [k]: string})`)
	call, ok := term.(*Call)
	if !ok {
		t.Fatalf("expected *Call, got %T", term)
	}
	lit := call.Args[0].Record
	if len(lit.Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(lit.Properties))
	}
	if lit.Properties[0].Computed {
		t.Errorf("first property should be plain-name")
	}
	if !lit.Properties[1].Computed {
		t.Errorf("second property should be computed-name")
	}
}

func TestValidateUnknownKeyword(t *testing.T) {
	w := &Warnings{}
	n, err := ttlsrc.Parse(`bogus(a, b)`, "<test>", 1, 1)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := Validate(n, w); ok {
		t.Fatalf("Validate: unknown keyword must fail")
	}
}
