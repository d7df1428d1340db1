package keyword

import "testing"

func TestLookupCaseInsensitive(t *testing.T) {
	for _, name := range []string{"type", "Type", "TYPE", "tYpE"} {
		s, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q): expected found", name)
		}
		if s.Name != "type" {
			t.Fatalf("Lookup(%q).Name = %q, want %q", name, s.Name, "type")
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("bogus"); ok {
		t.Fatalf("Lookup(bogus): expected not found")
	}
}

func TestArityTable(t *testing.T) {
	cases := []struct {
		name     string
		min, max int
		kind     Kind
	}{
		{"all", 0, 0, TypeConstructor},
		{"none", 0, 0, TypeConstructor},
		{"unknown", 0, 0, TypeConstructor},
		{"type", 2, Unbounded, TypeConstructor},
		{"union", 2, Unbounded, TypeConstructor},
		{"record", 1, 1, TypeConstructor},
		{"rawTypeOf", 1, 1, TypeConstructor},
		{"templateTypeOf", 2, 2, TypeConstructor},
		{"cond", 3, 3, Operation},
		{"mapunion", 2, 2, Operation},
		{"maprecord", 2, 2, Operation},
		{"typeOfVar", 1, 1, Operation},
		{"eq", 2, 2, BooleanTypePredicate},
		{"sub", 2, 2, BooleanTypePredicate},
		{"streq", 2, 2, BooleanStringPredicate},
	}
	if len(cases) != len(table) {
		t.Fatalf("test covers %d keywords, table has %d", len(cases), len(table))
	}
	for _, c := range cases {
		s, ok := Lookup(c.name)
		if !ok {
			t.Fatalf("Lookup(%q): expected found", c.name)
		}
		if s.Min != c.min || s.Max != c.max || s.Kind != c.kind {
			t.Errorf("Lookup(%q) = %+v, want min=%d max=%d kind=%v", c.name, s, c.min, c.max, c.kind)
		}
	}
}

func TestInRange(t *testing.T) {
	record, _ := Lookup("record")
	if record.InRange(0) || record.InRange(2) {
		t.Fatalf("record should only accept exactly 1 argument")
	}
	if !record.InRange(1) {
		t.Fatalf("record should accept exactly 1 argument")
	}

	typeSpec, _ := Lookup("type")
	if typeSpec.InRange(1) {
		t.Fatalf("type should require at least 2 arguments")
	}
	if !typeSpec.InRange(2) || !typeSpec.InRange(50) {
		t.Fatalf("type should accept 2 or any larger number of arguments")
	}
}

func TestFunctionArity(t *testing.T) {
	if n, ok := FunctionArity("mapunion"); !ok || n != 1 {
		t.Fatalf("FunctionArity(mapunion) = %d, %v; want 1, true", n, ok)
	}
	if n, ok := FunctionArity("maprecord"); !ok || n != 2 {
		t.Fatalf("FunctionArity(maprecord) = %d, %v; want 2, true", n, ok)
	}
	if _, ok := FunctionArity("cond"); ok {
		t.Fatalf("FunctionArity(cond) should not be defined")
	}
}
