package ttl

import (
	"testing"

	"github.com/ttl-lang/ttlc/internal/ast"
)

func TestWarningsAddAndMessage(t *testing.T) {
	w := &Warnings{}
	w.Add(UnknownTypeVar, ast.Pos{File: "f.ttl", Line: 1, Column: 3}, "T")

	if w.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", w.Len())
	}
	msg := w.Items()[0].Message()
	if msg == "" {
		t.Fatalf("Message() returned empty string")
	}
	if w.Error() != msg {
		t.Fatalf("Error() = %q, want %q for a single warning", w.Error(), msg)
	}
}

func TestWarningsErrorEmpty(t *testing.T) {
	w := &Warnings{}
	if w.Error() != "no warnings" {
		t.Fatalf("Error() on empty Warnings = %q, want %q", w.Error(), "no warnings")
	}
}

func TestIsEvaluatorCode(t *testing.T) {
	if !IsEvaluatorCode(UnknownTypeVar) {
		t.Errorf("UNKNOWN_TYPEVAR should be an evaluator code")
	}
	if IsEvaluatorCode(Invalid) {
		t.Errorf("invalid should not be an evaluator code")
	}
	if IsEvaluatorCode(Code("bogus")) {
		t.Errorf("unregistered code should not be reported as evaluator code")
	}
}
