package ttl

import "github.com/ttl-lang/ttlc/internal/ast"

// ParseFunc turns TTL source text into the host AST shape §6 fixes. The core
// never bundles a concrete parser; callers supply one (the real compiler's
// general expression parser, or internal/ttlsrc's minimal reader for
// standalone tools).
type ParseFunc func(source, file string, line, col int) (ast.Node, error)

// ParseAndValidate is the parse_and_validate entry point of §6: it invokes
// parse, then the validator, and returns the validated Term alongside the
// warnings accumulated along the way.
func ParseAndValidate(parse ParseFunc, source, file string, line, col int) (Term, *Warnings, bool) {
	w := &Warnings{}
	n, err := parse(source, file, line, col)
	if err != nil {
		w.Add(Invalid, ast.Pos{File: file, Line: line, Column: col}, err.Error())
		return nil, w, false
	}
	term, ok := Validate(n, w)
	return term, w, ok
}
