package ttl

import (
	"fmt"
	"strings"

	"github.com/ttl-lang/ttlc/internal/ast"
)

// Code is a stable TTL warning identifier (spec §6): a closed set of named
// constants plus a registry describing each one, so tooling can key off the
// code without parsing the message.
type Code string

const (
	// Evaluator codes (spec §6 table)
	UnknownTypeVar    Code = "UNKNOWN_TYPEVAR"
	UnknownStrVar     Code = "UNKNOWN_STRVAR"
	UnknownTypeName   Code = "UNKNOWN_TYPENAME"
	UnknownNameVar    Code = "UNKNOWN_NAMEVAR"
	BaseTypeInvalid   Code = "BASETYPE_INVALID"
	TempTypeInvalid   Code = "TEMPTYPE_INVALID"
	IndexOutOfBounds  Code = "INDEX_OUTOFBOUNDS"
	DuplicateVariable Code = "DUPLICATE_VARIABLE"
	RecTypeInvalid    Code = "RECTYPE_INVALID"
	MapRecordBodyBad  Code = "MAPRECORD_BODY_INVALID"
	VarUndefined      Code = "VAR_UNDEFINED"

	// Validator codes (spec §4.3, §6)
	Invalid           Code = "invalid"
	InvalidExpression Code = "invalid.expression"
	InvalidInside     Code = "invalid.inside"
	MissingParam      Code = "missing.param"
	ExtraParam        Code = "extra.param"
)

// info describes one code, mirroring errors.ErrorInfo's Phase/Category
// split.
type info struct {
	phase       string // "validator" or "evaluator"
	description string
}

var registry = map[Code]info{
	UnknownTypeVar:    {"evaluator", "type variable unresolved"},
	UnknownStrVar:     {"evaluator", "name variable unresolved in streq"},
	UnknownTypeName:   {"evaluator", "type name unresolved"},
	UnknownNameVar:    {"evaluator", "name variable unresolved in record"},
	BaseTypeInvalid:   {"evaluator", "first arg of type(...) not templatizable"},
	TempTypeInvalid:   {"evaluator", "arg of raw/templateTypeOf not templatized"},
	IndexOutOfBounds:  {"evaluator", "templateTypeOf index overflow"},
	DuplicateVariable: {"evaluator", "mapunion/maprecord binder shadows an existing binding"},
	RecTypeInvalid:    {"evaluator", "first arg of maprecord not a record"},
	MapRecordBodyBad:  {"evaluator", "maprecord body produced non-record, non-no type"},
	VarUndefined:      {"evaluator", "typeOfVar argument not in host scope"},
	Invalid:           {"validator", "malformed term"},
	InvalidExpression: {"validator", "malformed expression subterm"},
	InvalidInside:     {"validator", "malformed subterm inside a larger form"},
	MissingParam:      {"validator", "too few arguments for keyword"},
	ExtraParam:        {"validator", "too many arguments for keyword"},
}

// IsEvaluatorCode reports whether code is produced by the evaluator (C4)
// rather than the validator (C3).
func IsEvaluatorCode(code Code) bool {
	i, ok := registry[code]
	return ok && i.phase == "evaluator"
}

// Warning is one diagnostic emitted by the validator or evaluator.
type Warning struct {
	Code    Code
	Payload []string
	At      ast.Pos
}

// Message renders a human-readable diagnostic line.
func (w Warning) Message() string {
	i, ok := registry[w.Code]
	desc := string(w.Code)
	if ok {
		desc = i.description
	}
	if len(w.Payload) == 0 {
		return fmt.Sprintf("%s: %s [%s]", w.At, desc, w.Code)
	}
	return fmt.Sprintf("%s: %s (%s) [%s]", w.At, desc, strings.Join(w.Payload, ", "), w.Code)
}

// Warnings accumulates diagnostics over the course of one validate or eval
// call. It is not safe for concurrent writers; each top-level Validate/Eval
// call should use its own Warnings (spec §5: no shared mutable state).
type Warnings struct {
	items []Warning
}

// Add records one warning.
func (w *Warnings) Add(code Code, at ast.Pos, payload ...string) {
	w.items = append(w.items, Warning{Code: code, Payload: payload, At: at})
}

// Items returns the accumulated warnings in emission order.
func (w *Warnings) Items() []Warning {
	return w.items
}

// Len reports how many warnings have been recorded.
func (w *Warnings) Len() int { return len(w.items) }

// Error implements the error interface so a non-empty Warnings can be
// reported through ordinary Go error plumbing.
func (w *Warnings) Error() string {
	if len(w.items) == 0 {
		return "no warnings"
	}
	lines := make([]string, len(w.items))
	for i, item := range w.items {
		lines[i] = item.Message()
	}
	return strings.Join(lines, "\n")
}
