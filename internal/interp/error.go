package interp

import (
	"fmt"

	"github.com/scriptumlang/scriptum/internal/diag"
	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

// FaultKind is spec.md §7's InterpretError tag set, minus DivisionByZero:
// spec.md §4.6 explicitly says division by zero yields IEEE-754 infinities/
// NaN rather than a fault, so this interpreter never raises one.
type FaultKind int

const (
	TypeFault FaultKind = iota
	ArityMismatch
	UnknownMember
	IndexOutOfBounds
)

// faultCode maps a FaultKind to its stable diagnostic code, matching the
// Sxxx/Txxx stable-code convention the analyzer uses for compile-time
// diagnostics (spec.md §7: "codes are stable across versions").
var faultCode = map[FaultKind]string{
	TypeFault:        "R100",
	ArityMismatch:    "R101",
	UnknownMember:    "R102",
	IndexOutOfBounds: "R103",
}

// RuntimeError is spec.md §4.6/§7's InterpretError: a faulting operation
// anchored to the IR span that triggered it. The interpreter aborts the
// current run on the first RuntimeError and unwinds, per spec.md §7's
// propagation policy.
type RuntimeError struct {
	Kind    FaultKind
	Span    sourcemap.Span
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newFault(kind FaultKind, span sourcemap.Span, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Span: span, Message: fmt.Sprintf(format, args...)}
}

// Diagnostic converts e into a diag.Diagnostic so a runtime fault prints
// with the identical source-excerpt-plus-caret presentation as a compile
// error, directly reusing the diag package's Format/FormatAll.
func (e *RuntimeError) Diagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Code:    faultCode[e.Kind],
		Message: e.Message,
		Span:    e.Span,
		Sev:     diag.Error,
	}
}
