package parser

import (
	"github.com/scriptumlang/scriptum/internal/diag"
	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

// ErrorKind classifies a ParseError, mirroring spec.md §7's closed set.
type ErrorKind int

const (
	ErrUnexpected ErrorKind = iota
	ErrMissing
	ErrAmbiguous
)

// ParseError is one accumulated syntax fault. The parser does not throw on
// the first error: it records and synchronizes, continuing to the next
// safe point (error.go / error_recovery.go).
type ParseError struct {
	Kind    ErrorKind
	Span    sourcemap.Span
	Message string
}

func (e ParseError) Error() string { return e.Message }

// Diagnostic converts a ParseError into the shared diag.Diagnostic shape,
// so the driver can present parse, semantic, and runtime faults uniformly.
func (e ParseError) Diagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Code:    "P100",
		Message: e.Message,
		Span:    e.Span,
		Sev:     diag.Error,
	}
}
