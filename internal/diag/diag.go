// Package diag defines Scriptum's span-anchored diagnostic record and its
// source-excerpt-plus-caret presentation, shared by the parser, the
// semantic analyzer, and the interpreter's runtime faults.
package diag

import (
	"fmt"
	"strings"

	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

// Severity classifies a Diagnostic for the external driver's exit-code
// contract (spec.md §6): non-zero exit on any "error", zero otherwise. This
// package does not itself own process exit semantics.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a structured, stable-coded fault anchored to a source Span,
// per spec.md §6's `{code, message, file, line, column, span, notes}`.
type Diagnostic struct {
	Code    string
	Message string
	Span    sourcemap.Span
	Notes   []string
	Sev     Severity
}

// Severity returns the diagnostic's classification.
func (d Diagnostic) Severity() Severity { return d.Sev }

// Format renders d with a "N | <line>" source excerpt and a caret underline
// spanning d.Span, generalizing the teacher's single-column caret
// (`errors.CompilerError.Format`) to a span-wide underline.
func Format(d Diagnostic, file string, src *sourcemap.Source) string {
	var sb strings.Builder

	start := src.Position(d.Span.Start)
	msg := d.Message
	if d.Code != "" {
		msg = d.Code + ": " + msg
	}
	fmt.Fprintf(&sb, "%s: %s:%d:%d: %s\n", d.Sev, file, start.Line, start.Column, msg)

	line := src.Excerpt(d.Span)
	if line != "" {
		gutter := fmt.Sprintf("%4d | ", start.Line)
		sb.WriteString(gutter)
		sb.WriteString(line)
		sb.WriteString("\n")

		underline := d.Span.Len()
		if underline < 1 {
			underline = 1
		}
		if start.Column-1+underline > len(line)+1 {
			underline = len(line) - (start.Column - 1)
			if underline < 1 {
				underline = 1
			}
		}
		sb.WriteString(strings.Repeat(" ", len(gutter)+start.Column-1))
		sb.WriteString(strings.Repeat("^", underline))
		sb.WriteString("\n")
	}

	for _, note := range d.Notes {
		sb.WriteString("  note: ")
		sb.WriteString(note)
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatAll renders every diagnostic in order, separated by a blank line,
// mirroring the teacher's `errors.FormatErrors` batch presentation.
func FormatAll(diags []Diagnostic, file string, src *sourcemap.Source) string {
	var sb strings.Builder
	for i, d := range diags {
		sb.WriteString(Format(d, file, src))
		if i < len(diags)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// HasErrors reports whether any diagnostic in diags has Error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Sev == Error {
			return true
		}
	}
	return false
}
