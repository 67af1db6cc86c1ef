// Package scriptum is the thin driver wiring spec.md §6's five-function
// surface — Lex, Parse, Analyze, Lower, Run — over the stage packages. It
// is the only root-level package in this repository; everything else
// lives under internal/. `format` from spec.md §6 is deliberately absent:
// the pretty-printer is an external collaborator (spec.md §1).
//
// This mirrors the teacher's cmd/dwscript/cmd/*.go files, which are
// themselves thin wiring over internal/lexer+internal/parser+
// internal/semantic ahead of Cobra — minus Cobra and the CLI layer itself,
// since spec.md §1 places the command-line entry point out of scope.
package scriptum

import (
	"github.com/scriptumlang/scriptum/internal/ast"
	"github.com/scriptumlang/scriptum/internal/diag"
	"github.com/scriptumlang/scriptum/internal/interp"
	"github.com/scriptumlang/scriptum/internal/ir"
	"github.com/scriptumlang/scriptum/internal/lexer"
	"github.com/scriptumlang/scriptum/internal/parser"
	"github.com/scriptumlang/scriptum/internal/sema"
	"github.com/scriptumlang/scriptum/internal/sourcemap"
)

// Lex tokenizes source into a complete, EOF-terminated token stream plus
// any accumulated lexical faults, per spec.md §6's `lex(source) →
// (tokens, [LexerError])`.
func Lex(src *sourcemap.Source) ([]lexer.Token, []lexer.LexerError) {
	l := lexer.New(src)
	var tokens []lexer.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == lexer.EOF {
			break
		}
	}
	return tokens, l.Errors()
}

// Parse tokenizes and parses source in one call, per spec.md §6's
// `parse(source) → ParseOutput`.
func Parse(src *sourcemap.Source) parser.ParseOutput {
	l := lexer.New(src)
	return parser.Parse(l)
}

// Analyze runs symbol resolution and type checking over module, per
// spec.md §6's `analyze(module) → [SemanticDiagnostic]`.
func Analyze(module *ast.Module) []diag.Diagnostic {
	return sema.Analyze(module)
}

// Lower translates module into its structural IR, per spec.md §6's
// `lower(module) → ModuleIr`.
func Lower(module *ast.Module) *ir.Module {
	return ir.Lower(module)
}

// Run interprets moduleIr and returns main()'s result, or the first
// runtime fault encountered, per spec.md §6's `run(module_ir) → Value |
// InterpretError`.
func Run(moduleIr *ir.Module) (interp.Value, *interp.RuntimeError) {
	return interp.Run(moduleIr)
}

// Compile runs the full pipeline — lex, parse, analyze, lower — stopping
// at the first stage boundary that produced a fatal diagnostic, per
// spec.md §2's "each stage fails independently; the driver decides
// whether to continue after non-fatal diagnostics (default: stop at first
// fatal stage boundary)". Diagnostics accumulates every diagnostic seen up
// to (and including) the stage that halted progress; moduleIr is nil if
// lowering never ran.
func Compile(src *sourcemap.Source) (moduleIr *ir.Module, diagnostics []diag.Diagnostic) {
	_, lexErrs := Lex(src)
	for _, e := range lexErrs {
		diagnostics = append(diagnostics, e.Diagnostic())
	}
	if diag.HasErrors(diagnostics) {
		return nil, diagnostics
	}

	out := Parse(src)
	for _, e := range out.Diagnostics {
		diagnostics = append(diagnostics, e.Diagnostic())
	}
	if diag.HasErrors(diagnostics) {
		return nil, diagnostics
	}

	semaDiags := Analyze(out.Module)
	diagnostics = append(diagnostics, semaDiags...)
	if diag.HasErrors(diagnostics) {
		return nil, diagnostics
	}

	return Lower(out.Module), diagnostics
}
