// Package sourcemap owns source buffers and resolves byte-offset spans to
// line/column positions.
package sourcemap

import "strings"

// SourceID identifies a loaded buffer. The pipeline only ever compiles one
// buffer at a time, but the type leaves room for a driver to load several
// (e.g. one goroutine per source file) without their spans colliding.
type SourceID int

// Position is a human-facing location within a Source: a line and column
// (both 1-based) plus the byte Offset they were resolved from.
//
// Column counts Unicode code points (runes) from the start of the line, not
// bytes and not display width. A multi-byte rune like 🚀 or Δ counts as one
// column; this keeps position arithmetic simple and reproducible at the
// cost of not lining a caret up under wide terminal glyphs.
type Position struct {
	Line   int
	Column int
	Offset int
}

// IsValid reports whether p was actually resolved from a Source (the zero
// Position is not valid: line/column numbering starts at 1).
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

func (p Position) String() string {
	return itoa(p.Line) + ":" + itoa(p.Column)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Span is a half-open byte-offset range [Start, End) into a Source's text.
// Every token, AST node, and IR node carries one. A zero-length span
// (Start == End) is valid and is how the end-of-file token is represented.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether s fully contains other (used by span-nesting
// invariant checks in tests).
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Union returns the smallest span containing both s and other.
func (s Span) Union(other Span) Span {
	u := s
	if other.Start < u.Start {
		u.Start = other.Start
	}
	if other.End > u.End {
		u.End = other.End
	}
	return u
}

// Source owns a loaded UTF-8 text buffer and a lazily-built index of
// newline byte offsets used to resolve Spans into line/column Positions.
type Source struct {
	ID     SourceID
	Name   string
	Text   string
	newlines []int // byte offset of each '\n' in Text, built on first use
	indexed  bool
}

// New creates a Source from raw bytes, stripping a leading UTF-8 byte-order
// mark if present (tolerated per the external interface contract).
func New(id SourceID, name string, data []byte) *Source {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}
	return &Source{ID: id, Name: name, Text: string(data)}
}

func (s *Source) buildIndex() {
	if s.indexed {
		return
	}
	s.newlines = make([]int, 0, 64)
	for i := 0; i < len(s.Text); i++ {
		if s.Text[i] == '\n' {
			s.newlines = append(s.newlines, i)
		}
	}
	s.indexed = true
}

// Position resolves a byte offset into a line/column Position. Offsets past
// the end of the text resolve to the position one past the last character
// (used for EOF tokens).
func (s *Source) Position(offset int) Position {
	s.buildIndex()

	// lineStart is the offset of the first byte of the line containing
	// offset; line is 1-based.
	line := 1
	lineStart := 0
	lo, hi := 0, len(s.newlines)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.newlines[mid] < offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line = lo + 1
	if lo > 0 {
		lineStart = s.newlines[lo-1] + 1
	}

	column := 1
	if offset > len(s.Text) {
		offset = len(s.Text)
	}
	column += countRunes(s.Text[lineStart:offset])

	return Position{Line: line, Column: column, Offset: offset}
}

func countRunes(s string) int {
	// len(s) counts bytes; we want runes, matching the teacher's
	// "column is rune count, not byte offset" rule.
	n := 0
	for range s {
		n++
	}
	return n
}

// Excerpt returns the full source line containing span.Start, used by diag
// to render the "N | <line>" gutter above a caret.
func (s *Source) Excerpt(span Span) string {
	s.buildIndex()
	start := 0
	lo, hi := 0, len(s.newlines)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.newlines[mid] < span.Start {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo > 0 {
		start = s.newlines[lo-1] + 1
	}
	end := len(s.Text)
	if lo < len(s.newlines) {
		end = s.newlines[lo]
	}
	return s.Text[start:end]
}

// Slice returns the literal source text covered by span.
func (s *Source) Slice(span Span) string {
	if span.Start < 0 || span.End > len(s.Text) || span.Start > span.End {
		return ""
	}
	return s.Text[span.Start:span.End]
}

// Len returns the number of bytes in the source text.
func (s *Source) Len() int { return len(s.Text) }

// TrimmedLines splits the source into lines without trailing '\r', for
// contexts (like diagnostic rendering) that don't care about line endings.
func (s *Source) TrimmedLines() []string {
	return strings.Split(strings.ReplaceAll(s.Text, "\r\n", "\n"), "\n")
}
