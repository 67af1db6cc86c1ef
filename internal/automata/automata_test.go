package automata

import (
	"testing"

	"github.com/scriptumlang/scriptum/internal/regex"
)

func mustParse(t *testing.T, pat string) regex.Node {
	t.Helper()
	n, err := regex.Parse(pat)
	if err != nil {
		t.Fatalf("regex.Parse(%q): %v", pat, err)
	}
	return n
}

func buildSimpleTable(t *testing.T) *Table {
	t.Helper()
	patterns := []Pattern{
		{Name: "IDENT", Node: mustParse(t, "[a-zA-Z_][a-zA-Z0-9_]*")},
		{Name: "NUM", Node: mustParse(t, "[0-9]+")},
		{Name: "IF", Node: mustParse(t, "if")},
	}
	table, err := BuildTable(patterns, DefaultLimits)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	return table
}

// runTable performs maximal-munch matching of a single token starting at
// the DFA's start state, mirroring the lexer's own driving loop, and
// returns the matched length and accepted pattern name (or "" if none).
func runTable(table *Table, input string) (int, string) {
	state := table.Start
	lastAccept := -1
	lastLen := 0
	for i, r := range []rune(input) {
		ci := table.ClassOf(r)
		if ci == -1 {
			break
		}
		state = table.Step(state, ci)
		if state == table.Sink {
			break
		}
		if idx, ok := table.Finals[state]; ok {
			lastAccept = idx
			lastLen = i + 1
		}
	}
	if lastAccept == -1 {
		return 0, ""
	}
	return lastLen, table.AcceptEntries[lastAccept].Name
}

func TestDeterminizeAndMinimizeAcceptIdentifier(t *testing.T) {
	table := buildSimpleTable(t)
	length, name := runTable(table, "hello world")
	if name != "IDENT" || length != len("hello") {
		t.Fatalf("got (%d,%q), want (%d,IDENT)", length, name, len("hello"))
	}
}

func TestMaximalMunchPrefersLongestOverKeyword(t *testing.T) {
	table := buildSimpleTable(t)
	// "iffy" should lex as one IDENT, not IF followed by more.
	length, name := runTable(table, "iffy")
	if name != "IDENT" || length != len("iffy") {
		t.Fatalf("got (%d,%q), want (%d,IDENT)", length, name, len("iffy"))
	}
}

func TestNumberToken(t *testing.T) {
	table := buildSimpleTable(t)
	length, name := runTable(table, "123abc")
	if name != "NUM" || length != 3 {
		t.Fatalf("got (%d,%q), want (3,NUM)", length, name)
	}
}

func TestNoMatchReturnsEmpty(t *testing.T) {
	table := buildSimpleTable(t)
	_, name := runTable(table, "   ")
	if name != "" {
		t.Fatalf("expected no match on whitespace-only input, got %q", name)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	table := buildSimpleTable(t)
	data, err := EncodeTable(table)
	if err != nil {
		t.Fatalf("EncodeTable: %v", err)
	}
	decoded, err := DecodeTable(data)
	if err != nil {
		t.Fatalf("DecodeTable: %v", err)
	}
	if decoded.NumStates != table.NumStates || decoded.Start != table.Start {
		t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, table)
	}
	length, name := runTable(decoded, "hello")
	if name != "IDENT" || length != len("hello") {
		t.Fatalf("decoded table mismatch: got (%d,%q)", length, name)
	}
}

func TestAlternationAndQuantifiers(t *testing.T) {
	patterns := []Pattern{
		{Name: "AB_STAR", Node: mustParse(t, "(a|b)*c")},
	}
	table, err := BuildTable(patterns, DefaultLimits)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	for _, in := range []string{"c", "ac", "bc", "ababbac"} {
		length, name := runTable(table, in)
		if name != "AB_STAR" || length != len(in) {
			t.Errorf("input %q: got (%d,%q), want (%d,AB_STAR)", in, length, name, len(in))
		}
	}
	if _, name := runTable(table, "ab"); name != "" {
		t.Errorf("input without trailing 'c' should not accept, got %q", name)
	}
}

func TestBoundedRepeat(t *testing.T) {
	patterns := []Pattern{
		{Name: "A23", Node: mustParse(t, "a{2,3}")},
	}
	table, err := BuildTable(patterns, DefaultLimits)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if length, name := runTable(table, "a"); name != "" || length != 0 {
		t.Errorf("single 'a' should not match a{2,3}, got (%d,%q)", length, name)
	}
	if length, name := runTable(table, "aaaa"); name != "A23" || length != 3 {
		t.Errorf("'aaaa' should match 3 of 4 a's, got (%d,%q)", length, name)
	}
}
