package regex

import "testing"

func TestParseLiteral(t *testing.T) {
	n, err := Parse("a")
	if err != nil {
		t.Fatal(err)
	}
	lit, ok := n.(Literal)
	if !ok || lit.Ch != 'a' {
		t.Fatalf("got %#v, want Literal{'a'}", n)
	}
}

func TestParseConcat(t *testing.T) {
	n, err := Parse("ab")
	if err != nil {
		t.Fatal(err)
	}
	c, ok := n.(Concat)
	if !ok || len(c.Items) != 2 {
		t.Fatalf("got %#v, want Concat of 2", n)
	}
}

func TestParseAlt(t *testing.T) {
	n, err := Parse("a|b")
	if err != nil {
		t.Fatal(err)
	}
	a, ok := n.(Alt)
	if !ok || len(a.Items) != 2 {
		t.Fatalf("got %#v, want Alt of 2", n)
	}
}

func TestParseClassRangeAndNegate(t *testing.T) {
	n, err := Parse("[a-zA-Z_]")
	if err != nil {
		t.Fatal(err)
	}
	cl, ok := n.(Class)
	if !ok || cl.Negate || len(cl.Ranges) != 3 {
		t.Fatalf("got %#v, want 3 ranges, not negated", n)
	}

	n2, err := Parse("[^0-9]")
	if err != nil {
		t.Fatal(err)
	}
	cl2 := n2.(Class)
	if !cl2.Negate {
		t.Fatal("expected negated class")
	}
}

func TestParseQuantifiers(t *testing.T) {
	cases := map[string]struct{ min, max int }{
		"a*":    {0, -1},
		"a+":    {1, -1},
		"a?":    {0, 1},
		"a{2}":  {2, 2},
		"a{2,}": {2, -1},
		"a{2,5}": {2, 5},
	}
	for pat, want := range cases {
		n, err := Parse(pat)
		if err != nil {
			t.Fatalf("%s: %v", pat, err)
		}
		rep, ok := n.(Repeat)
		if !ok {
			t.Fatalf("%s: got %#v, want Repeat", pat, n)
		}
		if rep.Min != want.min || rep.Max != want.max {
			t.Errorf("%s: got {%d,%d}, want {%d,%d}", pat, rep.Min, rep.Max, want.min, want.max)
		}
	}
}

func TestParseGroupAndEscapes(t *testing.T) {
	n, err := Parse(`(a|b)\n`)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := n.(Concat)
	if !ok || len(c.Items) != 2 {
		t.Fatalf("got %#v", n)
	}
	if _, ok := c.Items[0].(Alt); !ok {
		t.Fatalf("first item should be Alt, got %#v", c.Items[0])
	}
	lit, ok := c.Items[1].(Literal)
	if !ok || lit.Ch != '\n' {
		t.Fatalf("second item should be Literal('\\n'), got %#v", c.Items[1])
	}
}

func TestParseHexEscape(t *testing.T) {
	n, err := Parse(`\x41`)
	if err != nil {
		t.Fatal(err)
	}
	lit := n.(Literal)
	if lit.Ch != 'A' {
		t.Fatalf("got %q, want 'A'", lit.Ch)
	}
}

func TestParseDot(t *testing.T) {
	n, err := Parse(".")
	if err != nil {
		t.Fatal(err)
	}
	cl, ok := n.(Class)
	if !ok || !cl.Negate {
		t.Fatalf("got %#v, want negated Class excluding newline", n)
	}
}

func TestParseErrors(t *testing.T) {
	badPatterns := []string{
		"(a",
		"[a-z",
		"a{2,1}",
		"*",
		`\x4`,
	}
	for _, pat := range badPatterns {
		if _, err := Parse(pat); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", pat)
		}
	}
}
