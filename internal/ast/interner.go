package ast

// Symbol is a dense, zero-based key into an Interner's string pool.
// Equality and hashing are performed on the key, never the string.
type Symbol int

// Interner maintains a bidirectional map between identifier strings and
// Symbol keys. Interning the same string twice returns the same key; keys
// are never recycled, so they remain valid for the interner's whole
// lifetime (spec.md §3's "Symbol keys remain valid" invariant).
type Interner struct {
	keys    map[string]Symbol
	strings []string
}

// NewInterner creates an empty interner.
func NewInterner() *Interner {
	return &Interner{keys: make(map[string]Symbol)}
}

// Intern returns the Symbol for s, assigning a fresh key on first use.
func (in *Interner) Intern(s string) Symbol {
	if sym, ok := in.keys[s]; ok {
		return sym
	}
	sym := Symbol(len(in.strings))
	in.keys[s] = sym
	in.strings = append(in.strings, s)
	return sym
}

// Lookup returns the string a Symbol was interned from, and whether sym is
// a key this interner issued.
func (in *Interner) Lookup(sym Symbol) (string, bool) {
	if int(sym) < 0 || int(sym) >= len(in.strings) {
		return "", false
	}
	return in.strings[sym], true
}

// MustLookup is Lookup without the ok result, for call sites that already
// know sym came from this interner.
func (in *Interner) MustLookup(sym Symbol) string {
	s, _ := in.Lookup(sym)
	return s
}

// idGen is a monotonic NodeID counter local to one parse session. Per
// spec.md §5, internal components assume single-threaded use and may use a
// non-atomic counter.
type idGen struct {
	next NodeID
}

func (g *idGen) fresh() NodeID {
	id := g.next
	g.next++
	return id
}
