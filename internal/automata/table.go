package automata

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// AcceptInfo names the token kind produced when the DFA halts in an
// accepting state, plus the declaration-order priority used to break ties
// during determinization (see winningPattern).
type AcceptInfo struct {
	Name     string
	Priority int
}

// Table is the process-global, immutable serialized form of a token DFA:
// symbol classes standing in for "alphabet", a totalized transition table,
// and the accept map resolved to AcceptInfo entries. It is built once,
// offline, from a pattern list, and loaded once per process thereafter.
type Table struct {
	Alphabet      []symbolClass
	NumStates     int
	Start         int
	Trans         [][]int
	Finals        map[int]int // state -> index into AcceptEntries
	AcceptEntries []AcceptInfo
	Sink          int
}

// Limits bounds the work BuildTable will do before giving up, guarding
// against pathological pattern sets (see RegexLimitExceeded).
type Limits struct {
	MaxStates   int
	MaxAlphabet int
}

// DefaultLimits are generous enough for Scriptum's own token set while still
// catching runaway patterns (e.g. deeply nested {m,n} bounds).
var DefaultLimits = Limits{MaxStates: 4096, MaxAlphabet: 1024}

// LimitExceeded reports that building the DFA would exceed Limits.
type LimitExceeded struct {
	What  string
	Limit int
	Got   int
}

func (e *LimitExceeded) Error() string {
	return fmt.Sprintf("automata: %s limit exceeded: got %d, max %d", e.What, e.Got, e.Limit)
}

// BuildTable runs the full offline pipeline: Thompson construction, subset
// construction, Hopcroft-style minimization, and BFS renumbering.
func BuildTable(patterns []Pattern, limits Limits) (*Table, error) {
	nfa := BuildNFA(patterns)
	alphabet := buildAlphabet(nfa)
	if len(alphabet) > limits.MaxAlphabet {
		return nil, &LimitExceeded{What: "alphabet", Limit: limits.MaxAlphabet, Got: len(alphabet)}
	}

	dfa := Determinize(nfa)
	if len(dfa.Trans) > limits.MaxStates {
		return nil, &LimitExceeded{What: "state count", Limit: limits.MaxStates, Got: len(dfa.Trans)}
	}
	dfa = Minimize(dfa)
	dfa = Renumber(dfa)

	entries := make([]AcceptInfo, len(patterns))
	for i, p := range patterns {
		entries[i] = AcceptInfo{Name: p.Name, Priority: i}
	}

	trans := make([][]int, len(dfa.Trans))
	for s, row := range dfa.Trans {
		r := make([]int, len(row))
		for ci, to := range row {
			r[ci] = int(to)
		}
		trans[s] = r
	}
	finals := make(map[int]int, len(dfa.Accepts))
	for s, pri := range dfa.Accepts {
		finals[int(s)] = pri
	}

	return &Table{
		Alphabet:      dfa.Alphabet,
		NumStates:     len(dfa.Trans),
		Start:         int(dfa.Start),
		Trans:         trans,
		Finals:        finals,
		AcceptEntries: entries,
		Sink:          int(dfa.Sink),
	}, nil
}

// ClassOf returns the index of the symbol class covering r, or -1 if r is
// outside every class (callers treat that as an immediate InvalidChar).
func (t *Table) ClassOf(r rune) int {
	lo, hi := 0, len(t.Alphabet)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		c := t.Alphabet[mid]
		switch {
		case r < c.Lo:
			hi = mid - 1
		case r > c.Hi:
			lo = mid + 1
		default:
			return mid
		}
	}
	return -1
}

// Step transitions from state on symbol class ci, returning the sink if ci
// is out of range.
func (t *Table) Step(state, ci int) int {
	if ci < 0 || ci >= len(t.Trans[state]) {
		return t.Sink
	}
	return t.Trans[state][ci]
}

// EncodeTable serializes t to the canonical JSON-like representation
// described by the DFA table file format: an object with fields `alphabet`,
// `states`, `start`, `sink`, `trans`, `finals`, and `accept_entries`, built
// incrementally with sjson so field order matches declaration order.
func EncodeTable(t *Table) (string, error) {
	json := "{}"
	var err error

	alphabet := make([]interface{}, len(t.Alphabet))
	for i, c := range t.Alphabet {
		alphabet[i] = []interface{}{int(c.Lo), int(c.Hi)}
	}
	if json, err = sjson.Set(json, "alphabet", alphabet); err != nil {
		return "", err
	}
	if json, err = sjson.Set(json, "states", t.NumStates); err != nil {
		return "", err
	}
	if json, err = sjson.Set(json, "start", t.Start); err != nil {
		return "", err
	}
	if json, err = sjson.Set(json, "sink", t.Sink); err != nil {
		return "", err
	}
	if json, err = sjson.Set(json, "trans", t.Trans); err != nil {
		return "", err
	}
	finals := make(map[string]int, len(t.Finals))
	for state, idx := range t.Finals {
		finals[fmt.Sprintf("%d", state)] = idx
	}
	if json, err = sjson.Set(json, "finals", finals); err != nil {
		return "", err
	}
	entries := make([]interface{}, len(t.AcceptEntries))
	for i, a := range t.AcceptEntries {
		entries[i] = map[string]interface{}{"name": a.Name, "priority": a.Priority}
	}
	if json, err = sjson.Set(json, "accept_entries", entries); err != nil {
		return "", err
	}
	return json, nil
}

// DecodeTable parses the JSON produced by EncodeTable back into a Table.
func DecodeTable(data string) (*Table, error) {
	if !gjson.Valid(data) {
		return nil, fmt.Errorf("automata: invalid table JSON")
	}
	root := gjson.Parse(data)

	t := &Table{
		NumStates: int(root.Get("states").Int()),
		Start:     int(root.Get("start").Int()),
		Sink:      int(root.Get("sink").Int()),
		Finals:    map[int]int{},
	}

	for _, pair := range root.Get("alphabet").Array() {
		lo := pair.Array()[0].Int()
		hi := pair.Array()[1].Int()
		t.Alphabet = append(t.Alphabet, symbolClass{Lo: rune(lo), Hi: rune(hi)})
	}

	for _, row := range root.Get("trans").Array() {
		var r []int
		for _, cell := range row.Array() {
			r = append(r, int(cell.Int()))
		}
		t.Trans = append(t.Trans, r)
	}

	root.Get("finals").ForEach(func(key, value gjson.Result) bool {
		var state int
		fmt.Sscanf(key.String(), "%d", &state)
		t.Finals[state] = int(value.Int())
		return true
	})

	for _, e := range root.Get("accept_entries").Array() {
		t.AcceptEntries = append(t.AcceptEntries, AcceptInfo{
			Name:     e.Get("name").String(),
			Priority: int(e.Get("priority").Int()),
		})
	}

	return t, nil
}
