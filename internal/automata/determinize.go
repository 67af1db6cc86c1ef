package automata

import "sort"

// DFA is a deterministic finite automaton over the symbol-class alphabet
// built by buildAlphabet. Trans[state][classIndex] is the successor state,
// or the sink state (Sink) if there is none.
type DFA struct {
	Alphabet []symbolClass
	Trans    [][]stateID
	Start    stateID
	Accepts  map[stateID]int // state -> winning pattern index
	Sink     stateID // the distinguished dead state
}

const sinkState stateID = 0 // during subset construction, state 0 is the sink; renumbering later gives the start state id 0

// subset is a sorted, deduplicated set of NFA state IDs — the canonical key
// identifying one DFA state during construction.
type subset []stateID

func (s subset) key() string {
	b := make([]byte, 0, len(s)*4)
	for _, id := range s {
		b = append(b, byte(id), byte(id>>8), byte(id>>16), byte(id>>24), ',')
	}
	return string(b)
}

// epsilonClosure returns the set of states reachable from any state in ids
// via zero or more epsilon edges, sorted and deduplicated.
func epsilonClosure(nfa *NFA, ids []stateID) subset {
	seen := make(map[stateID]bool, len(ids))
	stack := append([]stateID(nil), ids...)
	for _, id := range ids {
		seen[id] = true
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range nfa.States[cur].Edges {
			if e.Epsilon && !seen[e.To] {
				seen[e.To] = true
				stack = append(stack, e.To)
			}
		}
	}
	out := make(subset, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// move returns the set of NFA states reachable from any state in s by
// consuming one rune in symbol class c.
func move(nfa *NFA, s subset, c symbolClass) []stateID {
	var out []stateID
	for _, id := range s {
		for _, e := range nfa.States[id].Edges {
			if !e.Epsilon && matchesClass(e, c) {
				out = append(out, e.To)
			}
		}
	}
	return out
}

// winningPattern returns the lowest-priority (earliest-declared) pattern
// index accepted by any state in s, and whether s accepts at all.
func winningPattern(nfa *NFA, s subset) (int, bool) {
	best := -1
	for _, id := range s {
		if pri, ok := nfa.Accepts[id]; ok {
			if best == -1 || pri < best {
				best = pri
			}
		}
	}
	return best, best != -1
}

// Determinize runs subset construction over nfa, producing an equivalent
// DFA with an explicit sink state for "no pattern matches from here".
func Determinize(nfa *NFA) *DFA {
	alphabet := buildAlphabet(nfa)

	startSet := epsilonClosure(nfa, []stateID{nfa.Start})
	indexOf := map[string]stateID{}
	var subsets []subset

	sinkKey := subset{}.key()
	indexOf[sinkKey] = 0
	subsets = append(subsets, subset{})

	startKey := startSet.key()
	var startID stateID
	if startKey == sinkKey {
		startID = 0
	} else {
		indexOf[startKey] = 1
		subsets = append(subsets, startSet)
		startID = 1
	}

	trans := [][]stateID{}
	accepts := map[stateID]int{}

	for i := 0; i < len(subsets); i++ {
		row := make([]stateID, len(alphabet))
		for ci, c := range alphabet {
			next := move(nfa, subsets[i], c)
			if len(next) == 0 {
				row[ci] = sinkState
				continue
			}
			closure := epsilonClosure(nfa, next)
			key := closure.key()
			id, ok := indexOf[key]
			if !ok {
				id = stateID(len(subsets))
				indexOf[key] = id
				subsets = append(subsets, closure)
			}
			row[ci] = id
		}
		trans = append(trans, row)
	}

	for id, s := range subsets {
		if pri, ok := winningPattern(nfa, s); ok {
			accepts[stateID(id)] = pri
		}
	}

	return &DFA{
		Alphabet: alphabet,
		Trans:    trans,
		Start:    startID,
		Accepts:  accepts,
		Sink:     sinkState,
	}
}
