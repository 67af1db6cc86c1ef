// Package automata turns a regex.Node into a minimized DFA table via
// Thompson construction, subset-construction determinization, and
// Hopcroft-style partition-refinement minimization. The whole pipeline runs
// offline, at token-table build time: nothing here runs while lexing a
// program (see internal/lexer, which only walks the resulting table).
package automata

import "github.com/scriptumlang/scriptum/internal/regex"

// stateID indexes into an NFA's or DFA's state slice.
type stateID int

const noState stateID = -1

// nfaEdge is a labeled or epsilon transition out of an NFA state. A zero
// Class (Ranges == nil, Negate == false) combined with Epsilon == true marks
// an epsilon edge; callers test Epsilon, not the Class value.
type nfaEdge struct {
	Epsilon bool
	Ranges  []regex.Range
	Negate  bool
	To      stateID
}

// nfaState is one state in a Thompson-constructed NFA fragment.
type nfaState struct {
	Edges []nfaEdge
}

// NFA is a nondeterministic finite automaton with a single start state and a
// set of accepting states, each tagged with the pattern that produced it.
type NFA struct {
	States  []nfaState
	Start   stateID
	Accepts map[stateID]int // state -> pattern priority index
}

func newNFA() *NFA {
	return &NFA{Accepts: make(map[stateID]int)}
}

func (n *NFA) addState() stateID {
	n.States = append(n.States, nfaState{})
	return stateID(len(n.States) - 1)
}

func (n *NFA) addEdge(from stateID, e nfaEdge) {
	n.States[from].Edges = append(n.States[from].Edges, e)
}

// fragment is an in-progress Thompson construction: a subgraph with one
// entry state and one exit state, wired together by the combinators below.
type fragment struct {
	start, end stateID
}

// thompson builds a fragment recognizing the language of node, using nfa as
// the shared state arena (so BuildNFA can combine multiple patterns into a
// single NFA).
func thompson(nfa *NFA, node regex.Node) fragment {
	switch t := node.(type) {
	case regex.Epsilon:
		return epsilonFragment(nfa)
	case regex.Literal:
		return literalFragment(nfa, t)
	case regex.Class:
		return classFragment(nfa, t)
	case regex.Concat:
		return concatFragment(nfa, t)
	case regex.Alt:
		return altFragment(nfa, t)
	case regex.Repeat:
		return repeatFragment(nfa, t)
	default:
		panic("automata: unhandled regex node type")
	}
}

func epsilonFragment(nfa *NFA) fragment {
	s := nfa.addState()
	e := nfa.addState()
	nfa.addEdge(s, nfaEdge{Epsilon: true, To: e})
	return fragment{start: s, end: e}
}

func literalFragment(nfa *NFA, lit regex.Literal) fragment {
	s := nfa.addState()
	e := nfa.addState()
	nfa.addEdge(s, nfaEdge{Ranges: []regex.Range{{Lo: lit.Ch, Hi: lit.Ch}}, To: e})
	return fragment{start: s, end: e}
}

func classFragment(nfa *NFA, cl regex.Class) fragment {
	s := nfa.addState()
	e := nfa.addState()
	nfa.addEdge(s, nfaEdge{Ranges: cl.Ranges, Negate: cl.Negate, To: e})
	return fragment{start: s, end: e}
}

func concatFragment(nfa *NFA, c regex.Concat) fragment {
	if len(c.Items) == 0 {
		return epsilonFragment(nfa)
	}
	first := thompson(nfa, c.Items[0])
	prevEnd := first.end
	for _, item := range c.Items[1:] {
		frag := thompson(nfa, item)
		nfa.addEdge(prevEnd, nfaEdge{Epsilon: true, To: frag.start})
		prevEnd = frag.end
	}
	return fragment{start: first.start, end: prevEnd}
}

func altFragment(nfa *NFA, a regex.Alt) fragment {
	s := nfa.addState()
	e := nfa.addState()
	for _, item := range a.Items {
		frag := thompson(nfa, item)
		nfa.addEdge(s, nfaEdge{Epsilon: true, To: frag.start})
		nfa.addEdge(frag.end, nfaEdge{Epsilon: true, To: e})
	}
	return fragment{start: s, end: e}
}

// repeatFragment unfolds {m,n} into m mandatory copies followed by either
// (n-m) optional copies or, when Max is unbounded, a trailing Kleene star.
func repeatFragment(nfa *NFA, r regex.Repeat) fragment {
	s := nfa.addState()
	cur := s
	for i := 0; i < r.Min; i++ {
		frag := thompson(nfa, r.Sub)
		nfa.addEdge(cur, nfaEdge{Epsilon: true, To: frag.start})
		cur = frag.end
	}
	if r.Max == -1 {
		loopStart := nfa.addState()
		loopEnd := nfa.addState()
		nfa.addEdge(cur, nfaEdge{Epsilon: true, To: loopStart})
		frag := thompson(nfa, r.Sub)
		nfa.addEdge(loopStart, nfaEdge{Epsilon: true, To: frag.start})
		nfa.addEdge(frag.end, nfaEdge{Epsilon: true, To: loopStart})
		nfa.addEdge(loopStart, nfaEdge{Epsilon: true, To: loopEnd})
		cur = loopEnd
	} else {
		for i := r.Min; i < r.Max; i++ {
			frag := thompson(nfa, r.Sub)
			nfa.addEdge(cur, nfaEdge{Epsilon: true, To: frag.start})
			nfa.addEdge(cur, nfaEdge{Epsilon: true, To: frag.end})
			cur = frag.end
		}
	}
	e := nfa.addState()
	nfa.addEdge(cur, nfaEdge{Epsilon: true, To: e})
	if r.Min == 0 && r.Max == 0 {
		nfa.addEdge(s, nfaEdge{Epsilon: true, To: e})
	}
	return fragment{start: s, end: e}
}

// Pattern is one declared token pattern: a name (the token kind it produces)
// and the regex that recognizes it. Ties between patterns matching the same
// longest prefix are broken by declaration order: the pattern appearing
// earlier in the slice passed to BuildNFA wins.
type Pattern struct {
	Name string
	Node regex.Node
}

// BuildNFA combines every pattern into a single NFA with one start state
// fanning out (via epsilon edges) into each pattern's fragment, so the
// shared simulation can run maximal munch across all patterns at once.
func BuildNFA(patterns []Pattern) *NFA {
	nfa := newNFA()
	start := nfa.addState()
	nfa.Start = start
	for i, pat := range patterns {
		frag := thompson(nfa, pat.Node)
		nfa.addEdge(start, nfaEdge{Epsilon: true, To: frag.start})
		nfa.Accepts[frag.end] = i
	}
	return nfa
}
