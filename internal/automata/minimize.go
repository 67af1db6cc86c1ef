package automata

import "sort"

// Minimize collapses equivalent states in dfa using partition refinement
// (Moore's algorithm restated over symbol classes): start with states
// grouped by their accepting pattern (non-accepting states form one more
// group), then repeatedly split any group whose members transition to
// different groups on some symbol class, until no group splits further.
func Minimize(dfa *DFA) *DFA {
	n := len(dfa.Trans)
	groupOf := make([]int, n)
	initial := map[int][]stateID{}
	groupKey := func(s stateID) int {
		if pri, ok := dfa.Accepts[s]; ok {
			return pri + 1 // +1 so "no accept" can use 0
		}
		return 0
	}
	for s := 0; s < n; s++ {
		k := groupKey(stateID(s))
		initial[k] = append(initial[k], stateID(s))
	}

	var groups [][]stateID
	keys := make([]int, 0, len(initial))
	for k := range initial {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		groups = append(groups, initial[k])
		gid := len(groups) - 1
		for _, s := range initial[k] {
			groupOf[s] = gid
		}
	}

	changed := true
	for changed {
		changed = false
		var newGroups [][]stateID
		newGroupOf := make([]int, n)
		for _, g := range groups {
			split := map[string][]stateID{}
			var order []string
			for _, s := range g {
				sig := signature(dfa, groupOf, s)
				if _, ok := split[sig]; !ok {
					order = append(order, sig)
				}
				split[sig] = append(split[sig], s)
			}
			if len(order) > 1 {
				changed = true
			}
			for _, sig := range order {
				gid := len(newGroups)
				newGroups = append(newGroups, split[sig])
				for _, s := range split[sig] {
					newGroupOf[s] = gid
				}
			}
		}
		groups = newGroups
		groupOf = newGroupOf
	}

	// Group ids are the order in which refinement produced the groups; the
	// final BFS renumbering happens in renumber.go.
	trans := make([][]stateID, len(groups))
	accepts := map[stateID]int{}
	for gid, g := range groups {
		rep := g[0]
		row := make([]stateID, len(dfa.Alphabet))
		for ci := range dfa.Alphabet {
			row[ci] = stateID(groupOf[dfa.Trans[rep][ci]])
		}
		trans[gid] = row
		if pri, ok := dfa.Accepts[rep]; ok {
			accepts[stateID(gid)] = pri
		}
	}

	return &DFA{
		Alphabet: dfa.Alphabet,
		Trans:    trans,
		Start:    stateID(groupOf[dfa.Start]),
		Accepts:  accepts,
		Sink:     stateID(groupOf[dfa.Sink]),
	}
}

// signature captures how state s transitions out of its current group,
// coarsened to group membership rather than raw state IDs so equal
// signatures mean "still indistinguishable so far".
func signature(dfa *DFA, groupOf []int, s stateID) string {
	b := make([]byte, 0, len(dfa.Alphabet)*4)
	for ci := range dfa.Alphabet {
		g := groupOf[dfa.Trans[s][ci]]
		b = append(b, byte(g), byte(g>>8), byte(g>>16), byte(g>>24))
	}
	return string(b)
}
