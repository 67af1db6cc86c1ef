package automata

// Renumber relabels dfa's states in BFS order from the start state, so the
// serialized table is stable across runs regardless of map iteration order
// earlier in the pipeline. The sink, if unreachable from Start, is appended
// last; if reachable, it falls wherever BFS finds it.
func Renumber(dfa *DFA) *DFA {
	n := len(dfa.Trans)
	newID := make([]int, n)
	for i := range newID {
		newID[i] = -1
	}
	order := make([]stateID, 0, n)
	queue := []stateID{dfa.Start}
	newID[dfa.Start] = 0
	order = append(order, dfa.Start)
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		for _, next := range dfa.Trans[cur] {
			if newID[next] == -1 {
				newID[next] = len(order)
				order = append(order, next)
				queue = append(queue, next)
			}
		}
	}
	for s := 0; s < n; s++ {
		if newID[s] == -1 {
			newID[s] = len(order)
			order = append(order, stateID(s))
		}
	}

	trans := make([][]stateID, len(order))
	accepts := map[stateID]int{}
	for newS, oldS := range order {
		row := make([]stateID, len(dfa.Alphabet))
		for ci, to := range dfa.Trans[oldS] {
			row[ci] = stateID(newID[to])
		}
		trans[newS] = row
		if pri, ok := dfa.Accepts[oldS]; ok {
			accepts[stateID(newS)] = pri
		}
	}

	return &DFA{
		Alphabet: dfa.Alphabet,
		Trans:    trans,
		Start:    stateID(newID[dfa.Start]),
		Accepts:  accepts,
		Sink:     stateID(newID[dfa.Sink]),
	}
}
