package automata

import "sort"

// maxRune bounds the alphabet at the last Unicode code point so negated
// classes ("any rune but X") have a concrete upper edge to partition
// against, instead of enumerating all of Unicode. The final class always
// ends at maxRune.
const maxRune = 0x10FFFF

// symbolClass is one disjoint interval of runes that every NFA edge treats
// identically — either all of [Lo, Hi] is accepted by a given edge, or none
// of it is. Partitioning the infinite rune space into finitely many classes
// is what makes subset construction and minimization tractable.
type symbolClass struct {
	Lo, Hi rune
}

// buildAlphabet collects every range boundary mentioned by the NFA's edges
// and slices the rune space at each boundary, producing the coarsest set of
// disjoint classes that still respects every edge's accept/reject decision.
func buildAlphabet(nfa *NFA) []symbolClass {
	boundarySet := map[rune]bool{0: true, maxRune + 1: true}
	for _, st := range nfa.States {
		for _, e := range st.Edges {
			if e.Epsilon {
				continue
			}
			for _, r := range e.Ranges {
				boundarySet[r.Lo] = true
				if r.Hi+1 <= maxRune {
					boundarySet[r.Hi+1] = true
				}
			}
		}
	}
	boundaries := make([]rune, 0, len(boundarySet))
	for b := range boundarySet {
		boundaries = append(boundaries, b)
	}
	sort.Slice(boundaries, func(i, j int) bool { return boundaries[i] < boundaries[j] })

	classes := make([]symbolClass, 0, len(boundaries))
	for i := 0; i+1 < len(boundaries); i++ {
		lo := boundaries[i]
		hi := boundaries[i+1] - 1
		if lo > hi {
			continue
		}
		classes = append(classes, symbolClass{Lo: lo, Hi: hi})
	}
	return classes
}

// edgeCoversRangeLiterally reports whether edge e, read literally (ignoring Negate),
// covers class c. matchesClass folds in Negate.
func edgeCoversRangeLiterally(e nfaEdge, c symbolClass) bool {
	for _, r := range e.Ranges {
		if r.Lo <= c.Lo && c.Hi <= r.Hi {
			return true
		}
	}
	return false
}

// matchesClass reports whether edge e accepts every rune in class c. Because
// classes never straddle a range boundary, "covers literally" and "covers
// entirely" coincide for well-formed alphabets.
func matchesClass(e nfaEdge, c symbolClass) bool {
	covered := edgeCoversRangeLiterally(e, c)
	if e.Negate {
		return !covered
	}
	return covered
}
