package dfa

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/coregx/lexdfa/internal/nfa"
	"github.com/coregx/lexdfa/internal/worklist"
)

// Determinize runs subset construction over the joined NFA n, producing a
// DFA whose states are maximal-accept-labeled epsilon-closed NFA
// state-sets. The map from state-set to DFA state is an ordered red-black
// tree keyed by the lexicographic StateSet comparator, so equal state-sets
// collapse to the same DFA state.
func Determinize(n *nfa.NFA) *DFA {
	seen := redblacktree.NewWith(compareStateSets) // *StateSet -> StateID
	out := &DFA{}
	wl := worklist.New[*StateSet]()

	register := func(s *StateSet) StateID {
		id := StateID(len(out.States))
		out.States = append(out.States, newState(id, maxAccept(n, s)))
		seen.Put(s, id)
		wl.PushBack(s)
		return id
	}

	q0 := epsilonClosure(n, []nfa.StateID{n.Start()})
	out.Start = register(q0)

	for {
		s, ok := wl.PopFront()
		if !ok {
			break
		}
		fromID, _ := seen.Get(s)
		from := out.States[fromID.(StateID)]

		for _, c := range alphabet(n, s) {
			t := epsilonClosure(n, move(n, s, c))
			var toID StateID
			if v, found := seen.Get(t); found {
				toID = v.(StateID)
			} else {
				toID = register(t)
			}
			from.Set(c, toID)
		}
	}

	return out
}
