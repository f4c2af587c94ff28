// Package dfa turns a joined NFA into a deterministic, minimal automaton:
// subset construction with epsilon closure, signature-based partition
// refinement minimization, and table emission.
package dfa

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/coregx/lexdfa/internal/codeunit"
	"github.com/coregx/lexdfa/internal/nfa"
	"github.com/coregx/lexdfa/internal/worklist"
)

// StateSet is an ordered, canonical set of NFA state identifiers, used as
// the subset-construction map key. Two StateSets are equal exactly when
// they contain the same NFA ids; compareStateSets orders them
// lexicographically by member.
type StateSet struct {
	ids *treeset.Set // ordered set of nfa.StateID
}

func newStateSet() *StateSet {
	return &StateSet{ids: treeset.NewWith(func(a, b interface{}) int {
		x, y := a.(nfa.StateID), b.(nfa.StateID)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	})}
}

// Values returns the set's members in ascending NFA-id order.
func (s *StateSet) Values() []nfa.StateID {
	raw := s.ids.Values()
	out := make([]nfa.StateID, len(raw))
	for i, v := range raw {
		out[i] = v.(nfa.StateID)
	}
	return out
}

// compareStateSets orders two StateSets lexicographically by member so
// they can key an ordered map.
func compareStateSets(a, b interface{}) int {
	sa, sb := a.(*StateSet), b.(*StateSet)
	va, vb := sa.Values(), sb.Values()
	for i := 0; i < len(va) && i < len(vb); i++ {
		if va[i] != vb[i] {
			if va[i] < vb[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(va) < len(vb):
		return -1
	case len(va) > len(vb):
		return 1
	default:
		return 0
	}
}

// epsilonClosure computes the least fixpoint containing seed under
// epsilon-successor expansion, using a worklist frontier so already-visited
// states are never re-expanded.
func epsilonClosure(n *nfa.NFA, seed []nfa.StateID) *StateSet {
	closure := newStateSet()
	wl := worklist.New[nfa.StateID]()
	for _, s := range seed {
		wl.PushBack(s)
	}
	for {
		s, ok := wl.PopFront()
		if !ok {
			break
		}
		if closure.ids.Contains(s) {
			continue
		}
		closure.ids.Add(s)
		for _, raw := range n.State(s).EpsilonSuccessors().Values() {
			t := raw.(nfa.StateID)
			if !closure.ids.Contains(t) {
				wl.PushBack(t)
			}
		}
	}
	return closure
}

// move computes the set of states reachable from an already epsilon-closed
// set S on symbol c: { t : s in S, s --c--> t }.
func move(n *nfa.NFA, s *StateSet, c codeunit.CodeUnit) []nfa.StateID {
	var out []nfa.StateID
	for _, id := range s.Values() {
		on, target, ok := n.State(id).Symbol()
		if ok && on == c {
			out = append(out, target)
		}
	}
	return out
}

// maxAccept returns the highest accept label among S's member states (0 if
// none are accepting). Higher label wins when several patterns accept.
func maxAccept(n *nfa.NFA, s *StateSet) uint32 {
	var best uint32
	for _, id := range s.Values() {
		if a := n.State(id).Accepts(); a > best {
			best = a
		}
	}
	return best
}

// alphabet returns the distinct code units appearing on any outgoing
// symbol transition from any member of S, in ascending order: the set of
// symbols subset construction must try next from this state-set.
func alphabet(n *nfa.NFA, s *StateSet) []codeunit.CodeUnit {
	seen := treeset.NewWith(func(a, b interface{}) int {
		return codeunit.Compare(a.(codeunit.CodeUnit), b.(codeunit.CodeUnit))
	})
	for _, id := range s.Values() {
		if on, _, ok := n.State(id).Symbol(); ok {
			seen.Add(on)
		}
	}
	raw := seen.Values()
	out := make([]codeunit.CodeUnit, len(raw))
	for i, v := range raw {
		out[i] = v.(codeunit.CodeUnit)
	}
	return out
}
