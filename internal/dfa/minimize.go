package dfa

import (
	"sort"

	"github.com/coregx/lexdfa/internal/codeunit"
)

// edgeKey encodes a state's transitions as an order-sensitive string keyed
// on (symbol, parent-of-target) pairs. Each target is dereferenced through
// its CURRENT bin representative (d.States[to].Parent as of the start of
// this round), not
// its raw state id; two states whose literal targets differ but whose
// targets are themselves in the same bin must compare equal, or refinement
// can never discover merges beyond literally-identical transition tables.
// The initial (accept, out-degree) seed that round 0 uses instead is
// computed separately in Minimize, since Parent isn't meaningful yet.
func edgeKey(d *DFA, s *State) string {
	type pair struct {
		on     codeunit.CodeUnit
		parent StateID
	}
	var pairs []pair
	it := s.Trans.Iterator()
	for it.Next() {
		on := it.Key().(codeunit.CodeUnit)
		to := it.Value().(StateID)
		pairs = append(pairs, pair{on, d.States[to].Parent})
	}
	// Trans already iterates in ascending CodeUnit order (redblacktree),
	// so no extra sort is needed here.
	buf := make([]byte, 0, len(pairs)*8)
	for _, p := range pairs {
		buf = append(buf, byte(p.on), byte(p.on>>8))
		buf = append(buf, byte(p.parent), byte(p.parent>>8), byte(p.parent>>16), byte(p.parent>>24))
	}
	return string(buf)
}

// Minimize collapses behaviorally indistinguishable states by repeated
// signature-based partition refinement: states start grouped purely by
// (accept, out-degree), then every round each bin is
// re-examined against the current bin representatives reachable from its
// members' transitions; members whose signature no longer matches their
// bin's representative split off into new bins. This terminates when a
// full pass produces no splits, bounded by n rounds since each round that
// changes anything strictly refines the partition.
func Minimize(d *DFA) {
	n := len(d.States)
	if n == 0 {
		return
	}

	// Round 0: seed bins by (accepts, outDegree) alone.
	type key0 struct {
		accepts   uint32
		outDegree int
	}
	firstOf := map[key0]StateID{}
	for _, s := range d.States {
		k := key0{s.Accepts, s.OutDegree()}
		if rep, ok := firstOf[k]; ok {
			s.Parent = rep
		} else {
			firstOf[k] = s.ID
			s.Parent = s.ID
		}
	}
	rebuildChildren(d)

	for {
		changed := false

		// Iterate bins in order of representative identifier so the
		// refinement schedule is reproducible.
		reps := make([]StateID, 0, len(d.States))
		for _, s := range d.States {
			if s.Parent == s.ID {
				reps = append(reps, s.ID)
			}
		}
		sort.Slice(reps, func(i, j int) bool { return reps[i] < reps[j] })

		for _, rep := range reps {
			members := d.States[rep].Children
			if len(members) <= 1 {
				for _, m := range members {
					d.States[m].Surrogate = rep
				}
				continue
			}

			repKey := edgeKey(d, d.States[rep])
			groups := map[string]StateID{} // edge key -> first member (new rep) in this bin
			for _, m := range members {
				s := d.States[m]
				key := edgeKey(d, s)
				if s.ID == rep {
					// the representative always anchors its own subgroup
					groups[key] = rep
				}
				if _, ok := groups[key]; !ok {
					groups[key] = m
					if key != repKey {
						changed = true
					}
				}
				s.Surrogate = groups[key]
			}
		}

		for _, s := range d.States {
			s.Parent = s.Surrogate
		}
		rebuildChildren(d)

		if !changed {
			break
		}
	}
}

// IdentityPartition marks every state as its own representative, the
// partition Emit expects when the minimization pass is skipped.
func IdentityPartition(d *DFA) {
	for _, s := range d.States {
		s.Parent = s.ID
	}
	rebuildChildren(d)
}

func rebuildChildren(d *DFA) {
	for _, s := range d.States {
		s.Children = nil
	}
	for _, s := range d.States {
		rep := d.States[s.Parent]
		rep.Children = append(rep.Children, s.ID)
	}
	for _, s := range d.States {
		sort.Slice(s.Children, func(i, j int) bool { return s.Children[i] < s.Children[j] })
	}
}
