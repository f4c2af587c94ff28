package dfa

import (
	"sort"

	"github.com/coregx/lexdfa/internal/codeunit"
)

// Transition is a single outgoing edge in an emitted table: the code unit it
// fires on and the index of the target state within the owning Machine's
// dense state vector.
type Transition struct {
	On codeunit.CodeUnit
	To int
}

// EmittedState is one row of the emitted table.
type EmittedState struct {
	Accepts     uint32
	Transitions []Transition
}

// Table is the flattened, minimized automaton: a dense vector of states with
// the start state's bin representative spliced to index 0, whatever its id,
// followed by the other representatives in ascending id order.
type Table struct {
	States []EmittedState
}

// Emit collapses d's partition (the Parent pointers set by Minimize or by
// IdentityPartition) into a dense table. On a partition where every state is
// its own representative, each state becomes its own row.
func Emit(d *DFA) *Table {
	startRep := d.States[d.Start].Parent

	var rest []StateID
	for _, s := range d.States {
		if s.Parent == s.ID && s.ID != startRep {
			rest = append(rest, s.ID)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })

	survivors := append([]StateID{startRep}, rest...)

	index := make(map[StateID]int, len(survivors))
	for i, id := range survivors {
		index[id] = i
	}

	states := make([]EmittedState, len(survivors))
	for i, id := range survivors {
		s := d.States[id]
		var trans []Transition
		it := s.Trans.Iterator()
		for it.Next() {
			on := it.Key().(codeunit.CodeUnit)
			to := it.Value().(StateID)
			targetRep := d.States[to].Parent
			trans = append(trans, Transition{On: on, To: index[targetRep]})
		}
		states[i] = EmittedState{Accepts: s.Accepts, Transitions: trans}
	}

	return &Table{States: states}
}
