// Package nfa builds a Thompson construction NFA with epsilon transitions
// from fragments assembled by the shunting-yard parser, and exposes the
// ordered views subset construction needs to turn it into a DFA.
package nfa

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/coregx/lexdfa/internal/codeunit"
)

// StateID uniquely identifies an NFA state. Identifiers are dense and
// assigned in allocation order; every ordering in this package and in
// internal/dfa is by StateID alone, never by pointer or map iteration.
type StateID uint32

// InvalidState marks the absence of a state reference (e.g. a literal
// state with no symbol transition yet, or a fragment before it is wired).
const InvalidState StateID = 0xFFFFFFFF

// idComparator orders StateIDs by value, giving treeset/redblacktree
// deterministic, identifier-ordered iteration: subset construction
// depends on it for reproducible state numbering.
func idComparator(a, b interface{}) int {
	x, y := a.(StateID), b.(StateID)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// NewIDSet returns an empty ordered set of StateIDs.
func NewIDSet() *treeset.Set {
	return treeset.NewWith(idComparator)
}

// State is a single NFA node. It holds an epsilon-successor set (possibly
// grown incrementally as fragments are embedded in larger ones), at most
// one symbol transition (Thompson's construction never needs more than one
// target per (state, symbol) pair; nondeterminism lives in the epsilon
// edges),
// and an accept label which is 0 for interior states.
type State struct {
	id      StateID
	epsilon *treeset.Set // ordered set of StateID

	hasSymbol bool
	on        codeunit.CodeUnit
	symTarget StateID

	accepts uint32
}

// ID returns the state's identifier.
func (s *State) ID() StateID { return s.id }

// EpsilonSuccessors returns the ordered set of states reachable from s via
// a single epsilon transition.
func (s *State) EpsilonSuccessors() *treeset.Set { return s.epsilon }

// Symbol returns the state's symbol transition, if any.
func (s *State) Symbol() (on codeunit.CodeUnit, target StateID, ok bool) {
	return s.on, s.symTarget, s.hasSymbol
}

// Accepts returns the state's accept label (0 if non-accepting).
func (s *State) Accepts() uint32 { return s.accepts }

func (s *State) String() string {
	return fmt.Sprintf("State(%d, eps=%v, sym=%v, accepts=%d)", s.id, s.epsilon.Values(), s.hasSymbol, s.accepts)
}
