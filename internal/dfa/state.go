package dfa

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/coregx/lexdfa/internal/codeunit"
)

// StateID identifies a DFA state within a single DFA's arena.
type StateID uint32

// State is a single DFA node: a CodeUnit-keyed transition map (ordered, so
// emission never needs a separate sort pass) and an accept label. Parent,
// Surrogate, and Children are scratch fields used only during minimization
// and are meaningless outside it.
type State struct {
	ID      StateID
	Accepts uint32
	Trans   *redblacktree.Tree // codeunit.CodeUnit -> StateID

	Parent    StateID
	Surrogate StateID
	Children  []StateID
}

func newState(id StateID, accepts uint32) *State {
	return &State{
		ID:      id,
		Accepts: accepts,
		Trans: redblacktree.NewWith(func(a, b interface{}) int {
			return codeunit.Compare(a.(codeunit.CodeUnit), b.(codeunit.CodeUnit))
		}),
		Parent: id,
	}
}

// Get returns the target of the transition on c, if any.
func (s *State) Get(c codeunit.CodeUnit) (StateID, bool) {
	v, found := s.Trans.Get(c)
	if !found {
		return 0, false
	}
	return v.(StateID), true
}

// Set records a transition on c to target, overwriting any prior target.
func (s *State) Set(c codeunit.CodeUnit, target StateID) {
	s.Trans.Put(c, target)
}

// OutDegree returns the number of distinct outgoing transitions.
func (s *State) OutDegree() int {
	return s.Trans.Size()
}

// DFA is a deterministic automaton produced by subset construction: a
// dense, index-allocated vector of states plus the start state's id.
type DFA struct {
	States []*State
	Start  StateID
}
