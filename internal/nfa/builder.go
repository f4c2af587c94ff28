package nfa

import (
	"github.com/coregx/lexdfa/internal/codeunit"
	"github.com/coregx/lexdfa/internal/conv"
)

// Builder constructs an NFA incrementally using a low-level API: one fresh
// state at a time, with edges added as the shunting-yard evaluator combines
// fragments.
type Builder struct {
	states []State
}

// NewBuilder creates an empty NFA builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 64)}
}

// NewState allocates a fresh state with no edges and no accept label.
func (b *Builder) NewState() StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{id: id, epsilon: NewIDSet(), symTarget: InvalidState})
	return id
}

// AddEpsilonEdge adds target to from's epsilon-successor set.
func (b *Builder) AddEpsilonEdge(from, target StateID) {
	b.states[from].epsilon.Add(target)
}

// SetSymbol sets state id's single outgoing symbol transition. Calling it
// twice on the same state is a builder misuse (Thompson's construction
// never needs it); the second call simply overwrites the first.
func (b *Builder) SetSymbol(id StateID, on codeunit.CodeUnit, target StateID) {
	s := &b.states[id]
	s.hasSymbol = true
	s.on = on
	s.symTarget = target
}

// SetAccept marks state id as accepting with the given label.
func (b *Builder) SetAccept(id StateID, label uint32) {
	b.states[id].accepts = label
}

// State returns a pointer to the state with the given id.
func (b *Builder) State(id StateID) *State {
	return &b.states[id]
}

// NumStates returns the number of states allocated so far.
func (b *Builder) NumStates() int {
	return len(b.states)
}

// Build finalizes the NFA rooted at start.
func (b *Builder) Build(start StateID) *NFA {
	return &NFA{states: b.states, start: start}
}
