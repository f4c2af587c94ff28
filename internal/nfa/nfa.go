package nfa

// NFA is a finished Thompson construction: a dense, index-allocated vector
// of states (so graph edges are plain integer indices, sidestepping the
// ownership tangles a pointer graph with cycles from `*`/`+` would create)
// plus the identifier of its start state.
type NFA struct {
	states []State
	start  StateID
}

// Start returns the NFA's start state.
func (n *NFA) Start() StateID { return n.start }

// NumStates returns the number of states in the NFA.
func (n *NFA) NumStates() int { return len(n.states) }

// State returns a pointer to the state with the given id. Every state
// created by the builder is reachable from Start via epsilon and symbol
// edges.
func (n *NFA) State(id StateID) *State { return &n.states[id] }

// PatternSource is one labeled pattern to be joined into a single bundle
// NFA: the fragment already built from its code units, and its accept label.
type PatternSource struct {
	Fragment Fragment
	Accepts  uint32
}

// Join creates the super-start state with an epsilon transition to each
// pattern's start, and tags each pattern's fragment end with its accept
// label. The super-start is the NFA root that unifies the whole bundle.
func Join(b *Builder, patterns []PatternSource) *NFA {
	super := b.NewState()
	for _, p := range patterns {
		b.SetAccept(p.Fragment.End, p.Accepts)
		b.AddEpsilonEdge(super, p.Fragment.Start)
	}
	return b.Build(super)
}
