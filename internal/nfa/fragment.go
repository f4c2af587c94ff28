package nfa

import "github.com/coregx/lexdfa/internal/codeunit"

// Fragment is a sub-NFA with a designated entry and exit state, as produced
// by each step of Thompson's construction. The shunting-yard
// evaluator holds these on its fragment stack and combines them one
// operator at a time.
type Fragment struct {
	Start, End StateID
}

// Literal builds the fragment for a single code unit: two fresh states
// s --on--> e.
func (b *Builder) Literal(on codeunit.CodeUnit) Fragment {
	end := b.NewState()
	start := b.NewState()
	b.SetSymbol(start, on, end)
	return Fragment{Start: start, End: end}
}

// Concat builds L·R by epsilon-joining L's end to R's start.
func (b *Builder) Concat(l, r Fragment) Fragment {
	b.AddEpsilonEdge(l.End, r.Start)
	return Fragment{Start: l.Start, End: r.End}
}

// Alternate builds L|R: a fresh split state epsilons into both starts, and
// both ends epsilon into a fresh join state.
func (b *Builder) Alternate(l, r Fragment) Fragment {
	start := b.NewState()
	end := b.NewState()
	b.AddEpsilonEdge(start, l.Start)
	b.AddEpsilonEdge(start, r.Start)
	b.AddEpsilonEdge(l.End, end)
	b.AddEpsilonEdge(r.End, end)
	return Fragment{Start: start, End: end}
}

// Star builds L* (zero or more): a single fresh state doubles as both the
// new entry/exit and the loop-back join.
func (b *Builder) Star(l Fragment) Fragment {
	n := b.NewState()
	b.AddEpsilonEdge(n, l.Start)
	b.AddEpsilonEdge(l.End, n)
	return Fragment{Start: n, End: n}
}

// Optional builds L? by epsilon-bridging L's start directly to its end.
// The fragment's boundary states are unchanged.
func (b *Builder) Optional(l Fragment) Fragment {
	b.AddEpsilonEdge(l.Start, l.End)
	return l
}

// Plus builds L+ (one or more): s epsilons into L.Start, L.End epsilons
// into both a fresh exit e and back into L.Start. The back-edge is what
// separates this from Optional; without it the automaton would accept the
// empty string.
func (b *Builder) Plus(l Fragment) Fragment {
	start := b.NewState()
	end := b.NewState()
	b.AddEpsilonEdge(start, l.Start)
	b.AddEpsilonEdge(l.End, end)
	b.AddEpsilonEdge(l.End, l.Start)
	return Fragment{Start: start, End: end}
}
