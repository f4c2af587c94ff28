// Package lexdfa compiles a bundle of patterns over an abstract ordered
// alphabet into a single minimal deterministic automaton: shunting-yard
// parsing into Thompson NFA fragments, a multi-pattern joiner, subset
// construction, and signature-based partition-refinement minimization.
//
// The package does not run the automaton against arbitrary input streams;
// Run walks a pre-scanned slice of CodeUnits to completion and reports which
// pattern (if any) the whole slice matches. Building a streaming or
// partial-match search engine on top of the emitted Machine is left to
// callers.
package lexdfa

import (
	"github.com/coregx/lexdfa/internal/codeunit"
	"github.com/coregx/lexdfa/internal/dfa"
	"github.com/coregx/lexdfa/internal/nfa"
	"github.com/coregx/lexdfa/internal/parser"
)

// CodeUnit is the abstract alphabet symbol every pattern and input is
// expressed over.
type CodeUnit = codeunit.CodeUnit

// Pattern is one member of a compile bundle: an expression over CodeUnits
// and the label Run reports when that pattern (and no higher-labeled one)
// matches. Accepts must be greater than 0; 0 is reserved to mean "no match".
type Pattern struct {
	Expr    []CodeUnit
	Accepts uint32
}

// Transition is a single outgoing edge of a State, firing on exactly one
// CodeUnit.
type Transition struct {
	On CodeUnit
	To int
}

// State is one node of a compiled Machine. Transitions are sorted ascending
// by On, so callers needing binary search over them may rely on that order.
type State struct {
	Accepts     uint32
	Transitions []Transition
}

// Machine is a compiled, minimal deterministic automaton over a pattern
// bundle. States[0] is always the start state.
type Machine struct {
	States []State
}

// Compile builds a Machine recognizing the given pattern bundle. Patterns
// are matched in their entirety (Run consumes the whole input); when more
// than one pattern could accept the same input, the pattern with the
// greatest Accepts label wins.
//
// Compile returns a *CompileError wrapping ErrEmptyBundle if patterns is
// empty, ErrPatternAlphabet if any pattern contains the reserved value 0,
// or ErrPatternSyntax if any pattern fails to parse.
func Compile(patterns []Pattern, opts ...Option) (*Machine, error) {
	cfg := newConfig(opts)

	if len(patterns) == 0 {
		return nil, &CompileError{Pattern: -1, Kind: ErrEmptyBundle}
	}

	b := nfa.NewBuilder()
	sources := make([]nfa.PatternSource, 0, len(patterns))

	for i, p := range patterns {
		if p.Accepts == 0 {
			return nil, &CompileError{Pattern: i, Kind: ErrPatternSyntax, Cause: errAcceptsZero}
		}
		frag, err := parser.Parse(p.Expr, b)
		if err != nil {
			if _, ok := err.(*parser.AlphabetError); ok {
				return nil, &CompileError{Pattern: i, Kind: ErrPatternAlphabet, Cause: err}
			}
			return nil, &CompileError{Pattern: i, Kind: ErrPatternSyntax, Cause: err}
		}
		sources = append(sources, nfa.PatternSource{Fragment: frag, Accepts: p.Accepts})
	}

	joined := nfa.Join(b, sources)

	d := dfa.Determinize(joined)
	if cfg.maxStates > 0 && len(d.States) > cfg.maxStates {
		return nil, &CompileError{Pattern: -1, Kind: ErrTooManyStates}
	}

	if !cfg.skipMinimize {
		dfa.Minimize(d)
	} else {
		dfa.IdentityPartition(d)
	}

	table := dfa.Emit(d)

	m := &Machine{States: make([]State, len(table.States))}
	for i, row := range table.States {
		trans := make([]Transition, len(row.Transitions))
		for j, t := range row.Transitions {
			trans[j] = Transition{On: t.On, To: t.To}
		}
		m.States[i] = State{Accepts: row.Accepts, Transitions: trans}
	}
	return m, nil
}

// CompileStrings is a convenience wrapper around Compile for callers whose
// patterns and input are ordinary Go strings: each string is mapped to
// CodeUnits one rune at a time via codeunit.FromString, and accept labels
// are assigned 1, 2, 3, ... in argument order.
func CompileStrings(patterns []string, opts ...Option) (*Machine, error) {
	ps := make([]Pattern, len(patterns))
	for i, s := range patterns {
		ps[i] = Pattern{Expr: codeunit.FromString(s), Accepts: uint32(i + 1)}
	}
	return Compile(ps, opts...)
}

// Run walks input from the start state to completion and returns the accept
// label of the state it ends on (0 if the input is rejected by every
// pattern in the bundle).
func (m *Machine) Run(input []CodeUnit) uint32 {
	cur := 0
	for _, c := range input {
		next := -1
		for _, t := range m.States[cur].Transitions {
			if t.On == c {
				next = t.To
				break
			}
		}
		if next < 0 {
			return 0
		}
		cur = next
	}
	return m.States[cur].Accepts
}
