// Property tests cross-checking compiled Machines against Go's stdlib
// regexp package as an independent oracle. Only patterns whose syntax means
// the same thing in both engines are used here: no explicit-concat '.'
// (stdlib reads it as any-char) and no escapes.
package lexdfa

import (
	"reflect"
	"regexp"
	"testing"
)

// oraclePatterns all carry identical semantics in lexdfa and stdlib regexp.
var oraclePatterns = []string{
	"a",
	"ab",
	"a|b",
	"a*",
	"a+",
	"a?b",
	"ab|ba",
	"(ab)+",
	"((a))",
	"a*b*",
	"(a|b)(a|b)",
	"(a|b)*abb",
}

// vocabulary enumerates every string over {a, b} of length 0..maxLen.
func vocabulary(maxLen int) []string {
	out := []string{""}
	frontier := []string{""}
	for i := 0; i < maxLen; i++ {
		var next []string
		for _, s := range frontier {
			next = append(next, s+"a", s+"b")
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

func TestMachineAgreesWithStdlibRegexp(t *testing.T) {
	inputs := vocabulary(5)
	for _, pat := range oraclePatterns {
		t.Run(pat, func(t *testing.T) {
			m := mustCompile(t, []string{pat})
			re := regexp.MustCompile("^(?:" + pat + ")$")
			for _, in := range inputs {
				got := runString(m, in) != 0
				want := re.MatchString(in)
				if got != want {
					t.Errorf("pattern %q input %q: Machine match = %v, stdlib = %v", pat, in, got, want)
				}
			}
		})
	}
}

// TestLabelPriorityAgainstStdlib compiles overlapping bundles and checks
// that Run reports the highest label among all stdlib-confirmed matches.
func TestLabelPriorityAgainstStdlib(t *testing.T) {
	bundles := [][]string{
		{"a", "a|b", "a*"},
		{"ab", "a*b*", "(a|b)(a|b)"},
		{"(a|b)*abb", "a*", "ab|ba"},
	}
	inputs := vocabulary(4)
	for _, bundle := range bundles {
		m := mustCompile(t, bundle)
		res := make([]*regexp.Regexp, len(bundle))
		for i, pat := range bundle {
			res[i] = regexp.MustCompile("^(?:" + pat + ")$")
		}
		for _, in := range inputs {
			var want uint32
			for i, re := range res {
				if re.MatchString(in) {
					want = uint32(i + 1)
				}
			}
			if got := runString(m, in); got != want {
				t.Errorf("bundle %v input %q: Run = %d, want %d", bundle, in, got, want)
			}
		}
	}
}

func TestCompileDeterministic(t *testing.T) {
	bundle := []string{"(a|b)*abb", "a+", "ab|ba"}
	m1 := mustCompile(t, bundle)
	m2 := mustCompile(t, bundle)
	if !reflect.DeepEqual(m1, m2) {
		t.Fatalf("two compiles of the same bundle differ:\n%+v\n%+v", m1, m2)
	}
}

// TestMachineMinimality checks that no two output states share the same
// (accepts, transitions) row; a duplicate row would mean two states the
// minimizer should have merged.
func TestMachineMinimality(t *testing.T) {
	for _, pat := range oraclePatterns {
		m := mustCompile(t, []string{pat})
		for i := 0; i < len(m.States); i++ {
			for j := i + 1; j < len(m.States); j++ {
				if m.States[i].Accepts == m.States[j].Accepts &&
					reflect.DeepEqual(m.States[i].Transitions, m.States[j].Transitions) {
					t.Errorf("pattern %q: states %d and %d are identical rows", pat, i, j)
				}
			}
		}
	}
}

func TestMachineWellFormed(t *testing.T) {
	for _, pat := range oraclePatterns {
		m := mustCompile(t, []string{pat})
		for i, s := range m.States {
			for k, tr := range s.Transitions {
				if tr.To < 0 || tr.To >= len(m.States) {
					t.Errorf("pattern %q: state %d transition target %d out of range", pat, i, tr.To)
				}
				if k > 0 && s.Transitions[k-1].On >= tr.On {
					t.Errorf("pattern %q: state %d transitions not strictly ascending by symbol", pat, i)
				}
			}
		}
	}
}
