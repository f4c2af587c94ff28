package lexdfa

import (
	"errors"
	"testing"
)

func mustCompile(t *testing.T, patterns []string) *Machine {
	t.Helper()
	m, err := CompileStrings(patterns)
	if err != nil {
		t.Fatalf("CompileStrings(%v) = %v", patterns, err)
	}
	return m
}

func runString(m *Machine, s string) uint32 {
	units := make([]CodeUnit, len(s))
	for i, r := range []byte(s) {
		units[i] = CodeUnit(r)
	}
	return m.Run(units)
}

func TestCompileSingleLiteral(t *testing.T) {
	m := mustCompile(t, []string{"a"})
	if got := runString(m, "a"); got != 1 {
		t.Errorf("Run(a) = %d, want 1", got)
	}
	if got := runString(m, "b"); got != 0 {
		t.Errorf("Run(b) = %d, want 0", got)
	}
}

func TestCompileConcat(t *testing.T) {
	m := mustCompile(t, []string{"ab"})
	if got := runString(m, "ab"); got != 1 {
		t.Errorf("Run(ab) = %d, want 1", got)
	}
	if got := runString(m, "a"); got != 0 {
		t.Errorf("Run(a) = %d, want 0", got)
	}
}

func TestCompileUnion(t *testing.T) {
	m := mustCompile(t, []string{"a|b"})
	if got := runString(m, "a"); got != 1 {
		t.Errorf("Run(a) = %d, want 1", got)
	}
	if got := runString(m, "b"); got != 1 {
		t.Errorf("Run(b) = %d, want 1", got)
	}
}

func TestCompileStar(t *testing.T) {
	m := mustCompile(t, []string{"a*"})
	if got := runString(m, ""); got != 1 {
		t.Errorf("Run(\"\") = %d, want 1", got)
	}
	if got := runString(m, "aaaa"); got != 1 {
		t.Errorf("Run(aaaa) = %d, want 1", got)
	}
}

func TestCompileTwoPatternPriority(t *testing.T) {
	m := mustCompile(t, []string{"a", "ab"})
	if got := runString(m, "ab"); got != 2 {
		t.Errorf("Run(ab) = %d, want 2 (only pattern 2 matches)", got)
	}
	if got := runString(m, "a"); got != 1 {
		t.Errorf("Run(a) = %d, want 1", got)
	}
}

func TestCompileClassicExample(t *testing.T) {
	m := mustCompile(t, []string{"(a|b)*abb"})
	for _, s := range []string{"abb", "aabb", "babb", "ababb"} {
		if got := runString(m, s); got != 1 {
			t.Errorf("Run(%q) = %d, want 1", s, got)
		}
	}
	for _, s := range []string{"", "ab", "abba", "abbb"} {
		if got := runString(m, s); got != 0 {
			t.Errorf("Run(%q) = %d, want 0", s, got)
		}
	}
}

func TestCompileEmptyBundle(t *testing.T) {
	_, err := Compile(nil)
	if !errors.Is(err, ErrEmptyBundle) {
		t.Fatalf("Compile(nil) error = %v, want ErrEmptyBundle", err)
	}
}

func TestCompilePatternSyntaxError(t *testing.T) {
	_, err := CompileStrings([]string{"(a"})
	if !errors.Is(err, ErrPatternSyntax) {
		t.Fatalf("CompileStrings([(a]) error = %v, want ErrPatternSyntax", err)
	}
}

func TestCompilePatternAlphabetError(t *testing.T) {
	_, err := Compile([]Pattern{{Expr: []CodeUnit{0}, Accepts: 1}})
	if !errors.Is(err, ErrPatternAlphabet) {
		t.Fatalf("Compile with reserved code unit error = %v, want ErrPatternAlphabet", err)
	}
}

func TestCompileInvalidAcceptsLabel(t *testing.T) {
	_, err := Compile([]Pattern{{Expr: []CodeUnit{'a'}, Accepts: 0}})
	if !errors.Is(err, ErrPatternSyntax) {
		t.Fatalf("Compile with zero accept label error = %v, want ErrPatternSyntax", err)
	}
}

func TestCompileWithSkipMinimization(t *testing.T) {
	m, err := CompileStrings([]string{"a|b"}, WithSkipMinimization())
	if err != nil {
		t.Fatalf("CompileStrings with WithSkipMinimization() = %v", err)
	}
	if got := runString(m, "a"); got != 1 {
		t.Errorf("Run(a) = %d, want 1", got)
	}
}

func TestCompileWithMaxStatesExceeded(t *testing.T) {
	_, err := CompileStrings([]string{"abcdefgh"}, WithMaxStates(1))
	if !errors.Is(err, ErrTooManyStates) {
		t.Fatalf("error = %v, want ErrTooManyStates", err)
	}
}

func TestStartStateIndexZero(t *testing.T) {
	m := mustCompile(t, []string{"a|b"})
	if len(m.States) == 0 {
		t.Fatal("expected a non-empty machine")
	}
	// From index 0, both 'a' and 'b' must lead somewhere accepting.
	for _, c := range []byte{'a', 'b'} {
		found := false
		for _, tr := range m.States[0].Transitions {
			if tr.On == CodeUnit(c) {
				found = true
				if m.States[tr.To].Accepts == 0 {
					t.Errorf("expected the transition for %q from index 0 to reach an accepting state", c)
				}
			}
		}
		if !found {
			t.Errorf("expected a transition for %q from index 0", c)
		}
	}
}

func TestTransitionsSortedAscending(t *testing.T) {
	m := mustCompile(t, []string{"a|b|c"})
	for _, s := range m.States {
		for i := 1; i < len(s.Transitions); i++ {
			if s.Transitions[i-1].On > s.Transitions[i].On {
				t.Fatalf("transitions not sorted ascending: %v", s.Transitions)
			}
		}
	}
}
