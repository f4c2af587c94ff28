package lexdfa

import (
	"bufio"
	"os"
	"testing"
)

// loadPatternFixture reads a fixture file holding one pattern per line;
// CompileStrings then assigns accept labels 1..N in file order.
func loadPatternFixture(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan %s: %v", path, err)
	}
	return lines
}

// TestCompileFromPatternFixture compiles testdata/patterns.txt ("a", "ab",
// "a|b", "a*", "(a|b)*abb", labels 1..5 in file order) and checks the
// max-label priority tie-breaks whenever more than one pattern accepts the
// same string.
func TestCompileFromPatternFixture(t *testing.T) {
	patterns := loadPatternFixture(t, "testdata/patterns.txt")
	m := mustCompile(t, patterns)

	cases := []struct {
		input string
		want  uint32
	}{
		{"a", 4},    // patterns 1 ("a"), 3 ("a|b"), and 4 ("a*") all match; 4 wins
		{"b", 3},    // only pattern 3 ("a|b") matches
		{"ab", 2},   // only pattern 2 ("ab") matches
		{"", 4},     // only pattern 4 ("a*") matches the empty string
		{"aabb", 5}, // only pattern 5 ("(a|b)*abb") matches
		{"x", 0},    // no pattern matches
	}
	for _, c := range cases {
		if got := runString(m, c.input); got != c.want {
			t.Errorf("runString(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}
