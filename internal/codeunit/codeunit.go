// Package codeunit defines the abstract input alphabet for the lexdfa
// pipeline: an ordered, comparable scalar symbol. It deliberately does not
// decode UTF-8 or classify runes; callers that need that decide how to map
// their source text onto CodeUnit values before compiling a bundle.
package codeunit

// CodeUnit is an ordered, equality-comparable scalar symbol. It mirrors the
// 16-bit code unit of the machine this pipeline was distilled from, treated
// here as an opaque comparable value rather than a Unicode code point.
type CodeUnit uint16

// EOF is the sentinel that terminates a pattern during scanning. It can
// never appear as a literal inside a pattern.
const EOF CodeUnit = 0

// Compare orders two CodeUnits by value, returning <0, 0, or >0. Every
// ordered collection keyed by CodeUnit in this module uses this comparator.
func Compare(a, b CodeUnit) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// FromRune narrows a rune to a CodeUnit. Values outside uint16 range are
// truncated to their low 16 bits; lexdfa's non-goals exclude full Unicode,
// so this is the documented boundary of the supported range.
func FromRune(r rune) CodeUnit {
	return CodeUnit(r)
}

// FromString converts a Go string to a slice of CodeUnits, one per rune.
func FromString(s string) []CodeUnit {
	units := make([]CodeUnit, 0, len(s))
	for _, r := range s {
		units = append(units, FromRune(r))
	}
	return units
}
