// Package conv provides a safe integer conversion helper for lexdfa's
// arena-allocated state ids.
//
// It performs a bounds check before narrowing int to uint32 to prevent
// silent overflow. It panics on overflow since this indicates a programming
// error (e.g. a pattern bundle too large for the StateID arena width).
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
