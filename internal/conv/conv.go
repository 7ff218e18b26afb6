// Package conv provides safe integer conversion helpers for the compiler
// pipeline.
//
// IntToUint32 makes an int-to-uint32 narrowing explicit and panics on
// overflow. No other package of this module calls it.
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
		panic("conv: int value out of uint32 range")
	}
	return uint32(n)
}
