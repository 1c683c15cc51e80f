package math

import "math/bits"

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
// Log2 of values below 2 is 0.
func Log2(n int) int {
	if n < 2 {
		return 0
	}

	return bits.Len(uint(n)) - 1
}

// NextPowerOf2 returns the smallest power of two that is >= n.
// Example: NextPowerOf2(5) = 8, NextPowerOf2(8) = 8, NextPowerOf2(0) = 1.
func NextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}
