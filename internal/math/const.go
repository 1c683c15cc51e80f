package math

import "math"

// Mathematical constants for Haar computations.

// Sqrt2 is √2 with full float64 precision.
const Sqrt2 = math.Sqrt2

// InvSqrt2 is 1/√2, the Haar synthesis filter tap.
const InvSqrt2 = 1.0 / math.Sqrt2
