// Package algodwt computes the Haar discrete wavelet transform and its
// inverse over one-dimensional float64 signals.
//
// Every operation comes in two variants. The copy variants (DWT,
// Transform.Invert) never modify their input and allocate their result. The
// in-place variants (DWTInPlace, Transform.InvertInPlace) reuse the caller's
// buffer and need only O(1) extra memory, at the cost of extra passes:
// the forward direction partitions sums and differences with a
// cycle-following permutation after every level, and the inverse brings
// each average next to its detail term by recursive block rotation.
//
// # Coefficient layout
//
// A Transform of an N = 2^L point signal holds N coefficients. Index 0 is
// the coarsest average; indices [2^(j-1), 2^j) hold the level-j details,
// from the coarsest band (index 1) to the finest (the back half).
//
// # Lengths
//
// DWT and Decompose zero-pad inputs to the next power of two. In-place
// transforms and inverses never pad and report ErrInvalidLength before
// touching the data. Empty input is valid and yields empty output.
//
// # Kernels
//
// Pair arithmetic runs in generic or four-way unrolled kernels. KernelAuto
// consults wisdom (see ImportWisdom) and then CPU features; use
// SetKernelStrategy or Haar.Strategy to force a choice. Both kernels produce
// identical forward coefficients.
package algodwt
