// Package permute implements the in-place index permutations used by the
// allocation-free Haar transforms.
//
// All functions move elements by following the cycles of the permutation with
// a single carried value, so they never allocate.
package permute

// PartitionEvens moves even-indexed elements to the front and odd-indexed
// elements to the back, keeping their relative order.
// For example, [0,1,2,3,4,5] becomes [0,2,4,1,3,5].
//
// The front part holds ceil(len(d)/2) elements.
func PartitionEvens[E any](d []E) {
	n := len(d)
	if n < 2 {
		return
	}

	mid := (n + 1) / 2
	followCycles(d, mid, func(p int) int {
		if p%2 == 0 {
			return p / 2
		}

		return mid + p/2
	})
}

// Interleave weaves the back part of d between the elements of the front
// part, keeping their relative order. It undoes PartitionEvens.
// For example, [0,1,2,3,4,5] becomes [0,3,1,4,2,5].
//
// The front part holds ceil(len(d)/2) elements.
func Interleave[E any](d []E) {
	n := len(d)
	if n <= 2 {
		return
	}

	mid := (n + 1) / 2
	followCycles(d, mid, func(p int) int {
		if p < mid {
			return 2 * p
		}

		return 2*(p-mid) + 1
	})
}

// followCycles applies the permutation dest (element at p moves to dest(p))
// to d in place.
//
// Every non-trivial cycle of both permutations has its smallest index at an
// odd position below mid: an even index e > 0 has a smaller cycle neighbour
// e/2, and an index at or above mid is the image of the smaller 2(i-mid)+1.
// Candidates that are not the smallest index of their cycle belong to a cycle
// that was already resolved and are skipped.
func followCycles[E any](d []E, mid int, dest func(int) int) {
	for start := 1; start < mid; start += 2 {
		if !isCycleLeader(start, dest) {
			continue
		}

		carry := d[start]
		p := start

		for {
			p = dest(p)
			carry, d[p] = d[p], carry

			if p == start {
				break
			}
		}
	}
}

// isCycleLeader reports whether start is the smallest index on its cycle.
func isCycleLeader(start int, dest func(int) int) bool {
	for p := dest(start); p != start; p = dest(p) {
		if p < start {
			return false
		}
	}

	return true
}

// RotateRight rotates d right by k positions in place:
// [0,1,2,3,4] rotated by 2 becomes [3,4,0,1,2].
// k may be any integer; it is reduced modulo len(d).
func RotateRight[E any](d []E, k int) {
	n := len(d)
	if n < 2 {
		return
	}

	k %= n
	if k < 0 {
		k += n
	}

	if k == 0 {
		return
	}

	reverse(d)
	reverse(d[:k])
	reverse(d[k:])
}

func reverse[E any](d []E) {
	for i, j := 0, len(d)-1; i < j; i, j = i+1, j-1 {
		d[i], d[j] = d[j], d[i]
	}
}
