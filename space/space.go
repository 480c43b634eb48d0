// Package space provides VectorSpace, a trivial enumerator over the
// lattice [0,max]^n, used to drive batch searches over every target in a
// bounded box. It plays no role in the Thurber search itself.
package space

import "github.com/lvlath-labs/thurberchain/vector"

// VectorSpace enumerates every n-dimensional vector with components in
// [0, max], in lexicographic (little-endian: index 0 fastest) order,
// starting at [1, 0, ..., 0] and ending at [max, max, ..., max]. The
// leading all-zero vector is excluded, since it is never a valid search
// target (Thurber rejects it with ErrOutOfSpace).
//
// Preconditions: n >= 1, max >= 0.
func VectorSpace(n int, max int64) []vector.Vector {
	if max < 1 {
		// [0, 0]^n holds only the excluded zero vector.
		return []vector.Vector{}
	}

	x := make(vector.Vector, n)
	if n > 0 {
		x[0] = 1
	}

	space := make([]vector.Vector, 0, 1<<uint(n))
	space = append(space, x.Clone())

	for {
		i := 0
		for i < len(x) && x[i] == max {
			x[i] = 0
			i++
		}
		if i == len(x) {
			break
		}
		x[i]++
		space = append(space, x.Clone())
	}

	return space
}
