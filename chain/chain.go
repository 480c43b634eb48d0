// Package chain implements the depth-first, iteratively-deepening addition
// chain search (Thurber's algorithm) together with its supporting stack
// machinery: Segment, Stack, StackChildren, and Backup.
//
// The search maintains a Stack of Segments — the flat, two-level arena
// recommended for cache-friendly iteration over the C++ original's
// std::vector<std::vector<std::vector<int64_t>>>. Segment 0..n-1 hold the
// basis singletons; segments n.. hold the ordered, deduplicated candidate
// sets generated at each search depth.
package chain

import (
	"errors"
	"fmt"

	"github.com/lvlath-labs/thurberchain/bounds"
	"github.com/lvlath-labs/thurberchain/vector"
)

// ErrOutOfSpace indicates that Thurber was called on a vector whose
// components sum to zero — there is no addition chain reaching the zero
// vector from a non-empty basis.
var ErrOutOfSpace = errors.New("chain: target vector is not in the search space")

// Segment is an ordered, duplicate-free sequence of candidate chain
// elements at one search depth, sorted ascending by vector.Ord. The
// "current candidate" at a depth is the last element of its Segment;
// Backup consumes a Segment from its tail backwards.
type Segment []vector.Vector

// Tail returns the last (largest, by vector.Ord) element of the segment.
// Tail panics if the segment is empty; callers must check IsEmpty first.
func (s Segment) Tail() vector.Vector {
	return s[len(s)-1]
}

// IsEmpty reports whether the segment holds no candidates.
func (s Segment) IsEmpty() bool {
	return len(s) == 0
}

// Stack is the ordered sequence of Segments that backs a single Thurber
// search. The first n entries are singleton Segments holding the n basis
// vectors; entries n.. are search segments pushed by StackChildren and
// popped by Backup or by the driver on budget exhaustion.
type Stack []Segment

// newBasisStack builds the initial Stack: one singleton Segment per basis
// vector, in index order.
func newBasisStack(basis []vector.Vector) Stack {
	k := make(Stack, len(basis))
	for i, e := range basis {
		k[i] = Segment{e}
	}

	return k
}

// StackChildren extends k with a new Segment of admissible next elements,
// built from the current chain's tail.
//
// Let N = len(k) at entry (the current depth) and a = k[N-1].Tail() (the
// current chain's latest element). The candidate multiset is every
// c = k[i].Tail() + k[j].Tail() for 0 <= i <= j < N, kept iff
// NOT IsBelow(c, a) and c <= x componentwise. Candidates are deduplicated
// and sorted ascending by vector.Ord before the segment is pushed.
//
// The resulting segment may be empty — when no admissible sum exists — and
// the caller (Thurber's inner loop) is responsible for detecting that and
// backing up rather than dereferencing an empty segment's Tail.
func StackChildren(x vector.Vector, k *Stack) {
	n := len(*k)
	a := (*k)[n-1].Tail()

	candidates := make([]vector.Vector, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		ti := (*k)[i].Tail()
		for j := i; j < n; j++ {
			tj := (*k)[j].Tail()
			c, err := vector.Add(ti, tj)
			if err != nil {
				// All stack vectors share x's dimension by construction;
				// a mismatch here would be a programmer error elsewhere.
				panic(fmt.Sprintf("chain: %v", err))
			}
			if vector.IsBelow(c, a) {
				continue
			}
			if !c.Equal(x) && !vector.IsBelow(c, x) {
				continue
			}
			candidates = append(candidates, c)
		}
	}

	segment := dedupeSorted(candidates)
	*k = append(*k, segment)
}

// dedupeSorted sorts candidates ascending by vector.Ord and removes
// adjacent duplicates (two vectors are duplicates iff Ord orders neither
// before the other, which for the total order Ord implies equality).
func dedupeSorted(candidates []vector.Vector) Segment {
	sortByOrd(candidates)

	out := make(Segment, 0, len(candidates))
	for _, c := range candidates {
		if len(out) > 0 && out[len(out)-1].Equal(c) {
			continue
		}
		out = append(out, c)
	}

	return out
}

// sortByOrd sorts vs ascending by vector.Ord in place using an insertion
// sort; the candidate sets here are small (O(depth^2) before pruning), so
// a simple quadratic sort is fast enough.
func sortByOrd(vs []vector.Vector) {
	// insertion sort keeps the dependency surface to the stdlib-free
	// comparator already defined on vector.Vector, and is more than fast
	// enough at the sizes StackChildren produces.
	for i := 1; i < len(vs); i++ {
		for j := i; j > 0 && vector.Ord(vs[j], vs[j-1]); j-- {
			vs[j], vs[j-1] = vs[j-1], vs[j]
		}
	}
}

// Backup pops the tail of the top segment of k. If that segment becomes
// empty, Backup pops the segment itself and repeats against the new top
// segment — cascading upward until either a non-empty tail remains (true)
// or the stack has shrunk to the first n (basis) entries (false).
//
// Backup is the single mutator for "take a step back": it never pops a
// basis segment, and it never leaves the stack shorter than n.
//
// A top segment that arrived already empty (StackChildren found no
// admissible candidate) is handled the same way: there is no tail to pop,
// so Backup discards the segment directly and cascades to the level below,
// exactly as it would after popping the last real candidate.
func Backup(k *Stack, n int) bool {
	for {
		if len(*k) <= n {
			return false
		}
		top := (*k)[len(*k)-1]
		if len(top) > 0 {
			top = top[:len(top)-1]
			(*k)[len(*k)-1] = top
		}
		if len(top) > 0 {
			return true
		}
		*k = (*k)[:len(*k)-1]
	}
}

// LowerBound returns bounds.LowerBound(x.Sum()) — the scalar lower-bound
// oracle applied to a vector target.
func LowerBound(x vector.Vector) int64 {
	return bounds.LowerBound(x.Sum())
}

// Thurber computes the length of a shortest addition chain reaching the
// vector target x, starting from the basis e_0..e_{n-1} where n = len(x).
//
// Errors:
//   - ErrOutOfSpace if x.Sum() == 0.
func Thurber(x vector.Vector) (int64, error) {
	if x.Sum() == 0 {
		return 0, ErrOutOfSpace
	}
	if vector.IsBasic(x) {
		return 0, nil
	}

	k := newBasisStack(vector.Basic(len(x)))
	lb := LowerBound(x)
	n := len(k)
	s := x.Sum()

	for {
		if len(k) == n {
			StackChildren(x, &k)
		}

		vertical, slant := bounds.Bounds(s, lb+1)

		for {
			i := len(k)
			if i-n <= int(lb) {
				top := k[i-1]
				if top.IsEmpty() {
					if !Backup(&k, n) {
						break
					}
					continue
				}

				a := top.Tail()
				aprev := k[i-2].Tail()

				if a.Equal(x) {
					return int64(i - n), nil
				}

				d := int64(i-n) - 1
				if bounds.Retain(s, lb, vertical[d], slant[d+1], d, aprev.Sum(), a.Sum()) {
					StackChildren(x, &k)
				} else if !Backup(&k, n) {
					break
				}
			} else {
				k = k[:len(k)-1]
				if len(k) == n {
					break
				}
				if !Backup(&k, n) {
					break
				}
			}
		}

		lb++
	}
}

// ThurberInt computes the shortest addition-chain length for a positive
// integer m, the 1-dimensional special case of Thurber: the target vector
// is [m] and the basis is the singleton [1].
//
// Errors:
//   - ErrOutOfSpace if m == 0.
func ThurberInt(m int64) (int64, error) {
	return Thurber(vector.Vector{m})
}
