// Package bounds implements the scalar oracle functions consumed by the
// chain search: LowerBound, Bounds, and Retain. These encode the classical
// "doubling" theorems for addition chains (no chain step can more than
// double the running sum, so a target s cannot be reached from a partial
// sum p in fewer than ceil(log2(s/p)) further steps). Their derivation is
// independent of the search skeleton in package chain; chain treats them as
// pure, stateless capabilities and never inspects their internals.
//
// All three functions are pure: given the same arguments they always return
// the same result, and none of them retains state between calls.
package bounds

import "math/bits"

// LowerBound returns a lower bound on the addition-chain length needed to
// reach a positive sum s: the number of doublings required to reach s from
// 1, i.e. ceil(log2(s)). LowerBound(1) == 0, and LowerBound is monotone
// non-decreasing in s — the property the iterative-deepening driver in
// package chain relies on to guarantee termination.
//
// Preconditions: s >= 1. The search driver never calls LowerBound with a
// non-positive sum (it rejects zero-sum targets before reaching any oracle).
func LowerBound(s int64) int64 {
	if s <= 1 {
		return 0
	}

	// ceil(log2(s)) == bit-length of (s-1), for s >= 2.
	return int64(bits.Len64(uint64(s - 1)))
}

// Bounds precomputes, for a candidate search depth budget `depth` (normally
// called with lb+1 from the driver), two per-step tables used by Retain:
//
//   - vertical[k] is the maximum sum reachable after k+1 chain steps,
//     starting from the basis value 1 and doubling at every step:
//     vertical[k] = min(s, 2^(k+1)).
//   - slant[k] is the minimum sum that must already be held at step k in
//     order to still reach s within the remaining depth-k steps by
//     doubling: slant[k] = ceil(s / 2^(depth-k)).
//
// Both slices have length depth+1 (indices 0..depth), which covers every
// index the driver dereferences: vertical[i-N-1] and slant[i-N] for
// i-N ranging from 1 to lb, under a depth of lb+1.
//
// Preconditions: s >= 1, depth >= 0.
func Bounds(s, depth int64) (vertical, slant []int64) {
	n := int(depth) + 1
	vertical = make([]int64, n)
	slant = make([]int64, n)

	for k := 0; k < n; k++ {
		vertical[k] = capDouble(int64(k)+1, s)
		slant[k] = minSumForRemaining(s, depth-int64(k))
	}

	return vertical, slant
}

// capDouble returns min(s, 2^steps), saturating rather than overflowing
// when steps would push 1<<steps past the range of int64.
func capDouble(steps, s int64) int64 {
	if steps >= 63 {
		return s
	}
	v := int64(1) << uint(steps)
	if v > s || v < 0 {
		return s
	}

	return v
}

// minSumForRemaining returns ceil(s / 2^remaining), the minimum sum that
// must be on hand with `remaining` doubling steps left in order to still
// reach s. remaining <= 0 means no further growth is available, so the
// current sum must already equal s.
func minSumForRemaining(s, remaining int64) int64 {
	if remaining <= 0 {
		return s
	}
	if remaining >= 63 {
		return 1
	}
	denom := int64(1) << uint(remaining)

	return ceilDiv(s, denom)
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

// Retain reports whether a partial chain ending at sum sumCurr (reached
// from a predecessor of sum sumPrev) is still viable to extend toward a
// target of sum s within the depth budget lb.
//
// A prefix is rejected (false) when any of the following hold:
//   - sumCurr exceeds the target sum s outright.
//   - sumCurr exceeds 2*sumPrev: no chain step can more than double the
//     running sum, so this growth is impossible in one step.
//   - sumPrev exceeds verticalPrev, the precomputed ceiling for the
//     predecessor's depth: the prefix has already grown faster than any
//     doubling chain could, so it cannot be the product of this search.
//   - sumCurr is below slantCurr, the precomputed floor for the current
//     depth: even growing by doubling every remaining step could not
//     reach s from sumCurr in the steps left under budget lb.
//
// d is the zero-based depth index the caller computed vertical/slant at
// (i.e. the depth of the predecessor); it is accepted for symmetry with the
// originating contract and does not change the outcome once verticalPrev
// and slantCurr have been looked up at that index.
func Retain(s, lb, verticalPrev, slantCurr, d, sumPrev, sumCurr int64) bool {
	_ = lb
	_ = d

	if sumCurr > s {
		return false
	}
	if sumPrev > 0 && sumCurr > 2*sumPrev {
		return false
	}
	if sumPrev > verticalPrev {
		return false
	}
	if sumCurr < slantCurr {
		return false
	}

	return true
}
