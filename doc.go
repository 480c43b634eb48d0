// Package thurberchain computes the length of a shortest addition chain
// for a vector target in the integer lattice — and, as the 1-dimensional
// special case, for a positive integer.
//
// 🚀 What is thurberchain?
//
//	A small, dependency-light library built around one hard search:
//
//	  • vector/  — integer vector algebra: Add, IsBelow, the componentwise
//	               partial order, basis generation, and the Ord total order
//	  • bounds/  — the scalar pruning oracles (LowerBound, Bounds, Retain)
//	               that the search consults but never designs around
//	  • chain/   — StackChildren, Backup, and Thurber itself: the
//	               depth-first, iteratively-deepening search driver
//	  • space/   — VectorSpace, a trivial [0,max]^n enumerator for
//	               driving batch searches
//
// An addition chain for a target x is a sequence starting from the basis
// (the unit vectors e_0..e_{n-1}) in which every subsequent element is the
// sum of two (not necessarily distinct) prior elements, ending at x; its
// length is one less than the number of elements. thurberchain finds the
// shortest such chain's length — not the chain itself — via Thurber.
//
// For a positive integer n, ThurberInt(n) computes the classical shortest
// addition chain length (OEIS A003313): ThurberInt(1) == 0,
// ThurberInt(2) == 1, and so on.
//
// This problem has no known polynomial algorithm; Thurber is an
// exponential, pruned backtracking search, fast in practice for the
// lengths typically asked of it and exact for every target it returns an
// answer for.
//
//	go get github.com/lvlath-labs/thurberchain
package thurberchain
