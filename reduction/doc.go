// Package reduction estimates tour quality via cost-matrix reduction and
// builds a tour via a nearest-neighbor walk.
//
// Despite the family name ("branch and bound"), this solver does not search
// a tree of alternatives: it follows a single greedy descent of matrix
// reductions, keeping at each step only the branch candidate with the lower
// reduction estimate and never backtracking. The two outputs are therefore
// independent:
//
//   - LowerBound — the accumulated assignment-relaxation estimate: the sum
//     of all row/column minima subtracted during the initial reduction plus
//     each kept branch candidate's estimate.
//
//   - Route — a nearest-neighbor greedy walk over the original (unreduced)
//     distance matrix, starting at city 0. Its Length is the walk's actual
//     cyclic tour length.
//
// The two values are not guaranteed to agree; the bound is an estimate of
// tour quality, not the returned tour's cost. Callers comparing them should
// treat any gap as expected behavior of the greedy descent.
//
// The time budget is enforced cooperatively: the deadline is polled between
// descent iterations, and on expiry the solver returns the tour plus the
// bound accumulated so far with Result.TimedOut set. A non-positive budget
// means unlimited.
package reduction
