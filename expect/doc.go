// Package expect reduces a propagated pauli.Sum to a scalar expectation
// value against a computational reference state.
//
// A Pauli term contributes iff it is diagonal in the computational basis:
// every non-identity site must be Z (an X or Y site is off-diagonal and its
// expectation in any computational state is exactly zero). For the all-zero
// state each diagonal term contributes its coefficient as-is; for a general
// basis state every Z site on a set bit flips the sign.
//
// Both evaluators return the coefficient type itself, not a float: the
// reduction is a sum of coefficient additions and ±1 scalings, so under a
// tracing coefficient the result still carries its derivative. Unwrap with
// Real() when a plain number is needed.
//
// Evaluation is linear in the sum: evaluating a merged sum equals the sum
// of the separate evaluations.
package expect
