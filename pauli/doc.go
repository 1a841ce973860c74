// Package pauli implements multi-qubit Pauli operators and weighted Pauli
// sums — the data plane of Heisenberg-picture observable propagation.
//
// The key types offered are:
//
//   - Operator
//
//   - A fixed-width string of single-qubit Pauli symbols {I, X, Y, Z},
//     one per qubit, packed 2 bits per site.
//
//   - Immutable value type: comparable, usable as a map key, structural
//     equality. New Operators are produced, never mutated, by gate
//     application.
//
//   - Weight (count of non-identity sites) is computed once at
//     construction and read in O(1) — truncation checks sit on the
//     hottest path of the propagation engine.
//
//   - Sum[T]
//
//   - An order-irrelevant mapping Operator → coefficient.
//
//   - Add merges on equal keys via coefficient addition; merge is
//     commutative and associative, so term processing order never
//     changes the content of a sum (floating summation order may still
//     differ in the last bit — compare with tolerances, never bit-exact).
//
//   - Generic over any coefficient type satisfying coeff.Value, so the
//     same sum code runs under plain numeric evaluation or under
//     differentiation tracing.
//
// # Algebra
//
// Mul multiplies two equal-width Operators qubit-wise using the single-qubit
// Pauli table (X·Y = iZ and cyclic, P·P = I) and returns the accumulated
// phase as a power of i. Commutes answers whether two Operators commute via
// the parity of anticommuting sites, without materializing the product.
//
// Complexity: Mul and Commutes are O(n) in the qubit count; Weight, At and
// map operations are O(1) (amortized for map access).
//
// # Errors
//
//	ErrDimensionMismatch - operands or sum entries of different qubit counts.
//	ErrQubitRange        - a site index outside [0, n).
//	ErrBadSymbol         - Parse encountered a character outside {I,X,Y,Z}.
//
// Dimension mismatches are caller contract violations: they are rejected
// immediately and never silently padded or truncated.
package pauli
