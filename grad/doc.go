// Package grad supplies the two caller-side gradient strategies the
// propagation engine's coefficient abstraction admits:
//
//   - Forward — forward-mode tracing: the loss is evaluated once on
//     coeff.Dual variables and carries its own gradient out. Exact up to
//     floating rounding; cost grows with the parameter count through the
//     gradient vectors the Duals carry.
//
//   - FiniteDifference — symmetric central differences via gonum's diff/fd:
//     the loss is re-evaluated at perturbed parameter points on plain
//     floats. No tracing required; accuracy governed by the step size.
//
// The engine itself knows neither strategy — its only differentiation
// contract is coeff.Value. These helpers are conveniences for callers
// wiring a propagation pipeline into an optimization loop, and the pair
// doubles as a consistency check in tests.
package grad
