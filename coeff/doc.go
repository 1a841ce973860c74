// Package coeff defines the generic coefficient abstraction the propagation
// engine is written against, together with three concrete implementations:
//
//   - Float64 — plain real arithmetic, the production evaluation path.
//
//   - Dual — forward-mode differentiation tracing: a real part plus a
//     gradient vector with respect to seeded variables. Substituting Dual
//     for Float64 changes numeric behavior (tracing) without changing a
//     single line of propagation code.
//
//   - Tracked[T] — a transparent decorator over any Value that counts how
//     many non-Clifford (sine/cosine-branching) gate applications have
//     contributed to a term. The counters feed truncation decisions only;
//     the arithmetic value is untouched.
//
// # The Value contract
//
// Value is an F-bounded generic interface: a type T implements Value[T] and
// every operation returns a fresh T. Implementations must satisfy two
// additional rules the engine relies on:
//
//  1. Values are immutable. Operations never mutate the receiver or the
//     operands, so sums of coefficients may be shallow-copied safely.
//
//  2. The Go zero value of T is its additive identity. This lets generic
//     code start an accumulation from `var acc T` without a constructor.
//
// The engine calls nothing beyond Value (plus the optional Counts interface
// read by frequency truncation) and never branches on the concrete type, so
// any external differentiation mechanism that implements Value plugs in
// without engine changes.
//
// # Angles
//
// MulSin and MulCos take the rotation angle as a value of the same type T:
// under tracing the angle is itself a traced variable, and sin/cos must be
// recorded against it for the chain rule to flow.
package coeff
