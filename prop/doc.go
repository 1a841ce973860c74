// Package prop implements truncated Heisenberg-picture propagation: it
// pushes an observable (a pauli.Sum) backward through a circuit, branching
// and pruning terms after every gate so the term count stays tractable.
//
// # State machine per (gate, term) pair
//
// Gates are applied in reverse circuit order. For every live term, one of
// three things happens:
//
//   - deterministic transform — a Clifford gate, or a rotation whose
//     generator commutes with the term: exactly one output operator, the
//     coefficient unchanged or sign-flipped.
//
//   - branch — a rotation whose generator G anticommutes with the term Q:
//     two candidates, cos(θ)·Q and sin(θ)·(i·G·Q), where i·G·Q is again a
//     Pauli operator with a real ±1 sign.
//
//   - annihilate — a candidate fails any enabled truncation predicate and
//     is discarded. This is the sole tractability mechanism: unchecked
//     branching is exponential in the rotation count.
//
// Candidates that survive merge into the next sum by coefficient addition.
// Merging is commutative and associative, so processing order never changes
// the content of the result; floating summation order is nevertheless
// non-deterministic in the last bit — compare results with tolerances.
//
// # Truncation
//
// Truncation holds four independent thresholds — MaxWeight, MaxFreq,
// MaxSins, MinAbsCoeff — each individually enableable. All enabled
// predicates are ANDed: a candidate survives only if it passes every one.
// An empty sum mid-propagation is a legitimate outcome, not an error;
// evaluation of an empty sum yields zero.
//
// # Entry points
//
// Propagate is the copying entry point: the caller's sum is left untouched,
// and when MaxFreq or MaxSins is enabled the coefficients (and angles) are
// wrapped in coeff.Tracked internally and unwrapped before returning.
//
// PropagateInPlace mutates the caller's sum directly and never re-wraps or
// copies coefficient objects — the entry point required when an external
// differentiation mechanism is instrumenting those exact objects and a copy
// would escape its bookkeeping. Frequency-based truncation there demands a
// coefficient type that already carries counters (coeff.Tracked or
// equivalent); requesting it with a bare type is a caller error reported as
// ErrUntrackedCoeff, never silently auto-corrected. The engine retains no
// reference to the sum after returning.
//
// # Concurrency
//
// Branching and truncation are independent per term, so Options.Workers > 1
// partitions each gate step across goroutines with worker-local buffers,
// merged single-threaded afterwards. The gate loop itself is sequential.
// No I/O, cancellation or timeouts: runtime is bounded by the truncation
// thresholds, and runaway growth is a configuration error, not a fault the
// engine recovers from.
//
// # Errors
//
//	ErrNilSum / ErrNilCircuit - missing inputs.
//	ErrDimensionMismatch      - sum and circuit disagree on qubit count.
//	ErrParamCount             - parameter vector length ≠ declared count.
//	ErrUntrackedCoeff         - frequency truncation on counter-less
//	                            coefficients in the in-place entry point.
package prop
