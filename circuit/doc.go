// Package circuit defines the gate descriptors the propagation engine
// consumes: an ordered sequence of operations, each either a parameterized
// Pauli rotation or a fixed Clifford gate.
//
// The engine treats circuit construction as an external concern — it reads
// gates, it never builds them — but this package ships the standard set a
// complete library needs:
//
//   - Rotations: RX, RY, RZ (single-qubit) and RXX, RYY, RZZ (two-qubit),
//     each exp(-iθ·G/2) for a Pauli generator G, carrying an index into the
//     caller's flat parameter vector.
//
//   - Cliffords: X, Y, Z, H, S, Sdg, CX, CZ, SWAP. A Clifford never
//     branches: conjugating a Pauli operator through it yields exactly one
//     Pauli operator with a ±1 sign.
//
// # Clifford conjugation
//
// Each Clifford gate stores a tableau: the images of X_q and Z_q under
// conjugation, one signed Pauli string (over the gate's qubits) per
// generator. The image of an arbitrary Pauli P follows from the site-wise
// decomposition P = i^e · X^a·Z^b and the homomorphism property of
// conjugation — the images are multiplied with pauli.Mul and the phases
// accumulate to ±1. Signs are therefore correct by construction; only the
// generator images are written by hand.
//
// The tableau direction is the Heisenberg backward pass: Conjugate(P)
// returns C†·P·C, which is what propagating an observable through the
// circuit in reverse order applies at each Clifford step.
//
// # Errors
//
//	ErrQubitRange   - gate site outside the circuit, or duplicate sites.
//	ErrParamIndex   - negative parameter index on a rotation.
//	ErrNotClifford  - Conjugate called on a rotation gate.
//	ErrGateWidth    - conjugation target narrower than the gate demands.
package circuit
