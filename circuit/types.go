package circuit

import (
	"errors"

	"github.com/katalvlaran/qprop/pauli"
)

var (
	// ErrQubitRange indicates a gate site outside [0, qubits) or a gate
	// acting twice on the same site.
	ErrQubitRange = errors.New("circuit: gate qubit out of range")

	// ErrParamIndex indicates a rotation carrying a negative parameter index.
	ErrParamIndex = errors.New("circuit: negative parameter index")

	// ErrNotClifford indicates Conjugate was called on a rotation gate.
	ErrNotClifford = errors.New("circuit: conjugation requires a Clifford gate")

	// ErrNotRotation indicates a rotation-only accessor was called on a
	// Clifford gate.
	ErrNotRotation = errors.New("circuit: not a rotation gate")

	// ErrGateWidth indicates the operator handed to a gate is too narrow to
	// contain the gate's sites.
	ErrGateWidth = errors.New("circuit: operator narrower than gate support")
)

// Kind discriminates the two gate families the engine distinguishes.
type Kind uint8

const (
	// Clifford gates transform a Pauli term deterministically: one output
	// operator, ±1 sign, no branching.
	Clifford Kind = iota

	// Rotation gates exp(-iθG/2) branch a term that anticommutes with the
	// generator G into a cosine and a sine component.
	Rotation
)

// image is one tableau entry: the signed Pauli string (over the gate's
// qubits) that a conjugated generator maps to.
type image struct {
	op  pauli.Operator
	neg bool
}

// Gate is one circuit operation. Construct gates with the package
// constructors; the zero value is not a valid gate.
type Gate struct {
	kind   Kind
	name   string
	qubits []int

	// Rotation only.
	generator pauli.Operator
	param     int

	// Clifford only: images of X_q and Z_q per gate qubit.
	ximg, zimg []image
}

// Kind returns the gate family.
func (g Gate) Kind() Kind { return g.kind }

// Name returns the conventional gate name (RX, CX, ...).
func (g Gate) Name() string { return g.name }

// Qubits returns a copy of the sites the gate acts on.
func (g Gate) Qubits() []int {
	qs := make([]int, len(g.qubits))
	copy(qs, g.qubits)

	return qs
}

// Param returns the parameter-vector index of a rotation gate.
func (g Gate) Param() int { return g.param }

// Generator returns the rotation generator over the gate's qubits.
func (g Gate) Generator() pauli.Operator { return g.generator }
