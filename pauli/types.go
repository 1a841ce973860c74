package pauli

import "errors"

var (
	// ErrDimensionMismatch indicates two operands (or a sum and a term)
	// declare different qubit counts. Never silently padded.
	ErrDimensionMismatch = errors.New("pauli: qubit count mismatch")

	// ErrQubitRange indicates a site index outside [0, n).
	ErrQubitRange = errors.New("pauli: qubit index out of range")

	// ErrBadSymbol indicates Parse met a character outside {I, X, Y, Z}.
	ErrBadSymbol = errors.New("pauli: invalid Pauli symbol")
)

// Pauli is a single-qubit Pauli symbol. The numeric codes are the packed
// 2-bit representation used inside Operator.
type Pauli uint8

const (
	I Pauli = iota // identity
	X
	Y
	Z
)

// String returns the conventional one-letter name of the symbol.
func (p Pauli) String() string {
	switch p {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return "?"
}

// Phase is a power of the imaginary unit, i^k with k in {0,1,2,3}.
// Products of Pauli operators only ever pick up such phases.
type Phase uint8

const (
	PhasePlusOne  Phase = 0 // i^0 = +1
	PhasePlusI    Phase = 1 // i^1 = +i
	PhaseMinusOne Phase = 2 // i^2 = -1
	PhaseMinusI   Phase = 3 // i^3 = -i
)

// IsReal reports whether the phase is ±1.
func (p Phase) IsReal() bool { return p&1 == 0 }

// Sign returns +1 for phase +1 and -1 for phase -1.
// Calling Sign on an imaginary phase is a programmer error.
func (p Phase) Sign() float64 {
	switch p {
	case PhasePlusOne:
		return 1
	case PhaseMinusOne:
		return -1
	}
	panic("pauli: Sign on imaginary phase")
}

// Mul combines two Phases (i^a · i^b = i^(a+b mod 4)).
func (p Phase) Mul(q Phase) Phase { return (p + q) & 3 }
