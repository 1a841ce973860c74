package expect

import (
	"errors"

	"github.com/katalvlaran/qprop/coeff"
	"github.com/katalvlaran/qprop/pauli"
)

var (
	// ErrNilSum indicates a nil sum.
	ErrNilSum = errors.New("expect: nil operator sum")

	// ErrDimensionMismatch indicates the reference state length differs
	// from the sum's qubit count.
	ErrDimensionMismatch = errors.New("expect: reference state length mismatch")
)

// ZeroState returns ⟨0…0| S |0…0⟩: the sum of coefficients of terms whose
// every non-identity site is Z. An empty sum evaluates to the coefficient
// type's zero. O(terms · qubits).
func ZeroState[T coeff.Value[T]](s *pauli.Sum[T]) (T, error) {
	var acc T
	if s == nil {
		return acc, ErrNilSum
	}

	s.ForEach(func(op pauli.Operator, c T) {
		if diagonal(op) {
			acc = acc.Add(c)
		}
	})

	return acc, nil
}

// Computational returns ⟨b| S |b⟩ for the computational basis state with
// bit pattern bits (bits[q] set means qubit q is |1⟩). Diagonal terms
// contribute their coefficient with a sign flip for every Z site on a set
// bit; off-diagonal terms contribute nothing.
func Computational[T coeff.Value[T]](s *pauli.Sum[T], bits []bool) (T, error) {
	var acc T
	if s == nil {
		return acc, ErrNilSum
	}
	if len(bits) != s.Qubits() {
		return acc, ErrDimensionMismatch
	}

	s.ForEach(func(op pauli.Operator, c T) {
		sign := 1.0
		for q := 0; q < op.Qubits(); q++ {
			switch op.At(q) {
			case pauli.I:
			case pauli.Z:
				if bits[q] {
					sign = -sign
				}
			default:
				return // X or Y site: orthogonal, zero contribution
			}
		}
		if sign < 0 {
			c = c.Scale(-1)
		}
		acc = acc.Add(c)
	})

	return acc, nil
}

// diagonal reports whether every non-identity site of op is Z.
func diagonal(op pauli.Operator) bool {
	for q := 0; q < op.Qubits(); q++ {
		if p := op.At(q); p != pauli.I && p != pauli.Z {
			return false
		}
	}

	return true
}
