package circuit

import "github.com/katalvlaran/qprop/pauli"

// Conjugate maps a full-width Pauli operator through a Clifford gate in the
// Heisenberg direction: it returns C†·op·C and the ±1 sign picked up.
//
// Each site of op on the gate's support is decomposed as i^e · X^a·Z^b; the
// stored generator images are multiplied in that order with pauli.Mul, and
// the accumulated phase — guaranteed real for a Clifford — becomes the sign.
// Sites outside the gate's support pass through untouched.
//
// Complexity: O(k·n) for a k-qubit gate on an n-qubit operator, dominated
// by the immutable-operator rewrites.
func (g Gate) Conjugate(op pauli.Operator) (pauli.Operator, float64, error) {
	if g.kind != Clifford {
		return pauli.Operator{}, 0, ErrNotClifford
	}
	for _, q := range g.qubits {
		if q >= op.Qubits() {
			return pauli.Operator{}, 0, ErrGateWidth
		}
	}

	var (
		acc   = pauli.Identity(len(g.qubits))
		phase = pauli.PhasePlusOne
		err   error
	)
	mul := func(im image) {
		var ph pauli.Phase
		// acc and im.op share the gate width; Mul cannot mismatch here.
		acc, ph, err = pauli.Mul(acc, im.op)
		phase = phase.Mul(ph)
		if im.neg {
			phase = phase.Mul(pauli.PhaseMinusOne)
		}
	}

	for j, q := range g.qubits {
		switch op.At(q) {
		case pauli.I:
			// Identity sites contribute nothing.
		case pauli.X:
			mul(g.ximg[j])
		case pauli.Z:
			mul(g.zimg[j])
		case pauli.Y:
			// Y = i·X·Z, so conjugate both images with an extra i.
			phase = phase.Mul(pauli.PhasePlusI)
			mul(g.ximg[j])
			mul(g.zimg[j])
		}
		if err != nil {
			return pauli.Operator{}, 0, err
		}
	}

	out := op
	for j, q := range g.qubits {
		out = out.With(q, acc.At(j))
	}
	if !phase.IsReal() {
		// A Clifford maps a Pauli to ±Pauli; an imaginary phase means a
		// broken tableau, which is a programmer error in this package.
		panic("circuit: non-real Clifford conjugation phase")
	}

	return out, phase.Sign(), nil
}

// EmbeddedGenerator widens a rotation's generator to an n-qubit operator,
// placing each generator site at the gate's qubit and identity elsewhere.
func (g Gate) EmbeddedGenerator(n int) (pauli.Operator, error) {
	if g.kind != Rotation {
		return pauli.Operator{}, ErrNotRotation
	}
	out := pauli.Identity(n)
	for j, q := range g.qubits {
		if q >= n {
			return pauli.Operator{}, ErrGateWidth
		}
		out = out.With(q, g.generator.At(j))
	}

	return out, nil
}
