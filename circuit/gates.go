package circuit

import "github.com/katalvlaran/qprop/pauli"

// rotation builds a parameterized Pauli-rotation gate exp(-iθ·gen/2).
func rotation(name string, gen pauli.Operator, param int, qs ...int) Gate {
	return Gate{
		kind:      Rotation,
		name:      name,
		qubits:    qs,
		generator: gen,
		param:     param,
	}
}

// RX is the single-qubit X rotation on q, angle params[param].
func RX(q, param int) Gate { return rotation("RX", pauli.NewOperator(pauli.X), param, q) }

// RY is the single-qubit Y rotation on q, angle params[param].
func RY(q, param int) Gate { return rotation("RY", pauli.NewOperator(pauli.Y), param, q) }

// RZ is the single-qubit Z rotation on q, angle params[param].
func RZ(q, param int) Gate { return rotation("RZ", pauli.NewOperator(pauli.Z), param, q) }

// RXX is the two-qubit XX rotation on (a, b), angle params[param].
func RXX(a, b, param int) Gate {
	return rotation("RXX", pauli.NewOperator(pauli.X, pauli.X), param, a, b)
}

// RYY is the two-qubit YY rotation on (a, b), angle params[param].
func RYY(a, b, param int) Gate {
	return rotation("RYY", pauli.NewOperator(pauli.Y, pauli.Y), param, a, b)
}

// RZZ is the two-qubit ZZ rotation on (a, b), angle params[param].
func RZZ(a, b, param int) Gate {
	return rotation("RZZ", pauli.NewOperator(pauli.Z, pauli.Z), param, a, b)
}

// img is a tableau-entry literal: the image Pauli string plus its sign.
func img(s string, neg bool) image { return image{op: pauli.MustParse(s), neg: neg} }

// clifford builds a fixed gate from the images of X_q and Z_q per site.
func clifford(name string, ximg, zimg []image, qs ...int) Gate {
	return Gate{kind: Clifford, name: name, qubits: qs, ximg: ximg, zimg: zimg}
}

// X is the Pauli-X gate on q: X→X, Z→-Z.
func X(q int) Gate {
	return clifford("X", []image{img("X", false)}, []image{img("Z", true)}, q)
}

// Y is the Pauli-Y gate on q: X→-X, Z→-Z.
func Y(q int) Gate {
	return clifford("Y", []image{img("X", true)}, []image{img("Z", true)}, q)
}

// Z is the Pauli-Z gate on q: X→-X, Z→Z.
func Z(q int) Gate {
	return clifford("Z", []image{img("X", true)}, []image{img("Z", false)}, q)
}

// H is the Hadamard gate on q: X→Z, Z→X (and hence Y→-Y).
func H(q int) Gate {
	return clifford("H", []image{img("Z", false)}, []image{img("X", false)}, q)
}

// S is the phase gate diag(1, i) on q: S†XS = -Y, Z→Z.
func S(q int) Gate {
	return clifford("S", []image{img("Y", true)}, []image{img("Z", false)}, q)
}

// Sdg is the inverse phase gate on q: SXS† = Y, Z→Z.
func Sdg(q int) Gate {
	return clifford("Sdg", []image{img("Y", false)}, []image{img("Z", false)}, q)
}

// CX is the controlled-X gate with control c and target t:
// X_c→X_cX_t, Z_c→Z_c, X_t→X_t, Z_t→Z_cZ_t.
func CX(c, t int) Gate {
	return clifford("CX",
		[]image{img("XX", false), img("IX", false)},
		[]image{img("ZI", false), img("ZZ", false)},
		c, t)
}

// CZ is the controlled-Z gate on (a, b):
// X_a→X_aZ_b, Z_a→Z_a, X_b→Z_aX_b, Z_b→Z_b.
func CZ(a, b int) Gate {
	return clifford("CZ",
		[]image{img("XZ", false), img("ZX", false)},
		[]image{img("ZI", false), img("IZ", false)},
		a, b)
}

// SWAP exchanges the Pauli symbols on (a, b).
func SWAP(a, b int) Gate {
	return clifford("SWAP",
		[]image{img("IX", false), img("XI", false)},
		[]image{img("IZ", false), img("ZI", false)},
		a, b)
}
