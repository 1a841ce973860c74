package pauli

import "strings"

// Operator is an immutable multi-qubit Pauli string: one symbol per qubit,
// packed 2 bits per site (4 sites per byte). The packed payload lives in a
// Go string so an Operator is comparable and hashes structurally — it is
// used directly as the key of Sum.
//
// The weight (number of non-identity sites) is cached at construction;
// truncation predicates read it in O(1).
type Operator struct {
	bits   string
	n      int
	weight int
}

// mulTable[a][b] is the single-qubit product a·b: the resulting symbol and
// the phase as a power of i. I·P = P, P·P = I, X·Y = iZ and cyclic, with
// the reversed orders picking up -i.
var mulTable = [4][4]struct {
	r  Pauli
	ph Phase
}{
	I: {I: {I, 0}, X: {X, 0}, Y: {Y, 0}, Z: {Z, 0}},
	X: {I: {X, 0}, X: {I, 0}, Y: {Z, 1}, Z: {Y, 3}},
	Y: {I: {Y, 0}, X: {Z, 3}, Y: {I, 0}, Z: {X, 1}},
	Z: {I: {Z, 0}, X: {Y, 1}, Y: {X, 3}, Z: {I, 0}},
}

// packedLen returns the byte length of the packed payload for n sites.
func packedLen(n int) int { return (n + 3) / 4 }

// pack builds an Operator from a full symbol slice.
func pack(ps []Pauli) Operator {
	var (
		buf    = make([]byte, packedLen(len(ps)))
		weight int
	)
	for q, p := range ps {
		buf[q>>2] |= byte(p) << uint((q&3)*2)
		if p != I {
			weight++
		}
	}

	return Operator{bits: string(buf), n: len(ps), weight: weight}
}

// NewOperator builds an Operator from explicit symbols, one per qubit.
// The qubit count of the result is len(ps).
func NewOperator(ps ...Pauli) Operator { return pack(ps) }

// Identity returns the n-qubit identity Operator (weight 0).
func Identity(n int) Operator {
	return Operator{bits: string(make([]byte, packedLen(n))), n: n}
}

// Single returns the n-qubit Operator with symbol p at site q and identity
// elsewhere. Returns ErrQubitRange if q is outside [0, n).
func Single(n, q int, p Pauli) (Operator, error) {
	if q < 0 || q >= n {
		return Operator{}, ErrQubitRange
	}

	return Identity(n).With(q, p), nil
}

// Parse reads an Operator from its symbol string, e.g. "XIZY".
func Parse(s string) (Operator, error) {
	ps := make([]Pauli, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'I':
			ps[i] = I
		case 'X':
			ps[i] = X
		case 'Y':
			ps[i] = Y
		case 'Z':
			ps[i] = Z
		default:
			return Operator{}, ErrBadSymbol
		}
	}

	return pack(ps), nil
}

// MustParse is Parse that panics on malformed input. Intended for constants
// in examples and tests only.
func MustParse(s string) Operator {
	op, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return op
}

// Qubits returns the fixed qubit count of the Operator.
func (o Operator) Qubits() int { return o.n }

// Weight returns the number of non-identity sites. O(1).
func (o Operator) Weight() int { return o.weight }

// IsIdentity reports whether every site is I.
func (o Operator) IsIdentity() bool { return o.weight == 0 }

// At returns the symbol at site q. Out-of-range q is a programmer error
// and panics, matching slice-index semantics on the hot path.
func (o Operator) At(q int) Pauli {
	if q < 0 || q >= o.n {
		panic(ErrQubitRange)
	}

	return Pauli(o.bits[q>>2]>>uint((q&3)*2)) & 3
}

// With returns a copy of o with site q replaced by p. Out-of-range q
// panics (programmer error; validated entry points live in the callers).
func (o Operator) With(q int, p Pauli) Operator {
	if q < 0 || q >= o.n {
		panic(ErrQubitRange)
	}
	buf := []byte(o.bits)
	shift := uint((q & 3) * 2)
	old := Pauli(buf[q>>2]>>shift) & 3
	buf[q>>2] = buf[q>>2]&^(3<<shift) | byte(p)<<shift

	weight := o.weight
	if old != I {
		weight--
	}
	if p != I {
		weight++
	}

	return Operator{bits: string(buf), n: o.n, weight: weight}
}

// String renders the Operator as its symbol string, e.g. "XIZY".
func (o Operator) String() string {
	var b strings.Builder
	b.Grow(o.n)
	for q := 0; q < o.n; q++ {
		b.WriteString(o.At(q).String())
	}

	return b.String()
}

// Mul returns the qubit-wise product a·b and its accumulated phase i^k.
// For any Operator p, Mul(p, p) yields the identity with phase +1.
// Returns ErrDimensionMismatch when the operands disagree on qubit count.
//
// Complexity: O(n) time, one allocation for the result payload.
func Mul(a, b Operator) (Operator, Phase, error) {
	if a.n != b.n {
		return Operator{}, 0, ErrDimensionMismatch
	}

	var (
		buf    = make([]byte, packedLen(a.n))
		phase  Phase
		weight int
	)
	for q := 0; q < a.n; q++ {
		e := mulTable[a.At(q)][b.At(q)]
		buf[q>>2] |= byte(e.r) << uint((q&3)*2)
		phase = phase.Mul(e.ph)
		if e.r != I {
			weight++
		}
	}

	return Operator{bits: string(buf), n: a.n, weight: weight}, phase, nil
}

// Commutes reports whether a and b commute, via the parity of sites where
// both symbols are non-identity and differ. No product is materialized.
//
// Complexity: O(n) time, zero allocations.
func Commutes(a, b Operator) (bool, error) {
	if a.n != b.n {
		return false, ErrDimensionMismatch
	}

	anti := 0
	for q := 0; q < a.n; q++ {
		pa, pb := a.At(q), b.At(q)
		if pa != I && pb != I && pa != pb {
			anti++
		}
	}

	return anti%2 == 0, nil
}
