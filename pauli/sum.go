package pauli

import "github.com/katalvlaran/qprop/coeff"

// Sum is a weighted sum of Pauli Operators: an order-irrelevant mapping
// Operator → coefficient. It is the accumulating state that flows through
// propagation — created from an observable, mutated by merge-adds, and
// finally reduced to a scalar by the expect package.
//
// Every entry shares the Sum's fixed qubit count; inserting an Operator of
// a different width is rejected with ErrDimensionMismatch.
//
// Zero-valued coefficients that truncation did not prune are tolerated (a
// merge may cancel exactly); PruneBelow removes them opportunistically.
//
// A Sum is not safe for concurrent mutation.
type Sum[T coeff.Value[T]] struct {
	n     int
	terms map[Operator]T
}

// NewSum returns an empty Sum over n qubits.
func NewSum[T coeff.Value[T]](n int) *Sum[T] {
	return &Sum[T]{n: n, terms: make(map[Operator]T)}
}

// Qubits returns the fixed qubit count of the Sum.
func (s *Sum[T]) Qubits() int { return s.n }

// Len returns the number of live terms.
func (s *Sum[T]) Len() int { return len(s.terms) }

// Add merges (op, c) into the Sum: a new entry when op is absent, otherwise
// coefficient addition on the existing entry. Merge is commutative and
// associative, so insertion order never changes the content.
func (s *Sum[T]) Add(op Operator, c T) error {
	if op.n != s.n {
		return ErrDimensionMismatch
	}
	if cur, ok := s.terms[op]; ok {
		s.terms[op] = cur.Add(c)
		return nil
	}
	s.terms[op] = c

	return nil
}

// AddSingle merges a single-site term: symbol p at qubit q with coefficient
// c, identity elsewhere. Convenience for building observables.
func (s *Sum[T]) AddSingle(q int, p Pauli, c T) error {
	op, err := Single(s.n, q, p)
	if err != nil {
		return err
	}

	return s.Add(op, c)
}

// Set replaces the coefficient of op (no merge), inserting if absent.
func (s *Sum[T]) Set(op Operator, c T) error {
	if op.n != s.n {
		return ErrDimensionMismatch
	}
	s.terms[op] = c

	return nil
}

// Get returns the coefficient of op and whether the term is present.
func (s *Sum[T]) Get(op Operator) (T, bool) {
	c, ok := s.terms[op]

	return c, ok
}

// Delete removes op, if present.
func (s *Sum[T]) Delete(op Operator) { delete(s.terms, op) }

// Clear removes every term, keeping the qubit count.
func (s *Sum[T]) Clear() { s.terms = make(map[Operator]T) }

// ForEach calls fn for every (Operator, coefficient) pair. Iteration order
// is unspecified; callers relying on numeric reproducibility beyond the
// last floating bit must compare with tolerances.
func (s *Sum[T]) ForEach(fn func(op Operator, c T)) {
	for op, c := range s.terms {
		fn(op, c)
	}
}

// Clone returns an independent copy of the Sum. Coefficients are immutable
// values, so a shallow copy of each entry is a full copy semantically.
func (s *Sum[T]) Clone() *Sum[T] {
	out := &Sum[T]{n: s.n, terms: make(map[Operator]T, len(s.terms))}
	for op, c := range s.terms {
		out.terms[op] = c
	}

	return out
}

// PruneBelow drops every term whose coefficient magnitude is below eps and
// returns the number removed. Used for opportunistic cleanup of exact
// cancellations; the propagation engine applies its own thresholds.
func (s *Sum[T]) PruneBelow(eps float64) int {
	removed := 0
	for op, c := range s.terms {
		if !c.AbsGE(eps) {
			delete(s.terms, op)
			removed++
		}
	}

	return removed
}
