package prop

import (
	"github.com/katalvlaran/qprop/coeff"
	"github.com/katalvlaran/qprop/pauli"
)

// keep evaluates every enabled predicate against a candidate term. A
// candidate survives only if it passes all of them (logical AND).
//
// The counter predicates read through the optional coeff.Counts view; the
// entry points guarantee the view is present whenever those predicates are
// enabled, so a missing view here simply leaves the axes unbounded.
func keep[T coeff.Value[T]](tr Truncation, op pauli.Operator, c T) bool {
	if tr.MaxWeight >= 0 && op.Weight() > tr.MaxWeight {
		return false
	}
	if tr.MinAbsCoeff > 0 && !c.AbsGE(tr.MinAbsCoeff) {
		return false
	}
	if tr.needsCounts() {
		if cnt, ok := any(c).(coeff.Counts); ok {
			if tr.MaxFreq >= 0 && cnt.Frequency() > tr.MaxFreq {
				return false
			}
			if tr.MaxSins >= 0 && cnt.SinCount() > tr.MaxSins {
				return false
			}
		}
	}

	return true
}

// hasCounts reports whether the coefficient type T exposes branching
// counters, checked once per call on the type's zero value.
func hasCounts[T coeff.Value[T]]() bool {
	var zero T
	_, ok := any(zero).(coeff.Counts)

	return ok
}
