package coeff

// Tracked decorates an inner coefficient with branching bookkeeping: how
// many non-Clifford (sine/cosine) gate applications contributed to the
// term, and how many of those were sine factors. The counters exist purely
// for truncation decisions — all arithmetic delegates to the inner value.
//
// The counters are a per-term property, not a per-value-history one: Add
// combines the inner values and keeps the receiver's counters as they are.
// When two equal-operator terms with different counters merge, the term
// therefore retains the counters of the side it merged into; truncation
// treats them as an approximation axis, not an exact invariant.
//
// Tracked exclusively owns its inner value. The copying propagation entry
// point wraps and unwraps automatically; the in-place entry point never
// wraps (it must not touch coefficient objects an external tracing
// mechanism is instrumenting), so in-place callers needing frequency
// truncation wrap beforehand with Wrap.
type Tracked[T Value[T]] struct {
	Inner T
	Freq  int
	Sins  int
}

// Wrap decorates v with zeroed counters.
func Wrap[T Value[T]](v T) Tracked[T] { return Tracked[T]{Inner: v} }

// Zero returns the additive identity with zeroed counters.
func (t Tracked[T]) Zero() Tracked[T] { return Tracked[T]{Inner: t.Inner.Zero()} }

// One returns the multiplicative identity with zeroed counters.
func (t Tracked[T]) One() Tracked[T] { return Tracked[T]{Inner: t.Inner.One()} }

// Add combines the inner values; the receiver's counters are untouched.
func (t Tracked[T]) Add(other Tracked[T]) Tracked[T] {
	return Tracked[T]{Inner: t.Inner.Add(other.Inner), Freq: t.Freq, Sins: t.Sins}
}

// Scale scales the inner value; plain real factors are not branchings.
func (t Tracked[T]) Scale(x float64) Tracked[T] {
	return Tracked[T]{Inner: t.Inner.Scale(x), Freq: t.Freq, Sins: t.Sins}
}

// MulSin multiplies by sin(angle) and counts one branching and one sine.
func (t Tracked[T]) MulSin(angle Tracked[T]) Tracked[T] {
	return Tracked[T]{Inner: t.Inner.MulSin(angle.Inner), Freq: t.Freq + 1, Sins: t.Sins + 1}
}

// MulCos multiplies by cos(angle) and counts one branching.
func (t Tracked[T]) MulCos(angle Tracked[T]) Tracked[T] {
	return Tracked[T]{Inner: t.Inner.MulCos(angle.Inner), Freq: t.Freq + 1, Sins: t.Sins}
}

// AbsGE delegates to the inner value.
func (t Tracked[T]) AbsGE(threshold float64) bool { return t.Inner.AbsGE(threshold) }

// Real delegates to the inner value.
func (t Tracked[T]) Real() float64 { return t.Inner.Real() }

// Frequency implements Counts.
func (t Tracked[T]) Frequency() int { return t.Freq }

// SinCount implements Counts.
func (t Tracked[T]) SinCount() int { return t.Sins }

var _ Value[Tracked[Float64]] = Tracked[Float64]{}
var _ Counts = Tracked[Float64]{}
