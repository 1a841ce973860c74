package coeff

// Value is the arithmetic contract a coefficient type must satisfy for the
// propagation engine to run on it. See the package documentation for the
// immutability and zero-value rules implementations must also obey.
type Value[T any] interface {
	// Zero returns the additive identity of T.
	Zero() T

	// One returns the multiplicative identity of T.
	One() T

	// Add returns the sum of the receiver and other.
	Add(other T) T

	// Scale returns the receiver multiplied by a plain real factor.
	// Used for the ±1 signs picked up by Pauli conjugation.
	Scale(x float64) T

	// MulSin returns the receiver multiplied by sin(angle).
	MulSin(angle T) T

	// MulCos returns the receiver multiplied by cos(angle).
	MulCos(angle T) T

	// AbsGE reports whether the absolute numeric value of the receiver is
	// at least threshold. Truncation reads magnitudes through this single
	// predicate so tracing types decide themselves what "magnitude" means.
	AbsGE(threshold float64) bool

	// Real unwraps the receiver to its concrete numeric value.
	Real() float64
}

// Counts is the optional read-only view a coefficient exposes when it
// carries branching bookkeeping. Tracked implements it; frequency-based
// truncation is only available for coefficient types that do.
type Counts interface {
	// Frequency is the number of non-Clifford (sine or cosine) gate
	// applications that contributed to the value.
	Frequency() int

	// SinCount is the number of sine factors among those applications.
	SinCount() int
}
