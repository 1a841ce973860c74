package prop

import (
	"errors"

	"github.com/rs/zerolog"
)

var (
	// ErrNilSum indicates a nil observable sum.
	ErrNilSum = errors.New("prop: nil operator sum")

	// ErrNilCircuit indicates a nil circuit.
	ErrNilCircuit = errors.New("prop: nil circuit")

	// ErrDimensionMismatch indicates the sum and the circuit declare
	// different qubit counts. Rejected immediately, never padded.
	ErrDimensionMismatch = errors.New("prop: qubit count mismatch")

	// ErrParamCount indicates the parameter vector length differs from the
	// circuit's declared parameter count.
	ErrParamCount = errors.New("prop: parameter vector length mismatch")

	// ErrUntrackedCoeff indicates MaxFreq/MaxSins truncation was requested
	// in-place on a coefficient type without branching counters. The engine
	// never wraps coefficients in-place; wrap with coeff.Wrap beforehand.
	ErrUntrackedCoeff = errors.New("prop: frequency truncation requires tracked coefficients")
)

// Truncation is the immutable pruning configuration evaluated against every
// candidate term after each gate application. A negative integer threshold
// (or a non-positive MinAbsCoeff) disables that axis; zero is a meaningful
// bound for the integer axes. All enabled predicates are ANDed.
type Truncation struct {
	// MaxWeight drops candidates with more than MaxWeight non-identity
	// sites. Negative: unbounded.
	MaxWeight int

	// MaxFreq drops candidates to which more than MaxFreq non-Clifford
	// (sine or cosine) applications contributed. Negative: unbounded.
	// Requires counter-carrying coefficients (see coeff.Tracked).
	MaxFreq int

	// MaxSins drops candidates carrying more than MaxSins sine factors.
	// Negative: unbounded. Requires counter-carrying coefficients.
	MaxSins int

	// MinAbsCoeff drops candidates whose coefficient magnitude is below
	// the threshold. Zero or negative: disabled.
	MinAbsCoeff float64
}

// DefaultTruncation returns the policy with every axis unbounded.
func DefaultTruncation() Truncation {
	return Truncation{MaxWeight: -1, MaxFreq: -1, MaxSins: -1}
}

// needsCounts reports whether the policy reads branching counters.
func (t Truncation) needsCounts() bool { return t.MaxFreq >= 0 || t.MaxSins >= 0 }

// Options configures a propagation call.
type Options struct {
	// Truncation is the pruning policy. Default: everything unbounded.
	Truncation Truncation

	// Workers partitions each gate step across this many goroutines when
	// greater than one. Zero or one: sequential.
	Workers int

	// Logger receives per-gate debug telemetry (terms alive, candidates
	// pruned). Default: zerolog.Nop().
	Logger zerolog.Logger
}

// DefaultOptions returns sequential, untruncated, silent options.
func DefaultOptions() Options {
	return Options{Truncation: DefaultTruncation(), Logger: zerolog.Nop()}
}
