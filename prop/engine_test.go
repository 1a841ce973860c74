package prop_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qprop/circuit"
	"github.com/katalvlaran/qprop/coeff"
	"github.com/katalvlaran/qprop/expect"
	"github.com/katalvlaran/qprop/pauli"
	"github.com/katalvlaran/qprop/prop"
)

// zz returns the two-qubit observable Z⊗Z with unit coefficient.
func zz(t *testing.T) *pauli.Sum[coeff.Float64] {
	t.Helper()
	s := pauli.NewSum[coeff.Float64](2)
	require.NoError(t, s.Add(pauli.MustParse("ZZ"), 1))

	return s
}

// evalZero reduces a sum against |0…0⟩ and returns the plain value.
func evalZero[T coeff.Value[T]](t *testing.T, s *pauli.Sum[T]) float64 {
	t.Helper()
	v, err := expect.ZeroState(s)
	require.NoError(t, err)

	return v.Real()
}

// TestPropagate_EmptyCircuitIsIdentity verifies the identity law: no gates,
// input returned unchanged and the caller's sum untouched.
func TestPropagate_EmptyCircuitIsIdentity(t *testing.T) {
	obs := zz(t)
	out, err := prop.Propagate(obs, circuit.New(2), nil, prop.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, out.Len())
	c, ok := out.Get(pauli.MustParse("ZZ"))
	require.True(t, ok)
	assert.InDelta(t, 1.0, c.Real(), 1e-12)
	assert.Equal(t, 1, obs.Len(), "caller's sum untouched")
}

// TestPropagate_SingleRXGivesCos verifies the closed-form scenario: Z⊗Z
// through RX(θ) on qubit 0 evaluates to cos(θ) against |00⟩, with the
// rotated-out component sin(θ)·Y⊗Z present in the sum.
func TestPropagate_SingleRXGivesCos(t *testing.T) {
	theta := 0.73
	c := circuit.New(2)
	require.NoError(t, c.Append(circuit.RX(0, 0)))

	out, err := prop.Propagate(zz(t), c, []coeff.Float64{coeff.Float64(theta)}, prop.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, out.Len())
	cosC, ok := out.Get(pauli.MustParse("ZZ"))
	require.True(t, ok)
	assert.InDelta(t, math.Cos(theta), cosC.Real(), 1e-12)
	sinC, ok := out.Get(pauli.MustParse("YZ"))
	require.True(t, ok)
	assert.InDelta(t, math.Sin(theta), sinC.Real(), 1e-12)

	assert.InDelta(t, math.Cos(theta), evalZero(t, out), 1e-12)
}

// TestPropagate_CommutingRotationIsInvariant verifies a rotation whose
// generator commutes with every term changes nothing.
func TestPropagate_CommutingRotationIsInvariant(t *testing.T) {
	c := circuit.New(2)
	require.NoError(t, c.Append(circuit.RZ(0, 0), circuit.RZZ(0, 1, 1)))

	out, err := prop.Propagate(zz(t), c, []coeff.Float64{0.4, 1.1}, prop.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, out.Len())
	assert.InDelta(t, 1.0, evalZero(t, out), 1e-12)
}

// TestPropagate_TwoRXFactorizes verifies independent rotations factorize:
// ⟨Z⊗Z⟩ = cos(θ₀)·cos(θ₁) after RX on each qubit.
func TestPropagate_TwoRXFactorizes(t *testing.T) {
	t0, t1 := 0.31, 1.17
	c := circuit.New(2)
	require.NoError(t, c.Append(circuit.RX(0, 0), circuit.RX(1, 1)))

	out, err := prop.Propagate(zz(t), c, []coeff.Float64{coeff.Float64(t0), coeff.Float64(t1)}, prop.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 4, out.Len(), "two independent branchings")
	assert.InDelta(t, math.Cos(t0)*math.Cos(t1), evalZero(t, out), 1e-12)
}

// TestPropagate_CliffordsAreDeterministic verifies Clifford gates never
// branch and carry exact signs: X on the control then CX flips ⟨Z_target⟩
// to -1, and H turns Z into the off-diagonal X.
func TestPropagate_CliffordsAreDeterministic(t *testing.T) {
	// |00⟩ → X₀ → CX(0,1) lands in |11⟩, so ⟨Z₁⟩ = -1.
	obs := pauli.NewSum[coeff.Float64](2)
	require.NoError(t, obs.Add(pauli.MustParse("IZ"), 1))
	c := circuit.New(2)
	require.NoError(t, c.Append(circuit.X(0), circuit.CX(0, 1)))

	out, err := prop.Propagate(obs, c, nil, prop.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, out.Len(), "Cliffords never branch")
	assert.InDelta(t, -1.0, evalZero(t, out), 1e-12)

	// H turns Z into X, which is off-diagonal: ⟨Z⟩ after H is 0.
	obsZ := pauli.NewSum[coeff.Float64](1)
	require.NoError(t, obsZ.Add(pauli.MustParse("Z"), 1))
	h := circuit.New(1)
	require.NoError(t, h.Append(circuit.H(0)))

	out, err = prop.Propagate(obsZ, h, nil, prop.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0.0, evalZero(t, out), 1e-12)
}

// TestPropagate_MaxWeightZero verifies the hand-computed truncation
// scenario: with MaxWeight=0 every branching candidate is annihilated and
// only the identity-compatible term's coefficient survives.
func TestPropagate_MaxWeightZero(t *testing.T) {
	obs := pauli.NewSum[coeff.Float64](2)
	require.NoError(t, obs.Add(pauli.Identity(2), 0.7))
	require.NoError(t, obs.Add(pauli.MustParse("ZZ"), 1))

	c := circuit.New(2)
	require.NoError(t, c.Append(circuit.RX(0, 0)))

	opts := prop.DefaultOptions()
	opts.Truncation.MaxWeight = 0

	out, err := prop.Propagate(obs, c, []coeff.Float64{0.9}, opts)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Len(), "only the identity term survives")
	assert.InDelta(t, 0.7, evalZero(t, out), 1e-12)

	// Without the identity term the sum empties out entirely — a
	// legitimate outcome evaluating to zero, not an error.
	out, err = prop.Propagate(zz(t), c, []coeff.Float64{0.9}, opts)
	require.NoError(t, err)
	assert.Zero(t, out.Len())
	assert.InDelta(t, 0.0, evalZero(t, out), 1e-12)
}

// TestPropagate_MinAbsCoeff verifies magnitude truncation drops the small
// branch and keeps the large one.
func TestPropagate_MinAbsCoeff(t *testing.T) {
	theta := 0.1 // sin(0.1) ≈ 0.0998, cos(0.1) ≈ 0.995
	c := circuit.New(2)
	require.NoError(t, c.Append(circuit.RX(0, 0)))

	opts := prop.DefaultOptions()
	opts.Truncation.MinAbsCoeff = 0.5

	out, err := prop.Propagate(zz(t), c, []coeff.Float64{coeff.Float64(theta)}, opts)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Len(), "sine branch below threshold")
	assert.InDelta(t, math.Cos(theta), evalZero(t, out), 1e-12)
}

// TestPropagate_MaxFreqAndMaxSins verifies the frequency axes with the
// automatic wrapping of the copying entry point: two sequential RX gates on
// one qubit give every term frequency 2, so MaxFreq=1 empties the sum,
// while MaxSins=0 keeps only the pure-cosine path cos(θ₀)·cos(θ₁).
func TestPropagate_MaxFreqAndMaxSins(t *testing.T) {
	t0, t1 := 0.6, 0.8
	obs := pauli.NewSum[coeff.Float64](1)
	require.NoError(t, obs.Add(pauli.MustParse("Z"), 1))
	c := circuit.New(1)
	require.NoError(t, c.Append(circuit.RX(0, 0), circuit.RX(0, 1)))
	params := []coeff.Float64{coeff.Float64(t0), coeff.Float64(t1)}

	opts := prop.DefaultOptions()
	opts.Truncation.MaxFreq = 1
	out, err := prop.Propagate(obs, c, params, opts)
	require.NoError(t, err)
	assert.Zero(t, out.Len(), "every surviving path needs two branchings")

	opts = prop.DefaultOptions()
	opts.Truncation.MaxSins = 0
	out, err = prop.Propagate(obs, c, params, opts)
	require.NoError(t, err)
	assert.InDelta(t, math.Cos(t0)*math.Cos(t1), evalZero(t, out), 1e-12)

	// Untruncated reference: the exact value is cos(θ₀+θ₁).
	out, err = prop.Propagate(obs, c, params, prop.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, math.Cos(t0+t1), evalZero(t, out), 1e-12)
}

// TestPropagateInPlace_MutatesAndMatchesCopying verifies the in-place entry
// point mutates the caller's sum and agrees with the copying entry point.
func TestPropagateInPlace_MutatesAndMatchesCopying(t *testing.T) {
	theta := coeff.Float64(0.42)
	c := circuit.New(2)
	require.NoError(t, c.Append(circuit.RX(0, 0), circuit.CX(0, 1)))

	copied, err := prop.Propagate(zz(t), c, []coeff.Float64{theta}, prop.DefaultOptions())
	require.NoError(t, err)

	inPlace := zz(t)
	require.NoError(t, prop.PropagateInPlace(inPlace, c, []coeff.Float64{theta}, prop.DefaultOptions()))

	assert.Equal(t, copied.Len(), inPlace.Len())
	assert.InDelta(t, evalZero(t, copied), evalZero(t, inPlace), 1e-9)
}

// TestPropagateInPlace_FreqNeedsPreWrap verifies the precondition: in-place
// frequency truncation demands counter-carrying coefficients, and the
// pre-wrapped run matches the copying entry point's automatic wrapping.
func TestPropagateInPlace_FreqNeedsPreWrap(t *testing.T) {
	t0, t1 := 0.6, 0.8
	c := circuit.New(1)
	require.NoError(t, c.Append(circuit.RX(0, 0), circuit.RX(0, 1)))
	opts := prop.DefaultOptions()
	opts.Truncation.MaxSins = 0

	// Bare coefficients: reported caller error, never auto-corrected.
	bare := pauli.NewSum[coeff.Float64](1)
	require.NoError(t, bare.Add(pauli.MustParse("Z"), 1))
	err := prop.PropagateInPlace(bare, c, []coeff.Float64{coeff.Float64(t0), coeff.Float64(t1)}, opts)
	assert.ErrorIs(t, err, prop.ErrUntrackedCoeff)

	// Pre-wrapped coefficients: allowed, equivalent to copying propagation.
	wrapped := pauli.NewSum[coeff.Tracked[coeff.Float64]](1)
	require.NoError(t, wrapped.Add(pauli.MustParse("Z"), coeff.Wrap(coeff.Float64(1))))
	wparams := []coeff.Tracked[coeff.Float64]{
		coeff.Wrap(coeff.Float64(t0)),
		coeff.Wrap(coeff.Float64(t1)),
	}
	require.NoError(t, prop.PropagateInPlace(wrapped, c, wparams, opts))
	assert.InDelta(t, math.Cos(t0)*math.Cos(t1), evalZero(t, wrapped), 1e-9)
}

// TestPropagate_ValidationErrors verifies the fail-fast input checks.
func TestPropagate_ValidationErrors(t *testing.T) {
	c := circuit.New(2)
	require.NoError(t, c.Append(circuit.RX(0, 0)))

	_, err := prop.Propagate[coeff.Float64](nil, c, []coeff.Float64{1}, prop.DefaultOptions())
	assert.ErrorIs(t, err, prop.ErrNilSum)

	_, err = prop.Propagate(zz(t), nil, []coeff.Float64{1}, prop.DefaultOptions())
	assert.ErrorIs(t, err, prop.ErrNilCircuit)

	three := pauli.NewSum[coeff.Float64](3)
	require.NoError(t, three.Add(pauli.MustParse("ZZZ"), 1))
	_, err = prop.Propagate(three, c, []coeff.Float64{1}, prop.DefaultOptions())
	assert.ErrorIs(t, err, prop.ErrDimensionMismatch)

	_, err = prop.Propagate(zz(t), c, nil, prop.DefaultOptions())
	assert.ErrorIs(t, err, prop.ErrParamCount)
	_, err = prop.Propagate(zz(t), c, []coeff.Float64{1, 2}, prop.DefaultOptions())
	assert.ErrorIs(t, err, prop.ErrParamCount)

	err = prop.PropagateInPlace(zz(t), c, nil, prop.DefaultOptions())
	assert.ErrorIs(t, err, prop.ErrParamCount)
}

// TestPropagate_DualCoefficients verifies tracing coefficients flow through
// in-place propagation untouched: the evaluated Dual carries the analytic
// gradient of cos(θ₀)·cos(θ₁).
func TestPropagate_DualCoefficients(t *testing.T) {
	t0, t1 := 0.5, 1.2
	vars := coeff.Variables([]float64{t0, t1})

	obs := pauli.NewSum[coeff.Dual](2)
	require.NoError(t, obs.Add(pauli.MustParse("ZZ"), coeff.Const(1)))
	c := circuit.New(2)
	require.NoError(t, c.Append(circuit.RX(0, 0), circuit.RX(1, 1)))

	require.NoError(t, prop.PropagateInPlace(obs, c, vars, prop.DefaultOptions()))

	v, err := expect.ZeroState(obs)
	require.NoError(t, err)
	assert.InDelta(t, math.Cos(t0)*math.Cos(t1), v.X, 1e-12)
	g := v.Gradient(2)
	assert.InDelta(t, -math.Sin(t0)*math.Cos(t1), g[0], 1e-12)
	assert.InDelta(t, -math.Cos(t0)*math.Sin(t1), g[1], 1e-12)
}
