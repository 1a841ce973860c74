package prop

import (
	"sync"

	"github.com/katalvlaran/qprop/circuit"
	"github.com/katalvlaran/qprop/coeff"
	"github.com/katalvlaran/qprop/pauli"
)

// Propagate is the copying entry point: it pushes obs backward through circ
// under params and opts and returns a new sum, leaving obs untouched.
//
// When Truncation.MaxFreq or MaxSins is enabled and the coefficient type
// carries no counters of its own, coefficients and angles are transparently
// wrapped in coeff.Tracked for the duration of the call and unwrapped in
// the result. Callers whose coefficient type already exposes counters are
// never double-wrapped.
func Propagate[T coeff.Value[T]](
	obs *pauli.Sum[T],
	circ *circuit.Circuit,
	params []T,
	opts Options,
) (*pauli.Sum[T], error) {
	if err := validate(obs, circ, params); err != nil {
		return nil, err
	}

	if opts.Truncation.needsCounts() && !hasCounts[T]() {
		wrapped := pauli.NewSum[coeff.Tracked[T]](obs.Qubits())
		obs.ForEach(func(op pauli.Operator, c T) {
			_ = wrapped.Set(op, coeff.Wrap(c))
		})
		wparams := make([]coeff.Tracked[T], len(params))
		for i, p := range params {
			wparams[i] = coeff.Wrap(p)
		}
		if err := run(wrapped, circ, wparams, opts); err != nil {
			return nil, err
		}
		out := pauli.NewSum[T](obs.Qubits())
		wrapped.ForEach(func(op pauli.Operator, c coeff.Tracked[T]) {
			_ = out.Set(op, c.Inner)
		})

		return out, nil
	}

	out := obs.Clone()
	if err := run(out, circ, params, opts); err != nil {
		return nil, err
	}

	return out, nil
}

// PropagateInPlace mutates sum directly and never wraps or copies
// coefficient objects, preserving the identity of values an external
// differentiation mechanism may be instrumenting. The sum is exclusively
// owned by the caller for the duration of the call and the engine retains
// no reference to it afterwards.
//
// Requesting MaxFreq/MaxSins truncation with a coefficient type that
// exposes no counters is a precondition violation reported as
// ErrUntrackedCoeff — wrap with coeff.Wrap before calling.
func PropagateInPlace[T coeff.Value[T]](
	sum *pauli.Sum[T],
	circ *circuit.Circuit,
	params []T,
	opts Options,
) error {
	if err := validate(sum, circ, params); err != nil {
		return err
	}
	if opts.Truncation.needsCounts() && !hasCounts[T]() {
		return ErrUntrackedCoeff
	}

	return run(sum, circ, params, opts)
}

func validate[T coeff.Value[T]](sum *pauli.Sum[T], circ *circuit.Circuit, params []T) error {
	if sum == nil {
		return ErrNilSum
	}
	if circ == nil {
		return ErrNilCircuit
	}
	if sum.Qubits() != circ.Qubits() {
		return ErrDimensionMismatch
	}
	if len(params) != circ.ParamCount() {
		return ErrParamCount
	}

	return nil
}

// term is one live (operator, coefficient) pair of the working set.
type term[T coeff.Value[T]] struct {
	op pauli.Operator
	c  T
}

// gateStep is the per-gate application context: the gate, its embedded
// generator and angle when it rotates, and the truncation policy.
type gateStep[T coeff.Value[T]] struct {
	gate  circuit.Gate
	gen   pauli.Operator
	angle T
	trunc Truncation
}

// apply runs the per-term state machine, appending surviving candidates to
// out and returning the number annihilated by truncation.
func (s gateStep[T]) apply(t term[T], out *[]term[T]) (int, error) {
	if s.gate.Kind() == circuit.Clifford {
		op, sign, err := s.gate.Conjugate(t.op)
		if err != nil {
			return 0, err
		}
		c := t.c
		if sign < 0 {
			c = c.Scale(-1)
		}
		if !keep(s.trunc, op, c) {
			return 1, nil
		}
		*out = append(*out, term[T]{op: op, c: c})

		return 0, nil
	}

	commutes, err := pauli.Commutes(s.gen, t.op)
	if err != nil {
		return 0, err
	}
	if commutes {
		// The rotation leaves the term invariant: no branching, no
		// sine/cosine factor, counters untouched.
		if !keep(s.trunc, t.op, t.c) {
			return 1, nil
		}
		*out = append(*out, t)

		return 0, nil
	}

	pruned := 0

	// Cosine component: the original operator survives, scaled.
	cosC := t.c.MulCos(s.angle)
	if keep(s.trunc, t.op, cosC) {
		*out = append(*out, term[T]{op: t.op, c: cosC})
	} else {
		pruned++
	}

	// Sine component: the rotated-out operator i·G·Q. G and Q anticommute,
	// so the product phase i^k is odd and i·i^k is the real sign ±1.
	prodOp, ph, err := pauli.Mul(s.gen, t.op)
	if err != nil {
		return pruned, err
	}
	sinC := t.c.MulSin(s.angle)
	if ph.Mul(pauli.PhasePlusI) == pauli.PhaseMinusOne {
		sinC = sinC.Scale(-1)
	}
	if keep(s.trunc, prodOp, sinC) {
		*out = append(*out, term[T]{op: prodOp, c: sinC})
	} else {
		pruned++
	}

	return pruned, nil
}

// run executes the full reverse-order gate loop on sum in place.
func run[T coeff.Value[T]](
	sum *pauli.Sum[T],
	circ *circuit.Circuit,
	params []T,
	opts Options,
) error {
	if circ.Len() == 0 {
		return nil // identity propagation
	}

	n := sum.Qubits()
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	cur := make([]term[T], 0, sum.Len())
	sum.ForEach(func(op pauli.Operator, c T) {
		cur = append(cur, term[T]{op: op, c: c})
	})

	for gi := circ.Len() - 1; gi >= 0; gi-- {
		g := circ.Gate(gi)
		step := gateStep[T]{gate: g, trunc: opts.Truncation}
		if g.Kind() == circuit.Rotation {
			gen, err := g.EmbeddedGenerator(n)
			if err != nil {
				return err
			}
			step.gen = gen
			step.angle = params[g.Param()]
		}

		next := pauli.NewSum[T](n)
		var (
			pruned int
			err    error
		)
		if workers > 1 && len(cur) >= 2*workers {
			pruned, err = applyParallel(step, cur, next, workers)
		} else {
			pruned, err = applySequential(step, cur, next)
		}
		if err != nil {
			return err
		}

		cur = cur[:0]
		next.ForEach(func(op pauli.Operator, c T) {
			cur = append(cur, term[T]{op: op, c: c})
		})

		opts.Logger.Debug().
			Int("gate", gi).
			Str("name", g.Name()).
			Int("terms", next.Len()).
			Int("pruned", pruned).
			Msg("gate applied")
	}

	sum.Clear()
	for _, t := range cur {
		if err := sum.Set(t.op, t.c); err != nil {
			return err
		}
	}

	return nil
}

func applySequential[T coeff.Value[T]](
	step gateStep[T],
	cur []term[T],
	next *pauli.Sum[T],
) (int, error) {
	var (
		buf    = make([]term[T], 0, 2*len(cur))
		pruned int
	)
	for _, t := range cur {
		p, err := step.apply(t, &buf)
		if err != nil {
			return pruned, err
		}
		pruned += p
	}
	for _, t := range buf {
		if err := next.Add(t.op, t.c); err != nil {
			return pruned, err
		}
	}

	return pruned, nil
}

// applyParallel partitions the working set across workers with local
// candidate buffers, then merges single-threaded. Merge is commutative and
// associative, so partitioning never changes the content of the next sum.
func applyParallel[T coeff.Value[T]](
	step gateStep[T],
	cur []term[T],
	next *pauli.Sum[T],
	workers int,
) (int, error) {
	var (
		chunk  = (len(cur) + workers - 1) / workers
		bufs   = make([][]term[T], workers)
		pruned = make([]int, workers)
		errs   = make([]error, workers)
		wg     sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(cur) {
			break
		}
		hi := lo + chunk
		if hi > len(cur) {
			hi = len(cur)
		}

		wg.Add(1)
		go func(w int, part []term[T]) {
			defer wg.Done()
			buf := make([]term[T], 0, 2*len(part))
			for _, t := range part {
				p, err := step.apply(t, &buf)
				if err != nil {
					errs[w] = err
					return
				}
				pruned[w] += p
			}
			bufs[w] = buf
		}(w, cur[lo:hi])
	}
	wg.Wait()

	total := 0
	for w := 0; w < workers; w++ {
		if errs[w] != nil {
			return 0, errs[w]
		}
		total += pruned[w]
		for _, t := range bufs[w] {
			if err := next.Add(t.op, t.c); err != nil {
				return total, err
			}
		}
	}

	return total, nil
}
