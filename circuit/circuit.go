package circuit

// Circuit is an ordered gate sequence over a fixed qubit count, consumed
// read-only by the propagation engine. The declared parameter count is the
// highest parameter index appended plus one; the caller's parameter vector
// must match it exactly.
type Circuit struct {
	qubits int
	gates  []Gate
	params int
}

// New returns an empty circuit over n qubits.
func New(n int) *Circuit { return &Circuit{qubits: n} }

// Append validates and appends gates in order. Sites must be distinct and
// inside [0, qubits); rotation parameter indices must be non-negative.
// The first invalid gate aborts the append and nothing is added.
func (c *Circuit) Append(gs ...Gate) error {
	for _, g := range gs {
		if err := c.check(g); err != nil {
			return err
		}
	}
	for _, g := range gs {
		c.gates = append(c.gates, g)
		if g.kind == Rotation && g.param+1 > c.params {
			c.params = g.param + 1
		}
	}

	return nil
}

func (c *Circuit) check(g Gate) error {
	seen := make(map[int]struct{}, len(g.qubits))
	for _, q := range g.qubits {
		if q < 0 || q >= c.qubits {
			return ErrQubitRange
		}
		if _, dup := seen[q]; dup {
			return ErrQubitRange
		}
		seen[q] = struct{}{}
	}
	if g.kind == Rotation && g.param < 0 {
		return ErrParamIndex
	}

	return nil
}

// Qubits returns the circuit's fixed qubit count.
func (c *Circuit) Qubits() int { return c.qubits }

// Len returns the number of gates.
func (c *Circuit) Len() int { return len(c.gates) }

// Gate returns the i-th gate in circuit order.
func (c *Circuit) Gate(i int) Gate { return c.gates[i] }

// ParamCount returns the declared length of the parameter vector.
func (c *Circuit) ParamCount() int { return c.params }
