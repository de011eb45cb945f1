package isingo

import (
	"fmt"

	"github.com/hupe1980/isingo/spin"
)

// Coupling is one pairwise interaction entry in a site's adjacency list:
// the neighboring site and the interaction strength J.
type Coupling struct {
	Neighbor int
	Strength float64
}

// Model is a classical Ising model over N sites: sparse pairwise couplings
// plus per-site local fields.
//
// The energy of a configuration c is
//
//	E(c) = sum over counted pairs (i,j) of ±J_ij  +  sum over sites of mu_i * s_i
//
// where s_i = 2*bit_i - 1 and a pair contributes +J when the two bits are
// equal, -J when they differ.
//
// Couplings are stored exactly as supplied, with no symmetrization. The
// energy kernel counts the entry (i -> j) only when j >= i, so a coupling
// that should contribute must be listed at its lower-indexed endpoint.
// Callers following the usual adjacency-list convention list every edge at
// both endpoints; the kernel then counts it exactly once. An edge listed
// only at its higher-indexed endpoint is silently dropped — this is the
// established convention the numeric fixtures depend on, not an error
// condition.
//
// A Model is immutable after construction except for SetField, and is safe
// for concurrent reads.
type Model struct {
	n         int
	neighbors [][]int
	strengths [][]float64
	fields    []float64
	opts      options
}

// New constructs a Model from per-site coupling lists and local fields.
//
// The site count N is the length of couplings. Every Coupling.Neighbor must
// lie in [0, N) and len(fields) must equal N.
func New(couplings [][]Coupling, fields []float64, opts ...Option) (*Model, error) {
	n := len(couplings)
	if n == 0 {
		return nil, fmt.Errorf("%w: at least one site required", ErrInvalidArgument)
	}
	if len(fields) != n {
		return nil, &ErrDimensionMismatch{Expected: n, Actual: len(fields)}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Model{
		n:         n,
		neighbors: make([][]int, n),
		strengths: make([][]float64, n),
		fields:    make([]float64, n),
		opts:      o,
	}
	copy(m.fields, fields)

	for i, site := range couplings {
		m.neighbors[i] = make([]int, len(site))
		m.strengths[i] = make([]float64, len(site))
		for k, cp := range site {
			if cp.Neighbor < 0 || cp.Neighbor >= n {
				return nil, &ErrIndexOutOfRange{Index: cp.Neighbor, Length: n}
			}
			m.neighbors[i][k] = cp.Neighbor
			m.strengths[i][k] = cp.Strength
		}
	}

	return m, nil
}

// Sites returns the number of sites N.
func (m *Model) Sites() int { return m.n }

// Field returns the local field at site i.
func (m *Model) Field(i int) (float64, error) {
	if i < 0 || i >= m.n {
		return 0, &ErrIndexOutOfRange{Index: i, Length: m.n}
	}
	return m.fields[i], nil
}

// SetField overwrites the local field at site i. This is the one mutation
// the model supports after construction; it is used to perturb a single
// field value between sweeps and must not race with a running sweep.
func (m *Model) SetField(i int, mu float64) error {
	if i < 0 || i >= m.n {
		return &ErrIndexOutOfRange{Index: i, Length: m.n}
	}
	m.fields[i] = mu
	return nil
}

// Energy evaluates the Hamiltonian on the given configuration.
// Returns ErrDimensionMismatch if the configuration length differs from
// Sites().
func (m *Model) Energy(c *spin.BitConfig) (float64, error) {
	if c.Len() != m.n {
		return 0, &ErrDimensionMismatch{Expected: m.n, Actual: c.Len()}
	}
	return m.energy(c), nil
}

// energy is the unchecked kernel shared with the enumeration sweeps.
func (m *Model) energy(c *spin.BitConfig) float64 {
	e := 0.0
	for i := 0; i < m.n; i++ {
		bi := c.Bit(i)
		nbrs := m.neighbors[i]
		js := m.strengths[i]
		for k, j := range nbrs {
			if j < i {
				// Counted at the lower-indexed endpoint only.
				continue
			}
			if bi == c.Bit(j) {
				e += js[k]
			} else {
				e -= js[k]
			}
		}
		e += m.fields[i] * float64(2*int(bi)-1)
	}
	return e
}
