package isingo

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/isingo/spin"
)

// GroundState is the result of an exhaustive minimum-energy search.
type GroundState struct {
	// Energy is the global minimum of the Hamiltonian.
	Energy float64
	// Index is the integer encoding of the minimizing configuration.
	// When several configurations share the minimum energy, Index is the
	// lowest such encoding.
	Index uint64
	// Config is the bit sequence of the minimizing configuration.
	Config []uint8
}

// minPartial is one worker's running minimum: the lowest energy in its
// index range and the lowest index attaining it.
type minPartial struct {
	energy float64
	index  uint64
}

// GroundState finds the minimum-energy configuration by sweeping all 2^N
// configurations.
//
// The running minimum starts from configuration 0 and is only replaced on
// a strict improvement, so ties resolve to the lowest index attaining the
// minimum — including the case where configuration 0 itself is optimal.
// The parallel sweep merges per-worker minima in ascending index order with
// the same strict comparison, preserving that tie-break exactly.
func (m *Model) GroundState(ctx context.Context) (GroundState, error) {
	total, err := m.configurations()
	if err != nil {
		return GroundState{}, err
	}

	workers := m.workers(total)
	meter := m.newProgressMeter("ground_state", total)

	scan := func(ctx context.Context, lo, hi uint64) (minPartial, error) {
		c, err := spin.New(m.n)
		if err != nil {
			return minPartial{}, err
		}
		if err := c.FromInteger(lo); err != nil {
			return minPartial{}, err
		}
		p := minPartial{energy: m.energy(c), index: lo}
		meter.add(ctx, 1)
		for i := lo + 1; i < hi; i++ {
			if err := checkCancel(ctx, i); err != nil {
				return minPartial{}, err
			}
			if err := c.FromInteger(i); err != nil {
				return minPartial{}, err
			}
			if e := m.energy(c); e < p.energy {
				p.energy = e
				p.index = i
			}
			meter.add(ctx, 1)
		}
		return p, nil
	}

	var best minPartial
	first := true
	merge := func(p minPartial) {
		if first || p.energy < best.energy {
			best = p
			first = false
		}
	}

	err = sweep(ctx, total, workers, scan, merge)
	m.opts.logger.LogGroundState(ctx, best.energy, best.index, err)
	if err != nil {
		return GroundState{}, err
	}

	c, err := spin.New(m.n)
	if err != nil {
		return GroundState{}, err
	}
	if err := c.FromInteger(best.index); err != nil {
		return GroundState{}, err
	}
	return GroundState{
		Energy: best.energy,
		Index:  best.index,
		Config: c.Bits(),
	}, nil
}

// Degeneracy collects every configuration index attaining the minimum
// energy into a roaring bitmap and returns it together with that energy.
//
// Membership uses exact floating-point equality against the running
// minimum. Configurations related by an exact symmetry of the model (such
// as a global spin flip at zero field) evaluate to bit-identical sums and
// are reported together; energies that are merely close are not.
func (m *Model) Degeneracy(ctx context.Context) (*roaring64.Bitmap, float64, error) {
	total, err := m.configurations()
	if err != nil {
		return nil, 0, err
	}

	workers := m.workers(total)
	meter := m.newProgressMeter("degeneracy", total)

	type degPartial struct {
		energy float64
		set    *roaring64.Bitmap
	}

	scan := func(ctx context.Context, lo, hi uint64) (degPartial, error) {
		c, err := spin.New(m.n)
		if err != nil {
			return degPartial{}, err
		}
		if err := c.FromInteger(lo); err != nil {
			return degPartial{}, err
		}
		p := degPartial{energy: m.energy(c), set: roaring64.New()}
		p.set.Add(lo)
		meter.add(ctx, 1)
		for i := lo + 1; i < hi; i++ {
			if err := checkCancel(ctx, i); err != nil {
				return degPartial{}, err
			}
			if err := c.FromInteger(i); err != nil {
				return degPartial{}, err
			}
			switch e := m.energy(c); {
			case e < p.energy:
				p.energy = e
				p.set.Clear()
				p.set.Add(i)
			case e == p.energy:
				p.set.Add(i)
			}
			meter.add(ctx, 1)
		}
		return p, nil
	}

	var best degPartial
	merge := func(p degPartial) {
		switch {
		case best.set == nil || p.energy < best.energy:
			best = p
		case p.energy == best.energy:
			best.set.Or(p.set)
		}
	}

	err = sweep(ctx, total, workers, scan, merge)
	m.opts.logger.LogEnumeration(ctx, "degeneracy", total, workers, err)
	if err != nil {
		return nil, 0, err
	}
	return best.set, best.energy, nil
}
