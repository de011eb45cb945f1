package isingo

import (
	"context"
	"fmt"
	"math"

	"github.com/hupe1980/isingo/spin"
)

// Thermo holds the exact thermal averages of a model at one temperature.
// All values are normalized by the partition function.
type Thermo struct {
	// Energy is the mean energy <E>.
	Energy float64
	// Magnetization is the mean net spin <M>.
	Magnetization float64
	// HeatCapacity is (<E^2> - <E>^2) / T^2.
	HeatCapacity float64
	// MagneticSusceptibility is (<M^2> - <M>^2) / T.
	MagneticSusceptibility float64
}

// thermoPartial carries one worker's unnormalized Boltzmann sums.
// Addition of partials is commutative, so the merge order does not affect
// the result beyond float rounding of the same magnitude as the sequential
// sweep.
type thermoPartial struct {
	z  float64 // partition function
	e  float64 // sum E_i * Z_i
	ee float64 // sum E_i^2 * Z_i
	m  float64 // sum M_i * Z_i
	mm float64 // sum M_i^2 * Z_i
}

func (p *thermoPartial) add(q thermoPartial) {
	p.z += q.z
	p.e += q.e
	p.ee += q.ee
	p.m += q.m
	p.mm += q.mm
}

// AverageValues computes exact thermal averages at temperature T by
// sweeping all 2^N configurations.
//
// Returns ErrInvalidArgument if T is not positive. The sweep honors ctx
// cancellation. Cost is exponential in Sites(); beyond roughly 25 sites a
// full sweep stops being practical, which is inherent to the exact method.
func (m *Model) AverageValues(ctx context.Context, T float64) (Thermo, error) {
	if T <= 0 {
		return Thermo{}, fmt.Errorf("%w: temperature must be positive, got %g", ErrInvalidArgument, T)
	}
	total, err := m.configurations()
	if err != nil {
		return Thermo{}, err
	}

	workers := m.workers(total)
	meter := m.newProgressMeter("average_values", total)

	scan := func(ctx context.Context, lo, hi uint64) (thermoPartial, error) {
		c, err := spin.New(m.n)
		if err != nil {
			return thermoPartial{}, err
		}
		var p thermoPartial
		for i := lo; i < hi; i++ {
			if err := checkCancel(ctx, i); err != nil {
				return thermoPartial{}, err
			}
			if err := c.FromInteger(i); err != nil {
				return thermoPartial{}, err
			}
			e := m.energy(c)
			zi := math.Exp(-e / T)
			mi := float64(c.Magnetization())
			p.z += zi
			p.e += e * zi
			p.ee += e * e * zi
			p.m += mi * zi
			p.mm += mi * mi * zi
			meter.add(ctx, 1)
		}
		return p, nil
	}

	var sum thermoPartial
	err = sweep(ctx, total, workers, scan, sum.add)
	m.opts.logger.LogEnumeration(ctx, "average_values", total, workers, err)
	if err != nil {
		return Thermo{}, err
	}

	avgE := sum.e / sum.z
	avgM := sum.m / sum.z
	return Thermo{
		Energy:                 avgE,
		Magnetization:          avgM,
		HeatCapacity:           (sum.ee/sum.z - avgE*avgE) / (T * T),
		MagneticSusceptibility: (sum.mm/sum.z - avgM*avgM) / T,
	}, nil
}
