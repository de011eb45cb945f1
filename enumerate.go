package isingo

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// cancelStride is how many configurations a worker processes between
// context checks. Large enough that the check is free relative to the
// energy kernel, small enough to keep cancellation responsive.
const cancelStride = 1 << 12

// configurations returns the size of the configuration space, 2^N.
// Returns ErrInvalidArgument when the space does not fit a uint64 index;
// a sweep of that size would never terminate anyway.
func (m *Model) configurations() (uint64, error) {
	if m.n > 63 {
		return 0, fmt.Errorf("%w: cannot enumerate 2^%d configurations", ErrInvalidArgument, m.n)
	}
	return 1 << uint(m.n), nil
}

// workers resolves the configured parallelism to a worker count for a sweep
// of the given size. Tiny sweeps always run sequentially.
func (m *Model) workers(total uint64) int {
	w := m.opts.parallelism
	if w == 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if uint64(w) > total {
		w = int(total)
	}
	if w < 1 {
		w = 1
	}
	return w
}

// progressMeter emits throttled progress lines from concurrent workers.
// A nil meter is a no-op.
type progressMeter struct {
	op      string
	total   uint64
	done    atomic.Uint64
	limiter *rate.Limiter
	logger  *Logger
}

func (m *Model) newProgressMeter(op string, total uint64) *progressMeter {
	if m.opts.progressEvery == 0 {
		return nil
	}
	return &progressMeter{
		op:      op,
		total:   total,
		limiter: rate.NewLimiter(rate.Every(m.opts.progressEvery), 1),
		logger:  m.opts.logger,
	}
}

func (p *progressMeter) add(ctx context.Context, n uint64) {
	if p == nil {
		return
	}
	done := p.done.Add(n)
	if p.limiter.Allow() {
		p.logger.LogProgress(ctx, p.op, done, p.total)
	}
}

// sweep runs scan over [0, total) and feeds the partial results to merge.
//
// Sequential mode (workers == 1) calls scan once for the whole range.
// Parallel mode partitions the range into one contiguous chunk per worker
// and runs the chunks under an errgroup; each scan owns its scratch state,
// so workers share nothing mutable. merge always receives partials in
// ascending index order, which keeps order-sensitive reductions (the
// ground-state tie-break) identical to a sequential sweep.
func sweep[R any](
	ctx context.Context,
	total uint64,
	workers int,
	scan func(ctx context.Context, lo, hi uint64) (R, error),
	merge func(R),
) error {
	if total == 0 {
		return nil
	}

	if workers <= 1 {
		r, err := scan(ctx, 0, total)
		if err != nil {
			return err
		}
		merge(r)
		return nil
	}

	chunk := total / uint64(workers)
	if total%uint64(workers) != 0 {
		chunk++
	}

	results := make([]R, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := uint64(w) * chunk
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		if lo >= hi {
			break
		}
		g.Go(func() error {
			r, err := scan(gctx, lo, hi)
			if err != nil {
				return err
			}
			results[w] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for w := 0; w < workers; w++ {
		if uint64(w)*chunk >= total {
			break
		}
		merge(results[w])
	}
	return nil
}

// checkCancel observes ctx between blocks of cancelStride iterations.
func checkCancel(ctx context.Context, i uint64) error {
	if i%cancelStride == 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	return nil
}
