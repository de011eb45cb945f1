package isingo

import (
	"time"
)

type options struct {
	parallelism   int
	logger        *Logger
	progressEvery time.Duration // 0 disables progress logging
}

func defaultOptions() options {
	return options{
		parallelism: 1,
		logger:      NoopLogger(),
	}
}

// Option configures Model construction.
//
// Options only affect how sweeps are executed (worker count, logging);
// they never change the numeric results, including the ground-state
// tie-break.
type Option func(*options)

// WithParallelism configures the number of workers used to sweep the
// configuration space.
//
// n = 1 (the default) runs sequentially with a single scratch
// configuration. n = 0 uses one worker per available CPU. Each worker owns
// its scratch configuration and partial accumulators; partials are merged
// in ascending index order, so results are identical to a sequential sweep.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 1
		}
		o.parallelism = n
	}
}

// WithLogger configures the logger used by sweeps.
//
// If nil is passed, NoopLogger() is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithProgressLogging enables a throttled progress line during sweeps,
// emitted at most once per interval. Useful for sweeps in the 2^20+ range
// where a full pass takes seconds to minutes.
func WithProgressLogging(interval time.Duration) Option {
	return func(o *options) {
		if interval < 0 {
			interval = 0
		}
		o.progressEvery = interval
	}
}
