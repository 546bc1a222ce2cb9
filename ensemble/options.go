package ensemble

import (
	"io"
	"log/slog"
)

// Defaults applied by New when no Option overrides them.
const (
	// DefaultPeriodic treats fields as periodic (torus) grids.
	DefaultPeriodic = true
	// DefaultVariance tracks the second moment where a statistic supports it.
	DefaultVariance = true
)

// Option configures an Ensemble (and Accumulate).
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	periodic bool
	variance bool
	logger   *slog.Logger // used by Accumulate only
}

// WithPeriodic selects periodic (true) or zero-padded, masked (false) edges.
func WithPeriodic(periodic bool) Option {
	return func(o *Options) { o.periodic = periodic }
}

// WithVariance enables or disables second-moment tracking.
func WithVariance(variance bool) Option {
	return func(o *Options) { o.variance = variance }
}

// WithLogger sets the logger Accumulate reports shard progress to.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := Options{
		periodic: DefaultPeriodic,
		variance: DefaultVariance,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
