package cluster

import "github.com/katalvlaran/lvleye/ndarray"

// DefaultPeriodic is the topology used when WithPeriodic is not given.
const DefaultPeriodic = true

// Option configures a Labeller, Clusters or Dilate call.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; callers
// use the WithX constructors.
type Options struct {
	kernel   *ndarray.Array[int] // nil selects kernel.Nearest(rank)
	periodic bool
}

// WithKernel sets the structuring element defining adjacency.
// The kernel is validated by the consuming constructor, not here.
func WithKernel(k *ndarray.Array[int]) Option {
	return func(o *Options) { o.kernel = k }
}

// WithPeriodic selects torus (true) or clamped (false) edges.
func WithPeriodic(periodic bool) Option {
	return func(o *Options) { o.periodic = periodic }
}

func gatherOptions(opts []Option) Options {
	o := Options{periodic: DefaultPeriodic}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
