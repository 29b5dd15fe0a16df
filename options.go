package workplanner

import "github.com/ekanter/workplanner/metrics"

// Option configures ambient concerns of a Planner. Use with New.
type Option func(*config)

// WithMetrics attaches a metrics.Provider the planner uses to record
// submissions, dispatches, active-set size, and group rotations. The
// default is metrics.NewNoopProvider().
func WithMetrics(provider metrics.Provider) Option {
	if provider == nil {
		panic(Namespace + ": WithMetrics requires a non-nil provider")
	}
	return func(c *config) { c.metrics = provider }
}

// WithLogger attaches a structured logger the planner uses to trace
// submit/take/complete/drain state transitions. The default is a disabled
// logger (no output).
func WithLogger(logger Logger) Option {
	return func(c *config) { c.logger = logger }
}

func applyOptions(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			panic(ErrNilOption)
		}
		opt(&c)
	}
	return c
}
