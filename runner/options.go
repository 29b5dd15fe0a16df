package runner

// Option configures a Runner. Use with New.
type Option func(*config)

// WithFixedWorkers caps the number of distinct worker slots the runner
// ever creates at n, recycling them across commands instead of allocating
// one per command. It does not by itself limit how many commands run
// concurrently — use it when slot construction (e.g. a pooled client) is
// the expensive part, not dispatch. Conflicts with WithDynamicWorkers; the
// last one applied wins.
func WithFixedWorkers(n uint) Option {
	if n == 0 {
		panic("runner: WithFixedWorkers requires n > 0")
	}
	return func(c *config) {
		c.shape = shapeFixed
		c.fixedSize = n
	}
}

// WithDynamicWorkers selects a slot pool that builds slot objects on
// demand instead of capping how many exist. As with WithFixedWorkers, the
// runner spawns a new goroutine for every command Take returns. This is
// the default.
func WithDynamicWorkers() Option {
	return func(c *config) {
		c.shape = shapeDynamic
		c.fixedSize = 0
	}
}

// WithErrorsBuffer sets the size of the outgoing errors channel buffer
// (default 1024).
func WithErrorsBuffer(size uint) Option {
	return func(c *config) { c.errorsBuf = size }
}

func applyOptions(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			panic("runner: nil option")
		}
		opt(&c)
	}
	return c
}
