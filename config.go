package lexdfa

// Option configures a Compile call. The zero config (no options) minimizes
// the resulting machine and has no state-count ceiling.
type Option func(*config)

type config struct {
	maxStates    int // 0 means unbounded
	skipMinimize bool
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithMaxStates caps the number of states the determinized (pre-minimization)
// machine may reach; exceeding it fails Compile with ErrTooManyStates. A
// non-positive n disables the check.
func WithMaxStates(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxStates = n
		}
	}
}

// WithSkipMinimization skips the partition-refinement pass and returns the
// subset-construction result directly. Useful for inspecting the
// unminimized machine or trading state-table size for compile speed.
func WithSkipMinimization() Option {
	return func(c *config) {
		c.skipMinimize = true
	}
}
