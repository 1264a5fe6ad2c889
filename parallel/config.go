package parallel

// Config holds Runner configuration.
type Config struct {
	// MaxWorkers caps the number of concurrently executing goroutines.
	// Zero (default) means the pool grows and shrinks dynamically.
	MaxWorkers uint

	// StopOnError cancels remaining tasks as soon as one task returns an error.
	StopOnError bool

	// ResultsBufferSize sizes the outward results channel. Default: 1024.
	ResultsBufferSize uint

	// ErrorsBufferSize sizes the outward errors channel. Default: 1024.
	ErrorsBufferSize uint

	// PreserveOrder delivers results on the Results channel in the same
	// order tasks were submitted, rather than completion order. This costs
	// head-of-line blocking: a slow early task delays all later results.
	PreserveOrder bool
}

func defaultConfig() Config {
	return Config{
		MaxWorkers:        0,
		StopOnError:       false,
		ResultsBufferSize: 1024,
		ErrorsBufferSize:  1024,
		PreserveOrder:     false,
	}
}

// Option mutates Config during construction via NewOptions.
type Option func(*Config)

// WithFixedPool selects a fixed-size pool with the given capacity (n > 0).
func WithFixedPool(n uint) Option {
	return func(c *Config) { c.MaxWorkers = n }
}

// WithDynamicPool selects a dynamic pool (the default).
func WithDynamicPool() Option {
	return func(c *Config) { c.MaxWorkers = 0 }
}

// WithStopOnError cancels remaining tasks on the first error.
func WithStopOnError() Option {
	return func(c *Config) { c.StopOnError = true }
}

// WithPreserveOrder emits results in submission order instead of completion order.
func WithPreserveOrder() Option {
	return func(c *Config) { c.PreserveOrder = true }
}

// WithResultsBuffer sets the results channel buffer size.
func WithResultsBuffer(n uint) Option {
	return func(c *Config) { c.ResultsBufferSize = n }
}

// WithErrorsBuffer sets the errors channel buffer size.
func WithErrorsBuffer(n uint) Option {
	return func(c *Config) { c.ErrorsBufferSize = n }
}
