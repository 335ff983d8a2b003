package doublearray

import "go.uber.org/zap"

const (
	// DefaultInitialSize is the number of slots a fresh Store starts with.
	DefaultInitialSize = 1024
	// DefaultExpandRatio multiplies the requested size on every reallocation.
	DefaultExpandRatio = 2

	minStoreSize = 2 // root + one free sentinel
)

type config struct {
	initialSize int
	expandRatio int
	logger      *zap.Logger
}

// Option tunes a Store or a Builder.
type Option func(*config)

// WithInitialSize sets the initial number of slots (values <= 0 select the default).
func WithInitialSize(size int) Option {
	return func(c *config) {
		c.initialSize = size
	}
}

// WithExpandRatio sets the growth factor; ratios below 2 are raised to 2.
func WithExpandRatio(ratio int) Option {
	return func(c *config) {
		c.expandRatio = ratio
	}
}

// WithLogger sets a logger for growth and build diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	var cfg = config{
		initialSize: DefaultInitialSize,
		expandRatio: DefaultExpandRatio,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.initialSize <= 0 {
		cfg.initialSize = DefaultInitialSize
	}

	if cfg.initialSize < minStoreSize {
		cfg.initialSize = minStoreSize
	}

	if cfg.expandRatio < 2 {
		cfg.expandRatio = 2
	}

	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	return cfg
}
