package fusion

import "runtime"

// Default splice-search constants, tuned for the 60 MHz dual-channel sounder.
const (
	DefaultStride      = 1000
	DefaultWindow      = 30
	DefaultThresholdDB = 3.0
	DefaultExclusion   = 100
	DefaultBackOff     = 10
)

// Config holds the splice-search settings of an [Engine].
type Config struct {
	Stride      int     // sounding subsampling step
	Window      int     // moving-average length in samples
	ThresholdDB float64 // channel divergence that marks the splice
	Exclusion   int     // samples after the search start that never qualify
	BackOff     int     // samples subtracted from the splice index
	Workers     int     // parallel sounding estimators
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the built-in splice-search settings.
func DefaultConfig() Config {
	return Config{
		Stride:      DefaultStride,
		Window:      DefaultWindow,
		ThresholdDB: DefaultThresholdDB,
		Exclusion:   DefaultExclusion,
		BackOff:     DefaultBackOff,
		Workers:     runtime.GOMAXPROCS(0),
	}
}

// WithStride sets the sounding subsampling step.
func WithStride(stride int) Option {
	return func(cfg *Config) {
		if stride > 0 {
			cfg.Stride = stride
		}
	}
}

// WithWindow sets the moving-average length.
func WithWindow(window int) Option {
	return func(cfg *Config) {
		if window > 0 {
			cfg.Window = window
		}
	}
}

// WithThresholdDB sets the divergence threshold in dB.
func WithThresholdDB(db float64) Option {
	return func(cfg *Config) {
		if db > 0 {
			cfg.ThresholdDB = db
		}
	}
}

// WithExclusion sets how many samples after the search start are skipped.
func WithExclusion(samples int) Option {
	return func(cfg *Config) {
		if samples >= 0 {
			cfg.Exclusion = samples
		}
	}
}

// WithBackOff sets the margin subtracted from the splice index.
func WithBackOff(samples int) Option {
	return func(cfg *Config) {
		if samples >= 0 {
			cfg.BackOff = samples
		}
	}
}

// WithWorkers bounds the number of soundings estimated concurrently.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
