package advanced

import "go.uber.org/zap"

// DefaultMaxFlips caps how often a single edge may be flipped during
// legalization. Near-cocircular input can otherwise oscillate forever.
const DefaultMaxFlips = 16

// Options configures a triangulation build.
type Options struct {
	Logger   *zap.Logger
	MaxFlips int
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithLogger sets the logger used for build diagnostics. Build is silent by
// default.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithMaxFlips overrides DefaultMaxFlips. Values below 1 disable flipping,
// leaving the raw hull-sweep triangulation.
func WithMaxFlips(n int) Option {
	return func(o *Options) {
		o.MaxFlips = n
	}
}

func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		MaxFlips: DefaultMaxFlips,
	}
}
