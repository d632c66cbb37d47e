package container

import (
	"fmt"

	"github.com/arloliu/mathfn/errs"
	"github.com/arloliu/mathfn/internal/options"
)

// Config holds the container settings applied by New.
type Config struct {
	// ResetPerSum makes Sum start from zero on every call instead of accumulating.
	ResetPerSum bool
	// InitialCapacity pre-sizes the reference list.
	InitialCapacity int
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

func defaultConfig() Config {
	return Config{
		ResetPerSum:     false,
		InitialCapacity: 0,
	}
}

// WithResetPerSum controls whether Sum resets the accumulator before evaluating.
//
// The default (false) keeps accumulating across calls, so Sum(x) called twice returns
// twice the single-call total.
func WithResetPerSum(reset bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.ResetPerSum = reset
	})
}

// WithInitialCapacity pre-allocates room for n function references.
func WithInitialCapacity(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: initial capacity cannot be negative, got %d", errs.ErrInvalidOption, n)
		}
		cfg.InitialCapacity = n

		return nil
	})
}
