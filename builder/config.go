// SPDX-License-Identifier: MIT
// Package: flightnet/builder
//
// config.go - resolved builder configuration and its functional options.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is immutable once resolved by newBuilderConfig.
type builderConfig struct {
	idFn   IDFn       // vertex ID for index i
	rng    *rand.Rand // nil unless WithSeed/WithRand
	fareFn FareFn     // fare for each emitted route

	err error // first invalid option
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		fareFn: DefaultFareFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c *builderConfig) fail(format string, args ...any) {
	if c.err == nil {
		c.err = fmt.Errorf(format+": %w", append(args, ErrOptionViolation)...)
	}
}

// WithIDScheme sets the vertex ID function. nil yields ErrOptionViolation.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.fail("WithIDScheme(nil)")
			return
		}
		c.idFn = fn
	}
}

// WithRand attaches an RNG; the caller owns the seed policy.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.fail("WithRand(nil)")
			return
		}
		c.rng = r
	}
}

// WithSeed attaches a freshly seeded RNG, making stochastic builders reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithFareFn sets the fare generator. nil yields ErrOptionViolation.
func WithFareFn(fn FareFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.fail("WithFareFn(nil)")
			return
		}
		c.fareFn = fn
	}
}
