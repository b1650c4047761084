// SPDX-License-Identifier: MIT
// Package: depsort/internal/fixture
//
// options.go: functional options for generators.
//
// Option constructors panic on meaningless input (nil functions); the
// generators themselves never panic.

package fixture

import (
	"fmt"
	"math/rand"
)

const defaultSeed = 1

// Option customizes a generator.
type Option func(*config)

type config struct {
	idFn func(int) string
	rng  *rand.Rand
}

func newConfig(opts []Option) config {
	cfg := config{
		idFn: func(i int) string { return fmt.Sprintf("n%d", i) },
		rng:  rand.New(rand.NewSource(defaultSeed)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the item ID generator: index -> ID.
// Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("fixture: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithSeed seeds the RNG used by stochastic generators.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the RNG directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fixture: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}
