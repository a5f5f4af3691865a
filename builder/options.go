// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	rng      *rand.Rand
	spacing  float64 // distance between lattice neighbours / side of random square
	idOffset int     // first ID handed out by Build
}

const (
	defaultSpacing  = 1.0
	defaultIDOffset = 0
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		spacing:  defaultSpacing,
		idOffset: defaultIDOffset,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed seeds a private *rand.Rand for stochastic constructors.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG directly. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSpacing sets the lattice spacing of Grid/Path/Cycle and the side of
// the square sampled by RandomGeometric. Panics unless s > 0.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) {
		panic(fmt.Sprintf("builder: WithSpacing(%g) must be > 0", s))
	}
	return func(c *builderConfig) {
		c.spacing = s
	}
}

// WithIDOffset makes Build hand out IDs starting at off.
func WithIDOffset(off int) BuilderOption {
	return func(c *builderConfig) {
		c.idOffset = off
	}
}
