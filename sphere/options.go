// SPDX-License-Identifier: MIT

package sphere

import (
	"math/rand/v2"
	"time"
)

// Option configures Random. Constructors panic on nonsensical arguments;
// Random itself never panics.
type Option func(*config)

type config struct {
	src rand.Source
}

// WithSeed makes Random deterministic for a given seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.src = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
}

// WithSource supplies an explicit random source.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("sphere: WithSource(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

func gatherOptions(opts ...Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	if c.src == nil {
		now := uint64(time.Now().UnixNano())
		c.src = rand.NewPCG(now, now>>1)
	}

	return c
}
