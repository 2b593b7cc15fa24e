// SPDX-License-Identifier: MIT
// Package: lvtools/vec
//
// options.go - functional options for vector constructors.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     container methods themselves never panic on user input.
//   • No hidden globals; every vector carries its own growth policy.

package vec

import (
	"fmt"
	"math"
)

const (
	// DefaultGrowthFactor is the capacity multiplier applied when an append
	// or insert overflows the current allocation.
	DefaultGrowthFactor = 2.0

	// minAlloc is the smallest capacity chosen by automatic growth.
	minAlloc = 4
)

// Option customizes a vector at construction time.
type Option func(*config)

type config struct {
	capacity int
	growth   float64
}

// WithCapacity pre-allocates room for n elements.
// Panics on negative n.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("vec: WithCapacity(%d)", n))
	}
	return func(c *config) {
		c.capacity = n
	}
}

// WithGrowthFactor sets the reallocation multiplier. The new capacity is
// max(required, ceil(cap*f)), never below 4.
// Panics unless f is finite and greater than 1.
func WithGrowthFactor(f float64) Option {
	if !(f > 1) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("vec: WithGrowthFactor(%v)", f))
	}
	return func(c *config) {
		c.growth = f
	}
}

// newConfig resolves opts over the defaults.
func newConfig(opts []Option) config {
	c := config{growth: DefaultGrowthFactor}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}
