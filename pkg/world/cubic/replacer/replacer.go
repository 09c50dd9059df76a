// Package replacer builds per-biome block replacement chains for cubic terrain.
//
// A Replacer rewrites one block given the block chosen so far, its position, the
// terrain density there and the density gradient. Providers create replacers for a
// world and biome from a Config, and declare which options that Config may carry.
// Providers are registered by Key in a Registry.
package replacer

import "github.com/go-theft-craft/cubicchunks/pkg/world/block"

// Replacer rewrites the block at (x, y, z). density is positive inside terrain and
// dx, dy, dz are its gradient along each axis.
type Replacer interface {
	Replace(prev block.State, x, y, z int, dx, dy, dz, density float64) block.State
}

// ReplacerFunc adapts a function to Replacer.
type ReplacerFunc func(prev block.State, x, y, z int, dx, dy, dz, density float64) block.State

func (f ReplacerFunc) Replace(prev block.State, x, y, z int, dx, dy, dz, density float64) block.State {
	return f(prev, x, y, z, dx, dy, dz, density)
}

// Chain applies replacers in order, each seeing the result of the previous one.
type Chain []Replacer

func (c Chain) Replace(prev block.State, x, y, z int, dx, dy, dz, density float64) block.State {
	for _, r := range c {
		prev = r.Replace(prev, x, y, z, dx, dy, dz, density)
	}
	return prev
}
