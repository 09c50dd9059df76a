package compat

import (
	"github.com/brentp/intintmap"

	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
	"github.com/go-theft-craft/cubicchunks/pkg/world/gen"
)

// dominantBottomBlock returns the most common block of the y=0 layer of c. Ties go
// to the block seen first, scanning x fastest and then z.
func dominantBottomBlock(c *gen.ChunkData) block.State {
	counts := intintmap.New(16, 0.6)
	var order []block.State

	for z := 0; z < 16; z++ {
		for x := 0; x < 16; x++ {
			s := c.GetBlock(x, 0, z)
			n, seen := counts.Get(int64(s))
			if !seen {
				order = append(order, s)
			}
			counts.Put(int64(s), n+1)
		}
	}

	var (
		best      block.State
		bestCount int64
	)
	for _, s := range order {
		if n, _ := counts.Get(int64(s)); n > bestCount {
			best, bestCount = s, n
		}
	}
	return best
}

// floorReplacement is the block put in place of a stripped floor.
func floorReplacement(d cubic.Dimension) block.State {
	if d == cubic.Nether {
		return block.Netherrack
	}
	return block.Stone
}
