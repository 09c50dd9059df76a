package compat

import "github.com/go-theft-craft/cubicchunks/pkg/world/gen"

// columnCache holds the most recently used legacy chunk. It has a capacity of one:
// asking for any other column evicts the held chunk and loads the new one.
type columnCache struct {
	load func(x, z int) *gen.ChunkData

	key   gen.ChunkPos
	chunk *gen.ChunkData
}

// get returns the chunk of column (x, z) and whether it had to be loaded.
func (c *columnCache) get(x, z int) (*gen.ChunkData, bool) {
	key := gen.ChunkPos{X: x, Z: z}
	if c.chunk != nil && c.key == key {
		return c.chunk, false
	}
	c.store(x, z, c.load(x, z))
	return c.chunk, true
}

func (c *columnCache) store(x, z int, chunk *gen.ChunkData) {
	c.key = gen.ChunkPos{X: x, Z: z}
	c.chunk = chunk
}
