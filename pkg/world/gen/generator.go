package gen

import "github.com/go-theft-craft/cubicchunks/pkg/world/block"

const (
	// ChunkHeight is the height of a legacy chunk column in blocks.
	ChunkHeight = 256
	// SectionCount is the number of 16-block storage sections in a column.
	SectionCount = ChunkHeight / 16
)

// ChunkPos identifies a chunk by its X and Z coordinates.
type ChunkPos struct{ X, Z int }

// Section holds block data for a 16×16×16 vertical slice of a chunk.
// Index = y*256 + z*16 + x.
type Section struct {
	Blocks [4096]block.State
}

// Get returns the block at local section coordinates.
func (s *Section) Get(x, y, z int) block.State {
	return s.Blocks[y*256+z*16+x]
}

// IsEmpty reports whether the section holds nothing but air.
func (s *Section) IsEmpty() bool {
	for _, b := range s.Blocks {
		if b != block.Air {
			return false
		}
	}
	return true
}

// ChunkData holds the generated terrain for one chunk column.
type ChunkData struct {
	Pos      ChunkPos
	Sections [SectionCount]*Section // nil = all-air
	Biomes   [256]byte              // index = z*16 + x → biome ID
}

// NewChunkData returns an empty column at the given chunk coordinates.
func NewChunkData(chunkX, chunkZ int) *ChunkData {
	return &ChunkData{Pos: ChunkPos{X: chunkX, Z: chunkZ}}
}

// SetBlock sets a block state at the given local coordinates within the chunk.
// x, z must be in [0,16), y must be in [0,256).
func (c *ChunkData) SetBlock(x, y, z int, state block.State) {
	sec := y >> 4
	if c.Sections[sec] == nil {
		if state == block.Air {
			return
		}
		c.Sections[sec] = &Section{}
	}
	c.Sections[sec].Blocks[(y&0xF)*256+z*16+x] = state
}

// GetBlock returns the block state at the given local coordinates.
func (c *ChunkData) GetBlock(x, y, z int) block.State {
	sec := y >> 4
	if c.Sections[sec] == nil {
		return block.Air
	}
	return c.Sections[sec].Blocks[(y&0xF)*256+z*16+x]
}

// SetBiome sets the biome ID at the given local x, z coordinates.
func (c *ChunkData) SetBiome(x, z int, biome byte) {
	c.Biomes[z*16+x] = biome
}

// Generator produces chunk data deterministically from a seed.
type Generator interface {
	Generate(chunkX, chunkZ int) *ChunkData
	HeightAt(blockX, blockZ int) int
}

// ColumnGenerator is a full legacy generator: besides terrain it decorates whole
// columns, rebuilds structure data and answers spawn and structure queries.
type ColumnGenerator interface {
	Generator
	// Populate decorates the 16×16 area starting at block (chunkX*16+8, chunkZ*16+8).
	// The area straddles four columns, so the columns at +1 on X and Z must exist.
	Populate(w block.Access, chunkX, chunkZ int)
	RecreateStructures(c *ChunkData, chunkX, chunkZ int)
	PossibleCreatures(kind CreatureType, pos block.Pos) []SpawnEntry
	ClosestStructure(name string, pos block.Pos) (block.Pos, bool)
}
