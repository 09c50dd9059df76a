package compat

import (
	"testing"

	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
	"github.com/go-theft-craft/cubicchunks/pkg/world/gen"
)

// testLegacy builds chunks out of fill and records every call made to it.
type testLegacy struct {
	fill func(c *gen.ChunkData)

	generated  []gen.ChunkPos
	populated  []gen.ChunkPos
	recreated  []gen.ChunkPos
	recreateOn []*gen.ChunkData
}

func (l *testLegacy) Generate(x, z int) *gen.ChunkData {
	l.generated = append(l.generated, gen.ChunkPos{X: x, Z: z})
	c := gen.NewChunkData(x, z)
	l.fill(c)
	return c
}

func (l *testLegacy) HeightAt(int, int) int { return 0 }

func (l *testLegacy) Populate(_ block.Access, x, z int) {
	l.populated = append(l.populated, gen.ChunkPos{X: x, Z: z})
}

func (l *testLegacy) RecreateStructures(c *gen.ChunkData, x, z int) {
	l.recreated = append(l.recreated, gen.ChunkPos{X: x, Z: z})
	l.recreateOn = append(l.recreateOn, c)
}

func (l *testLegacy) PossibleCreatures(kind gen.CreatureType, _ block.Pos) []gen.SpawnEntry {
	return gen.SpawnsFor(gen.BiomePlains, kind)
}

func (l *testLegacy) ClosestStructure(name string, pos block.Pos) (block.Pos, bool) {
	if name != gen.StructureStronghold {
		return block.Pos{}, false
	}
	return pos.Add(100, 0, 0), true
}

// patterned is a legacy chunk with a bedrock floor and varied blocks up to y=79.
// Everything from section 5 up is left nil.
func patterned(c *gen.ChunkData) {
	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			c.SetBlock(x, 0, z, block.Bedrock)
			for y := 1; y < 80; y++ {
				c.SetBlock(x, y, z, patternAt(x, y, z))
			}
			c.SetBiome(x, z, gen.BiomeDesert)
		}
	}
	// A stray marker above the floor, to check it is stripped too.
	c.SetBlock(5, 40, 5, block.Bedrock)
}

func patternAt(x, y, z int) block.State {
	switch (x + y + z) % 4 {
	case 0:
		return block.Stone
	case 1:
		return block.Dirt
	case 2:
		return block.Air
	default:
		return block.New(17, y%4)
	}
}

// testWorld keeps generated cubes in a map and generates missing ones through gen.
type testWorld struct {
	t       *testing.T
	dim     cubic.Dimension
	biomes  cubic.BiomeSource
	gen     cubic.Generator
	cubes   map[cubic.CubePos]*cubic.Cube
	cubeGen map[cubic.CubePos]int
	depth   int
}

func newTestWorld(t *testing.T, dim cubic.Dimension) *testWorld {
	return &testWorld{
		t:       t,
		dim:     dim,
		biomes:  gen.FixedBiome(gen.BiomeDesert),
		cubes:   make(map[cubic.CubePos]*cubic.Cube),
		cubeGen: make(map[cubic.CubePos]int),
	}
}

func (w *testWorld) Cube(x, y, z int) *cubic.Cube {
	pos := cubic.CubePos{X: x, Y: y, Z: z}
	if c, ok := w.cubes[pos]; ok {
		return c
	}
	w.depth++
	defer func() { w.depth-- }()
	if w.depth > 2 {
		w.t.Fatalf("generation re-entered %d levels deep at %+v", w.depth, pos)
	}
	w.cubeGen[pos]++
	c := cubic.NewCube(pos, w.gen.GenerateCube(x, y, z))
	w.cubes[pos] = c
	return c
}

func (w *testWorld) Block(x, y, z int) block.State {
	c := w.Cube(cubic.BlockToCube(x), cubic.BlockToCube(y), cubic.BlockToCube(z))
	return c.Block(cubic.BlockToLocal(x), cubic.BlockToLocal(y), cubic.BlockToLocal(z))
}

func (w *testWorld) SetBlock(x, y, z int, s block.State) {
	c := w.Cube(cubic.BlockToCube(x), cubic.BlockToCube(y), cubic.BlockToCube(z))
	c.SetBlock(cubic.BlockToLocal(x), cubic.BlockToLocal(y), cubic.BlockToLocal(z), s)
}

func (w *testWorld) Dimension() cubic.Dimension { return w.dim }
func (w *testWorld) BiomeSource() cubic.BiomeSource { return w.biomes }

// newTest wires a Generator to a fresh testWorld.
func newTest(t *testing.T, dim cubic.Dimension, fill func(*gen.ChunkData), opts ...Option) (*Generator, *testLegacy, *testWorld) {
	t.Helper()
	legacy := &testLegacy{fill: fill}
	w := newTestWorld(t, dim)
	g, err := New(legacy, w, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.gen = g
	return g, legacy, w
}
