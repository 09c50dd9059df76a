// Package custom is a native cubic generator. Terrain density comes from a legacy
// height map and is turned into blocks by a replacer chain chosen per biome.
package custom

import (
	"fmt"
	"log/slog"

	"github.com/go-theft-craft/cubicchunks/pkg/gamedata"
	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic/replacer"
	"github.com/go-theft-craft/cubicchunks/pkg/world/gen"
)

// HeightSource reports the topmost terrain block of a column.
type HeightSource interface {
	HeightAt(blockX, blockZ int) int
}

// Generator generates cubes at any height from a height map. Density at block y is
// height+1-y, so the top terrain block has density 1 and the air above it 0.
type Generator struct {
	world   cubic.World
	heights HeightSource
	log     *slog.Logger

	chains   map[byte]replacer.Chain
	fallback replacer.Chain

	biomes []byte
}

var _ cubic.Generator = (*Generator)(nil)

// New builds a replacer chain for every biome in biomes from preset, which must
// have been validated against reg.
func New(w cubic.World, heights HeightSource, biomes gamedata.BiomeRegistry, reg *replacer.Registry, preset *replacer.Preset, log *slog.Logger) (*Generator, error) {
	if log == nil {
		log = slog.Default()
	}
	g := &Generator{
		world:   w,
		heights: heights,
		log:     log,
		chains:  make(map[byte]replacer.Chain),
	}

	for _, b := range biomes.All() {
		chain, err := reg.Create(w, b, preset.ConfigFor(b.Name), preset.Replacers...)
		if err != nil {
			return nil, fmt.Errorf("create replacers for %s: %w", b.Name, err)
		}
		g.chains[byte(b.ID)] = chain
	}

	fallback, err := reg.Create(w, gamedata.Biome{Name: "unknown"}, preset.Options, preset.Replacers...)
	if err != nil {
		return nil, fmt.Errorf("create fallback replacers: %w", err)
	}
	g.fallback = fallback

	log.Info("custom cubic generator ready", "biomes", len(g.chains), "replacers", len(preset.Replacers))
	return g, nil
}

func (g *Generator) chain(biome byte) replacer.Chain {
	if c, ok := g.chains[biome]; ok {
		return c
	}
	return g.fallback
}

func (g *Generator) GenerateColumn(c *cubic.Column) {
	g.biomes = g.world.BiomeSource().Biomes(g.biomes,
		cubic.CubeToMinBlock(c.X), cubic.CubeToMinBlock(c.Z),
		cubic.CubeSize, cubic.CubeSize)

	for i := range c.Biomes {
		c.Biomes[i] = g.biomes[i]
	}
}

func (g *Generator) RecreateColumnStructures(*cubic.Column) {}

func (g *Generator) GenerateCube(cubeX, cubeY, cubeZ int) *cubic.Primer {
	p := cubic.NewPrimer()
	minX, minY, minZ := cubic.CubeToMinBlock(cubeX), cubic.CubeToMinBlock(cubeY), cubic.CubeToMinBlock(cubeZ)

	g.biomes = g.world.BiomeSource().Biomes(g.biomes, minX, minZ, cubic.CubeSize, cubic.CubeSize)

	for x := 0; x < cubic.CubeSize; x++ {
		for z := 0; z < cubic.CubeSize; z++ {
			bx, bz := minX+x, minZ+z
			h := g.heights.HeightAt(bx, bz)
			dx := float64(g.heights.HeightAt(bx+1, bz) - h)
			dz := float64(g.heights.HeightAt(bx, bz+1) - h)
			chain := g.chain(g.biomes[z*cubic.CubeSize+x])

			for y := 0; y < cubic.CubeSize; y++ {
				by := minY + y
				density := float64(h + 1 - by)
				p.SetBlock(x, y, z, chain.Replace(block.Air, bx, by, bz, dx, -1, dz, density))
			}
		}
	}
	return p
}

// Populate only marks the cube; the generator places no decorations.
func (g *Generator) Populate(c *cubic.Cube) {
	c.SetPopulated(true)
}

func (g *Generator) PopulationRequirement(*cubic.Cube) cubic.Box {
	return cubic.NoRequirement
}

func (g *Generator) RecreateCubeStructures(*cubic.Cube) {}

func (g *Generator) PossibleCreatures(kind gen.CreatureType, pos block.Pos) []gen.SpawnEntry {
	b := g.world.BiomeSource().Biomes(nil, pos.X, pos.Z, 1, 1)
	return gen.SpawnsFor(b[0], kind)
}

func (g *Generator) ClosestStructure(string, block.Pos) (block.Pos, bool) {
	return block.Pos{}, false
}
