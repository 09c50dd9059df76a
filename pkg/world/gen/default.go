package gen

import (
	"sync"

	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
)

// DefaultGenerator produces vanilla-like terrain with biomes, ores and trees.
type DefaultGenerator struct {
	seed     int64
	terrain  *Simplex
	detail   *Simplex
	biomeGen *BiomeGenerator
	oreGen   *OreGenerator
	treeGen  *TreeGenerator

	strongholdsOnce sync.Once
	strongholds     []block.Pos
}

// NewDefaultGenerator creates a DefaultGenerator from a seed.
func NewDefaultGenerator(seed int64) *DefaultGenerator {
	return &DefaultGenerator{
		seed:     seed,
		terrain:  NewSimplex(seed),
		detail:   NewSimplex(seed + 1),
		biomeGen: NewBiomeGenerator(seed),
		oreGen:   NewOreGenerator(seed),
		treeGen:  NewTreeGenerator(seed),
	}
}

// BiomeSource returns the biome generator the terrain is shaped by.
func (g *DefaultGenerator) BiomeSource() *BiomeGenerator {
	return g.biomeGen
}

func (g *DefaultGenerator) Generate(chunkX, chunkZ int) *ChunkData {
	c := NewChunkData(chunkX, chunkZ)

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			bx := chunkX*16 + x
			bz := chunkZ*16 + z

			biome := g.biomeGen.BiomeAt(bx, bz)
			c.SetBiome(x, z, biome)
			g.fillColumn(c, x, z, g.terrainHeight(bx, bz, biome), biome)
		}
	}
	return c
}

func (g *DefaultGenerator) HeightAt(blockX, blockZ int) int {
	biome := g.biomeGen.BiomeAt(blockX, blockZ)
	return g.terrainHeight(blockX, blockZ, biome)
}

// Populate places ores and trees in the area offset by 8 blocks from the column,
// writing through w so features may cross into neighbouring columns.
func (g *DefaultGenerator) Populate(w block.Access, chunkX, chunkZ int) {
	g.oreGen.Populate(w, chunkX, chunkZ)
	g.treeGen.Populate(w, g.biomeGen, chunkX, chunkZ)
}

// RecreateStructures makes sure the structure layout is known. The only structures
// are strongholds, whose positions depend on the seed alone.
func (g *DefaultGenerator) RecreateStructures(_ *ChunkData, _, _ int) {
	g.strongholdPositions()
}

func (g *DefaultGenerator) PossibleCreatures(kind CreatureType, pos block.Pos) []SpawnEntry {
	return SpawnsFor(g.biomeGen.BiomeAt(pos.X, pos.Z), kind)
}

func (g *DefaultGenerator) ClosestStructure(name string, pos block.Pos) (block.Pos, bool) {
	if name != StructureStronghold {
		return block.Pos{}, false
	}
	return nearest(g.strongholdPositions(), pos)
}

func (g *DefaultGenerator) strongholdPositions() []block.Pos {
	g.strongholdsOnce.Do(func() {
		g.strongholds = strongholdRing(g.seed)
	})
	return g.strongholds
}

// terrainHeight computes the terrain height at a world block coordinate.
// Different biomes scale noise amplitude differently.
func (g *DefaultGenerator) terrainHeight(bx, bz int, biome byte) int {
	base := g.terrain.Octaves(float64(bx)/128.0, float64(bz)/128.0, 6, 0.5)
	detail := g.detail.Octaves(float64(bx)/32.0, float64(bz)/32.0, 3, 0.5)

	amplitude, baseHeight := biomeTerrainParams(biome)

	h := int(baseHeight + base*amplitude + detail*4.0)
	return min(max(h, 1), 250)
}

// biomeTerrainParams returns (amplitude, baseHeight) for terrain noise scaling.
func biomeTerrainParams(biome byte) (amplitude, baseHeight float64) {
	switch biome {
	case BiomeOcean:
		return 8.0, 40.0
	case BiomePlains, BiomeSavanna:
		return 12.0, seaLevel
	case BiomeForest, BiomeDarkForest, BiomeDesert:
		return 16.0, seaLevel + 2
	case BiomeTaiga, BiomeSnowyTaiga, BiomeJungle:
		return 18.0, seaLevel + 4
	case BiomeMountains:
		return 40.0, seaLevel + 10
	case BiomeBeach:
		return 3.0, seaLevel
	default:
		return 12.0, seaLevel
	}
}

// fillColumn fills a single block column with terrain blocks.
func (g *DefaultGenerator) fillColumn(c *ChunkData, x, z, height int, biome byte) {
	// Bedrock floor: y=0 always, y=1..3 mixed with stone.
	c.SetBlock(x, 0, z, block.Bedrock)
	for y := 1; y <= 3; y++ {
		if g.terrain.At(float64(x+y*7)*0.5, float64(z)*0.5) > 0 {
			c.SetBlock(x, y, z, block.Bedrock)
		} else {
			c.SetBlock(x, y, z, block.Stone)
		}
	}

	for y := 4; y <= height; y++ {
		c.SetBlock(x, y, z, block.Stone)
	}
	applySurface(c, x, z, height, biome)

	for y := height + 1; y <= seaLevel; y++ {
		c.SetBlock(x, y, z, block.Water)
	}
}
