package gen

import "github.com/go-theft-craft/cubicchunks/pkg/world/block"

// populationArea returns the block bounds [x0, x0+16) × [z0, z0+16) decorated for
// chunk (chunkX, chunkZ). It is offset by half a chunk so features never need
// columns beyond chunkX+1 and chunkZ+1.
func populationArea(chunkX, chunkZ int) (x0, z0 int) {
	return chunkX*16 + 8, chunkZ*16 + 8
}

// OreGenerator places ore veins in stone using seeded per-chunk RNG.
type OreGenerator struct {
	seed int64
}

// NewOreGenerator creates an OreGenerator from a seed.
func NewOreGenerator(seed int64) *OreGenerator {
	return &OreGenerator{seed: seed}
}

type oreConfig struct {
	block    block.State
	minY     int
	maxY     int
	veinSize int // max blocks per vein
	attempts int // veins per chunk
}

var ores = []oreConfig{
	{block.CoalOre, 0, 128, 12, 20},
	{block.IronOre, 0, 64, 8, 20},
	{block.GoldOre, 0, 32, 8, 2},
	{block.DiamondOre, 0, 16, 6, 1},
	{block.Redstone, 0, 16, 6, 8},
	{block.LapisOre, 0, 32, 6, 1},
}

// Populate scatters ore veins within the population area of the chunk.
func (og *OreGenerator) Populate(w block.Access, chunkX, chunkZ int) {
	rng := newChunkRNG(og.seed, chunkX, chunkZ, 500)
	x0, z0 := populationArea(chunkX, chunkZ)

	for _, ore := range ores {
		for range ore.attempts {
			p := block.Pos{
				X: x0 + rng.nextN(16),
				Y: ore.minY + rng.nextN(ore.maxY-ore.minY),
				Z: z0 + rng.nextN(16),
			}
			og.placeVein(w, p, x0, z0, ore, rng)
		}
	}
}

func (og *OreGenerator) placeVein(w block.Access, p block.Pos, x0, z0 int, ore oreConfig, rng *chunkRNG) {
	for range ore.veinSize {
		inArea := p.X >= x0 && p.X < x0+16 && p.Z >= z0 && p.Z < z0+16
		if inArea && p.Y >= 1 && p.Y < ChunkHeight && w.Block(p.X, p.Y, p.Z) == block.Stone {
			w.SetBlock(p.X, p.Y, p.Z, ore.block)
		}

		switch rng.nextN(6) {
		case 0:
			p.X++
		case 1:
			p.X--
		case 2:
			p.Y++
		case 3:
			p.Y--
		case 4:
			p.Z++
		case 5:
			p.Z--
		}
	}
}

// TreeGenerator places trees per biome.
type TreeGenerator struct {
	seed int64
}

// NewTreeGenerator creates a TreeGenerator from a seed.
func NewTreeGenerator(seed int64) *TreeGenerator {
	return &TreeGenerator{seed: seed}
}

// Populate places trees on grass inside the population area of the chunk.
func (tg *TreeGenerator) Populate(w block.Access, biomes *BiomeGenerator, chunkX, chunkZ int) {
	rng := newChunkRNG(tg.seed, chunkX, chunkZ, 600)
	x0, z0 := populationArea(chunkX, chunkZ)

	count := treesForBiome(biomes.BiomeAt(x0+8, z0+8))
	for range count {
		x := x0 + rng.nextN(16)
		z := z0 + rng.nextN(16)
		y := surfaceY(w, x, z)
		if y <= seaLevel || y >= 240 || w.Block(x, y, z) != block.Grass {
			continue
		}
		placeTree(w, block.Pos{X: x, Y: y + 1, Z: z}, woodFor(biomes.BiomeAt(x, z), rng), rng)
	}
}

// surfaceY returns the Y of the highest non-air block, or -1.
func surfaceY(w block.Access, x, z int) int {
	for y := ChunkHeight - 1; y >= 0; y-- {
		if w.Block(x, y, z) != block.Air {
			return y
		}
	}
	return -1
}

func treesForBiome(biome byte) int {
	switch biome {
	case BiomeDesert, BiomeOcean, BiomeBeach, BiomeHell:
		return 0
	case BiomePlains, BiomeSavanna:
		return 1
	case BiomeTundra, BiomeSnowyTaiga:
		return 4
	case BiomeTaiga:
		return 6
	case BiomeForest:
		return 8
	case BiomeDarkForest:
		return 10
	case BiomeJungle:
		return 12
	default:
		return 2
	}
}

func woodFor(biome byte, rng *chunkRNG) int {
	switch biome {
	case BiomeTaiga, BiomeSnowyTaiga:
		return block.WoodSpruce
	case BiomeForest, BiomeDarkForest:
		if rng.nextN(3) == 0 {
			return block.WoodBirch
		}
		return block.WoodOak
	case BiomeJungle:
		return block.WoodJungle
	default:
		return block.WoodOak
	}
}

// placeTree grows a trunk from base and a leaf canopy around its top. Spruce gets a
// taller, narrower canopy.
func placeTree(w block.Access, base block.Pos, wood int, rng *chunkRNG) {
	trunk := 4 + rng.nextN(3)
	canopy, radius := 4, 2
	if wood == block.WoodSpruce {
		trunk = 6 + rng.nextN(3)
		canopy, radius = 6, 1
	}
	if base.Y+trunk+2 >= ChunkHeight {
		return
	}

	for dy := range trunk {
		w.SetBlock(base.X, base.Y+dy, base.Z, block.Log|block.State(wood))
	}

	top := base.Y + trunk
	for dy := -canopy + 2; dy <= 1; dy++ {
		r := radius
		if dy > -1 {
			r = 1
		}
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= r; dz++ {
				// Trim corners for a rounder shape.
				if r == 2 && abs(dx) == 2 && abs(dz) == 2 && rng.nextN(2) == 0 {
					continue
				}
				y := top + dy
				if w.Block(base.X+dx, y, base.Z+dz) == block.Air {
					w.SetBlock(base.X+dx, y, base.Z+dz, block.Leaves|block.State(wood))
				}
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
