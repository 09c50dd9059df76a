package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-theft-craft/cubicchunks/pkg/gamedata"
	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
)

// FlatLayer is Count consecutive blocks of State, stacked from the bottom up.
type FlatLayer struct {
	State block.State
	Count int
}

// Layer presets in the format accepted by ParseFlatLayers.
const (
	ClassicFlatPreset = "bedrock,2*stone,dirt,grass"
	NetherFlatPreset  = "bedrock,40*netherrack,soul_sand"
)

// ParseFlatLayers parses a comma-separated bottom-to-top layer list such as
// "bedrock,2*stone,dirt,grass". Block references are resolved through reg.
func ParseFlatLayers(reg gamedata.BlockRegistry, preset string) ([]FlatLayer, error) {
	var layers []FlatLayer
	total := 0
	for _, part := range strings.Split(preset, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		count := 1
		ref := part
		if n, rest, ok := strings.Cut(part, "*"); ok {
			c, err := strconv.Atoi(strings.TrimSpace(n))
			if err != nil || c < 1 {
				return nil, fmt.Errorf("invalid layer count in %q", part)
			}
			count, ref = c, rest
		}
		state, err := gamedata.ParseState(reg, ref)
		if err != nil {
			return nil, fmt.Errorf("parse layer %q: %w", part, err)
		}
		total += count
		if total > ChunkHeight {
			return nil, fmt.Errorf("layers exceed %d blocks", ChunkHeight)
		}
		layers = append(layers, FlatLayer{State: state, Count: count})
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("no layers in preset %q", preset)
	}
	return layers, nil
}

// FlatGenerator generates a superflat world out of fixed layers under a single biome.
type FlatGenerator struct {
	layers []FlatLayer
	biome  byte
	height int
}

// NewFlatGenerator creates a FlatGenerator stacking layers under biome.
func NewFlatGenerator(layers []FlatLayer, biome byte) *FlatGenerator {
	height := -1
	for _, l := range layers {
		height += l.Count
	}
	return &FlatGenerator{layers: layers, biome: biome, height: height}
}

// NewClassicFlatGenerator creates the classic superflat layout:
// bedrock at y=0, stone y=1..2, dirt y=3, grass y=4.
func NewClassicFlatGenerator() *FlatGenerator {
	return NewFlatGenerator([]FlatLayer{
		{block.Bedrock, 1},
		{block.Stone, 2},
		{block.Dirt, 1},
		{block.Grass, 1},
	}, BiomePlains)
}

func (g *FlatGenerator) Generate(chunkX, chunkZ int) *ChunkData {
	c := NewChunkData(chunkX, chunkZ)

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			y := 0
			for _, l := range g.layers {
				for range l.Count {
					c.SetBlock(x, y, z, l.State)
					y++
				}
			}
			c.SetBiome(x, z, g.biome)
		}
	}
	return c
}

func (g *FlatGenerator) HeightAt(_, _ int) int {
	return g.height
}

// Biomes reports the generator's single biome for every position.
func (g *FlatGenerator) Biomes(dst []byte, x, z, width, depth int) []byte {
	return FixedBiome(g.biome).Biomes(dst, x, z, width, depth)
}

// Populate does nothing: flat worlds are not decorated.
func (g *FlatGenerator) Populate(block.Access, int, int) {}

func (g *FlatGenerator) RecreateStructures(*ChunkData, int, int) {}

func (g *FlatGenerator) PossibleCreatures(kind CreatureType, _ block.Pos) []SpawnEntry {
	return SpawnsFor(g.biome, kind)
}

func (g *FlatGenerator) ClosestStructure(string, block.Pos) (block.Pos, bool) {
	return block.Pos{}, false
}
