package replacer

import (
	"math"

	"github.com/go-theft-craft/cubicchunks/pkg/gamedata"
	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
	"github.com/go-theft-craft/cubicchunks/pkg/world/gen"
)

// Keys of the built-in providers.
var (
	TerrainShape = NewKey(DefaultNamespace, "terrain_shape")
	SurfaceKey   = NewKey(DefaultNamespace, "surface")
	OceanWater   = NewKey(DefaultNamespace, "ocean_water")
	Passthrough  = NewKey(DefaultNamespace, "passthrough")
)

// Options read by the built-in providers.
var (
	WaterLevel  = ConfigOptionInfo{Key: NewKey(DefaultNamespace, "water_level"), Kind: KindInt, Default: 63}
	FillerDepth = ConfigOptionInfo{Key: NewKey(DefaultNamespace, "filler_depth"), Kind: KindInt, Default: 4}
	OceanBlock  = ConfigOptionInfo{Key: NewKey(DefaultNamespace, "ocean_block"), Kind: KindBlock, Default: block.Water}
)

// Default returns a Registry holding the built-in providers.
func Default() *Registry {
	r := NewRegistry()
	for k, p := range map[Key]Provider{
		TerrainShape: Of(terrainShape),
		SurfaceKey:   WithOptions(surface, WaterLevel, FillerDepth),
		OceanWater:   WithOptions(oceanWater, WaterLevel, OceanBlock),
		Passthrough:  Constant(ReplacerFunc(passthrough)),
	} {
		if err := r.Register(k, p); err != nil {
			panic(err)
		}
	}
	return r
}

func terrainShape(cubic.World, gamedata.Biome, Config) Replacer {
	return ReplacerFunc(func(_ block.State, _, _, _ int, _, _, _, density float64) block.State {
		if density > 0 {
			return block.Stone
		}
		return block.Air
	})
}

// surface covers stone with the biome's top and filler blocks. The depth below the
// surface is estimated from density and its vertical gradient.
func surface(_ cubic.World, b gamedata.Biome, conf Config) Replacer {
	s := gen.SurfaceFor(byte(b.ID))
	waterLevel := conf.Int(WaterLevel)
	fillerDepth := conf.Int(FillerDepth)

	return ReplacerFunc(func(prev block.State, _, y, _ int, _, dy, _, density float64) block.State {
		if prev != block.Stone || dy >= 0 || density <= 0 {
			return prev
		}
		depth := int(math.Ceil(density/-dy)) - 1
		switch {
		case depth == 0 && y >= waterLevel-1:
			return s.Top
		case depth == 0:
			return s.Underwater
		case depth < fillerDepth:
			return s.Filler
		case depth == fillerDepth && s.Bottom != block.Air:
			return s.Bottom
		}
		return prev
	})
}

func oceanWater(_ cubic.World, _ gamedata.Biome, conf Config) Replacer {
	waterLevel := conf.Int(WaterLevel)
	ocean := conf.Block(OceanBlock)

	return ReplacerFunc(func(prev block.State, _, y, _ int, _, _, _, _ float64) block.State {
		if prev == block.Air && y < waterLevel {
			return ocean
		}
		return prev
	})
}

func passthrough(prev block.State, _, _, _ int, _, _, _, _ float64) block.State {
	return prev
}
