package gen

import "github.com/go-theft-craft/cubicchunks/pkg/world/block"

// Surface describes the blocks capping the stone of a biome: Top is the exposed
// block, Filler sits below it for Depth-1 more blocks. Underwater is used in place
// of Top when the surface is below sea level.
type Surface struct {
	Top        block.State
	Filler     block.State
	Underwater block.State
	Depth      int
	// Bottom is placed directly under the filler, if set.
	Bottom block.State
}

var defaultSurface = Surface{Top: block.Grass, Filler: block.Dirt, Underwater: block.Dirt, Depth: 4}

// SurfaceFor returns the surface layers of a biome.
func SurfaceFor(biome byte) Surface {
	switch biome {
	case BiomeDesert:
		return Surface{Top: block.Sand, Filler: block.Sand, Underwater: block.Sand, Depth: 4, Bottom: block.Sandstone}
	case BiomeBeach:
		return Surface{Top: block.Sand, Filler: block.Sand, Underwater: block.Sand, Depth: 4, Bottom: block.Sandstone}
	case BiomeOcean:
		return Surface{Top: block.Gravel, Filler: block.Gravel, Underwater: block.Gravel, Depth: 3, Bottom: block.Dirt}
	case BiomeHell:
		return Surface{Top: block.Netherrack, Filler: block.Netherrack, Underwater: block.Netherrack, Depth: 1}
	default:
		return defaultSurface
	}
}

// applySurface places the biome-specific surface blocks on top of the stone column.
func applySurface(c *ChunkData, x, z, height int, biome byte) {
	if height <= 3 {
		return
	}
	s := SurfaceFor(biome)
	// Bare stone peaks on high mountains.
	if biome == BiomeMountains && height > 100 {
		return
	}

	top := s.Top
	if height <= seaLevel {
		top = s.Underwater
	}
	c.SetBlock(x, height, z, top)
	for y := height - 1; y > height-s.Depth && y > 3; y-- {
		c.SetBlock(x, y, z, s.Filler)
	}
	if s.Bottom != block.Air && height-s.Depth > 3 {
		c.SetBlock(x, height-s.Depth, z, s.Bottom)
	}
}
