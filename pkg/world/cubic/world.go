package cubic

import "github.com/go-theft-craft/cubicchunks/pkg/world/block"

// Dimension is the kind of world a generator runs in.
type Dimension int

const (
	Overworld Dimension = iota
	Nether
	End
)

func (d Dimension) String() string {
	switch d {
	case Overworld:
		return "overworld"
	case Nether:
		return "nether"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// ParseDimension parses the name returned by Dimension.String.
func ParseDimension(name string) (Dimension, bool) {
	for _, d := range []Dimension{Overworld, Nether, End} {
		if d.String() == name {
			return d, true
		}
	}
	return 0, false
}

// BiomeSource looks up biome IDs for a rectangular block area. The result is
// indexed dz*width + dx; dst is reused when it is large enough.
type BiomeSource interface {
	Biomes(dst []byte, x, z, width, depth int) []byte
}

// World is the view of a cubic world that generators work against.
type World interface {
	block.Access
	// Cube returns the cube at the given cube coordinates, generating it if needed.
	Cube(x, y, z int) *Cube
	Dimension() Dimension
	BiomeSource() BiomeSource
}

// Decorator is a world-level decoration hook run after a column is populated.
type Decorator interface {
	Decorate(w World, chunkX, chunkZ int)
}

// DecoratorFunc adapts a function to Decorator.
type DecoratorFunc func(w World, chunkX, chunkZ int)

func (f DecoratorFunc) Decorate(w World, chunkX, chunkZ int) { f(w, chunkX, chunkZ) }
