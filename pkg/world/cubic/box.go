package cubic

// Box is an inclusive range of cube offsets relative to some cube.
type Box struct {
	MinX, MinY, MinZ int
	MaxX, MaxY, MaxZ int
}

// NoRequirement is the population requirement of a cube that needs nothing but
// itself to be generated before it can be populated.
var NoRequirement = Box{}

// ForEach calls fn for every offset in the box, X outermost.
func (b Box) ForEach(fn func(dx, dy, dz int)) {
	for x := b.MinX; x <= b.MaxX; x++ {
		for y := b.MinY; y <= b.MaxY; y++ {
			for z := b.MinZ; z <= b.MaxZ; z++ {
				fn(x, y, z)
			}
		}
	}
}

// Volume returns the number of offsets in the box.
func (b Box) Volume() int {
	return (b.MaxX - b.MinX + 1) * (b.MaxY - b.MinY + 1) * (b.MaxZ - b.MinZ + 1)
}
