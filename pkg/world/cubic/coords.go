package cubic

const (
	// CubeSize is the edge length of a cube in blocks.
	CubeSize = 16
	// LegacyMinCubeY and LegacyMaxCubeY bound the cubes that overlap a 256-block
	// legacy column.
	LegacyMinCubeY = 0
	LegacyMaxCubeY = 15
)

// CubeToMinBlock returns the lowest block coordinate inside cube coordinate c.
func CubeToMinBlock(c int) int { return c << 4 }

// BlockToCube returns the cube coordinate containing block coordinate b.
func BlockToCube(b int) int { return b >> 4 }

// BlockToLocal returns the position of block coordinate b inside its cube.
func BlockToLocal(b int) int { return b & 15 }

// InLegacyRange reports whether cubeY overlaps the legacy column height.
func InLegacyRange(cubeY int) bool {
	return cubeY >= LegacyMinCubeY && cubeY <= LegacyMaxCubeY
}

// CubePos identifies a cube.
type CubePos struct{ X, Y, Z int }

// Column returns the position of the column the cube belongs to.
func (p CubePos) Column() ColumnPos { return ColumnPos{X: p.X, Z: p.Z} }

// Add returns p offset by (dx, dy, dz).
func (p CubePos) Add(dx, dy, dz int) CubePos {
	return CubePos{p.X + dx, p.Y + dy, p.Z + dz}
}

// ColumnPos identifies a column of cubes.
type ColumnPos struct{ X, Z int }
