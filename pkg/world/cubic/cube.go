package cubic

import "github.com/go-theft-craft/cubicchunks/pkg/world/block"

// Cube is a generated 16×16×16 cube held by a world.
type Cube struct {
	pos       CubePos
	blocks    *Primer
	populated bool
}

// NewCube wraps the blocks of a generated cube. A nil primer is treated as air.
func NewCube(pos CubePos, blocks *Primer) *Cube {
	if blocks == nil {
		blocks = NewPrimer()
	}
	return &Cube{pos: pos, blocks: blocks}
}

func (c *Cube) Pos() CubePos { return c.pos }
func (c *Cube) X() int       { return c.pos.X }
func (c *Cube) Y() int       { return c.pos.Y }
func (c *Cube) Z() int       { return c.pos.Z }

// Blocks returns the cube's block storage.
func (c *Cube) Blocks() *Primer { return c.blocks }

// Block returns the block at local coordinates.
func (c *Cube) Block(x, y, z int) block.State { return c.blocks.Block(x, y, z) }

// SetBlock sets the block at local coordinates.
func (c *Cube) SetBlock(x, y, z int, s block.State) { c.blocks.SetBlock(x, y, z, s) }

// Populated reports whether the cube has been decorated.
func (c *Cube) Populated() bool { return c.populated }

// SetPopulated marks the cube as decorated or not.
func (c *Cube) SetPopulated(v bool) { c.populated = v }

// Column is the per-column data shared by every cube stacked at (X, Z).
type Column struct {
	X, Z   int
	Biomes [256]byte // index = z*16 + x
}

// NewColumn returns an empty column at (x, z).
func NewColumn(x, z int) *Column {
	return &Column{X: x, Z: z}
}

// Pos returns the column's position.
func (c *Column) Pos() ColumnPos { return ColumnPos{X: c.X, Z: c.Z} }
