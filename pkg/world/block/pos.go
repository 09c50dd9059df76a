package block

// Pos is a block position in world coordinates.
type Pos struct {
	X, Y, Z int
}

// Add returns p offset by (dx, dy, dz).
func (p Pos) Add(dx, dy, dz int) Pos {
	return Pos{p.X + dx, p.Y + dy, p.Z + dz}
}

// Access reads and writes blocks in world coordinates. Populators and decorators
// work through it because they may reach outside the column they were started for.
type Access interface {
	Block(x, y, z int) State
	SetBlock(x, y, z int, s State)
}
