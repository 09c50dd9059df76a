package cubic

import "github.com/go-theft-craft/cubicchunks/pkg/world/block"

// Primer holds the blocks of one cube while it is generated. The zero value is a
// cube full of air. Index = y*256 + z*16 + x, matching legacy sections.
type Primer struct {
	blocks [CubeSize * CubeSize * CubeSize]block.State
}

// NewPrimer returns an all-air primer.
func NewPrimer() *Primer {
	return &Primer{}
}

// Block returns the block at local coordinates.
func (p *Primer) Block(x, y, z int) block.State {
	return p.blocks[y*256+z*16+x]
}

// SetBlock sets the block at local coordinates.
func (p *Primer) SetBlock(x, y, z int, s block.State) {
	p.blocks[y*256+z*16+x] = s
}

// Fill sets every block of the primer to s.
func (p *Primer) Fill(s block.State) {
	for i := range p.blocks {
		p.blocks[i] = s
	}
}

// IsEmpty reports whether the primer holds nothing but air.
func (p *Primer) IsEmpty() bool {
	for _, b := range p.blocks {
		if b != block.Air {
			return false
		}
	}
	return true
}

// Raw exposes the backing array for encoding.
func (p *Primer) Raw() *[CubeSize * CubeSize * CubeSize]block.State {
	return &p.blocks
}
