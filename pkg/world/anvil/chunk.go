package anvil

import (
	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
	"github.com/go-theft-craft/cubicchunks/pkg/world/nbt"
)

// Column is the legacy range of one cubic column: Cubes[i] is the cube at Y=i.
// Nil or empty cubes are left out of the chunk.
type Column struct {
	Column *cubic.Column
	Cubes  [cubic.LegacyMaxCubeY + 1]*cubic.Cube
}

// populated reports whether every present cube has been populated.
func (c *Column) populated() bool {
	found := false
	for _, cube := range c.Cubes {
		if cube == nil {
			continue
		}
		if !cube.Populated() {
			return false
		}
		found = true
	}
	return found
}

// Encode returns the column as an uncompressed 1.8 chunk NBT document.
func (c *Column) Encode() ([]byte, error) {
	var sections []*cubic.Cube
	for _, cube := range c.Cubes {
		if cube != nil && !cube.Blocks().IsEmpty() {
			sections = append(sections, cube)
		}
	}

	var populated byte
	if c.populated() {
		populated = 1
	}

	e := nbt.NewEncoder(len(sections)*12*1024)
	e.Compound("", func() {
		e.Compound("Level", func() {
			e.Int("xPos", int32(c.Column.X))
			e.Int("zPos", int32(c.Column.Z))
			e.Byte("TerrainPopulated", populated)
			e.Long("LastUpdate", 0)
			e.CompoundList("Sections", len(sections), func(i int) {
				writeSection(e, sections[i])
			})
			e.ByteArray("Biomes", c.Column.Biomes[:])
			e.IntArray("HeightMap", c.heightMap())
		})
	})
	return e.Bytes()
}

func writeSection(e *nbt.Encoder, cube *cubic.Cube) {
	const volume = cubic.CubeSize * cubic.CubeSize * cubic.CubeSize

	blocks := make([]byte, volume)
	data := make([]byte, volume/2)
	var add []byte
	for i, s := range cube.Blocks().Raw() {
		id := s.ID()
		blocks[i] = byte(id)
		setNibble(data, i, byte(s.Meta()))
		if id > 0xFF {
			if add == nil {
				add = make([]byte, volume/2)
			}
			setNibble(add, i, byte(id>>8))
		}
	}

	e.Byte("Y", byte(cube.Y()))
	e.ByteArray("Blocks", blocks)
	if add != nil {
		e.ByteArray("Add", add)
	}
	e.ByteArray("Data", data)
	e.ByteArray("BlockLight", fullLight)
	e.ByteArray("SkyLight", fullLight)
}

var fullLight = func() []byte {
	b := make([]byte, cubic.CubeSize*cubic.CubeSize*cubic.CubeSize/2)
	for i := range b {
		b[i] = 0xFF
	}
	return b
}()

// setNibble sets the 4-bit value at index i; even indices use the low nibble.
func setNibble(arr []byte, i int, v byte) {
	if i%2 == 0 {
		arr[i/2] = arr[i/2]&0xF0 | v&0x0F
	} else {
		arr[i/2] = arr[i/2]&0x0F | v<<4
	}
}

// heightMap holds, per x,z, one above the highest non-air block.
func (c *Column) heightMap() []int32 {
	hm := make([]int32, cubic.CubeSize*cubic.CubeSize)
	for z := 0; z < cubic.CubeSize; z++ {
		for x := 0; x < cubic.CubeSize; x++ {
			hm[z*cubic.CubeSize+x] = c.top(x, z)
		}
	}
	return hm
}

func (c *Column) top(x, z int) int32 {
	for cy := len(c.Cubes) - 1; cy >= 0; cy-- {
		cube := c.Cubes[cy]
		if cube == nil {
			continue
		}
		for y := cubic.CubeSize - 1; y >= 0; y-- {
			if cube.Block(x, y, z) != block.Air {
				return int32(cubic.CubeToMinBlock(cy) + y + 1)
			}
		}
	}
	return 0
}
