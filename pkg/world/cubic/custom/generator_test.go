package custom

import (
	"testing"

	"github.com/go-theft-craft/cubicchunks/pkg/gamedata/versions/pc_1_8"
	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic/replacer"
	"github.com/go-theft-craft/cubicchunks/pkg/world/gen"
)

type flatHeight int

func (h flatHeight) HeightAt(int, int) int { return int(h) }

type biomeWorld struct {
	biomes cubic.BiomeSource
}

func (w biomeWorld) Block(int, int, int) block.State { return block.Air }
func (w biomeWorld) SetBlock(int, int, int, block.State) {}
func (w biomeWorld) Cube(x, y, z int) *cubic.Cube { return cubic.NewCube(cubic.CubePos{X: x, Y: y, Z: z}, nil) }
func (w biomeWorld) Dimension() cubic.Dimension { return cubic.Overworld }
func (w biomeWorld) BiomeSource() cubic.BiomeSource { return w.biomes }

const preset = `
replacers: [terrain_shape, surface, ocean_water]
options:
  water_level: 63
`

func newTestGenerator(t *testing.T, height int, biome byte) *Generator {
	t.Helper()
	reg := replacer.Default()
	p, err := replacer.ParsePreset([]byte(preset))
	if err != nil {
		t.Fatal(err)
	}
	data := pc_1_8.New()
	if err := p.Validate(reg, data.Blocks); err != nil {
		t.Fatal(err)
	}
	g, err := New(biomeWorld{biomes: gen.FixedBiome(biome)}, flatHeight(height), data.Biomes, reg, p, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestGenerateCubeLayers(t *testing.T) {
	g := newTestGenerator(t, 70, gen.BiomePlains)

	// Cube y=4 spans blocks 64..79; height 70 is local y=6.
	p := g.GenerateCube(0, 4, 0)
	want := map[int]block.State{
		0:  block.Stone,
		2:  block.Stone,
		3:  block.Dirt,
		5:  block.Dirt,
		6:  block.Grass,
		7:  block.Air,
		15: block.Air,
	}
	for y, s := range want {
		if got := p.Block(3, y, 9); got != s {
			t.Errorf("Block(3,%d,9) = %v, want %v", y, got, s)
		}
	}

	if deep := g.GenerateCube(0, -10, 0); deep.Block(0, 0, 0) != block.Stone {
		t.Errorf("deep cube = %v, want stone", deep.Block(0, 0, 0))
	}
	if sky := g.GenerateCube(0, 30, 0); !sky.IsEmpty() {
		t.Error("sky cube should be empty")
	}
}

func TestGenerateCubeOcean(t *testing.T) {
	g := newTestGenerator(t, 40, gen.BiomeOcean)
	p := g.GenerateCube(2, 3, -1)

	// Blocks 48..63: all above the sea floor at 40, water up to 62.
	if got := p.Block(0, 0, 0); got != block.Water {
		t.Errorf("y=48 = %v, want water", got)
	}
	if got := p.Block(0, 14, 0); got != block.Water {
		t.Errorf("y=62 = %v, want water", got)
	}
	if got := p.Block(0, 15, 0); got != block.Air {
		t.Errorf("y=63 = %v, want air", got)
	}

	floor := g.GenerateCube(2, 2, -1)
	if got := floor.Block(0, 8, 0); got != block.Gravel {
		t.Errorf("sea floor = %v, want gravel", got)
	}
}

func TestGenerateColumnAndCreatures(t *testing.T) {
	g := newTestGenerator(t, 70, gen.BiomeDesert)
	c := cubic.NewColumn(5, 5)
	g.GenerateColumn(c)
	if c.Biomes[0] != gen.BiomeDesert || c.Biomes[255] != gen.BiomeDesert {
		t.Errorf("column biomes = %d..%d", c.Biomes[0], c.Biomes[255])
	}

	got := g.PossibleCreatures(gen.Monster, block.Pos{X: 1, Y: 70, Z: 1})
	if want := gen.SpawnsFor(gen.BiomeDesert, gen.Monster); len(got) != len(want) {
		t.Errorf("PossibleCreatures = %d entries, want %d", len(got), len(want))
	}
	if g.PopulationRequirement(nil) != cubic.NoRequirement {
		t.Error("custom generator should not require neighbours")
	}
}
