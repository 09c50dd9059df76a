package world

import (
	"log/slog"
	"testing"

	"github.com/go-theft-craft/cubicchunks/internal/server/storage"
	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic/compat"
	"github.com/go-theft-craft/cubicchunks/pkg/world/gen"
)

func newFlatWorld(t *testing.T, store Store) *World {
	t.Helper()
	legacy := gen.NewClassicFlatGenerator()
	w, err := New(Config{Dimension: cubic.Overworld, Biomes: legacy, Store: store}, func(w cubic.World) (cubic.Generator, error) {
		return compat.New(legacy, w)
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestWorldFlatTerrain(t *testing.T) {
	w := newFlatWorld(t, nil)

	tests := []struct {
		x, y, z int
		want    block.State
	}{
		{0, 0, 0, block.Stone}, // bedrock floor stripped
		{0, 1, 0, block.Stone},
		{0, 3, 0, block.Dirt},
		{0, 4, 0, block.Grass},
		{5, 64, 10, block.Air},
		{-3, -40, 7, block.Stone},
		{100, 300, -100, block.Air},
	}
	for _, tt := range tests {
		if got := w.Block(tt.x, tt.y, tt.z); got != tt.want {
			t.Errorf("Block(%d,%d,%d) = %v, want %v", tt.x, tt.y, tt.z, got, tt.want)
		}
	}
}

func TestWorldSetBlock(t *testing.T) {
	w := newFlatWorld(t, nil)

	w.SetBlock(3, 10, 5, block.Glowstone)
	if got := w.Block(3, 10, 5); got != block.Glowstone {
		t.Errorf("Block(3,10,5) = %v, want glowstone", got)
	}
	w.SetBlock(-1, -1, -1, block.Air)
	if got := w.Block(-1, -1, -1); got != block.Air {
		t.Errorf("Block(-1,-1,-1) = %v, want air", got)
	}
	if got := w.Cube(-1, -1, -1).Block(15, 15, 15); got != block.Air {
		t.Errorf("cube-local block = %v, want air", got)
	}
}

func TestWorldColumnBiomes(t *testing.T) {
	w := newFlatWorld(t, nil)
	c := w.Column(4, -9)
	for i, b := range c.Biomes {
		if b != gen.BiomePlains {
			t.Fatalf("Biomes[%d] = %d, want plains", i, b)
		}
	}
	if w.Column(4, -9) != c {
		t.Error("Column should return the same column on the second call")
	}
}

func TestWorldGeneratesLegacyColumnOnce(t *testing.T) {
	w := newFlatWorld(t, nil)
	w.Cube(2, 7, 2)
	columns, cubes := w.Loaded()
	if columns != 1 || cubes != 16 {
		t.Errorf("Loaded() = %d columns, %d cubes, want 1, 16", columns, cubes)
	}
}

// recordingGen generates air and records its calls.
type recordingGen struct {
	w         *World
	req       cubic.Box
	generated []cubic.CubePos
	populated []cubic.CubePos
	recreated []cubic.CubePos
	columns   int
	missing   []cubic.CubePos
}

func (g *recordingGen) GenerateColumn(c *cubic.Column) {
	g.columns++
	for i := range c.Biomes {
		c.Biomes[i] = gen.BiomeForest
	}
}

func (g *recordingGen) RecreateColumnStructures(*cubic.Column) {}

func (g *recordingGen) GenerateCube(x, y, z int) *cubic.Primer {
	g.generated = append(g.generated, cubic.CubePos{X: x, Y: y, Z: z})
	return nil
}

func (g *recordingGen) Populate(c *cubic.Cube) {
	g.req.ForEach(func(dx, dy, dz int) {
		pos := c.Pos().Add(dx, dy, dz)
		g.w.mu.RLock()
		_, ok := g.w.cubes[pos]
		g.w.mu.RUnlock()
		if !ok {
			g.missing = append(g.missing, pos)
		}
	})
	g.populated = append(g.populated, c.Pos())
}

func (g *recordingGen) PopulationRequirement(*cubic.Cube) cubic.Box { return g.req }

func (g *recordingGen) RecreateCubeStructures(c *cubic.Cube) {
	g.recreated = append(g.recreated, c.Pos())
}

func (g *recordingGen) PossibleCreatures(gen.CreatureType, block.Pos) []gen.SpawnEntry { return nil }

func (g *recordingGen) ClosestStructure(string, block.Pos) (block.Pos, bool) {
	return block.Pos{}, false
}

func newRecordingWorld(t *testing.T, store Store, req cubic.Box) (*World, *recordingGen) {
	t.Helper()
	rg := &recordingGen{req: req}
	w, err := New(Config{Biomes: gen.FixedBiome(gen.BiomeForest), Store: store, Log: slog.Default()}, func(cubic.World) (cubic.Generator, error) {
		return rg, nil
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rg.w = w
	return w, rg
}

func TestPopulateCubeHonoursRequirement(t *testing.T) {
	req := cubic.Box{MinX: -1, MinY: -1, MinZ: -1, MaxX: 0, MaxY: 1, MaxZ: 0}
	w, rg := newRecordingWorld(t, nil, req)

	w.PopulateCube(5, 5, 5)
	if len(rg.missing) != 0 {
		t.Errorf("populated before cubes %v were generated", rg.missing)
	}
	if len(rg.generated) != req.Volume() {
		t.Errorf("generated %d cubes, want %d", len(rg.generated), req.Volume())
	}
	if !w.Cube(5, 5, 5).Populated() {
		t.Error("cube should be marked populated")
	}

	w.PopulateCube(5, 5, 5)
	if len(rg.populated) != 1 {
		t.Errorf("Populate called %d times, want 1", len(rg.populated))
	}
}

func TestSaveAndReload(t *testing.T) {
	store, err := storage.Open(t.TempDir(), slog.Default())
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	w, rg := newRecordingWorld(t, store, cubic.NoRequirement)
	w.SetBlock(17, -3, 33, block.DiamondOre)
	w.PopulateCube(1, -1, 2)
	if err := w.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if rg.columns != 1 {
		t.Fatalf("generated %d columns, want 1", rg.columns)
	}

	w2, rg2 := newRecordingWorld(t, store, cubic.NoRequirement)
	if got := w2.Block(17, -3, 33); got != block.DiamondOre {
		t.Errorf("reloaded block = %v, want diamond ore", got)
	}
	if !w2.Cube(1, -1, 2).Populated() {
		t.Error("populated flag lost on reload")
	}
	if len(rg2.generated) != 0 || rg2.columns != 0 {
		t.Errorf("reload generated %d cubes and %d columns, want none", len(rg2.generated), rg2.columns)
	}
	if len(rg2.recreated) != 1 {
		t.Errorf("recreated structures of %d cubes, want 1", len(rg2.recreated))
	}
	if c := w2.Column(1, 2); c.Biomes[0] != gen.BiomeForest {
		t.Errorf("reloaded column biome = %d, want forest", c.Biomes[0])
	}
}

func TestSaveWithoutStore(t *testing.T) {
	w, _ := newRecordingWorld(t, nil, cubic.NoRequirement)
	w.Cube(0, 0, 0)
	if err := w.Save(); err != nil {
		t.Errorf("Save without store = %v", err)
	}
}
