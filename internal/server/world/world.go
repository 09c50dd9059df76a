// Package world is an in-process cubic world: it holds generated cubes and columns,
// loads them from a Store when present and schedules population.
package world

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
)

// Store persists cubes and columns. Loads return nil and no error for data that
// was never saved.
type Store interface {
	LoadCube(pos cubic.CubePos) (*cubic.Cube, error)
	LoadColumn(pos cubic.ColumnPos) (*cubic.Column, error)
	SaveAll(columns []*cubic.Column, cubes []*cubic.Cube) error
}

// Config describes a World.
type Config struct {
	Dimension cubic.Dimension
	Biomes    cubic.BiomeSource
	// Store is optional; without one the world lives in memory only.
	Store Store
	Log   *slog.Logger
}

// GeneratorFunc builds the generator of a world. Generators need the world they
// generate for, so it is created by New.
type GeneratorFunc func(w cubic.World) (cubic.Generator, error)

// World implements cubic.World.
//
// Generation runs on the caller's goroutine and re-enters the world, so calls that
// may generate (Cube, Column, Block, SetBlock, PopulateCube) must not be made from
// more than one goroutine at a time. The maps are guarded so Save and the
// read-only accessors may run alongside.
type World struct {
	mu      sync.RWMutex
	cubes   map[cubic.CubePos]*cubic.Cube
	columns map[cubic.ColumnPos]*cubic.Column

	dim    cubic.Dimension
	biomes cubic.BiomeSource
	store  Store
	log    *slog.Logger
	gen    cubic.Generator
}

var _ cubic.World = (*World)(nil)

// New creates a World and its generator.
func New(conf Config, newGen GeneratorFunc) (*World, error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	w := &World{
		cubes:   make(map[cubic.CubePos]*cubic.Cube),
		columns: make(map[cubic.ColumnPos]*cubic.Column),
		dim:     conf.Dimension,
		biomes:  conf.Biomes,
		store:   conf.Store,
		log:     conf.Log,
	}
	g, err := newGen(w)
	if err != nil {
		return nil, fmt.Errorf("create generator: %w", err)
	}
	w.gen = g
	return w, nil
}

func (w *World) Dimension() cubic.Dimension { return w.dim }
func (w *World) BiomeSource() cubic.BiomeSource { return w.biomes }

// Generator returns the world's generator.
func (w *World) Generator() cubic.Generator { return w.gen }

// Column returns the column at (x, z), loading or generating it if needed.
func (w *World) Column(x, z int) *cubic.Column {
	pos := cubic.ColumnPos{X: x, Z: z}

	w.mu.RLock()
	if c, ok := w.columns[pos]; ok {
		w.mu.RUnlock()
		return c
	}
	w.mu.RUnlock()

	c := w.loadColumn(pos)
	if c != nil {
		w.gen.RecreateColumnStructures(c)
	} else {
		c = cubic.NewColumn(x, z)
		w.gen.GenerateColumn(c)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if existing, ok := w.columns[pos]; ok {
		return existing
	}
	w.columns[pos] = c
	return c
}

// Cube returns the cube at the given cube coordinates, loading or generating it
// if needed. The column it belongs to is created first.
func (w *World) Cube(x, y, z int) *cubic.Cube {
	pos := cubic.CubePos{X: x, Y: y, Z: z}

	w.mu.RLock()
	if c, ok := w.cubes[pos]; ok {
		w.mu.RUnlock()
		return c
	}
	w.mu.RUnlock()

	w.Column(x, z)

	c := w.loadCube(pos)
	if c != nil {
		w.gen.RecreateCubeStructures(c)
	} else {
		c = cubic.NewCube(pos, w.gen.GenerateCube(x, y, z))
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	// The generator may have asked for this cube while generating its siblings.
	if existing, ok := w.cubes[pos]; ok {
		return existing
	}
	w.cubes[pos] = c
	return c
}

// loadCube returns the stored cube at pos, or nil. A cube that cannot be read is
// logged and generated again.
func (w *World) loadCube(pos cubic.CubePos) *cubic.Cube {
	if w.store == nil {
		return nil
	}
	c, err := w.store.LoadCube(pos)
	if err != nil {
		w.log.Error("load cube", "pos", pos, "error", err)
		return nil
	}
	return c
}

func (w *World) loadColumn(pos cubic.ColumnPos) *cubic.Column {
	if w.store == nil {
		return nil
	}
	c, err := w.store.LoadColumn(pos)
	if err != nil {
		w.log.Error("load column", "pos", pos, "error", err)
		return nil
	}
	return c
}

// Block returns the block at world coordinates.
func (w *World) Block(x, y, z int) block.State {
	c := w.Cube(cubic.BlockToCube(x), cubic.BlockToCube(y), cubic.BlockToCube(z))
	return c.Block(cubic.BlockToLocal(x), cubic.BlockToLocal(y), cubic.BlockToLocal(z))
}

// SetBlock sets the block at world coordinates.
func (w *World) SetBlock(x, y, z int, s block.State) {
	c := w.Cube(cubic.BlockToCube(x), cubic.BlockToCube(y), cubic.BlockToCube(z))
	c.SetBlock(cubic.BlockToLocal(x), cubic.BlockToLocal(y), cubic.BlockToLocal(z), s)
}

// PopulateCube populates the cube at the given coordinates unless it already is.
// Every cube in the generator's population requirement is generated first.
func (w *World) PopulateCube(x, y, z int) {
	c := w.Cube(x, y, z)
	if c.Populated() {
		return
	}

	req := w.gen.PopulationRequirement(c)
	req.ForEach(func(dx, dy, dz int) {
		w.Cube(x+dx, y+dy, z+dz)
	})

	w.gen.Populate(c)
	c.SetPopulated(true)
}

// Loaded returns the number of columns and cubes held in memory.
func (w *World) Loaded() (columns, cubes int) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.columns), len(w.cubes)
}

// HasColumn reports whether column (x, z) is held in memory, without loading it.
func (w *World) HasColumn(x, z int) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.columns[cubic.ColumnPos{X: x, Z: z}]
	return ok
}

// Save writes every loaded column and cube to the store.
func (w *World) Save() error {
	if w.store == nil {
		return nil
	}

	w.mu.RLock()
	columns := make([]*cubic.Column, 0, len(w.columns))
	for _, c := range w.columns {
		columns = append(columns, c)
	}
	cubes := make([]*cubic.Cube, 0, len(w.cubes))
	for _, c := range w.cubes {
		cubes = append(cubes, c)
	}
	w.mu.RUnlock()

	if err := w.store.SaveAll(columns, cubes); err != nil {
		return fmt.Errorf("save world: %w", err)
	}
	w.log.Info("saved world", "columns", len(columns), "cubes", len(cubes))
	return nil
}
