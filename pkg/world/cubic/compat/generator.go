// Package compat runs a legacy column generator as a cubic generator. Legacy chunks
// are 16 sections tall; cube Y 0..15 is copied out of the matching section, cubes
// below are filled with a substrate block and cubes above are left empty.
package compat

import (
	"errors"
	"log/slog"

	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
	"github.com/go-theft-craft/cubicchunks/pkg/world/gen"
)

// Generator adapts a gen.ColumnGenerator to cubic.Generator.
//
// A Generator is not safe for concurrent use: it keeps the last legacy chunk and
// the state of the sibling batch, and relies on the world serialising generation.
type Generator struct {
	legacy     gen.ColumnGenerator
	world      cubic.World
	log        *slog.Logger
	decorators []cubic.Decorator

	cache columnCache
	batch batchState

	floorMarker block.State
	substrate   block.State
	stripFloor  bool

	biomes []byte
}

var _ cubic.Generator = (*Generator)(nil)

// Option configures a Generator.
type Option func(*options)

type options struct {
	log         *slog.Logger
	substrate   *block.State
	floorMarker block.State
	decorators  []cubic.Decorator
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithSubstrate fixes the block used below the legacy column instead of deriving
// it from the reference chunk. Floor stripping is still decided from the sample.
func WithSubstrate(s block.State) Option {
	return func(o *options) { o.substrate = &s }
}

// WithFloorMarker sets the block treated as the artificial legacy floor. The
// default is bedrock.
func WithFloorMarker(s block.State) Option {
	return func(o *options) { o.floorMarker = s }
}

// WithDecorators adds world-level hooks run after each column is populated.
func WithDecorators(ds ...cubic.Decorator) Option {
	return func(o *options) { o.decorators = append(o.decorators, ds...) }
}

// New creates a Generator on top of legacy for world w. It generates the legacy
// chunk at 0,0 to find the block dominating its bottom layer. If that is the floor
// marker the floor is stripped and replaced by netherrack in the nether or stone
// elsewhere; otherwise the dominant block itself becomes the substrate.
func New(legacy gen.ColumnGenerator, w cubic.World, opts ...Option) (*Generator, error) {
	o := options{log: slog.Default(), floorMarker: block.Bedrock}
	for _, opt := range opts {
		opt(&o)
	}

	ref := legacy.Generate(0, 0)
	if ref == nil {
		return nil, errors.New("legacy generator returned no reference chunk at 0,0")
	}

	g := &Generator{
		legacy:      legacy,
		world:       w,
		log:         o.log,
		decorators:  o.decorators,
		floorMarker: o.floorMarker,
		cache:       columnCache{load: legacy.Generate},
	}
	g.cache.store(0, 0, ref)

	dominant := dominantBottomBlock(ref)
	g.stripFloor = dominant == g.floorMarker
	switch {
	case o.substrate != nil:
		g.substrate = *o.substrate
	case g.stripFloor:
		g.substrate = floorReplacement(w.Dimension())
	default:
		g.substrate = dominant
	}

	g.log.Info("vanilla compatibility generator ready",
		"dimension", w.Dimension(),
		"dominant", dominant,
		"substrate", g.substrate,
		"stripFloor", g.stripFloor,
	)
	return g, nil
}

// Substrate returns the block filling cubes below the legacy column.
func (g *Generator) Substrate() block.State { return g.substrate }

// StripsFloor reports whether the legacy floor marker is replaced by the substrate.
func (g *Generator) StripsFloor() bool { return g.stripFloor }

// GenerateColumn stores the biomes of the column's 16×16 footprint.
func (g *Generator) GenerateColumn(c *cubic.Column) {
	g.biomes = g.world.BiomeSource().Biomes(g.biomes,
		cubic.CubeToMinBlock(c.X), cubic.CubeToMinBlock(c.Z),
		cubic.CubeSize, cubic.CubeSize)

	for i := range c.Biomes {
		c.Biomes[i] = g.biomes[i]
	}
}

// RecreateColumnStructures hands the legacy chunk of the column to the legacy
// structure generators.
func (g *Generator) RecreateColumnStructures(c *cubic.Column) {
	g.legacy.RecreateStructures(g.chunk(c.X, c.Z), c.X, c.Z)
}

// GenerateCube returns the blocks of the cube at the given coordinates.
func (g *Generator) GenerateCube(cubeX, cubeY, cubeZ int) *cubic.Primer {
	p := cubic.NewPrimer()

	switch {
	case cubeY < cubic.LegacyMinCubeY:
		p.Fill(g.substrate)
	case cubeY > cubic.LegacyMaxCubeY:
		// Above the legacy column: nothing to copy.
	default:
		chunk := g.chunk(cubeX, cubeZ)
		g.generateSiblings(cubeX, cubeY, cubeZ)
		g.copySection(p, chunk.Sections[cubeY])
	}
	return p
}

// RecreateCubeStructures does nothing; structures are rebuilt per column.
func (g *Generator) RecreateCubeStructures(*cubic.Cube) {}

func (g *Generator) PossibleCreatures(kind gen.CreatureType, pos block.Pos) []gen.SpawnEntry {
	return g.legacy.PossibleCreatures(kind, pos)
}

func (g *Generator) ClosestStructure(name string, pos block.Pos) (block.Pos, bool) {
	return g.legacy.ClosestStructure(name, pos)
}

// chunk returns the legacy chunk of column (x, z), regenerating it on a miss.
func (g *Generator) chunk(x, z int) *gen.ChunkData {
	c, loaded := g.cache.get(x, z)
	if loaded {
		g.log.Debug("regenerated legacy chunk", "x", x, "z", z)
	}
	return c
}

// copySection copies a legacy section into p, swapping the floor marker for the
// substrate when the floor is stripped. A nil or empty section leaves p as air.
func (g *Generator) copySection(p *cubic.Primer, sec *gen.Section) {
	if sec == nil || sec.IsEmpty() {
		return
	}
	for x := 0; x < cubic.CubeSize; x++ {
		for y := 0; y < cubic.CubeSize; y++ {
			for z := 0; z < cubic.CubeSize; z++ {
				state := sec.Get(x, y, z)
				if g.stripFloor && state == g.floorMarker {
					state = g.substrate
				}
				p.SetBlock(x, y, z, state)
			}
		}
	}
}
