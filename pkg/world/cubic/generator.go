package cubic

import (
	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
	"github.com/go-theft-craft/cubicchunks/pkg/world/gen"
)

// Generator produces cubes and columns for a cubic world.
type Generator interface {
	// GenerateColumn fills in the per-column data of a new column.
	GenerateColumn(c *Column)
	// RecreateColumnStructures rebuilds structure data for a column loaded from storage.
	RecreateColumnStructures(c *Column)
	// GenerateCube produces the blocks of the cube at the given cube coordinates.
	GenerateCube(cubeX, cubeY, cubeZ int) *Primer
	// Populate decorates a generated cube.
	Populate(c *Cube)
	// PopulationRequirement returns the cubes, relative to c, that must be
	// generated before c can be populated.
	PopulationRequirement(c *Cube) Box
	// RecreateCubeStructures rebuilds structure data for a cube loaded from storage.
	RecreateCubeStructures(c *Cube)
	PossibleCreatures(kind gen.CreatureType, pos block.Pos) []gen.SpawnEntry
	ClosestStructure(name string, pos block.Pos) (block.Pos, bool)
}
