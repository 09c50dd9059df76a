package compat

import "github.com/go-theft-craft/cubicchunks/pkg/world/cubic"

type batchState int

const (
	batchIdle batchState = iota
	batchRunning
)

// generateSiblings asks the world for the other legacy cubes of the column, top to
// bottom, while its legacy chunk is cached. The world generates them through this
// generator again; those nested calls see batchRunning and do not start a batch of
// their own.
func (g *Generator) generateSiblings(cubeX, cubeY, cubeZ int) {
	if g.batch == batchRunning {
		return
	}
	g.batch = batchRunning
	defer func() { g.batch = batchIdle }()

	for y := cubic.LegacyMaxCubeY; y >= cubic.LegacyMinCubeY; y-- {
		if y == cubeY {
			continue
		}
		g.world.Cube(cubeX, y, cubeZ)
	}
}
