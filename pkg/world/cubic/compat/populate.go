package compat

import "github.com/go-theft-craft/cubicchunks/pkg/world/cubic"

// Populate runs legacy population for the whole column of c. Legacy populators
// expect full-height columns and reach into the columns at +1 on X and Z, so those
// four columns are generated first. All sixteen cubes of the column are then marked
// populated, since the legacy pass covers them all at once.
func (g *Generator) Populate(c *cubic.Cube) {
	if !cubic.InLegacyRange(c.Y()) {
		return
	}

	for x := 0; x < 2; x++ {
		for z := 0; z < 2; z++ {
			for y := cubic.LegacyMaxCubeY; y >= cubic.LegacyMinCubeY; y-- {
				g.world.Cube(c.X()+x, y, c.Z()+z)
			}
		}
	}
	for y := cubic.LegacyMaxCubeY; y >= cubic.LegacyMinCubeY; y-- {
		g.world.Cube(c.X(), y, c.Z()).SetPopulated(true)
	}

	g.legacy.Populate(g.world, c.X(), c.Z())
	for _, d := range g.decorators {
		d.Decorate(g.world, c.X(), c.Z())
	}
}

// PopulationRequirement covers the whole legacy column of c and the column at -1
// on X and Z, whose population reaches into c's column.
func (g *Generator) PopulationRequirement(c *cubic.Cube) cubic.Box {
	if !cubic.InLegacyRange(c.Y()) {
		return cubic.NoRequirement
	}
	return cubic.Box{
		MinX: -1, MinY: cubic.LegacyMinCubeY - c.Y(), MinZ: -1,
		MaxX: 0, MaxY: cubic.LegacyMaxCubeY - c.Y(), MaxZ: 0,
	}
}
