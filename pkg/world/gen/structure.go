package gen

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
)

// StructureStronghold is the structure name answered by ClosestStructure.
const StructureStronghold = "Stronghold"

const (
	strongholdCount = 3
	strongholdY     = 40
)

// strongholdRing places the strongholds on a ring 40 to 72 chunks from the origin,
// evenly spaced in angle starting from a seeded direction.
func strongholdRing(seed int64) []block.Pos {
	rng := newChunkRNG(seed, 0, 0, 700)
	angle := rng.nextFloat() * 2 * math.Pi

	out := make([]block.Pos, 0, strongholdCount)
	for range strongholdCount {
		dist := (1.25 + rng.nextFloat()) * 32
		cx := int(math.Round(math.Cos(angle) * dist))
		cz := int(math.Round(math.Sin(angle) * dist))
		out = append(out, block.Pos{X: cx*16 + 8, Y: strongholdY, Z: cz*16 + 8})
		angle += 2 * math.Pi / strongholdCount
	}
	return out
}

// nearest returns the candidate closest to pos.
func nearest(candidates []block.Pos, pos block.Pos) (block.Pos, bool) {
	if len(candidates) == 0 {
		return block.Pos{}, false
	}
	from := vec(pos)
	best, bestDist := candidates[0], math.Inf(1)
	for _, c := range candidates {
		if d := vec(c).Sub(from).Len(); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, true
}

func vec(p block.Pos) mgl64.Vec3 {
	return mgl64.Vec3{float64(p.X), float64(p.Y), float64(p.Z)}
}
