package gen

import (
	"testing"

	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
)

func TestStrongholdRing(t *testing.T) {
	g := NewDefaultGenerator(31337)
	g.RecreateStructures(nil, 0, 0)

	ring := g.strongholdPositions()
	if len(ring) != strongholdCount {
		t.Fatalf("got %d strongholds, want %d", len(ring), strongholdCount)
	}
	for _, p := range ring {
		dist := vec(block.Pos{X: p.X, Z: p.Z}).Len() / 16
		if dist < 38 || dist > 74 {
			t.Errorf("stronghold %+v at %.1f chunks, want 40..72", p, dist)
		}
	}
}

func TestClosestStructure(t *testing.T) {
	g := NewDefaultGenerator(8)
	ring := g.strongholdPositions()

	for _, want := range ring {
		got, ok := g.ClosestStructure(StructureStronghold, want.Add(3, 0, -3))
		if !ok || got != want {
			t.Errorf("ClosestStructure near %+v = %+v, %v", want, got, ok)
		}
	}
	if _, ok := g.ClosestStructure("Village", block.Pos{}); ok {
		t.Error("unknown structure should not be found")
	}
	if _, ok := NewClassicFlatGenerator().ClosestStructure(StructureStronghold, block.Pos{}); ok {
		t.Error("flat worlds have no strongholds")
	}
}

func TestNearestEmpty(t *testing.T) {
	if _, ok := nearest(nil, block.Pos{}); ok {
		t.Error("nearest of nothing should fail")
	}
}
