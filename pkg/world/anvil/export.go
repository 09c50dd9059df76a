package anvil

import (
	"fmt"

	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
)

// Source supplies the columns and cubes to export.
type Source interface {
	Column(x, z int) *cubic.Column
	Cube(x, y, z int) *cubic.Cube
}

// Export writes the legacy range of columns to dir, one region file per 32×32
// columns, and returns the number of region files written.
func Export(dir string, src Source, columns []cubic.ColumnPos) (int, error) {
	type regionKey struct{ x, z int }
	regions := make(map[regionKey]map[cubic.ColumnPos][]byte)

	for _, pos := range columns {
		col := Column{Column: src.Column(pos.X, pos.Z)}
		for y := range col.Cubes {
			col.Cubes[y] = src.Cube(pos.X, y, pos.Z)
		}
		data, err := col.Encode()
		if err != nil {
			return 0, fmt.Errorf("encode column %v: %w", pos, err)
		}

		rx, rz := RegionPos(pos)
		k := regionKey{rx, rz}
		if regions[k] == nil {
			regions[k] = make(map[cubic.ColumnPos][]byte)
		}
		regions[k][pos] = data
	}

	for k, chunks := range regions {
		if err := SaveRegion(dir, k.x, k.z, chunks); err != nil {
			return 0, fmt.Errorf("save region %d,%d: %w", k.x, k.z, err)
		}
	}
	return len(regions), nil
}
