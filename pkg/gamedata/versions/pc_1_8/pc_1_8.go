// Package pc_1_8 provides the Minecraft PC 1.8 block, biome and entity tables used
// by the generators. Only the entries the generators and replacers refer to are
// included.
package pc_1_8

import "github.com/go-theft-craft/cubicchunks/pkg/gamedata"

// Version is the name under which the tables are registered.
const Version = "pc-1.8"

func init() {
	gamedata.Register(Version, New)
}

// New builds a fresh GameData for 1.8.
func New() *gamedata.GameData {
	return &gamedata.GameData{
		Version:  Version,
		Blocks:   newTable(blocks, func(b gamedata.Block) (int, string) { return b.ID, b.Name }),
		Biomes:   newTable(biomes, func(b gamedata.Biome) (int, string) { return b.ID, b.Name }),
		Entities: newTable(entities, func(e gamedata.Entity) (int, string) { return e.ID, e.Name }),
	}
}

// table is an immutable ID/name index over a slice of entries.
type table[T any] struct {
	all    []T
	byID   map[int]int
	byName map[string]int
}

func newTable[T any](entries []T, key func(T) (int, string)) *table[T] {
	t := &table[T]{
		all:    entries,
		byID:   make(map[int]int, len(entries)),
		byName: make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		id, name := key(e)
		t.byID[id] = i
		t.byName[name] = i
	}
	return t
}

func (t *table[T]) ByID(id int) (T, bool) {
	i, ok := t.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.all[i], true
}

func (t *table[T]) ByName(name string) (T, bool) {
	i, ok := t.byName[name]
	if !ok {
		var zero T
		return zero, false
	}
	return t.all[i], true
}

func (t *table[T]) All() []T {
	out := make([]T, len(t.all))
	copy(out, t.all)
	return out
}
