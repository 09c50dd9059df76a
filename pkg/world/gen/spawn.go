package gen

import (
	"errors"
	"fmt"

	"github.com/go-theft-craft/cubicchunks/pkg/gamedata"
)

// ErrUnknownEntity is returned by CheckSpawns for a spawn entry the entity registry
// does not know.
var ErrUnknownEntity = errors.New("unknown entity")

// CreatureType groups spawnable entities the way the spawn cap does.
type CreatureType int

const (
	Monster CreatureType = iota
	Creature
	Ambient
	WaterCreature
)

func (c CreatureType) String() string {
	switch c {
	case Monster:
		return "monster"
	case Creature:
		return "creature"
	case Ambient:
		return "ambient"
	case WaterCreature:
		return "water_creature"
	default:
		return "unknown"
	}
}

// SpawnEntry is one weighted candidate of a spawn list.
type SpawnEntry struct {
	Entity   string
	Weight   int
	MinCount int
	MaxCount int
}

var (
	overworldMonsters = []SpawnEntry{
		{"Spider", 100, 4, 4},
		{"Zombie", 100, 4, 4},
		{"Skeleton", 100, 4, 4},
		{"Creeper", 100, 4, 4},
		{"Slime", 100, 4, 4},
		{"Enderman", 10, 1, 4},
		{"Witch", 5, 1, 1},
	}
	overworldCreatures = []SpawnEntry{
		{"Sheep", 12, 4, 4},
		{"Pig", 10, 4, 4},
		{"Chicken", 10, 4, 4},
		{"Cow", 8, 4, 4},
	}
	netherMonsters = []SpawnEntry{
		{"Ghast", 50, 4, 4},
		{"PigZombie", 100, 4, 4},
		{"LavaSlime", 1, 4, 4},
	}
	ambient = []SpawnEntry{{"Bat", 10, 8, 8}}
	water   = []SpawnEntry{{"Squid", 10, 4, 4}}
)

// SpawnsFor returns the spawn list of a biome for the given creature type. The
// returned slice is a copy.
func SpawnsFor(biome byte, kind CreatureType) []SpawnEntry {
	var list []SpawnEntry
	switch {
	case biome == BiomeHell:
		if kind == Monster {
			list = netherMonsters
		}
	case kind == Monster:
		list = overworldMonsters
	case kind == Creature:
		if biome != BiomeOcean && biome != BiomeDesert && biome != BiomeBeach {
			list = overworldCreatures
		}
	case kind == Ambient:
		list = ambient
	case kind == WaterCreature:
		list = water
	}
	return append([]SpawnEntry(nil), list...)
}

// CheckSpawns verifies that every entity named by the spawn lists exists in entities.
func CheckSpawns(entities gamedata.EntityRegistry) error {
	lists := [][]SpawnEntry{overworldMonsters, overworldCreatures, netherMonsters, ambient, water}
	for _, list := range lists {
		for _, e := range list {
			if _, ok := entities.ByName(e.Entity); !ok {
				return fmt.Errorf("spawn entry %s: %w", e.Entity, ErrUnknownEntity)
			}
		}
	}
	return nil
}
