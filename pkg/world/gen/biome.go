package gen

// Biome IDs matching Minecraft 1.8 protocol.
const (
	BiomeOcean      byte = 0
	BiomePlains     byte = 1
	BiomeDesert     byte = 2
	BiomeMountains  byte = 3 // extreme hills
	BiomeForest     byte = 4
	BiomeTaiga      byte = 5
	BiomeHell       byte = 8
	BiomeTundra     byte = 12 // ice plains
	BiomeBeach      byte = 16
	BiomeJungle     byte = 21
	BiomeDarkForest byte = 29
	BiomeSnowyTaiga byte = 30
	BiomeSavanna    byte = 35
)

const seaLevel = 62

// BiomeGenerator selects biomes using temperature/rainfall noise fields.
type BiomeGenerator struct {
	tempNoise *Simplex
	rainNoise *Simplex
	terrain   *Simplex
}

// NewBiomeGenerator creates a BiomeGenerator from a seed.
func NewBiomeGenerator(seed int64) *BiomeGenerator {
	return &BiomeGenerator{
		tempNoise: NewSimplex(seed + 100),
		rainNoise: NewSimplex(seed + 200),
		terrain:   NewSimplex(seed),
	}
}

// BiomeAt returns the biome ID at the given world block coordinates.
func (bg *BiomeGenerator) BiomeAt(bx, bz int) byte {
	tx := float64(bx) / 512.0
	tz := float64(bz) / 512.0
	temp := bg.tempNoise.Octaves(tx, tz, 4, 0.5)*0.8 + 0.75
	rain := bg.rainNoise.Octaves(tx+100, tz+100, 4, 0.5)*0.5 + 0.5

	// Ocean and beach follow the same base noise the terrain uses.
	base := 62.0 + bg.terrain.Octaves(float64(bx)/128.0, float64(bz)/128.0, 6, 0.5)*8.0
	switch {
	case base < seaLevel-8:
		return BiomeOcean
	case base < seaLevel-2:
		return BiomeBeach
	}
	return selectBiome(temp, rain)
}

// Biomes fills dst with the biome IDs of the width×depth area whose corner is the
// block (x, z), indexed dz*width + dx. dst is reused when it has enough capacity.
func (bg *BiomeGenerator) Biomes(dst []byte, x, z, width, depth int) []byte {
	dst = resize(dst, width*depth)
	for dz := 0; dz < depth; dz++ {
		for dx := 0; dx < width; dx++ {
			dst[dz*width+dx] = bg.BiomeAt(x+dx, z+dz)
		}
	}
	return dst
}

// FixedBiome is a biome source that reports the same biome everywhere.
type FixedBiome byte

// Biomes fills dst with the fixed biome.
func (f FixedBiome) Biomes(dst []byte, _, _, width, depth int) []byte {
	dst = resize(dst, width*depth)
	for i := range dst {
		dst[i] = byte(f)
	}
	return dst
}

func resize(dst []byte, n int) []byte {
	if cap(dst) < n {
		return make([]byte, n)
	}
	return dst[:n]
}

// selectBiome maps temperature and rainfall to a biome ID.
//
//	Temp\Rain     | Dry (<0.3)    | Medium (0.3-0.6) | Wet (>0.6)
//	Cold <0.3     | Tundra (12)   | Snowy Taiga (30)  | Taiga (5)
//	Mild 0.3-0.7  | Plains (1)    | Forest (4)        | Dark Forest (29)
//	Warm 0.7-1.2  | Savanna (35)  | Plains (1)        | Jungle (21)
//	Hot >1.2      | Desert (2)    | Desert (2)        | Jungle (21)
func selectBiome(temp, rain float64) byte {
	type row struct{ dry, medium, wet byte }
	var r row
	switch {
	case temp < 0.3:
		r = row{BiomeTundra, BiomeSnowyTaiga, BiomeTaiga}
	case temp < 0.7:
		r = row{BiomePlains, BiomeForest, BiomeDarkForest}
	case temp < 1.2:
		r = row{BiomeSavanna, BiomePlains, BiomeJungle}
	default:
		r = row{BiomeDesert, BiomeDesert, BiomeJungle}
	}
	switch {
	case rain < 0.3:
		return r.dry
	case rain < 0.6:
		return r.medium
	default:
		return r.wet
	}
}
