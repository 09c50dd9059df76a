package gamedata

type Biome struct {
	ID            int
	Name          string
	DisplayName   string
	Category      string
	Temperature   float64
	Precipitation string
	Depth         float64
	Dimension     string
	Rainfall      float64
}
