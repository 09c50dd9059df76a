package pc_1_8

import "github.com/go-theft-craft/cubicchunks/pkg/gamedata"

var biomes = []gamedata.Biome{
	{ID: 0, Name: "ocean", DisplayName: "Ocean", Category: "ocean", Temperature: 0.5, Rainfall: 0.5, Depth: -1, Precipitation: "rain", Dimension: "overworld"},
	{ID: 1, Name: "plains", DisplayName: "Plains", Category: "plains", Temperature: 0.8, Rainfall: 0.4, Depth: 0.125, Precipitation: "rain", Dimension: "overworld"},
	{ID: 2, Name: "desert", DisplayName: "Desert", Category: "desert", Temperature: 2, Rainfall: 0, Depth: 0.125, Precipitation: "none", Dimension: "overworld"},
	{ID: 3, Name: "extreme_hills", DisplayName: "Extreme Hills", Category: "extreme_hills", Temperature: 0.2, Rainfall: 0.3, Depth: 1, Precipitation: "rain", Dimension: "overworld"},
	{ID: 4, Name: "forest", DisplayName: "Forest", Category: "forest", Temperature: 0.7, Rainfall: 0.8, Depth: 0.1, Precipitation: "rain", Dimension: "overworld"},
	{ID: 5, Name: "taiga", DisplayName: "Taiga", Category: "taiga", Temperature: 0.25, Rainfall: 0.8, Depth: 0.2, Precipitation: "rain", Dimension: "overworld"},
	{ID: 6, Name: "swampland", DisplayName: "Swampland", Category: "swamp", Temperature: 0.8, Rainfall: 0.9, Depth: -0.2, Precipitation: "rain", Dimension: "overworld"},
	{ID: 7, Name: "river", DisplayName: "River", Category: "river", Temperature: 0.5, Rainfall: 0.5, Depth: -0.5, Precipitation: "rain", Dimension: "overworld"},
	{ID: 8, Name: "hell", DisplayName: "Hell", Category: "nether", Temperature: 2, Rainfall: 0, Depth: 0.1, Precipitation: "none", Dimension: "nether"},
	{ID: 9, Name: "sky", DisplayName: "The End", Category: "the_end", Temperature: 0.5, Rainfall: 0.5, Depth: 0.1, Precipitation: "none", Dimension: "end"},
	{ID: 12, Name: "ice_plains", DisplayName: "Ice Plains", Category: "icy", Temperature: 0, Rainfall: 0.5, Depth: 0.125, Precipitation: "snow", Dimension: "overworld"},
	{ID: 16, Name: "beach", DisplayName: "Beach", Category: "beach", Temperature: 0.8, Rainfall: 0.4, Depth: 0, Precipitation: "rain", Dimension: "overworld"},
	{ID: 21, Name: "jungle", DisplayName: "Jungle", Category: "jungle", Temperature: 0.95, Rainfall: 0.9, Depth: 0.1, Precipitation: "rain", Dimension: "overworld"},
	{ID: 24, Name: "deep_ocean", DisplayName: "Deep Ocean", Category: "ocean", Temperature: 0.5, Rainfall: 0.5, Depth: -1.8, Precipitation: "rain", Dimension: "overworld"},
	{ID: 29, Name: "roofed_forest", DisplayName: "Roofed Forest", Category: "forest", Temperature: 0.7, Rainfall: 0.8, Depth: 0.1, Precipitation: "rain", Dimension: "overworld"},
	{ID: 30, Name: "cold_taiga", DisplayName: "Cold Taiga", Category: "taiga", Temperature: -0.5, Rainfall: 0.4, Depth: 0.2, Precipitation: "snow", Dimension: "overworld"},
	{ID: 35, Name: "savanna", DisplayName: "Savanna", Category: "savanna", Temperature: 1.2, Rainfall: 0, Depth: 0.125, Precipitation: "none", Dimension: "overworld"},
}
