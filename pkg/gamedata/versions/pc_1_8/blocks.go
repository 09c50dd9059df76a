package pc_1_8

import "github.com/go-theft-craft/cubicchunks/pkg/gamedata"

func hardness(v float64) *float64 { return &v }

var blocks = []gamedata.Block{
	{ID: 0, Name: "air", DisplayName: "Air", Hardness: hardness(0), Transparent: true},
	{ID: 1, Name: "stone", DisplayName: "Stone", Hardness: hardness(1.5), Material: "rock", Variations: []gamedata.Variation{
		{Metadata: 0, DisplayName: "Stone"},
		{Metadata: 1, DisplayName: "Granite"},
		{Metadata: 3, DisplayName: "Diorite"},
		{Metadata: 5, DisplayName: "Andesite"},
	}},
	{ID: 2, Name: "grass", DisplayName: "Grass Block", Hardness: hardness(0.6), Material: "dirt"},
	{ID: 3, Name: "dirt", DisplayName: "Dirt", Hardness: hardness(0.5), Material: "dirt"},
	{ID: 4, Name: "cobblestone", DisplayName: "Cobblestone", Hardness: hardness(2), Material: "rock"},
	{ID: 7, Name: "bedrock", DisplayName: "Bedrock", Material: "rock"},
	{ID: 8, Name: "flowing_water", DisplayName: "Water", Hardness: hardness(100), Transparent: true},
	{ID: 9, Name: "water", DisplayName: "Stationary Water", Hardness: hardness(100), Transparent: true},
	{ID: 10, Name: "flowing_lava", DisplayName: "Lava", Hardness: hardness(100), Transparent: true, EmitLight: 15},
	{ID: 11, Name: "lava", DisplayName: "Stationary Lava", Hardness: hardness(100), Transparent: true, EmitLight: 15},
	{ID: 12, Name: "sand", DisplayName: "Sand", Hardness: hardness(0.5), Material: "dirt"},
	{ID: 13, Name: "gravel", DisplayName: "Gravel", Hardness: hardness(0.6), Material: "dirt"},
	{ID: 14, Name: "gold_ore", DisplayName: "Gold Ore", Hardness: hardness(3), Material: "rock"},
	{ID: 15, Name: "iron_ore", DisplayName: "Iron Ore", Hardness: hardness(3), Material: "rock"},
	{ID: 16, Name: "coal_ore", DisplayName: "Coal Ore", Hardness: hardness(3), Material: "rock"},
	{ID: 17, Name: "log", DisplayName: "Wood", Hardness: hardness(2), Material: "wood", Variations: []gamedata.Variation{
		{Metadata: 0, DisplayName: "Oak Wood"},
		{Metadata: 1, DisplayName: "Spruce Wood"},
		{Metadata: 2, DisplayName: "Birch Wood"},
		{Metadata: 3, DisplayName: "Jungle Wood"},
	}},
	{ID: 18, Name: "leaves", DisplayName: "Leaves", Hardness: hardness(0.2), Material: "leaves", Transparent: true},
	{ID: 21, Name: "lapis_ore", DisplayName: "Lapis Lazuli Ore", Hardness: hardness(3), Material: "rock"},
	{ID: 24, Name: "sandstone", DisplayName: "Sandstone", Hardness: hardness(0.8), Material: "rock"},
	{ID: 31, Name: "tallgrass", DisplayName: "Grass", Hardness: hardness(0), Material: "plant", Transparent: true},
	{ID: 32, Name: "deadbush", DisplayName: "Dead Bush", Hardness: hardness(0), Material: "plant", Transparent: true},
	{ID: 49, Name: "obsidian", DisplayName: "Obsidian", Hardness: hardness(50), Material: "rock"},
	{ID: 56, Name: "diamond_ore", DisplayName: "Diamond Ore", Hardness: hardness(3), Material: "rock"},
	{ID: 73, Name: "redstone_ore", DisplayName: "Redstone Ore", Hardness: hardness(3), Material: "rock"},
	{ID: 78, Name: "snow_layer", DisplayName: "Snow", Hardness: hardness(0.1), Transparent: true},
	{ID: 79, Name: "ice", DisplayName: "Ice", Hardness: hardness(0.5), Transparent: true},
	{ID: 80, Name: "snow", DisplayName: "Snow", Hardness: hardness(0.2)},
	{ID: 81, Name: "cactus", DisplayName: "Cactus", Hardness: hardness(0.4), Material: "plant", Transparent: true},
	{ID: 87, Name: "netherrack", DisplayName: "Netherrack", Hardness: hardness(0.4), Material: "rock"},
	{ID: 88, Name: "soul_sand", DisplayName: "Soul Sand", Hardness: hardness(0.5), Material: "dirt"},
	{ID: 89, Name: "glowstone", DisplayName: "Glowstone", Hardness: hardness(0.3), EmitLight: 15},
	{ID: 121, Name: "end_stone", DisplayName: "End Stone", Hardness: hardness(3), Material: "rock"},
	{ID: 153, Name: "quartz_ore", DisplayName: "Nether Quartz Ore", Hardness: hardness(3), Material: "rock"},
	{ID: 172, Name: "hardened_clay", DisplayName: "Hardened Clay", Hardness: hardness(1.25), Material: "rock"},
}
