package gamedata

// GameData bundles the registries of one game version.
type GameData struct {
	Version  string
	Blocks   BlockRegistry
	Biomes   BiomeRegistry
	Entities EntityRegistry
}
