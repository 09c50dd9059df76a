package gamedata

type BlockRegistry interface {
	ByID(id int) (Block, bool)
	ByName(name string) (Block, bool)
	All() []Block
}

type BiomeRegistry interface {
	ByID(id int) (Biome, bool)
	ByName(name string) (Biome, bool)
	All() []Biome
}

type EntityRegistry interface {
	ByID(id int) (Entity, bool)
	ByName(name string) (Entity, bool)
	All() []Entity
}
