package pc_1_8

import "github.com/go-theft-craft/cubicchunks/pkg/gamedata"

var entities = []gamedata.Entity{
	{ID: 50, Name: "Creeper", DisplayName: "Creeper", Type: "mob", Width: 0.6, Height: 1.8, Category: "Hostile mobs"},
	{ID: 51, Name: "Skeleton", DisplayName: "Skeleton", Type: "mob", Width: 0.6, Height: 1.95, Category: "Hostile mobs"},
	{ID: 52, Name: "Spider", DisplayName: "Spider", Type: "mob", Width: 1.4, Height: 0.9, Category: "Hostile mobs"},
	{ID: 54, Name: "Zombie", DisplayName: "Zombie", Type: "mob", Width: 0.6, Height: 1.95, Category: "Hostile mobs"},
	{ID: 55, Name: "Slime", DisplayName: "Slime", Type: "mob", Width: 2.04, Height: 2.04, Category: "Hostile mobs"},
	{ID: 56, Name: "Ghast", DisplayName: "Ghast", Type: "mob", Width: 4, Height: 4, Category: "Hostile mobs"},
	{ID: 57, Name: "PigZombie", DisplayName: "Zombie Pigman", Type: "mob", Width: 0.6, Height: 1.95, Category: "Hostile mobs"},
	{ID: 58, Name: "Enderman", DisplayName: "Enderman", Type: "mob", Width: 0.6, Height: 2.9, Category: "Hostile mobs"},
	{ID: 62, Name: "LavaSlime", DisplayName: "Magma Cube", Type: "mob", Width: 2.04, Height: 2.04, Category: "Hostile mobs"},
	{ID: 65, Name: "Bat", DisplayName: "Bat", Type: "mob", Width: 0.5, Height: 0.9, Category: "Passive mobs"},
	{ID: 66, Name: "Witch", DisplayName: "Witch", Type: "mob", Width: 0.6, Height: 1.95, Category: "Hostile mobs"},
	{ID: 90, Name: "Pig", DisplayName: "Pig", Type: "mob", Width: 0.9, Height: 0.9, Category: "Passive mobs"},
	{ID: 91, Name: "Sheep", DisplayName: "Sheep", Type: "mob", Width: 0.9, Height: 1.3, Category: "Passive mobs"},
	{ID: 92, Name: "Cow", DisplayName: "Cow", Type: "mob", Width: 0.9, Height: 1.3, Category: "Passive mobs"},
	{ID: 93, Name: "Chicken", DisplayName: "Chicken", Type: "mob", Width: 0.4, Height: 0.7, Category: "Passive mobs"},
	{ID: 94, Name: "Squid", DisplayName: "Squid", Type: "mob", Width: 0.8, Height: 0.8, Category: "Passive mobs"},
}
