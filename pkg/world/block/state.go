package block

import "fmt"

// State identifies a block type plus its metadata, encoded as blockID<<4 | metadata.
// The zero value is air.
type State uint16

// New returns the State for the given block ID and metadata.
func New(id, meta int) State {
	return State(id<<4 | meta&0xF)
}

// ID returns the block ID of the state.
func (s State) ID() int { return int(s >> 4) }

// Meta returns the metadata nibble of the state.
func (s State) Meta() int { return int(s & 0xF) }

func (s State) String() string {
	return fmt.Sprintf("%d:%d", s.ID(), s.Meta())
}

// Block states used by the generators. IDs match Minecraft 1.8.
const (
	Air        State = 0
	Stone      State = 1 << 4
	Grass      State = 2 << 4
	Dirt       State = 3 << 4
	Bedrock    State = 7 << 4
	Water      State = 9 << 4 // stationary
	Lava       State = 11 << 4
	Sand       State = 12 << 4
	Gravel     State = 13 << 4
	GoldOre    State = 14 << 4
	IronOre    State = 15 << 4
	CoalOre    State = 16 << 4
	Log        State = 17 << 4
	Leaves     State = 18 << 4
	LapisOre   State = 21 << 4
	Sandstone  State = 24 << 4
	DiamondOre State = 56 << 4
	Redstone   State = 73 << 4
	Ice        State = 79 << 4
	Snow       State = 80 << 4
	Netherrack State = 87 << 4
	Glowstone  State = 89 << 4
	QuartzOre  State = 153 << 4
)

// Wood variants stored in the metadata of Log and Leaves.
const (
	WoodOak = iota
	WoodSpruce
	WoodBirch
	WoodJungle
)
