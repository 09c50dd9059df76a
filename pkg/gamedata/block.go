package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
)

type Block struct {
	ID          int
	Name        string
	DisplayName string
	Hardness    *float64
	Material    string
	Transparent bool
	EmitLight   int
	Variations  []Variation
}

type Variation struct {
	Metadata    int
	DisplayName string
}

// DefaultState returns the state of the block with metadata 0.
func (b Block) DefaultState() block.State {
	return block.New(b.ID, 0)
}

// ParseState resolves a block reference against reg. Accepted forms are "stone",
// "minecraft:stone", "minecraft:log:2" and the numeric "17:2".
func ParseState(reg BlockRegistry, ref string) (block.State, error) {
	ref = strings.TrimSpace(ref)
	ref = strings.TrimPrefix(ref, "minecraft:")
	name, metaStr, hasMeta := strings.Cut(ref, ":")

	meta := 0
	if hasMeta {
		m, err := strconv.Atoi(metaStr)
		if err != nil || m < 0 || m > 15 {
			return 0, fmt.Errorf("invalid metadata in block %q", ref)
		}
		meta = m
	}

	if id, err := strconv.Atoi(name); err == nil {
		if _, ok := reg.ByID(id); !ok {
			return 0, fmt.Errorf("unknown block id %d", id)
		}
		return block.New(id, meta), nil
	}
	b, ok := reg.ByName(name)
	if !ok {
		return 0, fmt.Errorf("unknown block %q", name)
	}
	return block.New(b.ID, meta), nil
}
