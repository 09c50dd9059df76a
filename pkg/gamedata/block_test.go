package gamedata_test

import (
	"testing"

	"github.com/go-theft-craft/cubicchunks/pkg/gamedata"
	pc18 "github.com/go-theft-craft/cubicchunks/pkg/gamedata/versions/pc_1_8"
	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
)

func TestParseState(t *testing.T) {
	reg := pc18.New().Blocks

	tests := []struct {
		ref  string
		want block.State
	}{
		{"stone", block.Stone},
		{"minecraft:bedrock", block.Bedrock},
		{" netherrack ", block.Netherrack},
		{"minecraft:log:2", block.Log | block.WoodBirch},
		{"17:1", block.Log | block.WoodSpruce},
		{"0", block.Air},
	}
	for _, tt := range tests {
		got, err := gamedata.ParseState(reg, tt.ref)
		if err != nil {
			t.Errorf("ParseState(%q): unexpected error: %v", tt.ref, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseState(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestParseStateErrors(t *testing.T) {
	reg := pc18.New().Blocks

	for _, ref := range []string{"unobtainium", "stone:16", "stone:x", "4000"} {
		if _, err := gamedata.ParseState(reg, ref); err == nil {
			t.Errorf("ParseState(%q): expected error", ref)
		}
	}
}
