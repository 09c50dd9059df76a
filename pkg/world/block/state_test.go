package block

import "testing"

func TestStateEncoding(t *testing.T) {
	tests := []struct {
		id, meta int
		want     State
	}{
		{0, 0, Air},
		{1, 0, Stone},
		{7, 0, Bedrock},
		{87, 0, Netherrack},
		{17, WoodBirch, Log | WoodBirch},
		{18, 0x1F, Leaves | 0xF}, // metadata is truncated to a nibble
	}
	for _, tt := range tests {
		got := New(tt.id, tt.meta)
		if got != tt.want {
			t.Errorf("New(%d,%d) = %v, want %v", tt.id, tt.meta, got, tt.want)
		}
		if got.ID() != tt.id {
			t.Errorf("New(%d,%d).ID() = %d", tt.id, tt.meta, got.ID())
		}
	}
}

func TestPosAdd(t *testing.T) {
	p := Pos{1, 2, 3}.Add(-1, 10, 0)
	if p != (Pos{0, 12, 3}) {
		t.Errorf("Add = %+v, want {0 12 3}", p)
	}
}
