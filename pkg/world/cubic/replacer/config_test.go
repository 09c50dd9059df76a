package replacer

import (
	"math"
	"testing"

	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{"cubicchunks:surface", Key{"cubicchunks", "surface"}, false},
		{"surface", Key{DefaultNamespace, "surface"}, false},
		{"mymod:ores/deep", Key{"mymod", "ores/deep"}, false},
		{"My:Thing", Key{}, true},
		{":surface", Key{}, true},
		{"cubicchunks:", Key{}, true},
		{"a/b:c", Key{}, true},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if s := (Key{"a", "b"}).String(); s != "a:b" {
		t.Errorf("String() = %q, want a:b", s)
	}
}

func TestConfigDefaultsAndOverrides(t *testing.T) {
	var empty Config
	if got := empty.Int(WaterLevel); got != 63 {
		t.Errorf("default water level = %d, want 63", got)
	}
	if got := empty.Block(OceanBlock); got != block.Water {
		t.Errorf("default ocean block = %v, want water", got)
	}

	c := empty.With(WaterLevel.Key, 40)
	if got := c.Int(WaterLevel); got != 40 {
		t.Errorf("water level = %d, want 40", got)
	}
	if empty.Len() != 0 {
		t.Error("With should not modify the receiver")
	}

	merged := c.Merge(NewConfig(map[Key]any{WaterLevel.Key: 50, FillerDepth.Key: 2}))
	if merged.Int(WaterLevel) != 50 || merged.Int(FillerDepth) != 2 {
		t.Errorf("merged = %d, %d", merged.Int(WaterLevel), merged.Int(FillerDepth))
	}
	if c.Int(WaterLevel) != 40 {
		t.Error("Merge should not modify the receiver")
	}
	if keys := merged.Keys(); len(keys) != 2 || keys[0] != FillerDepth.Key {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestNewConfigCopies(t *testing.T) {
	values := map[Key]any{WaterLevel.Key: 1}
	c := NewConfig(values)
	values[WaterLevel.Key] = 2
	if got := c.Int(WaterLevel); got != 1 {
		t.Errorf("Int = %d, want 1", got)
	}
}

func TestConfigWrongTypePanics(t *testing.T) {
	c := NewConfig(map[Key]any{WaterLevel.Key: "deep"})
	defer func() {
		if recover() == nil {
			t.Error("reading a mistyped option should panic")
		}
	}()
	c.Int(WaterLevel)
}

func TestOptionKindNormalize(t *testing.T) {
	tests := []struct {
		kind OptionKind
		in   any
		want any
		ok   bool
	}{
		{KindInt, 3, 3, true},
		{KindInt, 3.0, 3, true},
		{KindInt, 3.5, nil, false},
		{KindInt, "3", nil, false},
		{KindInt, int64(-5), -5, true},
		{KindInt, uint64(7), 7, true},
		{KindInt, uint64(math.MaxUint64), nil, false},
		{KindInt, 1e19, nil, false},
		{KindInt, -1e19, nil, false},
		{KindFloat, 2, 2.0, true},
		{KindFloat, 0.25, 0.25, true},
		{KindBool, true, true, true},
		{KindBool, "yes", nil, false},
		{KindString, "x", "x", true},
		{KindBlock, block.Ice, block.Ice, true},
		{KindBlock, "ice", nil, false},
	}
	for _, tt := range tests {
		got, ok := tt.kind.normalize(tt.in, nil)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("%s.normalize(%v) = %v, %v, want %v, %v", tt.kind, tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
