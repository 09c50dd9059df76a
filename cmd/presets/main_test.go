package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-theft-craft/cubicchunks/pkg/gamedata/versions/pc_1_8"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic/replacer"
)

const (
	goodPreset = "replacers: [terrain_shape, surface]\noptions:\n  water_level: 40\nbiomes:\n  desert:\n    filler_depth: 6\n"
	badPreset  = "replacers: [surface]\noptions:\n  water_level: deep\n"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writePresets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"good.yaml":        goodPreset,
		"nested/bad.yml":   badPreset,
		"README.txt":       "not a preset",
		"nested/also.yaml": goodPreset,
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestPresetDir(t *testing.T) {
	tests := []struct {
		out, name string
		want      string
		wantErr   bool
	}{
		{"presets", "default", filepath.Join("presets", "default"), false},
		{".", "overworld", "overworld", false},
		{"", "default", "", true},
		{"presets", "", "", true},
		{"presets", ".", "", true},
		{"presets", "..", "", true},
		{"presets", "a/b", "", true},
	}
	for _, tt := range tests {
		got, err := presetDir(tt.out, tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("presetDir(%q, %q) error = %v, wantErr %v", tt.out, tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("presetDir(%q, %q) = %q, want %q", tt.out, tt.name, got, tt.want)
		}
	}
}

func TestCheckDirFollowsSymlinkedRoot(t *testing.T) {
	src := writePresets(t)
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(src, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	checked, failed, err := checkDir(link, replacer.Default(), pc_1_8.New(), discard())
	if err != nil {
		t.Fatalf("checkDir: %v", err)
	}
	if checked != 3 || failed != 1 {
		t.Errorf("checked %d, failed %d, want 3 and 1", checked, failed)
	}
}

func TestCheckDirWithoutPresets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "README.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := checkDir(dir, replacer.Default(), pc_1_8.New(), discard()); !errors.Is(err, errNoPresets) {
		t.Errorf("checkDir error = %v, want errNoPresets", err)
	}
}

func TestCheckPresetUnknownBiome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	body := "replacers: [surface]\nbiomes:\n  moon:\n    filler_depth: 2\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := checkPreset(path, replacer.Default(), pc_1_8.New()); err == nil {
		t.Error("checkPreset accepted an unknown biome")
	}
}

func TestFetchLocalDirectory(t *testing.T) {
	src := writePresets(t)
	out := t.TempDir()
	keep := filepath.Join(out, "keep.txt")
	if err := os.WriteFile(keep, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	dst, err := presetDir(out, "default")
	if err != nil {
		t.Fatal(err)
	}

	// Fetch twice: the second run replaces the first set in place.
	for i := 0; i < 2; i++ {
		if err := fetch(context.Background(), src, dst); err != nil {
			t.Fatalf("fetch #%d: %v", i, err)
		}
	}
	if _, err := os.Stat(keep); err != nil {
		t.Errorf("fetch removed a file outside the preset set: %v", err)
	}

	checked, failed, err := checkDir(dst, replacer.Default(), pc_1_8.New(), discard())
	if err != nil {
		t.Fatalf("checkDir: %v", err)
	}
	if checked != 3 || failed != 1 {
		t.Errorf("checked %d, failed %d, want 3 and 1", checked, failed)
	}
}
