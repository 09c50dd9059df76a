package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"github.com/go-theft-craft/cubicchunks/pkg/world/gen"
)

// Generator types.
const (
	GeneratorDefault = "default"
	GeneratorFlat    = "flat"
	GeneratorCustom  = "custom"
)

// Config holds the generation run configuration.
type Config struct {
	Seed      int64  `toml:"seed"`
	Generator string `toml:"generator"` // "default", "flat" or "custom"
	Dimension string `toml:"dimension"` // "overworld", "nether" or "end"
	GameData  string `toml:"game_data"`
	// FlatPreset is the bottom-to-top layer list of the flat generator.
	FlatPreset string `toml:"flat_preset"`
	// ReplacerPreset is the YAML preset of the custom generator.
	ReplacerPreset string `toml:"replacer_preset"`

	DataDir   string `toml:"data_dir"`
	ExportDir string `toml:"export_dir"` // Anvil export of the legacy range; empty disables it

	Radius   int  `toml:"radius"` // pregeneration radius in columns around 0,0
	MinCubeY int  `toml:"min_cube_y"`
	MaxCubeY int  `toml:"max_cube_y"`
	Populate bool `toml:"populate"`

	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Generator:  GeneratorDefault,
		Dimension:  "overworld",
		GameData:   "pc-1.8",
		FlatPreset: gen.ClassicFlatPreset,
		DataDir:    "world",
		Radius:     2,
		MinCubeY:   -2,
		MaxCubeY:   17,
		Populate:   true,
		LogLevel:   "info",
	}
}

// Validate checks values that cannot be caught by the TOML decoder.
func (c *Config) Validate() error {
	switch c.Generator {
	case GeneratorDefault, GeneratorFlat:
	case GeneratorCustom:
		if c.ReplacerPreset == "" {
			return errors.New("custom generator needs a replacer_preset")
		}
	default:
		return fmt.Errorf("unknown generator %q", c.Generator)
	}
	if c.Radius < 0 {
		return fmt.Errorf("negative radius %d", c.Radius)
	}
	if c.MinCubeY > c.MaxCubeY {
		return fmt.Errorf("min_cube_y %d above max_cube_y %d", c.MinCubeY, c.MaxCubeY)
	}
	return nil
}

// Load reads the TOML file at path over the defaults. A missing file is created
// holding the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, Save(path, cfg)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML.
func Save(path string, cfg *Config) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	data, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["generator"] {
		cfg.Generator = fromFile.Generator
	}
	if !explicitFlags["dimension"] {
		cfg.Dimension = fromFile.Dimension
	}
	if !explicitFlags["game-data"] {
		cfg.GameData = fromFile.GameData
	}
	if !explicitFlags["flat-preset"] {
		cfg.FlatPreset = fromFile.FlatPreset
	}
	if !explicitFlags["replacer-preset"] {
		cfg.ReplacerPreset = fromFile.ReplacerPreset
	}
	if !explicitFlags["data-dir"] {
		cfg.DataDir = fromFile.DataDir
	}
	if !explicitFlags["export-dir"] {
		cfg.ExportDir = fromFile.ExportDir
	}
	if !explicitFlags["radius"] {
		cfg.Radius = fromFile.Radius
	}
	if !explicitFlags["min-cube-y"] {
		cfg.MinCubeY = fromFile.MinCubeY
	}
	if !explicitFlags["max-cube-y"] {
		cfg.MaxCubeY = fromFile.MaxCubeY
	}
	if !explicitFlags["populate"] {
		cfg.Populate = fromFile.Populate
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
}
