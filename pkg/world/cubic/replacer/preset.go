package replacer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-craft/cubicchunks/pkg/gamedata"
)

// Preset selects a replacer chain and its options, globally and per biome.
//
//	replacers:
//	  - cubicchunks:terrain_shape
//	  - cubicchunks:surface
//	options:
//	  cubicchunks:water_level: 63
//	biomes:
//	  desert:
//	    cubicchunks:filler_depth: 6
type Preset struct {
	Replacers []Key
	Options   Config
	Biomes    map[string]Config
}

type presetFile struct {
	Replacers []string                  `yaml:"replacers"`
	Options   map[string]any            `yaml:"options"`
	Biomes    map[string]map[string]any `yaml:"biomes"`
}

// ParsePreset decodes a YAML preset. Values are not checked against providers
// until Validate.
func ParsePreset(data []byte) (*Preset, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode preset: %w", err)
	}

	p := &Preset{Biomes: make(map[string]Config, len(f.Biomes))}
	for _, s := range f.Replacers {
		k, err := ParseKey(s)
		if err != nil {
			return nil, fmt.Errorf("parse replacer: %w", err)
		}
		p.Replacers = append(p.Replacers, k)
	}

	var err error
	if p.Options, err = parseOptions(f.Options); err != nil {
		return nil, err
	}
	for name, opts := range f.Biomes {
		c, err := parseOptions(opts)
		if err != nil {
			return nil, fmt.Errorf("biome %s: %w", name, err)
		}
		p.Biomes[name] = c
	}
	return p, nil
}

// LoadPreset reads and decodes the preset at path.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	p, err := ParsePreset(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func parseOptions(raw map[string]any) (Config, error) {
	values := make(map[Key]any, len(raw))
	for s, v := range raw {
		k, err := ParseKey(s)
		if err != nil {
			return Config{}, fmt.Errorf("parse option: %w", err)
		}
		values[k] = v
	}
	return Config{values: values}, nil
}

// Validate checks that every replacer is registered in reg and every option is
// declared by one of them with a value of the declared kind. Values are converted
// in place to their Go types; block names are resolved through blocks.
func (p *Preset) Validate(reg *Registry, blocks gamedata.BlockRegistry) error {
	opts, err := reg.Options(p.Replacers...)
	if err != nil {
		return err
	}
	declared := make(map[Key]ConfigOptionInfo, len(opts))
	for _, o := range opts {
		declared[o.Key] = o
	}

	if p.Options, err = normalizeConfig(p.Options, declared, blocks); err != nil {
		return err
	}
	for name, c := range p.Biomes {
		if p.Biomes[name], err = normalizeConfig(c, declared, blocks); err != nil {
			return fmt.Errorf("biome %s: %w", name, err)
		}
	}
	return nil
}

func normalizeConfig(c Config, declared map[Key]ConfigOptionInfo, blocks gamedata.BlockRegistry) (Config, error) {
	values := make(map[Key]any, len(c.values))
	for _, k := range c.Keys() {
		o, ok := declared[k]
		if !ok {
			return Config{}, fmt.Errorf("option %s: %w", k, ErrUnknownOption)
		}
		v, ok := o.Kind.normalize(c.values[k], blocks)
		if !ok {
			return Config{}, fmt.Errorf("option %s = %v: %w: want %s", k, c.values[k], ErrOptionType, o.Kind)
		}
		values[k] = v
	}
	return Config{values: values}, nil
}

// ConfigFor returns the global options overlaid with those of the named biome.
func (p *Preset) ConfigFor(biome string) Config {
	return p.Options.Merge(p.Biomes[biome])
}
