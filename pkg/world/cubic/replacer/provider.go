package replacer

import (
	"slices"

	"github.com/go-theft-craft/cubicchunks/pkg/gamedata"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
)

// Provider creates replacers. Providers hold no state of their own.
type Provider interface {
	// Create returns the replacer for biome b of world w configured by conf.
	Create(w cubic.World, b gamedata.Biome, conf Config) Replacer
	// ConfigOptions lists the options Create reads, sorted by key.
	ConfigOptions() []ConfigOptionInfo
}

// ProviderFunc creates a replacer without declaring any options.
type ProviderFunc func(w cubic.World, b gamedata.Biome, conf Config) Replacer

// Of returns a Provider calling f and declaring no options.
func Of(f ProviderFunc) Provider {
	return funcProvider{create: f}
}

// WithOptions returns a Provider calling f and declaring opts.
func WithOptions(f ProviderFunc, opts ...ConfigOptionInfo) Provider {
	opts = slices.Clone(opts)
	sortOptions(opts)
	return funcProvider{create: f, options: opts}
}

// Constant returns a Provider handing out r for every world, biome and config.
func Constant(r Replacer) Provider {
	return constantProvider{r: r}
}

type funcProvider struct {
	create  ProviderFunc
	options []ConfigOptionInfo
}

func (p funcProvider) Create(w cubic.World, b gamedata.Biome, conf Config) Replacer {
	return p.create(w, b, conf)
}

func (p funcProvider) ConfigOptions() []ConfigOptionInfo {
	return slices.Clone(p.options)
}

type constantProvider struct{ r Replacer }

func (p constantProvider) Create(cubic.World, gamedata.Biome, Config) Replacer { return p.r }

func (p constantProvider) ConfigOptions() []ConfigOptionInfo { return nil }
