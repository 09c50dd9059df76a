package replacer

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/go-theft-craft/cubicchunks/pkg/gamedata"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
)

// Registry maps keys to providers. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[Key]Provider
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[Key]Provider)}
}

// Register adds p under k.
func (r *Registry) Register(k Key, p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[k]; ok {
		return fmt.Errorf("register %s: %w", k, ErrDuplicateProvider)
	}
	r.providers[k] = p
	return nil
}

// Provider returns the provider registered under k.
func (r *Registry) Provider(k Key) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[k]
	return p, ok
}

// Keys returns every registered key, sorted.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	keys := slices.Collect(maps.Keys(r.providers))
	r.mu.RUnlock()

	slices.SortFunc(keys, Key.compare)
	return keys
}

// Options returns the options declared by the providers of keys, sorted by key.
// An option declared by several providers is listed once.
func (r *Registry) Options(keys ...Key) ([]ConfigOptionInfo, error) {
	providers, err := r.lookup(keys)
	if err != nil {
		return nil, err
	}

	seen := make(map[Key]bool)
	var opts []ConfigOptionInfo
	for _, p := range providers {
		for _, o := range p.ConfigOptions() {
			if seen[o.Key] {
				continue
			}
			seen[o.Key] = true
			opts = append(opts, o)
		}
	}
	sortOptions(opts)
	return opts, nil
}

// Create builds the chain of replacers of keys, in order, for biome b of world w.
func (r *Registry) Create(w cubic.World, b gamedata.Biome, conf Config, keys ...Key) (Chain, error) {
	providers, err := r.lookup(keys)
	if err != nil {
		return nil, err
	}

	chain := make(Chain, 0, len(providers))
	for _, p := range providers {
		chain = append(chain, p.Create(w, b, conf))
	}
	return chain, nil
}

func (r *Registry) lookup(keys []Key) ([]Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]Provider, 0, len(keys))
	for _, k := range keys {
		p, ok := r.providers[k]
		if !ok {
			return nil, fmt.Errorf("look up %s: %w", k, ErrUnknownProvider)
		}
		providers = append(providers, p)
	}
	return providers, nil
}
