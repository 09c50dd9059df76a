package replacer

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/go-theft-craft/cubicchunks/pkg/gamedata"
	"github.com/go-theft-craft/cubicchunks/pkg/world/block"
)

// DefaultNamespace is used for keys written without a namespace.
const DefaultNamespace = "cubicchunks"

var (
	ErrUnknownProvider   = errors.New("unknown replacer provider")
	ErrDuplicateProvider = errors.New("replacer provider already registered")
	ErrUnknownOption     = errors.New("unknown replacer option")
	ErrOptionType        = errors.New("wrong replacer option type")
)

// Key is a namespaced identifier such as "cubicchunks:surface".
type Key struct {
	Namespace string
	Path      string
}

// NewKey returns the key namespace:path in the default namespace when namespace
// is empty.
func NewKey(namespace, path string) Key {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return Key{Namespace: namespace, Path: path}
}

// ParseKey parses "namespace:path" or a bare "path" in the default namespace.
func ParseKey(s string) (Key, error) {
	ns, path, ok := strings.Cut(s, ":")
	if !ok {
		ns, path = DefaultNamespace, s
	}
	if !validKeyPart(ns, false) || !validKeyPart(path, true) {
		return Key{}, fmt.Errorf("invalid key %q", s)
	}
	return Key{Namespace: ns, Path: path}, nil
}

func validKeyPart(s string, path bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
		case path && r == '/':
		default:
			return false
		}
	}
	return true
}

func (k Key) String() string { return k.Namespace + ":" + k.Path }

func (k Key) compare(o Key) int {
	if c := strings.Compare(k.Namespace, o.Namespace); c != 0 {
		return c
	}
	return strings.Compare(k.Path, o.Path)
}

// OptionKind is the value type of a replacer option.
type OptionKind int

const (
	KindInt OptionKind = iota
	KindFloat
	KindBool
	KindString
	KindBlock
)

func (k OptionKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// normalize converts v, as decoded from a preset file, to the Go type of the kind:
// int, float64, bool, string or block.State. Block names are resolved through blocks.
func (k OptionKind) normalize(v any, blocks gamedata.BlockRegistry) (any, bool) {
	switch k {
	case KindInt:
		switch n := v.(type) {
		case int:
			return n, true
		case int64:
			if n >= math.MinInt && n <= math.MaxInt {
				return int(n), true
			}
		case uint64:
			if n <= math.MaxInt {
				return int(n), true
			}
		case float64:
			// MaxInt rounds up as a float64; -MinInt converts exactly.
			if n == math.Trunc(n) && n >= math.MinInt && n < -math.MinInt {
				return int(n), true
			}
		}
	case KindFloat:
		switch n := v.(type) {
		case float64:
			return n, true
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		}
	case KindBool:
		b, ok := v.(bool)
		return b, ok
	case KindString:
		s, ok := v.(string)
		return s, ok
	case KindBlock:
		switch s := v.(type) {
		case block.State:
			return s, true
		case string:
			if blocks == nil {
				return nil, false
			}
			state, err := gamedata.ParseState(blocks, s)
			return state, err == nil
		}
	}
	return nil, false
}

// ConfigOptionInfo declares an option a provider reads.
type ConfigOptionInfo struct {
	Key     Key
	Kind    OptionKind
	Default any
}

func sortOptions(opts []ConfigOptionInfo) {
	slices.SortFunc(opts, func(a, b ConfigOptionInfo) int { return a.Key.compare(b.Key) })
}

// Config is an immutable set of option values.
type Config struct {
	values map[Key]any
}

// NewConfig returns a Config holding a copy of values.
func NewConfig(values map[Key]any) Config {
	return Config{values: maps.Clone(values)}
}

// Get returns the raw value stored for k.
func (c Config) Get(k Key) (any, bool) {
	v, ok := c.values[k]
	return v, ok
}

// Keys returns the keys set in c, sorted.
func (c Config) Keys() []Key {
	keys := slices.Collect(maps.Keys(c.values))
	slices.SortFunc(keys, Key.compare)
	return keys
}

// Len returns the number of values set.
func (c Config) Len() int { return len(c.values) }

// With returns a copy of c with k set to v.
func (c Config) With(k Key, v any) Config {
	values := maps.Clone(c.values)
	if values == nil {
		values = make(map[Key]any, 1)
	}
	values[k] = v
	return Config{values: values}
}

// Merge returns a copy of c overlaid with the values of o.
func (c Config) Merge(o Config) Config {
	values := maps.Clone(c.values)
	if values == nil {
		values = make(map[Key]any, len(o.values))
	}
	maps.Copy(values, o.values)
	return Config{values: values}
}

// Int returns the value of opt, or its default when unset.
func (c Config) Int(opt ConfigOptionInfo) int { return lookup[int](c, opt) }

// Float returns the value of opt, or its default when unset.
func (c Config) Float(opt ConfigOptionInfo) float64 { return lookup[float64](c, opt) }

// Bool returns the value of opt, or its default when unset.
func (c Config) Bool(opt ConfigOptionInfo) bool { return lookup[bool](c, opt) }

// String returns the value of opt, or its default when unset.
func (c Config) String(opt ConfigOptionInfo) string { return lookup[string](c, opt) }

// Block returns the value of opt, or its default when unset.
func (c Config) Block(opt ConfigOptionInfo) block.State { return lookup[block.State](c, opt) }

// lookup panics when the stored value has the wrong type; presets are checked by
// Preset.Validate before their configs reach a provider.
func lookup[T any](c Config, opt ConfigOptionInfo) T {
	v, ok := c.values[opt.Key]
	if !ok {
		v = opt.Default
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("replacer option %s holds %T, want %T", opt.Key, v, t))
	}
	return t
}
