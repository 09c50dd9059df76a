package server

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-theft-craft/cubicchunks/internal/server/config"
	"github.com/go-theft-craft/cubicchunks/internal/server/storage"
	"github.com/go-theft-craft/cubicchunks/internal/server/world"
	"github.com/go-theft-craft/cubicchunks/pkg/gamedata"
	_ "github.com/go-theft-craft/cubicchunks/pkg/gamedata/versions/pc_1_8"
	"github.com/go-theft-craft/cubicchunks/pkg/world/anvil"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic/compat"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic/custom"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic/replacer"
	"github.com/go-theft-craft/cubicchunks/pkg/world/gen"
)

// Server owns a cubic world, its generator and its store, and runs pregeneration.
type Server struct {
	cfg   *config.Config
	log   *slog.Logger
	store *storage.Store
	world *world.World
}

// New builds the world described by cfg.
func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	dim, ok := cubic.ParseDimension(cfg.Dimension)
	if !ok {
		return nil, fmt.Errorf("unknown dimension %q", cfg.Dimension)
	}
	data, err := gamedata.Load(cfg.GameData)
	if err != nil {
		return nil, fmt.Errorf("load game data: %w", err)
	}

	if err := gen.CheckSpawns(data.Entities); err != nil {
		return nil, fmt.Errorf("check spawn tables: %w", err)
	}

	biomes, newGen, err := generatorFor(cfg, dim, data, log)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(filepath.Join(cfg.DataDir, "cubes"), log)
	if err != nil {
		return nil, err
	}

	w, err := world.New(world.Config{
		Dimension: dim,
		Biomes:    biomes,
		Store:     store,
		Log:       log,
	}, newGen)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &Server{cfg: cfg, log: log, store: store, world: w}, nil
}

// generatorFor returns the biome source and generator factory of cfg.Generator.
func generatorFor(cfg *config.Config, dim cubic.Dimension, data *gamedata.GameData, log *slog.Logger) (cubic.BiomeSource, world.GeneratorFunc, error) {
	switch cfg.Generator {
	case config.GeneratorFlat:
		preset, biome := cfg.FlatPreset, gen.BiomePlains
		if dim == cubic.Nether {
			biome = gen.BiomeHell
			if preset == gen.ClassicFlatPreset {
				preset = gen.NetherFlatPreset
			}
		}
		layers, err := gen.ParseFlatLayers(data.Blocks, preset)
		if err != nil {
			return nil, nil, fmt.Errorf("flat preset: %w", err)
		}
		legacy := gen.NewFlatGenerator(layers, biome)
		return legacy, compatFunc(legacy, log), nil

	case config.GeneratorCustom:
		reg := replacer.Default()
		preset, err := replacer.LoadPreset(cfg.ReplacerPreset)
		if err != nil {
			return nil, nil, err
		}
		if err := preset.Validate(reg, data.Blocks); err != nil {
			return nil, nil, fmt.Errorf("replacer preset %s: %w", cfg.ReplacerPreset, err)
		}
		heights := gen.NewDefaultGenerator(cfg.Seed)
		return heights.BiomeSource(), func(w cubic.World) (cubic.Generator, error) {
			return custom.New(w, heights, data.Biomes, reg, preset, log)
		}, nil

	default:
		legacy := gen.NewDefaultGenerator(cfg.Seed)
		return legacy.BiomeSource(), compatFunc(legacy, log), nil
	}
}

func compatFunc(legacy gen.ColumnGenerator, log *slog.Logger) world.GeneratorFunc {
	return func(w cubic.World) (cubic.Generator, error) {
		return compat.New(legacy, w, compat.WithLogger(log))
	}
}

// World returns the server's world.
func (s *Server) World() *world.World { return s.world }

// Run generates every cube within the configured radius and cube range, populates
// them if enabled, saves the world and exports it if an export directory is set.
// It stops early when ctx is cancelled; what was generated so far is still saved.
func (s *Server) Run(ctx context.Context) error {
	start := time.Now()
	r := s.cfg.Radius

	s.log.Info("pregeneration started",
		"generator", s.cfg.Generator,
		"dimension", s.cfg.Dimension,
		"seed", s.cfg.Seed,
		"radius", r,
		"minCubeY", s.cfg.MinCubeY,
		"maxCubeY", s.cfg.MaxCubeY,
	)

	runErr := s.forEachCube(ctx, func(x, y, z int) { s.world.Cube(x, y, z) })
	if runErr == nil && s.cfg.Populate {
		runErr = s.forEachCube(ctx, s.world.PopulateCube)
	}

	if err := s.world.Save(); err != nil {
		return err
	}
	columns, cubes := s.world.Loaded()
	s.log.Info("pregeneration finished", "columns", columns, "cubes", cubes, "elapsed", time.Since(start))
	if runErr != nil {
		return runErr
	}

	if s.cfg.ExportDir != "" {
		return s.export()
	}
	return nil
}

func (s *Server) forEachCube(ctx context.Context, fn func(x, y, z int)) error {
	r := s.cfg.Radius
	for x := -r; x <= r; x++ {
		for z := -r; z <= r; z++ {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("pregeneration interrupted: %w", err)
			}
			for y := s.cfg.MinCubeY; y <= s.cfg.MaxCubeY; y++ {
				fn(x, y, z)
			}
		}
		s.log.Debug("row done", "x", x)
	}
	return nil
}

func (s *Server) export() error {
	r := s.cfg.Radius
	var columns []cubic.ColumnPos
	for x := -r; x <= r; x++ {
		for z := -r; z <= r; z++ {
			columns = append(columns, cubic.ColumnPos{X: x, Z: z})
		}
	}
	n, err := anvil.Export(s.cfg.ExportDir, s.world, columns)
	if err != nil {
		return fmt.Errorf("export anvil: %w", err)
	}
	s.log.Info("exported anvil regions", "dir", s.cfg.ExportDir, "regions", n)
	return nil
}

// Close closes the store.
func (s *Server) Close() error {
	return s.store.Close()
}
