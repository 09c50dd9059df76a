package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-theft-craft/cubicchunks/internal/server"
	"github.com/go-theft-craft/cubicchunks/internal/server/config"
)

func main() {
	cfg := config.DefaultConfig()
	configPath := flag.String("config", "cubicgen.toml", "config file; created with defaults if missing")

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.StringVar(&cfg.Generator, "generator", cfg.Generator, "generator: default, flat or custom")
	flag.StringVar(&cfg.Dimension, "dimension", cfg.Dimension, "dimension: overworld, nether or end")
	flag.StringVar(&cfg.GameData, "game-data", cfg.GameData, "game data version")
	flag.StringVar(&cfg.FlatPreset, "flat-preset", cfg.FlatPreset, "flat generator layers, bottom to top")
	flag.StringVar(&cfg.ReplacerPreset, "replacer-preset", cfg.ReplacerPreset, "replacer preset of the custom generator")
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "world data directory")
	flag.StringVar(&cfg.ExportDir, "export-dir", cfg.ExportDir, "write Anvil region files of the legacy range here")
	flag.IntVar(&cfg.Radius, "radius", cfg.Radius, "pregeneration radius in columns")
	flag.IntVar(&cfg.MinCubeY, "min-cube-y", cfg.MinCubeY, "lowest cube Y to generate")
	flag.IntVar(&cfg.MaxCubeY, "max-cube-y", cfg.MaxCubeY, "highest cube Y to generate")
	flag.BoolVar(&cfg.Populate, "populate", cfg.Populate, "populate generated cubes")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	fromFile, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	config.Merge(cfg, fromFile, explicit)

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		slog.Error("parse log level", "level", cfg.LogLevel, "error", err)
		os.Exit(1)
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("start", "error", err)
		os.Exit(1)
	}
	runErr := srv.Run(ctx)
	if err := srv.Close(); err != nil {
		log.Error("close store", "error", err)
	}
	if runErr != nil {
		log.Error("pregeneration failed", "error", runErr)
		os.Exit(1)
	}
}
