// Command presets fetches replacer preset files from any go-getter source (local
// path, git, http, s3, gcs) into <o>/<name> and checks them against the built-in
// replacers.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	getter "github.com/hashicorp/go-getter"

	"github.com/go-theft-craft/cubicchunks/pkg/gamedata"
	_ "github.com/go-theft-craft/cubicchunks/pkg/gamedata/versions/pc_1_8"
	"github.com/go-theft-craft/cubicchunks/pkg/world/cubic/replacer"
)

var errNoPresets = errors.New("no preset files found")

func main() {
	var (
		src     = flag.String("src", "", "go-getter source of a preset file or directory, e.g. git::https://example.com/presets.git//overworld")
		out     = flag.String("o", "./presets", "output dir path")
		name    = flag.String("name", "default", "name of the preset set, fetched into <o>/<name>")
		version = flag.String("game-data", "pc-1.8", "game data version used to resolve block names")
		list    = flag.Bool("list", false, "list the built-in replacers and their options, then exit")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	reg := replacer.Default()

	if *list {
		printReplacers(reg)
		return
	}
	if *src == "" {
		log.Error("-src is required")
		flag.Usage()
		os.Exit(2)
	}
	dst, err := presetDir(*out, *name)
	if err != nil {
		log.Error("invalid destination", "error", err)
		os.Exit(2)
	}

	data, err := gamedata.Load(*version)
	if err != nil {
		log.Error("load game data", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("fetching presets", "src", *src, "dst", dst)
	if err := fetch(ctx, *src, dst); err != nil {
		log.Error("fetch presets", "error", err)
		os.Exit(1)
	}

	checked, failed, err := checkDir(dst, reg, data, log)
	log.Info("done", "checked", checked, "failed", failed)
	if err != nil {
		log.Error("check presets", "dir", dst, "error", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// presetDir returns the directory a preset set is fetched into. Only that
// directory is ever cleared, never out itself.
func presetDir(out, name string) (string, error) {
	if out == "" {
		return "", errors.New("output dir path required")
	}
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid preset set name %q", name)
	}
	return filepath.Join(out, name), nil
}

// fetch replaces dst with the contents of src.
func fetch(ctx context.Context, src, dst string) error {
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("clear destination: %w", err)
	}
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeAny,
	}
	return client.Get()
}

// checkDir validates every preset under root. Local directory sources are
// symlinked by go-getter, so root is resolved before walking.
func checkDir(root string, reg *replacer.Registry, data *gamedata.GameData, log *slog.Logger) (checked, failed int, err error) {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return 0, 0, fmt.Errorf("resolve %s: %w", root, err)
	}
	err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isPreset(path) {
			return nil
		}
		checked++
		if err := checkPreset(path, reg, data); err != nil {
			failed++
			log.Error("invalid preset", "path", path, "error", err)
			return nil
		}
		log.Info("preset ok", "path", path)
		return nil
	})
	if err != nil {
		return checked, failed, fmt.Errorf("walk presets: %w", err)
	}
	if checked == 0 {
		return 0, 0, errNoPresets
	}
	return checked, failed, nil
}

func isPreset(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func checkPreset(path string, reg *replacer.Registry, data *gamedata.GameData) error {
	p, err := replacer.LoadPreset(path)
	if err != nil {
		return err
	}
	if err := p.Validate(reg, data.Blocks); err != nil {
		return err
	}
	for name := range p.Biomes {
		if _, ok := data.Biomes.ByName(name); !ok {
			return fmt.Errorf("unknown biome %q", name)
		}
	}
	return nil
}

func printReplacers(reg *replacer.Registry) {
	for _, k := range reg.Keys() {
		fmt.Println(k)
		opts, _ := reg.Options(k)
		for _, o := range opts {
			fmt.Printf("  %s (%s, default %v)\n", o.Key, o.Kind, o.Default)
		}
	}
}
