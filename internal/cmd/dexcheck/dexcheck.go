// Package dexcheck parses check runner flags and launches the checks.
package dexcheck

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"

	entrypoint "github.com/louisbranch/pokedex/internal/platform/cmd"
	"github.com/louisbranch/pokedex/internal/tools/dexcheck"
)

// Config holds dexcheck command configuration.
type Config struct {
	Dir     string `env:"POKEDEX_CHECK_DIR" envDefault:"checks"`
	DataDir string `env:"POKEDEX_DATA_DIR"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory of check scripts")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "alternate veekun table directory (defaults to the embedded tables)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.Dir) == "" {
		return Config{}, errors.New("check directory is required")
	}
	return cfg, nil
}

// Run executes every check script against the dex bundle.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDexCheck, func(context.Context) error {
		return dexcheck.Run(dexcheck.Config{
			Dir:     cfg.Dir,
			DataDir: cfg.DataDir,
		}, os.Stdout)
	})
}
