// Package deximport parses dex importer flags and launches the import.
package deximport

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"

	entrypoint "github.com/louisbranch/pokedex/internal/platform/cmd"
	"github.com/louisbranch/pokedex/internal/tools/dexdb"
)

// Config holds dex importer command configuration.
type Config struct {
	DBPath  string `env:"POKEDEX_DB_PATH"  envDefault:"data/dex.db"`
	DataDir string `env:"POKEDEX_DATA_DIR"`
	DryRun  bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "content database path")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "alternate veekun table directory (defaults to the embedded tables)")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "validate the bundle without writing to the database")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, errors.New("db-path is required")
	}
	return cfg, nil
}

// Run imports the dex bundle into the content database.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDexImport, func(ctx context.Context) error {
		return dexdb.Run(ctx, dexdb.Config{
			DBPath:  cfg.DBPath,
			DataDir: cfg.DataDir,
			DryRun:  cfg.DryRun,
		}, os.Stdout)
	})
}
