// Package mcp parses MCP command flags and serves the dex bundle over
// MCP.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/louisbranch/pokedex"
	entrypoint "github.com/louisbranch/pokedex/internal/platform/cmd"
	"github.com/louisbranch/pokedex/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	Transport string `env:"POKEDEX_MCP_TRANSPORT" envDefault:"stdio"`
	DataDir   string `env:"POKEDEX_DATA_DIR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "MCP transport (stdio)")
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "alternate veekun table directory (defaults to the embedded tables)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the dex bundle and serves it over MCP until the context
// ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		dex, err := loadBundle(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("load dex bundle: %w", err)
		}
		return service.Run(ctx, dex, service.Config{
			Transport: service.TransportKind(cfg.Transport),
		})
	})
}

// loadBundle parses the embedded tables, or the tables in dir when one
// is given.
func loadBundle(dir string) (*pokedex.Pokedex, error) {
	if dir == "" {
		return pokedex.Load()
	}
	return pokedex.LoadFS(os.DirFS(dir))
}
