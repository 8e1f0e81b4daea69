// Package main imports the embedded dex bundle into a SQLite content database.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/pokedex/internal/platform/config"

	deximportcmd "github.com/louisbranch/pokedex/internal/cmd/deximport"
)

func main() {
	cfg, err := deximportcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := deximportcmd.Run(ctx, cfg); err != nil {
		config.Exitf("Error: %v", err)
	}
}
