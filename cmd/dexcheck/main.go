// Package main runs Lua data checks against the embedded dex bundle.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/pokedex/internal/platform/config"

	dexcheckcmd "github.com/louisbranch/pokedex/internal/cmd/dexcheck"
)

func main() {
	cfg, err := dexcheckcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dexcheckcmd.Run(ctx, cfg); err != nil {
		config.Exitf("Error: %v", err)
	}
}
