package mcp

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Transport != "stdio" {
		t.Fatalf("default transport = %q, want stdio", cfg.Transport)
	}
	if cfg.DataDir != "" {
		t.Fatalf("default data dir = %q, want empty", cfg.DataDir)
	}
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("POKEDEX_MCP_TRANSPORT", "env-transport")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-data-dir", "tables"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Transport != "env-transport" {
		t.Fatalf("transport = %q, want env-transport", cfg.Transport)
	}
	if cfg.DataDir != "tables" {
		t.Fatalf("data dir = %q, want tables", cfg.DataDir)
	}

	fs = flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err = ParseConfig(fs, []string{"-transport", "flag-transport"})
	if err != nil {
		t.Fatalf("parse config with flags: %v", err)
	}
	if cfg.Transport != "flag-transport" {
		t.Fatalf("transport = %q, want flag-transport", cfg.Transport)
	}
}

func TestLoadBundleUsesEmbeddedData(t *testing.T) {
	dex, err := loadBundle("")
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}
	if dex.Moves.Len() == 0 {
		t.Fatal("expected embedded bundle to carry moves")
	}
}
