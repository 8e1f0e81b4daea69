// Package dexcheck runs Lua data checks against the dex bundle. Scripts
// assert spot values and cross-table expectations the loader cannot
// know about, without recompiling anything.
package dexcheck

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
	"github.com/louisbranch/pokedex"
	apperrors "github.com/louisbranch/pokedex/internal/platform/errors"
)

// Config controls check execution.
type Config struct {
	// Dir is the directory of check scripts.
	Dir string
	// DataDir overrides the embedded veekun tables when set.
	DataDir string
}

// Result records the outcome of one check script.
type Result struct {
	Script string
	Err    error
}

// Runner executes Lua check scripts against a dex bundle.
type Runner struct {
	dex *pokedex.Pokedex
}

// NewRunner prepares a runner over a loaded bundle.
func NewRunner(dex *pokedex.Pokedex) (*Runner, error) {
	if dex == nil {
		return nil, errors.New("dex bundle is required")
	}
	return &Runner{dex: dex}, nil
}

// RunFile executes one check script. Each script gets a fresh Lua state
// so scripts cannot leak globals into each other. Errors carry the
// script path and line of the failing check.
func (r *Runner) RunFile(path string) error {
	state := lua.NewState()
	lua.OpenLibraries(state)
	registerDexGlobal(state, r.dex)
	registerCheckGlobal(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return fmt.Errorf("load script: %w", err)
	}
	return state.ProtectedCall(0, 0, 0)
}

// RunDir executes every *.lua script under dir in name order and
// reports one Result per script.
func (r *Runner) RunDir(dir string) ([]Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read check directory: %w", err)
	}

	var results []Result
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".lua") {
			continue
		}
		results = append(results, Result{
			Script: entry.Name(),
			Err:    r.RunFile(filepath.Join(dir, entry.Name())),
		})
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no check scripts in %s", dir)
	}
	return results, nil
}

// Run loads the bundle, executes every script under cfg.Dir, and writes
// one line per script. Any failed script turns into a CHECK_FAILED
// error so callers exit non-zero.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if strings.TrimSpace(cfg.Dir) == "" {
		return errors.New("check directory is required")
	}

	dex, err := loadBundle(cfg.DataDir)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeDataInvalid, "load dex bundle: "+err.Error(), err)
	}
	runner, err := NewRunner(dex)
	if err != nil {
		return err
	}

	results, err := runner.RunDir(cfg.Dir)
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", result.Script, result.Err)
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", result.Script)
	}
	if failed > 0 {
		return apperrors.WithMetadata(
			apperrors.CodeCheckFailed,
			fmt.Sprintf("%d of %d check scripts failed", failed, len(results)),
			map[string]string{"dir": cfg.Dir},
		)
	}
	fmt.Fprintf(out, "%d check scripts passed\n", len(results))
	return nil
}

func loadBundle(dataDir string) (*pokedex.Pokedex, error) {
	if dir := strings.TrimSpace(dataDir); dir != "" {
		return pokedex.LoadFS(os.DirFS(dir))
	}
	return pokedex.Load()
}
