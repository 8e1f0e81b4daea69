package dexdb

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/pokedex"
	storagesqlite "github.com/louisbranch/pokedex/internal/storage/sqlite"
)

func TestRunDryRunSkipsDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dex.db")

	var out bytes.Buffer
	err := Run(context.Background(), Config{DBPath: dbPath, DryRun: true}, &out)
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if !strings.Contains(out.String(), "validated bundle:") {
		t.Fatalf("dry run output = %q, want validation summary", out.String())
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatalf("expected dry run to leave no database, stat err = %v", err)
	}
}

func TestRunImportsBundle(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dex.db")

	var out bytes.Buffer
	if err := Run(context.Background(), Config{DBPath: dbPath}, &out); err != nil {
		t.Fatalf("run import: %v", err)
	}
	if !strings.Contains(out.String(), "imported") {
		t.Fatalf("import output = %q, want import summary", out.String())
	}

	store, err := storagesqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	counts := []struct {
		name  string
		count func(context.Context) (int64, error)
		want  int64
	}{
		{"moves", store.CountMoves, 92},
		{"items", store.CountItems, 132},
		{"berries", store.CountBerries, 64},
		{"species", store.CountSpecies, 47},
		{"pokemon", store.CountPokemon, 57},
	}
	for _, tc := range counts {
		got, err := tc.count(ctx)
		if err != nil {
			t.Fatalf("count %s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s count = %d, want %d", tc.name, got, tc.want)
		}
	}

	move, err := store.GetMove(ctx, 9)
	if err != nil {
		t.Fatalf("get thunder punch: %v", err)
	}
	if move.Name != "ThunderPunch" || move.Type != "Electric" {
		t.Errorf("move 9 = %q/%q, want ThunderPunch/Electric", move.Name, move.Type)
	}
	if move.Ailment != "Paralysis" || move.AilmentChance != 10 {
		t.Errorf("move 9 ailment = %q/%d, want Paralysis/10", move.Ailment, move.AilmentChance)
	}

	species, err := store.GetSpecies(ctx, 237)
	if err != nil {
		t.Fatalf("get hitmontop: %v", err)
	}
	if species.EvolvesFrom != 236 || species.EvolutionTrigger != "LevelUp" {
		t.Errorf("hitmontop evolution = %d/%q, want 236/LevelUp", species.EvolvesFrom, species.EvolutionTrigger)
	}
	if species.RelativePhysicalStats == nil || *species.RelativePhysicalStats != 0 {
		t.Errorf("hitmontop relative stats = %v, want 0", species.RelativePhysicalStats)
	}

	heat, err := store.GetPokemon(ctx, 657)
	if err != nil {
		t.Fatalf("get rotom-heat: %v", err)
	}
	if heat.SpeciesID != 479 || heat.Form != "heat" {
		t.Errorf("rotom-heat = species %d form %q, want 479/heat", heat.SpeciesID, heat.Form)
	}

	moves, err := store.ListPokemonMoves(ctx, 657)
	if err != nil {
		t.Fatalf("list rotom-heat moves: %v", err)
	}
	var overheat bool
	for _, pm := range moves {
		if pm.MoveID == 315 && pm.Method == "FormChange" && pm.VersionGroup == "BlackWhite" {
			overheat = true
		}
	}
	if !overheat {
		t.Error("rotom-heat should learn overheat by form change")
	}
}

func TestImportIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "dex.db")

	store, err := storagesqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	dex, err := pokedex.Load()
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}

	ctx := context.Background()
	if err := Import(ctx, store, dex); err != nil {
		t.Fatalf("first import: %v", err)
	}
	movesAfterFirst, err := store.CountMoves(ctx)
	if err != nil {
		t.Fatalf("count moves: %v", err)
	}
	learnedAfterFirst, err := store.CountPokemonMoves(ctx)
	if err != nil {
		t.Fatalf("count pokemon moves: %v", err)
	}

	if err := Import(ctx, store, dex); err != nil {
		t.Fatalf("second import: %v", err)
	}
	movesAfterSecond, err := store.CountMoves(ctx)
	if err != nil {
		t.Fatalf("recount moves: %v", err)
	}
	learnedAfterSecond, err := store.CountPokemonMoves(ctx)
	if err != nil {
		t.Fatalf("recount pokemon moves: %v", err)
	}

	if movesAfterFirst != 92 || movesAfterSecond != 92 {
		t.Fatalf("move counts = %d then %d, want 92 both times", movesAfterFirst, movesAfterSecond)
	}
	if learnedAfterFirst != learnedAfterSecond {
		t.Fatalf("pokemon move counts = %d then %d, want identical", learnedAfterFirst, learnedAfterSecond)
	}
	if learnedAfterFirst == 0 {
		t.Fatal("expected learned move rows after import")
	}
}

func TestMoveRecordFlattensMeta(t *testing.T) {
	dex, err := pokedex.Load()
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}

	wrap, ok := dex.Moves.ByName("wrap")
	if !ok {
		t.Fatal("wrap not found")
	}
	record := moveRecord(wrap)
	if record.Ailment != "Trap" {
		t.Errorf("ailment = %q, want Trap", record.Ailment)
	}
	if record.MinTurns != 4 || record.MaxTurns != 5 {
		t.Errorf("turns = %d..%d, want 4..5", record.MinTurns, record.MaxTurns)
	}

	doubleEdge, ok := dex.Moves.ByName("double-edge")
	if !ok {
		t.Fatal("double-edge not found")
	}
	record = moveRecord(doubleEdge)
	if record.Drain != -33 {
		t.Errorf("drain = %d, want -33", record.Drain)
	}
}

func TestLoadBundleUsesAlternateDir(t *testing.T) {
	if _, err := loadBundle(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected missing data dir to fail")
	}
}
