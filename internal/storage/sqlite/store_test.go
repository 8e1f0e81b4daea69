package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/louisbranch/pokedex/internal/storage"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir() + "/dex.db")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleMove(id int64, name string) storage.Move {
	return storage.Move{
		ID:            id,
		Name:          name,
		Generation:    "I",
		Type:          "Electric",
		DamageClass:   "Physical",
		Power:         75,
		PP:            15,
		Accuracy:      100,
		Target:        "SelectedPokemon",
		Effect:        7,
		EffectChance:  10,
		Category:      "DamageAilment",
		Ailment:       "Paralysis",
		AilmentChance: 10,
		Flags:         1 | 16 | 1024,
	}
}

func TestMoveRoundTripAndUpdate(t *testing.T) {
	store := openStore(t)

	if err := store.PutMove(context.Background(), sampleMove(9, "ThunderPunch")); err != nil {
		t.Fatalf("put move: %v", err)
	}

	move, err := store.GetMove(context.Background(), 9)
	if err != nil {
		t.Fatalf("get move: %v", err)
	}
	if move.Name != "ThunderPunch" {
		t.Fatalf("name = %q, want ThunderPunch", move.Name)
	}
	if move.Power != 75 || move.PP != 15 || move.Accuracy != 100 {
		t.Fatalf("stats = %d/%d/%d, want 75/15/100", move.Power, move.PP, move.Accuracy)
	}
	if move.Ailment != "Paralysis" || move.AilmentChance != 10 {
		t.Fatalf("ailment = %q/%d, want Paralysis/10", move.Ailment, move.AilmentChance)
	}

	updated := sampleMove(9, "ThunderPunch")
	updated.Power = 80
	if err := store.PutMove(context.Background(), updated); err != nil {
		t.Fatalf("re-put move: %v", err)
	}

	move, err = store.GetMove(context.Background(), 9)
	if err != nil {
		t.Fatalf("get updated move: %v", err)
	}
	if move.Power != 80 {
		t.Fatalf("power after update = %d, want 80", move.Power)
	}

	total, err := store.CountMoves(context.Background())
	if err != nil {
		t.Fatalf("count moves: %v", err)
	}
	if total != 1 {
		t.Fatalf("move count = %d, want 1", total)
	}
}

func TestGetMoveNotFound(t *testing.T) {
	store := openStore(t)

	if _, err := store.GetMove(context.Background(), 42); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get missing move = %v, want ErrNotFound", err)
	}
}

func TestPutMoveRejectsInvalidRecords(t *testing.T) {
	store := openStore(t)

	if err := store.PutMove(context.Background(), sampleMove(0, "Pound")); err == nil {
		t.Fatal("expected zero move id to be rejected")
	}
	if err := store.PutMove(context.Background(), sampleMove(1, " ")); err == nil {
		t.Fatal("expected blank move name to be rejected")
	}
}

func TestListMovesPaginates(t *testing.T) {
	store := openStore(t)

	names := []string{"Pound", "KarateChop", "DoubleSlap", "CometPunch", "MegaPunch"}
	for i, name := range names {
		if err := store.PutMove(context.Background(), sampleMove(int64(i+1), name)); err != nil {
			t.Fatalf("put move %s: %v", name, err)
		}
	}

	page, err := store.ListMoves(context.Background(), 2, "")
	if err != nil {
		t.Fatalf("list first page: %v", err)
	}
	if len(page.Moves) != 2 {
		t.Fatalf("first page len = %d, want 2", len(page.Moves))
	}
	if page.Moves[0].ID != 1 || page.Moves[1].ID != 2 {
		t.Fatalf("first page ids = %d,%d, want 1,2", page.Moves[0].ID, page.Moves[1].ID)
	}
	if page.NextPageToken == "" {
		t.Fatal("expected next page token on first page")
	}

	page, err = store.ListMoves(context.Background(), 2, page.NextPageToken)
	if err != nil {
		t.Fatalf("list second page: %v", err)
	}
	if len(page.Moves) != 2 {
		t.Fatalf("second page len = %d, want 2", len(page.Moves))
	}
	if page.Moves[0].ID != 3 || page.Moves[1].ID != 4 {
		t.Fatalf("second page ids = %d,%d, want 3,4", page.Moves[0].ID, page.Moves[1].ID)
	}

	page, err = store.ListMoves(context.Background(), 2, page.NextPageToken)
	if err != nil {
		t.Fatalf("list last page: %v", err)
	}
	if len(page.Moves) != 1 {
		t.Fatalf("last page len = %d, want 1", len(page.Moves))
	}
	if page.Moves[0].ID != 5 {
		t.Fatalf("last page id = %d, want 5", page.Moves[0].ID)
	}
	if page.NextPageToken != "" {
		t.Fatalf("expected empty token on last page, got %q", page.NextPageToken)
	}
}

func TestListMovesRejectsBadToken(t *testing.T) {
	store := openStore(t)

	if _, err := store.ListMoves(context.Background(), 2, "not-a-number"); err == nil {
		t.Fatal("expected bad page token to be rejected")
	}
}

func TestItemRoundTripWithBerryLink(t *testing.T) {
	store := openStore(t)

	if err := store.PutItem(context.Background(), storage.Item{
		ID:          126,
		Name:        "CheriBerry",
		Category:    "MedicalBerries",
		Pocket:      "Berries",
		Cost:        20,
		FlingPower:  10,
		FlingEffect: "ActivateBerry",
		Flags:       1 | 2,
		BerryID:     1,
	}); err != nil {
		t.Fatalf("put item: %v", err)
	}
	if err := store.PutBerry(context.Background(), storage.Berry{
		ID:               1,
		ItemID:           126,
		NaturalGiftPower: 60,
		NaturalGiftType:  "Fire",
		Flavor:           "Spicy",
	}); err != nil {
		t.Fatalf("put berry: %v", err)
	}

	item, err := store.GetItem(context.Background(), 126)
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if item.BerryID != 1 {
		t.Fatalf("berry id = %d, want 1", item.BerryID)
	}

	berry, err := store.GetBerry(context.Background(), 1)
	if err != nil {
		t.Fatalf("get berry: %v", err)
	}
	if berry.ItemID != 126 {
		t.Fatalf("berry item id = %d, want 126", berry.ItemID)
	}
	if berry.NaturalGiftPower != 60 || berry.NaturalGiftType != "Fire" {
		t.Fatalf("natural gift = %d/%q, want 60/Fire", berry.NaturalGiftPower, berry.NaturalGiftType)
	}
	if berry.Flavor != "Spicy" {
		t.Fatalf("flavor = %q, want Spicy", berry.Flavor)
	}

	if _, err := store.GetBerry(context.Background(), 2); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get missing berry = %v, want ErrNotFound", err)
	}
}

func TestSpeciesRoundTripKeepsRelativeStats(t *testing.T) {
	store := openStore(t)

	zero := int64(0)
	if err := store.PutSpecies(context.Background(), storage.Species{
		ID:                    237,
		Name:                  "Hitmontop",
		Generation:            "II",
		GenderRate:            0,
		EggGroup1:             "Humanshape",
		EvolvesFrom:           236,
		EvolutionTrigger:      "LevelUp",
		EvolutionLevel:        20,
		RelativePhysicalStats: &zero,
	}); err != nil {
		t.Fatalf("put hitmontop: %v", err)
	}
	if err := store.PutSpecies(context.Background(), storage.Species{
		ID:         236,
		Name:       "Tyrogue",
		Generation: "II",
		GenderRate: 0,
		EggGroup1:  "Humanshape",
	}); err != nil {
		t.Fatalf("put tyrogue: %v", err)
	}

	species, err := store.GetSpecies(context.Background(), 237)
	if err != nil {
		t.Fatalf("get hitmontop: %v", err)
	}
	if species.RelativePhysicalStats == nil {
		t.Fatal("expected relative physical stats to round-trip")
	}
	if *species.RelativePhysicalStats != 0 {
		t.Fatalf("relative stats = %d, want 0", *species.RelativePhysicalStats)
	}
	if species.EvolvesFrom != 236 || species.EvolutionTrigger != "LevelUp" {
		t.Fatalf("evolution = %d/%q, want 236/LevelUp", species.EvolvesFrom, species.EvolutionTrigger)
	}

	species, err = store.GetSpecies(context.Background(), 236)
	if err != nil {
		t.Fatalf("get tyrogue: %v", err)
	}
	if species.RelativePhysicalStats != nil {
		t.Fatal("expected base species to have no relative stats requirement")
	}
	if species.EvolvesFrom != 0 {
		t.Fatalf("evolves from = %d, want 0", species.EvolvesFrom)
	}
}

func TestListSpeciesPaginates(t *testing.T) {
	store := openStore(t)

	for id := int64(1); id <= 3; id++ {
		if err := store.PutSpecies(context.Background(), storage.Species{
			ID:         id,
			Name:       "Species",
			Generation: "I",
			GenderRate: 4,
			EggGroup1:  "Monster",
		}); err != nil {
			t.Fatalf("put species %d: %v", id, err)
		}
	}

	page, err := store.ListSpecies(context.Background(), 2, "")
	if err != nil {
		t.Fatalf("list species: %v", err)
	}
	if len(page.Species) != 2 || page.NextPageToken != "2" {
		t.Fatalf("page = %d entries token %q, want 2 entries token 2", len(page.Species), page.NextPageToken)
	}

	page, err = store.ListSpecies(context.Background(), 2, page.NextPageToken)
	if err != nil {
		t.Fatalf("list species tail: %v", err)
	}
	if len(page.Species) != 1 || page.NextPageToken != "" {
		t.Fatalf("tail = %d entries token %q, want 1 entry empty token", len(page.Species), page.NextPageToken)
	}
}

func TestPokemonRoundTrip(t *testing.T) {
	store := openStore(t)

	if err := store.PutPokemon(context.Background(), storage.Pokemon{
		ID:             479,
		SpeciesID:      479,
		Form:           "heat",
		BattleOnly:     false,
		HP:             50,
		Attack:         65,
		Defense:        107,
		Speed:          86,
		SpecialAttack:  105,
		SpecialDefense: 107,
		Type1:          "Electric",
		Type2:          "Fire",
		Ability1:       "Levitate",
	}); err != nil {
		t.Fatalf("put pokemon: %v", err)
	}

	pokemon, err := store.GetPokemon(context.Background(), 479)
	if err != nil {
		t.Fatalf("get pokemon: %v", err)
	}
	if pokemon.Form != "heat" {
		t.Fatalf("form = %q, want heat", pokemon.Form)
	}
	if pokemon.BattleOnly {
		t.Fatal("expected battle_only to be false")
	}
	if pokemon.Type1 != "Electric" || pokemon.Type2 != "Fire" {
		t.Fatalf("types = %q/%q, want Electric/Fire", pokemon.Type1, pokemon.Type2)
	}
	if pokemon.HiddenAbility != "" {
		t.Fatalf("hidden ability = %q, want empty", pokemon.HiddenAbility)
	}

	if _, err := store.GetPokemon(context.Background(), 1); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get missing pokemon = %v, want ErrNotFound", err)
	}
}

func TestPokemonMovesReplaceOnReimport(t *testing.T) {
	store := openStore(t)

	first := []storage.PokemonMove{
		{PokemonID: 25, VersionGroup: "BlackWhite", MoveID: 85, Method: "LevelUp", Level: 29},
		{PokemonID: 25, VersionGroup: "BlackWhite", MoveID: 84, Method: "LevelUp", Level: 1},
		{PokemonID: 25, VersionGroup: "Yellow", MoveID: 57, Method: "StadiumSurfingPikachu"},
	}
	if err := store.PutPokemonMoves(context.Background(), 25, first); err != nil {
		t.Fatalf("put pokemon moves: %v", err)
	}

	moves, err := store.ListPokemonMoves(context.Background(), 25)
	if err != nil {
		t.Fatalf("list pokemon moves: %v", err)
	}
	if len(moves) != 3 {
		t.Fatalf("moves len = %d, want 3", len(moves))
	}
	if moves[0].VersionGroup != "BlackWhite" || moves[0].MoveID != 84 {
		t.Fatalf("first move = %q/%d, want BlackWhite/84", moves[0].VersionGroup, moves[0].MoveID)
	}

	second := []storage.PokemonMove{
		{PokemonID: 25, VersionGroup: "BlackWhite", MoveID: 85, Method: "LevelUp", Level: 29},
	}
	if err := store.PutPokemonMoves(context.Background(), 25, second); err != nil {
		t.Fatalf("re-put pokemon moves: %v", err)
	}

	moves, err = store.ListPokemonMoves(context.Background(), 25)
	if err != nil {
		t.Fatalf("list replaced moves: %v", err)
	}
	if len(moves) != 1 {
		t.Fatalf("replaced moves len = %d, want 1", len(moves))
	}

	total, err := store.CountPokemonMoves(context.Background())
	if err != nil {
		t.Fatalf("count pokemon moves: %v", err)
	}
	if total != 1 {
		t.Fatalf("pokemon move count = %d, want 1", total)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected empty path to be rejected")
	}
}
