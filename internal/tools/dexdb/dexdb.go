// Package dexdb imports the dex bundle into a SQLite content database for
// downstream consumers that do not embed the Go library.
package dexdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/louisbranch/pokedex"
	apperrors "github.com/louisbranch/pokedex/internal/platform/errors"
	"github.com/louisbranch/pokedex/internal/storage"
	storagesqlite "github.com/louisbranch/pokedex/internal/storage/sqlite"
)

// Config holds configuration for the dex importer.
type Config struct {
	// DBPath is the content database path.
	DBPath string
	// DataDir overrides the embedded veekun tables when set.
	DataDir string
	// DryRun validates the bundle without writing to the database.
	DryRun bool
}

// Run loads the bundle and imports it into the content database. With
// DryRun set it stops after the bundle loads and cross-checks cleanly.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	dex, err := loadBundle(cfg.DataDir)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeDataInvalid, "load dex bundle: "+err.Error(), err)
	}

	counts := bundleCounts(dex)
	if cfg.DryRun {
		_, err := fmt.Fprintf(out, "validated bundle: %s\n", counts)
		return err
	}

	store, err := storagesqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open dex store: %w", err)
	}
	defer store.Close()

	if err := Import(ctx, store, dex); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "imported %s into %s\n", counts, cfg.DBPath)
	return err
}

func loadBundle(dataDir string) (*pokedex.Pokedex, error) {
	if dir := strings.TrimSpace(dataDir); dir != "" {
		return pokedex.LoadFS(os.DirFS(dir))
	}
	return pokedex.Load()
}

func bundleCounts(dex *pokedex.Pokedex) string {
	return fmt.Sprintf("%d moves, %d items, %d berries, %d species, %d pokemon",
		dex.Moves.Len(),
		dex.Items.Len(),
		len(dex.Items.BerryIDs()),
		dex.Species.Len(),
		len(dex.Species.PokemonIDs()),
	)
}

// Import writes every bundle record into the store. Re-imports upsert in
// place, so running the importer twice leaves the same rows.
func Import(ctx context.Context, store storage.DexStore, dex *pokedex.Pokedex) error {
	if store == nil {
		return errors.New("store is required")
	}
	if dex == nil {
		return errors.New("dex bundle is required")
	}

	if err := importMoves(ctx, store, dex); err != nil {
		return fmt.Errorf("import moves: %w", err)
	}
	if err := importItems(ctx, store, dex); err != nil {
		return fmt.Errorf("import items: %w", err)
	}
	if err := importBerries(ctx, store, dex); err != nil {
		return fmt.Errorf("import berries: %w", err)
	}
	if err := importSpecies(ctx, store, dex); err != nil {
		return fmt.Errorf("import species: %w", err)
	}
	if err := importPokemon(ctx, store, dex); err != nil {
		return fmt.Errorf("import pokemon: %w", err)
	}
	return nil
}

func importMoves(ctx context.Context, store storage.DexStore, dex *pokedex.Pokedex) error {
	for _, id := range dex.Moves.IDs() {
		move, ok := dex.Moves.ByID(id)
		if !ok {
			return fmt.Errorf("move %d missing from bundle", id)
		}
		if err := store.PutMove(ctx, moveRecord(move)); err != nil {
			return err
		}
	}
	return nil
}

func importItems(ctx context.Context, store storage.DexStore, dex *pokedex.Pokedex) error {
	for _, id := range dex.Items.IDs() {
		item, ok := dex.Items.ByID(id)
		if !ok {
			return fmt.Errorf("item %d missing from bundle", id)
		}
		if err := store.PutItem(ctx, itemRecord(item)); err != nil {
			return err
		}
	}
	return nil
}

func importBerries(ctx context.Context, store storage.DexStore, dex *pokedex.Pokedex) error {
	for _, id := range dex.Items.BerryIDs() {
		berry, ok := dex.Items.Berry(id)
		if !ok {
			return fmt.Errorf("berry %d missing from bundle", id)
		}
		if err := store.PutBerry(ctx, berryRecord(berry)); err != nil {
			return err
		}
	}
	return nil
}

func importSpecies(ctx context.Context, store storage.DexStore, dex *pokedex.Pokedex) error {
	for _, id := range dex.Species.IDs() {
		species, ok := dex.Species.ByID(id)
		if !ok {
			return fmt.Errorf("species %d missing from bundle", id)
		}
		if err := store.PutSpecies(ctx, speciesRecord(species)); err != nil {
			return err
		}
	}
	return nil
}

func importPokemon(ctx context.Context, store storage.DexStore, dex *pokedex.Pokedex) error {
	for _, id := range dex.Species.PokemonIDs() {
		pokemon, ok := dex.Species.Pokemon(id)
		if !ok {
			return fmt.Errorf("pokemon %d missing from bundle", id)
		}
		if err := store.PutPokemon(ctx, pokemonRecord(pokemon)); err != nil {
			return err
		}
		if err := store.PutPokemonMoves(ctx, int64(pokemon.ID), pokemonMoveRecords(pokemon)); err != nil {
			return err
		}
	}
	return nil
}

func moveRecord(move pokedex.Move) storage.Move {
	return storage.Move{
		ID:            int64(move.ID),
		Name:          move.Name,
		Generation:    move.Generation.String(),
		Type:          move.Type.String(),
		DamageClass:   move.Class.String(),
		Power:         int64(move.Power),
		PP:            int64(move.PP),
		Accuracy:      int64(move.Accuracy),
		Priority:      int64(move.Priority),
		Target:        move.Target.String(),
		Effect:        int64(move.Effect),
		EffectChance:  int64(move.EffectChance),
		Category:      move.Meta.Category.String(),
		Ailment:       move.Meta.Ailment.String(),
		AilmentChance: int64(move.Meta.AilmentChance),
		FlinchChance:  int64(move.Meta.FlinchChance),
		StatChance:    int64(move.Meta.StatChance),
		MinHits:       int64(move.Meta.Hits.Min),
		MaxHits:       int64(move.Meta.Hits.Max),
		MinTurns:      int64(move.Meta.Turns.Min),
		MaxTurns:      int64(move.Meta.Turns.Max),
		Drain:         int64(move.Meta.Drain),
		Healing:       int64(move.Meta.Healing),
		CriticalRate:  int64(move.Meta.CriticalRate),
		Flags:         int64(move.Meta.Flags),
	}
}

func itemRecord(item pokedex.Item) storage.Item {
	record := storage.Item{
		ID:          int64(item.ID),
		Name:        item.Name,
		Category:    item.Category.String(),
		Pocket:      item.Category.Pocket().String(),
		Cost:        int64(item.Cost),
		FlingPower:  int64(item.FlingPower),
		FlingEffect: item.FlingEffect.String(),
		Flags:       int64(item.Flags),
	}
	if berry, ok := item.Berry(); ok {
		record.BerryID = int64(berry.ID)
	}
	return record
}

func berryRecord(berry pokedex.Berry) storage.Berry {
	record := storage.Berry{
		ID:               int64(berry.ID),
		ItemID:           int64(berry.Item),
		NaturalGiftPower: int64(berry.NaturalGiftPower),
		NaturalGiftType:  berry.NaturalGiftType.String(),
	}
	if flavor, ok := berry.Flavor(); ok {
		record.Flavor = flavor.String()
	}
	return record
}

func speciesRecord(species pokedex.Species) storage.Species {
	record := storage.Species{
		ID:         int64(species.ID),
		Name:       species.Name,
		Generation: species.Generation.String(),
		GenderRate: int64(species.GenderRate),
		EggGroup1:  species.EggGroups.First().String(),
	}
	if second, ok := species.EggGroups.Second(); ok {
		record.EggGroup2 = second.String()
	}
	if evo, ok := species.EvolvesFrom(); ok {
		record.EvolvesFrom = int64(evo.FromID)
		record.EvolutionTrigger = evo.Trigger.String()
		record.EvolutionLevel = int64(evo.Level)
		if evo.Gender != pokedex.GenderGenderless {
			record.EvolutionGender = evo.Gender.String()
		}
		record.EvolutionItem = int64(evo.Item)
		record.EvolutionMove = int64(evo.MoveID)
		if stats, ok := evo.RelativePhysicalStats(); ok {
			value := int64(stats)
			record.RelativePhysicalStats = &value
		}
	}
	return record
}

func pokemonRecord(pokemon pokedex.Pokemon) storage.Pokemon {
	record := storage.Pokemon{
		ID:             int64(pokemon.ID),
		SpeciesID:      int64(pokemon.Species),
		HP:             int64(pokemon.Stats.Stat(pokedex.StatHP)),
		Attack:         int64(pokemon.Stats.Stat(pokedex.StatAttack)),
		Defense:        int64(pokemon.Stats.Stat(pokedex.StatDefense)),
		Speed:          int64(pokemon.Stats.Stat(pokedex.StatSpeed)),
		SpecialAttack:  int64(pokemon.Stats.Stat(pokedex.StatSpecialAttack)),
		SpecialDefense: int64(pokemon.Stats.Stat(pokedex.StatSpecialDefense)),
		Type1:          pokemon.Types.First().String(),
		Ability1:       pokemon.Abilities.First().String(),
	}
	if len(pokemon.Forms) > 0 {
		record.Form = pokemon.Forms[0].Name
		record.BattleOnly = pokemon.Forms[0].BattleOnly
	}
	if second, ok := pokemon.Types.Second(); ok {
		record.Type2 = second.String()
	}
	if second, ok := pokemon.Abilities.Second(); ok {
		record.Ability2 = second.String()
	}
	if hidden, ok := pokemon.HiddenAbility(); ok {
		record.HiddenAbility = hidden.String()
	}
	return record
}

func pokemonMoveRecords(pokemon pokedex.Pokemon) []storage.PokemonMove {
	var records []storage.PokemonMove
	for group, moves := range pokemon.Moves {
		for _, move := range moves {
			records = append(records, storage.PokemonMove{
				PokemonID:    int64(pokemon.ID),
				VersionGroup: group.String(),
				MoveID:       int64(move.MoveID),
				Method:       move.Method.String(),
				Level:        int64(move.Level),
			})
		}
	}
	return records
}
