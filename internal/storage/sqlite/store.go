// Package sqlite provides a SQLite-backed dex storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/louisbranch/pokedex/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/pokedex/internal/storage"
	"github.com/louisbranch/pokedex/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists dex content in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite dex store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready() error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func parsePageToken(token string) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid page token %q", token)
	}
	return id, nil
}

// PutMove upserts one move keyed by id.
func (s *Store) PutMove(ctx context.Context, move storage.Move) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if move.ID <= 0 {
		return fmt.Errorf("move id is required")
	}
	if strings.TrimSpace(move.Name) == "" {
		return fmt.Errorf("move name is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO moves (
		   id, name, generation, type, damage_class, power, pp, accuracy,
		   priority, target, effect, effect_chance, category, ailment,
		   ailment_chance, flinch_chance, stat_chance, min_hits, max_hits,
		   min_turns, max_turns, drain, healing, critical_rate, flags
		 )
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   generation = excluded.generation,
		   type = excluded.type,
		   damage_class = excluded.damage_class,
		   power = excluded.power,
		   pp = excluded.pp,
		   accuracy = excluded.accuracy,
		   priority = excluded.priority,
		   target = excluded.target,
		   effect = excluded.effect,
		   effect_chance = excluded.effect_chance,
		   category = excluded.category,
		   ailment = excluded.ailment,
		   ailment_chance = excluded.ailment_chance,
		   flinch_chance = excluded.flinch_chance,
		   stat_chance = excluded.stat_chance,
		   min_hits = excluded.min_hits,
		   max_hits = excluded.max_hits,
		   min_turns = excluded.min_turns,
		   max_turns = excluded.max_turns,
		   drain = excluded.drain,
		   healing = excluded.healing,
		   critical_rate = excluded.critical_rate,
		   flags = excluded.flags`,
		move.ID,
		move.Name,
		move.Generation,
		move.Type,
		move.DamageClass,
		move.Power,
		move.PP,
		move.Accuracy,
		move.Priority,
		move.Target,
		move.Effect,
		move.EffectChance,
		move.Category,
		move.Ailment,
		move.AilmentChance,
		move.FlinchChance,
		move.StatChance,
		move.MinHits,
		move.MaxHits,
		move.MinTurns,
		move.MaxTurns,
		move.Drain,
		move.Healing,
		move.CriticalRate,
		move.Flags,
	)
	if err != nil {
		return fmt.Errorf("put move: %w", err)
	}
	return nil
}

const moveColumns = `id, name, generation, type, damage_class, power, pp, accuracy,
	priority, target, effect, effect_chance, category, ailment,
	ailment_chance, flinch_chance, stat_chance, min_hits, max_hits,
	min_turns, max_turns, drain, healing, critical_rate, flags`

func scanMove(scan func(...any) error) (storage.Move, error) {
	var move storage.Move
	err := scan(
		&move.ID,
		&move.Name,
		&move.Generation,
		&move.Type,
		&move.DamageClass,
		&move.Power,
		&move.PP,
		&move.Accuracy,
		&move.Priority,
		&move.Target,
		&move.Effect,
		&move.EffectChance,
		&move.Category,
		&move.Ailment,
		&move.AilmentChance,
		&move.FlinchChance,
		&move.StatChance,
		&move.MinHits,
		&move.MaxHits,
		&move.MinTurns,
		&move.MaxTurns,
		&move.Drain,
		&move.Healing,
		&move.CriticalRate,
		&move.Flags,
	)
	return move, err
}

// GetMove returns one move by id.
func (s *Store) GetMove(ctx context.Context, id int64) (storage.Move, error) {
	if err := ctx.Err(); err != nil {
		return storage.Move{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Move{}, err
	}
	if id <= 0 {
		return storage.Move{}, fmt.Errorf("move id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+moveColumns+` FROM moves WHERE id = ?`,
		id,
	)
	move, err := scanMove(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Move{}, storage.ErrNotFound
		}
		return storage.Move{}, fmt.Errorf("get move: %w", err)
	}
	return move, nil
}

// CountMoves returns the number of stored moves.
func (s *Store) CountMoves(ctx context.Context) (int64, error) {
	return s.count(ctx, "moves")
}

// ListMoves returns one page of moves ordered by id.
func (s *Store) ListMoves(ctx context.Context, pageSize int, pageToken string) (storage.MovePage, error) {
	if err := ctx.Err(); err != nil {
		return storage.MovePage{}, err
	}
	if err := s.ready(); err != nil {
		return storage.MovePage{}, err
	}
	if pageSize <= 0 {
		return storage.MovePage{}, fmt.Errorf("page size must be greater than zero")
	}
	afterID, err := parsePageToken(pageToken)
	if err != nil {
		return storage.MovePage{}, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+moveColumns+`
		 FROM moves
		 WHERE id > ?
		 ORDER BY id ASC
		 LIMIT ?`,
		afterID,
		pageSize+1,
	)
	if err != nil {
		return storage.MovePage{}, fmt.Errorf("list moves: %w", err)
	}
	defer rows.Close()

	page := storage.MovePage{
		Moves: make([]storage.Move, 0, pageSize),
	}
	for rows.Next() {
		move, err := scanMove(rows.Scan)
		if err != nil {
			return storage.MovePage{}, fmt.Errorf("list moves: %w", err)
		}
		page.Moves = append(page.Moves, move)
	}
	if err := rows.Err(); err != nil {
		return storage.MovePage{}, fmt.Errorf("list moves: %w", err)
	}

	if len(page.Moves) > pageSize {
		page.Moves = page.Moves[:pageSize]
		page.NextPageToken = strconv.FormatInt(page.Moves[pageSize-1].ID, 10)
	}
	return page, nil
}

// PutItem upserts one item keyed by id.
func (s *Store) PutItem(ctx context.Context, item storage.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if item.ID <= 0 {
		return fmt.Errorf("item id is required")
	}
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("item name is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO items (
		   id, name, category, pocket, cost, fling_power, fling_effect,
		   flags, berry_id
		 )
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   category = excluded.category,
		   pocket = excluded.pocket,
		   cost = excluded.cost,
		   fling_power = excluded.fling_power,
		   fling_effect = excluded.fling_effect,
		   flags = excluded.flags,
		   berry_id = excluded.berry_id`,
		item.ID,
		item.Name,
		item.Category,
		item.Pocket,
		item.Cost,
		item.FlingPower,
		item.FlingEffect,
		item.Flags,
		item.BerryID,
	)
	if err != nil {
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}

// GetItem returns one item by id.
func (s *Store) GetItem(ctx context.Context, id int64) (storage.Item, error) {
	if err := ctx.Err(); err != nil {
		return storage.Item{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Item{}, err
	}
	if id <= 0 {
		return storage.Item{}, fmt.Errorf("item id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, category, pocket, cost, fling_power, fling_effect,
		        flags, berry_id
		 FROM items
		 WHERE id = ?`,
		id,
	)
	var item storage.Item
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Pocket,
		&item.Cost,
		&item.FlingPower,
		&item.FlingEffect,
		&item.Flags,
		&item.BerryID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Item{}, storage.ErrNotFound
		}
		return storage.Item{}, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// CountItems returns the number of stored items.
func (s *Store) CountItems(ctx context.Context) (int64, error) {
	return s.count(ctx, "items")
}

// PutBerry upserts one berry keyed by berry id.
func (s *Store) PutBerry(ctx context.Context, berry storage.Berry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if berry.ID <= 0 {
		return fmt.Errorf("berry id is required")
	}
	if berry.ItemID <= 0 {
		return fmt.Errorf("berry item id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO berries (
		   id, item_id, natural_gift_power, natural_gift_type, flavor
		 )
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   item_id = excluded.item_id,
		   natural_gift_power = excluded.natural_gift_power,
		   natural_gift_type = excluded.natural_gift_type,
		   flavor = excluded.flavor`,
		berry.ID,
		berry.ItemID,
		berry.NaturalGiftPower,
		berry.NaturalGiftType,
		berry.Flavor,
	)
	if err != nil {
		return fmt.Errorf("put berry: %w", err)
	}
	return nil
}

// GetBerry returns one berry by berry id.
func (s *Store) GetBerry(ctx context.Context, id int64) (storage.Berry, error) {
	if err := ctx.Err(); err != nil {
		return storage.Berry{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Berry{}, err
	}
	if id <= 0 {
		return storage.Berry{}, fmt.Errorf("berry id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, item_id, natural_gift_power, natural_gift_type, flavor
		 FROM berries
		 WHERE id = ?`,
		id,
	)
	var berry storage.Berry
	err := row.Scan(
		&berry.ID,
		&berry.ItemID,
		&berry.NaturalGiftPower,
		&berry.NaturalGiftType,
		&berry.Flavor,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Berry{}, storage.ErrNotFound
		}
		return storage.Berry{}, fmt.Errorf("get berry: %w", err)
	}
	return berry, nil
}

// CountBerries returns the number of stored berries.
func (s *Store) CountBerries(ctx context.Context) (int64, error) {
	return s.count(ctx, "berries")
}

// PutSpecies upserts one species keyed by National Pokédex number.
func (s *Store) PutSpecies(ctx context.Context, species storage.Species) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if species.ID <= 0 {
		return fmt.Errorf("species id is required")
	}
	if strings.TrimSpace(species.Name) == "" {
		return fmt.Errorf("species name is required")
	}

	var relativeStats sql.NullInt64
	if species.RelativePhysicalStats != nil {
		relativeStats = sql.NullInt64{Int64: *species.RelativePhysicalStats, Valid: true}
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO species (
		   id, name, generation, gender_rate, egg_group_1, egg_group_2,
		   evolves_from, evolution_trigger, evolution_level,
		   evolution_gender, evolution_item, evolution_move,
		   relative_physical_stats
		 )
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   generation = excluded.generation,
		   gender_rate = excluded.gender_rate,
		   egg_group_1 = excluded.egg_group_1,
		   egg_group_2 = excluded.egg_group_2,
		   evolves_from = excluded.evolves_from,
		   evolution_trigger = excluded.evolution_trigger,
		   evolution_level = excluded.evolution_level,
		   evolution_gender = excluded.evolution_gender,
		   evolution_item = excluded.evolution_item,
		   evolution_move = excluded.evolution_move,
		   relative_physical_stats = excluded.relative_physical_stats`,
		species.ID,
		species.Name,
		species.Generation,
		species.GenderRate,
		species.EggGroup1,
		species.EggGroup2,
		species.EvolvesFrom,
		species.EvolutionTrigger,
		species.EvolutionLevel,
		species.EvolutionGender,
		species.EvolutionItem,
		species.EvolutionMove,
		relativeStats,
	)
	if err != nil {
		return fmt.Errorf("put species: %w", err)
	}
	return nil
}

const speciesColumns = `id, name, generation, gender_rate, egg_group_1, egg_group_2,
	evolves_from, evolution_trigger, evolution_level, evolution_gender,
	evolution_item, evolution_move, relative_physical_stats`

func scanSpecies(scan func(...any) error) (storage.Species, error) {
	var species storage.Species
	var relativeStats sql.NullInt64
	err := scan(
		&species.ID,
		&species.Name,
		&species.Generation,
		&species.GenderRate,
		&species.EggGroup1,
		&species.EggGroup2,
		&species.EvolvesFrom,
		&species.EvolutionTrigger,
		&species.EvolutionLevel,
		&species.EvolutionGender,
		&species.EvolutionItem,
		&species.EvolutionMove,
		&relativeStats,
	)
	if err != nil {
		return storage.Species{}, err
	}
	if relativeStats.Valid {
		value := relativeStats.Int64
		species.RelativePhysicalStats = &value
	}
	return species, nil
}

// GetSpecies returns one species by National Pokédex number.
func (s *Store) GetSpecies(ctx context.Context, id int64) (storage.Species, error) {
	if err := ctx.Err(); err != nil {
		return storage.Species{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Species{}, err
	}
	if id <= 0 {
		return storage.Species{}, fmt.Errorf("species id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT `+speciesColumns+` FROM species WHERE id = ?`,
		id,
	)
	species, err := scanSpecies(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Species{}, storage.ErrNotFound
		}
		return storage.Species{}, fmt.Errorf("get species: %w", err)
	}
	return species, nil
}

// CountSpecies returns the number of stored species.
func (s *Store) CountSpecies(ctx context.Context) (int64, error) {
	return s.count(ctx, "species")
}

// ListSpecies returns one page of species ordered by id.
func (s *Store) ListSpecies(ctx context.Context, pageSize int, pageToken string) (storage.SpeciesPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.SpeciesPage{}, err
	}
	if err := s.ready(); err != nil {
		return storage.SpeciesPage{}, err
	}
	if pageSize <= 0 {
		return storage.SpeciesPage{}, fmt.Errorf("page size must be greater than zero")
	}
	afterID, err := parsePageToken(pageToken)
	if err != nil {
		return storage.SpeciesPage{}, err
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT `+speciesColumns+`
		 FROM species
		 WHERE id > ?
		 ORDER BY id ASC
		 LIMIT ?`,
		afterID,
		pageSize+1,
	)
	if err != nil {
		return storage.SpeciesPage{}, fmt.Errorf("list species: %w", err)
	}
	defer rows.Close()

	page := storage.SpeciesPage{
		Species: make([]storage.Species, 0, pageSize),
	}
	for rows.Next() {
		species, err := scanSpecies(rows.Scan)
		if err != nil {
			return storage.SpeciesPage{}, fmt.Errorf("list species: %w", err)
		}
		page.Species = append(page.Species, species)
	}
	if err := rows.Err(); err != nil {
		return storage.SpeciesPage{}, fmt.Errorf("list species: %w", err)
	}

	if len(page.Species) > pageSize {
		page.Species = page.Species[:pageSize]
		page.NextPageToken = strconv.FormatInt(page.Species[pageSize-1].ID, 10)
	}
	return page, nil
}

// PutPokemon upserts one Pokémon keyed by id.
func (s *Store) PutPokemon(ctx context.Context, pokemon storage.Pokemon) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if pokemon.ID <= 0 {
		return fmt.Errorf("pokemon id is required")
	}
	if pokemon.SpeciesID <= 0 {
		return fmt.Errorf("pokemon species id is required")
	}

	battleOnly := 0
	if pokemon.BattleOnly {
		battleOnly = 1
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO pokemon (
		   id, species_id, form, battle_only, hp, attack, defense, speed,
		   special_attack, special_defense, type_1, type_2, ability_1,
		   ability_2, hidden_ability
		 )
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   species_id = excluded.species_id,
		   form = excluded.form,
		   battle_only = excluded.battle_only,
		   hp = excluded.hp,
		   attack = excluded.attack,
		   defense = excluded.defense,
		   speed = excluded.speed,
		   special_attack = excluded.special_attack,
		   special_defense = excluded.special_defense,
		   type_1 = excluded.type_1,
		   type_2 = excluded.type_2,
		   ability_1 = excluded.ability_1,
		   ability_2 = excluded.ability_2,
		   hidden_ability = excluded.hidden_ability`,
		pokemon.ID,
		pokemon.SpeciesID,
		pokemon.Form,
		battleOnly,
		pokemon.HP,
		pokemon.Attack,
		pokemon.Defense,
		pokemon.Speed,
		pokemon.SpecialAttack,
		pokemon.SpecialDefense,
		pokemon.Type1,
		pokemon.Type2,
		pokemon.Ability1,
		pokemon.Ability2,
		pokemon.HiddenAbility,
	)
	if err != nil {
		return fmt.Errorf("put pokemon: %w", err)
	}
	return nil
}

// GetPokemon returns one Pokémon by id.
func (s *Store) GetPokemon(ctx context.Context, id int64) (storage.Pokemon, error) {
	if err := ctx.Err(); err != nil {
		return storage.Pokemon{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Pokemon{}, err
	}
	if id <= 0 {
		return storage.Pokemon{}, fmt.Errorf("pokemon id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, species_id, form, battle_only, hp, attack, defense,
		        speed, special_attack, special_defense, type_1, type_2,
		        ability_1, ability_2, hidden_ability
		 FROM pokemon
		 WHERE id = ?`,
		id,
	)
	var pokemon storage.Pokemon
	var battleOnly int64
	err := row.Scan(
		&pokemon.ID,
		&pokemon.SpeciesID,
		&pokemon.Form,
		&battleOnly,
		&pokemon.HP,
		&pokemon.Attack,
		&pokemon.Defense,
		&pokemon.Speed,
		&pokemon.SpecialAttack,
		&pokemon.SpecialDefense,
		&pokemon.Type1,
		&pokemon.Type2,
		&pokemon.Ability1,
		&pokemon.Ability2,
		&pokemon.HiddenAbility,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Pokemon{}, storage.ErrNotFound
		}
		return storage.Pokemon{}, fmt.Errorf("get pokemon: %w", err)
	}
	pokemon.BattleOnly = battleOnly != 0
	return pokemon, nil
}

// CountPokemon returns the number of stored Pokémon.
func (s *Store) CountPokemon(ctx context.Context) (int64, error) {
	return s.count(ctx, "pokemon")
}

// PutPokemonMoves replaces the learned moves of one Pokémon.
func (s *Store) PutPokemonMoves(ctx context.Context, pokemonID int64, moves []storage.PokemonMove) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ready(); err != nil {
		return err
	}
	if pokemonID <= 0 {
		return fmt.Errorf("pokemon id is required")
	}
	for _, move := range moves {
		if move.MoveID <= 0 {
			return fmt.Errorf("move id is required")
		}
		if strings.TrimSpace(move.VersionGroup) == "" {
			return fmt.Errorf("version group is required")
		}
		if strings.TrimSpace(move.Method) == "" {
			return fmt.Errorf("learn method is required")
		}
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("put pokemon moves: %w", err)
	}
	if _, err := tx.ExecContext(
		ctx,
		`DELETE FROM pokemon_moves WHERE pokemon_id = ?`,
		pokemonID,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("put pokemon moves: %w", err)
	}
	for _, move := range moves {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT OR IGNORE INTO pokemon_moves (
			   pokemon_id, version_group, move_id, method, level
			 )
			 VALUES (?, ?, ?, ?, ?)`,
			pokemonID,
			move.VersionGroup,
			move.MoveID,
			move.Method,
			move.Level,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("put pokemon moves: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("put pokemon moves: %w", err)
	}
	return nil
}

// ListPokemonMoves returns every learned move of one Pokémon ordered by
// version group, then move id.
func (s *Store) ListPokemonMoves(ctx context.Context, pokemonID int64) ([]storage.PokemonMove, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if pokemonID <= 0 {
		return nil, fmt.Errorf("pokemon id is required")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT pokemon_id, version_group, move_id, method, level
		 FROM pokemon_moves
		 WHERE pokemon_id = ?
		 ORDER BY version_group ASC, move_id ASC, method ASC, level ASC`,
		pokemonID,
	)
	if err != nil {
		return nil, fmt.Errorf("list pokemon moves: %w", err)
	}
	defer rows.Close()

	var moves []storage.PokemonMove
	for rows.Next() {
		var move storage.PokemonMove
		if err := rows.Scan(
			&move.PokemonID,
			&move.VersionGroup,
			&move.MoveID,
			&move.Method,
			&move.Level,
		); err != nil {
			return nil, fmt.Errorf("list pokemon moves: %w", err)
		}
		moves = append(moves, move)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pokemon moves: %w", err)
	}
	return moves, nil
}

// CountPokemonMoves returns the number of stored learned-move rows.
func (s *Store) CountPokemonMoves(ctx context.Context) (int64, error) {
	return s.count(ctx, "pokemon_moves")
}

func (s *Store) count(ctx context.Context, table string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.ready(); err != nil {
		return 0, err
	}
	var total int64
	row := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table)
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return total, nil
}
