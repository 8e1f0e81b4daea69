// Package storage defines persistence contracts for the dex content database.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested dex record is missing.
var ErrNotFound = errors.New("record not found")

// Move stores one imported move with its battle metadata flattened.
type Move struct {
	ID           int64
	Name         string
	Generation   string
	Type         string
	DamageClass  string
	Power        int64
	PP           int64
	Accuracy     int64
	Priority     int64
	Target       string
	Effect       int64
	EffectChance int64
	Category     string
	Ailment      string
	// AilmentChance, FlinchChance, and StatChance are percent chances, or
	// 0 when the outcome is guaranteed or absent.
	AilmentChance int64
	FlinchChance  int64
	StatChance    int64
	MinHits       int64
	MaxHits       int64
	MinTurns      int64
	MaxTurns      int64
	Drain         int64
	Healing       int64
	CriticalRate  int64
	Flags         int64
}

// MovePage stores a page of moves ordered by id.
type MovePage struct {
	Moves         []Move
	NextPageToken string
}

// Item stores one imported bag item.
type Item struct {
	ID          int64
	Name        string
	Category    string
	Pocket      string
	Cost        int64
	FlingPower  int64
	FlingEffect string
	Flags       int64
	// BerryID is the berry the item carries, or 0 for non-berries.
	BerryID int64
}

// Berry stores the berry properties of a bag item.
type Berry struct {
	ID               int64
	ItemID           int64
	NaturalGiftPower int64
	NaturalGiftType  string
	// Flavor is the dominant flavor name, or empty when flavors tie.
	Flavor string
}

// Species stores one National Pokédex entry.
type Species struct {
	ID         int64
	Name       string
	Generation string
	// GenderRate is the chance of being female in eighths, or -1 for
	// genderless species.
	GenderRate int64
	EggGroup1  string
	EggGroup2  string
	// EvolvesFrom is the parent species id, or 0 for base species.
	EvolvesFrom      int64
	EvolutionTrigger string
	EvolutionLevel   int64
	EvolutionGender  string
	EvolutionItem    int64
	EvolutionMove    int64
	// RelativePhysicalStats is the Attack versus Defense comparison the
	// evolution requires, or nil when stats do not matter.
	RelativePhysicalStats *int64
}

// SpeciesPage stores a page of species ordered by id.
type SpeciesPage struct {
	Species       []Species
	NextPageToken string
}

// Pokemon stores one concrete battle form.
type Pokemon struct {
	ID             int64
	SpeciesID      int64
	Form           string
	BattleOnly     bool
	HP             int64
	Attack         int64
	Defense        int64
	Speed          int64
	SpecialAttack  int64
	SpecialDefense int64
	Type1          string
	Type2          string
	Ability1       string
	Ability2       string
	HiddenAbility  string
}

// PokemonMove stores one way a Pokémon learns a move.
type PokemonMove struct {
	PokemonID    int64
	VersionGroup string
	MoveID       int64
	Method       string
	Level        int64
}

// DexStore persists imported dex content.
type DexStore interface {
	PutMove(ctx context.Context, move Move) error
	GetMove(ctx context.Context, id int64) (Move, error)
	CountMoves(ctx context.Context) (int64, error)
	ListMoves(ctx context.Context, pageSize int, pageToken string) (MovePage, error)

	PutItem(ctx context.Context, item Item) error
	GetItem(ctx context.Context, id int64) (Item, error)
	CountItems(ctx context.Context) (int64, error)

	PutBerry(ctx context.Context, berry Berry) error
	GetBerry(ctx context.Context, id int64) (Berry, error)
	CountBerries(ctx context.Context) (int64, error)

	PutSpecies(ctx context.Context, species Species) error
	GetSpecies(ctx context.Context, id int64) (Species, error)
	CountSpecies(ctx context.Context) (int64, error)
	ListSpecies(ctx context.Context, pageSize int, pageToken string) (SpeciesPage, error)

	PutPokemon(ctx context.Context, pokemon Pokemon) error
	GetPokemon(ctx context.Context, id int64) (Pokemon, error)
	CountPokemon(ctx context.Context) (int64, error)

	PutPokemonMoves(ctx context.Context, pokemonID int64, moves []PokemonMove) error
	ListPokemonMoves(ctx context.Context, pokemonID int64) ([]PokemonMove, error)
	CountPokemonMoves(ctx context.Context) (int64, error)
}
