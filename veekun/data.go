package veekun

import (
	"embed"
	"io/fs"
)

// File names of the bundled tables.
const (
	BerriesFile           = "berries.csv"
	BerryFlavorsFile      = "berry_flavors.csv"
	ItemFlagMapFile       = "item_flag_map.csv"
	ItemsFile             = "items.csv"
	MoveFlagMapFile       = "move_flag_map.csv"
	MoveMetaFile          = "move_meta.csv"
	MoveStatChangesFile   = "move_meta_stat_changes.csv"
	MovesFile             = "moves.csv"
	PalacePreferencesFile = "nature_battle_style_preferences.csv"
	PokemonFile           = "pokemon.csv"
	PokemonAbilitiesFile  = "pokemon_abilities.csv"
	PokemonEggGroupsFile  = "pokemon_egg_groups.csv"
	PokemonEvolutionFile  = "pokemon_evolution.csv"
	PokemonFormsFile      = "pokemon_forms.csv"
	PokemonMovesFile      = "pokemon_moves.csv"
	PokemonSpeciesFile    = "pokemon_species.csv"
	PokemonStatsFile      = "pokemon_stats.csv"
	PokemonTypesFile      = "pokemon_types.csv"
	TypeEfficacyFile      = "type_efficacy.csv"
)

//go:embed data/*.csv
var embedded embed.FS

// Data returns the bundled copy of the Veekun tables. File names match the
// upstream table names, for example "moves.csv".
func Data() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}
