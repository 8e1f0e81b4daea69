package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/pokedex"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SpeciesLookupInput represents the MCP tool input for species lookups.
type SpeciesLookupInput struct {
	ID   int    `json:"id,omitempty" jsonschema:"national dex number (takes precedence over name)"`
	Name string `json:"name,omitempty" jsonschema:"species name, matched ignoring case and punctuation"`
}

// SpeciesEvolutionResult represents how a species evolves from its
// predecessor.
type SpeciesEvolutionResult struct {
	FromID                int    `json:"from_id" jsonschema:"national dex number of the pre-evolution"`
	From                  string `json:"from" jsonschema:"name of the pre-evolution"`
	Trigger               string `json:"trigger" jsonschema:"event that causes the evolution"`
	Level                 int    `json:"level,omitempty" jsonschema:"minimum level, 0 when level does not matter"`
	Gender                string `json:"gender,omitempty" jsonschema:"required gender, empty when either gender evolves"`
	Item                  string `json:"item,omitempty" jsonschema:"item that triggers the evolution"`
	Move                  string `json:"move,omitempty" jsonschema:"move the Pokémon must know"`
	RelativePhysicalStats *int   `json:"relative_physical_stats,omitempty" jsonschema:"sign of attack minus defense required, when it matters"`
}

// SpeciesPokemonSummary represents one concrete form of a species.
type SpeciesPokemonSummary struct {
	ID         int    `json:"id" jsonschema:"pokemon identifier"`
	Form       string `json:"form,omitempty" jsonschema:"form identifier, empty for the default form"`
	BattleOnly bool   `json:"battle_only,omitempty" jsonschema:"whether the form only appears during battle"`
}

// SpeciesLookupResult represents the MCP tool output for species lookups.
type SpeciesLookupResult struct {
	ID          int                     `json:"id" jsonschema:"national dex number"`
	Name        string                  `json:"name" jsonschema:"species name"`
	Generation  string                  `json:"generation" jsonschema:"generation the species was introduced in"`
	GenderRate  int                     `json:"gender_rate" jsonschema:"chance of being female in eighths, -1 for genderless"`
	EggGroups   []string                `json:"egg_groups" jsonschema:"egg groups the species breeds in"`
	EvolvesFrom *SpeciesEvolutionResult `json:"evolves_from,omitempty" jsonschema:"evolution details, absent for base species"`
	Pokemon     []SpeciesPokemonSummary `json:"pokemon" jsonschema:"concrete forms, the first entry is the default"`
}

// PokemonLookupInput represents the MCP tool input for Pokémon lookups.
type PokemonLookupInput struct {
	ID           int    `json:"id,omitempty" jsonschema:"pokemon identifier (takes precedence over species)"`
	Species      string `json:"species,omitempty" jsonschema:"species name, resolved to a form"`
	Form         string `json:"form,omitempty" jsonschema:"form identifier for species lookups, empty for the default form"`
	VersionGroup string `json:"version_group,omitempty" jsonschema:"version group to include the learnset for (e.g. BlackWhite)"`
}

// PokemonStatsResult represents the base stats of a Pokémon.
type PokemonStatsResult struct {
	HP             int `json:"hp" jsonschema:"base HP"`
	Attack         int `json:"attack" jsonschema:"base Attack"`
	Defense        int `json:"defense" jsonschema:"base Defense"`
	SpecialAttack  int `json:"special_attack" jsonschema:"base Special Attack"`
	SpecialDefense int `json:"special_defense" jsonschema:"base Special Defense"`
	Speed          int `json:"speed" jsonschema:"base Speed"`
}

// PokemonFormResult represents one form a Pokémon can take.
type PokemonFormResult struct {
	Name       string `json:"name,omitempty" jsonschema:"form identifier, empty for the default form"`
	BattleOnly bool   `json:"battle_only,omitempty" jsonschema:"whether the form only appears during battle"`
}

// PokemonLearnedMove represents one move in a learnset.
type PokemonLearnedMove struct {
	MoveID int    `json:"move_id" jsonschema:"move identifier"`
	Move   string `json:"move" jsonschema:"move name"`
	Method string `json:"method" jsonschema:"how the move is learned"`
	Level  int    `json:"level,omitempty" jsonschema:"level for level-up moves"`
}

// PokemonLookupResult represents the MCP tool output for Pokémon lookups.
type PokemonLookupResult struct {
	ID            int                  `json:"id" jsonschema:"pokemon identifier"`
	SpeciesID     int                  `json:"species_id" jsonschema:"national dex number"`
	Species       string               `json:"species" jsonschema:"species name"`
	Types         []string             `json:"types" jsonschema:"elemental types"`
	Abilities     []string             `json:"abilities" jsonschema:"abilities the Pokémon can have naturally"`
	HiddenAbility string               `json:"hidden_ability,omitempty" jsonschema:"hidden ability, when the Pokémon has one"`
	Stats         PokemonStatsResult   `json:"stats" jsonschema:"base stats"`
	Forms         []PokemonFormResult  `json:"forms,omitempty" jsonschema:"forms this Pokémon can take"`
	Moves         []PokemonLearnedMove `json:"moves,omitempty" jsonschema:"learnset for the requested version group"`
}

// SpeciesLookupTool defines the MCP tool schema for species lookups.
func SpeciesLookupTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "species_lookup",
		Description: "Looks up a species by national dex number or name",
	}
}

// PokemonLookupTool defines the MCP tool schema for Pokémon lookups.
func PokemonLookupTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "pokemon_lookup",
		Description: "Looks up a concrete Pokémon form with stats, abilities, and learnset",
	}
}

// SpeciesLookupHandler resolves species against the dex bundle.
func SpeciesLookupHandler(dex *pokedex.Pokedex) mcp.ToolHandlerFor[SpeciesLookupInput, SpeciesLookupResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SpeciesLookupInput) (*mcp.CallToolResult, SpeciesLookupResult, error) {
		if dex == nil {
			return nil, SpeciesLookupResult{}, fmt.Errorf("dex bundle is not configured")
		}

		var species pokedex.Species
		var ok bool
		switch {
		case input.ID > 0:
			species, ok = dex.Species.ByID(pokedex.SpeciesID(input.ID))
			if !ok {
				return toolError(fmt.Sprintf("species %d not found", input.ID)), SpeciesLookupResult{}, nil
			}
		case input.Name != "":
			species, ok = dex.Species.ByName(input.Name)
			if !ok {
				return toolError(fmt.Sprintf("species %q not found", input.Name)), SpeciesLookupResult{}, nil
			}
		default:
			return toolError("species id or name is required"), SpeciesLookupResult{}, nil
		}

		return nil, speciesResult(dex, species), nil
	}
}

// PokemonLookupHandler resolves concrete Pokémon forms against the dex
// bundle.
func PokemonLookupHandler(dex *pokedex.Pokedex) mcp.ToolHandlerFor[PokemonLookupInput, PokemonLookupResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input PokemonLookupInput) (*mcp.CallToolResult, PokemonLookupResult, error) {
		if dex == nil {
			return nil, PokemonLookupResult{}, fmt.Errorf("dex bundle is not configured")
		}

		var pokemon pokedex.Pokemon
		switch {
		case input.ID > 0:
			var ok bool
			pokemon, ok = dex.Species.Pokemon(pokedex.PokemonID(input.ID))
			if !ok {
				return toolError(fmt.Sprintf("pokemon %d not found", input.ID)), PokemonLookupResult{}, nil
			}
		case input.Species != "":
			species, ok := dex.Species.ByName(input.Species)
			if !ok {
				return toolError(fmt.Sprintf("species %q not found", input.Species)), PokemonLookupResult{}, nil
			}
			pokemon, ok = formOf(species, input.Form)
			if !ok {
				return toolError(fmt.Sprintf("species %q has no form %q", input.Species, input.Form)), PokemonLookupResult{}, nil
			}
		default:
			return toolError("pokemon id or species is required"), PokemonLookupResult{}, nil
		}

		result := pokemonResult(dex, pokemon)
		if input.VersionGroup != "" {
			group, ok := versionGroupByName(input.VersionGroup)
			if !ok {
				return toolError(fmt.Sprintf("version group %q is not known", input.VersionGroup)), PokemonLookupResult{}, nil
			}
			result.Moves = learnedMoves(dex, pokemon, group)
		}
		return nil, result, nil
	}
}

// formOf picks the concrete Pokémon matching the form name, or the
// default form when the name is empty.
func formOf(species pokedex.Species, form string) (pokedex.Pokemon, bool) {
	if len(species.Pokemon) == 0 {
		return pokedex.Pokemon{}, false
	}
	if form == "" {
		return species.Pokemon[0], true
	}
	key := normalizeKey(form)
	for _, pokemon := range species.Pokemon {
		for _, f := range pokemon.Forms {
			if normalizeKey(f.Name) == key {
				return pokemon, true
			}
		}
	}
	return pokedex.Pokemon{}, false
}

func speciesResult(dex *pokedex.Pokedex, species pokedex.Species) SpeciesLookupResult {
	result := SpeciesLookupResult{
		ID:         int(species.ID),
		Name:       species.Name,
		Generation: species.Generation.String(),
		GenderRate: int(species.GenderRate),
		EggGroups:  []string{species.EggGroups.First().String()},
	}
	if second, ok := species.EggGroups.Second(); ok {
		result.EggGroups = append(result.EggGroups, second.String())
	}
	if evo, ok := species.EvolvesFrom(); ok {
		result.EvolvesFrom = evolutionResult(dex, evo)
	}
	for _, pokemon := range species.Pokemon {
		summary := SpeciesPokemonSummary{ID: int(pokemon.ID)}
		if len(pokemon.Forms) > 0 {
			summary.Form = pokemon.Forms[0].Name
			summary.BattleOnly = pokemon.Forms[0].BattleOnly
		}
		result.Pokemon = append(result.Pokemon, summary)
	}
	return result
}

func evolutionResult(dex *pokedex.Pokedex, evo pokedex.EvolvesFrom) *SpeciesEvolutionResult {
	result := &SpeciesEvolutionResult{
		FromID:  int(evo.FromID),
		Trigger: evo.Trigger.String(),
		Level:   int(evo.Level),
	}
	if from, ok := dex.Species.ByID(evo.FromID); ok {
		result.From = from.Name
	}
	if evo.Gender != pokedex.GenderGenderless {
		result.Gender = evo.Gender.String()
	}
	if evo.Item != 0 {
		if item, ok := dex.Items.ByID(evo.Item); ok {
			result.Item = item.Name
		}
	}
	if evo.MoveID != 0 {
		if move, ok := dex.Moves.ByID(evo.MoveID); ok {
			result.Move = move.Name
		}
	}
	if stats, ok := evo.RelativePhysicalStats(); ok {
		value := int(stats)
		result.RelativePhysicalStats = &value
	}
	return result
}

func pokemonResult(dex *pokedex.Pokedex, pokemon pokedex.Pokemon) PokemonLookupResult {
	result := PokemonLookupResult{
		ID:        int(pokemon.ID),
		SpeciesID: int(pokemon.Species),
		Types:     typeNames(pokemon.Types),
		Abilities: []string{pokemon.Abilities.First().String()},
		Stats: PokemonStatsResult{
			HP:             int(pokemon.Stats.Stat(pokedex.StatHP)),
			Attack:         int(pokemon.Stats.Stat(pokedex.StatAttack)),
			Defense:        int(pokemon.Stats.Stat(pokedex.StatDefense)),
			SpecialAttack:  int(pokemon.Stats.Stat(pokedex.StatSpecialAttack)),
			SpecialDefense: int(pokemon.Stats.Stat(pokedex.StatSpecialDefense)),
			Speed:          int(pokemon.Stats.Stat(pokedex.StatSpeed)),
		},
	}
	if species, ok := dex.Species.ByID(pokemon.Species); ok {
		result.Species = species.Name
	}
	if second, ok := pokemon.Abilities.Second(); ok {
		result.Abilities = append(result.Abilities, second.String())
	}
	if hidden, ok := pokemon.HiddenAbility(); ok {
		result.HiddenAbility = hidden.String()
	}
	for _, form := range pokemon.Forms {
		result.Forms = append(result.Forms, PokemonFormResult{
			Name:       form.Name,
			BattleOnly: form.BattleOnly,
		})
	}
	return result
}

func learnedMoves(dex *pokedex.Pokedex, pokemon pokedex.Pokemon, group pokedex.VersionGroup) []PokemonLearnedMove {
	var moves []PokemonLearnedMove
	for _, learned := range pokemon.Moves[group] {
		entry := PokemonLearnedMove{
			MoveID: int(learned.MoveID),
			Method: learned.Method.String(),
			Level:  int(learned.Level),
		}
		if move, ok := dex.Moves.ByID(learned.MoveID); ok {
			entry.Move = move.Name
		}
		moves = append(moves, entry)
	}
	return moves
}
