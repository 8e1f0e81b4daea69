package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/pokedex"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MoveLookupInput represents the MCP tool input for move lookups.
type MoveLookupInput struct {
	ID   int    `json:"id,omitempty" jsonschema:"move identifier (takes precedence over name)"`
	Name string `json:"name,omitempty" jsonschema:"move name, matched ignoring case and punctuation"`
}

// MoveStatChange represents one stat stage change a move applies.
type MoveStatChange struct {
	Stat   string `json:"stat" jsonschema:"stat the change applies to"`
	Change int    `json:"change" jsonschema:"stage change, negative for drops"`
}

// MoveMetaResult represents the battle metadata of a move.
type MoveMetaResult struct {
	Category      string           `json:"category" jsonschema:"move category"`
	Ailment       string           `json:"ailment" jsonschema:"ailment the move can inflict"`
	AilmentChance int              `json:"ailment_chance,omitempty" jsonschema:"percent chance of inflicting the ailment, 0 when guaranteed or absent"`
	MinHits       int              `json:"min_hits,omitempty" jsonschema:"minimum hits per turn for multi-hit moves"`
	MaxHits       int              `json:"max_hits,omitempty" jsonschema:"maximum hits per turn for multi-hit moves"`
	MinTurns      int              `json:"min_turns,omitempty" jsonschema:"minimum effect duration in turns"`
	MaxTurns      int              `json:"max_turns,omitempty" jsonschema:"maximum effect duration in turns"`
	Drain         int              `json:"drain,omitempty" jsonschema:"percent of inflicted damage absorbed, negative for recoil"`
	Healing       int              `json:"healing,omitempty" jsonschema:"percent of max HP recovered, negative for loss"`
	CriticalRate  int              `json:"critical_rate,omitempty" jsonschema:"critical-hit rate increase"`
	FlinchChance  int              `json:"flinch_chance,omitempty" jsonschema:"percent chance of causing a flinch"`
	StatChance    int              `json:"stat_chance,omitempty" jsonschema:"percent chance of the stat changes applying, 0 when guaranteed or absent"`
	StatChanges   []MoveStatChange `json:"stat_changes,omitempty" jsonschema:"stat stage changes the move applies"`
	Flags         []string         `json:"flags,omitempty" jsonschema:"battle flags such as Contact or Sound"`
}

// MoveLookupResult represents the MCP tool output for move lookups.
type MoveLookupResult struct {
	ID           int            `json:"id" jsonschema:"move identifier"`
	Name         string         `json:"name" jsonschema:"move name"`
	Generation   string         `json:"generation" jsonschema:"generation the move was introduced in"`
	Type         string         `json:"type" jsonschema:"elemental type"`
	Power        int            `json:"power" jsonschema:"base power, 0 for non-damaging moves"`
	PP           int            `json:"pp" jsonschema:"power points"`
	Accuracy     int            `json:"accuracy" jsonschema:"percent chance to hit, 0 when the move cannot miss"`
	Priority     int            `json:"priority" jsonschema:"move priority bracket"`
	Target       string         `json:"target" jsonschema:"what the move targets"`
	Class        string         `json:"class" jsonschema:"damage class (NonDamaging, Physical, Special)"`
	Effect       string         `json:"effect" jsonschema:"battle effect name"`
	EffectChance int            `json:"effect_chance,omitempty" jsonschema:"percent chance of the secondary effect"`
	Meta         MoveMetaResult `json:"meta" jsonschema:"battle metadata"`
}

// MoveLookupTool defines the MCP tool schema for move lookups.
func MoveLookupTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "move_lookup",
		Description: "Looks up a move by id or name",
	}
}

// MoveLookupHandler resolves moves against the dex bundle.
func MoveLookupHandler(dex *pokedex.Pokedex) mcp.ToolHandlerFor[MoveLookupInput, MoveLookupResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input MoveLookupInput) (*mcp.CallToolResult, MoveLookupResult, error) {
		if dex == nil {
			return nil, MoveLookupResult{}, fmt.Errorf("dex bundle is not configured")
		}

		var move pokedex.Move
		var ok bool
		switch {
		case input.ID > 0:
			move, ok = dex.Moves.ByID(pokedex.MoveID(input.ID))
			if !ok {
				return toolError(fmt.Sprintf("move %d not found", input.ID)), MoveLookupResult{}, nil
			}
		case input.Name != "":
			move, ok = dex.Moves.ByName(input.Name)
			if !ok {
				return toolError(fmt.Sprintf("move %q not found", input.Name)), MoveLookupResult{}, nil
			}
		default:
			return toolError("move id or name is required"), MoveLookupResult{}, nil
		}

		return nil, moveResult(move), nil
	}
}

func moveResult(move pokedex.Move) MoveLookupResult {
	return MoveLookupResult{
		ID:           int(move.ID),
		Name:         move.Name,
		Generation:   move.Generation.String(),
		Type:         move.Type.String(),
		Power:        int(move.Power),
		PP:           int(move.PP),
		Accuracy:     int(move.Accuracy),
		Priority:     int(move.Priority),
		Target:       move.Target.String(),
		Class:        move.Class.String(),
		Effect:       move.Effect.String(),
		EffectChance: int(move.EffectChance),
		Meta:         moveMetaResult(move.Meta),
	}
}

func moveMetaResult(meta pokedex.Meta) MoveMetaResult {
	result := MoveMetaResult{
		Category:      meta.Category.String(),
		Ailment:       meta.Ailment.String(),
		AilmentChance: int(meta.AilmentChance),
		MinHits:       int(meta.Hits.Min),
		MaxHits:       int(meta.Hits.Max),
		MinTurns:      int(meta.Turns.Min),
		MaxTurns:      int(meta.Turns.Max),
		Drain:         int(meta.Drain),
		Healing:       int(meta.Healing),
		CriticalRate:  int(meta.CriticalRate),
		FlinchChance:  int(meta.FlinchChance),
		StatChance:    int(meta.StatChance),
		Flags:         moveFlagNames(meta.Flags),
	}
	for stat := pokedex.StatAttack; stat <= pokedex.StatEvasion; stat++ {
		if change := meta.StatChanges.Change(stat); change != 0 {
			result.StatChanges = append(result.StatChanges, MoveStatChange{
				Stat:   stat.String(),
				Change: int(change),
			})
		}
	}
	return result
}

var moveFlagLabels = []struct {
	flag pokedex.MoveFlags
	name string
}{
	{pokedex.MoveFlagContact, "Contact"},
	{pokedex.MoveFlagCharge, "Charge"},
	{pokedex.MoveFlagRecharge, "Recharge"},
	{pokedex.MoveFlagProtect, "Protect"},
	{pokedex.MoveFlagReflectable, "Reflectable"},
	{pokedex.MoveFlagSnatch, "Snatch"},
	{pokedex.MoveFlagMirror, "Mirror"},
	{pokedex.MoveFlagPunch, "Punch"},
	{pokedex.MoveFlagSound, "Sound"},
	{pokedex.MoveFlagGravity, "Gravity"},
	{pokedex.MoveFlagDefrost, "Defrost"},
	{pokedex.MoveFlagDistance, "Distance"},
	{pokedex.MoveFlagHeal, "Heal"},
	{pokedex.MoveFlagAuthentic, "Authentic"},
}

func moveFlagNames(flags pokedex.MoveFlags) []string {
	var names []string
	for _, label := range moveFlagLabels {
		if flags.Has(label.flag) {
			names = append(names, label.name)
		}
	}
	return names
}
