package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/pokedex"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// EfficacyInput represents the MCP tool input for type efficacy queries.
type EfficacyInput struct {
	Attacking string   `json:"attacking" jsonschema:"attacking move type"`
	Defending []string `json:"defending" jsonschema:"defending types, one or two"`
}

// EfficacyMatchup represents the efficacy against one defending type.
type EfficacyMatchup struct {
	Type     string  `json:"type" jsonschema:"defending type"`
	Efficacy string  `json:"efficacy" jsonschema:"efficacy class (Not, NotVery, Regular, Super)"`
	Modifier float64 `json:"modifier" jsonschema:"damage multiplier against this type"`
}

// EfficacyResult represents the MCP tool output for type efficacy queries.
type EfficacyResult struct {
	Attacking string            `json:"attacking" jsonschema:"attacking move type"`
	Defending []EfficacyMatchup `json:"defending" jsonschema:"per-type matchups"`
	Modifier  float64           `json:"modifier" jsonschema:"combined damage multiplier"`
}

// PalaceOddsInput represents the MCP tool input for Battle Palace odds.
type PalaceOddsInput struct {
	Nature string `json:"nature" jsonschema:"nature name"`
}

// PalaceStyleOdds represents the style percentages for one HP range.
type PalaceStyleOdds struct {
	Attack  int `json:"attack" jsonschema:"percent chance of attack style"`
	Defense int `json:"defense" jsonschema:"percent chance of defense style"`
	Support int `json:"support" jsonschema:"percent chance of support style"`
}

// PalaceOddsResult represents the MCP tool output for Battle Palace odds.
type PalaceOddsResult struct {
	Nature      string          `json:"nature" jsonschema:"nature name"`
	AboveHalfHP PalaceStyleOdds `json:"above_half_hp" jsonschema:"style odds above half HP"`
	BelowHalfHP PalaceStyleOdds `json:"below_half_hp" jsonschema:"style odds below half HP"`
}

// EfficacyTool defines the MCP tool schema for type efficacy queries.
func EfficacyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "type_efficacy",
		Description: "Computes the damage multiplier of an attacking type against one or two defending types",
	}
}

// PalaceOddsTool defines the MCP tool schema for Battle Palace odds.
func PalaceOddsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "palace_odds",
		Description: "Reports Battle Palace style odds for a nature above and below half HP",
	}
}

// EfficacyHandler answers type matchup queries from the efficacy table.
func EfficacyHandler(dex *pokedex.Pokedex) mcp.ToolHandlerFor[EfficacyInput, EfficacyResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input EfficacyInput) (*mcp.CallToolResult, EfficacyResult, error) {
		if dex == nil {
			return nil, EfficacyResult{}, fmt.Errorf("dex bundle is not configured")
		}

		attacking, ok := typeByName(input.Attacking)
		if !ok {
			return toolError(fmt.Sprintf("type %q is not known", input.Attacking)), EfficacyResult{}, nil
		}
		if len(input.Defending) == 0 || len(input.Defending) > 2 {
			return toolError("one or two defending types are required"), EfficacyResult{}, nil
		}

		result := EfficacyResult{
			Attacking: attacking.String(),
			Modifier:  1,
		}
		for _, name := range input.Defending {
			defending, ok := typeByName(name)
			if !ok {
				return toolError(fmt.Sprintf("type %q is not known", name)), EfficacyResult{}, nil
			}
			efficacy := dex.Efficacy.Efficacy(attacking, defending)
			result.Defending = append(result.Defending, EfficacyMatchup{
				Type:     defending.String(),
				Efficacy: efficacy.String(),
				Modifier: efficacy.Modifier(),
			})
			result.Modifier *= efficacy.Modifier()
		}
		return nil, result, nil
	}
}

// PalaceOddsHandler answers Battle Palace preference queries.
func PalaceOddsHandler(dex *pokedex.Pokedex) mcp.ToolHandlerFor[PalaceOddsInput, PalaceOddsResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input PalaceOddsInput) (*mcp.CallToolResult, PalaceOddsResult, error) {
		if dex == nil {
			return nil, PalaceOddsResult{}, fmt.Errorf("dex bundle is not configured")
		}
		if input.Nature == "" {
			return toolError("nature name is required"), PalaceOddsResult{}, nil
		}

		nature, ok := natureByName(input.Nature)
		if !ok {
			return toolError(fmt.Sprintf("nature %q not found", input.Nature)), PalaceOddsResult{}, nil
		}

		return nil, PalaceOddsResult{
			Nature:      nature.String(),
			AboveHalfHP: palaceStyleOdds(&dex.Palace.High, nature),
			BelowHalfHP: palaceStyleOdds(&dex.Palace.Low, nature),
		}, nil
	}
}

func palaceStyleOdds(table *pokedex.HalfPalaceTable, nature pokedex.Nature) PalaceStyleOdds {
	attack, defense, support := table.Preference(nature)
	return PalaceStyleOdds{
		Attack:  int(attack),
		Defense: int(defense),
		Support: int(support),
	}
}
