package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/pokedex"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NatureLookupInput represents the MCP tool input for nature lookups.
type NatureLookupInput struct {
	Name string `json:"name" jsonschema:"nature name, matched ignoring case"`
}

// NatureLookupResult represents the MCP tool output for nature lookups.
type NatureLookupResult struct {
	Name           string `json:"name" jsonschema:"nature name"`
	Neutral        bool   `json:"neutral" jsonschema:"whether the nature changes no stats"`
	IncreasedStat  string `json:"increased_stat,omitempty" jsonschema:"stat raised by 10%"`
	DecreasedStat  string `json:"decreased_stat,omitempty" jsonschema:"stat lowered by 10%"`
	LikedFlavor    string `json:"liked_flavor,omitempty" jsonschema:"flavor the nature prefers"`
	DislikedFlavor string `json:"disliked_flavor,omitempty" jsonschema:"flavor the nature avoids"`
}

// NatureLookupTool defines the MCP tool schema for nature lookups.
func NatureLookupTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "nature_lookup",
		Description: "Looks up a nature and its stat and flavor preferences",
	}
}

// NatureLookupHandler resolves natures by name.
func NatureLookupHandler(dex *pokedex.Pokedex) mcp.ToolHandlerFor[NatureLookupInput, NatureLookupResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input NatureLookupInput) (*mcp.CallToolResult, NatureLookupResult, error) {
		if dex == nil {
			return nil, NatureLookupResult{}, fmt.Errorf("dex bundle is not configured")
		}
		if input.Name == "" {
			return toolError("nature name is required"), NatureLookupResult{}, nil
		}

		nature, ok := natureByName(input.Name)
		if !ok {
			return toolError(fmt.Sprintf("nature %q not found", input.Name)), NatureLookupResult{}, nil
		}

		result := NatureLookupResult{
			Name:    nature.String(),
			Neutral: nature.Neutral(),
		}
		if stat, ok := nature.Increased(); ok {
			result.IncreasedStat = stat.String()
		}
		if stat, ok := nature.Decreased(); ok {
			result.DecreasedStat = stat.String()
		}
		if flavor, ok := nature.LikedFlavor(); ok {
			result.LikedFlavor = flavor.String()
		}
		if flavor, ok := nature.DislikedFlavor(); ok {
			result.DislikedFlavor = flavor.String()
		}
		return nil, result, nil
	}
}
