package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/pokedex"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ItemLookupInput represents the MCP tool input for item lookups.
type ItemLookupInput struct {
	ID   int    `json:"id,omitempty" jsonschema:"item identifier (takes precedence over name)"`
	Name string `json:"name,omitempty" jsonschema:"item name, matched ignoring case and punctuation"`
}

// ItemLookupResult represents the MCP tool output for item lookups.
type ItemLookupResult struct {
	ID          int                `json:"id" jsonschema:"item identifier"`
	Name        string             `json:"name" jsonschema:"item name"`
	Category    string             `json:"category" jsonschema:"item category"`
	Pocket      string             `json:"pocket" jsonschema:"bag pocket the category belongs to"`
	Cost        int                `json:"cost" jsonschema:"purchase price in Pokédollars"`
	FlingPower  int                `json:"fling_power,omitempty" jsonschema:"power of Fling with this item, 0 when it cannot be flung"`
	FlingEffect string             `json:"fling_effect,omitempty" jsonschema:"extra effect of Fling with this item"`
	Flags       []string           `json:"flags,omitempty" jsonschema:"bag and battle flags such as Holdable"`
	Berry       *BerryLookupResult `json:"berry,omitempty" jsonschema:"berry properties when the item is a berry"`
}

// BerryLookupInput represents the MCP tool input for berry lookups.
type BerryLookupInput struct {
	ID   int    `json:"id,omitempty" jsonschema:"berry number (takes precedence over name)"`
	Name string `json:"name,omitempty" jsonschema:"bag item name of the berry"`
}

// BerryLookupResult represents the MCP tool output for berry lookups.
type BerryLookupResult struct {
	ID               int    `json:"id" jsonschema:"berry number"`
	ItemID           int    `json:"item_id" jsonschema:"identifier of the bag item carrying the berry"`
	Item             string `json:"item" jsonschema:"bag item name"`
	NaturalGiftPower int    `json:"natural_gift_power" jsonschema:"power of Natural Gift with this berry"`
	NaturalGiftType  string `json:"natural_gift_type" jsonschema:"type of Natural Gift with this berry"`
	Flavor           string `json:"flavor,omitempty" jsonschema:"dominant flavor, empty when flavorless"`
}

// ItemLookupTool defines the MCP tool schema for item lookups.
func ItemLookupTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "item_lookup",
		Description: "Looks up a bag item by id or name",
	}
}

// BerryLookupTool defines the MCP tool schema for berry lookups.
func BerryLookupTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "berry_lookup",
		Description: "Looks up a berry by number or bag item name",
	}
}

// ItemLookupHandler resolves bag items against the dex bundle.
func ItemLookupHandler(dex *pokedex.Pokedex) mcp.ToolHandlerFor[ItemLookupInput, ItemLookupResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ItemLookupInput) (*mcp.CallToolResult, ItemLookupResult, error) {
		if dex == nil {
			return nil, ItemLookupResult{}, fmt.Errorf("dex bundle is not configured")
		}

		var item pokedex.Item
		var ok bool
		switch {
		case input.ID > 0:
			item, ok = dex.Items.ByID(pokedex.ItemID(input.ID))
			if !ok {
				return toolError(fmt.Sprintf("item %d not found", input.ID)), ItemLookupResult{}, nil
			}
		case input.Name != "":
			item, ok = dex.Items.ByName(input.Name)
			if !ok {
				return toolError(fmt.Sprintf("item %q not found", input.Name)), ItemLookupResult{}, nil
			}
		default:
			return toolError("item id or name is required"), ItemLookupResult{}, nil
		}

		return nil, itemResult(item), nil
	}
}

// BerryLookupHandler resolves berries against the dex bundle.
func BerryLookupHandler(dex *pokedex.Pokedex) mcp.ToolHandlerFor[BerryLookupInput, BerryLookupResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input BerryLookupInput) (*mcp.CallToolResult, BerryLookupResult, error) {
		if dex == nil {
			return nil, BerryLookupResult{}, fmt.Errorf("dex bundle is not configured")
		}

		var berry pokedex.Berry
		switch {
		case input.ID > 0:
			var ok bool
			berry, ok = dex.Items.Berry(pokedex.BerryID(input.ID))
			if !ok {
				return toolError(fmt.Sprintf("berry %d not found", input.ID)), BerryLookupResult{}, nil
			}
		case input.Name != "":
			item, ok := dex.Items.ByName(input.Name)
			if !ok {
				return toolError(fmt.Sprintf("item %q not found", input.Name)), BerryLookupResult{}, nil
			}
			berry, ok = item.Berry()
			if !ok {
				return toolError(fmt.Sprintf("item %q is not a berry", input.Name)), BerryLookupResult{}, nil
			}
		default:
			return toolError("berry id or name is required"), BerryLookupResult{}, nil
		}

		return nil, berryResult(dex, berry), nil
	}
}

func itemResult(item pokedex.Item) ItemLookupResult {
	result := ItemLookupResult{
		ID:         int(item.ID),
		Name:       item.Name,
		Category:   item.Category.String(),
		Pocket:     item.Category.Pocket().String(),
		Cost:       int(item.Cost),
		FlingPower: int(item.FlingPower),
		Flags:      itemFlagNames(item.Flags),
	}
	if item.FlingEffect != pokedex.FlingNone {
		result.FlingEffect = item.FlingEffect.String()
	}
	if berry, ok := item.Berry(); ok {
		br := berryResult(nil, berry)
		br.Item = item.Name
		result.Berry = &br
	}
	return result
}

// berryResult flattens a berry, resolving the bag item name when the
// bundle is available.
func berryResult(dex *pokedex.Pokedex, berry pokedex.Berry) BerryLookupResult {
	result := BerryLookupResult{
		ID:               int(berry.ID),
		ItemID:           int(berry.Item),
		NaturalGiftPower: int(berry.NaturalGiftPower),
		NaturalGiftType:  berry.NaturalGiftType.String(),
	}
	if flavor, ok := berry.Flavor(); ok {
		result.Flavor = flavor.String()
	}
	if dex != nil {
		if item, ok := dex.Items.ByID(berry.Item); ok {
			result.Item = item.Name
		}
	}
	return result
}

var itemFlagLabels = []struct {
	flag pokedex.ItemFlags
	name string
}{
	{pokedex.ItemFlagCountable, "Countable"},
	{pokedex.ItemFlagConsumable, "Consumable"},
	{pokedex.ItemFlagUsableOverworld, "UsableOverworld"},
	{pokedex.ItemFlagUsableInBattle, "UsableInBattle"},
	{pokedex.ItemFlagHoldable, "Holdable"},
	{pokedex.ItemFlagHoldablePassive, "HoldablePassive"},
	{pokedex.ItemFlagHoldableActive, "HoldableActive"},
	{pokedex.ItemFlagUnderground, "Underground"},
}

func itemFlagNames(flags pokedex.ItemFlags) []string {
	var names []string
	for _, label := range itemFlagLabels {
		if flags.Has(label.flag) {
			names = append(names, label.name)
		}
	}
	return names
}
