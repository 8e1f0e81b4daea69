package service

import (
	"github.com/louisbranch/pokedex"
	"github.com/louisbranch/pokedex/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerLookupTools registers the record lookup tools.
func registerLookupTools(mcpServer *mcp.Server, dex *pokedex.Pokedex) {
	mcp.AddTool(mcpServer, domain.SpeciesLookupTool(), audited("species_lookup", domain.SpeciesLookupHandler(dex)))
	mcp.AddTool(mcpServer, domain.PokemonLookupTool(), audited("pokemon_lookup", domain.PokemonLookupHandler(dex)))
	mcp.AddTool(mcpServer, domain.MoveLookupTool(), audited("move_lookup", domain.MoveLookupHandler(dex)))
	mcp.AddTool(mcpServer, domain.ItemLookupTool(), audited("item_lookup", domain.ItemLookupHandler(dex)))
	mcp.AddTool(mcpServer, domain.BerryLookupTool(), audited("berry_lookup", domain.BerryLookupHandler(dex)))
	mcp.AddTool(mcpServer, domain.NatureLookupTool(), audited("nature_lookup", domain.NatureLookupHandler(dex)))
}

// registerBattleTools registers the battle math tools.
func registerBattleTools(mcpServer *mcp.Server, dex *pokedex.Pokedex) {
	mcp.AddTool(mcpServer, domain.EfficacyTool(), audited("type_efficacy", domain.EfficacyHandler(dex)))
	mcp.AddTool(mcpServer, domain.PalaceOddsTool(), audited("palace_odds", domain.PalaceOddsHandler(dex)))
}

// registerDexResources registers the readable dex resources.
func registerDexResources(mcpServer *mcp.Server, dex *pokedex.Pokedex) {
	mcpServer.AddResource(domain.TypeChartResource(), domain.TypeChartResourceHandler(dex))
	mcpServer.AddResource(domain.SpeciesListResource(), domain.SpeciesListResourceHandler(dex))
	mcpServer.AddResource(domain.MoveListResource(), domain.MoveListResourceHandler(dex))
	mcpServer.AddResourceTemplate(domain.SpeciesResourceTemplate(), domain.SpeciesResourceHandler(dex))
	mcpServer.AddResourceTemplate(domain.MoveResourceTemplate(), domain.MoveResourceHandler(dex))
}
