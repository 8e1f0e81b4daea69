package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/pokedex"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	typeChartURI   = "dex://types"
	speciesListURI = "dex://species"
	moveListURI    = "dex://moves"
)

// TypeChartMatchup represents one non-regular entry of the type chart.
type TypeChartMatchup struct {
	Attacking string  `json:"attacking"`
	Defending string  `json:"defending"`
	Efficacy  string  `json:"efficacy"`
	Modifier  float64 `json:"modifier"`
}

// TypeChartPayload represents the readable type chart resource.
type TypeChartPayload struct {
	Types []string `json:"types"`
	// Matchups lists only the pairs that deviate from regular damage.
	Matchups []TypeChartMatchup `json:"matchups"`
}

// SpeciesListEntry represents one species in the listing resource.
type SpeciesListEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SpeciesListPayload represents the readable species listing resource.
type SpeciesListPayload struct {
	Species []SpeciesListEntry `json:"species"`
}

// MoveListEntry represents one move in the listing resource.
type MoveListEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MoveListPayload represents the readable move listing resource.
type MoveListPayload struct {
	Moves []MoveListEntry `json:"moves"`
}

// TypeChartResource defines the MCP resource for the type chart.
func TypeChartResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "type_chart",
		Title:       "Type Chart",
		Description: "Elemental types and every non-regular matchup between them.",
		MIMEType:    "application/json",
		URI:         typeChartURI,
	}
}

// SpeciesListResource defines the MCP resource for the species listing.
func SpeciesListResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "species_list",
		Title:       "Species",
		Description: "Every species in the dex by national dex number.",
		MIMEType:    "application/json",
		URI:         speciesListURI,
	}
}

// MoveListResource defines the MCP resource for the move listing.
func MoveListResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "move_list",
		Title:       "Moves",
		Description: "Every move in the dex by identifier.",
		MIMEType:    "application/json",
		URI:         moveListURI,
	}
}

// SpeciesResourceTemplate defines the MCP resource template for species
// details. URI format: dex://species/{id}.
func SpeciesResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "species",
		Title:       "Species Details",
		Description: "Species details by national dex number. URI format: dex://species/{id}",
		MIMEType:    "application/json",
		URITemplate: "dex://species/{id}",
	}
}

// MoveResourceTemplate defines the MCP resource template for move
// details. URI format: dex://moves/{id}.
func MoveResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "move",
		Title:       "Move Details",
		Description: "Move details by identifier. URI format: dex://moves/{id}",
		MIMEType:    "application/json",
		URITemplate: "dex://moves/{id}",
	}
}

// TypeChartResourceHandler renders the type chart as JSON.
func TypeChartResourceHandler(dex *pokedex.Pokedex) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if dex == nil {
			return nil, fmt.Errorf("dex bundle is not configured")
		}

		payload := TypeChartPayload{}
		for t := pokedex.Type(0); t < pokedex.TypeCount; t++ {
			payload.Types = append(payload.Types, t.String())
		}
		for attacking := pokedex.Type(0); attacking < pokedex.TypeCount; attacking++ {
			for defending := pokedex.Type(0); defending < pokedex.TypeCount; defending++ {
				efficacy := dex.Efficacy.Efficacy(attacking, defending)
				if efficacy == pokedex.EfficacyRegular {
					continue
				}
				payload.Matchups = append(payload.Matchups, TypeChartMatchup{
					Attacking: attacking.String(),
					Defending: defending.String(),
					Efficacy:  efficacy.String(),
					Modifier:  efficacy.Modifier(),
				})
			}
		}

		return jsonResourceResult(resourceURI(req, typeChartURI), payload)
	}
}

// SpeciesListResourceHandler renders the species listing as JSON.
func SpeciesListResourceHandler(dex *pokedex.Pokedex) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if dex == nil {
			return nil, fmt.Errorf("dex bundle is not configured")
		}

		payload := SpeciesListPayload{}
		for _, id := range dex.Species.IDs() {
			if species, ok := dex.Species.ByID(id); ok {
				payload.Species = append(payload.Species, SpeciesListEntry{
					ID:   int(species.ID),
					Name: species.Name,
				})
			}
		}

		return jsonResourceResult(resourceURI(req, speciesListURI), payload)
	}
}

// MoveListResourceHandler renders the move listing as JSON.
func MoveListResourceHandler(dex *pokedex.Pokedex) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if dex == nil {
			return nil, fmt.Errorf("dex bundle is not configured")
		}

		payload := MoveListPayload{}
		for _, id := range dex.Moves.IDs() {
			if move, ok := dex.Moves.ByID(id); ok {
				payload.Moves = append(payload.Moves, MoveListEntry{
					ID:   int(move.ID),
					Name: move.Name,
				})
			}
		}

		return jsonResourceResult(resourceURI(req, moveListURI), payload)
	}
}

// SpeciesResourceHandler renders species details for dex://species/{id}.
func SpeciesResourceHandler(dex *pokedex.Pokedex) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if dex == nil {
			return nil, fmt.Errorf("dex bundle is not configured")
		}

		uri := resourceURI(req, "")
		id, err := parseDexResourceID(uri, speciesListURI)
		if err != nil {
			return nil, err
		}
		species, ok := dex.Species.ByID(pokedex.SpeciesID(id))
		if !ok {
			return nil, fmt.Errorf("species %d not found", id)
		}

		return jsonResourceResult(uri, speciesResult(dex, species))
	}
}

// MoveResourceHandler renders move details for dex://moves/{id}.
func MoveResourceHandler(dex *pokedex.Pokedex) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if dex == nil {
			return nil, fmt.Errorf("dex bundle is not configured")
		}

		uri := resourceURI(req, "")
		id, err := parseDexResourceID(uri, moveListURI)
		if err != nil {
			return nil, err
		}
		move, ok := dex.Moves.ByID(pokedex.MoveID(id))
		if !ok {
			return nil, fmt.Errorf("move %d not found", id)
		}

		return jsonResourceResult(uri, moveResult(move))
	}
}

// resourceURI returns the requested URI, falling back to the resource's
// canonical URI for clients that omit it.
func resourceURI(req *mcp.ReadResourceRequest, fallback string) string {
	if req == nil || req.Params == nil || req.Params.URI == "" {
		return fallback
	}
	return req.Params.URI
}

// parseDexResourceID extracts the numeric id from a URI of the form
// <prefix>/{id}.
func parseDexResourceID(uri, prefix string) (int, error) {
	rest, ok := strings.CutPrefix(uri, prefix+"/")
	if !ok || rest == "" {
		return 0, fmt.Errorf("uri %q does not match %s/{id}", uri, prefix)
	}
	id, err := strconv.Atoi(rest)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("uri %q does not carry a valid id", uri)
	}
	return id, nil
}

func jsonResourceResult(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource payload: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
