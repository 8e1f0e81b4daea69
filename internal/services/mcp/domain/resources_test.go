package domain

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func readResource(t *testing.T, handler mcp.ResourceHandler, uri string) string {
	t.Helper()
	req := &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("read %s: %v", uri, err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("read %s returned %d contents, want 1", uri, len(result.Contents))
	}
	if result.Contents[0].MIMEType != "application/json" {
		t.Fatalf("read %s mime type = %q", uri, result.Contents[0].MIMEType)
	}
	if result.Contents[0].URI != uri {
		t.Fatalf("read %s echoed uri %q", uri, result.Contents[0].URI)
	}
	return result.Contents[0].Text
}

func TestTypeChartResourceHandler(t *testing.T) {
	dex := testDex(t)
	text := readResource(t, TypeChartResourceHandler(dex), "dex://types")

	var payload TypeChartPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatalf("unmarshal type chart: %v", err)
	}
	if len(payload.Types) != 17 {
		t.Fatalf("type chart lists %d types, want 17", len(payload.Types))
	}
	var electricVsWater bool
	for _, matchup := range payload.Matchups {
		if matchup.Efficacy == "Regular" {
			t.Fatalf("type chart carries a regular matchup: %+v", matchup)
		}
		if matchup.Attacking == "Electric" && matchup.Defending == "Water" {
			electricVsWater = true
			if matchup.Modifier != 2 {
				t.Errorf("Electric vs Water modifier = %v, want 2", matchup.Modifier)
			}
		}
	}
	if !electricVsWater {
		t.Error("type chart misses Electric vs Water")
	}
}

func TestListResourceHandlers(t *testing.T) {
	dex := testDex(t)

	text := readResource(t, SpeciesListResourceHandler(dex), "dex://species")
	var species SpeciesListPayload
	if err := json.Unmarshal([]byte(text), &species); err != nil {
		t.Fatalf("unmarshal species list: %v", err)
	}
	if len(species.Species) != dex.Species.Len() {
		t.Errorf("species list has %d entries, want %d", len(species.Species), dex.Species.Len())
	}

	text = readResource(t, MoveListResourceHandler(dex), "dex://moves")
	var moves MoveListPayload
	if err := json.Unmarshal([]byte(text), &moves); err != nil {
		t.Fatalf("unmarshal move list: %v", err)
	}
	if len(moves.Moves) != dex.Moves.Len() {
		t.Errorf("move list has %d entries, want %d", len(moves.Moves), dex.Moves.Len())
	}
}

func TestListResourceHandlersFallBackToCanonicalURI(t *testing.T) {
	dex := testDex(t)
	result, err := SpeciesListResourceHandler(dex)(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("read without uri: %v", err)
	}
	if result.Contents[0].URI != "dex://species" {
		t.Errorf("uri = %q, want dex://species", result.Contents[0].URI)
	}
}

func TestSpeciesResourceHandler(t *testing.T) {
	dex := testDex(t)
	handler := SpeciesResourceHandler(dex)

	text := readResource(t, handler, "dex://species/237")
	if !strings.Contains(text, "Hitmontop") {
		t.Errorf("species resource misses the name: %s", text)
	}

	req := &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "dex://species/9999"}}
	if _, err := handler(context.Background(), req); err == nil {
		t.Error("expected error for unknown species")
	}

	req = &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "dex://species/abc"}}
	if _, err := handler(context.Background(), req); err == nil {
		t.Error("expected error for a malformed id")
	}
}

func TestMoveResourceHandler(t *testing.T) {
	dex := testDex(t)
	handler := MoveResourceHandler(dex)

	text := readResource(t, handler, "dex://moves/9")
	if !strings.Contains(text, "ThunderPunch") {
		t.Errorf("move resource misses the name: %s", text)
	}

	req := &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: "dex://types"}}
	if _, err := handler(context.Background(), req); err == nil {
		t.Error("expected error for a foreign uri")
	}
}

func TestParseDexResourceID(t *testing.T) {
	tests := []struct {
		uri  string
		want int
		ok   bool
	}{
		{"dex://species/237", 237, true},
		{"dex://species/", 0, false},
		{"dex://species/0", 0, false},
		{"dex://moves/9", 0, false},
	}
	for _, tt := range tests {
		got, err := parseDexResourceID(tt.uri, "dex://species")
		if (err == nil) != tt.ok || (err == nil && got != tt.want) {
			t.Errorf("parseDexResourceID(%q) = %d, %v, want %d, ok=%v", tt.uri, got, err, tt.want, tt.ok)
		}
	}
}
