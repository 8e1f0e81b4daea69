package domain

import (
	"strings"

	"github.com/louisbranch/pokedex"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// toolError wraps a lookup failure as a tool error result so clients see
// a structured error instead of a broken MCP call.
func toolError(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
	}
}

// normalizeKey lowercases a name and strips everything but letters and
// digits, the same folding the bundle applies to its name indexes, so
// "Thunder Punch", "thunder-punch", and "ThunderPunch" all match.
func normalizeKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		}
	}
	return b.String()
}

// typeByName resolves an elemental type from a client-supplied name.
func typeByName(name string) (pokedex.Type, bool) {
	key := normalizeKey(name)
	for t := pokedex.Type(0); t < pokedex.TypeCount; t++ {
		if normalizeKey(t.String()) == key {
			return t, true
		}
	}
	return 0, false
}

// natureByName resolves a nature from a client-supplied name.
func natureByName(name string) (pokedex.Nature, bool) {
	key := normalizeKey(name)
	for n := pokedex.Nature(0); n < pokedex.NatureCount; n++ {
		if normalizeKey(n.String()) == key {
			return n, true
		}
	}
	return 0, false
}

// versionGroupByName resolves a version group from a client-supplied
// name such as "BlackWhite" or "black-white".
func versionGroupByName(name string) (pokedex.VersionGroup, bool) {
	key := normalizeKey(name)
	for g := pokedex.GroupRedBlue; g <= pokedex.GroupBlackWhite2; g++ {
		if normalizeKey(g.String()) == key {
			return g, true
		}
	}
	return 0, false
}

// typeNames flattens a one-or-two type set into display names.
func typeNames(types pokedex.OneOrTwo[pokedex.Type]) []string {
	names := []string{types.First().String()}
	if second, ok := types.Second(); ok {
		names = append(names, second.String())
	}
	return names
}
