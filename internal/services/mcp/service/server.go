package service

import (
	"context"
	"fmt"

	"github.com/louisbranch/pokedex"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Gen V Pokédex MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

// TransportStdio uses standard input/output for MCP. It is the only
// transport; the server reads an in-process bundle and has nothing to
// expose over a network.
const TransportStdio TransportKind = "stdio"

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
}

// Server hosts the MCP server over an immutable dex bundle.
type Server struct {
	mcpServer *mcp.Server
}

// New creates an MCP server with every dex tool and resource registered.
func New(dex *pokedex.Pokedex) (*Server, error) {
	if dex == nil {
		return nil, fmt.Errorf("dex bundle is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		CompletionHandler: completionHandler,
	})

	registerLookupTools(mcpServer, dex)
	registerBattleTools(mcpServer, dex)
	registerDexResources(mcpServer, dex)

	return &Server{mcpServer: mcpServer}, nil
}

// completionHandler handles completion/complete requests with empty
// results. Argument completion needs per-tool candidate wiring the dex
// tools do not have yet.
func completionHandler(ctx context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values: []string{},
		},
	}, nil
}

// Run creates and serves the MCP server until the context ends.
func Run(ctx context.Context, dex *pokedex.Pokedex, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return runWithTransport(ctx, dex, &mcp.StdioTransport{})
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// runWithTransport creates a server and serves it over the transport.
func runWithTransport(ctx context.Context, dex *pokedex.Pokedex, transport mcp.Transport) error {
	server, err := New(dex)
	if err != nil {
		return err
	}
	return server.mcpServer.Run(ctx, transport)
}
