// Package domain translates MCP tool and resource requests into dex
// bundle lookups.
//
// Every handler reads the in-process bundle directly; there is no
// network hop and no write path. Lookup misses surface as tool error
// results so MCP clients can distinguish bad arguments from transport
// failures.
package domain
