// Package service wires the MCP protocol transport to the dex domain
// handlers.
//
// It is the transport adapter layer: the package knows how to run MCP
// over stdio and delegates lookup meaning to the domain package.
package service
