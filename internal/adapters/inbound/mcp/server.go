package mcp

import (
	"github.com/abdidvp/sellone/internal/domain"
	"github.com/mark3labs/mcp-go/server"
)

// NewSelloneMCPServer creates a new MCP server with all sellone tools and
// resources registered. loader reads the catalog at catalogPath on every call,
// so edits show up without restarting the server.
func NewSelloneMCPServer(loader domain.CatalogLoader, catalogPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"sellone",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, loader, catalogPath)
	registerResources(s, loader, catalogPath)

	return s
}
