package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/sellone/internal/domain"
)

const catalogURI = "sellone://catalog"

// registerResources registers all sellone MCP resources on the given server.
func registerResources(s *server.MCPServer, loader domain.CatalogLoader, catalogPath string) {
	s.AddResource(
		mcplib.NewResource(
			catalogURI,
			"Catalog",
			mcplib.WithResourceDescription("Every barcode in the store catalog with its price in euros"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCatalogResource(loader, catalogPath),
	)
}

func handleCatalogResource(loader domain.CatalogLoader, catalogPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cat, err := loadCatalog(loader, catalogPath)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}

		data, err := json.MarshalIndent(cat.Entries(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling catalog: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      catalogURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
