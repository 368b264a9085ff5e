package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/sellone/internal/adapters/outbound/catalog"
	"github.com/abdidvp/sellone/internal/adapters/outbound/display"
	"github.com/abdidvp/sellone/internal/application"
	"github.com/abdidvp/sellone/internal/domain"
)

// registerTools registers all sellone MCP tools on the given server.
func registerTools(s *server.MCPServer, loader domain.CatalogLoader, catalogPath string) {
	// 1. sellone_scan
	s.AddTool(
		mcplib.NewTool("sellone_scan",
			mcplib.WithDescription("Scan a barcode and return exactly what the till display shows"),
			mcplib.WithString("barcode",
				mcplib.Required(),
				mcplib.Description("Scanned barcode; an empty string simulates a failed scan"),
			),
		),
		handleScan(loader, catalogPath),
	)

	// 2. sellone_find_price
	s.AddTool(
		mcplib.NewTool("sellone_find_price",
			mcplib.WithDescription("Look up a barcode in the catalog and return the result as JSON"),
			mcplib.WithString("barcode",
				mcplib.Required(),
				mcplib.Description("Barcode to look up"),
			),
		),
		handleFindPrice(loader, catalogPath),
	)
}

func loadCatalog(loader domain.CatalogLoader, catalogPath string) (*catalog.InMemory, error) {
	cfg, err := loader.Load(catalogPath)
	if err != nil {
		return nil, err
	}
	return catalog.FromConfig(cfg), nil
}

func handleScan(loader domain.CatalogLoader, catalogPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		barcode, err := request.RequireString("barcode")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cat, err := loadCatalog(loader, catalogPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading catalog failed: %v", err)), nil
		}

		var buf bytes.Buffer
		d := display.NewConsole(&buf)
		application.NewSaleController(cat, d).OnBarcode(barcode)
		if err := d.Err(); err != nil {
			return errorResult(fmt.Sprintf("display failed: %v", err)), nil
		}
		return textResult(buf.String()), nil
	}
}

// priceLookup is the JSON shape returned by sellone_find_price.
type priceLookup struct {
	Barcode string `json:"barcode"`
	Found   bool   `json:"found"`
	Price   *int   `json:"price,omitempty"`
}

func handleFindPrice(loader domain.CatalogLoader, catalogPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		barcode, err := request.RequireString("barcode")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cat, err := loadCatalog(loader, catalogPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading catalog failed: %v", err)), nil
		}

		result := priceLookup{Barcode: barcode}
		if price, ok := cat.FindPrice(barcode); ok {
			v := price.Value()
			result.Found = true
			result.Price = &v
		}
		return jsonResult(result)
	}
}

// jsonResult marshals v as indented JSON into a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns an error result with the given message.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
