package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/sellone/internal/adapters/outbound/config"
	"github.com/abdidvp/sellone/internal/domain"
)

const fixtureCatalog = "../../../../testdata/store/.sellone.yaml"

func callTool(t *testing.T, handler func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	return res
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHandleScan_KnownProduct(t *testing.T) {
	res := callTool(t, handleScan(config.New(), fixtureCatalog), map[string]any{"barcode": "29384"})
	assert.False(t, res.IsError)
	assert.Equal(t, "24€", resultText(t, res))
}

func TestHandleScan_UnknownProduct(t *testing.T) {
	res := callTool(t, handleScan(config.New(), fixtureCatalog), map[string]any{"barcode": "1323242"})
	assert.Equal(t, "Product not found for 1323242", resultText(t, res))
}

func TestHandleScan_EmptyBarcode(t *testing.T) {
	res := callTool(t, handleScan(config.New(), fixtureCatalog), map[string]any{"barcode": ""})
	assert.Equal(t, "Scanning error: empty barcode", resultText(t, res))
}

func TestHandleScan_MissingArgument(t *testing.T) {
	res := callTool(t, handleScan(config.New(), fixtureCatalog), map[string]any{})
	assert.True(t, res.IsError)
}

func TestHandleScan_BrokenCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sellone.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0644))

	res := callTool(t, handleScan(config.New(), path), map[string]any{"barcode": "1"})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "loading catalog failed")
}

func TestHandleFindPrice(t *testing.T) {
	res := callTool(t, handleFindPrice(config.New(), fixtureCatalog), map[string]any{"barcode": "29384"})

	var got priceLookup
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.True(t, got.Found)
	require.NotNil(t, got.Price)
	assert.Equal(t, 24, *got.Price)
}

func TestHandleFindPrice_ZeroPriceIsFound(t *testing.T) {
	res := callTool(t, handleFindPrice(config.New(), fixtureCatalog), map[string]any{"barcode": "99999"})
	assert.JSONEq(t, `{"barcode":"99999","found":true,"price":0}`, resultText(t, res))
}

func TestHandleFindPrice_NotFound(t *testing.T) {
	res := callTool(t, handleFindPrice(config.New(), fixtureCatalog), map[string]any{"barcode": "23948"})
	assert.JSONEq(t, `{"barcode":"23948","found":false}`, resultText(t, res))
}

func TestHandleCatalogResource(t *testing.T) {
	contents, err := handleCatalogResource(config.New(), fixtureCatalog)(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, catalogURI, text.URI)
	assert.Contains(t, text.Text, `"barcode": "29384"`)
	assert.Contains(t, text.Text, `"price": 24`)
}

// stubLoader serves a fixed configuration and records the paths it was asked for.
type stubLoader struct {
	cfg   domain.StoreConfig
	err   error
	paths []string
}

var _ domain.CatalogLoader = (*stubLoader)(nil)

func (l *stubLoader) Load(path string) (domain.StoreConfig, error) {
	l.paths = append(l.paths, path)
	return l.cfg, l.err
}

func TestHandleScan_UsesInjectedLoader(t *testing.T) {
	loader := &stubLoader{cfg: domain.StoreConfig{Prices: map[string]int{"555": 9}}}

	res := callTool(t, handleScan(loader, "shop.yaml"), map[string]any{"barcode": "555"})

	assert.Equal(t, "9€", resultText(t, res))
	assert.Equal(t, []string{"shop.yaml"}, loader.paths)
}

func TestHandleFindPrice_LoaderError(t *testing.T) {
	loader := &stubLoader{err: errors.New("disk on fire")}

	res := callTool(t, handleFindPrice(loader, "shop.yaml"), map[string]any{"barcode": "555"})

	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "disk on fire")
}

func TestHandleCatalogResource_UsesInjectedLoader(t *testing.T) {
	loader := &stubLoader{cfg: domain.StoreConfig{Prices: map[string]int{"777": 3}}}

	contents, err := handleCatalogResource(loader, "shop.yaml")(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Contains(t, text.Text, `"barcode": "777"`)
}
