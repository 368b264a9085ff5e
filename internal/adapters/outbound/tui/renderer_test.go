package tui_test

import (
	"testing"

	"github.com/abdidvp/sellone/internal/adapters/outbound/tui"
	"github.com/abdidvp/sellone/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleEntries() []domain.CatalogEntry {
	return []domain.CatalogEntry{
		{Barcode: "12345", Price: domain.Euro(7)},
		{Barcode: "29384", Price: domain.Euro(24)},
	}
}

func TestRenderCatalog_ContainsHeader(t *testing.T) {
	output := tui.RenderCatalog(sampleEntries())
	assert.Contains(t, output, "sellone")
	assert.Contains(t, output, "catalog")
}

func TestRenderCatalog_ContainsEntries(t *testing.T) {
	output := tui.RenderCatalog(sampleEntries())
	assert.Contains(t, output, "12345")
	assert.Contains(t, output, "7€")
	assert.Contains(t, output, "29384")
	assert.Contains(t, output, "24€")
}

func TestRenderCatalog_ShowsCount(t *testing.T) {
	output := tui.RenderCatalog(sampleEntries())
	assert.Contains(t, output, "2 products")
}

func TestRenderCatalog_Empty(t *testing.T) {
	output := tui.RenderCatalog(nil)
	assert.Contains(t, output, "No products configured.")
}
