package catalog

import (
	"sort"

	"github.com/abdidvp/sellone/internal/domain"
)

// InMemory implements domain.Catalog over a fixed barcode to price map.
type InMemory struct {
	pricesByBarcode map[string]domain.Price
}

// NewInMemory creates a catalog holding a copy of pricesByBarcode.
func NewInMemory(pricesByBarcode map[string]domain.Price) *InMemory {
	prices := make(map[string]domain.Price, len(pricesByBarcode))
	for barcode, price := range pricesByBarcode {
		prices[barcode] = price
	}
	return &InMemory{pricesByBarcode: prices}
}

// FromConfig creates a catalog from the prices in cfg.
func FromConfig(cfg domain.StoreConfig) *InMemory {
	prices := make(map[string]domain.Price, len(cfg.Prices))
	for barcode, value := range cfg.Prices {
		prices[barcode] = domain.Euro(value)
	}
	return &InMemory{pricesByBarcode: prices}
}

func (c *InMemory) FindPrice(barcode string) (domain.Price, bool) {
	price, ok := c.pricesByBarcode[barcode]
	return price, ok
}

// Entries lists the catalog sorted by barcode.
func (c *InMemory) Entries() []domain.CatalogEntry {
	entries := make([]domain.CatalogEntry, 0, len(c.pricesByBarcode))
	for barcode, price := range c.pricesByBarcode {
		entries = append(entries, domain.CatalogEntry{Barcode: barcode, Price: price})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Barcode < entries[j].Barcode })
	return entries
}
