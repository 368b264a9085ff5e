package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// CurrencyEUR is the only supported currency.
const CurrencyEUR = "EUR"

// StoreConfig holds the store configuration loaded from .sellone.yaml.
type StoreConfig struct {
	Currency string         `yaml:"currency" json:"currency,omitempty"`
	Prices   map[string]int `yaml:"prices"   json:"prices,omitempty"`
}

// CatalogEntry is one barcode with its price.
type CatalogEntry struct {
	Barcode string `json:"barcode"`
	Price   Price  `json:"-"`
}

// MarshalJSON renders the price as a plain integer amount.
func (e CatalogEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Barcode string `json:"barcode"`
		Price   int    `json:"price"`
	}{e.Barcode, e.Price.Value()})
}

// DefaultConfig returns an empty EUR catalog.
func DefaultConfig() StoreConfig {
	return StoreConfig{Currency: CurrencyEUR}
}

// Validate checks the configuration for values a till cannot work with.
func (c StoreConfig) Validate() error {
	var errs []error

	if c.Currency != "" && c.Currency != CurrencyEUR {
		errs = append(errs, fmt.Errorf("unsupported currency %q (only %s)", c.Currency, CurrencyEUR))
	}

	for _, barcode := range sortedBarcodes(c.Prices) {
		if barcode == "" {
			errs = append(errs, errors.New("empty barcode in prices"))
			continue
		}
		if v := c.Prices[barcode]; v < 0 {
			errs = append(errs, fmt.Errorf("negative price %d for barcode %q", v, barcode))
		}
	}

	return errors.Join(errs...)
}

// Entries returns the configured prices sorted by barcode.
func (c StoreConfig) Entries() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(c.Prices))
	for _, barcode := range sortedBarcodes(c.Prices) {
		entries = append(entries, CatalogEntry{Barcode: barcode, Price: Euro(c.Prices[barcode])})
	}
	return entries
}

func sortedBarcodes(prices map[string]int) []string {
	barcodes := make([]string, 0, len(prices))
	for b := range prices {
		barcodes = append(barcodes, b)
	}
	sort.Strings(barcodes)
	return barcodes
}
