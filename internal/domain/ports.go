package domain

// Catalog looks up the price of a scanned barcode.
// ok is false when the catalog has no price for the barcode.
type Catalog interface {
	FindPrice(barcode string) (price Price, ok bool)
}

// Display renders the outcome of a scan to the cashier.
type Display interface {
	DisplayPrice(price Price)
	DisplayProductNotFoundMessage(barcode string)
	DisplayEmptyBarcodeMessage()
}

// CatalogLoader reads store configuration from a file.
type CatalogLoader interface {
	Load(path string) (StoreConfig, error)
}
