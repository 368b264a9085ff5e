package application

import "github.com/abdidvp/sellone/internal/domain"

// SaleController turns a scanned barcode into exactly one display call.
type SaleController struct {
	catalog domain.Catalog
	display domain.Display
}

// NewSaleController creates a SaleController. Both collaborators are owned by the caller.
func NewSaleController(catalog domain.Catalog, display domain.Display) *SaleController {
	return &SaleController{catalog: catalog, display: display}
}

// OnBarcode handles a single scan. An empty barcode never reaches the catalog.
func (c *SaleController) OnBarcode(barcode string) {
	if barcode == "" {
		c.display.DisplayEmptyBarcodeMessage()
		return
	}

	price, ok := c.catalog.FindPrice(barcode)
	if !ok {
		c.display.DisplayProductNotFoundMessage(barcode)
		return
	}
	c.display.DisplayPrice(price)
}
