package tui

import (
	"fmt"
	"io"

	"github.com/abdidvp/sellone/internal/domain"
)

var _ domain.Display = (*Display)(nil)

// Display implements domain.Display with colored, newline-terminated output for terminals.
type Display struct {
	w   io.Writer
	err error
}

// NewDisplay creates a styled Display writing to w.
func NewDisplay(w io.Writer) *Display {
	return &Display{w: w}
}

func (d *Display) DisplayPrice(price domain.Price) {
	d.writeln(priceStyle.Render(fmt.Sprintf("%d€", price.Value())))
}

func (d *Display) DisplayProductNotFoundMessage(barcode string) {
	d.writeln(notFoundStyle.Render("Product not found for " + barcode))
}

func (d *Display) DisplayEmptyBarcodeMessage() {
	d.writeln(emptyStyle.Render("Scanning error: empty barcode"))
}

// Err returns the first write error, if any.
func (d *Display) Err() error { return d.err }

func (d *Display) writeln(line string) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintln(d.w, line)
}
