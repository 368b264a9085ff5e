package display

import (
	"fmt"
	"io"

	"github.com/abdidvp/sellone/internal/domain"
)

// Console implements domain.Display by writing plain text to an io.Writer.
type Console struct {
	w       io.Writer
	newline bool
	err     error
}

// Option configures a Console.
type Option func(*Console)

var _ domain.Display = (*Console)(nil)

// WithNewline terminates every message with a newline.
func WithNewline() Option {
	return func(c *Console) { c.newline = true }
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer, opts ...Option) *Console {
	c := &Console{w: w}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) DisplayPrice(price domain.Price) {
	c.write(fmt.Sprintf("%d€", price.Value()))
}

func (c *Console) DisplayProductNotFoundMessage(barcode string) {
	c.write("Product not found for " + barcode)
}

func (c *Console) DisplayEmptyBarcodeMessage() {
	c.write("Scanning error: empty barcode")
}

// Err returns the first write error, if any.
func (c *Console) Err() error { return c.err }

func (c *Console) write(msg string) {
	if c.err != nil {
		return
	}
	if c.newline {
		msg += "\n"
	}
	_, c.err = io.WriteString(c.w, msg)
}
