package tui

import (
	"fmt"
	"strings"

	"github.com/abdidvp/sellone/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── warm till palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	priceStyle    = lipgloss.NewStyle().Bold(true).Foreground(success)
	notFoundStyle = lipgloss.NewStyle().Foreground(danger)
	emptyStyle    = lipgloss.NewStyle().Foreground(warning)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	barcodeStyle  = lipgloss.NewStyle().Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 32))
)

// RenderCatalog renders the catalog as an aligned two-column listing.
func RenderCatalog(entries []domain.CatalogEntry) string {
	var b strings.Builder

	b.WriteString(boxStyle.Render(headerStyle.Render("sellone") + "  " + dimStyle.Render("catalog")))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString("  " + dimStyle.Render("No products configured.") + "\n")
		return b.String()
	}

	width := 0
	for _, e := range entries {
		if len(e.Barcode) > width {
			width = len(e.Barcode)
		}
	}

	for _, e := range entries {
		code := barcodeStyle.Render(fmt.Sprintf("%-*s", width, e.Barcode))
		b.WriteString("  " + code + "  " + priceStyle.Render(fmt.Sprintf("%d€", e.Price.Value())) + "\n")
	}

	b.WriteString("\n  " + separatorLine + "\n")
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%d products", len(entries))) + "\n")
	return b.String()
}
