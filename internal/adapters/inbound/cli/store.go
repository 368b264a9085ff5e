package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/abdidvp/sellone/internal/adapters/outbound/config"
	"github.com/abdidvp/sellone/internal/adapters/outbound/display"
	"github.com/abdidvp/sellone/internal/adapters/outbound/tui"
	"github.com/abdidvp/sellone/internal/domain"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const catalogFlag = "catalog"

func addCatalogFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVar(path, catalogFlag, config.FileName, "Store catalog file")
}

// loadStoreConfig reads the catalog file. A missing default file means an empty
// catalog; a missing file named explicitly is an error.
func loadStoreConfig(cmd *cobra.Command, loader domain.CatalogLoader, path string) (domain.StoreConfig, error) {
	if cmd.Flags().Changed(catalogFlag) {
		if _, err := os.Stat(path); err != nil {
			return domain.StoreConfig{}, fmt.Errorf("opening catalog: %w", err)
		}
	}

	cfg, err := loader.Load(path)
	if err != nil {
		return domain.StoreConfig{}, fmt.Errorf("loading catalog: %w", err)
	}
	return cfg, nil
}

type checkedDisplay interface {
	domain.Display
	Err() error
}

// newDisplay picks the styled display for terminals and the plain one otherwise.
func newDisplay(w io.Writer, plain bool) checkedDisplay {
	if !plain && isTerminal(w) {
		return tui.NewDisplay(w)
	}
	return display.NewConsole(w, display.WithNewline())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
