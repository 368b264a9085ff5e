package cli

import (
	"encoding/json"
	"fmt"

	"github.com/abdidvp/sellone/internal/adapters/outbound/catalog"
	"github.com/abdidvp/sellone/internal/adapters/outbound/config"
	"github.com/abdidvp/sellone/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	var (
		catalogPath string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the products in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadStoreConfig(cmd, config.New(), catalogPath)
			if err != nil {
				return err
			}

			entries := catalog.FromConfig(cfg).Entries()
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCatalog(entries))
			return nil
		},
	}

	addCatalogFlag(cmd, &catalogPath)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output catalog as JSON")

	return cmd
}
