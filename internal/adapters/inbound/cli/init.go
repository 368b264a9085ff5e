package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/sellone/internal/adapters/outbound/config"
	"github.com/spf13/cobra"
)

const sampleConfig = `# sellone store catalog
# Prices are whole euros, keyed by barcode.

currency: EUR

prices:
  "29384": 24
  "12345": 7

# Quote barcodes so leading zeros survive:
#   "0042": 3
`

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a " + config.FileName + " catalog file",
		Long:  "Create a " + config.FileName + " with a small sample catalog.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			if err := os.WriteFile(dest, []byte(sampleConfig), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing "+config.FileName)

	return cmd
}
