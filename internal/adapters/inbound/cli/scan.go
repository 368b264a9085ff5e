package cli

import (
	"fmt"

	"github.com/abdidvp/sellone/internal/adapters/outbound/catalog"
	"github.com/abdidvp/sellone/internal/adapters/outbound/config"
	"github.com/abdidvp/sellone/internal/adapters/outbound/logging"
	"github.com/abdidvp/sellone/internal/application"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newScanCmd() *cobra.Command {
	var (
		catalogPath string
		plain       bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "scan [barcode...]",
		Short: "Scan barcodes and display their price",
		Long:  "Look up each barcode in the catalog. Without arguments, barcodes are read from stdin, one per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadStoreConfig(cmd, config.New(), catalogPath)
			if err != nil {
				return err
			}

			logger := logging.New(verbose, cmd.ErrOrStderr())
			defer func() { _ = logger.Sync() }()

			d := newDisplay(cmd.OutOrStdout(), plain)
			ctrl := application.NewSaleController(catalog.FromConfig(cfg), d)

			if len(args) > 0 {
				// Arguments are passed through untrimmed.
				for _, barcode := range args {
					logger.Debug("barcode scanned", zap.String("barcode", barcode))
					ctrl.OnBarcode(barcode)
				}
			} else {
				svc := application.NewScanService(ctrl, logger)
				if _, err := svc.ScanAll(cmd.Context(), cmd.InOrStdin()); err != nil {
					return fmt.Errorf("scanning: %w", err)
				}
			}

			if err := d.Err(); err != nil {
				return fmt.Errorf("writing display: %w", err)
			}
			return nil
		},
	}

	addCatalogFlag(cmd, &catalogPath)
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output even on a terminal")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log each scan to stderr")

	return cmd
}
