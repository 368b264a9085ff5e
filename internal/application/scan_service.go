package application

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// BarcodeHandler receives scanned barcodes one at a time.
type BarcodeHandler interface {
	OnBarcode(barcode string)
}

// ScanSummary counts what a scan session went through.
type ScanSummary struct {
	Scanned int
	Empty   int
}

// MaxLineLength caps a single input line. Longer lines end the session with
// bufio.ErrTooLong; no real barcode symbology comes near it.
const MaxLineLength = 1 << 20

// ScanService feeds a stream of barcodes, one per line, to a BarcodeHandler.
type ScanService struct {
	handler BarcodeHandler
	logger  *zap.Logger
}

// NewScanService creates a ScanService. A nil logger disables logging.
func NewScanService(handler BarcodeHandler, logger *zap.Logger) *ScanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScanService{handler: handler, logger: logger}
}

// ScanAll reads r line by line until EOF. Blank lines count as empty barcodes.
// The context is checked between lines.
func (s *ScanService) ScanAll(ctx context.Context, r io.Reader) (ScanSummary, error) {
	var summary ScanSummary

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxLineLength)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		s.Scan(sc.Text())
		summary.Scanned++
		if strings.TrimSpace(sc.Text()) == "" {
			summary.Empty++
		}
	}
	if err := sc.Err(); err != nil {
		return summary, fmt.Errorf("reading barcodes: %w", err)
	}

	s.logger.Debug("scan session finished",
		zap.Int("scanned", summary.Scanned),
		zap.Int("empty", summary.Empty),
	)
	return summary, nil
}

// Scan handles one raw line from a scanner device.
func (s *ScanService) Scan(raw string) {
	barcode := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
	s.logger.Debug("barcode scanned", zap.String("barcode", barcode))
	s.handler.OnBarcode(barcode)
}
