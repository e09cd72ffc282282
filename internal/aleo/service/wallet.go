// Package service exposes the wallet operations to transports: every call
// reports either a result or a caller readable message, never both.
package service

import (
	"context"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/account"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/service/scanner"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/service/transfer"
	"go.uber.org/zap"
)

// ScanRequest selects the key material, block range and node of a scan.
type ScanRequest struct {
	SpendKey *string
	ViewKey  string
	Start    *uint32
	End      *uint32
	Last     *uint32
	Endpoint string
}

// ScanResult carries the decrypted records, or Message when the scan failed.
type ScanResult struct {
	Message string   `json:"message,omitempty"`
	Records []string `json:"records,omitempty"`
}

// TransferErrorPrefix starts every failed transfer result.
const TransferErrorPrefix = "error: "

type Wallet struct {
	scanners  ScannerProvider
	transfers Transferrer
	logger    *zap.Logger
}

func NewWallet(scanners ScannerProvider, transfers Transferrer, logger *zap.Logger) *Wallet {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Wallet{
		scanners:  scanners,
		transfers: transfers,
		logger:    logger,
	}
}

// Scan returns the plaintext records the view key owns in the requested range.
func (w *Wallet) Scan(ctx context.Context, req ScanRequest) ScanResult {
	records, err := w.scan(ctx, req)
	if err != nil {
		w.logger.Info("scan failed", zap.Error(err))
		return ScanResult{Message: err.Error()}
	}

	res := ScanResult{Records: make([]string, 0, len(records))}
	for _, r := range records {
		res.Records = append(res.Records, string(r.Plaintext))
	}
	return res
}

func (w *Wallet) scan(ctx context.Context, req ScanRequest) ([]model.OwnedRecord, error) {
	acct, err := account.Resolve(req.SpendKey, req.ViewKey)
	if err != nil {
		return nil, err
	}
	if acct.SpendKeyStatus == model.SpendKeyMalformed {
		w.logger.Warn("spend key is malformed, spent records will not be filtered")
	}

	spec, err := scanner.NewRangeSpec(req.Start, req.End, req.Last)
	if err != nil {
		return nil, err
	}

	sc, err := w.scanners.ForEndpoint(req.Endpoint)
	if err != nil {
		return nil, err
	}
	return sc.Scan(ctx, acct, spec)
}

// Transfer returns the transaction id, or the transaction JSON in display
// mode, or the failure prefixed with TransferErrorPrefix.
func (w *Wallet) Transfer(ctx context.Context, req transfer.Request) string {
	res, err := w.transfers.Transfer(ctx, req)
	if err != nil {
		w.logger.Warn("transfer failed", zap.Error(err))
		return TransferErrorPrefix + err.Error()
	}
	return res
}
