package service

import (
	"context"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/service/scanner"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/service/transfer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RecordScanner interface {
		Scan(ctx context.Context, acct model.Account, spec scanner.RangeSpec) ([]model.OwnedRecord, error)
	}
	ScannerProvider interface {
		ForEndpoint(endpoint string) (RecordScanner, error)
	}
	Transferrer interface {
		Transfer(ctx context.Context, req transfer.Request) (string, error)
	}
)
