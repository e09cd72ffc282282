package scanner

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeightSource interface {
		LatestHeight(ctx context.Context) (uint32, error)
	}
	NodeClient interface {
		LatestHeight(ctx context.Context) (uint32, error)
		Blocks(ctx context.Context, start, end uint32) ([]json.RawMessage, error)
		FindTransitionID(ctx context.Context, serialNumber model.SerialNumber) (string, error)
	}
	BlockDecoder interface {
		Decode(ctx context.Context, raw json.RawMessage, fallbackHeight uint32) (model.Block, error)
	}
	RecordCipher interface {
		AddressXCoordinate(ctx context.Context, viewKey model.ViewKey) (string, error)
		IsOwner(ctx context.Context, ciphertext model.CiphertextRecord, viewKey model.ViewKey, xCoordinate string) (bool, error)
		Decrypt(ctx context.Context, ciphertext model.CiphertextRecord, viewKey model.ViewKey) (model.PlaintextRecord, error)
		SerialNumber(ctx context.Context, privateKey model.PrivateKey, commitment string) (model.SerialNumber, error)
	}
	ScannerMetrics interface {
		ObserveScan(err error, started time.Time)
		ObservePage(err error, blocks int, started time.Time)
		ObserveRecord(outcome string)
	}
	RecordWriter interface {
		Start(ctx context.Context)
		Stop() error
		WriteRecord(ctx context.Context, r model.OwnedRecord) error
	}
	ClickhouseRepository interface {
		InsertOwnedRecords(ctx context.Context, records []model.OwnedRecord) error
	}
)
