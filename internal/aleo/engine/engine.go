// Package engine declares the cryptographic capabilities the wallet consumes.
// Implementations wrap an external library or process; none of the primitives
// are implemented in this module.
package engine

import (
	"context"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
)

type (
	// RecordCipher tests ownership of, decrypts and derives serial numbers for records.
	RecordCipher interface {
		AddressXCoordinate(ctx context.Context, viewKey model.ViewKey) (string, error)
		IsOwner(ctx context.Context, ciphertext model.CiphertextRecord, viewKey model.ViewKey, xCoordinate string) (bool, error)
		Decrypt(ctx context.Context, ciphertext model.CiphertextRecord, viewKey model.ViewKey) (model.PlaintextRecord, error)
		SerialNumber(ctx context.Context, privateKey model.PrivateKey, commitment string) (model.SerialNumber, error)
	}

	// Executor builds and proves transactions. An Executor is owned by a single
	// build and must not be shared between concurrent builds.
	Executor interface {
		ExecuteTransfer(ctx context.Context, req model.TransferRequest, queryEndpoint string) (model.Transaction, error)
		Close() error
	}

	// ExecutorFactory opens a fresh Executor for every build.
	ExecutorFactory interface {
		New() (Executor, error)
	}
)
