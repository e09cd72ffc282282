package scanner

import (
	"context"
	"errors"
	"fmt"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/metrics"
	"go.uber.org/zap"
)

// SpentCheckPolicy decides how failed spent-status queries are classified.
type SpentCheckPolicy int

const (
	// SpentCheckLenient treats every failed query as "unspent".
	SpentCheckLenient SpentCheckPolicy = iota
	// SpentCheckStrict treats only a node reported miss as "unspent" and
	// aborts the scan on any other failure.
	SpentCheckStrict
)

func (p SpentCheckPolicy) String() string {
	if p == SpentCheckStrict {
		return "strict"
	}
	return "lenient"
}

type recordFilter struct {
	node    NodeClient
	cipher  RecordCipher
	metrics ScannerMetrics
	policy  SpentCheckPolicy
	network model.Network
	logger  *zap.Logger
}

// Filter returns the owned, unspent records of b decrypted, in record order.
func (f *recordFilter) Filter(ctx context.Context, acct model.Account, xCoordinate string, b model.Block) ([]model.OwnedRecord, error) {
	var owned []model.OwnedRecord
	for _, entry := range b.Records {
		isOwner, err := f.cipher.IsOwner(ctx, entry.Ciphertext, acct.ViewKey, xCoordinate)
		if err != nil {
			return nil, fmt.Errorf("block %d, commitment %s: %w", b.Height, entry.Commitment, err)
		}
		if !isOwner {
			f.metrics.ObserveRecord(metrics.RecordSkipped)
			continue
		}

		if acct.CanCheckSpent() {
			spent, err := f.isSpent(ctx, acct.SpendKey, entry.Commitment)
			if err != nil {
				return nil, fmt.Errorf("block %d, commitment %s: %w", b.Height, entry.Commitment, err)
			}
			if spent {
				f.metrics.ObserveRecord(metrics.RecordSpent)
				continue
			}
		}

		plaintext, err := f.cipher.Decrypt(ctx, entry.Ciphertext, acct.ViewKey)
		if err != nil {
			if !errors.Is(err, model.ErrDecryptionFailed) {
				err = fmt.Errorf("%w: %w", model.ErrDecryptionFailed, err)
			}
			return nil, fmt.Errorf("block %d, commitment %s: %w", b.Height, entry.Commitment, err)
		}
		f.metrics.ObserveRecord(metrics.RecordDecrypted)

		owned = append(owned, model.OwnedRecord{
			Network:     f.network,
			BlockHeight: b.Height,
			Commitment:  entry.Commitment,
			Plaintext:   plaintext,
		})
	}
	return owned, nil
}

func (f *recordFilter) isSpent(ctx context.Context, spendKey model.PrivateKey, commitment string) (bool, error) {
	sn, err := f.cipher.SerialNumber(ctx, spendKey, commitment)
	if err != nil {
		return false, fmt.Errorf("%w: serial number: %w", model.ErrSpentCheckFailed, err)
	}

	_, err = f.node.FindTransitionID(ctx, sn)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, model.ErrTransitionNotFound):
		return false, nil
	case f.policy == SpentCheckStrict:
		return false, fmt.Errorf("%w: %w", model.ErrSpentCheckFailed, err)
	default:
		// The node could not answer; the record is kept as unspent.
		f.logger.Warn("spent check failed, assuming unspent",
			zap.String("commitment", commitment),
			zap.Error(err),
		)
		f.metrics.ObserveRecord(metrics.RecordAssumedUnspent)
		return false, nil
	}
}
