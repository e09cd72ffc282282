package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"go.uber.org/zap"
)

type submitter struct {
	broadcaster Broadcaster
	metrics     TransferMetrics
	logger      *zap.Logger
}

// Submit posts tx to endpoint and checks that the node acknowledged the same id.
func (s *submitter) Submit(ctx context.Context, tx model.Transaction, endpoint string) (id model.TransactionID, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBroadcast(err, started)
	}()

	payload, err := Canonical(tx)
	if err != nil {
		return "", err
	}

	resp, err := s.broadcaster.Broadcast(ctx, endpoint, payload)
	if err != nil {
		return "", err
	}

	var ack string
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp)), &ack); err != nil {
		return "", fmt.Errorf("%w: unexpected response %q", model.ErrBroadcastAcknowledgmentMismatch, truncate(resp))
	}
	if ack != string(tx.ID) {
		return "", fmt.Errorf("%w: sent %s, node acknowledged %s", model.ErrBroadcastAcknowledgmentMismatch, tx.ID, ack)
	}

	s.logger.Info("transaction broadcast", zap.String("id", string(tx.ID)), zap.String("endpoint", endpoint))
	return tx.ID, nil
}

// Canonical returns the compact JSON form of tx accepted by broadcast endpoints.
func Canonical(tx model.Transaction) ([]byte, error) {
	if len(tx.Raw) == 0 {
		return nil, fmt.Errorf("%w: transaction %s has no body", model.ErrTransactionBuildFailed, tx.ID)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, tx.Raw); err != nil {
		return nil, fmt.Errorf("%w: serialize transaction: %w", model.ErrTransactionBuildFailed, err)
	}
	return buf.Bytes(), nil
}

func truncate(s string) string {
	const limit = 256
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
