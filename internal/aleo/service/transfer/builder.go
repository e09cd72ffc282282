package transfer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/account"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"go.uber.org/zap"
)

// recordFields must all appear in a plaintext credits record.
var recordFields = []string{"owner:", "_nonce:"}

type builder struct {
	executors ExecutorFactory
	metrics   TransferMetrics
	logger    *zap.Logger
}

// Build proves a credits transfer with a dedicated executor. Once started the
// build is not interrupted by cancellation of ctx.
func (b *builder) Build(ctx context.Context, req model.TransferRequest, queryEndpoint string) (tx model.Transaction, err error) {
	started := time.Now()
	defer func() {
		b.metrics.ObserveBuild(err, started)
	}()

	exec, err := b.executors.New()
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: open executor: %w", model.ErrTransactionBuildFailed, err)
	}
	defer func() {
		if cerr := exec.Close(); cerr != nil {
			b.logger.Warn("close executor failed", zap.Error(cerr))
		}
	}()

	b.logger.Info("building transfer",
		zap.String("recipient", string(req.Recipient)),
		zap.Uint64("amount", req.Amount),
	)
	tx, err = exec.ExecuteTransfer(context.WithoutCancel(ctx), req, queryEndpoint)
	if err != nil {
		return model.Transaction{}, err
	}
	if tx.ID == "" {
		return model.Transaction{}, fmt.Errorf("%w: transaction has no id", model.ErrTransactionBuildFailed)
	}
	b.logger.Info("transfer built", zap.String("id", string(tx.ID)), zap.Duration("elapsed", time.Since(started)))
	return tx, nil
}

// ParseRequest validates the string inputs of a transfer.
func ParseRequest(privateKey, record string, amount uint64, recipient string) (model.TransferRequest, error) {
	pk, err := account.ParsePrivateKey(privateKey)
	if err != nil {
		return model.TransferRequest{}, err
	}
	rec, err := parseRecord(record)
	if err != nil {
		return model.TransferRequest{}, err
	}
	addr, err := account.ParseAddress(recipient)
	if err != nil {
		return model.TransferRequest{}, err
	}
	return model.TransferRequest{
		PrivateKey: pk,
		Record:     rec,
		Amount:     amount,
		Recipient:  addr,
	}, nil
}

func parseRecord(s string) (model.PlaintextRecord, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return "", fmt.Errorf("%w: expected a plaintext record in braces", model.ErrInvalidRecord)
	}
	for _, f := range recordFields {
		if !strings.Contains(s, f) {
			return "", fmt.Errorf("%w: missing %q", model.ErrInvalidRecord, strings.TrimSuffix(f, ":"))
		}
	}
	return model.PlaintextRecord(s), nil
}
