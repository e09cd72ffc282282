// Package transfer builds credits transfer transactions and hands them to a
// broadcast endpoint.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/node"
	"go.uber.org/zap"
)

// Request is a transfer as submitted by a caller.
type Request struct {
	PrivateKey string
	Record     string
	Amount     uint64
	Recipient  string
	// QueryEndpoint is the node the engine reads state roots from while proving.
	QueryEndpoint string
	// BroadcastEndpoint, when set, receives the built transaction.
	BroadcastEndpoint string
	// Display returns the transaction JSON when nothing is broadcast.
	Display bool
	// StorePath, when set, receives the transaction JSON before broadcasting.
	StorePath string
}

type Service struct {
	builder   *builder
	submitter *submitter
	logger    *zap.Logger
}

func NewService(executors ExecutorFactory, broadcaster Broadcaster, metrics TransferMetrics, logger *zap.Logger) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("transfer metrics is required")
	}
	if executors == nil || broadcaster == nil {
		return nil, errors.New("executor factory and broadcaster are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		builder: &builder{
			executors: executors,
			metrics:   metrics,
			logger:    logger.Named("builder"),
		},
		submitter: &submitter{
			broadcaster: broadcaster,
			metrics:     metrics,
			logger:      logger.Named("submitter"),
		},
		logger: logger,
	}, nil
}

// Transfer builds the transaction described by req. It returns the
// acknowledged transaction id when broadcasting, the transaction JSON in
// display mode and an empty string otherwise.
func (s *Service) Transfer(ctx context.Context, req Request) (string, error) {
	transfer, err := ParseRequest(req.PrivateKey, req.Record, req.Amount, req.Recipient)
	if err != nil {
		return "", err
	}
	query, err := node.ValidateEndpoint(req.QueryEndpoint)
	if err != nil {
		return "", fmt.Errorf("query endpoint: %w", err)
	}
	var broadcast string
	if req.BroadcastEndpoint != "" {
		if broadcast, err = node.ValidateEndpoint(req.BroadcastEndpoint); err != nil {
			return "", fmt.Errorf("broadcast endpoint: %w", err)
		}
	}

	tx, err := s.builder.Build(ctx, transfer, query)
	if err != nil {
		return "", err
	}

	if req.StorePath != "" {
		if err := store(tx, req.StorePath); err != nil {
			s.logger.Warn("transaction could not be stored", zap.String("path", req.StorePath), zap.Error(err))
		} else {
			s.logger.Info("transaction stored", zap.String("id", string(tx.ID)), zap.String("path", req.StorePath))
		}
	}

	switch {
	case broadcast != "":
		id, err := s.submitter.Submit(ctx, tx, broadcast)
		if err != nil {
			return "", err
		}
		return string(id), nil
	case req.Display:
		payload, err := Canonical(tx)
		if err != nil {
			return "", err
		}
		return string(payload), nil
	default:
		return "", nil
	}
}

func store(tx model.Transaction, path string) error {
	payload, err := Canonical(tx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("store transaction: %w", err)
	}
	return nil
}
