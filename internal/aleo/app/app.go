// Package app assembles a Wallet from command line configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/block"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/engine/sidecar"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/model"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/node"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/repository/clickhouse"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/service"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/service/scanner"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/service/transfer"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/metrics"
	"go.uber.org/zap"
)

// Config is shared by every binary driving a wallet.
type Config struct {
	Network          model.Network `long:"network" env:"ALEO_WALLET_NETWORK" description:"network path segment of node endpoints" default:"testnet3"`
	EngineURL        string        `long:"engine-url" env:"ALEO_WALLET_ENGINE_URL" description:"base URL of the cryptographic sidecar" default:"http://127.0.0.1:4040"`
	HTTPTimeout      time.Duration `long:"http-timeout" env:"ALEO_WALLET_HTTP_TIMEOUT" description:"timeout for node requests" default:"30s"`
	NodeRPS          int           `long:"node-rps" env:"ALEO_WALLET_NODE_RPS" description:"max node requests per second, 0 disables the limit" default:"0"`
	PageSize         uint32        `long:"page-size" env:"ALEO_WALLET_PAGE_SIZE" description:"blocks fetched per node request (1-50)" default:"50"`
	DecodeWorkers    int           `long:"decode-workers" env:"ALEO_WALLET_DECODE_WORKERS" description:"blocks of a page decoded concurrently" default:"4"`
	BlockExpression  string        `long:"block-expression" env:"ALEO_WALLET_BLOCK_EXPRESSION" description:"jq expression extracting record outputs from a block"`
	StrictSpentCheck bool          `long:"strict-spent-check" env:"ALEO_WALLET_STRICT_SPENT_CHECK" description:"fail a scan when the spent status of a record cannot be determined"`
	ClickhouseDSN    string        `long:"clickhouse-dsn" env:"ALEO_WALLET_CLICKHOUSE_DSN" description:"ClickHouse DSN, enables the owned record sink"`
}

// Wallet is a wired service.Wallet plus the resources it holds.
type Wallet struct {
	*service.Wallet
	repo   *clickhouse.Repository
	writer scanner.RecordWriter
	logger *zap.Logger
}

// New wires the node client, the sidecar engine, metrics and the optional
// record sink. The sink writer outlives ctx cancellation so that Close can
// still flush buffered records.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Wallet, error) {
	if cfg.PageSize == 0 || cfg.PageSize > 50 {
		return nil, fmt.Errorf("page size %d out of range 1..50", cfg.PageSize)
	}
	engineURL, err := node.ValidateEndpoint(cfg.EngineURL)
	if err != nil {
		return nil, fmt.Errorf("engine url: %w", err)
	}
	decoder, err := block.NewDecoder(cfg.BlockExpression)
	if err != nil {
		return nil, fmt.Errorf("init block decoder: %w", err)
	}

	engine := sidecar.NewClient(engineURL, nil, logger.Named("sidecar"))
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	nodeMetrics := metrics.NewNodeClient(cfg.Network)

	w := &Wallet{logger: logger}
	opts := []scanner.Option{
		scanner.WithPageSize(cfg.PageSize),
		scanner.WithDecodeWorkers(cfg.DecodeWorkers),
	}
	if cfg.StrictSpentCheck {
		opts = append(opts, scanner.WithSpentCheckPolicy(scanner.SpentCheckStrict))
	}
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, fmt.Errorf("init repository: %w", err)
		}
		w.repo = repo
		w.writer = scanner.NewRecordWriter(repo, logger.Named("recordWriter"))
		w.writer.Start(context.WithoutCancel(ctx))
		opts = append(opts, scanner.WithRecordWriter(w.writer))
	}

	scanners := &service.NodeScannerProvider{
		Network:     cfg.Network,
		Doer:        httpClient,
		NodeRPS:     cfg.NodeRPS,
		NodeMetrics: nodeMetrics,
		Decoder:     decoder,
		Cipher:      engine,
		Metrics:     metrics.NewScanner(cfg.Network),
		Options:     opts,
		Logger:      logger,
	}

	broadcaster := node.NewBroadcaster(
		node.WithDoer(httpClient),
		node.WithMetrics(nodeMetrics),
		node.WithLogger(logger.Named("broadcaster")),
	)
	transfers, err := transfer.NewService(engine, broadcaster, metrics.NewTransfer(cfg.Network), logger.Named("transfer"))
	if err != nil {
		_ = w.Close()
		return nil, err
	}

	w.Wallet = service.NewWallet(scanners, transfers, logger.Named("wallet"))
	return w, nil
}

// Repository returns the record sink, or nil when it is disabled.
func (w *Wallet) Repository() *clickhouse.Repository {
	return w.repo
}

// Close flushes buffered records and releases the ClickHouse connection.
func (w *Wallet) Close() error {
	var errs []error
	if w.writer != nil {
		if err := w.writer.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop record writer: %w", err))
		}
	}
	if w.repo != nil {
		if err := w.repo.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close repository: %w", err))
		}
	}
	return errors.Join(errs...)
}
