package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/account"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/app"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/service"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/service/transfer"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	LogJSON bool `long:"log-json" env:"ALEO_WALLET_LOG_JSON" description:"production json logging"`
	Verbose bool `short:"v" long:"verbose" env:"ALEO_WALLET_VERBOSE" description:"log at debug level"`

	MetricsAddr string `long:"metrics-addr" env:"ALEO_WALLET_METRICS_ADDR" description:"serve prometheus metrics on this address while the command runs"`

	Wallet app.Config `group:"wallet"`
}

var (
	cfg     config
	rootCtx context.Context
	stdout  io.Writer = os.Stdout
)

type scanCommand struct {
	SpendKey *string `long:"spend-key" env:"ALEO_WALLET_SPEND_KEY" description:"private key used to drop spent records"`
	ViewKey  string  `long:"view-key" env:"ALEO_WALLET_VIEW_KEY" description:"view key of the scanned account" required:"true"`
	Start    *uint32 `long:"start" description:"first block height"`
	End      *uint32 `long:"end" description:"last block height"`
	Last     *uint32 `long:"last" description:"scan the last N blocks"`
	Endpoint string  `long:"endpoint" env:"ALEO_WALLET_ENDPOINT" description:"node REST endpoint" required:"true"`
}

func (c *scanCommand) Execute([]string) error {
	return withWallet(func(ctx context.Context, w *app.Wallet) error {
		res := w.Scan(ctx, service.ScanRequest{
			SpendKey: c.SpendKey,
			ViewKey:  c.ViewKey,
			Start:    c.Start,
			End:      c.End,
			Last:     c.Last,
			Endpoint: c.Endpoint,
		})
		if res.Message != "" {
			return errors.New(res.Message)
		}
		for _, r := range res.Records {
			_, _ = fmt.Fprintln(stdout, r)
		}
		return nil
	})
}

type transferCommand struct {
	PrivateKey string `long:"private-key" env:"ALEO_WALLET_PRIVATE_KEY" description:"private key owning the input record" required:"true"`
	Record     string `long:"record" description:"plaintext input record" required:"true"`
	Amount     uint64 `long:"amount" description:"microcredits to send" required:"true"`
	Recipient  string `long:"recipient" description:"recipient address" required:"true"`
	Query      string `long:"query" env:"ALEO_WALLET_QUERY" description:"node the prover reads state from" required:"true"`
	Broadcast  string `long:"broadcast" description:"endpoint receiving the transaction"`
	Display    bool   `long:"display" description:"print the transaction when it is not broadcast"`
	Store      string `long:"store" description:"file receiving the transaction"`
}

func (c *transferCommand) Execute([]string) error {
	return withWallet(func(ctx context.Context, w *app.Wallet) error {
		res := w.Transfer(ctx, transfer.Request{
			PrivateKey:        c.PrivateKey,
			Record:            c.Record,
			Amount:            c.Amount,
			Recipient:         c.Recipient,
			QueryEndpoint:     c.Query,
			BroadcastEndpoint: c.Broadcast,
			Display:           c.Display,
			StorePath:         c.Store,
		})
		if strings.HasPrefix(res, service.TransferErrorPrefix) {
			return errors.New(strings.TrimPrefix(res, service.TransferErrorPrefix))
		}
		if res != "" {
			_, _ = fmt.Fprintln(stdout, res)
		}
		return nil
	})
}

type recordsCommand struct {
	ViewKey string `long:"view-key" env:"ALEO_WALLET_VIEW_KEY" description:"view key of the stored account" required:"true"`
}

func (c *recordsCommand) Execute([]string) error {
	return withWallet(func(ctx context.Context, w *app.Wallet) error {
		repo := w.Repository()
		if repo == nil {
			return errors.New("records requires --clickhouse-dsn")
		}
		vk, err := account.ParseViewKey(c.ViewKey)
		if err != nil {
			return err
		}
		records, err := repo.OwnedRecords(ctx, cfg.Wallet.Network, account.Fingerprint(vk))
		if err != nil {
			return err
		}
		for _, r := range records {
			_, _ = fmt.Fprintf(stdout, "%d\t%s\t%s\n", r.BlockHeight, r.Commitment, r.Plaintext)
		}
		return nil
	})
}

func main() {
	var stop context.CancelFunc
	rootCtx, stop = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	parser := newParser()
	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		stop()
		os.Exit(1)
	}
}

func newParser() *flags.Parser {
	parser := flags.NewParser(&cfg, flags.Default)
	_, _ = parser.AddCommand("scan", "Scan blocks for owned records", "Print the plaintext of every unspent record the view key owns in a block range.", &scanCommand{})
	_, _ = parser.AddCommand("transfer", "Build a credits transfer", "Build and prove credits.aleo/transfer, then broadcast, display or store it.", &transferCommand{})
	_, _ = parser.AddCommand("records", "List stored records", "Print the records previous scans wrote to ClickHouse.", &recordsCommand{})
	return parser
}

func withWallet(fn func(ctx context.Context, w *app.Wallet) error) error {
	logger, err := newLogger(cfg.LogJSON, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, cancel := context.WithCancel(rootCtx)
	defer cancel()
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	w, err := app.New(ctx, cfg.Wallet, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Close(); err != nil {
			logger.Error("failed to close wallet", zap.Error(err))
		}
	}()

	return fn(ctx, w)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newLogger(production, verbose bool) (*zap.Logger, error) {
	var zc zap.Config
	if production {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
