package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/app"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	Addr         string        `long:"addr" env:"API_GATEWAY_ADDR" description:"http listen address" default:":8001"`
	WriteTimeout time.Duration `long:"write-timeout" env:"API_GATEWAY_WRITE_TIMEOUT" description:"max duration of a scan or transfer request" default:"10m"`
	CORSOrigins  []string      `long:"cors-origin" env:"API_GATEWAY_CORS_ORIGINS" env-delim:"," description:"allowed CORS origin, repeatable (default: any)"`
	LogJSON      bool          `long:"log-json" env:"API_GATEWAY_LOG_JSON" description:"production json logging"`

	Wallet app.Config `group:"wallet"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		panic("failed to parse flags: " + err.Error())
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	wallet, err := app.New(ctx, cfg.Wallet, logger)
	if err != nil {
		return fmt.Errorf("init wallet: %w", err)
	}
	defer func() {
		if err := wallet.Close(); err != nil {
			logger.Error("failed to close wallet", zap.Error(err))
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/", transport.NewWalletHandler(wallet, logger.Named("http")))
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newCORS(cfg.CORSOrigins).Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", cfg.Addr),
		zap.String("network", string(cfg.Wallet.Network)),
		zap.Bool("record_sink", wallet.Repository() != nil),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newCORS(origins []string) *cors.Cors {
	if len(origins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
}

func newLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
