package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/james-ap-sunny/interbank-transfers/internal/api"
	"github.com/james-ap-sunny/interbank-transfers/internal/config"
	"github.com/james-ap-sunny/interbank-transfers/internal/impl/gateway/platform"
	"github.com/james-ap-sunny/interbank-transfers/internal/impl/gateway/postgres"
	impl_accounts "github.com/james-ap-sunny/interbank-transfers/internal/impl/usecase/account"
	impl_transfer "github.com/james-ap-sunny/interbank-transfers/internal/impl/usecase/transfer"
	"github.com/james-ap-sunny/interbank-transfers/internal/logging"
	"github.com/james-ap-sunny/interbank-transfers/internal/metrics"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	source, err := postgres.Open(cfg.SourceDB, "source", logger)
	if err != nil {
		return err
	}
	defer source.Close()

	dest, err := postgres.Open(cfg.DestDB, "dest", logger)
	if err != nil {
		return err
	}
	defer dest.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	stats := metrics.NewTransferMetrics(registry)

	transfers := impl_transfer.NewTransferUsecaseImpl(
		source,
		dest,
		impl_platform.SystemClock{},
		impl_platform.UUIDGenerator{},
		impl_transfer.Config{
			MinTransferAmount:   cfg.Transfer.MinAmount,
			MaxTransferAmount:   cfg.Transfer.MaxAmount,
			SupportedCurrencies: cfg.Transfer.SupportedCurrencies,
			TransactionTimeout:  cfg.Transfer.TransactionTimeout,
		},
		logger,
		stats,
	)
	accounts := impl_accounts.NewAccountReaderImpl(source, dest)

	handler := api.NewRouter(api.RouterParams{
		Transfers: transfers,
		Accounts:  accounts,
		Source:    source,
		Dest:      dest,
		Registry:  registry,
		Log:       logger,
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		errc <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		return err
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info("shutdown complete")
	return nil
}
