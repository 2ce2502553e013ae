package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/hongminglow/accounts-be/internal/accounts"
	"github.com/hongminglow/accounts-be/internal/auth"
	"github.com/hongminglow/accounts-be/internal/config"
	"github.com/hongminglow/accounts-be/internal/logging"
	"github.com/hongminglow/accounts-be/internal/server"
	"github.com/hongminglow/accounts-be/internal/storage/postgres"
)

const shutdownTimeout = 15 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API. Pending migrations are applied before the
listener opens. SIGINT or SIGTERM triggers a graceful shutdown.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	loadLocalEnv()

	cfg, err := config.Load(configPath())
	if err != nil {
		return oops.Wrapf(err, "load config")
	}

	logger := logging.New(cfg.LogFormat, cfg.SlogLevel(), os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return oops.Wrapf(err, "init database")
	}
	defer store.Close()

	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		return oops.Wrapf(err, "init password hasher")
	}
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		return oops.Wrapf(err, "init token manager")
	}
	svc := accounts.NewService(store, store, hasher, tokens, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	srv := server.New(cfg, svc, reg, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("accounts backend listening", "addr", srv.Addr())
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return oops.Wrapf(err, "http server")
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown error", "error", err)
	}
	return nil
}
