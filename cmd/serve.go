package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"recap/internal/api"
	"recap/internal/api/handler/v1handler"
	"recap/internal/config"
	"recap/internal/tracker"
	"recap/internal/worker"
	"recap/pkg/logger"
	"recap/pkg/metrics"
	"recap/pkg/notifier"
	"recap/pkg/storage/postgres"
	"recap/pkg/toolbar"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	options := api.NewOptions(cfg)
	if strings.TrimSpace(options.SecHandlerOptions.PublicKey) == "" {
		logger.Warn(ctx, "jwt public key is not configured, /v1 routes are unauthenticated")
	}

	server, err := api.NewServer(deps, options)
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", options.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorkers(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL) func(ctx context.Context) {
	n := notifier.NewGated(pgsql, notifier.NewStore(pgsql))

	riverClient, err := worker.Start(ctx, pgsql.Pool, n, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			provider, err := metrics.Setup(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not setup metrics", zap.Error(err))
			}

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			track, err := tracker.New(pgsql, toolbar.NewRegistry(), tracker.Options{
				JobOptions: worker.NewOptions(cfg).JobOptions,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create tracker", zap.Error(err))
			}

			stopWorkers := setupWorkers(ctx, cfg, pgsql)
			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Tracker: track,
					Storage: pgsql,
				},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)

			if err := provider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shutdown meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
