// Package server boots the admin API: config, storage disks, cache, the
// Mongo log sink, and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/kashvi-admin/config"
	"github.com/shashiranjanraj/kashvi-admin/internal/kernel"
	"github.com/shashiranjanraj/kashvi-admin/pkg/cache"
	"github.com/shashiranjanraj/kashvi-admin/pkg/database"
	"github.com/shashiranjanraj/kashvi-admin/pkg/logger"
	"github.com/shashiranjanraj/kashvi-admin/pkg/storage"
	"github.com/shashiranjanraj/kashvi-admin/pkg/workerpool"
)

const uploadWorkers = 8

// Run boots every subsystem and blocks until SIGINT/SIGTERM.
func Run() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	// Request logs also land in Mongo so the admin UI can surface them.
	if col, err := database.Collection("logs"); err == nil {
		sink := logger.NewMongoHandler(col)
		defer sink.Close()
		logger.SetHandler(logger.NewMultiHandler(logger.L.Handler(), sink))
	}

	// The cache only backs the rate limiter; the limiter degrades to
	// per-instance buckets without it.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, rate limiting is per-instance", "error", err)
	}

	storage.Connect()

	pool := workerpool.New(uploadWorkers)
	defer pool.Shutdown()

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           kernel.Build(pool).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
