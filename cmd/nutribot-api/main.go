// Package main provides the nutribot API server entrypoint.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aishuu11/hackathon-2025/internal/bootstrap"
	"github.com/aishuu11/hackathon-2025/internal/cache"
	"github.com/aishuu11/hackathon-2025/internal/config"
	"github.com/aishuu11/hackathon-2025/internal/monitoring"
	"github.com/aishuu11/hackathon-2025/internal/observability"
	"github.com/aishuu11/hackathon-2025/internal/session"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := bootstrap.NewLogger(cfg)

	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("session_driver", cfg.Session.Driver).
		Str("data_dir", cfg.Catalog.DataDir).
		Msg("Starting nutribot API")

	engine, set := bootstrap.NewEngine(cfg, logger)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store, err := session.Open(ctx, cfg.Session)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open session store")
	}
	defer store.Close()

	audit := monitoring.NewAuditLogger(logger, auditPublisher(store), cfg.Observability.AuditEnabled)
	manager := session.NewManager(logger, engine, store, audit)

	if sqlStore, ok := store.(*session.SQLStore); ok && cfg.Session.TTL > 0 {
		go runJanitor(ctx, logger, sqlStore, cfg.Session.TTL)
	}

	router := NewRouter(logger, cfg, &Services{Manager: manager, Catalogs: set})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error().Err(err).Msg("Server error")
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
	}

	logger.Info().Msg("Server stopped")
}

// auditPublisher returns the Redis client behind a Redis-backed store so
// turn events reach subscribers. Other stores only log.
func auditPublisher(store session.Store) monitoring.Publisher {
	cs, ok := store.(*session.CacheStore)
	if !ok {
		return nil
	}
	if rc, ok := cs.Client().(*cache.RedisClient); ok {
		return rc
	}
	return nil
}

// runJanitor removes SQL sessions idle for longer than ttl.
func runJanitor(ctx context.Context, logger *observability.Logger, store *session.SQLStore, ttl time.Duration) {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := store.DeleteIdle(ctx, now.Add(-ttl))
			if err != nil {
				logger.Warn().Err(err).Msg("Idle session cleanup failed")
				continue
			}
			if n > 0 {
				logger.Info().Int64("removed", n).Msg("Removed idle sessions")
			}
		}
	}
}
