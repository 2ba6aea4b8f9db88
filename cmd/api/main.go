package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maxclaim_backend/internal/adapters"
	"maxclaim_backend/internal/adspend"
	"maxclaim_backend/internal/events"
	apphttp "maxclaim_backend/internal/http"
	"maxclaim_backend/internal/http/router"
	"maxclaim_backend/internal/impressions"
	"maxclaim_backend/internal/partners"
	"maxclaim_backend/internal/routing"
	routingports "maxclaim_backend/internal/routing/ports"
	"maxclaim_backend/platform/config"
	"maxclaim_backend/platform/db"
	"maxclaim_backend/platform/logger"
	"maxclaim_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// Redis-backed impression counters. Routing degrades to a no-op sink
	// when Redis is not configured.
	recorder, closeRecorder := initImpressionRecorder(ctx, cfg, log)
	if closeRecorder != nil {
		defer closeRecorder()
	}

	// ========================================================================
	// Domain Modules
	// ========================================================================

	partnersModule := partners.NewModule(pool, val)
	repo := partnersModule.Repository()

	var sink routingports.ImpressionSink = adapters.NoopImpressionSink{}
	if recorder != nil {
		sink = recorder
	}

	routingModule := routing.NewModule(
		repo,
		adapters.NewRoutingAssignmentStore(repo),
		sink,
		eventBus,
		log,
		val,
	)

	adspendStore := adapters.NewAdspendPartnerStore(repo)
	adspendModule := adspend.NewModule(adspendStore, adspendStore, eventBus, log, val)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			partnersModule,
			routingModule,
			adspendModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initImpressionRecorder(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*impressions.Recorder, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; impression counters disabled")
		return nil, nil
	}

	recorder, err := impressions.NewFromURL(cfg.GetRedisURL())
	if err != nil {
		log.Error("failed to initialize impression recorder", "error", err)
		return nil, nil
	}
	if err := recorder.Ping(ctx); err != nil {
		log.Warn("impression recorder redis unreachable", "error", err)
	}

	return recorder, func() {
		_ = recorder.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
