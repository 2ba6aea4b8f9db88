// Command rotation runs the asynq worker that refreshes regional budget
// allocations and flushes impression counters, plus the ticker that enqueues
// that work on schedule.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maxclaim_backend/internal/adapters"
	adspendservice "maxclaim_backend/internal/adspend/service"
	"maxclaim_backend/internal/events"
	"maxclaim_backend/internal/impressions"
	partnersrepo "maxclaim_backend/internal/partners/repository"
	"maxclaim_backend/internal/scheduler"
	"maxclaim_backend/platform/config"
	"maxclaim_backend/platform/db"
	"maxclaim_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting rotation worker", "env", cfg.Env, "interval", cfg.RotationInterval.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	recorder, err := impressions.NewFromURL(cfg.RedisURL)
	if err != nil {
		log.Error("failed to initialize impression recorder", "error", err)
		panic("failed to initialize impression recorder: " + err.Error())
	}
	defer recorder.Close()

	eventBus := events.NewInMemoryBus(log)

	repo := partnersrepo.New(pool)
	store := adapters.NewAdspendPartnerStore(repo)
	adspendSvc := adspendservice.New(store, store, eventBus, log)

	worker, err := scheduler.NewWorker(cfg, pool, adspendSvc, recorder, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize scheduler client", "error", err)
		panic("failed to initialize scheduler client: " + err.Error())
	}
	defer client.Close()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		worker.Run(gctx)
		return nil
	})

	g.Go(func() error {
		return enqueueLoop(gctx, client, cfg.RotationInterval, log)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Error("rotation worker exited", "error", err)
		panic("rotation worker exited: " + err.Error())
	}
	log.Info("rotation worker stopped")
}

// enqueueLoop schedules an allocation refresh every interval and a flush of
// the previous day's impression counters alongside it.
func enqueueLoop(ctx context.Context, client *scheduler.Client, interval time.Duration, log *logger.Logger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			now := time.Now().UTC()

			if err := client.ScheduleAllocationRefresh(ctx, scheduler.AllocationRefreshPayload{RequestedBy: "rotation"}, now); err != nil {
				log.Error("enqueue allocation refresh failed", "error", err)
			}

			yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
			if err := client.ScheduleImpressionFlush(ctx, scheduler.ImpressionFlushPayload{Day: yesterday}, now); err != nil {
				log.Error("enqueue impression flush failed", "error", err)
			}
		}
	}
}
