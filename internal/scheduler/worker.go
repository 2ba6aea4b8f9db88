package scheduler

import (
	"context"
	"fmt"
	"time"

	adspendservice "maxclaim_backend/internal/adspend/service"
	"maxclaim_backend/internal/impressions"
	"maxclaim_backend/internal/partners/repository"
	"maxclaim_backend/platform/config"
	"maxclaim_backend/platform/logger"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Worker struct {
	server      *asynq.Server
	mux         *asynq.ServeMux
	adspend     *adspendservice.Service
	impressions *impressions.Recorder
	repo        *repository.Repository
	log         *logger.Logger
}

func NewWorker(
	cfg config.SchedulerConfig,
	pool *pgxpool.Pool,
	adspendSvc *adspendservice.Service,
	recorder *impressions.Recorder,
	log *logger.Logger,
) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:      server,
		mux:         mux,
		adspend:     adspendSvc,
		impressions: recorder,
		repo:        repository.New(pool),
		log:         log,
	}

	mux.HandleFunc(TaskAllocationRefresh, w.handleAllocationRefresh)
	mux.HandleFunc(TaskImpressionFlush, w.handleImpressionFlush)

	return w, nil
}

func (w *Worker) handleAllocationRefresh(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseAllocationRefreshPayload(task)
	if err != nil {
		return err
	}

	refreshed, err := w.adspend.RefreshAllAllocations(ctx)
	if err != nil {
		return err
	}

	w.log.Info("allocation refresh complete", "refreshed", refreshed, "requestedBy", payload.RequestedBy)
	return nil
}

// handleImpressionFlush folds one day's Redis counters into the daily stats
// table, then clears them. Partners with no activity that day are skipped.
func (w *Worker) handleImpressionFlush(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseImpressionFlushPayload(task)
	if err != nil {
		return err
	}

	day, err := time.Parse("2006-01-02", payload.Day)
	if err != nil {
		return fmt.Errorf("parse flush day: %w", err)
	}

	partners, err := w.repo.ListCandidates(ctx)
	if err != nil {
		return err
	}

	flushed := 0
	for _, p := range partners {
		counts, err := w.impressions.DayCounts(ctx, p.ID, day)
		if err != nil {
			w.log.Error("read impression counts failed", "partnerId", p.ID, "error", err)
			continue
		}
		if counts.Impressions == 0 && counts.Wins == 0 {
			continue
		}

		if err := w.repo.AddDailyStats(ctx, p.ID, day, counts.Impressions, counts.Wins); err != nil {
			w.log.Error("persist daily stats failed", "partnerId", p.ID, "error", err)
			continue
		}
		if err := w.impressions.ClearDay(ctx, p.ID, day); err != nil {
			w.log.Error("clear impression counters failed", "partnerId", p.ID, "error", err)
		}
		flushed++
	}

	w.log.Info("impression flush complete", "day", payload.Day, "partners", flushed)
	return nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
