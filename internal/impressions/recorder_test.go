package impressions

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestRecorder(t *testing.T) (*Recorder, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return New(rdb), mr
}

func TestRecordImpression_CountsAccumulate(t *testing.T) {
	rec, _ := newTestRecorder(t)
	ctx := context.Background()
	partnerID := uuid.New()

	for i := 0; i < 3; i++ {
		if err := rec.RecordImpression(ctx, partnerID); err != nil {
			t.Fatalf("record impression: %v", err)
		}
	}
	if err := rec.RecordWin(ctx, partnerID); err != nil {
		t.Fatalf("record win: %v", err)
	}

	counts, err := rec.DayCounts(ctx, partnerID, time.Now().UTC())
	if err != nil {
		t.Fatalf("day counts: %v", err)
	}
	if counts.Impressions != 3 {
		t.Fatalf("expected 3 impressions, got %d", counts.Impressions)
	}
	if counts.Wins != 1 {
		t.Fatalf("expected 1 win, got %d", counts.Wins)
	}
}

func TestDayCounts_MissingKeysReadZero(t *testing.T) {
	rec, _ := newTestRecorder(t)

	counts, err := rec.DayCounts(context.Background(), uuid.New(), time.Now().UTC())
	if err != nil {
		t.Fatalf("day counts: %v", err)
	}
	if counts.Impressions != 0 || counts.Wins != 0 {
		t.Fatalf("expected zero counts, got %+v", counts)
	}
}

func TestCountersExpire(t *testing.T) {
	rec, mr := newTestRecorder(t)
	ctx := context.Background()
	partnerID := uuid.New()

	if err := rec.RecordImpression(ctx, partnerID); err != nil {
		t.Fatalf("record impression: %v", err)
	}

	mr.FastForward(counterTTL + time.Minute)

	counts, err := rec.DayCounts(ctx, partnerID, time.Now().UTC())
	if err != nil {
		t.Fatalf("day counts: %v", err)
	}
	if counts.Impressions != 0 {
		t.Fatalf("expected expired counter to read zero, got %d", counts.Impressions)
	}
}

func TestClearDay_RemovesCounters(t *testing.T) {
	rec, _ := newTestRecorder(t)
	ctx := context.Background()
	partnerID := uuid.New()
	day := time.Now().UTC()

	if err := rec.RecordImpression(ctx, partnerID); err != nil {
		t.Fatalf("record impression: %v", err)
	}
	if err := rec.ClearDay(ctx, partnerID, day); err != nil {
		t.Fatalf("clear day: %v", err)
	}

	counts, err := rec.DayCounts(ctx, partnerID, day)
	if err != nil {
		t.Fatalf("day counts: %v", err)
	}
	if counts.Impressions != 0 {
		t.Fatalf("expected cleared counter, got %d", counts.Impressions)
	}
}
