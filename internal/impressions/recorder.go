// Package impressions tracks ad impression and routing-win counters in
// Redis. Counters are keyed per partner per day and expire on their own; the
// rotation worker folds them into Postgres before they age out.
package impressions

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// counterTTL keeps two days of counters around so a missed flush never loses
// a full day.
const counterTTL = 48 * time.Hour

// Recorder increments and reads partner counters.
type Recorder struct {
	rdb *redis.Client
}

// New creates a recorder on the provided Redis client.
func New(rdb *redis.Client) *Recorder {
	return &Recorder{rdb: rdb}
}

// NewFromURL creates a recorder by parsing a Redis URL.
func NewFromURL(redisURL string) (*Recorder, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return New(redis.NewClient(opt)), nil
}

// Close releases the underlying client.
func (r *Recorder) Close() error {
	return r.rdb.Close()
}

// Ping verifies connectivity for health checks.
func (r *Recorder) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

// RecordImpression increments today's impression counter for a partner.
func (r *Recorder) RecordImpression(ctx context.Context, partnerID uuid.UUID) error {
	return r.increment(ctx, impressionKey(partnerID, time.Now().UTC()))
}

// RecordWin increments today's routing-win counter for a partner.
func (r *Recorder) RecordWin(ctx context.Context, partnerID uuid.UUID) error {
	return r.increment(ctx, winKey(partnerID, time.Now().UTC()))
}

func (r *Recorder) increment(ctx context.Context, key string) error {
	pipe := r.rdb.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, counterTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// Counts is one partner's counters for one day.
type Counts struct {
	Impressions int64
	Wins        int64
}

// DayCounts reads a partner's counters for the given day. Missing keys read
// as zero.
func (r *Recorder) DayCounts(ctx context.Context, partnerID uuid.UUID, day time.Time) (Counts, error) {
	values, err := r.rdb.MGet(ctx, impressionKey(partnerID, day), winKey(partnerID, day)).Result()
	if err != nil {
		return Counts{}, err
	}

	return Counts{
		Impressions: parseCount(values[0]),
		Wins:        parseCount(values[1]),
	}, nil
}

// ClearDay deletes a partner's counters for a day after they have been
// flushed to Postgres.
func (r *Recorder) ClearDay(ctx context.Context, partnerID uuid.UUID, day time.Time) error {
	return r.rdb.Del(ctx, impressionKey(partnerID, day), winKey(partnerID, day)).Err()
}

func impressionKey(partnerID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("impressions:%s:%s", partnerID, day.Format("2006-01-02"))
}

func winKey(partnerID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("wins:%s:%s", partnerID, day.Format("2006-01-02"))
}

func parseCount(v interface{}) int64 {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	var n int64
	_, _ = fmt.Sscanf(s, "%d", &n)
	return n
}
