package adapters

import (
	"context"

	"maxclaim_backend/internal/routing/ports"

	"github.com/google/uuid"
)

// NoopImpressionSink satisfies the routing domain's ImpressionSink when no
// Redis is configured. Counters are simply dropped.
type NoopImpressionSink struct{}

func (NoopImpressionSink) RecordImpression(ctx context.Context, partnerID uuid.UUID) error {
	return nil
}

func (NoopImpressionSink) RecordWin(ctx context.Context, partnerID uuid.UUID) error {
	return nil
}

// Compile-time check
var _ ports.ImpressionSink = NoopImpressionSink{}
