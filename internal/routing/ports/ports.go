// Package ports defines the interfaces the routing domain requires from
// external systems. The implementations are provided by the composition
// root, so routing never imports the partners or impressions packages
// directly.
package ports

import (
	"context"
	"time"

	"maxclaim_backend/internal/routing/domain"

	"github.com/google/uuid"
)

// PartnerSource supplies the candidate population a routing pass scores.
type PartnerSource interface {
	ListCandidates(ctx context.Context) ([]domain.Partner, error)
}

// RoutedLeadRecord is the assignment routing asks the store to persist after
// a winner is selected.
type RoutedLeadRecord struct {
	ID           uuid.UUID
	ClaimRef     string
	PartnerID    uuid.UUID
	MatchScore   float64
	MatchReasons []string
	Selection    string
	CreatedAt    time.Time
}

// AssignmentStore persists winning routing outcomes.
type AssignmentStore interface {
	CreateRoutedLead(ctx context.Context, lead RoutedLeadRecord) error
}

// ImpressionSink records that partners appeared in (or won) a routing pass.
// Implementations are expected to be fast; routing treats sink failures as
// non-fatal and logs them.
type ImpressionSink interface {
	RecordImpression(ctx context.Context, partnerID uuid.UUID) error
	RecordWin(ctx context.Context, partnerID uuid.UUID) error
}
