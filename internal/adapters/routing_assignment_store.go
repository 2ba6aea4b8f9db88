// Package adapters contains adapters that bridge different bounded contexts.
// These adapters implement interfaces defined by consuming domains while
// wrapping services from providing domains.
package adapters

import (
	"context"

	"maxclaim_backend/internal/partners/repository"
	"maxclaim_backend/internal/routing/ports"
)

// RoutingAssignmentStore adapts the partners repository to satisfy the
// routing domain's AssignmentStore interface, so routing never imports the
// partners package directly.
type RoutingAssignmentStore struct {
	repo *repository.Repository
}

// NewRoutingAssignmentStore creates a new adapter wrapping the partners repository.
func NewRoutingAssignmentStore(repo *repository.Repository) *RoutingAssignmentStore {
	return &RoutingAssignmentStore{repo: repo}
}

// CreateRoutedLead persists the winning assignment.
func (a *RoutingAssignmentStore) CreateRoutedLead(ctx context.Context, lead ports.RoutedLeadRecord) error {
	return a.repo.CreateRoutedLead(ctx, repository.RoutedLead{
		ID:           lead.ID,
		ClaimRef:     lead.ClaimRef,
		PartnerID:    lead.PartnerID,
		MatchScore:   lead.MatchScore,
		MatchReasons: lead.MatchReasons,
		Selection:    lead.Selection,
		CreatedAt:    lead.CreatedAt,
	})
}

// Compile-time check
var _ ports.AssignmentStore = (*RoutingAssignmentStore)(nil)
