// Package ports defines the interfaces the ad spend domain requires from
// external systems. Implementations come from the composition root.
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StoredAllocation is one allocation row the ad spend domain asks the store
// to persist for a partner.
type StoredAllocation struct {
	Region          string
	AllocatedBudget float64
	Percentage      float64
	Priority        string
	ComputedAt      time.Time
}

// AllocationStore persists a partner's computed regional budget allocation.
type AllocationStore interface {
	ReplaceAllocations(ctx context.Context, partnerID uuid.UUID, allocations []StoredAllocation) error
}

// BudgetedPartner is the slice of a partner record the ad spend domain needs
// to recompute allocations.
type BudgetedPartner struct {
	ID            uuid.UUID
	ZipCode       string
	State         string
	TradeType     string
	MonthlyBudget float64
}

// PartnerBudgetSource supplies the partners whose allocations the ad spend
// domain computes and persists.
type PartnerBudgetSource interface {
	ListWithAdBudget(ctx context.Context) ([]BudgetedPartner, error)
	GetByID(ctx context.Context, id uuid.UUID) (BudgetedPartner, error)
}
