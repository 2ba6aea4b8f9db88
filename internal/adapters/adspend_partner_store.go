package adapters

import (
	"context"

	adspendports "maxclaim_backend/internal/adspend/ports"
	"maxclaim_backend/internal/partners/repository"

	"github.com/google/uuid"
)

// AdspendPartnerStore adapts the partners repository to the ad spend
// domain's AllocationStore and PartnerBudgetSource interfaces.
type AdspendPartnerStore struct {
	repo *repository.Repository
}

// NewAdspendPartnerStore creates a new adapter wrapping the partners repository.
func NewAdspendPartnerStore(repo *repository.Repository) *AdspendPartnerStore {
	return &AdspendPartnerStore{repo: repo}
}

// ReplaceAllocations persists a partner's computed allocation set.
func (a *AdspendPartnerStore) ReplaceAllocations(ctx context.Context, partnerID uuid.UUID, allocations []adspendports.StoredAllocation) error {
	rows := make([]repository.RegionAllocation, 0, len(allocations))
	for _, alloc := range allocations {
		rows = append(rows, repository.RegionAllocation{
			PartnerID:       partnerID,
			Region:          alloc.Region,
			AllocatedBudget: alloc.AllocatedBudget,
			Percentage:      alloc.Percentage,
			Priority:        alloc.Priority,
			ComputedAt:      alloc.ComputedAt,
		})
	}
	return a.repo.ReplaceAllocations(ctx, partnerID, rows)
}

// ListWithAdBudget returns the partners the rotation worker refreshes,
// reduced to the fields the ad spend domain needs.
func (a *AdspendPartnerStore) ListWithAdBudget(ctx context.Context) ([]adspendports.BudgetedPartner, error) {
	partners, err := a.repo.ListWithAdBudget(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]adspendports.BudgetedPartner, 0, len(partners))
	for _, p := range partners {
		out = append(out, adspendports.BudgetedPartner{
			ID:            p.ID,
			ZipCode:       p.ZipCode,
			State:         p.State,
			TradeType:     p.Specialty(),
			MonthlyBudget: p.AdConfig.MonthlyBudget,
		})
	}
	return out, nil
}

// GetByID fetches a single partner in the ad spend domain's shape.
func (a *AdspendPartnerStore) GetByID(ctx context.Context, id uuid.UUID) (adspendports.BudgetedPartner, error) {
	p, err := a.repo.GetByID(ctx, id)
	if err != nil {
		return adspendports.BudgetedPartner{}, err
	}
	return adspendports.BudgetedPartner{
		ID:            p.ID,
		ZipCode:       p.ZipCode,
		State:         p.State,
		TradeType:     p.Specialty(),
		MonthlyBudget: p.AdConfig.MonthlyBudget,
	}, nil
}

// Compile-time checks
var (
	_ adspendports.AllocationStore     = (*AdspendPartnerStore)(nil)
	_ adspendports.PartnerBudgetSource = (*AdspendPartnerStore)(nil)
)
