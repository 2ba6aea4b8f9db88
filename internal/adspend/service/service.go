// Package service orchestrates ad spend operations: region cost lookups,
// budget allocation, plan recommendations, and the nightly allocation
// refresh the rotation worker drives.
package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"maxclaim_backend/internal/adspend/costing"
	"maxclaim_backend/internal/adspend/demand"
	"maxclaim_backend/internal/adspend/plan"
	"maxclaim_backend/internal/adspend/ports"
	"maxclaim_backend/internal/adspend/transport"
	"maxclaim_backend/internal/events"
	"maxclaim_backend/internal/geo"
	"maxclaim_backend/internal/routing/scoring"
	"maxclaim_backend/platform/apperr"
	"maxclaim_backend/platform/logger"

	"github.com/google/uuid"
)

const noRegionsMsg = "no demand regions known for state"

// Service provides business logic for ad spend.
type Service struct {
	allocations ports.AllocationStore
	partners    ports.PartnerBudgetSource
	eventBus    events.Bus
	log         *logger.Logger
}

// New creates a new ad spend service.
func New(
	allocations ports.AllocationStore,
	partners ports.PartnerBudgetSource,
	eventBus events.Bus,
	log *logger.Logger,
) *Service {
	return &Service{allocations: allocations, partners: partners, eventBus: eventBus, log: log}
}

// RegionCosts returns the cost breakdown for every known region of a state,
// alphabetical by region name.
func (s *Service) RegionCosts(ctx context.Context, state string, req transport.RegionCostsRequest) (transport.RegionCostsResponse, error) {
	state = strings.ToUpper(strings.TrimSpace(state))
	regions := demand.RegionsForState(state)
	if len(regions) == 0 {
		return transport.RegionCostsResponse{}, apperr.NotFound(noRegionsMsg)
	}
	sort.Strings(regions)

	trade := scoring.NormalizeTrade(req.TradeType)
	if trade == "" {
		trade = scoring.TradeGeneral
	}

	breakdowns := make([]costing.CostBreakdown, 0, len(regions))
	for _, region := range regions {
		breakdowns = append(breakdowns, costing.CalculateRegionCostBreakdown(state, region, req.ZipCode, trade))
	}

	return transport.RegionCostsResponse{State: state, Regions: breakdowns}, nil
}

// Allocate splits a budget across regions. When the request names a partner,
// the computed allocation is persisted for that partner and an event is
// published.
func (s *Service) Allocate(ctx context.Context, req transport.AllocateRequest) (transport.AllocateResponse, error) {
	state := strings.ToUpper(strings.TrimSpace(req.State))
	regions := req.Regions
	if len(regions) == 0 {
		regions = demand.RegionsForState(state)
		sort.Strings(regions)
	}
	if len(regions) == 0 {
		return transport.AllocateResponse{}, apperr.NotFound(noRegionsMsg)
	}

	trade := scoring.NormalizeTrade(req.TradeType)
	if trade == "" {
		trade = scoring.TradeGeneral
	}

	allocations := costing.AllocateBudgetAcrossRegions(regions, state, trade, req.TotalBudget, req.HomeRegion)

	resp := transport.AllocateResponse{
		State:       state,
		TradeType:   trade,
		TotalBudget: req.TotalBudget,
		Allocations: allocations,
	}

	if req.PartnerID == nil {
		return resp, nil
	}

	// Surface not-found before writing rather than as an FK violation.
	if _, err := s.partners.GetByID(ctx, *req.PartnerID); err != nil {
		return transport.AllocateResponse{}, err
	}

	if err := s.persist(ctx, *req.PartnerID, req.TotalBudget, allocations); err != nil {
		return transport.AllocateResponse{}, err
	}
	resp.Persisted = true
	return resp, nil
}

// RecommendPlan builds a plan recommendation for a partner location.
func (s *Service) RecommendPlan(ctx context.Context, req transport.PlanRequest) (transport.PlanResponse, error) {
	tier := plan.PlanTier(req.Tier)
	if tier == "" {
		tier = plan.TierFree
	}

	trade := scoring.NormalizeTrade(req.TradeType)
	rec := plan.Recommend(req.ZipCode, trade, tier)
	return transport.PlanResponse{Plan: rec}, nil
}

// RefreshAllAllocations recomputes and persists allocations for every
// partner carrying an ad budget. The rotation worker calls this on its
// schedule; one partner failing does not stop the rest.
func (s *Service) RefreshAllAllocations(ctx context.Context) (int, error) {
	partners, err := s.partners.ListWithAdBudget(ctx)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, p := range partners {
		state := p.State
		if state == "" {
			state = geo.StateFromZip(p.ZipCode)
		}
		regions := demand.RegionsForState(state)
		if len(regions) == 0 {
			continue
		}
		sort.Strings(regions)

		trade := scoring.NormalizeTrade(p.TradeType)
		if trade == "" {
			trade = scoring.TradeGeneral
		}

		home := homeRegion(state, p.ZipCode, regions)
		allocations := costing.AllocateBudgetAcrossRegions(regions, state, trade, p.MonthlyBudget, home)
		if err := s.persist(ctx, p.ID, p.MonthlyBudget, allocations); err != nil {
			s.log.Error("allocation refresh failed", "partnerId", p.ID, "error", err)
			continue
		}
		refreshed++
	}

	return refreshed, nil
}

func (s *Service) persist(ctx context.Context, partnerID uuid.UUID, totalBudget float64, allocations []costing.Allocation) error {
	now := time.Now().UTC()
	stored := make([]ports.StoredAllocation, 0, len(allocations))
	for _, a := range allocations {
		stored = append(stored, ports.StoredAllocation{
			Region:          a.Region,
			AllocatedBudget: a.AllocatedBudget,
			Percentage:      a.Percentage,
			Priority:        string(a.Priority),
			ComputedAt:      now,
		})
	}

	if err := s.allocations.ReplaceAllocations(ctx, partnerID, stored); err != nil {
		return err
	}

	s.eventBus.Publish(ctx, events.AllocationsRefreshed{
		BaseEvent:   events.NewBaseEvent(),
		PartnerID:   partnerID,
		TotalBudget: totalBudget,
		RegionCount: len(allocations),
	})
	return nil
}

// homeRegion picks the partner's home region. Without a region-level lookup
// for ZIPs, the first region of the partner's own state serves as home;
// partners outside any known state get no home boost.
func homeRegion(state, zip string, regions []string) string {
	if geo.StateFromZip(zip) != state || len(regions) == 0 {
		return ""
	}
	return regions[0]
}
