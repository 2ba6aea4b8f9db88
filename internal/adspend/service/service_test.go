package service

import (
	"context"
	"math"
	"testing"

	"maxclaim_backend/internal/adspend/ports"
	"maxclaim_backend/internal/adspend/transport"
	"maxclaim_backend/platform/apperr"
	"maxclaim_backend/platform/events"
	"maxclaim_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeStore struct {
	replaced map[uuid.UUID][]ports.StoredAllocation
	partners []ports.BudgetedPartner
}

func newFakeStore() *fakeStore {
	return &fakeStore{replaced: make(map[uuid.UUID][]ports.StoredAllocation)}
}

func (f *fakeStore) ReplaceAllocations(ctx context.Context, partnerID uuid.UUID, allocations []ports.StoredAllocation) error {
	f.replaced[partnerID] = allocations
	return nil
}

func (f *fakeStore) ListWithAdBudget(ctx context.Context) ([]ports.BudgetedPartner, error) {
	return f.partners, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id uuid.UUID) (ports.BudgetedPartner, error) {
	for _, p := range f.partners {
		if p.ID == id {
			return p, nil
		}
	}
	return ports.BudgetedPartner{}, apperr.NotFound("partner not found")
}

type capturingBus struct {
	published []events.Event
}

func (b *capturingBus) Publish(ctx context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *capturingBus) PublishSync(ctx context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *capturingBus) Subscribe(eventName string, handler events.Handler) {}

func newTestService(store *fakeStore) (*Service, *capturingBus) {
	bus := &capturingBus{}
	return New(store, store, bus, logger.New("test")), bus
}

func TestRegionCostsListsEveryKnownRegion(t *testing.T) {
	svc, _ := newTestService(newFakeStore())

	resp, err := svc.RegionCosts(context.Background(), "tx", transport.RegionCostsRequest{TradeType: "roofing"})
	if err != nil {
		t.Fatalf("RegionCosts: %v", err)
	}

	if resp.State != "TX" {
		t.Errorf("state = %q, want TX (normalized)", resp.State)
	}
	if len(resp.Regions) == 0 {
		t.Fatal("no regions returned for TX")
	}
	for i := 1; i < len(resp.Regions); i++ {
		if resp.Regions[i-1].Region > resp.Regions[i].Region {
			t.Fatalf("regions not sorted: %q before %q", resp.Regions[i-1].Region, resp.Regions[i].Region)
		}
	}
	for _, r := range resp.Regions {
		if r.TradeType != "roofing" {
			t.Errorf("region %s trade = %q, want roofing", r.Region, r.TradeType)
		}
		if r.AdjustedCPC <= 0 {
			t.Errorf("region %s cpc = %v, want > 0", r.Region, r.AdjustedCPC)
		}
	}
}

func TestRegionCostsUnknownState(t *testing.T) {
	svc, _ := newTestService(newFakeStore())

	if _, err := svc.RegionCosts(context.Background(), "WY", transport.RegionCostsRequest{}); err == nil {
		t.Fatal("expected error for state with no demand regions")
	}
}

func TestAllocateComputesWithoutPersisting(t *testing.T) {
	store := newFakeStore()
	svc, bus := newTestService(store)

	resp, err := svc.Allocate(context.Background(), transport.AllocateRequest{
		State:       "GA",
		TradeType:   "roofing",
		TotalBudget: 3000,
		HomeRegion:  "Atlanta",
	})
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	if resp.Persisted {
		t.Error("persisted = true without partnerId")
	}
	if len(store.replaced) != 0 {
		t.Errorf("store written to: %v", store.replaced)
	}
	if len(bus.published) != 0 {
		t.Errorf("events published = %d, want 0", len(bus.published))
	}

	var total float64
	for _, a := range resp.Allocations {
		total += a.AllocatedBudget
	}
	if math.Abs(total-3000) > 0.01 {
		t.Errorf("allocations sum = %v, want 3000", total)
	}
}

func TestAllocatePersistsForPartner(t *testing.T) {
	store := newFakeStore()
	partnerID := uuid.New()
	store.partners = []ports.BudgetedPartner{
		{ID: partnerID, ZipCode: "30301", State: "GA", TradeType: "roofing", MonthlyBudget: 3000},
	}
	svc, bus := newTestService(store)

	resp, err := svc.Allocate(context.Background(), transport.AllocateRequest{
		PartnerID:   &partnerID,
		State:       "GA",
		TradeType:   "roofing",
		TotalBudget: 3000,
		HomeRegion:  "Atlanta",
	})
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	if !resp.Persisted {
		t.Error("persisted = false, want true")
	}
	stored, ok := store.replaced[partnerID]
	if !ok {
		t.Fatal("nothing stored for partner")
	}
	if len(stored) != len(resp.Allocations) {
		t.Errorf("stored %d rows, response has %d", len(stored), len(resp.Allocations))
	}
	if len(bus.published) != 1 || bus.published[0].EventName() != "adspend.allocations.refreshed" {
		t.Errorf("expected one adspend.allocations.refreshed event, got %v", bus.published)
	}
}

func TestAllocateUnknownPartner(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)
	partnerID := uuid.New()

	_, err := svc.Allocate(context.Background(), transport.AllocateRequest{
		PartnerID:   &partnerID,
		State:       "GA",
		TotalBudget: 3000,
	})
	if err == nil {
		t.Fatal("expected not-found error for unknown partner")
	}
	if len(store.replaced) != 0 {
		t.Error("store written to despite unknown partner")
	}
}

func TestRecommendPlanDefaultsToFreeTier(t *testing.T) {
	svc, _ := newTestService(newFakeStore())

	resp, err := svc.RecommendPlan(context.Background(), transport.PlanRequest{
		ZipCode:   "77002",
		TradeType: "roofing",
	})
	if err != nil {
		t.Fatalf("RecommendPlan: %v", err)
	}

	if resp.Plan.Tier != "free" {
		t.Errorf("tier = %q, want free", resp.Plan.Tier)
	}
	if resp.Plan.State != "TX" {
		t.Errorf("state = %q, want TX from ZIP prefix", resp.Plan.State)
	}
}

func TestRefreshAllAllocations(t *testing.T) {
	store := newFakeStore()
	inTX := ports.BudgetedPartner{
		ID: uuid.New(), ZipCode: "77002", State: "TX", TradeType: "roofing", MonthlyBudget: 5000,
	}
	noRegions := ports.BudgetedPartner{
		ID: uuid.New(), ZipCode: "99999", State: "WY", TradeType: "roofing", MonthlyBudget: 1000,
	}
	store.partners = []ports.BudgetedPartner{inTX, noRegions}
	svc, bus := newTestService(store)

	refreshed, err := svc.RefreshAllAllocations(context.Background())
	if err != nil {
		t.Fatalf("RefreshAllAllocations: %v", err)
	}

	if refreshed != 1 {
		t.Fatalf("refreshed = %d, want 1 (no demand regions for WY)", refreshed)
	}
	if _, ok := store.replaced[inTX.ID]; !ok {
		t.Error("TX partner allocations not stored")
	}
	if _, ok := store.replaced[noRegions.ID]; ok {
		t.Error("WY partner should be skipped")
	}

	var total float64
	for _, a := range store.replaced[inTX.ID] {
		total += a.AllocatedBudget
	}
	if math.Abs(total-5000) > 0.01 {
		t.Errorf("stored allocations sum = %v, want 5000", total)
	}
	if len(bus.published) != 1 {
		t.Errorf("events published = %d, want 1", len(bus.published))
	}
}
