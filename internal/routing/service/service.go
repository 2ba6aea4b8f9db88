// Package service orchestrates routing passes: candidate loading, trade
// detection, scoring, winner selection, and the bookkeeping around them.
package service

import (
	"context"
	"time"

	"maxclaim_backend/internal/events"
	"maxclaim_backend/internal/routing/domain"
	"maxclaim_backend/internal/routing/engine"
	"maxclaim_backend/internal/routing/ports"
	"maxclaim_backend/internal/routing/transport"
	"maxclaim_backend/internal/tradedetect"
	"maxclaim_backend/platform/logger"

	"github.com/google/uuid"
)

// Service provides business logic for claim routing.
type Service struct {
	partners    ports.PartnerSource
	assignments ports.AssignmentStore
	impressions ports.ImpressionSink
	selector    *engine.Selector
	eventBus    events.Bus
	log         *logger.Logger
}

// New creates a new routing service.
func New(
	partners ports.PartnerSource,
	assignments ports.AssignmentStore,
	impressions ports.ImpressionSink,
	selector *engine.Selector,
	eventBus events.Bus,
	log *logger.Logger,
) *Service {
	return &Service{
		partners:    partners,
		assignments: assignments,
		impressions: impressions,
		selector:    selector,
		eventBus:    eventBus,
		log:         log,
	}
}

// RouteClaim scores the partner population against the claim's criteria and
// returns the eligible set, best first.
func (s *Service) RouteClaim(ctx context.Context, req transport.RouteClaimRequest) (transport.RouteClaimResponse, error) {
	candidates, err := s.partners.ListCandidates(ctx)
	if err != nil {
		return transport.RouteClaimResponse{}, err
	}

	criteria, trades := buildCriteria(req)
	analysis := engine.RouteClaim(candidates, criteria, req.Limit)

	s.recordImpressions(ctx, analysis.EligiblePartners)
	s.log.RoutingOutcome(analysis.TotalCandidates, len(analysis.EligiblePartners), "")

	s.eventBus.Publish(ctx, events.LeadRouted{
		BaseEvent:           events.NewBaseEvent(),
		ClaimRef:            req.ClaimRef,
		TotalCandidates:     analysis.TotalCandidates,
		EligibleCount:       len(analysis.EligiblePartners),
		DisqualifiedReasons: analysis.DisqualifiedReasons,
	})

	return transport.RouteClaimResponse{
		ClaimRef:            req.ClaimRef,
		DetectedTrades:      trades,
		EligiblePartners:    transport.ToResultResponses(analysis.EligiblePartners),
		TotalCandidates:     analysis.TotalCandidates,
		DisqualifiedReasons: analysis.DisqualifiedReasons,
	}, nil
}

// SelectWinner routes the claim, picks a winner with the requested selection
// mode, then persists the assignment and records the win. Returns a nil
// winner when nobody qualified.
func (s *Service) SelectWinner(ctx context.Context, req transport.SelectWinnerRequest) (transport.SelectWinnerResponse, error) {
	candidates, err := s.partners.ListCandidates(ctx)
	if err != nil {
		return transport.SelectWinnerResponse{}, err
	}

	criteria, trades := buildCriteria(req.RouteClaimRequest)
	analysis := engine.RouteClaim(candidates, criteria, req.Limit)
	s.recordImpressions(ctx, analysis.EligiblePartners)

	mode := engine.SelectionMode(req.Selection)
	if mode == "" {
		mode = engine.ModeHighestScore
	}
	winner := s.selector.SelectWinner(analysis.EligiblePartners, mode)

	resp := transport.SelectWinnerResponse{
		RouteClaimResponse: transport.RouteClaimResponse{
			ClaimRef:            req.ClaimRef,
			DetectedTrades:      trades,
			EligiblePartners:    transport.ToResultResponses(analysis.EligiblePartners),
			TotalCandidates:     analysis.TotalCandidates,
			DisqualifiedReasons: analysis.DisqualifiedReasons,
		},
		Selection: string(mode),
	}

	if winner == nil {
		s.log.RoutingOutcome(analysis.TotalCandidates, len(analysis.EligiblePartners), "")
		return resp, nil
	}

	if err := s.impressions.RecordWin(ctx, winner.PartnerID); err != nil {
		s.log.Warn("record win failed", "partnerId", winner.PartnerID, "error", err)
	}

	record := ports.RoutedLeadRecord{
		ID:           uuid.New(),
		ClaimRef:     req.ClaimRef,
		PartnerID:    winner.PartnerID,
		MatchScore:   winner.MatchScore,
		MatchReasons: winner.MatchReasons,
		Selection:    string(mode),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.assignments.CreateRoutedLead(ctx, record); err != nil {
		return transport.SelectWinnerResponse{}, err
	}

	s.log.RoutingOutcome(analysis.TotalCandidates, len(analysis.EligiblePartners), winner.PartnerID.String())

	s.eventBus.Publish(ctx, events.WinnerSelected{
		BaseEvent:   events.NewBaseEvent(),
		ClaimRef:    req.ClaimRef,
		PartnerID:   winner.PartnerID,
		CompanyName: winner.CompanyName,
		MatchScore:  winner.MatchScore,
		Selection:   string(mode),
	})

	w := transport.ToResultResponse(*winner)
	resp.Winner = &w
	return resp, nil
}

// buildCriteria turns a request into routing criteria, detecting trades from
// line items when none were given explicitly.
func buildCriteria(req transport.RouteClaimRequest) (domain.RoutingCriteria, []string) {
	trades := req.Trades
	if len(trades) == 0 && len(req.LineItems) > 0 {
		items := make([]tradedetect.LineItem, 0, len(req.LineItems))
		for _, li := range req.LineItems {
			items = append(items, tradedetect.LineItem{Name: li.Name, Category: li.Category})
		}
		trades = tradedetect.DetectTrades(items)
	}
	if trades == nil {
		trades = []string{}
	}

	return domain.RoutingCriteria{
		Trades:     trades,
		ZipCode:    req.ZipCode,
		State:      req.State,
		ClaimValue: req.ClaimValue,
	}, trades
}

// recordImpressions notes each eligible partner's appearance. Failures are
// logged and otherwise ignored; impression counters never block routing.
func (s *Service) recordImpressions(ctx context.Context, eligible []domain.RoutingResult) {
	for _, r := range eligible {
		if err := s.impressions.RecordImpression(ctx, r.PartnerID); err != nil {
			s.log.Warn("record impression failed", "partnerId", r.PartnerID, "error", err)
		}
	}
}
