// Package engine filters, scores, and ranks partner populations for a claim,
// and selects a winner from the ranked set.
package engine

import (
	"sort"

	"maxclaim_backend/internal/routing/domain"
	"maxclaim_backend/internal/routing/scoring"
)

// DefaultLimit caps how many eligible partners a routing pass returns when
// the caller does not specify one.
const DefaultLimit = 5

// Disqualification reasons reported back to the caller as tallies. A partner
// is counted under the first check it fails, never more than once.
const (
	ReasonNotApproved = "Not approved"
	ReasonNoTrade     = "No trade match"
	ReasonNoLocation  = "No location coverage"
)

// RouteClaim filters a partner population by eligibility, scores survivors,
// and returns them ranked score-descending, truncated to limit.
//
// Checks run in order per partner: approval, trade, location. Location
// filtering only applies when the criteria specify a ZIP or state. "No
// eligible partner" is an expected outcome reported as data, not an error.
func RouteClaim(partners []domain.Partner, criteria domain.RoutingCriteria, limit int) domain.RoutingAnalysis {
	if limit <= 0 {
		limit = DefaultLimit
	}

	analysis := domain.RoutingAnalysis{
		TotalCandidates:     len(partners),
		DisqualifiedReasons: make(map[string]int),
	}

	var results []domain.RoutingResult
	for _, partner := range partners {
		if partner.Status != domain.StatusApproved {
			analysis.DisqualifiedReasons[ReasonNotApproved]++
			continue
		}

		if !tradeEligible(partner, criteria) {
			analysis.DisqualifiedReasons[ReasonNoTrade]++
			continue
		}

		if criteria.HasLocation() && !scoring.MatchesLocation(partner, criteria).Matches {
			analysis.DisqualifiedReasons[ReasonNoLocation]++
			continue
		}

		match := scoring.CalculateMatchScore(partner, criteria)
		results = append(results, domain.RoutingResult{
			PartnerID:    partner.ID,
			CompanyName:  partner.CompanyName,
			MatchScore:   match.Score,
			MatchReasons: match.Reasons,
			Tier:         partner.Tier,
		})
	}

	// Tie order is not guaranteed; callers must not rely on it.
	sort.Slice(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if len(results) > limit {
		results = results[:limit]
	}
	analysis.EligiblePartners = results

	return analysis
}

func tradeEligible(partner domain.Partner, criteria domain.RoutingCriteria) bool {
	if len(criteria.Trades) == 0 {
		return true
	}
	if scoring.MatchesTrade(partner.Specialty(), criteria.Trades) {
		return true
	}
	return partner.Specialty() == scoring.TradeGeneral
}
