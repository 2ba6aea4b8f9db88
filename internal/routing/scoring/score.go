package scoring

import (
	"fmt"

	"maxclaim_backend/internal/routing/domain"
)

const (
	// Maximum contribution of each additive component before tier weighting.
	tradeMatchPoints     = 40.0
	tradeWildcardPoints  = 20.0 // half credit: partner accepts all trades
	locationMatchPoints  = 30.0
	billingActivePoints  = 15.0
	budgetBonusCapPoints = 15.0

	// Every $1,000 of monthly budget buys one bonus point.
	budgetDollarsPerPoint = 1000.0

	maxScore = 100.0
)

// MatchScore is the combined 0-100 partner score with the human-readable
// factors that produced it. Reasons are surfaced to end users, so ordering
// follows the component order: trade, location, billing, budget.
type MatchScore struct {
	Score   float64
	Reasons []string
}

// CalculateMatchScore combines trade, location, billing-status, and budget
// signals into a single score weighted by partner tier. The additive terms
// can exceed 100 for a top-tier partner with full credit everywhere, so the
// result is clamped to [0, 100].
func CalculateMatchScore(partner domain.Partner, criteria domain.RoutingCriteria) MatchScore {
	tierWeight := partner.Tier.Weight()

	var score float64
	var reasons []string

	specialty := partner.Specialty()
	switch {
	case MatchesTrade(specialty, criteria.Trades) && specialty != "" && NormalizeTrade(specialty) != TradeGeneral:
		score += tradeMatchPoints * tierWeight
		reasons = append(reasons, fmt.Sprintf("Trade match: %s", NormalizeTrade(specialty)))
	case specialty == "" || NormalizeTrade(specialty) == TradeGeneral:
		score += tradeWildcardPoints * tierWeight
		reasons = append(reasons, "Accepts all trades")
	}

	if loc := MatchesLocation(partner, criteria); loc.Matches {
		score += locationMatchPoints * loc.Score * tierWeight
		reasons = append(reasons, loc.Reason)
	}

	if partner.BillingStatus == domain.BillingActive {
		score += billingActivePoints
		reasons = append(reasons, "Active billing")
	}

	if bonus := budgetBonus(partner.AdConfig.MonthlyBudget); bonus > 0 {
		score += bonus
		reasons = append(reasons, fmt.Sprintf("Ad budget $%.0f/mo", partner.AdConfig.MonthlyBudget))
	}

	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}

	return MatchScore{Score: score, Reasons: reasons}
}

func budgetBonus(monthlyBudget float64) float64 {
	bonus := monthlyBudget / budgetDollarsPerPoint
	if bonus > budgetBonusCapPoints {
		return budgetBonusCapPoints
	}
	if bonus < 0 {
		return 0
	}
	return bonus
}
