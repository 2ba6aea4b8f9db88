// Package costing derives per-region advertising costs and distributes
// partner budgets across regions from the static demand model. Every
// function is a pure computation over its arguments plus the demand tables.
package costing

import (
	"fmt"
	"math"
	"strings"

	"maxclaim_backend/internal/adspend/demand"
)

// Competitiveness buckets a region's contractor saturation.
type Competitiveness string

const (
	CompetitivenessLow      Competitiveness = "low"
	CompetitivenessMedium   Competitiveness = "medium"
	CompetitivenessHigh     Competitiveness = "high"
	CompetitivenessVeryHigh Competitiveness = "very_high"
)

// BudgetTiers is the three-step budget recommendation for one region.
type BudgetTiers struct {
	Minimum     float64 `json:"minimum"`
	Recommended float64 `json:"recommended"`
	Competitive float64 `json:"competitive"`
}

// CostBreakdown is the derived cost picture for one region and trade.
type CostBreakdown struct {
	State                    string          `json:"state"`
	Region                   string          `json:"region"`
	TradeType                string          `json:"tradeType"`
	AdjustedCPC              float64         `json:"adjustedCpc"`
	RecommendedMonthlyBudget BudgetTiers     `json:"recommendedMonthlyBudget"`
	Competitiveness          Competitiveness `json:"competitiveness"`
	DemandIndex              int             `json:"demandIndex"`
	Explanation              string          `json:"explanation"`
}

const (
	minCompetitivenessFactor = 0.6
	maxCompetitivenessFactor = 1.5

	minimumBudgetRatio     = 0.3
	competitiveBudgetRatio = 1.8
)

// CalculateRegionCostBreakdown derives the cost-per-click and budget
// recommendation for one region. Unknown state/region pairs use the default
// demand factor rather than failing.
func CalculateRegionCostBreakdown(state, region, zip, tradeType string) CostBreakdown {
	factor := demand.RegionDemandOrDefault(state, region)

	baseCPC := demand.BaseCPCForTrade(tradeType)
	adjustedCPC := roundCents(baseCPC * factor.BaseMultiplier)

	// More competitors push the factor down, meaning more budget is needed
	// to stay visible. The factor multiplies avgContractorBudget, so the
	// encoding is inverse.
	compFactor := clamp(2.0-float64(factor.CompetitorCount)/40.0, minCompetitivenessFactor, maxCompetitivenessFactor)

	tiers := BudgetTiers{
		Minimum:     math.Round(factor.AvgContractorBudget * minimumBudgetRatio * compFactor),
		Recommended: math.Round(factor.AvgContractorBudget * compFactor),
		Competitive: math.Round(factor.AvgContractorBudget * competitiveBudgetRatio * compFactor),
	}

	return CostBreakdown{
		State:                    strings.ToUpper(strings.TrimSpace(state)),
		Region:                   region,
		TradeType:                tradeType,
		AdjustedCPC:              adjustedCPC,
		RecommendedMonthlyBudget: tiers,
		Competitiveness:          bucketCompetitiveness(factor.CompetitorCount),
		DemandIndex:              factor.DemandIndex,
		Explanation:              explain(region, tradeType, factor),
	}
}

func bucketCompetitiveness(competitorCount int) Competitiveness {
	switch {
	case competitorCount >= 35:
		return CompetitivenessVeryHigh
	case competitorCount >= 20:
		return CompetitivenessHigh
	case competitorCount >= 10:
		return CompetitivenessMedium
	default:
		return CompetitivenessLow
	}
}

// explain generates the pricing justification surfaced to end users. It is a
// required output, not telemetry.
func explain(region, tradeType string, factor demand.Factor) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s has %d active %s contractors competing for leads (demand index %d/100).",
		region, factor.CompetitorCount, tradeType, factor.DemandIndex)

	if len(factor.PrimaryHazards) > 0 {
		fmt.Fprintf(&sb, " Primary hazards: %s.", strings.Join(factor.PrimaryHazards, ", "))
	}

	if factor.DisasterDeclaration {
		sb.WriteString(" An active disaster declaration is driving elevated claim volume.")
	}

	return sb.String()
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
