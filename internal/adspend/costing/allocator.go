package costing

import (
	"math"
	"sort"

	"maxclaim_backend/internal/adspend/demand"
	"maxclaim_backend/internal/geo"
)

// Priority labels how central a region is to the partner's ad strategy.
type Priority string

const (
	PriorityPrimary   Priority = "primary"
	PrioritySecondary Priority = "secondary"
	PriorityTertiary  Priority = "tertiary"
)

var priorityRank = map[Priority]int{
	PriorityPrimary:   0,
	PrioritySecondary: 1,
	PriorityTertiary:  2,
}

// Allocation is one region's share of a partner's monthly budget.
type Allocation struct {
	Region          string   `json:"region"`
	AllocatedBudget float64  `json:"allocatedBudget"`
	Percentage      float64  `json:"percentage"`
	EstimatedClicks int      `json:"estimatedClicks"`
	EstimatedLeads  float64  `json:"estimatedLeads"`
	CPCRate         float64  `json:"cpcRate"`
	Priority        Priority `json:"priority"`

	demandIndex int
}

// Allocation weight multipliers. Boosts compound: a home region under a
// disaster declaration gets 1.5 * 1.3.
const (
	homeRegionBoost = 1.5
	adjacentBoost   = 1.2
	disasterBoost   = 1.3
)

// AllocateBudgetAcrossRegions distributes a total monthly budget across
// candidate regions, weighted by demand index, home-region affinity,
// adjacency, and active-disaster boosts.
//
// Weights are normalized after boosting so allocations always sum to the
// input budget; the first allocation in the sorted output absorbs the
// rounding remainder for both budget and percentage, clamped at zero.
// Output is ordered primary, secondary, tertiary -- not by budget size.
func AllocateBudgetAcrossRegions(regions []string, state, tradeType string, totalBudget float64, homeRegion string) []Allocation {
	if len(regions) == 0 || totalBudget <= 0 {
		return nil
	}

	factors := make([]demand.Factor, len(regions))
	var demandSum float64
	for i, region := range regions {
		factors[i] = demand.RegionDemandOrDefault(state, region)
		demandSum += float64(factors[i].DemandIndex)
	}
	if demandSum == 0 {
		demandSum = 1
	}

	weights := make([]float64, len(regions))
	var weightSum float64
	for i, region := range regions {
		w := float64(factors[i].DemandIndex) / demandSum

		switch {
		case region == homeRegion:
			w *= homeRegionBoost
		case geo.IsAdjacent(state, homeRegion, region):
			w *= adjacentBoost
		}

		if factors[i].DisasterDeclaration {
			w *= disasterBoost
		}

		weights[i] = w
		weightSum += w
	}

	allocations := make([]Allocation, len(regions))
	for i, region := range regions {
		breakdown := CalculateRegionCostBreakdown(state, region, "", tradeType)
		share := weights[i] / weightSum
		budget := math.Round(totalBudget * share)

		allocations[i] = Allocation{
			Region:          region,
			AllocatedBudget: budget,
			Percentage:      math.Round(share*10000) / 100,
			EstimatedClicks: estimatedClicks(budget, breakdown.AdjustedCPC),
			CPCRate:         breakdown.AdjustedCPC,
			Priority:        regionPriority(region, homeRegion, state, factors[i]),
			demandIndex:     factors[i].DemandIndex,
		}
		allocations[i].EstimatedLeads = estimatedLeads(allocations[i].EstimatedClicks, factors[i].DemandIndex)
	}

	sort.SliceStable(allocations, func(i, j int) bool {
		return priorityRank[allocations[i].Priority] < priorityRank[allocations[j].Priority]
	})

	reconcile(allocations, totalBudget)

	return allocations
}

// reconcile forces exact totals: independent rounding rarely sums to the
// input budget or to 100%, so the first allocation absorbs the remainder.
func reconcile(allocations []Allocation, totalBudget float64) {
	var budgetSum, pctSum float64
	for i := 1; i < len(allocations); i++ {
		budgetSum += allocations[i].AllocatedBudget
		pctSum += allocations[i].Percentage
	}

	first := &allocations[0]
	first.AllocatedBudget = totalBudget - budgetSum
	first.Percentage = math.Round((100-pctSum)*100) / 100

	// Normalized weights keep the remainder within rounding error, but a
	// degenerate first weight is still clamped rather than forced negative.
	if first.AllocatedBudget < 0 {
		first.AllocatedBudget = 0
	}
	if first.Percentage < 0 {
		first.Percentage = 0
	}

	if first.CPCRate > 0 {
		first.EstimatedClicks = estimatedClicks(first.AllocatedBudget, first.CPCRate)
		first.EstimatedLeads = estimatedLeads(first.EstimatedClicks, first.demandIndex)
	}
}

func regionPriority(region, homeRegion, state string, factor demand.Factor) Priority {
	if region == homeRegion || factor.DisasterDeclaration {
		return PriorityPrimary
	}
	if geo.IsAdjacent(state, homeRegion, region) {
		return PrioritySecondary
	}
	return PriorityTertiary
}

func estimatedClicks(budget, cpc float64) int {
	if cpc <= 0 {
		return 0
	}
	return int(math.Round(budget / cpc))
}

// estimatedLeads applies the tiered conversion rate: hot markets convert
// better.
func estimatedLeads(clicks int, demandIndex int) float64 {
	var conversionRate float64
	switch {
	case demandIndex > 70:
		conversionRate = 0.08
	case demandIndex > 50:
		conversionRate = 0.06
	default:
		conversionRate = 0.04
	}
	return math.Round(float64(clicks)*conversionRate*10) / 10
}
