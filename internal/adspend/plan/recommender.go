// Package plan composes trade metrics, state risk multipliers, and tier
// limits into placement, banner, and ROI projections for a partner's ad
// plan. All outputs are deterministic functions of (zip, trade, tier).
package plan

import (
	"fmt"
	"math"

	"maxclaim_backend/internal/adspend/demand"
	"maxclaim_backend/internal/geo"
)

// PlanTier is the subscription level capping a partner's ad plan.
type PlanTier string

const (
	TierFree     PlanTier = "free"
	TierStandard PlanTier = "standard"
	TierPremium  PlanTier = "premium"
)

// TradeMetrics summarizes the lead economics of one trade.
type TradeMetrics struct {
	ConversionRate   float64  // clicks that become leads
	AvgClaimValue    float64  // dollars
	CompetitionLevel string   // low, medium, high
	Placements       []string // eligible ad placements
	AffiliateMin     float64  // affiliate percentage range
	AffiliateMax     float64
}

var defaultTradeMetrics = TradeMetrics{
	ConversionRate:   0.05,
	AvgClaimValue:    6000,
	CompetitionLevel: "medium",
	Placements:       []string{"search_results", "claim_detail"},
	AffiliateMin:     0.04,
	AffiliateMax:     0.08,
}

var tradeMetricsTable = map[string]TradeMetrics{
	"roofing": {
		ConversionRate:   0.07,
		AvgClaimValue:    12500,
		CompetitionLevel: "high",
		Placements:       []string{"search_results", "claim_detail", "storm_alerts", "directory"},
		AffiliateMin:     0.05,
		AffiliateMax:     0.10,
	},
	"plumbing": {
		ConversionRate:   0.06,
		AvgClaimValue:    4800,
		CompetitionLevel: "high",
		Placements:       []string{"search_results", "claim_detail", "directory"},
		AffiliateMin:     0.04,
		AffiliateMax:     0.09,
	},
	"electrical": {
		ConversionRate:   0.055,
		AvgClaimValue:    5200,
		CompetitionLevel: "medium",
		Placements:       []string{"search_results", "claim_detail", "directory"},
		AffiliateMin:     0.04,
		AffiliateMax:     0.08,
	},
	"hvac": {
		ConversionRate:   0.065,
		AvgClaimValue:    7800,
		CompetitionLevel: "high",
		Placements:       []string{"search_results", "claim_detail", "seasonal", "directory"},
		AffiliateMin:     0.05,
		AffiliateMax:     0.09,
	},
	"flooring": {
		ConversionRate:   0.05,
		AvgClaimValue:    6400,
		CompetitionLevel: "medium",
		Placements:       []string{"search_results", "claim_detail"},
		AffiliateMin:     0.04,
		AffiliateMax:     0.07,
	},
	"windows": {
		ConversionRate:   0.045,
		AvgClaimValue:    5600,
		CompetitionLevel: "medium",
		Placements:       []string{"search_results", "claim_detail", "storm_alerts"},
		AffiliateMin:     0.04,
		AffiliateMax:     0.07,
	},
	"painting": {
		ConversionRate:   0.04,
		AvgClaimValue:    3200,
		CompetitionLevel: "low",
		Placements:       []string{"search_results", "directory"},
		AffiliateMin:     0.03,
		AffiliateMax:     0.06,
	},
	"general": {
		ConversionRate:   0.05,
		AvgClaimValue:    8500,
		CompetitionLevel: "medium",
		Placements:       []string{"search_results", "claim_detail", "directory"},
		AffiliateMin:     0.04,
		AffiliateMax:     0.08,
	},
}

// stateRiskMultipliers scale pricing by catastrophe exposure. Unlisted
// states use 1.0.
var stateRiskMultipliers = map[string]float64{
	"FL": 1.40,
	"LA": 1.35,
	"TX": 1.25,
	"OK": 1.20,
	"CA": 1.30,
	"CO": 1.15,
	"GA": 1.10,
	"AZ": 1.05,
}

// TierLimits caps what a subscription tier may buy.
type TierLimits struct {
	MaxPlacements int
	BannerSizes   []string
	BudgetCeiling float64
}

var tierLimitsTable = map[PlanTier]TierLimits{
	TierFree: {
		MaxPlacements: 1,
		BannerSizes:   []string{"300x250"},
		BudgetCeiling: 250,
	},
	TierStandard: {
		MaxPlacements: 3,
		BannerSizes:   []string{"300x250", "728x90"},
		BudgetCeiling: 1500,
	},
	TierPremium: {
		MaxPlacements: 6,
		BannerSizes:   []string{"300x250", "728x90", "970x250", "320x50"},
		BudgetCeiling: 7500,
	},
}

// placementImpressions is the baseline monthly impression volume per
// placement slot.
var placementImpressions = map[string]int{
	"search_results": 14000,
	"claim_detail":   9000,
	"directory":      6500,
	"storm_alerts":   5000,
	"seasonal":       4000,
}

const defaultPlacementImpressions = 3000

// clickThroughRate is the funnel's fixed impression-to-click rate.
const clickThroughRate = 0.02

// PlacementProjection is the funnel for one placement slot.
type PlacementProjection struct {
	Placement   string  `json:"placement"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Leads       float64 `json:"leads"`
}

// Recommendation is the full ad plan for a partner.
type Recommendation struct {
	State              string                `json:"state"`
	TradeType          string                `json:"tradeType"`
	Tier               PlanTier              `json:"tier"`
	RiskMultiplier     float64               `json:"riskMultiplier"`
	RecommendedCPC     float64               `json:"recommendedCpc"`
	AffiliateMinPct    float64               `json:"affiliateMinPct"`
	AffiliateMaxPct    float64               `json:"affiliateMaxPct"`
	RecommendedBudget  float64               `json:"recommendedBudget"`
	BannerSizes        []string              `json:"bannerSizes"`
	Placements         []PlacementProjection `json:"placements"`
	MonthlyImpressions int                   `json:"monthlyImpressions"`
	MonthlyClicks      int                   `json:"monthlyClicks"`
	MonthlyLeads       float64               `json:"monthlyLeads"`
	EstimatedCost      float64               `json:"estimatedCost"`
	EstimatedRevenue   float64               `json:"estimatedRevenue"`
	ROIPercent         float64               `json:"roiPercent"`
	Insights           []string              `json:"insights"`
}

// Recommend builds the ad plan projection for a partner operating a trade
// from a ZIP, capped by subscription tier.
func Recommend(zip, tradeType string, tier PlanTier) Recommendation {
	metrics, ok := tradeMetricsTable[tradeType]
	if !ok {
		metrics = defaultTradeMetrics
	}

	state := geo.StateFromZip(zip)
	risk := stateRiskMultipliers[state]
	if risk == 0 {
		risk = 1.0
	}

	limits, ok := tierLimitsTable[tier]
	if !ok {
		limits = tierLimitsTable[TierFree]
	}

	cpc := math.Round(demand.BaseCPCForTrade(tradeType)*risk*100) / 100

	placements := metrics.Placements
	if len(placements) > limits.MaxPlacements {
		placements = placements[:limits.MaxPlacements]
	}

	rec := Recommendation{
		State:           state,
		TradeType:       tradeType,
		Tier:            tier,
		RiskMultiplier:  risk,
		RecommendedCPC:  cpc,
		AffiliateMinPct: metrics.AffiliateMin * 100,
		AffiliateMaxPct: metrics.AffiliateMax * 100,
		BannerSizes:     limits.BannerSizes,
	}

	for _, placement := range placements {
		impressions, ok := placementImpressions[placement]
		if !ok {
			impressions = defaultPlacementImpressions
		}
		clicks := int(math.Round(float64(impressions) * clickThroughRate))
		leads := math.Round(float64(clicks)*metrics.ConversionRate*10) / 10

		rec.Placements = append(rec.Placements, PlacementProjection{
			Placement:   placement,
			Impressions: impressions,
			Clicks:      clicks,
			Leads:       leads,
		})

		rec.MonthlyImpressions += impressions
		rec.MonthlyClicks += clicks
		rec.MonthlyLeads += leads
	}
	rec.MonthlyLeads = math.Round(rec.MonthlyLeads*10) / 10

	rec.EstimatedCost = math.Round(float64(rec.MonthlyClicks)*cpc*100) / 100
	if rec.EstimatedCost > limits.BudgetCeiling {
		// Scale the projection down to what the tier can actually spend.
		scale := limits.BudgetCeiling / rec.EstimatedCost
		rec.EstimatedCost = limits.BudgetCeiling
		rec.MonthlyClicks = int(math.Round(float64(rec.MonthlyClicks) * scale))
		rec.MonthlyLeads = math.Round(rec.MonthlyLeads*scale*10) / 10
	}
	rec.RecommendedBudget = math.Min(rec.EstimatedCost, limits.BudgetCeiling)

	affiliateMid := (metrics.AffiliateMin + metrics.AffiliateMax) / 2
	rec.EstimatedRevenue = math.Round(rec.MonthlyLeads*metrics.AvgClaimValue*affiliateMid*100) / 100

	if rec.EstimatedCost > 0 {
		rec.ROIPercent = math.Round((rec.EstimatedRevenue/rec.EstimatedCost-1)*10000) / 100
	}

	rec.Insights = insights(rec, metrics, limits)

	return rec
}

// insights emits qualitative guidance from thresholds on risk, competition,
// and tier.
func insights(rec Recommendation, metrics TradeMetrics, limits TierLimits) []string {
	var out []string

	if rec.RiskMultiplier >= 1.3 {
		out = append(out, fmt.Sprintf("%s is a high catastrophe-risk market; claim volume spikes after storm events.", rec.State))
	}

	switch metrics.CompetitionLevel {
	case "high":
		out = append(out, "Competition for this trade is high; the competitive budget tier keeps placements visible.")
	case "low":
		out = append(out, "Low competition for this trade; the minimum budget tier is usually sufficient.")
	}

	if rec.Tier == TierFree && len(metrics.Placements) > limits.MaxPlacements {
		out = append(out, fmt.Sprintf("Upgrading unlocks %d additional placements for this trade.",
			len(metrics.Placements)-limits.MaxPlacements))
	}

	if rec.ROIPercent > 100 {
		out = append(out, "Projected return exceeds 2x ad spend at current lead values.")
	}

	return out
}
