package costing

import (
	"strings"
	"testing"
)

func TestCalculateRegionCostBreakdown_AdjustedCPC(t *testing.T) {
	// Houston: baseMultiplier 1.30, roofing base CPC 6.50 -> 8.45.
	b := CalculateRegionCostBreakdown("TX", "Houston", "", "roofing")
	if b.AdjustedCPC != 8.45 {
		t.Fatalf("expected adjusted CPC 8.45, got %.2f", b.AdjustedCPC)
	}
}

func TestCalculateRegionCostBreakdown_UnknownRegionUsesDefaults(t *testing.T) {
	b := CalculateRegionCostBreakdown("ZZ", "Nowhere", "", "unlisted trade")
	// Default factor: multiplier 1.0, base CPC 4.00.
	if b.AdjustedCPC != 4.00 {
		t.Fatalf("expected default CPC 4.00, got %.2f", b.AdjustedCPC)
	}
	if b.RecommendedMonthlyBudget.Recommended <= 0 {
		t.Fatal("expected a positive recommended budget from defaults")
	}
}

func TestCalculateRegionCostBreakdown_BudgetTierOrdering(t *testing.T) {
	b := CalculateRegionCostBreakdown("FL", "Miami-Dade", "", "roofing")
	tiers := b.RecommendedMonthlyBudget
	if !(tiers.Minimum < tiers.Recommended && tiers.Recommended < tiers.Competitive) {
		t.Fatalf("budget tiers out of order: %+v", tiers)
	}
}

func TestCompetitivenessFactorClamped(t *testing.T) {
	// 52 competitors (Los Angeles): 2.0 - 52/40 = 0.7, inside the clamp.
	// The factor multiplies avgContractorBudget (1000): recommended = 700.
	b := CalculateRegionCostBreakdown("CA", "Los Angeles", "", "roofing")
	if b.RecommendedMonthlyBudget.Recommended != 700 {
		t.Fatalf("expected recommended 700, got %.0f", b.RecommendedMonthlyBudget.Recommended)
	}

	// 8 competitors (Lake Charles): 2.0 - 8/40 = 1.8, clamped to 1.5.
	b = CalculateRegionCostBreakdown("LA", "Lake Charles", "", "roofing")
	if b.RecommendedMonthlyBudget.Recommended != 600 {
		t.Fatalf("expected clamped recommended 600, got %.0f", b.RecommendedMonthlyBudget.Recommended)
	}
}

func TestCompetitivenessBuckets(t *testing.T) {
	cases := []struct {
		state, region string
		want          Competitiveness
	}{
		{"FL", "Miami-Dade", CompetitivenessVeryHigh}, // 47
		{"TX", "Austin", CompetitivenessHigh},         // 28
		{"GA", "Savannah", CompetitivenessMedium},     // 12
		{"LA", "Lake Charles", CompetitivenessLow},    // 8
	}

	for _, tc := range cases {
		b := CalculateRegionCostBreakdown(tc.state, tc.region, "", "roofing")
		if b.Competitiveness != tc.want {
			t.Errorf("%s/%s: expected %s, got %s", tc.state, tc.region, tc.want, b.Competitiveness)
		}
	}
}

func TestExplanationCitesMarketSignals(t *testing.T) {
	b := CalculateRegionCostBreakdown("TX", "Houston", "", "roofing")
	if !strings.Contains(b.Explanation, "Houston") {
		t.Errorf("explanation missing region: %q", b.Explanation)
	}
	if !strings.Contains(b.Explanation, "38") {
		t.Errorf("explanation missing competitor count: %q", b.Explanation)
	}
	if !strings.Contains(b.Explanation, "hurricane") {
		t.Errorf("explanation missing hazards: %q", b.Explanation)
	}
	if !strings.Contains(b.Explanation, "disaster") {
		t.Errorf("explanation missing disaster status: %q", b.Explanation)
	}
}
