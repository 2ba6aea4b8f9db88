package plan

import (
	"reflect"
	"strings"
	"testing"
)

func TestRecommend_Deterministic(t *testing.T) {
	a := Recommend("75001", "roofing", TierPremium)
	b := Recommend("75001", "roofing", TierPremium)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("recommendation must be a pure function of (zip, trade, tier)")
	}
}

func TestRecommend_StateRiskScalesCPC(t *testing.T) {
	tx := Recommend("75001", "roofing", TierStandard)
	if tx.State != "TX" {
		t.Fatalf("expected TX from ZIP 75001, got %q", tx.State)
	}
	// Roofing base 6.50 x TX risk 1.25 = 8.13 (rounded to cents).
	if tx.RecommendedCPC != 8.13 {
		t.Fatalf("expected CPC 8.13, got %.2f", tx.RecommendedCPC)
	}

	unknown := Recommend("00000", "roofing", TierStandard)
	if unknown.RiskMultiplier != 1.0 {
		t.Fatalf("expected neutral risk for unknown state, got %.2f", unknown.RiskMultiplier)
	}
}

func TestRecommend_TierCapsPlacementsAndBanners(t *testing.T) {
	free := Recommend("75001", "roofing", TierFree)
	premium := Recommend("75001", "roofing", TierPremium)

	if len(free.Placements) != 1 {
		t.Fatalf("free tier should cap at 1 placement, got %d", len(free.Placements))
	}
	if len(premium.Placements) != 4 {
		t.Fatalf("premium tier should carry all 4 roofing placements, got %d", len(premium.Placements))
	}
	if len(free.BannerSizes) >= len(premium.BannerSizes) {
		t.Fatal("premium tier should offer more banner sizes than free")
	}
}

func TestRecommend_FunnelArithmetic(t *testing.T) {
	rec := Recommend("75001", "roofing", TierPremium)

	var impressions, clicks int
	for _, p := range rec.Placements {
		impressions += p.Impressions
		clicks += p.Clicks

		// 2% CTR per placement.
		want := int(float64(p.Impressions) * 0.02)
		if p.Clicks != want {
			t.Errorf("%s: clicks %d, want %d", p.Placement, p.Clicks, want)
		}
	}
	if rec.MonthlyImpressions != impressions {
		t.Fatalf("monthly impressions %d != placement sum %d", rec.MonthlyImpressions, impressions)
	}
}

func TestRecommend_ROIZeroWhenCostZero(t *testing.T) {
	rec := Recommendation{}
	if rec.ROIPercent != 0 {
		t.Fatal("zero-cost plan must report 0 ROI")
	}

	// Full recommendation with spend always computes a finite ROI.
	full := Recommend("75001", "roofing", TierPremium)
	if full.EstimatedCost <= 0 {
		t.Fatal("expected positive estimated cost for premium roofing plan")
	}
	if full.ROIPercent == 0 && full.EstimatedRevenue != full.EstimatedCost {
		t.Fatal("expected non-zero ROI when revenue differs from cost")
	}
}

func TestRecommend_BudgetCeilingScalesProjection(t *testing.T) {
	free := Recommend("90001", "roofing", TierFree)
	if free.EstimatedCost > 250 {
		t.Fatalf("free tier cost %.2f exceeds the $250 ceiling", free.EstimatedCost)
	}
}

func TestRecommend_UnknownTradeUsesDefaults(t *testing.T) {
	rec := Recommend("75001", "chimney sweep", TierStandard)
	if len(rec.Placements) == 0 {
		t.Fatal("default trade metrics should still produce placements")
	}
	if rec.AffiliateMinPct != 4 || rec.AffiliateMaxPct != 8 {
		t.Fatalf("expected default affiliate range 4-8%%, got %.0f-%.0f", rec.AffiliateMinPct, rec.AffiliateMaxPct)
	}
}

func TestRecommend_InsightThresholds(t *testing.T) {
	rec := Recommend("33101", "roofing", TierFree)

	foundRisk := false
	foundCompetition := false
	for _, insight := range rec.Insights {
		if rec.RiskMultiplier >= 1.3 && strings.Contains(insight, "catastrophe") {
			foundRisk = true
		}
		if strings.Contains(insight, "Competition") {
			foundCompetition = true
		}
	}

	if !foundRisk {
		t.Errorf("FL risk multiplier %.2f should trigger a catastrophe insight: %v", rec.RiskMultiplier, rec.Insights)
	}
	if !foundCompetition {
		t.Errorf("high-competition roofing should trigger a competition insight: %v", rec.Insights)
	}
}
