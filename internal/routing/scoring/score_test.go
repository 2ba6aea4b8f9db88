package scoring

import (
	"strings"
	"testing"

	"maxclaim_backend/internal/routing/domain"
)

func strPtr(s string) *string { return &s }

func scoredPartner(tier domain.Tier) domain.Partner {
	return domain.Partner{
		CompanyName:   "Apex Roofing",
		Tier:          tier,
		SubType:       strPtr("roofing"),
		ZipCode:       "75001",
		State:         "TX",
		BillingStatus: domain.BillingActive,
		Status:        domain.StatusApproved,
		AdConfig:      domain.AdConfig{MonthlyBudget: 1000},
	}
}

func TestCalculateMatchScore_AlwaysWithinBounds(t *testing.T) {
	// A top-tier partner with full credit everywhere overflows 100 before
	// clamping.
	p := scoredPartner(domain.TierPartner)
	p.AdConfig.MonthlyBudget = 50000

	match := CalculateMatchScore(p, domain.RoutingCriteria{Trades: []string{"roofing"}, ZipCode: "75001"})
	if match.Score < 0 || match.Score > 100 {
		t.Fatalf("score out of bounds: %f", match.Score)
	}
	if match.Score != 100 {
		t.Fatalf("expected clamped score of 100, got %f", match.Score)
	}
}

func TestCalculateMatchScore_TierNeverLowersScore(t *testing.T) {
	criteria := domain.RoutingCriteria{Trades: []string{"roofing"}, ZipCode: "75001"}

	partnerScore := CalculateMatchScore(scoredPartner(domain.TierPartner), criteria).Score
	affiliateScore := CalculateMatchScore(scoredPartner(domain.TierAffiliate), criteria).Score

	if partnerScore < affiliateScore {
		t.Fatalf("partner tier scored %f below affiliate tier %f", partnerScore, affiliateScore)
	}
}

func TestCalculateMatchScore_RoofingScenario(t *testing.T) {
	p := scoredPartner(domain.TierPartner)
	match := CalculateMatchScore(p, domain.RoutingCriteria{Trades: []string{"roofing"}, ZipCode: "75001"})

	if match.Score < 70 {
		t.Fatalf("expected score >= 70 for full roofing match, got %f", match.Score)
	}

	joined := strings.Join(match.Reasons, "; ")
	if !strings.Contains(joined, "Trade match") {
		t.Errorf("expected a trade-match reason, got %v", match.Reasons)
	}
	if !strings.Contains(joined, "Exact ZIP") {
		t.Errorf("expected an exact-ZIP reason, got %v", match.Reasons)
	}
}

func TestCalculateMatchScore_GeneralGetsHalfTradeCredit(t *testing.T) {
	full := scoredPartner(domain.TierAffiliate)
	general := scoredPartner(domain.TierAffiliate)
	general.SubType = strPtr("general contractor")

	criteria := domain.RoutingCriteria{Trades: []string{"roofing"}}

	fullScore := CalculateMatchScore(full, criteria).Score
	generalScore := CalculateMatchScore(general, criteria).Score

	if generalScore >= fullScore {
		t.Fatalf("expected general specialty (%f) below full trade match (%f)", generalScore, fullScore)
	}
}

func TestCalculateMatchScore_BudgetBonusCapped(t *testing.T) {
	small := scoredPartner(domain.TierAffiliate)
	small.AdConfig.MonthlyBudget = 15000
	big := scoredPartner(domain.TierAffiliate)
	big.AdConfig.MonthlyBudget = 500000

	criteria := domain.RoutingCriteria{Trades: []string{"roofing"}}
	if CalculateMatchScore(small, criteria).Score != CalculateMatchScore(big, criteria).Score {
		t.Fatal("expected budget bonus to cap at 15 points")
	}
}

func TestCalculateMatchScore_NoSpecialtyStillScores(t *testing.T) {
	p := scoredPartner(domain.TierAffiliate)
	p.SubType = nil

	match := CalculateMatchScore(p, domain.RoutingCriteria{})
	if match.Score <= 0 {
		t.Fatalf("expected partial credit for missing specialty, got %f", match.Score)
	}

	joined := strings.Join(match.Reasons, "; ")
	if !strings.Contains(joined, "Accepts all trades") {
		t.Errorf("expected accepts-all-trades reason, got %v", match.Reasons)
	}
}
