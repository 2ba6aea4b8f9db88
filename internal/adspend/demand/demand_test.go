package demand

import "testing"

func TestGetRegionDemand_KnownPair(t *testing.T) {
	f, ok := GetRegionDemand("TX", "Houston")
	if !ok {
		t.Fatal("expected Houston to exist")
	}
	if f.Region != "Houston" {
		t.Fatalf("expected region name filled in, got %q", f.Region)
	}
	if !f.DisasterDeclaration {
		t.Fatal("expected Houston to carry a disaster declaration")
	}
}

func TestGetRegionDemand_StateIsCaseInsensitive(t *testing.T) {
	if _, ok := GetRegionDemand("tx", "Austin"); !ok {
		t.Fatal("expected lower-case state code to resolve")
	}
}

func TestRegionDemandOrDefault_UnknownPairUsesDefault(t *testing.T) {
	f := RegionDemandOrDefault("ZZ", "Nowhere")
	if f.BaseMultiplier != 1.0 || f.CompetitorCount != 15 || f.DemandIndex != 50 || f.AvgContractorBudget != 500 {
		t.Fatalf("unexpected default factor: %+v", f)
	}
	if f.DisasterDeclaration {
		t.Fatal("default factor must be non-disaster")
	}
}

func TestBaseCPCForTrade_UnknownFallsBack(t *testing.T) {
	if got := BaseCPCForTrade("chimney sweep"); got != DefaultBaseCPC {
		t.Fatalf("expected default CPC %.2f, got %.2f", DefaultBaseCPC, got)
	}
	if got := BaseCPCForTrade("roofing"); got != 6.50 {
		t.Fatalf("expected roofing CPC 6.50, got %.2f", got)
	}
}

func TestAllDisasterRegions_OnlyFlaggedRegions(t *testing.T) {
	regions := AllDisasterRegions()
	if len(regions) == 0 {
		t.Fatal("expected at least one disaster region in the table")
	}
	for _, dr := range regions {
		if !dr.Factor.DisasterDeclaration {
			t.Fatalf("non-disaster region returned: %s/%s", dr.State, dr.Region)
		}
		if _, ok := GetRegionDemand(dr.State, dr.Region); !ok {
			t.Fatalf("scan returned unknown pair %s/%s", dr.State, dr.Region)
		}
	}
}
