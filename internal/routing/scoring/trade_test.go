package scoring

import "testing"

func TestNormalizeTrade_CanonicalAliases(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Roofing", "roofing"},
		{"  Roof Repair  ", "roofing"},
		{"shingle replacement", "roofing"},
		{"Hardwood Floors", "flooring"},
		{"Sheetrock install", "drywall"},
		{"water heater service", "plumbing"},
		{"AC Repair", "hvac"},
		{"Handyman Services", "general"},
		{"Kitchen Remodel", "general"},
	}

	for _, tc := range cases {
		if got := NormalizeTrade(tc.input); got != tc.want {
			t.Errorf("NormalizeTrade(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeTrade_UnknownPassesThroughNormalized(t *testing.T) {
	if got := NormalizeTrade("  Chimney Sweep  "); got != "chimney sweep" {
		t.Fatalf("expected lowered/trimmed pass-through, got %q", got)
	}
}

func TestNormalizeTrade_Idempotent(t *testing.T) {
	inputs := []string{"Roofing Specialist", "chimney sweep", "HVAC", "", "General Contractor"}
	for _, in := range inputs {
		once := NormalizeTrade(in)
		twice := NormalizeTrade(once)
		if once != twice {
			t.Errorf("NormalizeTrade not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestMatchesTrade_EmptyRequirementsMatchAnySpecialty(t *testing.T) {
	if !MatchesTrade("chimney sweep", nil) {
		t.Fatal("expected empty requirements to match any non-empty specialty")
	}
}

func TestMatchesTrade_MissingSpecialtyNeverMatches(t *testing.T) {
	if MatchesTrade("", nil) {
		t.Fatal("expected missing specialty to never match, even with empty requirements")
	}
	if MatchesTrade("", []string{"roofing"}) {
		t.Fatal("expected missing specialty to never match")
	}
}

func TestMatchesTrade_GeneralSatisfiesEverything(t *testing.T) {
	if !MatchesTrade("General Contractor", []string{"roofing", "plumbing"}) {
		t.Fatal("expected general contractor to satisfy every trade")
	}
}

func TestMatchesTrade_SubstringTolerance(t *testing.T) {
	// "roofing specialist" and "roofing" both normalize to roofing.
	if !MatchesTrade("roofing specialist", []string{"roofing"}) {
		t.Fatal("expected embedded trade strings to match")
	}
	if MatchesTrade("plumbing", []string{"roofing"}) {
		t.Fatal("expected unrelated trades not to match")
	}
}
