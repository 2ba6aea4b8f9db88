package geo

import "testing"

func TestStateFromZip(t *testing.T) {
	cases := []struct {
		zip  string
		want string
	}{
		{"75001", "TX"},
		{"33101", "FL"},
		{"90001", "CA"},
		{"80202", "CO"},
		{" 30301 ", "GA"},
		{"99999", ""},
		{"12", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := StateFromZip(tc.zip); got != tc.want {
			t.Errorf("StateFromZip(%q) = %q, want %q", tc.zip, got, tc.want)
		}
	}
}

func TestAdjacency_Symmetric(t *testing.T) {
	for state, regions := range regionAdjacency {
		for region, neighbors := range regions {
			for _, neighbor := range neighbors {
				if !IsAdjacent(state, neighbor, region) {
					t.Errorf("%s: %s -> %s declared but not symmetric", state, region, neighbor)
				}
			}
		}
	}
}

func TestIsAdjacent_UnknownPairs(t *testing.T) {
	if IsAdjacent("TX", "Houston", "El Paso") {
		t.Fatal("Houston and El Paso are not declared neighbors")
	}
	if IsAdjacent("ZZ", "A", "B") {
		t.Fatal("unknown state must not report adjacency")
	}
	if AdjacentRegions("TX", "Nowhere") != nil {
		t.Fatal("unknown region must return nil")
	}
}
