package costing

import (
	"math"
	"testing"
)

func sumAllocations(allocations []Allocation) (budget, pct float64) {
	for _, a := range allocations {
		budget += a.AllocatedBudget
		pct += a.Percentage
	}
	return budget, pct
}

func TestAllocateBudget_TotalsAreExact(t *testing.T) {
	regions := []string{"Dallas-Fort Worth", "Houston", "Austin", "San Antonio", "El Paso"}

	allocations := AllocateBudgetAcrossRegions(regions, "TX", "roofing", 2500, "Dallas-Fort Worth")
	if len(allocations) != len(regions) {
		t.Fatalf("expected %d allocations, got %d", len(regions), len(allocations))
	}

	budget, pct := sumAllocations(allocations)
	if budget != 2500 {
		t.Fatalf("allocated budget sums to %.2f, want exactly 2500", budget)
	}
	if math.Abs(pct-100) > 1e-6 {
		t.Fatalf("percentages sum to %.4f, want exactly 100", pct)
	}
}

func TestAllocateBudget_HomeAdjacencyAndPriority(t *testing.T) {
	// Atlanta (home, demand 74), Marietta (adjacent, 53), Savannah
	// (non-adjacent, 49). No Georgia region carries a disaster declaration.
	regions := []string{"Savannah", "Marietta", "Atlanta"}

	allocations := AllocateBudgetAcrossRegions(regions, "GA", "roofing", 1000, "Atlanta")

	byRegion := make(map[string]Allocation, len(allocations))
	for _, a := range allocations {
		byRegion[a.Region] = a
	}

	if byRegion["Atlanta"].Priority != PriorityPrimary {
		t.Fatalf("home region priority = %s, want primary", byRegion["Atlanta"].Priority)
	}
	if byRegion["Marietta"].Priority != PrioritySecondary {
		t.Fatalf("adjacent region priority = %s, want secondary", byRegion["Marietta"].Priority)
	}
	if byRegion["Savannah"].Priority != PriorityTertiary {
		t.Fatalf("non-adjacent region priority = %s, want tertiary", byRegion["Savannah"].Priority)
	}

	if byRegion["Atlanta"].AllocatedBudget <= byRegion["Marietta"].AllocatedBudget ||
		byRegion["Atlanta"].AllocatedBudget <= byRegion["Savannah"].AllocatedBudget {
		t.Fatalf("home region must receive the largest allocation: %+v", allocations)
	}
}

func TestAllocateBudget_SortedByPriorityNotBudget(t *testing.T) {
	regions := []string{"El Paso", "Houston", "Dallas-Fort Worth"}

	// Houston has a disaster declaration, so it is primary alongside the
	// home region even though the home region outspends it.
	allocations := AllocateBudgetAcrossRegions(regions, "TX", "roofing", 1000, "Dallas-Fort Worth")

	lastRank := -1
	for _, a := range allocations {
		rank := priorityRank[a.Priority]
		if rank < lastRank {
			t.Fatalf("allocations not ordered by priority: %+v", allocations)
		}
		lastRank = rank
	}

	if allocations[len(allocations)-1].Region != "El Paso" {
		t.Fatalf("expected tertiary El Paso last, got %+v", allocations)
	}
}

func TestAllocateBudget_DisasterBoostRaisesShare(t *testing.T) {
	// San Antonio (demand 64, no disaster) vs Houston (demand 85, disaster).
	// With equal home treatment the disaster boost compounds on top of the
	// demand gap.
	regions := []string{"San Antonio", "Houston"}

	allocations := AllocateBudgetAcrossRegions(regions, "TX", "roofing", 1000, "")

	byRegion := make(map[string]Allocation, len(allocations))
	for _, a := range allocations {
		byRegion[a.Region] = a
	}

	if byRegion["Houston"].AllocatedBudget <= byRegion["San Antonio"].AllocatedBudget {
		t.Fatalf("expected disaster region to out-allocate: %+v", allocations)
	}
	if byRegion["Houston"].Priority != PriorityPrimary {
		t.Fatalf("disaster region priority = %s, want primary", byRegion["Houston"].Priority)
	}
}

func TestAllocateBudget_EmptyInputs(t *testing.T) {
	if AllocateBudgetAcrossRegions(nil, "TX", "roofing", 1000, "") != nil {
		t.Fatal("expected nil for empty region list")
	}
	if AllocateBudgetAcrossRegions([]string{"Austin"}, "TX", "roofing", 0, "") != nil {
		t.Fatal("expected nil for zero budget")
	}
}

func TestAllocateBudget_LeadsFollowTieredConversion(t *testing.T) {
	allocations := AllocateBudgetAcrossRegions([]string{"Houston"}, "TX", "roofing", 845, "Houston")
	if len(allocations) != 1 {
		t.Fatalf("expected a single allocation, got %d", len(allocations))
	}

	a := allocations[0]
	// Houston demand index 85 -> 8% conversion. CPC 8.45 -> 100 clicks.
	if a.EstimatedClicks != 100 {
		t.Fatalf("expected 100 clicks, got %d", a.EstimatedClicks)
	}
	if a.EstimatedLeads != 8.0 {
		t.Fatalf("expected 8.0 leads, got %.1f", a.EstimatedLeads)
	}
}
