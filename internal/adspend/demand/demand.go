// Package demand holds the static regional market model: per-region demand
// factors and per-trade base pricing. The tables are hand-curated reference
// data, loaded once and never mutated. All lookups are total.
package demand

import "strings"

// Factor captures the market signals for one region.
type Factor struct {
	Region              string
	BaseMultiplier      float64
	CompetitorCount     int
	DisasterDeclaration bool
	PrimaryHazards      []string
	PopulationDensity   string // urban, suburban, rural
	AvgContractorBudget float64
	DemandIndex         int // 0-100 composite lead demand
}

// DefaultFactor is substituted for unknown state/region pairs so cost
// calculations degrade instead of failing.
var DefaultFactor = Factor{
	BaseMultiplier:      1.0,
	CompetitorCount:     15,
	PopulationDensity:   "suburban",
	AvgContractorBudget: 500,
	DemandIndex:         50,
}

// regionFactors is keyed by state, then region. Region names line up with
// the geo adjacency table.
var regionFactors = map[string]map[string]Factor{
	"TX": {
		"Dallas-Fort Worth": {
			BaseMultiplier:      1.35,
			CompetitorCount:     42,
			PrimaryHazards:      []string{"hail", "wind", "tornado"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 850,
			DemandIndex:         88,
		},
		"Houston": {
			BaseMultiplier:      1.30,
			CompetitorCount:     38,
			DisasterDeclaration: true,
			PrimaryHazards:      []string{"hurricane", "flood"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 800,
			DemandIndex:         85,
		},
		"Austin": {
			BaseMultiplier:      1.20,
			CompetitorCount:     28,
			PrimaryHazards:      []string{"hail", "wildfire"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 700,
			DemandIndex:         72,
		},
		"San Antonio": {
			BaseMultiplier:      1.10,
			CompetitorCount:     22,
			PrimaryHazards:      []string{"hail", "flood"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 600,
			DemandIndex:         64,
		},
		"El Paso": {
			BaseMultiplier:      0.90,
			CompetitorCount:     9,
			PrimaryHazards:      []string{"wind"},
			PopulationDensity:   "suburban",
			AvgContractorBudget: 400,
			DemandIndex:         41,
		},
	},
	"FL": {
		"Miami-Dade": {
			BaseMultiplier:      1.45,
			CompetitorCount:     47,
			DisasterDeclaration: true,
			PrimaryHazards:      []string{"hurricane", "flood", "wind"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 950,
			DemandIndex:         93,
		},
		"Fort Lauderdale": {
			BaseMultiplier:      1.35,
			CompetitorCount:     36,
			DisasterDeclaration: true,
			PrimaryHazards:      []string{"hurricane", "flood"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 820,
			DemandIndex:         84,
		},
		"Orlando": {
			BaseMultiplier:      1.15,
			CompetitorCount:     26,
			PrimaryHazards:      []string{"hurricane", "lightning"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 650,
			DemandIndex:         70,
		},
		"Tampa": {
			BaseMultiplier:      1.25,
			CompetitorCount:     31,
			DisasterDeclaration: true,
			PrimaryHazards:      []string{"hurricane", "flood"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 720,
			DemandIndex:         78,
		},
		"Jacksonville": {
			BaseMultiplier:      1.05,
			CompetitorCount:     18,
			PrimaryHazards:      []string{"hurricane", "wind"},
			PopulationDensity:   "suburban",
			AvgContractorBudget: 520,
			DemandIndex:         58,
		},
	},
	"CA": {
		"Los Angeles": {
			BaseMultiplier:      1.50,
			CompetitorCount:     52,
			PrimaryHazards:      []string{"wildfire", "earthquake"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 1000,
			DemandIndex:         90,
		},
		"Orange County": {
			BaseMultiplier:      1.40,
			CompetitorCount:     34,
			PrimaryHazards:      []string{"wildfire"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 880,
			DemandIndex:         79,
		},
		"San Diego": {
			BaseMultiplier:      1.30,
			CompetitorCount:     29,
			PrimaryHazards:      []string{"wildfire", "earthquake"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 780,
			DemandIndex:         73,
		},
		"Inland Empire": {
			BaseMultiplier:      1.10,
			CompetitorCount:     19,
			DisasterDeclaration: true,
			PrimaryHazards:      []string{"wildfire"},
			PopulationDensity:   "suburban",
			AvgContractorBudget: 560,
			DemandIndex:         62,
		},
		"Bay Area": {
			BaseMultiplier:      1.45,
			CompetitorCount:     40,
			PrimaryHazards:      []string{"earthquake", "wildfire"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 920,
			DemandIndex:         81,
		},
		"Sacramento": {
			BaseMultiplier:      1.15,
			CompetitorCount:     21,
			PrimaryHazards:      []string{"flood", "wildfire"},
			PopulationDensity:   "suburban",
			AvgContractorBudget: 580,
			DemandIndex:         60,
		},
	},
	"CO": {
		"Denver": {
			BaseMultiplier:      1.25,
			CompetitorCount:     30,
			PrimaryHazards:      []string{"hail", "wind"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 700,
			DemandIndex:         76,
		},
		"Boulder": {
			BaseMultiplier:      1.15,
			CompetitorCount:     14,
			PrimaryHazards:      []string{"hail", "wildfire"},
			PopulationDensity:   "suburban",
			AvgContractorBudget: 540,
			DemandIndex:         57,
		},
		"Colorado Springs": {
			BaseMultiplier:      1.10,
			CompetitorCount:     16,
			PrimaryHazards:      []string{"hail", "wildfire"},
			PopulationDensity:   "suburban",
			AvgContractorBudget: 500,
			DemandIndex:         55,
		},
	},
	"GA": {
		"Atlanta": {
			BaseMultiplier:      1.20,
			CompetitorCount:     33,
			PrimaryHazards:      []string{"tornado", "wind"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 680,
			DemandIndex:         74,
		},
		"Marietta": {
			BaseMultiplier:      1.05,
			CompetitorCount:     17,
			PrimaryHazards:      []string{"tornado"},
			PopulationDensity:   "suburban",
			AvgContractorBudget: 480,
			DemandIndex:         53,
		},
		"Augusta": {
			BaseMultiplier:      0.95,
			CompetitorCount:     11,
			PrimaryHazards:      []string{"wind"},
			PopulationDensity:   "suburban",
			AvgContractorBudget: 420,
			DemandIndex:         46,
		},
		"Savannah": {
			BaseMultiplier:      1.00,
			CompetitorCount:     12,
			PrimaryHazards:      []string{"hurricane"},
			PopulationDensity:   "suburban",
			AvgContractorBudget: 450,
			DemandIndex:         49,
		},
	},
	"AZ": {
		"Phoenix": {
			BaseMultiplier:      1.20,
			CompetitorCount:     32,
			PrimaryHazards:      []string{"monsoon", "dust storm"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 660,
			DemandIndex:         71,
		},
		"Scottsdale": {
			BaseMultiplier:      1.15,
			CompetitorCount:     18,
			PrimaryHazards:      []string{"monsoon"},
			PopulationDensity:   "suburban",
			AvgContractorBudget: 560,
			DemandIndex:         58,
		},
		"Tucson": {
			BaseMultiplier:      1.00,
			CompetitorCount:     13,
			PrimaryHazards:      []string{"monsoon", "wildfire"},
			PopulationDensity:   "suburban",
			AvgContractorBudget: 440,
			DemandIndex:         48,
		},
	},
	"OK": {
		"Oklahoma City": {
			BaseMultiplier:      1.15,
			CompetitorCount:     20,
			DisasterDeclaration: true,
			PrimaryHazards:      []string{"tornado", "hail"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 550,
			DemandIndex:         67,
		},
		"Tulsa": {
			BaseMultiplier:      1.05,
			CompetitorCount:     15,
			PrimaryHazards:      []string{"tornado", "hail"},
			PopulationDensity:   "suburban",
			AvgContractorBudget: 480,
			DemandIndex:         56,
		},
	},
	"LA": {
		"New Orleans": {
			BaseMultiplier:      1.30,
			CompetitorCount:     24,
			DisasterDeclaration: true,
			PrimaryHazards:      []string{"hurricane", "flood"},
			PopulationDensity:   "urban",
			AvgContractorBudget: 640,
			DemandIndex:         77,
		},
		"Baton Rouge": {
			BaseMultiplier:      1.10,
			CompetitorCount:     16,
			PrimaryHazards:      []string{"hurricane", "flood"},
			PopulationDensity:   "suburban",
			AvgContractorBudget: 500,
			DemandIndex:         59,
		},
		"Lafayette": {
			BaseMultiplier:      1.00,
			CompetitorCount:     10,
			PrimaryHazards:      []string{"hurricane", "flood"},
			PopulationDensity:   "suburban",
			AvgContractorBudget: 430,
			DemandIndex:         47,
		},
		"Lake Charles": {
			BaseMultiplier:      1.05,
			CompetitorCount:     8,
			DisasterDeclaration: true,
			PrimaryHazards:      []string{"hurricane"},
			PopulationDensity:   "rural",
			AvgContractorBudget: 400,
			DemandIndex:         52,
		},
	},
}

// baseCPCByTrade is the base cost-per-click in dollars before regional
// multipliers.
var baseCPCByTrade = map[string]float64{
	"roofing":    6.50,
	"flooring":   4.25,
	"drywall":    3.50,
	"painting":   3.75,
	"plumbing":   5.50,
	"electrical": 5.25,
	"hvac":       6.00,
	"windows":    4.75,
	"doors":      4.00,
	"appliances": 3.25,
	"cabinets":   4.50,
	"general":    4.00,
}

// DefaultBaseCPC applies to trades missing from the pricing table.
const DefaultBaseCPC = 4.00

// GetRegionDemand returns the demand factor for a state/region pair, or ok
// false for unknown pairs. Callers substitute DefaultFactor.
func GetRegionDemand(state, region string) (Factor, bool) {
	regions, found := regionFactors[strings.ToUpper(strings.TrimSpace(state))]
	if !found {
		return Factor{}, false
	}
	f, found := regions[region]
	if !found {
		return Factor{}, false
	}
	f.Region = region
	return f, true
}

// RegionDemandOrDefault returns the demand factor for the pair, substituting
// DefaultFactor for unknown pairs.
func RegionDemandOrDefault(state, region string) Factor {
	if f, ok := GetRegionDemand(state, region); ok {
		return f
	}
	f := DefaultFactor
	f.Region = region
	return f
}

// RegionsForState lists the known regions of a state. Map iteration order is
// not guaranteed; callers sort if ordering matters.
func RegionsForState(state string) []string {
	regions, found := regionFactors[strings.ToUpper(strings.TrimSpace(state))]
	if !found {
		return nil
	}
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	return names
}

// BaseCPCForTrade returns the base cost-per-click for a trade, falling back
// to DefaultBaseCPC for unknown trades.
func BaseCPCForTrade(trade string) float64 {
	if cpc, ok := baseCPCByTrade[strings.ToLower(strings.TrimSpace(trade))]; ok {
		return cpc
	}
	return DefaultBaseCPC
}

// DisasterRegion identifies a region under an active disaster declaration.
type DisasterRegion struct {
	State  string
	Region string
	Factor Factor
}

// AllDisasterRegions scans the full table and returns every region flagged
// with an active disaster declaration.
func AllDisasterRegions() []DisasterRegion {
	var out []DisasterRegion
	for state, regions := range regionFactors {
		for name, f := range regions {
			if f.DisasterDeclaration {
				f.Region = name
				out = append(out, DisasterRegion{State: state, Region: name, Factor: f})
			}
		}
	}
	return out
}
