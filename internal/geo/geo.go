// Package geo provides static geographic reference data: ZIP-to-state
// resolution and the intra-state region adjacency table used for budget
// allocation. All lookups are total; unknown inputs yield zero values.
package geo

import "strings"

// zipPrefixStates maps 3-digit ZIP prefixes to state codes for the markets
// the platform operates in. Derived from USPS prefix assignments.
var zipPrefixStates = map[string]string{
	// Texas
	"750": "TX", "751": "TX", "752": "TX", "753": "TX", "754": "TX",
	"760": "TX", "761": "TX", "762": "TX", "770": "TX", "772": "TX",
	"773": "TX", "774": "TX", "775": "TX", "776": "TX", "780": "TX",
	"781": "TX", "782": "TX", "786": "TX", "787": "TX", "790": "TX",
	"791": "TX", "797": "TX", "798": "TX", "799": "TX",
	// Florida
	"320": "FL", "321": "FL", "322": "FL", "326": "FL", "327": "FL",
	"328": "FL", "330": "FL", "331": "FL", "332": "FL", "333": "FL",
	"334": "FL", "335": "FL", "336": "FL", "337": "FL", "338": "FL",
	"339": "FL", "341": "FL", "342": "FL",
	// California
	"900": "CA", "901": "CA", "902": "CA", "903": "CA", "904": "CA",
	"905": "CA", "906": "CA", "907": "CA", "908": "CA", "910": "CA",
	"911": "CA", "912": "CA", "913": "CA", "914": "CA", "915": "CA",
	"916": "CA", "917": "CA", "918": "CA", "919": "CA", "920": "CA",
	"921": "CA", "922": "CA", "926": "CA", "928": "CA", "941": "CA",
	"942": "CA", "943": "CA", "944": "CA", "945": "CA", "946": "CA",
	"947": "CA", "948": "CA", "949": "CA", "950": "CA", "951": "CA",
	"952": "CA", "953": "CA", "958": "CA",
	// Colorado
	"800": "CO", "801": "CO", "802": "CO", "803": "CO", "804": "CO",
	"805": "CO", "806": "CO", "808": "CO", "809": "CO", "810": "CO",
	// Georgia
	"300": "GA", "301": "GA", "302": "GA", "303": "GA", "305": "GA",
	"306": "GA", "310": "GA", "311": "GA", "313": "GA", "314": "GA",
	// Arizona
	"850": "AZ", "851": "AZ", "852": "AZ", "853": "AZ", "855": "AZ",
	"856": "AZ", "857": "AZ", "859": "AZ", "863": "AZ", "864": "AZ",
	// Oklahoma
	"730": "OK", "731": "OK", "734": "OK", "735": "OK", "736": "OK",
	"737": "OK", "740": "OK", "741": "OK", "743": "OK", "744": "OK",
	// Louisiana
	"700": "LA", "701": "LA", "703": "LA", "704": "LA", "705": "LA",
	"706": "LA", "707": "LA", "708": "LA", "710": "LA", "711": "LA",
}

// StateFromZip resolves a ZIP code to its state code by 3-digit prefix.
// Returns the empty string for unknown or malformed ZIPs.
func StateFromZip(zip string) string {
	zip = strings.TrimSpace(zip)
	if len(zip) < 3 {
		return ""
	}
	return zipPrefixStates[zip[:3]]
}

// regionAdjacency declares neighboring relationships between regions within a
// state. A declared neighbor boosts budget allocation near a partner's home
// region. The relation is maintained symmetrically by hand.
var regionAdjacency = map[string]map[string][]string{
	"TX": {
		"Dallas-Fort Worth": {"Austin", "Houston"},
		"Houston":           {"Dallas-Fort Worth", "San Antonio"},
		"Austin":            {"Dallas-Fort Worth", "San Antonio"},
		"San Antonio":       {"Austin", "Houston"},
		"El Paso":           {},
	},
	"FL": {
		"Miami-Dade":      {"Fort Lauderdale"},
		"Fort Lauderdale": {"Miami-Dade", "Orlando"},
		"Orlando":         {"Tampa", "Fort Lauderdale", "Jacksonville"},
		"Tampa":           {"Orlando"},
		"Jacksonville":    {"Orlando"},
	},
	"CA": {
		"Los Angeles":   {"Orange County", "Inland Empire"},
		"Orange County": {"Los Angeles", "San Diego", "Inland Empire"},
		"San Diego":     {"Orange County"},
		"Inland Empire": {"Los Angeles", "Orange County"},
		"Bay Area":      {"Sacramento"},
		"Sacramento":    {"Bay Area"},
	},
	"CO": {
		"Denver":           {"Boulder", "Colorado Springs"},
		"Boulder":          {"Denver"},
		"Colorado Springs": {"Denver"},
	},
	"GA": {
		"Atlanta":  {"Marietta", "Augusta"},
		"Marietta": {"Atlanta"},
		"Augusta":  {"Atlanta"},
		"Savannah": {},
	},
	"AZ": {
		"Phoenix":    {"Scottsdale", "Tucson"},
		"Scottsdale": {"Phoenix"},
		"Tucson":     {"Phoenix"},
	},
	"OK": {
		"Oklahoma City": {"Tulsa"},
		"Tulsa":         {"Oklahoma City"},
	},
	"LA": {
		"New Orleans":  {"Baton Rouge"},
		"Baton Rouge":  {"New Orleans", "Lafayette"},
		"Lafayette":    {"Baton Rouge", "Lake Charles"},
		"Lake Charles": {"Lafayette"},
	},
}

// AdjacentRegions returns the declared neighbors of a region within a state.
// Unknown state/region pairs return nil.
func AdjacentRegions(state, region string) []string {
	regions, ok := regionAdjacency[strings.ToUpper(strings.TrimSpace(state))]
	if !ok {
		return nil
	}
	return regions[region]
}

// IsAdjacent reports whether two regions in a state are declared neighbors.
func IsAdjacent(state, a, b string) bool {
	for _, neighbor := range AdjacentRegions(state, a) {
		if neighbor == b {
			return true
		}
	}
	return false
}
