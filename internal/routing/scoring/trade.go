package scoring

import "strings"

// TradeGeneral is the wildcard specialty: general contractors satisfy every
// required trade.
const TradeGeneral = "general"

// canonicalTrades maps each canonical trade to the alias substrings that
// normalize to it. Order matters: the first canonical trade whose alias list
// contains a substring of the input wins, so more specific aliases come
// before the general bucket.
var canonicalTrades = []struct {
	trade   string
	aliases []string
}{
	{"roofing", []string{"roof", "shingle", "gutter"}},
	{"flooring", []string{"floor", "carpet", "tile", "hardwood", "laminate", "vinyl"}},
	{"drywall", []string{"drywall", "sheetrock", "plaster"}},
	{"painting", []string{"paint", "stain", "finish"}},
	{"plumbing", []string{"plumb", "pipe", "water heater", "sewer", "drain"}},
	{"electrical", []string{"electric", "wiring", "panel", "lighting"}},
	{"hvac", []string{"hvac", "heating", "cooling", "furnace", "air condition", "ac repair"}},
	{"windows", []string{"window", "glass", "glazing"}},
	{"doors", []string{"door", "entry", "garage door"}},
	{"appliances", []string{"appliance", "refrigerator", "dishwasher", "washer", "dryer", "oven"}},
	{"cabinets", []string{"cabinet", "countertop", "vanity", "millwork"}},
	{TradeGeneral, []string{"general", "handyman", "remodel", "renovation", "restoration"}},
}

// NormalizeTrade lower-cases and trims a free-text trade label and resolves
// it against the canonical taxonomy. Unknown labels are returned normalized
// but otherwise unchanged; "unknown trade" is not an error.
func NormalizeTrade(label string) string {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if normalized == "" {
		return normalized
	}

	for _, entry := range canonicalTrades {
		for _, alias := range entry.aliases {
			if strings.Contains(normalized, alias) {
				return entry.trade
			}
		}
	}

	return normalized
}

// MatchesTrade decides whether a partner's specialty satisfies a set of
// required trades.
//
// A missing specialty never matches. An empty requirement list matches any
// specialty. A specialty normalizing to general matches unconditionally.
// Otherwise a required trade matches when it normalizes to the same canonical
// value, either exactly or by substring containment in either direction --
// the double check tolerates one trade string embedding another
// ("roofing specialist" vs "roofing").
func MatchesTrade(partnerSpecialty string, requiredTrades []string) bool {
	if partnerSpecialty == "" {
		return false
	}
	if len(requiredTrades) == 0 {
		return true
	}

	specialty := NormalizeTrade(partnerSpecialty)
	if specialty == TradeGeneral {
		return true
	}

	for _, required := range requiredTrades {
		trade := NormalizeTrade(required)
		if trade == specialty ||
			strings.Contains(trade, specialty) ||
			strings.Contains(specialty, trade) {
			return true
		}
	}

	return false
}
