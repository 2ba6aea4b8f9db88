package scoring

import (
	"strings"

	"maxclaim_backend/internal/routing/domain"
)

// Location match scores, strongest to weakest. An explicit service-region
// enrollment outranks state residency but not exact-location presence.
const (
	LocationScoreExactZip     = 1.0
	LocationScoreServiceZip   = 0.9
	LocationScoreZipPrefix    = 0.8
	LocationScoreServiceState = 0.7
	LocationScoreSameState    = 0.6
	LocationScoreNoCriteria   = 0.5
)

// LocationMatch is the outcome of a geographic comparison between a partner
// and routing criteria.
type LocationMatch struct {
	Matches bool
	Score   float64
	Reason  string
}

// MatchesLocation scores geographic proximity between a partner and the
// criteria's ZIP/state. The precedence ladder is strict: the first rule that
// applies wins.
func MatchesLocation(partner domain.Partner, criteria domain.RoutingCriteria) LocationMatch {
	if !criteria.HasLocation() {
		return LocationMatch{Matches: true, Score: LocationScoreNoCriteria, Reason: "No location criteria specified"}
	}

	if criteria.ZipCode != "" {
		if partner.ZipCode == criteria.ZipCode {
			return LocationMatch{Matches: true, Score: LocationScoreExactZip, Reason: "Exact ZIP match"}
		}

		if len(partner.ZipCode) >= 3 && len(criteria.ZipCode) >= 3 &&
			partner.ZipCode[:3] == criteria.ZipCode[:3] {
			return LocationMatch{Matches: true, Score: LocationScoreZipPrefix, Reason: "Same ZIP region"}
		}

		for _, region := range partner.ServiceRegions {
			if region == criteria.ZipCode {
				return LocationMatch{Matches: true, Score: LocationScoreServiceZip, Reason: "ZIP in service regions"}
			}
		}
	}

	if criteria.State != "" {
		for _, region := range partner.ServiceRegions {
			if strings.EqualFold(region, criteria.State) {
				return LocationMatch{Matches: true, Score: LocationScoreServiceState, Reason: "State in service regions"}
			}
		}

		if strings.EqualFold(partner.State, criteria.State) {
			return LocationMatch{Matches: true, Score: LocationScoreSameState, Reason: "Same state"}
		}
	}

	return LocationMatch{}
}
