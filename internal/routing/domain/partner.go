// Package domain holds the routing bounded context's core types. Everything
// here is plain data: the scoring and selection logic operates on these types
// without touching storage or transport concerns.
package domain

import "github.com/google/uuid"

// PartnerType categorizes what kind of business a partner runs.
type PartnerType string

const (
	PartnerTypeContractor PartnerType = "contractor"
	PartnerTypeAdjuster   PartnerType = "adjuster"
	PartnerTypeAgency     PartnerType = "agency"
)

// Tier is a partner's contractual relationship level. Tiers act as scoring
// multipliers: partner > advertiser > affiliate.
type Tier string

const (
	TierPartner    Tier = "partner"
	TierAdvertiser Tier = "advertiser"
	TierAffiliate  Tier = "affiliate"
)

// Weight returns the scoring multiplier for the tier. Unknown tiers fall back
// to the affiliate weight rather than erroring.
func (t Tier) Weight() float64 {
	switch t {
	case TierPartner:
		return 1.5
	case TierAdvertiser:
		return 1.2
	case TierAffiliate:
		return 1.0
	default:
		return 1.0
	}
}

// Status is a partner's approval state. Only approved partners are routable.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusSuspended Status = "suspended"
)

// BillingStatus tracks whether a partner's billing is in good standing.
type BillingStatus string

const (
	BillingActive   BillingStatus = "active"
	BillingPastDue  BillingStatus = "past_due"
	BillingInactive BillingStatus = "inactive"
)

// AdConfig carries the slice of a partner record the routing core cares
// about: the monthly advertising budget.
type AdConfig struct {
	MonthlyBudget float64 `json:"monthlyBudget"`
}

// Partner is the candidate record supplied by the partner store. The routing
// core reads it and never mutates it.
type Partner struct {
	ID             uuid.UUID     `json:"id"`
	CompanyName    string        `json:"companyName"`
	Type           PartnerType   `json:"type"`
	Tier           Tier          `json:"tier"`
	SubType        *string       `json:"subType,omitempty"` // free-text trade specialty
	ZipCode        string        `json:"zipCode"`
	State          string        `json:"state"`
	ServiceRegions []string      `json:"serviceRegions"` // ZIP or state codes
	BillingStatus  BillingStatus `json:"billingStatus"`
	Status         Status        `json:"status"`
	AdConfig       AdConfig      `json:"adConfig"`
}

// Specialty returns the partner's trade specialty, empty when absent.
func (p Partner) Specialty() string {
	if p.SubType == nil {
		return ""
	}
	return *p.SubType
}

// RoutingCriteria describes what a claim needs from a partner. An empty
// Trades list means any trade qualifies; ZipCode and State are optional.
type RoutingCriteria struct {
	Trades     []string
	ZipCode    string
	State      string
	ClaimValue float64
}

// HasLocation reports whether the criteria constrain geography at all.
func (c RoutingCriteria) HasLocation() bool {
	return c.ZipCode != "" || c.State != ""
}

// RoutingResult is one scored candidate. Created fresh per routing call and
// never persisted by the core.
type RoutingResult struct {
	PartnerID    uuid.UUID `json:"partnerId"`
	CompanyName  string    `json:"companyName"`
	MatchScore   float64   `json:"matchScore"` // 0-100 inclusive
	MatchReasons []string  `json:"matchReasons"`
	Tier         Tier      `json:"tier"`
}

// RoutingAnalysis is the full outcome of a routing pass over a partner
// population.
type RoutingAnalysis struct {
	EligiblePartners    []RoutingResult `json:"eligiblePartners"`
	TotalCandidates     int             `json:"totalCandidates"`
	DisqualifiedReasons map[string]int  `json:"disqualifiedReasons"`
}
