// Package transport defines the request and response DTOs for the routing
// HTTP surface.
package transport

import (
	"maxclaim_backend/internal/routing/domain"

	"github.com/google/uuid"
)

// LineItemRequest is one claim line item used for trade detection when the
// caller does not name trades explicitly.
type LineItemRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Category string `json:"category" validate:"max=100"`
}

// RouteClaimRequest describes a claim to route. Trades may be supplied
// directly or derived from line items; both empty means any trade qualifies.
type RouteClaimRequest struct {
	ClaimRef   string            `json:"claimRef" validate:"required,max=100"`
	Trades     []string          `json:"trades" validate:"max=20,dive,max=100"`
	LineItems  []LineItemRequest `json:"lineItems" validate:"max=100,dive"`
	ZipCode    string            `json:"zipCode" validate:"omitempty,len=5,numeric"`
	State      string            `json:"state" validate:"omitempty,len=2,alpha"`
	ClaimValue float64           `json:"claimValue" validate:"min=0"`
	Limit      int               `json:"limit" validate:"min=0,max=50"`
}

// SelectWinnerRequest routes a claim and picks a winner in one call.
type SelectWinnerRequest struct {
	RouteClaimRequest
	Selection string `json:"selection" validate:"omitempty,oneof=highest_score weighted_random"`
}

// RoutingResultResponse is one scored candidate in the response.
type RoutingResultResponse struct {
	PartnerID    uuid.UUID `json:"partnerId"`
	CompanyName  string    `json:"companyName"`
	MatchScore   float64   `json:"matchScore"`
	MatchReasons []string  `json:"matchReasons"`
	Tier         string    `json:"tier"`
}

// RouteClaimResponse is the outcome of a routing pass.
type RouteClaimResponse struct {
	ClaimRef            string                  `json:"claimRef"`
	DetectedTrades      []string                `json:"detectedTrades"`
	EligiblePartners    []RoutingResultResponse `json:"eligiblePartners"`
	TotalCandidates     int                     `json:"totalCandidates"`
	DisqualifiedReasons map[string]int          `json:"disqualifiedReasons"`
}

// SelectWinnerResponse extends the routing outcome with the selected winner.
// Winner is null when no partner qualified.
type SelectWinnerResponse struct {
	RouteClaimResponse
	Selection string                 `json:"selection"`
	Winner    *RoutingResultResponse `json:"winner"`
}

// ToResultResponse maps a domain routing result to its DTO.
func ToResultResponse(r domain.RoutingResult) RoutingResultResponse {
	return RoutingResultResponse{
		PartnerID:    r.PartnerID,
		CompanyName:  r.CompanyName,
		MatchScore:   r.MatchScore,
		MatchReasons: r.MatchReasons,
		Tier:         string(r.Tier),
	}
}

// ToResultResponses maps a slice of domain results, returning an empty slice
// rather than nil so the JSON encodes as [].
func ToResultResponses(results []domain.RoutingResult) []RoutingResultResponse {
	out := make([]RoutingResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, ToResultResponse(r))
	}
	return out
}
