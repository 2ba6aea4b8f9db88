// Package transport defines the request and response DTOs for the ad spend
// HTTP surface.
package transport

import (
	"maxclaim_backend/internal/adspend/costing"
	"maxclaim_backend/internal/adspend/plan"

	"github.com/google/uuid"
)

// RegionCostsRequest filters the per-state cost breakdown listing.
type RegionCostsRequest struct {
	TradeType string `form:"tradeType" validate:"omitempty,max=100"`
	ZipCode   string `form:"zipCode" validate:"omitempty,len=5,numeric"`
}

// RegionCostsResponse lists cost breakdowns for every known region of a state.
type RegionCostsResponse struct {
	State   string                  `json:"state"`
	Regions []costing.CostBreakdown `json:"regions"`
}

// AllocateRequest asks for a budget split across regions. Regions defaults
// to every known region of the state; HomeRegion is where the partner sits.
// When PartnerID is set the result is also persisted for that partner.
type AllocateRequest struct {
	PartnerID   *uuid.UUID `json:"partnerId" validate:"omitempty"`
	State       string     `json:"state" validate:"required,len=2,alpha"`
	TradeType   string     `json:"tradeType" validate:"omitempty,max=100"`
	TotalBudget float64    `json:"totalBudget" validate:"required,gt=0"`
	HomeRegion  string     `json:"homeRegion" validate:"omitempty,max=100"`
	Regions     []string   `json:"regions" validate:"max=30,dive,max=100"`
}

// AllocateResponse is the computed split.
type AllocateResponse struct {
	State       string               `json:"state"`
	TradeType   string               `json:"tradeType"`
	TotalBudget float64              `json:"totalBudget"`
	Persisted   bool                 `json:"persisted"`
	Allocations []costing.Allocation `json:"allocations"`
}

// PlanRequest asks for a plan recommendation for a partner location.
type PlanRequest struct {
	ZipCode   string `json:"zipCode" validate:"required,len=5,numeric"`
	TradeType string `json:"tradeType" validate:"required,max=100"`
	Tier      string `json:"tier" validate:"omitempty,oneof=free standard premium"`
}

// PlanResponse wraps the recommendation.
type PlanResponse struct {
	Plan plan.Recommendation `json:"plan"`
}
