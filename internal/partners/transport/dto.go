// Package transport defines the request and response DTOs for the partners
// HTTP surface.
package transport

import (
	"maxclaim_backend/internal/routing/domain"

	"github.com/google/uuid"
)

// UpdateStatusRequest changes a partner's approval status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected suspended"`
}

// UpdateAdConfigRequest changes a partner's monthly advertising budget.
type UpdateAdConfigRequest struct {
	MonthlyBudget float64 `json:"monthlyBudget" validate:"min=0"`
}

// PartnerResponse is the partner record as returned over HTTP.
type PartnerResponse struct {
	ID             uuid.UUID `json:"id"`
	CompanyName    string    `json:"companyName"`
	Type           string    `json:"type"`
	Tier           string    `json:"tier"`
	SubType        *string   `json:"subType,omitempty"`
	ZipCode        string    `json:"zipCode"`
	State          string    `json:"state"`
	ServiceRegions []string  `json:"serviceRegions"`
	BillingStatus  string    `json:"billingStatus"`
	Status         string    `json:"status"`
	MonthlyBudget  float64   `json:"monthlyBudget"`
}

// ToPartnerResponse maps a domain partner to its DTO.
func ToPartnerResponse(p domain.Partner) PartnerResponse {
	regions := p.ServiceRegions
	if regions == nil {
		regions = []string{}
	}
	return PartnerResponse{
		ID:             p.ID,
		CompanyName:    p.CompanyName,
		Type:           string(p.Type),
		Tier:           string(p.Tier),
		SubType:        p.SubType,
		ZipCode:        p.ZipCode,
		State:          p.State,
		ServiceRegions: regions,
		BillingStatus:  string(p.BillingStatus),
		Status:         string(p.Status),
		MonthlyBudget:  p.AdConfig.MonthlyBudget,
	}
}
