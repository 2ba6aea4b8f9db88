// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"maxclaim_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Routing Domain Events
// =============================================================================

// LeadRouted is published after a routing pass produces its eligible set.
type LeadRouted struct {
	BaseEvent
	ClaimRef            string         `json:"claimRef"`
	TotalCandidates     int            `json:"totalCandidates"`
	EligibleCount       int            `json:"eligibleCount"`
	DisqualifiedReasons map[string]int `json:"disqualifiedReasons"`
}

func (e LeadRouted) EventName() string { return "routing.lead.routed" }

// WinnerSelected is published when a routing pass picks a winning partner.
type WinnerSelected struct {
	BaseEvent
	ClaimRef    string    `json:"claimRef"`
	PartnerID   uuid.UUID `json:"partnerId"`
	CompanyName string    `json:"companyName"`
	MatchScore  float64   `json:"matchScore"`
	Selection   string    `json:"selection"` // highest_score or weighted_random
}

func (e WinnerSelected) EventName() string { return "routing.winner.selected" }

// =============================================================================
// Ad Spend Domain Events
// =============================================================================

// AllocationsRefreshed is published when the rotation worker recomputes a
// partner's regional budget allocation.
type AllocationsRefreshed struct {
	BaseEvent
	PartnerID   uuid.UUID `json:"partnerId"`
	TotalBudget float64   `json:"totalBudget"`
	RegionCount int       `json:"regionCount"`
}

func (e AllocationsRefreshed) EventName() string { return "adspend.allocations.refreshed" }
