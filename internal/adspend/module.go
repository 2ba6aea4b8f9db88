// Package adspend provides the advertising spend bounded context module.
package adspend

import (
	"maxclaim_backend/internal/adspend/handler"
	"maxclaim_backend/internal/adspend/ports"
	"maxclaim_backend/internal/adspend/service"
	"maxclaim_backend/internal/events"
	apphttp "maxclaim_backend/internal/http"
	"maxclaim_backend/platform/logger"
	"maxclaim_backend/platform/validator"
)

// Module is the ad spend bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the ad spend module with all its dependencies.
func NewModule(
	allocations ports.AllocationStore,
	partners ports.PartnerBudgetSource,
	eventBus events.Bus,
	log *logger.Logger,
	val *validator.Validator,
) *Module {
	svc := service.New(allocations, partners, eventBus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "adspend"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts ad spend routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	adspendGroup := ctx.V1.Group("/adspend")
	m.handler.RegisterRoutes(adspendGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
