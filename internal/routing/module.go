// Package routing provides the claim routing bounded context module.
package routing

import (
	"maxclaim_backend/internal/events"
	apphttp "maxclaim_backend/internal/http"
	"maxclaim_backend/internal/routing/engine"
	"maxclaim_backend/internal/routing/handler"
	"maxclaim_backend/internal/routing/ports"
	"maxclaim_backend/internal/routing/service"
	"maxclaim_backend/platform/logger"
	"maxclaim_backend/platform/validator"
)

// Module is the routing bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the routing module with all its dependencies.
func NewModule(
	partners ports.PartnerSource,
	assignments ports.AssignmentStore,
	impressions ports.ImpressionSink,
	eventBus events.Bus,
	log *logger.Logger,
	val *validator.Validator,
) *Module {
	selector := engine.NewSelector(engine.NewRandSource())
	svc := service.New(partners, assignments, impressions, selector, eventBus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "routing"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts routing routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	routingGroup := ctx.V1.Group("/routing")
	m.handler.RegisterRoutes(routingGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
