// Package partners provides the partners bounded context module.
package partners

import (
	apphttp "maxclaim_backend/internal/http"
	"maxclaim_backend/internal/partners/handler"
	"maxclaim_backend/internal/partners/repository"
	"maxclaim_backend/internal/partners/service"
	"maxclaim_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the partners bounded context module implementing http.Module.
type Module struct {
	handler    *handler.Handler
	service    *service.Service
	repository *repository.Repository
}

// NewModule creates and initializes the partners module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc, repository: repo}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "partners"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for composition-root adapters.
func (m *Module) Repository() *repository.Repository {
	return m.repository
}

// RegisterRoutes mounts partner routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	partnersGroup := ctx.V1.Group("/partners")
	m.handler.RegisterRoutes(partnersGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
