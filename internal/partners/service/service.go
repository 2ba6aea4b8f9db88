// Package service provides business logic for partner administration.
package service

import (
	"context"

	"maxclaim_backend/internal/partners/repository"
	"maxclaim_backend/internal/partners/transport"
	"maxclaim_backend/internal/routing/domain"

	"github.com/google/uuid"
)

// Service provides business logic for partners.
type Service struct {
	repo *repository.Repository
}

// New creates a new partners service.
func New(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

// List returns every partner record.
func (s *Service) List(ctx context.Context) ([]transport.PartnerResponse, error) {
	partners, err := s.repo.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]transport.PartnerResponse, 0, len(partners))
	for _, p := range partners {
		out = append(out, transport.ToPartnerResponse(p))
	}
	return out, nil
}

// GetByID fetches a single partner.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.PartnerResponse, error) {
	partner, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.PartnerResponse{}, err
	}
	return transport.ToPartnerResponse(partner), nil
}

// UpdateStatus changes a partner's approval status and returns the updated record.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req transport.UpdateStatusRequest) (transport.PartnerResponse, error) {
	if err := s.repo.UpdateStatus(ctx, id, domain.Status(req.Status)); err != nil {
		return transport.PartnerResponse{}, err
	}
	return s.GetByID(ctx, id)
}

// UpdateAdConfig changes a partner's monthly ad budget and returns the updated record.
func (s *Service) UpdateAdConfig(ctx context.Context, id uuid.UUID, req transport.UpdateAdConfigRequest) (transport.PartnerResponse, error) {
	if err := s.repo.UpdateAdConfig(ctx, id, domain.AdConfig{MonthlyBudget: req.MonthlyBudget}); err != nil {
		return transport.PartnerResponse{}, err
	}
	return s.GetByID(ctx, id)
}
