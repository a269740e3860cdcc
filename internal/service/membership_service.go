package service

import (
	"context"
	"fmt"

	"salon-admin/internal/model"
	"salon-admin/internal/repository"

	"github.com/rs/zerolog"
)

// membershipService implements MembershipService.
type membershipService struct {
	repo   repository.MembershipRepository
	logger zerolog.Logger
}

// NewMembershipService creates a new membership service.
func NewMembershipService(repo repository.MembershipRepository, logger zerolog.Logger) MembershipService {
	return &membershipService{
		repo:   repo,
		logger: logger.With().Str("service", "membership").Logger(),
	}
}

// List retrieves all memberships.
func (s *membershipService) List(ctx context.Context) ([]model.Membership, error) {
	memberships, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list memberships")
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}

// GetByID retrieves a membership by ID.
func (s *membershipService) GetByID(ctx context.Context, id string) (*model.Membership, error) {
	if id == "" {
		return nil, fmt.Errorf("membership ID is required")
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("membership_id", id).Msg("failed to get membership")
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return m, nil
}
