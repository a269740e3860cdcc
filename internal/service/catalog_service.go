package service

import (
	"context"
	"fmt"

	"salon-admin/internal/model"
	"salon-admin/internal/repository"

	"github.com/rs/zerolog"
)

// UncategorizedKey groups services that have no category.
const UncategorizedKey = "uncategorized"

// catalogService implements CatalogService.
type catalogService struct {
	repo   repository.CatalogRepository
	logger zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.CatalogRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		repo:   repo,
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// Services retrieves all services ordered by name.
func (s *catalogService) Services(ctx context.Context) ([]model.Service, error) {
	services, err := s.repo.ListServices(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get services")
		return nil, fmt.Errorf("failed to get services: %w", err)
	}
	return services, nil
}

// ServicesByCategory groups services by category id, keeping their order inside each group.
func (s *catalogService) ServicesByCategory(ctx context.Context) (map[string][]model.Service, error) {
	services, err := s.Services(ctx)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]model.Service)
	for _, svc := range services {
		key := svc.CategoryID
		if key == "" {
			key = UncategorizedKey
		}
		groups[key] = append(groups[key], svc)
	}
	return groups, nil
}

// Packages retrieves all packages with their constituent services.
func (s *catalogService) Packages(ctx context.Context) ([]model.Package, error) {
	packages, err := s.repo.ListPackages(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get packages")
		return nil, fmt.Errorf("failed to get packages: %w", err)
	}
	return packages, nil
}

// Employees retrieves all stylists.
func (s *catalogService) Employees(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get employees")
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	return employees, nil
}
