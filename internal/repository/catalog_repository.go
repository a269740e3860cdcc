package repository

import (
	"context"
	"fmt"

	"salon-admin/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// catalogRepository implements the CatalogRepository interface using PostgreSQL.
type catalogRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCatalogRepository creates a new PostgreSQL-backed catalog repository.
func NewCatalogRepository(pool *pgxpool.Pool, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "catalog").Logger(),
	}
}

// ListServices retrieves all services ordered by name.
func (r *catalogRepository) ListServices(ctx context.Context) ([]model.Service, error) {
	query := `
		SELECT id, name, selling_price, duration, COALESCE(category_id, ''), created_at
		FROM services
		ORDER BY name, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query services")
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	services := []model.Service{}
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.SellingPrice, &s.Duration, &s.CategoryID, &s.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan service row")
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating service rows")
		return nil, fmt.Errorf("error iterating services: %w", err)
	}

	return services, nil
}

// ListPackages retrieves all packages with their constituent services.
// Constituents keep the position they were defined in.
func (r *catalogRepository) ListPackages(ctx context.Context) ([]model.Package, error) {
	packageQuery := `
		SELECT id, name, price, is_customizable
		FROM packages
		ORDER BY name, id
	`

	rows, err := r.pool.Query(ctx, packageQuery)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query packages")
		return nil, fmt.Errorf("failed to query packages: %w", err)
	}

	packages := []model.Package{}
	index := make(map[string]int)
	for rows.Next() {
		var p model.Package
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.IsCustomizable); err != nil {
			rows.Close()
			r.logger.Error().Err(err).Msg("failed to scan package row")
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		p.PackageServices = []model.PackageService{}
		index[p.ID] = len(packages)
		packages = append(packages, p)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating package rows")
		return nil, fmt.Errorf("error iterating packages: %w", err)
	}

	if len(packages) == 0 {
		return packages, nil
	}

	serviceQuery := `
		SELECT ps.package_id, ps.service_id, ps.package_selling_price,
		       s.id, s.name, s.selling_price, s.duration, COALESCE(s.category_id, ''), s.created_at
		FROM package_services ps
		JOIN services s ON s.id = ps.service_id
		ORDER BY ps.package_id, ps.position, ps.service_id
	`

	rows, err = r.pool.Query(ctx, serviceQuery)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query package services")
		return nil, fmt.Errorf("failed to query package services: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var packageID string
		var ps model.PackageService
		err := rows.Scan(
			&packageID,
			&ps.ServiceID,
			&ps.PackageSellingPrice,
			&ps.Service.ID,
			&ps.Service.Name,
			&ps.Service.SellingPrice,
			&ps.Service.Duration,
			&ps.Service.CategoryID,
			&ps.Service.CreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan package service row")
			return nil, fmt.Errorf("failed to scan package service: %w", err)
		}

		i, ok := index[packageID]
		if !ok {
			continue
		}
		packages[i].PackageServices = append(packages[i].PackageServices, ps)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating package service rows")
		return nil, fmt.Errorf("error iterating package services: %w", err)
	}

	return packages, nil
}

// ListEmployees retrieves all stylists ordered by name.
func (r *catalogRepository) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	query := `
		SELECT id, name
		FROM employees
		ORDER BY name, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query employees")
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan employee row")
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating employee rows")
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}
