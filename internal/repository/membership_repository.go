package repository

import (
	"context"
	"errors"
	"fmt"

	"salon-admin/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const membershipColumns = `
	id, name, COALESCE(description, ''), validity_period, validity_unit,
	discount_type, discount_value, max_discount_value, min_billing_amount,
	applicable_services, applicable_packages
`

// membershipRepository implements the MembershipRepository interface using PostgreSQL.
type membershipRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMembershipRepository creates a new PostgreSQL-backed membership repository.
func NewMembershipRepository(pool *pgxpool.Pool, logger zerolog.Logger) MembershipRepository {
	return &membershipRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "membership").Logger(),
	}
}

// List retrieves all memberships ordered by name.
func (r *membershipRepository) List(ctx context.Context) ([]model.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships ORDER BY name, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query memberships")
		return nil, fmt.Errorf("failed to query memberships: %w", err)
	}
	defer rows.Close()

	memberships := []model.Membership{}
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan membership row")
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, *m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating membership rows")
		return nil, fmt.Errorf("error iterating memberships: %w", err)
	}

	return memberships, nil
}

// GetByID retrieves a single membership by its ID.
func (r *membershipRepository) GetByID(ctx context.Context, id string) (*model.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE id = $1`

	m, err := scanMembership(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("membership_id", id).Msg("membership not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("membership_id", id).Msg("failed to query membership")
		return nil, fmt.Errorf("failed to query membership: %w", err)
	}

	return m, nil
}

func scanMembership(row pgx.Row) (*model.Membership, error) {
	var m model.Membership
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Description,
		&m.ValidityPeriod,
		&m.ValidityUnit,
		&m.DiscountType,
		&m.DiscountValue,
		&m.MaxDiscountValue,
		&m.MinBillingAmount,
		&m.ApplicableServices,
		&m.ApplicablePackages,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
