package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salon-admin/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const appointmentColumns = `
	a.id, a.customer_id, a.location_id, a.start_time, a.end_time, a.status,
	a.total_price, a.discount, a.coupon_id, a.created_at, COALESCE(c.full_name, '')
`

const appointmentFrom = `
	FROM appointments a
	LEFT JOIN customers c ON c.id = a.customer_id
`

// appointmentRepository implements the AppointmentRepository interface using PostgreSQL.
type appointmentRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewAppointmentRepository creates a new PostgreSQL-backed appointment repository.
func NewAppointmentRepository(pool *pgxpool.Pool, logger zerolog.Logger) AppointmentRepository {
	return &appointmentRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "appointment").Logger(),
	}
}

// ListByRange retrieves appointments starting in [start, end) with their bookings.
func (r *appointmentRepository) ListByRange(ctx context.Context, start, end time.Time, locationID *string) ([]model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + appointmentFrom + `
		WHERE a.start_time >= $1 AND a.start_time < $2
		  AND ($3::text IS NULL OR a.location_id = $3)
		ORDER BY a.start_time, a.id
	`

	rows, err := r.pool.Query(ctx, query, start, end, locationID)
	if err != nil {
		r.logger.Error().Err(err).
			Time("start", start).
			Time("end", end).
			Msg("failed to query appointments")
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}

	appointments := []model.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			rows.Close()
			r.logger.Error().Err(err).Msg("failed to scan appointment row")
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, *a)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating appointment rows")
		return nil, fmt.Errorf("error iterating appointments: %w", err)
	}

	if len(appointments) == 0 {
		return appointments, nil
	}

	ids := make([]uuid.UUID, len(appointments))
	index := make(map[uuid.UUID]int, len(appointments))
	for i, a := range appointments {
		ids[i] = a.ID
		index[a.ID] = i
	}

	bookings, err := r.listBookings(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		i := index[b.AppointmentID]
		appointments[i].Bookings = append(appointments[i].Bookings, b)
	}

	return appointments, nil
}

// GetByID retrieves an appointment by its ID along with its bookings.
func (r *appointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `SELECT ` + appointmentColumns + appointmentFrom + ` WHERE a.id = $1`

	a, err := scanAppointment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("appointment_id", id.String()).Msg("appointment not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("appointment_id", id.String()).Msg("failed to query appointment")
		return nil, fmt.Errorf("failed to query appointment: %w", err)
	}

	bookings, err := r.listBookings(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	a.Bookings = bookings

	return a, nil
}

func (r *appointmentRepository) listBookings(ctx context.Context, appointmentIDs []uuid.UUID) ([]model.Booking, error) {
	query := `
		SELECT b.id, b.appointment_id, b.service_id, b.package_id, b.employee_id,
		       b.start_time, b.price_paid, b.status,
		       COALESCE(s.name, ''), COALESCE(p.name, ''), COALESCE(e.name, '')
		FROM bookings b
		LEFT JOIN services s ON s.id = b.service_id
		LEFT JOIN packages p ON p.id = b.package_id
		LEFT JOIN employees e ON e.id = b.employee_id
		WHERE b.appointment_id = ANY($1)
		ORDER BY b.appointment_id, b.position, b.start_time
	`

	rows, err := r.pool.Query(ctx, query, appointmentIDs)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(appointmentIDs)).Msg("failed to query bookings")
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		var b model.Booking
		err := rows.Scan(
			&b.ID,
			&b.AppointmentID,
			&b.ServiceID,
			&b.PackageID,
			&b.EmployeeID,
			&b.StartTime,
			&b.PricePaid,
			&b.Status,
			&b.ServiceName,
			&b.PackageName,
			&b.EmployeeName,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan booking row")
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating booking rows")
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// BeginTx starts a new database transaction.
func (r *appointmentRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateAppointment inserts a new appointment within the provided transaction.
func (r *appointmentRepository) CreateAppointment(ctx context.Context, tx pgx.Tx, a *model.Appointment) error {
	query := `
		INSERT INTO appointments (id, customer_id, location_id, start_time, end_time, status,
		                          total_price, discount, coupon_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := tx.Exec(ctx, query,
		a.ID, a.CustomerID, a.LocationID, a.StartTime, a.EndTime, a.Status,
		a.TotalPrice, a.Discount, a.CouponID, a.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("appointment_id", a.ID.String()).
			Msg("failed to create appointment")
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	r.logger.Debug().
		Str("appointment_id", a.ID.String()).
		Msg("appointment created successfully")

	return nil
}

// CreateBookings inserts the bookings of an appointment within the provided transaction.
// Bookings keep the order they are given in.
func (r *appointmentRepository) CreateBookings(ctx context.Context, tx pgx.Tx, bookings []model.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	query := `
		INSERT INTO bookings (id, appointment_id, service_id, package_id, employee_id,
		                      start_time, price_paid, status, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	batch := &pgx.Batch{}
	for i, b := range bookings {
		batch.Queue(query, b.ID, b.AppointmentID, b.ServiceID, b.PackageID, b.EmployeeID,
			b.StartTime, b.PricePaid, b.Status, i)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(bookings); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("appointment_id", bookings[i].AppointmentID.String()).
				Str("booking_id", bookings[i].ID.String()).
				Msg("failed to create booking")
			return fmt.Errorf("failed to create booking: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(bookings)).
		Msg("bookings created successfully")

	return nil
}

func scanAppointment(row pgx.Row) (*model.Appointment, error) {
	var a model.Appointment
	err := row.Scan(
		&a.ID,
		&a.CustomerID,
		&a.LocationID,
		&a.StartTime,
		&a.EndTime,
		&a.Status,
		&a.TotalPrice,
		&a.Discount,
		&a.CouponID,
		&a.CreatedAt,
		&a.CustomerName,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
