package repository

import (
	"context"
	"time"

	"salon-admin/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CatalogRepository defines the data access operations for the bookable catalog.
type CatalogRepository interface {
	// ListServices retrieves all services ordered by name.
	ListServices(ctx context.Context) ([]model.Service, error)

	// ListPackages retrieves all packages with their constituent services.
	ListPackages(ctx context.Context) ([]model.Package, error)

	// ListEmployees retrieves all stylists ordered by name.
	ListEmployees(ctx context.Context) ([]model.Employee, error)
}

// MembershipRepository defines the data access operations for memberships.
type MembershipRepository interface {
	// List retrieves all memberships ordered by name.
	List(ctx context.Context) ([]model.Membership, error)

	// GetByID retrieves a single membership by its ID.
	GetByID(ctx context.Context, id string) (*model.Membership, error)
}

// CouponRepository defines the data access operations for coupons.
// It satisfies both coupon.Source and coupon.Finder.
type CouponRepository interface {
	// Load retrieves all active coupons ordered by code.
	Load(ctx context.Context) ([]model.Coupon, error)

	// FindByID retrieves a coupon by its ID regardless of its status.
	FindByID(ctx context.Context, id string) (*model.Coupon, error)

	// FindActiveByCode retrieves an active coupon by its code.
	FindActiveByCode(ctx context.Context, code string) (*model.Coupon, error)
}

// AppointmentRepository defines the data access operations for appointments and their bookings.
type AppointmentRepository interface {
	// ListByRange retrieves appointments starting in [start, end) with their bookings.
	// A nil locationID returns appointments of every location.
	ListByRange(ctx context.Context, start, end time.Time, locationID *string) ([]model.Appointment, error)

	// GetByID retrieves an appointment by its ID along with its bookings.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error)

	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateAppointment inserts a new appointment within the provided transaction.
	CreateAppointment(ctx context.Context, tx pgx.Tx, appointment *model.Appointment) error

	// CreateBookings inserts the bookings of an appointment within the provided transaction.
	CreateBookings(ctx context.Context, tx pgx.Tx, bookings []model.Booking) error
}
