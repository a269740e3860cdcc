package service

import (
	"context"
	"time"

	"salon-admin/internal/model"

	"github.com/google/uuid"
)

// CatalogService defines read operations over the bookable catalog.
type CatalogService interface {
	// Services retrieves all services ordered by name.
	Services(ctx context.Context) ([]model.Service, error)

	// ServicesByCategory groups services by category id.
	// Services without a category are grouped under UncategorizedKey.
	ServicesByCategory(ctx context.Context) (map[string][]model.Service, error)

	// Packages retrieves all packages with their constituent services.
	Packages(ctx context.Context) ([]model.Package, error)

	// Employees retrieves all stylists.
	Employees(ctx context.Context) ([]model.Employee, error)
}

// CheckoutService prices a checkout selection.
type CheckoutService interface {
	// Quote builds the checkout items of req and applies membership and coupon discounts.
	Quote(ctx context.Context, req *model.QuoteRequest) (*model.Quote, error)
}

// AppointmentService defines read operations over booked appointments.
type AppointmentService interface {
	// ByDate retrieves the appointments of the given day, optionally for one location.
	ByDate(ctx context.Context, day time.Time, locationID *string) ([]model.Appointment, error)

	// Today retrieves the dashboard summaries of today's appointments.
	Today(ctx context.Context, locationID *string) ([]model.AppointmentSummary, error)

	// GetByID retrieves an appointment with its bookings or model.ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
}

// BookingService turns a checkout selection into a stored appointment.
type BookingService interface {
	// Submit re-prices the selection and stores it as an appointment with one booking per item.
	Submit(ctx context.Context, req *model.BookingRequest) (*model.BookingResponse, error)
}

// CouponService defines coupon lookup operations.
type CouponService interface {
	// Search returns the active coupons matching query on code or description.
	Search(query string) []model.Coupon

	// Validate returns the active coupon with the given code or model.ErrInvalidCoupon.
	Validate(ctx context.Context, code string) (*model.Coupon, error)

	// GetByID returns the coupon with the given id or model.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Coupon, error)
}

// MembershipService defines membership lookup operations.
type MembershipService interface {
	// List retrieves all memberships.
	List(ctx context.Context) ([]model.Membership, error)

	// GetByID retrieves a membership by ID, or nil if it does not exist.
	GetByID(ctx context.Context, id string) (*model.Membership, error)
}

// CouponBook is the subset of the coupon book used by the services.
type CouponBook interface {
	Search(query string) []model.Coupon
	GetByID(ctx context.Context, id string) *model.Coupon
	ValidateCode(ctx context.Context, code string) *model.Coupon
}
