package service

import (
	"context"
	"fmt"
	"time"

	"salon-admin/internal/model"
	"salon-admin/internal/repository"
	"salon-admin/internal/schedule"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

// bookingService implements BookingService.
type bookingService struct {
	appointmentRepo repository.AppointmentRepository
	checkout        CheckoutService
	location        *time.Location
	logger          zerolog.Logger
}

// NewBookingService creates a new booking service.
func NewBookingService(
	appointmentRepo repository.AppointmentRepository,
	checkout CheckoutService,
	location *time.Location,
	logger zerolog.Logger,
) BookingService {
	if location == nil {
		location = time.UTC
	}
	return &bookingService{
		appointmentRepo: appointmentRepo,
		checkout:        checkout,
		location:        location,
		logger:          logger.With().Str("service", "booking").Logger(),
	}
}

// Submit re-prices the selection and stores it as an appointment.
//
// Bookings are laid out back to back from the requested start, except where
// the selection pins a service to its own time slot.
func (s *bookingService) Submit(ctx context.Context, req *model.BookingRequest) (*model.BookingResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("booking request is nil")
	}
	if req.CustomerID == "" {
		return nil, model.ErrMissingCustomer
	}
	if len(req.SelectedServices) == 0 && len(req.SelectedPackages) == 0 {
		return nil, model.ErrEmptySelection
	}

	day, err := time.ParseInLocation(dateLayout, req.Date, s.location)
	if err != nil {
		s.logger.Warn().Str("date", req.Date).Msg("invalid booking date")
		return nil, model.ErrInvalidDate
	}
	hour, minute, err := schedule.ParseClock(req.Time)
	if err != nil {
		s.logger.Warn().Str("time", req.Time).Msg("invalid booking time")
		return nil, model.ErrInvalidTime
	}

	quote, err := s.checkout.Quote(ctx, &req.QuoteRequest)
	if err != nil {
		return nil, err
	}
	if len(quote.Items) == 0 {
		s.logger.Warn().Msg("selection resolved to no bookable items")
		return nil, model.ErrEmptySelection
	}

	start := schedule.At(day, hour, minute)
	appointment := &model.Appointment{
		ID:         uuid.New(),
		CustomerID: req.CustomerID,
		LocationID: req.LocationID,
		StartTime:  start,
		EndTime:    start.Add(time.Duration(quote.TotalDuration) * time.Minute),
		Status:     model.StatusBooked,
		TotalPrice: quote.Total,
		Discount:   quote.MembershipSaving + quote.CouponDiscount,
		CreatedAt:  time.Now().UTC(),
	}
	if quote.Coupon != nil {
		appointment.CouponID = &quote.Coupon.ID
	}
	bookings := s.bookings(appointment, day, quote.Items)

	// Start transaction
	tx, err := s.appointmentRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.appointmentRepo.CreateAppointment(ctx, tx, appointment); err != nil {
		s.logger.Error().Err(err).Str("appointment_id", appointment.ID.String()).Msg("failed to create appointment")
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if err = s.appointmentRepo.CreateBookings(ctx, tx, bookings); err != nil {
		s.logger.Error().
			Err(err).
			Str("appointment_id", appointment.ID.String()).
			Int("booking_count", len(bookings)).
			Msg("failed to create bookings")
		return nil, fmt.Errorf("failed to create bookings: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("appointment_id", appointment.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.logger.Info().
		Str("appointment_id", appointment.ID.String()).
		Int("booking_count", len(bookings)).
		Float64("total", quote.Total).
		Msg("appointment created successfully")

	return &model.BookingResponse{
		AppointmentID: appointment.ID,
		StartTime:     appointment.StartTime,
		EndTime:       appointment.EndTime,
		Quote:         quote,
	}, nil
}

// bookings creates one booking per checkout item.
func (s *bookingService) bookings(a *model.Appointment, day time.Time, items []model.CheckoutItem) []model.Booking {
	bookings := make([]model.Booking, 0, len(items))
	cursor := a.StartTime

	for _, item := range items {
		id := item.ID
		b := model.Booking{
			ID:            uuid.New(),
			AppointmentID: a.ID,
			StartTime:     cursor,
			PricePaid:     item.AdjustedPrice,
			Status:        model.StatusBooked,
		}

		switch item.Type {
		case model.ItemService:
			b.ServiceID = &id
			if item.Stylist != "" {
				stylist := item.Stylist
				b.EmployeeID = &stylist
			}
			if h, m, err := schedule.ParseClock(item.Time); item.Time != "" && err == nil {
				b.StartTime = schedule.At(day, h, m)
			}
		case model.ItemPackage:
			b.PackageID = &id
		}

		bookings = append(bookings, b)
		cursor = cursor.Add(time.Duration(item.Duration) * time.Minute)
	}

	return bookings
}
