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

const defaultAppointmentTitle = "Appointment"

// appointmentService implements AppointmentService.
type appointmentService struct {
	repo     repository.AppointmentRepository
	location *time.Location
	now      func() time.Time
	logger   zerolog.Logger
}

// NewAppointmentService creates a new appointment service.
// Days are computed in location, which defaults to UTC.
func NewAppointmentService(repo repository.AppointmentRepository, location *time.Location, logger zerolog.Logger) AppointmentService {
	if location == nil {
		location = time.UTC
	}
	return &appointmentService{
		repo:     repo,
		location: location,
		now:      time.Now,
		logger:   logger.With().Str("service", "appointment").Logger(),
	}
}

// ByDate retrieves the appointments of the given day.
func (s *appointmentService) ByDate(ctx context.Context, day time.Time, locationID *string) ([]model.Appointment, error) {
	start, end := schedule.DayBounds(day.In(s.location))

	appointments, err := s.repo.ListByRange(ctx, start, end, locationID)
	if err != nil {
		s.logger.Error().Err(err).Time("day", start).Msg("failed to get appointments")
		return nil, fmt.Errorf("failed to get appointments: %w", err)
	}
	return appointments, nil
}

// Today retrieves the dashboard summaries of today's appointments.
func (s *appointmentService) Today(ctx context.Context, locationID *string) ([]model.AppointmentSummary, error) {
	appointments, err := s.ByDate(ctx, s.now(), locationID)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.AppointmentSummary, 0, len(appointments))
	for _, a := range appointments {
		summaries = append(summaries, s.summarize(a))
	}
	return summaries, nil
}

// GetByID retrieves a single appointment with its bookings.
func (s *appointmentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("appointment_id", id.String()).Msg("failed to get appointment")
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	if appointment == nil {
		return nil, model.ErrNotFound
	}
	return appointment, nil
}

// summarize derives the dashboard row from the first booking of an appointment.
func (s *appointmentService) summarize(a model.Appointment) model.AppointmentSummary {
	start := a.StartTime.In(s.location)
	summary := model.AppointmentSummary{
		ID:           a.ID,
		Title:        defaultAppointmentTitle,
		Price:        a.TotalPrice,
		CustomerName: a.CustomerName,
		StartTime:    start,
		Time:         schedule.FormatTimeString(start.Format("15:04")),
		Status:       a.Status,
	}

	if len(a.Bookings) == 0 {
		return summary
	}

	main := a.Bookings[0]
	switch {
	case main.ServiceName != "":
		summary.Title = main.ServiceName
	case main.PackageName != "":
		summary.Title = main.PackageName
	}
	if main.PricePaid != 0 {
		summary.Price = main.PricePaid
	}
	summary.StylistName = main.EmployeeName

	return summary
}
