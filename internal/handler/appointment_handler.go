package handler

import (
	"net/http"
	"time"

	"salon-admin/internal/model"
	"salon-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AppointmentHandler handles appointment and booking HTTP requests.
type AppointmentHandler struct {
	appointments service.AppointmentService
	bookings     service.BookingService
	location     *time.Location
	logger       zerolog.Logger
}

// NewAppointmentHandler creates a new appointment handler.
// Dates in query parameters are read in location.
func NewAppointmentHandler(
	appointments service.AppointmentService,
	bookings service.BookingService,
	location *time.Location,
	logger zerolog.Logger,
) *AppointmentHandler {
	if location == nil {
		location = time.UTC
	}
	return &AppointmentHandler{
		appointments: appointments,
		bookings:     bookings,
		location:     location,
		logger:       logger.With().Str("handler", "appointment").Logger(),
	}
}

// ListByDate handles GET /api/appointments?date=YYYY-MM-DD[&location_id=] requests.
func (h *AppointmentHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "date parameter is required", h.logger)
		return
	}

	day, err := parseDate(dateStr, h.location)
	if err != nil {
		writeServiceError(w, model.ErrInvalidDate, "", h.logger)
		return
	}

	appointments, err := h.appointments.ByDate(r.Context(), day, locationFilter(r))
	if err != nil {
		writeServiceError(w, err, "failed to retrieve appointments", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, appointments)
}

// Today handles GET /api/dashboard/today[?location_id=] requests.
func (h *AppointmentHandler) Today(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.appointments.Today(r.Context(), locationFilter(r))
	if err != nil {
		writeServiceError(w, err, "failed to retrieve today's appointments", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

// GetByID handles GET /api/appointments/{id} requests.
func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidID, "appointment id must be a UUID", h.logger)
		return
	}

	appointment, err := h.appointments.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve appointment", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, appointment)
}

// Create handles POST /api/appointments requests.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.BookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	resp, err := h.bookings.Submit(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to create appointment", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
