package handler

import (
	"net/http"

	"salon-admin/internal/model"
	"salon-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// MembershipHandler handles membership-related HTTP requests.
type MembershipHandler struct {
	service service.MembershipService
	logger  zerolog.Logger
}

// NewMembershipHandler creates a new membership handler.
func NewMembershipHandler(service service.MembershipService, logger zerolog.Logger) *MembershipHandler {
	return &MembershipHandler{
		service: service,
		logger:  logger.With().Str("handler", "membership").Logger(),
	}
}

// List handles GET /api/memberships requests.
func (h *MembershipHandler) List(w http.ResponseWriter, r *http.Request) {
	memberships, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve memberships", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, memberships)
}

// GetByID handles GET /api/memberships/{id} requests.
func (h *MembershipHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "membership ID is required", h.logger)
		return
	}

	membership, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve membership", h.logger)
		return
	}

	if membership == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeMembershipMissing, "membership not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, membership)
}
