package handler

import (
	"net/http"

	"salon-admin/internal/model"
	"salon-admin/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler handles catalog-related HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// ListServices handles GET /api/services requests.
// With ?group=category the services are returned grouped by category id.
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	switch group := r.URL.Query().Get("group"); group {
	case "":
		services, err := h.service.Services(r.Context())
		if err != nil {
			writeServiceError(w, err, "failed to retrieve services", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, services)
	case "category":
		groups, err := h.service.ServicesByCategory(r.Context())
		if err != nil {
			writeServiceError(w, err, "failed to retrieve services", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, groups)
	default:
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "unsupported group parameter: "+group, h.logger)
	}
}

// ListPackages handles GET /api/packages requests.
func (h *CatalogHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.Packages(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve packages", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, packages)
}

// ListEmployees handles GET /api/employees requests.
func (h *CatalogHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.Employees(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve employees", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}
