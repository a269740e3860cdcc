package handler

import (
	"net/http"

	"salon-admin/internal/model"
	"salon-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// CouponHandler handles coupon-related HTTP requests.
type CouponHandler struct {
	service service.CouponService
	logger  zerolog.Logger
}

// NewCouponHandler creates a new coupon handler.
func NewCouponHandler(service service.CouponService, logger zerolog.Logger) *CouponHandler {
	return &CouponHandler{
		service: service,
		logger:  logger.With().Str("handler", "coupon").Logger(),
	}
}

// Search handles GET /api/coupons?q= requests.
func (h *CouponHandler) Search(w http.ResponseWriter, r *http.Request) {
	coupons := h.service.Search(r.URL.Query().Get("q"))
	if coupons == nil {
		coupons = []model.Coupon{}
	}
	writeJSON(w, http.StatusOK, coupons)
}

// Validate handles GET /api/coupons/validate/{code} requests.
func (h *CouponHandler) Validate(w http.ResponseWriter, r *http.Request) {
	coupon, err := h.service.Validate(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeServiceError(w, err, "failed to validate coupon", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}

// GetByID handles GET /api/coupons/{id} requests.
func (h *CouponHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	coupon, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "failed to retrieve coupon", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}
