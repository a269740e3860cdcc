package router

import (
	"encoding/json"
	"net/http"
	"time"

	"salon-admin/internal/handler"
	"salon-admin/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Catalog     *handler.CatalogHandler
	Membership  *handler.MembershipHandler
	Coupon      *handler.CouponHandler
	Checkout    *handler.CheckoutHandler
	Appointment *handler.AppointmentHandler
	Schedule    *handler.ScheduleHandler
}

// Options configures the cross-cutting behaviour of the router.
type Options struct {
	APIKey         string
	AllowedOrigins []string
	RequestTimeout time.Duration

	// CouponStatus reports the last successful coupon refresh and the last refresh error.
	// When set, both are included in the health response.
	CouponStatus func() (time.Time, error)
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, opts Options, logger zerolog.Logger) http.Handler {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}

	r := chi.NewRouter()

	// Order: RequestID -> RealIP -> Recovery -> Logging -> CORS -> APIKeyAuth
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(opts.AllowedOrigins))
	r.Use(middleware.APIKeyAuth(opts.APIKey, logger))
	r.Use(chimiddleware.Timeout(opts.RequestTimeout))

	// Health check endpoint (no authentication required)
	r.Get("/health", health(opts.CouponStatus))

	r.Route("/api", func(r chi.Router) {
		r.Get("/services", h.Catalog.ListServices)
		r.Get("/packages", h.Catalog.ListPackages)
		r.Get("/employees", h.Catalog.ListEmployees)

		r.Get("/memberships", h.Membership.List)
		r.Get("/memberships/{id}", h.Membership.GetByID)

		r.Get("/coupons", h.Coupon.Search)
		r.Get("/coupons/validate/{code}", h.Coupon.Validate)
		r.Get("/coupons/{id}", h.Coupon.GetByID)

		r.Post("/checkout/quote", h.Checkout.Quote)

		r.Get("/appointments", h.Appointment.ListByDate)
		r.Post("/appointments", h.Appointment.Create)
		r.Get("/appointments/{id}", h.Appointment.GetByID)
		r.Get("/dashboard/today", h.Appointment.Today)

		r.Get("/schedule/grid", h.Schedule.Grid)
	})

	return r
}

// health reports liveness. A failed coupon refresh does not make the API
// unhealthy since the last-known coupons are still served.
func health(couponStatus func() (time.Time, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]string{"status": "healthy"}
		if couponStatus != nil {
			loadedAt, err := couponStatus()
			if !loadedAt.IsZero() {
				body["coupons_loaded_at"] = loadedAt.UTC().Format(time.RFC3339)
			}
			if err != nil {
				body["coupons_error"] = err.Error()
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(body)
	}
}
