package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salon-admin/internal/config"
	"salon-admin/internal/coupon"
	"salon-admin/internal/database"
	"salon-admin/internal/handler"
	"salon-admin/internal/repository"
	"salon-admin/internal/router"
	"salon-admin/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting salon admin API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(pool, logger)
	membershipRepo := repository.NewMembershipRepository(pool, logger)
	couponRepo := repository.NewCouponRepository(pool, logger)
	appointmentRepo := repository.NewAppointmentRepository(pool, logger)

	// Initialize coupon book and its scheduled refresh
	book := coupon.NewBook(couponSource(ctx, cfg, couponRepo, logger), couponRepo, logger)

	loadCtx, loadCancel := context.WithTimeout(ctx, cfg.Coupon.RefreshTimeoutDuration())
	if err := book.Refresh(loadCtx); err != nil {
		// The book keeps serving lookups through the repository until a refresh succeeds.
		logger.Warn().Err(err).Msg("initial coupon load failed")
	}
	loadCancel()

	refresher, err := coupon.NewRefresher(book, cfg.Coupon.RefreshSchedule, cfg.Coupon.RefreshTimeoutDuration(), logger)
	if err != nil {
		return fmt.Errorf("failed to initialize coupon refresher: %w", err)
	}
	refresher.Start()
	defer refresher.Stop()

	location := cfg.Business.Location()

	// Initialize services
	catalogService := service.NewCatalogService(catalogRepo, logger)
	membershipService := service.NewMembershipService(membershipRepo, logger)
	couponService := service.NewCouponService(book, logger)
	checkoutService := service.NewCheckoutService(catalogRepo, membershipRepo, book, logger)
	appointmentService := service.NewAppointmentService(appointmentRepo, location, logger)
	bookingService := service.NewBookingService(appointmentRepo, checkoutService, location, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Catalog:     handler.NewCatalogHandler(catalogService, logger),
		Membership:  handler.NewMembershipHandler(membershipService, logger),
		Coupon:      handler.NewCouponHandler(couponService, logger),
		Checkout:    handler.NewCheckoutHandler(checkoutService, logger),
		Appointment: handler.NewAppointmentHandler(appointmentService, bookingService, location, logger),
		Schedule:    handler.NewScheduleHandler(location, logger),
	}

	// Initialize router
	mux := router.New(handlers, router.Options{
		APIKey:         cfg.Auth.APIKey,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		CouponStatus:   book.LoadedAt,
	}, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("time_zone", location.String()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// couponSource picks where the coupon book loads its active list from.
// Snapshots are read from S3 when enabled, falling back to the local file.
func couponSource(ctx context.Context, cfg *config.Config, repo repository.CouponRepository, logger zerolog.Logger) coupon.Source {
	if cfg.Coupon.Source == config.CouponSourceDatabase {
		logger.Info().Msg("loading coupons from the database")
		return repo
	}

	fileSource := coupon.NewFileSource(cfg.Coupon.SnapshotPath, logger)
	if !cfg.S3.Enabled {
		logger.Info().Str("path", cfg.Coupon.SnapshotPath).Msg("loading coupons from local snapshot (S3 disabled)")
		return fileSource
	}

	s3Source, err := coupon.NewS3Source(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Key, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 coupon source, falling back to local snapshot only")
		return fileSource
	}
	return coupon.NewFallbackSource(s3Source, fileSource, logger)
}
