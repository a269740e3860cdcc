package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"salon-admin/internal/checkout"
	"salon-admin/internal/model"
	"salon-admin/internal/pricing"
	"salon-admin/internal/repository"

	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	catalogRepo    repository.CatalogRepository
	membershipRepo repository.MembershipRepository
	coupons        CouponBook
	logger         zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	catalogRepo repository.CatalogRepository,
	membershipRepo repository.MembershipRepository,
	coupons CouponBook,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		catalogRepo:    catalogRepo,
		membershipRepo: membershipRepo,
		coupons:        coupons,
		logger:         logger.With().Str("service", "checkout").Logger(),
	}
}

// Quote builds the checkout items of req and applies membership and coupon discounts.
//
// The membership adjusts per-service prices when the raw subtotal reaches its
// minimum billing amount, and its maximum discount value caps the saving of the
// whole bill. The coupon is applied to the adjusted subtotal.
func (s *checkoutService) Quote(ctx context.Context, req *model.QuoteRequest) (*model.Quote, error) {
	if req == nil {
		return nil, fmt.Errorf("quote request is nil")
	}

	catalog, employees, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	membership, err := s.membership(ctx, req.MembershipID)
	if err != nil {
		return nil, err
	}

	coupon, err := s.coupon(ctx, req.CouponCode)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}
	opts := checkout.Options{
		StylistName: func(id string) (string, bool) {
			name, ok := names[id]
			return name, ok
		},
	}

	sel := checkout.SelectionFromRequest(req)
	items := checkout.BuildItems(sel, catalog, opts)
	totals := checkout.Sum(items)

	if membership != nil {
		if pricing.MembershipEligible(membership, totals.Subtotal) {
			pricer := pricing.NewMembershipPricer(membership, catalog.Services)
			opts.Price = pricer.Func()
			opts.PackagePrice = pricer.PackageFunc()
			items = checkout.BuildItems(sel, catalog, opts)
			totals = checkout.Sum(items)

			saving := totals.Subtotal - totals.AdjustedSubtotal
			if limit, capped := pricing.MembershipSavingLimit(membership, saving); capped {
				items = checkout.ScaleSavings(items, limit/saving)
				totals = checkout.Sum(items)
			}
		} else {
			s.logger.Debug().
				Str("membership_id", membership.ID).
				Float64("subtotal", totals.Subtotal).
				Msg("subtotal below membership minimum billing amount")
		}
	}

	couponDiscount := math.Min(pricing.CouponDiscount(coupon, totals.AdjustedSubtotal), totals.AdjustedSubtotal)

	quote := &model.Quote{
		Items:            items,
		Subtotal:         totals.Subtotal,
		AdjustedSubtotal: totals.AdjustedSubtotal,
		MembershipSaving: totals.Subtotal - totals.AdjustedSubtotal,
		CouponDiscount:   couponDiscount,
		Total:            totals.AdjustedSubtotal - couponDiscount,
		TotalDuration:    totals.Duration,
		Membership:       membership,
		Coupon:           coupon,
	}

	s.logger.Debug().
		Int("item_count", len(items)).
		Float64("subtotal", quote.Subtotal).
		Float64("total", quote.Total).
		Msg("quote built")

	return quote, nil
}

func (s *checkoutService) loadCatalog(ctx context.Context) (checkout.Catalog, []model.Employee, error) {
	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load services")
		return checkout.Catalog{}, nil, fmt.Errorf("failed to load services: %w", err)
	}

	packages, err := s.catalogRepo.ListPackages(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load packages")
		return checkout.Catalog{}, nil, fmt.Errorf("failed to load packages: %w", err)
	}

	employees, err := s.catalogRepo.ListEmployees(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load employees")
		return checkout.Catalog{}, nil, fmt.Errorf("failed to load employees: %w", err)
	}

	return checkout.Catalog{Services: services, Packages: packages}, employees, nil
}

func (s *checkoutService) membership(ctx context.Context, id *string) (*model.Membership, error) {
	if id == nil || *id == "" {
		return nil, nil
	}

	m, err := s.membershipRepo.GetByID(ctx, *id)
	if err != nil {
		s.logger.Error().Err(err).Str("membership_id", *id).Msg("failed to load membership")
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}
	if m == nil {
		s.logger.Warn().Str("membership_id", *id).Msg("membership not found")
		return nil, model.ErrMembershipNotFound
	}
	return m, nil
}

func (s *checkoutService) coupon(ctx context.Context, code *string) (*model.Coupon, error) {
	if code == nil || strings.TrimSpace(*code) == "" {
		return nil, nil
	}

	c := s.coupons.ValidateCode(ctx, *code)
	if c == nil {
		s.logger.Warn().Str("coupon_code", *code).Msg("invalid coupon code")
		return nil, model.ErrInvalidCoupon
	}
	return c, nil
}
