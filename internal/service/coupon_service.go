package service

import (
	"context"
	"strings"

	"salon-admin/internal/model"

	"github.com/rs/zerolog"
)

// couponService implements CouponService on top of the coupon book.
type couponService struct {
	book   CouponBook
	logger zerolog.Logger
}

// NewCouponService creates a new coupon service.
func NewCouponService(book CouponBook, logger zerolog.Logger) CouponService {
	return &couponService{
		book:   book,
		logger: logger.With().Str("service", "coupon").Logger(),
	}
}

// Search returns the active coupons matching query.
func (s *couponService) Search(query string) []model.Coupon {
	return s.book.Search(strings.TrimSpace(query))
}

// Validate returns the active coupon with the given code.
func (s *couponService) Validate(ctx context.Context, code string) (*model.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, model.ErrInvalidCoupon
	}

	c := s.book.ValidateCode(ctx, code)
	if c == nil {
		s.logger.Debug().Str("code", code).Msg("coupon code rejected")
		return nil, model.ErrInvalidCoupon
	}
	return c, nil
}

// GetByID returns the coupon with the given id, active or not.
func (s *couponService) GetByID(ctx context.Context, id string) (*model.Coupon, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, model.ErrNotFound
	}

	c := s.book.GetByID(ctx, id)
	if c == nil {
		s.logger.Debug().Str("coupon_id", id).Msg("coupon not found")
		return nil, model.ErrNotFound
	}
	return c, nil
}
