package coupon

import (
	"context"

	"salon-admin/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockSource is a mock implementation of Source.
type MockSource struct {
	mock.Mock
}

func (m *MockSource) Load(ctx context.Context) ([]model.Coupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Coupon), args.Error(1)
}

// MockFinder is a mock implementation of Finder.
type MockFinder struct {
	mock.Mock
}

func (m *MockFinder) FindByID(ctx context.Context, id string) (*model.Coupon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coupon), args.Error(1)
}

func (m *MockFinder) FindActiveByCode(ctx context.Context, code string) (*model.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coupon), args.Error(1)
}

func sampleCoupons() []model.Coupon {
	return []model.Coupon{
		{ID: "c1", Code: "FALL10", DiscountType: model.DiscountPercentage, DiscountValue: 10, Description: "Autumn promo", IsActive: true, ApplyToAll: true},
		{ID: "c2", Code: "WELCOME", DiscountType: model.DiscountFixed, DiscountValue: 25, Description: "First visit", IsActive: true, ApplyToAll: true},
	}
}
