package coupon

import (
	"context"
	"sort"
	"strings"

	"salon-admin/internal/model"
)

// Source loads the full list of active coupons.
type Source interface {
	// Load returns the active coupons ordered by code.
	Load(ctx context.Context) ([]model.Coupon, error)
}

// Finder looks up single coupons in durable storage.
type Finder interface {
	// FindByID returns the coupon with the given id, or nil if none exists.
	FindByID(ctx context.Context, id string) (*model.Coupon, error)

	// FindActiveByCode returns the active coupon with the given code, or nil if none exists.
	FindActiveByCode(ctx context.Context, code string) (*model.Coupon, error)
}

// Search returns the coupons whose code or description contains query, ignoring case.
// An empty query returns all coupons.
func Search(coupons []model.Coupon, query string) []model.Coupon {
	if query == "" {
		return coupons
	}
	q := strings.ToLower(query)

	matches := make([]model.Coupon, 0, len(coupons))
	for _, c := range coupons {
		if strings.Contains(strings.ToLower(c.Code), q) ||
			(c.Description != "" && strings.Contains(strings.ToLower(c.Description), q)) {
			matches = append(matches, c)
		}
	}
	return matches
}

// activeByCode keeps active coupons and orders them by code.
func activeByCode(coupons []model.Coupon) []model.Coupon {
	active := make([]model.Coupon, 0, len(coupons))
	for _, c := range coupons {
		if c.IsActive {
			active = append(active, c)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Code < active[j].Code
	})
	return active
}
