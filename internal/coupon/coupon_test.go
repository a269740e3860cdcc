package coupon

import (
	"testing"

	"salon-admin/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	coupons := append(sampleCoupons(), model.Coupon{ID: "c3", Code: "VIP", IsActive: true})

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "Empty query returns all", query: "", expected: []string{"FALL10", "WELCOME", "VIP"}},
		{name: "Matches code ignoring case", query: "fall", expected: []string{"FALL10"}},
		{name: "Matches description", query: "VISIT", expected: []string{"WELCOME"}},
		{name: "No matches", query: "winter", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(coupons, tt.query)
			codes := make([]string, 0, len(got))
			for _, c := range got {
				codes = append(codes, c.Code)
			}
			assert.Equal(t, tt.expected, codes)
		})
	}
}

func TestActiveByCode(t *testing.T) {
	coupons := []model.Coupon{
		{Code: "ZED", IsActive: true},
		{Code: "OLD", IsActive: false},
		{Code: "ABC", IsActive: true},
	}

	got := activeByCode(coupons)

	assert.Len(t, got, 2)
	assert.Equal(t, "ABC", got[0].Code)
	assert.Equal(t, "ZED", got[1].Code)
}
