// Package pricing holds the pure price and discount calculations used at checkout.
package pricing

import (
	"math"

	"salon-admin/internal/model"
)

// CalculateDiscount returns the discount of the given kind and value on subtotal.
// A fixed discount never exceeds the subtotal. Unknown kinds discount nothing.
func CalculateDiscount(kind model.DiscountType, value, subtotal float64) float64 {
	switch kind {
	case model.DiscountPercentage:
		return subtotal * value / 100
	case model.DiscountFixed:
		return math.Min(value, subtotal)
	default:
		return 0
	}
}

// CouponDiscount returns the discount coupon grants on subtotal.
func CouponDiscount(coupon *model.Coupon, subtotal float64) float64 {
	if coupon == nil {
		return 0
	}
	return CalculateDiscount(coupon.DiscountType, coupon.DiscountValue, subtotal)
}

// MembershipDiscount returns the discount membership grants on amount,
// capped by its maximum discount value when one is set.
func MembershipDiscount(membership *model.Membership, amount float64) float64 {
	if membership == nil {
		return 0
	}
	discount := CalculateDiscount(membership.DiscountType, membership.DiscountValue, amount)
	if membership.MaxDiscountValue != nil && discount > *membership.MaxDiscountValue {
		discount = *membership.MaxDiscountValue
	}
	return discount
}

// MembershipEligible reports whether subtotal meets the membership's minimum billing amount.
func MembershipEligible(membership *model.Membership, subtotal float64) bool {
	if membership == nil {
		return false
	}
	if membership.MinBillingAmount == nil {
		return true
	}
	return subtotal >= *membership.MinBillingAmount
}

// MembershipSavingLimit caps the total membership saving of one bill at the
// membership's maximum discount value. It reports false when no cap is set.
func MembershipSavingLimit(membership *model.Membership, saving float64) (float64, bool) {
	if membership == nil || membership.MaxDiscountValue == nil || saving <= *membership.MaxDiscountValue {
		return saving, false
	}
	return *membership.MaxDiscountValue, true
}
