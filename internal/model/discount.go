package model

// DiscountType is how a coupon or membership discount is computed.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Valid reports whether d is a known discount type.
func (d DiscountType) Valid() bool {
	return d == DiscountPercentage || d == DiscountFixed
}

// Coupon is a discount code redeemable at checkout.
type Coupon struct {
	ID            string       `json:"id" db:"id"`
	Code          string       `json:"code" db:"code"`
	DiscountType  DiscountType `json:"discount_type" db:"discount_type"`
	DiscountValue float64      `json:"discount_value" db:"discount_value"`
	Description   string       `json:"description,omitempty" db:"description"`
	IsActive      bool         `json:"is_active" db:"is_active"`
	ApplyToAll    bool         `json:"apply_to_all" db:"apply_to_all"`
}

// ValidityUnit is the unit of a membership validity period.
type ValidityUnit string

const (
	ValidityDays   ValidityUnit = "days"
	ValidityMonths ValidityUnit = "months"
)

// Membership grants a discount on applicable services and packages.
// An empty ApplicableServices and ApplicablePackages means it applies to everything.
type Membership struct {
	ID                 string       `json:"id" db:"id"`
	Name               string       `json:"name" db:"name"`
	Description        string       `json:"description,omitempty" db:"description"`
	ValidityPeriod     int          `json:"validity_period" db:"validity_period"`
	ValidityUnit       ValidityUnit `json:"validity_unit" db:"validity_unit"`
	DiscountType       DiscountType `json:"discount_type" db:"discount_type"`
	DiscountValue      float64      `json:"discount_value" db:"discount_value"`
	MaxDiscountValue   *float64     `json:"max_discount_value,omitempty" db:"max_discount_value"`
	MinBillingAmount   *float64     `json:"min_billing_amount,omitempty" db:"min_billing_amount"`
	ApplicableServices []string     `json:"applicable_services" db:"applicable_services"`
	ApplicablePackages []string     `json:"applicable_packages" db:"applicable_packages"`
}

// ApplyToAll reports whether the membership is not restricted to explicit services or packages.
func (m *Membership) ApplyToAll() bool {
	return len(m.ApplicableServices) == 0 && len(m.ApplicablePackages) == 0
}

// AppliesToService reports whether the membership discounts the given service.
func (m *Membership) AppliesToService(serviceID string) bool {
	if m.ApplyToAll() {
		return true
	}
	return contains(m.ApplicableServices, serviceID)
}

// AppliesToPackage reports whether the membership discounts the given package.
func (m *Membership) AppliesToPackage(packageID string) bool {
	if m.ApplyToAll() {
		return true
	}
	return contains(m.ApplicablePackages, packageID)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
