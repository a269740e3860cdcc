package model

// ItemType distinguishes service and package checkout items.
type ItemType string

const (
	ItemService ItemType = "service"
	ItemPackage ItemType = "package"
)

// CheckoutItem is a display-ready line item built from the current selection.
// It is derived per request and never persisted as-is.
type CheckoutItem struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Price             float64           `json:"price"`
	AdjustedPrice     float64           `json:"adjustedPrice"`
	Duration          int               `json:"duration"`
	Type              ItemType          `json:"type"`
	PackageID         *string           `json:"packageId"`
	Stylist           string            `json:"stylist"`
	StylistName       string            `json:"stylistName"`
	Time              string            `json:"time"`
	FormattedDuration string            `json:"formattedDuration"`
	Services          []CheckoutService `json:"services,omitempty"`
}

// CheckoutService is one constituent service of a package checkout item.
type CheckoutService struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	AdjustedPrice float64 `json:"adjustedPrice"`
	Duration      int     `json:"duration"`
	Stylist       string  `json:"stylist"`
	StylistName   string  `json:"stylistName"`
	Time          string  `json:"time"`
	IsCustomized  bool    `json:"isCustomized"`
}

// QuoteRequest carries the checkout selection state.
type QuoteRequest struct {
	SelectedServices   []string            `json:"selectedServices"`
	SelectedPackages   []string            `json:"selectedPackages"`
	SelectedStylists   map[string]string   `json:"selectedStylists"`
	SelectedTimeSlots  map[string]string   `json:"selectedTimeSlots"`
	CustomizedServices map[string][]string `json:"customizedServices"`
	MembershipID       *string             `json:"membershipId,omitempty"`
	CouponCode         *string             `json:"couponCode,omitempty"`
}

// Quote is the priced result of a checkout selection.
type Quote struct {
	Items            []CheckoutItem `json:"items"`
	Subtotal         float64        `json:"subtotal"`
	AdjustedSubtotal float64        `json:"adjustedSubtotal"`
	MembershipSaving float64        `json:"membershipSaving"`
	CouponDiscount   float64        `json:"couponDiscount"`
	Total            float64        `json:"total"`
	TotalDuration    int            `json:"totalDuration"`
	Membership       *Membership    `json:"membership,omitempty"`
	Coupon           *Coupon        `json:"coupon,omitempty"`
}
