package pricing

import (
	"salon-admin/internal/model"
)

// PriceFunc returns the currently applicable display price of a service.
type PriceFunc func(serviceID string) float64

// PackagePriceFunc returns the display price of a service booked as part of a package.
type PackagePriceFunc func(packageID, serviceID string) float64

// MembershipPricer prices services after membership discounts.
type MembershipPricer struct {
	membership *model.Membership
	services   map[string]model.Service
}

// NewMembershipPricer creates a pricer over the service catalog.
// A nil membership prices every service at its catalog price.
func NewMembershipPricer(membership *model.Membership, services []model.Service) *MembershipPricer {
	return &MembershipPricer{
		membership: membership,
		services:   indexServices(services),
	}
}

// DisplayPrice returns the price of serviceID after any applicable membership discount.
// Services missing from the catalog are priced at zero.
func (p *MembershipPricer) DisplayPrice(serviceID string) float64 {
	service, ok := p.services[serviceID]
	if !ok {
		return 0
	}
	if p.membership == nil || !p.membership.AppliesToService(serviceID) {
		return service.SellingPrice
	}
	return service.SellingPrice - MembershipDiscount(p.membership, service.SellingPrice)
}

// PackageDisplayPrice returns the price of serviceID inside packageID. The
// membership discount applies when it covers either the package or the service.
func (p *MembershipPricer) PackageDisplayPrice(packageID, serviceID string) float64 {
	service, ok := p.services[serviceID]
	if !ok {
		return 0
	}
	if p.membership == nil ||
		(!p.membership.AppliesToPackage(packageID) && !p.membership.AppliesToService(serviceID)) {
		return service.SellingPrice
	}
	return service.SellingPrice - MembershipDiscount(p.membership, service.SellingPrice)
}

// Func exposes DisplayPrice as a PriceFunc.
func (p *MembershipPricer) Func() PriceFunc {
	return p.DisplayPrice
}

// PackageFunc exposes PackageDisplayPrice as a PackagePriceFunc.
func (p *MembershipPricer) PackageFunc() PackagePriceFunc {
	return p.PackageDisplayPrice
}
