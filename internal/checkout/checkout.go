// Package checkout merges a checkout selection with the catalog into line items.
package checkout

import (
	"salon-admin/internal/model"
	"salon-admin/internal/pricing"
	"salon-admin/internal/schedule"
)

// Selection is the checkout state chosen in the console.
type Selection struct {
	Services []string
	Packages []string

	// Stylists and TimeSlots are keyed by service id.
	Stylists  map[string]string
	TimeSlots map[string]string

	// Customizations maps a package id to extra service ids added to it.
	Customizations map[string][]string
}

// SelectionFromRequest copies the selection fields of a quote request.
func SelectionFromRequest(req *model.QuoteRequest) Selection {
	return Selection{
		Services:       req.SelectedServices,
		Packages:       req.SelectedPackages,
		Stylists:       req.SelectedStylists,
		TimeSlots:      req.SelectedTimeSlots,
		Customizations: req.CustomizedServices,
	}
}

// Catalog is the reference data the selection is resolved against.
type Catalog struct {
	Services []model.Service
	Packages []model.Package
}

// StylistNameFunc resolves a stylist id to a display name.
type StylistNameFunc func(stylistID string) (string, bool)

// DurationFunc formats a duration in minutes for display.
type DurationFunc func(minutes int) string

// Options are the capabilities injected into BuildItems.
// Nil fields fall back to identity pricing, no stylist names and schedule.FormatDuration.
// A nil PackagePrice prices package constituents with Price.
type Options struct {
	Price          pricing.PriceFunc
	PackagePrice   pricing.PackagePriceFunc
	StylistName    StylistNameFunc
	FormatDuration DurationFunc
}

func (o Options) withDefaults(services map[string]model.Service) Options {
	if o.Price == nil {
		o.Price = func(serviceID string) float64 {
			return services[serviceID].SellingPrice
		}
	}
	if o.PackagePrice == nil {
		price := o.Price
		o.PackagePrice = func(_, serviceID string) float64 {
			return price(serviceID)
		}
	}
	if o.StylistName == nil {
		o.StylistName = func(string) (string, bool) { return "", false }
	}
	if o.FormatDuration == nil {
		o.FormatDuration = schedule.FormatDuration
	}
	return o
}

// BuildItems turns the selection into checkout items: selected services first,
// then selected packages, each in selection order. Ids missing from the catalog
// are left out. BuildItems performs no I/O and returns the same items for the
// same arguments.
func BuildItems(sel Selection, catalog Catalog, opts Options) []model.CheckoutItem {
	services := make(map[string]model.Service, len(catalog.Services))
	for _, s := range catalog.Services {
		services[s.ID] = s
	}
	packages := make(map[string]*model.Package, len(catalog.Packages))
	for i := range catalog.Packages {
		packages[catalog.Packages[i].ID] = &catalog.Packages[i]
	}

	b := &builder{
		sel:      sel,
		opts:     opts.withDefaults(services),
		services: services,
		catalog:  catalog.Services,
	}

	items := make([]model.CheckoutItem, 0, len(sel.Services)+len(sel.Packages))
	for _, id := range sel.Services {
		if item, ok := b.serviceItem(id); ok {
			items = append(items, item)
		}
	}
	for _, id := range sel.Packages {
		pkg, ok := packages[id]
		if !ok {
			continue
		}
		items = append(items, b.packageItem(pkg))
	}

	return items
}

type builder struct {
	sel      Selection
	opts     Options
	services map[string]model.Service
	catalog  []model.Service
}

func (b *builder) serviceItem(id string) (model.CheckoutItem, bool) {
	service, ok := b.services[id]
	if !ok {
		return model.CheckoutItem{}, false
	}

	stylist, stylistName := b.stylist(id)
	return model.CheckoutItem{
		ID:                id,
		Name:              service.Name,
		Price:             service.SellingPrice,
		AdjustedPrice:     b.opts.Price(id),
		Duration:          service.Duration,
		Type:              model.ItemService,
		Stylist:           stylist,
		StylistName:       stylistName,
		Time:              b.sel.TimeSlots[id],
		FormattedDuration: b.opts.FormatDuration(service.Duration),
	}, true
}

func (b *builder) packageItem(pkg *model.Package) model.CheckoutItem {
	constituents := make([]model.CheckoutService, 0, len(pkg.PackageServices))
	for _, ps := range pkg.PackageServices {
		constituents = append(constituents, b.constituent(pkg.ID, ps.Service, ps.Price(), false))
	}

	customized := b.sel.Customizations[pkg.ID]
	if pkg.IsCustomizable {
		for _, id := range pricing.ExtraServiceIDs(pkg, customized) {
			service, ok := b.services[id]
			if !ok {
				continue
			}
			constituents = append(constituents, b.constituent(pkg.ID, service, service.SellingPrice, true))
		}
	}

	duration := 0
	rawServicesTotal := 0.0
	adjusted := make([]float64, len(constituents))
	for i, c := range constituents {
		duration += c.Duration
		// The baseline is the catalog price, not the package override price.
		rawServicesTotal += b.services[c.ID].SellingPrice
		adjusted[i] = c.AdjustedPrice
	}

	packageTotal := pricing.ResolvePackagePrice(pkg, customized, b.catalog)

	return model.CheckoutItem{
		ID:                pkg.ID,
		Name:              pkg.Name,
		Price:             packageTotal,
		AdjustedPrice:     pricing.AdjustedPackagePrice(adjusted, packageTotal, rawServicesTotal),
		Duration:          duration,
		Type:              model.ItemPackage,
		FormattedDuration: b.opts.FormatDuration(duration),
		Services:          constituents,
	}
}

func (b *builder) constituent(packageID string, service model.Service, price float64, customized bool) model.CheckoutService {
	stylist, stylistName := b.stylist(service.ID)
	return model.CheckoutService{
		ID:            service.ID,
		Name:          service.Name,
		Price:         price,
		AdjustedPrice: b.opts.PackagePrice(packageID, service.ID),
		Duration:      service.Duration,
		Stylist:       stylist,
		StylistName:   stylistName,
		Time:          b.sel.TimeSlots[service.ID],
		IsCustomized:  customized,
	}
}

func (b *builder) stylist(serviceID string) (string, string) {
	stylist := b.sel.Stylists[serviceID]
	if stylist == "" {
		return "", ""
	}
	name, _ := b.opts.StylistName(stylist)
	return stylist, name
}
