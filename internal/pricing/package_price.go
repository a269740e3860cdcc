package pricing

import (
	"salon-admin/internal/model"
)

// ResolvePackagePrice returns the effective price of pkg.
//
// The stored package price is used unless the package is customizable and
// customizedServiceIDs adds at least one service outside the package. In that
// case the price is the sum over the resulting service set: base services at
// their package price, added services at their catalog price. Services missing
// from the catalog are left out of the sum.
func ResolvePackagePrice(pkg *model.Package, customizedServiceIDs []string, services []model.Service) float64 {
	if pkg == nil {
		return 0
	}

	added := ExtraServiceIDs(pkg, customizedServiceIDs)
	if !pkg.IsCustomizable || len(added) == 0 {
		return pkg.Price
	}

	catalog := indexServices(services)

	total := 0.0
	for _, ps := range pkg.PackageServices {
		if _, ok := catalog[ps.ServiceID]; !ok {
			continue
		}
		total += ps.Price()
	}
	for _, id := range added {
		if s, ok := catalog[id]; ok {
			total += s.SellingPrice
		}
	}

	return total
}

// ExtraServiceIDs returns the ids in customizedServiceIDs that are not base
// services of pkg, in order and without duplicates.
func ExtraServiceIDs(pkg *model.Package, customizedServiceIDs []string) []string {
	var extra []string
	seen := make(map[string]struct{}, len(customizedServiceIDs))
	for _, id := range customizedServiceIDs {
		if pkg.HasService(id) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		extra = append(extra, id)
	}
	return extra
}

// PackageDiscountRatio is the share of the undiscounted service total a package charges.
// A zero raw total yields 1 so no discount is applied.
func PackageDiscountRatio(packageTotal, rawServicesTotal float64) float64 {
	if rawServicesTotal > 0 {
		return packageTotal / rawServicesTotal
	}
	return 1
}

// AdjustedPackagePrice applies the package's discount ratio to the adjusted prices
// of its services, so ad-hoc service adjustments keep the package's original discount.
func AdjustedPackagePrice(adjustedPrices []float64, packageTotal, rawServicesTotal float64) float64 {
	ratio := PackageDiscountRatio(packageTotal, rawServicesTotal)
	total := 0.0
	for _, p := range adjustedPrices {
		total += p * ratio
	}
	return total
}

func indexServices(services []model.Service) map[string]model.Service {
	index := make(map[string]model.Service, len(services))
	for _, s := range services {
		index[s.ID] = s
	}
	return index
}
