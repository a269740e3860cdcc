package model

import "time"

// Service is a bookable salon service.
type Service struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	SellingPrice float64   `json:"selling_price" db:"selling_price"`
	Duration     int       `json:"duration" db:"duration"` // minutes
	CategoryID   string    `json:"category_id,omitempty" db:"category_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// PackageService links a package to one of its constituent services.
// PackageSellingPrice overrides the service price inside the package when set and non-zero.
type PackageService struct {
	ServiceID           string   `json:"service_id" db:"service_id"`
	PackageSellingPrice *float64 `json:"package_selling_price,omitempty" db:"package_selling_price"`
	Service             Service  `json:"service"`
}

// Price returns the price of the service inside the package.
func (ps PackageService) Price() float64 {
	if ps.PackageSellingPrice != nil && *ps.PackageSellingPrice != 0 {
		return *ps.PackageSellingPrice
	}
	return ps.Service.SellingPrice
}

// Package is a bundle of services sold at a package price.
type Package struct {
	ID              string           `json:"id" db:"id"`
	Name            string           `json:"name" db:"name"`
	Price           float64          `json:"price" db:"price"`
	IsCustomizable  bool             `json:"is_customizable" db:"is_customizable"`
	PackageServices []PackageService `json:"package_services"`
}

// HasService reports whether serviceID is one of the package's base services.
func (p *Package) HasService(serviceID string) bool {
	for _, ps := range p.PackageServices {
		if ps.ServiceID == serviceID {
			return true
		}
	}
	return false
}

// Employee is a stylist that can be assigned to a service.
type Employee struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
