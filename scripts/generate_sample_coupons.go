//go:build ignore

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"salon-admin/internal/coupon"
	"salon-admin/internal/model"
)

// generateSampleCoupons writes a gzipped JSON-lines coupon snapshot for local runs
// with COUPON_SOURCE=snapshot. Only active coupons end up in the book, so the
// inactive entry exercises the filter.
func main() {
	dataDir := "data/coupons"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	coupons := []model.Coupon{
		{ID: "c-welcome", Code: "WELCOME", DiscountType: model.DiscountPercentage, DiscountValue: 10, Description: "10% off your first visit", IsActive: true, ApplyToAll: true},
		{ID: "c-fall", Code: "FALL25", DiscountType: model.DiscountFixed, DiscountValue: 25, Description: "$25 off any autumn booking", IsActive: true, ApplyToAll: true},
		{ID: "c-color", Code: "COLOR15", DiscountType: model.DiscountPercentage, DiscountValue: 15, Description: "15% off colour services", IsActive: true},
		{ID: "c-spring", Code: "SPRING2024", DiscountType: model.DiscountPercentage, DiscountValue: 20, Description: "Expired spring promotion", IsActive: false},
	}

	filePath := filepath.Join(dataDir, "active.jsonl.gz")
	if err := createSnapshot(filePath, coupons); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d coupons\n", filePath, len(coupons))
	fmt.Println("\nActive codes:")
	for _, c := range coupons {
		if c.IsActive {
			fmt.Printf("  - %-10s %s\n", c.Code, c.Description)
		}
	}
}

func createSnapshot(filePath string, coupons []model.Coupon) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := coupon.WriteSnapshot(file, coupons); err != nil {
		return fmt.Errorf("failed to write coupons: %w", err)
	}

	return file.Sync()
}
