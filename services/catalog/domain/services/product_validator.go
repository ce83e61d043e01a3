// Package services contains stateless domain services for the catalog bounded context.
package services

import (
	"fmt"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/services/catalog/domain/models"
)

var (
	minPrice = decimal.RequireFromString("0.01")
	// NUMERIC(12,2) upper bound.
	maxPrice = decimal.RequireFromString("9999999999.99")
)

// ValidatePrice enforces the catalog pricing rules:
//   - at least 0.01
//   - at most two decimal places
//   - fits NUMERIC(12,2)
func ValidatePrice(price decimal.Decimal) error {
	if price.LessThan(minPrice) {
		return fmt.Errorf("price must be at least %s", minPrice.StringFixed(2))
	}
	if !price.Equal(price.Truncate(2)) {
		return fmt.Errorf("price must have at most 2 decimal places")
	}
	if price.GreaterThan(maxPrice) {
		return fmt.Errorf("price must not exceed %s", maxPrice.StringFixed(2))
	}
	return nil
}

// ValidateName rejects control characters; length rules live in models.NewProductName.
func ValidateName(name models.ProductName) error {
	for _, r := range name.String() {
		if unicode.IsControl(r) {
			return fmt.Errorf("product name must not contain control characters")
		}
	}
	return nil
}

// ValidateProduct performs the full rule set on a product before it is persisted.
func ValidateProduct(p *models.Product) error {
	if p == nil {
		return fmt.Errorf("product cannot be nil")
	}
	if err := ValidateName(p.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	if err := ValidatePrice(p.Price); err != nil {
		return fmt.Errorf("invalid price: %w", err)
	}
	return nil
}
