package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProduct indicates the product name or price violates domain constraints.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrProductInUse indicates the product is referenced by at least one order line.
	ErrProductInUse = errors.New("product is referenced by existing orders")
)
