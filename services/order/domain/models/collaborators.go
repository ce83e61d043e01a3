package models

import "github.com/shopspring/decimal"

// CatalogProduct is the order context's read-only view of a catalog product.
type CatalogProduct struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

// Customer is the order context's read-only view of a directory user.
type Customer struct {
	ID          string
	DisplayName string
	Email       string
}
