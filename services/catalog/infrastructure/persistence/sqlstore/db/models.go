package db

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogProduct mirrors a row of the products table.
type CatalogProduct struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
