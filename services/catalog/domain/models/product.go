package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the aggregate for the catalog bounded context.
// ID is zero until the product has been saved.
type Product struct {
	ID        int64
	Name      ProductName
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProduct constructs an unsaved Product stamped with the current time.
func NewProduct(name ProductName, price decimal.Decimal) *Product {
	now := time.Now().UTC()
	return &Product{
		Name:      name,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Revise replaces the name and price and bumps UpdatedAt.
func (p *Product) Revise(name ProductName, price decimal.Decimal) {
	p.Name = name
	p.Price = price
	p.UpdatedAt = time.Now().UTC()
}
