package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownProductName is shown for lines whose product is no longer in the catalog.
const UnknownProductName = "Unknown Product"

// Order is the aggregate root for the order bounded context.
// Invariant: TotalAmount equals the sum of every line's Subtotal.
type Order struct {
	ID           int64 // zero until created
	CustomerName string
	OrderDate    time.Time
	TotalAmount  decimal.Decimal
	Notes        string // empty when none
	Lines        []OrderLine
}

// OrderLine belongs to exactly one Order. OrderID is a plain value, not a reference.
type OrderLine struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string // read side only
	Quantity    int
	UnitPrice   decimal.Decimal // snapshot taken when the line was built
	Subtotal    decimal.Decimal
}

// LineRequest is one raw {productId, quantity} pair from a client.
type LineRequest struct {
	ProductID int64
	Quantity  int
}

// TotalItems sums the quantity of every line.
func (o *Order) TotalItems() int {
	n := 0
	for _, l := range o.Lines {
		n += l.Quantity
	}
	return n
}

// SumSubtotals returns the exact decimal sum of the line subtotals.
func (o *Order) SumSubtotals() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.Subtotal)
	}
	return total
}
