package db

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// OrderHeader mirrors a row of the orders table.
type OrderHeader struct {
	ID           int64
	CustomerName string
	OrderDate    time.Time
	TotalAmount  decimal.Decimal
	Notes        sql.NullString
}

// OrderLineRow mirrors a row of order_lines joined with the product name.
type OrderLineRow struct {
	ID          int64
	OrderID     int64
	Position    int
	ProductID   int64
	ProductName sql.NullString
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
