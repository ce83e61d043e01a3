package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

const insertOrder = `
INSERT INTO orders (customer_name, order_date, total_amount, notes)
VALUES (?, ?, ?, ?)
RETURNING id`

type InsertOrderParams struct {
	CustomerName string
	OrderDate    time.Time
	TotalAmount  decimal.Decimal
	Notes        sql.NullString
}

func (q *Queries) InsertOrder(ctx context.Context, arg InsertOrderParams) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, insertOrder,
		arg.CustomerName, arg.OrderDate, arg.TotalAmount.StringFixed(2), arg.Notes,
	).Scan(&id)
	return id, err
}

const insertOrderLine = `
INSERT INTO order_lines (order_id, position, product_id, quantity, unit_price, subtotal)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id`

type InsertOrderLineParams struct {
	OrderID   int64
	Position  int
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

func (q *Queries) InsertOrderLine(ctx context.Context, arg InsertOrderLineParams) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, insertOrderLine,
		arg.OrderID, arg.Position, arg.ProductID, arg.Quantity,
		arg.UnitPrice.StringFixed(2), arg.Subtotal.StringFixed(2),
	).Scan(&id)
	return id, err
}

const orderColumns = `id, customer_name, order_date, total_amount, notes`

const getOrder = `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`

func (q *Queries) GetOrder(ctx context.Context, id int64) (OrderHeader, error) {
	var o OrderHeader
	err := q.db.QueryRowContext(ctx, getOrder, id).
		Scan(&o.ID, &o.CustomerName, &o.OrderDate, &o.TotalAmount, &o.Notes)
	return o, err
}

const listOrders = `SELECT ` + orderColumns + ` FROM orders`

func (q *Queries) ListOrders(ctx context.Context) ([]OrderHeader, error) {
	rows, err := q.db.QueryContext(ctx, listOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderHeader
	for rows.Next() {
		var o OrderHeader
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.OrderDate, &o.TotalAmount, &o.Notes); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

const lineSelect = `
SELECT l.id, l.order_id, l.position, l.product_id, p.name, l.quantity, l.unit_price, l.subtotal
FROM order_lines l
LEFT JOIN products p ON p.id = l.product_id`

const listLinesByOrder = lineSelect + `
WHERE l.order_id = ?
ORDER BY l.position`

func (q *Queries) ListLinesByOrder(ctx context.Context, orderID int64) ([]OrderLineRow, error) {
	return q.queryLines(ctx, listLinesByOrder, orderID)
}

const listAllLines = lineSelect + `
ORDER BY l.order_id, l.position`

func (q *Queries) ListAllLines(ctx context.Context) ([]OrderLineRow, error) {
	return q.queryLines(ctx, listAllLines)
}

const countLinesByOrder = `SELECT COUNT(*) FROM order_lines WHERE order_id = ?`

func (q *Queries) CountLinesByOrder(ctx context.Context, orderID int64) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countLinesByOrder, orderID).Scan(&n)
	return n, err
}

func (q *Queries) queryLines(ctx context.Context, query string, args ...any) ([]OrderLineRow, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderLineRow
	for rows.Next() {
		var l OrderLineRow
		if err := rows.Scan(&l.ID, &l.OrderID, &l.Position, &l.ProductID, &l.ProductName,
			&l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

const updateOrder = `
UPDATE orders
SET customer_name = ?, total_amount = ?, notes = ?
WHERE id = ?`

type UpdateOrderParams struct {
	ID           int64
	CustomerName string
	TotalAmount  decimal.Decimal
	Notes        sql.NullString
}

// UpdateOrder returns the number of affected rows. order_date is never rewritten.
func (q *Queries) UpdateOrder(ctx context.Context, arg UpdateOrderParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateOrder, arg.CustomerName, arg.TotalAmount.StringFixed(2), arg.Notes, arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteLinesByOrder = `DELETE FROM order_lines WHERE order_id = ?`

func (q *Queries) DeleteLinesByOrder(ctx context.Context, orderID int64) error {
	_, err := q.db.ExecContext(ctx, deleteLinesByOrder, orderID)
	return err
}

const deleteOrder = `DELETE FROM orders WHERE id = ?`

// DeleteOrder returns the number of affected rows.
func (q *Queries) DeleteOrder(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteOrder, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
