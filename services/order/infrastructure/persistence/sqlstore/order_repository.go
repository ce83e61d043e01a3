package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/orderdesk/pkg/database"
	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
	"github.com/ghuser/orderdesk/services/order/domain/models"
	"github.com/ghuser/orderdesk/services/order/infrastructure/persistence/sqlstore/db"
)

// OrderRepository implements repositories.OrderRepository. Orders and lines
// live in separate tables; lines carry a plain order_id and aggregates are
// assembled on read.
type OrderRepository struct {
	db *database.Database
}

// NewOrderRepository returns an OrderRepository backed by the given database.
func NewOrderRepository(database *database.Database) *OrderRepository {
	return &OrderRepository{db: database}
}

// Create inserts the order header and every line in one transaction and
// assigns the generated IDs. Any failure rolls back and wraps ErrPersistence.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) (int64, error) {
	var (
		orderID int64
		lineIDs = make([]int64, len(order.Lines))
	)

	err := r.db.WithTx(ctx, func(tx database.DBTX) error {
		q := db.New(tx)

		id, err := q.InsertOrder(ctx, db.InsertOrderParams{
			CustomerName: order.CustomerName,
			OrderDate:    order.OrderDate.UTC(),
			TotalAmount:  order.TotalAmount,
			Notes:        notesToNull(order.Notes),
		})
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		if err := insertLines(ctx, q, id, order.Lines, lineIDs); err != nil {
			return err
		}
		orderID = id
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", orderdomain.ErrPersistence, err)
	}

	order.ID = orderID
	for i := range order.Lines {
		order.Lines[i].ID = lineIDs[i]
		order.Lines[i].OrderID = orderID
	}
	return orderID, nil
}

// GetByID returns the order with its lines in entry order.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	q := db.New(r.db.Conn())

	header, err := q.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, orderdomain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("query order: %w", err)
	}

	lines, err := q.ListLinesByOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("query order lines: %w", err)
	}

	order := headerToOrder(header)
	for _, l := range lines {
		order.Lines = append(order.Lines, rowToLine(l))
	}
	return order, nil
}

// List returns every order with its lines, grouping line rows by order_id.
func (r *OrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	q := db.New(r.db.Conn())

	headers, err := q.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	lines, err := q.ListAllLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("query order lines: %w", err)
	}

	byOrder := make(map[int64][]models.OrderLine, len(headers))
	for _, l := range lines {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], rowToLine(l))
	}

	orders := make([]*models.Order, len(headers))
	for i, h := range headers {
		o := headerToOrder(h)
		o.Lines = byOrder[h.ID]
		orders[i] = o
	}
	return orders, nil
}

// Replace updates the header and swaps every line in one transaction.
// The stored order_date is kept.
func (r *OrderRepository) Replace(ctx context.Context, order *models.Order) error {
	lineIDs := make([]int64, len(order.Lines))

	err := r.db.WithTx(ctx, func(tx database.DBTX) error {
		q := db.New(tx)

		n, err := q.UpdateOrder(ctx, db.UpdateOrderParams{
			ID:           order.ID,
			CustomerName: order.CustomerName,
			TotalAmount:  order.TotalAmount,
			Notes:        notesToNull(order.Notes),
		})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		if n == 0 {
			return orderdomain.ErrOrderNotFound
		}

		if err := q.DeleteLinesByOrder(ctx, order.ID); err != nil {
			return fmt.Errorf("delete order lines: %w", err)
		}
		return insertLines(ctx, q, order.ID, order.Lines, lineIDs)
	})
	if err != nil {
		if errors.Is(err, orderdomain.ErrOrderNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", orderdomain.ErrPersistence, err)
	}

	for i := range order.Lines {
		order.Lines[i].ID = lineIDs[i]
		order.Lines[i].OrderID = order.ID
	}
	return nil
}

// Delete removes the lines and then the order in one transaction. A missing
// order rolls the transaction back and returns ErrOrderNotFound.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithTx(ctx, func(tx database.DBTX) error {
		q := db.New(tx)
		if err := q.DeleteLinesByOrder(ctx, id); err != nil {
			return fmt.Errorf("delete order lines: %w", err)
		}
		n, err := q.DeleteOrder(ctx, id)
		if err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		if n == 0 {
			return orderdomain.ErrOrderNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, orderdomain.ErrOrderNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", orderdomain.ErrPersistence, err)
	}
	return nil
}

func insertLines(ctx context.Context, q *db.Queries, orderID int64, lines []models.OrderLine, ids []int64) error {
	for i, l := range lines {
		id, err := q.InsertOrderLine(ctx, db.InsertOrderLineParams{
			OrderID:   orderID,
			Position:  i,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal,
		})
		if err != nil {
			return fmt.Errorf("insert order line %d: %w", i, err)
		}
		ids[i] = id
	}
	return nil
}

func notesToNull(notes string) sql.NullString {
	return sql.NullString{String: notes, Valid: notes != ""}
}

func headerToOrder(h db.OrderHeader) *models.Order {
	return &models.Order{
		ID:           h.ID,
		CustomerName: h.CustomerName,
		OrderDate:    h.OrderDate.UTC(),
		TotalAmount:  h.TotalAmount,
		Notes:        h.Notes.String,
	}
}

func rowToLine(l db.OrderLineRow) models.OrderLine {
	name := models.UnknownProductName
	if l.ProductName.Valid {
		name = l.ProductName.String
	}
	return models.OrderLine{
		ID:          l.ID,
		OrderID:     l.OrderID,
		ProductID:   l.ProductID,
		ProductName: name,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		Subtotal:    l.Subtotal,
	}
}
