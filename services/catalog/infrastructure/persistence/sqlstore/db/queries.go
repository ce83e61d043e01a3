package db

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const insertProduct = `
INSERT INTO products (name, price, created_at, updated_at)
VALUES (?, ?, ?, ?)
RETURNING id`

type InsertProductParams struct {
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) InsertProduct(ctx context.Context, arg InsertProductParams) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, insertProduct,
		arg.Name, arg.Price.StringFixed(2), arg.CreatedAt, arg.UpdatedAt,
	).Scan(&id)
	return id, err
}

const getProductByID = `
SELECT id, name, price, created_at, updated_at
FROM products
WHERE id = ?`

func (q *Queries) GetProductByID(ctx context.Context, id int64) (CatalogProduct, error) {
	var p CatalogProduct
	err := q.db.QueryRowContext(ctx, getProductByID, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const listProducts = `
SELECT id, name, price, created_at, updated_at
FROM products
ORDER BY name, id`

func (q *Queries) ListProducts(ctx context.Context) ([]CatalogProduct, error) {
	rows, err := q.db.QueryContext(ctx, listProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []CatalogProduct
	for rows.Next() {
		var p CatalogProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const updateProduct = `
UPDATE products
SET name = ?, price = ?, updated_at = ?
WHERE id = ?`

type UpdateProductParams struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	UpdatedAt time.Time
}

// UpdateProduct returns the number of affected rows.
func (q *Queries) UpdateProduct(ctx context.Context, arg UpdateProductParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateProduct, arg.Name, arg.Price.StringFixed(2), arg.UpdatedAt, arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteProduct = `DELETE FROM products WHERE id = ?`

// DeleteProduct returns the number of affected rows.
func (q *Queries) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteProduct, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
