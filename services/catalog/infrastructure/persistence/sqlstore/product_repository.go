package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/orderdesk/pkg/database"
	catalogdomain "github.com/ghuser/orderdesk/services/catalog/domain"
	"github.com/ghuser/orderdesk/services/catalog/domain/models"
	"github.com/ghuser/orderdesk/services/catalog/infrastructure/persistence/sqlstore/db"
)

// ProductRepository implements repositories.ProductRepository against PostgreSQL or SQLite.
type ProductRepository struct {
	db *database.Database
}

// NewProductRepository returns a ProductRepository backed by the given database.
func NewProductRepository(database *database.Database) *ProductRepository {
	return &ProductRepository{db: database}
}

// Save inserts p and assigns the generated ID.
func (r *ProductRepository) Save(ctx context.Context, p *models.Product) error {
	id, err := db.New(r.db.Conn()).InsertProduct(ctx, db.InsertProductParams{
		Name:      p.Name.String(),
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	p.ID = id
	return nil
}

// GetByID retrieves a Product by ID. Returns ErrProductNotFound if not found.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	row, err := db.New(r.db.Conn()).GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return rowToProduct(row), nil
}

// List returns every product ordered by name.
func (r *ProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	rows, err := db.New(r.db.Conn()).ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	products := make([]*models.Product, len(rows))
	for i, row := range rows {
		products[i] = rowToProduct(row)
	}
	return products, nil
}

// Update persists name and price changes to an existing Product.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	n, err := db.New(r.db.Conn()).UpdateProduct(ctx, db.UpdateProductParams{
		ID:        p.ID,
		Name:      p.Name.String(),
		Price:     p.Price,
		UpdatedAt: p.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if n == 0 {
		return catalogdomain.ErrProductNotFound
	}
	return nil
}

// Delete removes a product. Order lines reference products with ON DELETE
// RESTRICT, so a product that has been ordered cannot be removed.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	n, err := db.New(r.db.Conn()).DeleteProduct(ctx, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return catalogdomain.ErrProductInUse
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if n == 0 {
		return catalogdomain.ErrProductNotFound
	}
	return nil
}

// rowToProduct maps a db.CatalogProduct to a domain models.Product.
func rowToProduct(row db.CatalogProduct) *models.Product {
	return &models.Product{
		ID:        row.ID,
		Name:      models.ProductName(row.Name),
		Price:     row.Price,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
