package repositories

import (
	"context"

	"github.com/ghuser/orderdesk/services/order/domain/models"
)

// OrderRepository persists Order aggregates. Every write is all-or-nothing:
// an order and its lines are stored, replaced and removed together.
type OrderRepository interface {
	// Create stores the order and all its lines in one transaction and
	// returns the new ID. Failures wrap ErrPersistence.
	Create(ctx context.Context, order *models.Order) (int64, error)

	// GetByID returns ErrOrderNotFound if absent.
	GetByID(ctx context.Context, id int64) (*models.Order, error)

	// List returns every order with its lines. Ordering is the caller's concern.
	List(ctx context.Context) ([]*models.Order, error)

	// Replace overwrites the header and swaps every line. Returns ErrOrderNotFound if absent.
	Replace(ctx context.Context, order *models.Order) error

	// Delete removes the order and its lines. Returns ErrOrderNotFound if absent.
	Delete(ctx context.Context, id int64) error
}

// CatalogReader resolves products for order entry.
type CatalogReader interface {
	// FindProduct returns ErrProductNotFound when id is unknown.
	FindProduct(ctx context.Context, id int64) (models.CatalogProduct, error)
	ListProducts(ctx context.Context) ([]models.CatalogProduct, error)
}

// DirectoryReader resolves customers for order entry.
type DirectoryReader interface {
	// FindUser returns ErrCustomerNotFound when id is unknown.
	FindUser(ctx context.Context, id string) (models.Customer, error)
	ListUsers(ctx context.Context) ([]models.Customer, error)
}
