package repositories

import (
	"context"

	"github.com/ghuser/orderdesk/services/catalog/domain/models"
)

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ProductRepository interface {
	// Save inserts a new product and sets its ID.
	Save(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)

	// List returns every product ordered by name.
	List(ctx context.Context) ([]*models.Product, error)

	// Update persists name and price changes. Returns ErrProductNotFound if absent.
	Update(ctx context.Context, p *models.Product) error

	// Delete removes a product. Returns ErrProductNotFound if absent and
	// ErrProductInUse if an order line still references it.
	Delete(ctx context.Context, id int64) error
}
