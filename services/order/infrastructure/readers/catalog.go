// Package readers adapts the catalog and directory application services to
// the read-only ports the order context depends on.
package readers

import (
	"context"
	"errors"

	catalogdomain "github.com/ghuser/orderdesk/services/catalog/domain"
	catalogmodels "github.com/ghuser/orderdesk/services/catalog/domain/models"
	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
	"github.com/ghuser/orderdesk/services/order/domain/models"
)

// ProductSource is the subset of the catalog product service the order
// context reads from.
type ProductSource interface {
	GetByID(ctx context.Context, id int64) (*catalogmodels.Product, error)
	List(ctx context.Context) ([]*catalogmodels.Product, error)
}

// Catalog implements repositories.CatalogReader.
type Catalog struct {
	src ProductSource
}

func NewCatalog(src ProductSource) *Catalog {
	return &Catalog{src: src}
}

func (c *Catalog) FindProduct(ctx context.Context, id int64) (models.CatalogProduct, error) {
	p, err := c.src.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrProductNotFound) {
			return models.CatalogProduct{}, orderdomain.ErrProductNotFound
		}
		return models.CatalogProduct{}, err
	}
	return toCatalogProduct(p), nil
}

func (c *Catalog) ListProducts(ctx context.Context) ([]models.CatalogProduct, error) {
	products, err := c.src.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.CatalogProduct, len(products))
	for i, p := range products {
		out[i] = toCatalogProduct(p)
	}
	return out, nil
}

func toCatalogProduct(p *catalogmodels.Product) models.CatalogProduct {
	return models.CatalogProduct{ID: p.ID, Name: p.Name.String(), Price: p.Price}
}
