package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
	"github.com/ghuser/orderdesk/services/order/domain/models"
)

type fakeCatalog struct {
	products map[int64]models.CatalogProduct
	lookups  []int64
	err      error
}

func newFakeCatalog(products ...models.CatalogProduct) *fakeCatalog {
	c := &fakeCatalog{products: make(map[int64]models.CatalogProduct)}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

func (c *fakeCatalog) FindProduct(_ context.Context, id int64) (models.CatalogProduct, error) {
	c.lookups = append(c.lookups, id)
	if c.err != nil {
		return models.CatalogProduct{}, c.err
	}
	p, ok := c.products[id]
	if !ok {
		return models.CatalogProduct{}, orderdomain.ErrProductNotFound
	}
	return p, nil
}

func (c *fakeCatalog) ListProducts(context.Context) ([]models.CatalogProduct, error) {
	out := make([]models.CatalogProduct, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeDirectory struct {
	customers map[string]models.Customer
	err       error
}

func newFakeDirectory(customers ...models.Customer) *fakeDirectory {
	d := &fakeDirectory{customers: make(map[string]models.Customer)}
	for _, c := range customers {
		d.customers[c.ID] = c
	}
	return d
}

func (d *fakeDirectory) FindUser(_ context.Context, id string) (models.Customer, error) {
	if d.err != nil {
		return models.Customer{}, d.err
	}
	c, ok := d.customers[id]
	if !ok {
		return models.Customer{}, orderdomain.ErrCustomerNotFound
	}
	return c, nil
}

func (d *fakeDirectory) ListUsers(context.Context) ([]models.Customer, error) {
	out := make([]models.Customer, 0, len(d.customers))
	for _, c := range d.customers {
		out = append(out, c)
	}
	return out, nil
}

var (
	widget = models.CatalogProduct{ID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99")}
	gadget = models.CatalogProduct{ID: 2, Name: "Gadget", Price: decimal.RequireFromString("5.00")}
	alice  = models.Customer{ID: "alice", DisplayName: "  Alice Martin ", Email: "alice@example.com"}

	errBackend = errors.New("backend unavailable")
)
