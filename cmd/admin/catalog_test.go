package main

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/orderdesk/pkg/database/dbtest"
	"github.com/ghuser/orderdesk/pkg/logger"
	catalogsvcs "github.com/ghuser/orderdesk/services/catalog/application/services"
	"github.com/ghuser/orderdesk/services/catalog/infrastructure/persistence/sqlstore"
)

const sampleCatalog = `
products:
  - name: Widget
    price: "9.99"
  - name: Gadget
    price: 5
`

func TestParseCatalog(t *testing.T) {
	products, err := parseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Widget", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, products[1].Price.Equal(decimal.NewFromInt(5)))
}

func TestParseCatalog_InvalidPrice(t *testing.T) {
	_, err := parseCatalog([]byte("products:\n  - name: Widget\n    price: cheap\n"))
	assert.ErrorContains(t, err, "invalid price")
}

func TestParseCatalog_InvalidYAML(t *testing.T) {
	_, err := parseCatalog([]byte("products: ["))
	assert.Error(t, err)
}

func TestImportCatalog_SkipsExisting(t *testing.T) {
	ctx := context.Background()
	svc := catalogsvcs.NewProductService(sqlstore.NewProductRepository(dbtest.New(t)), logger.Discard())

	_, err := svc.Create(ctx, "Widget", decimal.RequireFromString("1.00"))
	require.NoError(t, err)

	products, err := parseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	n, err := importCatalog(ctx, svc, products)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = importCatalog(ctx, svc, products)
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestImportCatalog_RejectsInvalidProduct(t *testing.T) {
	ctx := context.Background()
	svc := catalogsvcs.NewProductService(sqlstore.NewProductRepository(dbtest.New(t)), logger.Discard())

	_, err := importCatalog(ctx, svc, []seedProduct{{Name: "Freebie", Price: decimal.Zero}})
	assert.Error(t, err)
}
