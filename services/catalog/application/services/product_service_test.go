package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/orderdesk/pkg/database/dbtest"
	"github.com/ghuser/orderdesk/pkg/logger"
	appsvcs "github.com/ghuser/orderdesk/services/catalog/application/services"
	catalogdomain "github.com/ghuser/orderdesk/services/catalog/domain"
	"github.com/ghuser/orderdesk/services/catalog/infrastructure/persistence/sqlstore"
)

func newService(t *testing.T) *appsvcs.ProductService {
	t.Helper()
	return appsvcs.NewProductService(sqlstore.NewProductRepository(dbtest.New(t)), logger.Discard())
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	p, err := svc.Create(ctx, "  Widget ", decimal.RequireFromString("9.99"))
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "Widget", p.Name.String())

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(p.Price))
}

func TestProductService_CreateInvalid(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	tests := []struct {
		name  string
		pname string
		price string
	}{
		{"empty name", "  ", "1.00"},
		{"zero price", "Widget", "0"},
		{"negative price", "Widget", "-2.50"},
		{"fractional cents", "Widget", "1.999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.pname, decimal.RequireFromString(tt.price))
			assert.ErrorIs(t, err, catalogdomain.ErrInvalidProduct)
		})
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "invalid products must not be persisted")
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	p, err := svc.Create(ctx, "Widget", decimal.RequireFromString("9.99"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.ID, "Widget Pro", decimal.RequireFromString("12.00"))
	require.NoError(t, err)
	assert.Equal(t, "Widget Pro", updated.Name.String())

	_, err = svc.Update(ctx, p.ID, "Widget Pro", decimal.Zero)
	assert.ErrorIs(t, err, catalogdomain.ErrInvalidProduct)

	_, err = svc.Update(ctx, 999, "Nope", decimal.RequireFromString("1.00"))
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	p, err := svc.Create(ctx, "Widget", decimal.RequireFromString("9.99"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))
	assert.ErrorIs(t, svc.Delete(ctx, p.ID), catalogdomain.ErrProductNotFound)
}
