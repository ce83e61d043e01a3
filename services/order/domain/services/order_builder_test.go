package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
	"github.com/ghuser/orderdesk/services/order/domain/models"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.FixedZone("UTC+3", 3*60*60))

func newBuilder(c *fakeCatalog, d *fakeDirectory) *OrderBuilder {
	return NewOrderBuilder(c, d, func() time.Time { return fixedNow })
}

func TestFilterLines(t *testing.T) {
	in := []models.LineRequest{{ProductID: 1, Quantity: 3}, {ProductID: 2, Quantity: 0}, {ProductID: -1, Quantity: 5}, {ProductID: 0, Quantity: 1}, {ProductID: 2, Quantity: -4}, {ProductID: 3, Quantity: 1}}
	got := FilterLines(in)
	assert.Equal(t, []models.LineRequest{{ProductID: 1, Quantity: 3}, {ProductID: 3, Quantity: 1}}, got)
}

// Widget 9.99 x 3: the two invalid lines are dropped before validation.
func TestBuild_WidgetScenario(t *testing.T) {
	catalog := newFakeCatalog(widget, gadget)
	b := newBuilder(catalog, newFakeDirectory(alice))

	order, err := b.Build(context.Background(), BuildRequest{
		CustomerRef: "alice",
		Notes:       "  leave at the door  ",
		Lines:       []models.LineRequest{{ProductID: 1, Quantity: 3}, {ProductID: 2, Quantity: 0}, {ProductID: -1, Quantity: 5}},
	})
	require.NoError(t, err)

	require.Len(t, order.Lines, 1)
	line := order.Lines[0]
	assert.Equal(t, int64(1), line.ProductID)
	assert.Equal(t, "Widget", line.ProductName)
	assert.Equal(t, 3, line.Quantity)
	assert.True(t, line.UnitPrice.Equal(decimal.RequireFromString("9.99")))
	assert.True(t, line.Subtotal.Equal(decimal.RequireFromString("29.97")), "subtotal %s", line.Subtotal)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("29.97")), "total %s", order.TotalAmount)

	assert.Equal(t, "Alice Martin", order.CustomerName)
	assert.Equal(t, "leave at the door", order.Notes)
	assert.Equal(t, fixedNow.UTC(), order.OrderDate)
	assert.Equal(t, time.UTC, order.OrderDate.Location())
	assert.Zero(t, order.ID, "builder never assigns an ID")

	assert.Equal(t, []int64{1}, catalog.lookups, "filtered lines are never looked up")
}

func TestBuild_TotalsAreExactDecimalSums(t *testing.T) {
	cheap := models.CatalogProduct{ID: 3, Name: "Penny", Price: decimal.RequireFromString("0.10")}
	b := newBuilder(newFakeCatalog(widget, gadget, cheap), newFakeDirectory(alice))

	order, err := b.Build(context.Background(), BuildRequest{
		CustomerRef: "alice",
		Lines:       []models.LineRequest{{ProductID: 3, Quantity: 1}, {ProductID: 3, Quantity: 2}, {ProductID: 1, Quantity: 7}, {ProductID: 2, Quantity: 11}},
	})
	require.NoError(t, err)

	for _, l := range order.Lines {
		assert.True(t, l.Subtotal.Equal(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))))
	}
	// 0.10 + 0.20 + 69.93 + 55.00
	assert.Equal(t, "125.23", order.TotalAmount.StringFixed(2))
	assert.True(t, order.TotalAmount.Equal(order.SumSubtotals()))
	assert.Equal(t, 21, order.TotalItems())
}

func TestBuild_ProductNotFoundFailsFast(t *testing.T) {
	catalog := newFakeCatalog(widget)
	b := newBuilder(catalog, newFakeDirectory(alice))

	order, err := b.Build(context.Background(), BuildRequest{
		CustomerRef: "alice",
		Lines:       []models.LineRequest{{ProductID: 99, Quantity: 1}, {ProductID: 1, Quantity: 1}, {ProductID: 98, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, orderdomain.ErrProductNotFound)

	var pnf *orderdomain.ProductNotFoundError
	require.True(t, errors.As(err, &pnf))
	assert.Equal(t, int64(99), pnf.ProductID)
	assert.Equal(t, []int64{99}, catalog.lookups, "processing stops at the first missing product")
}

func TestBuild_EmptyAfterFiltering(t *testing.T) {
	tests := map[string][]models.LineRequest{
		"no lines":         nil,
		"all zero qty":     {{ProductID: 1, Quantity: 0}, {ProductID: 2, Quantity: 0}},
		"all bad products": {{ProductID: 0, Quantity: 3}, {ProductID: -7, Quantity: 1}},
	}
	for name, lines := range tests {
		t.Run(name, func(t *testing.T) {
			catalog := newFakeCatalog(widget)
			order, err := newBuilder(catalog, newFakeDirectory(alice)).Build(context.Background(), BuildRequest{
				CustomerRef: "alice",
				Lines:       lines,
			})
			assert.Nil(t, order)
			assert.ErrorIs(t, err, orderdomain.ErrEmptyOrder)
			assert.NotErrorIs(t, err, orderdomain.ErrProductNotFound)
			assert.Empty(t, catalog.lookups)
		})
	}
}

func TestBuild_CollectsValidationErrors(t *testing.T) {
	b := newBuilder(newFakeCatalog(widget), newFakeDirectory(alice))

	_, err := b.Build(context.Background(), BuildRequest{
		CustomerRef: "bob",
		Notes:       strings.Repeat("n", 501),
		Lines:       nil,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, orderdomain.ErrEmptyOrder)
	assert.ErrorIs(t, err, orderdomain.ErrCustomerNotFound)
	assert.ErrorIs(t, err, orderdomain.ErrInvalidOrder)

	var verrs orderdomain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := verrs.FieldErrors()
	assert.Contains(t, fields, "lines")
	assert.Contains(t, fields, "customer_id")
	assert.Contains(t, fields, "notes")
}

func TestBuild_CustomerRules(t *testing.T) {
	longName := models.Customer{ID: "long", DisplayName: strings.Repeat("x", 101)}
	blank := models.Customer{ID: "blank", DisplayName: "   "}
	b := newBuilder(newFakeCatalog(widget), newFakeDirectory(alice, longName, blank))

	tests := []struct {
		name string
		ref  string
		want error
	}{
		{"missing ref", "   ", orderdomain.ErrInvalidOrder},
		{"unknown", "nobody", orderdomain.ErrCustomerNotFound},
		{"name too long", "long", orderdomain.ErrInvalidOrder},
		{"blank display name", "blank", orderdomain.ErrInvalidOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Build(context.Background(), BuildRequest{
				CustomerRef: tt.ref,
				Lines:       []models.LineRequest{{ProductID: 1, Quantity: 1}},
			})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuild_NotesBoundary(t *testing.T) {
	b := newBuilder(newFakeCatalog(widget), newFakeDirectory(alice))

	order, err := b.Build(context.Background(), BuildRequest{
		CustomerRef: "alice",
		Notes:       strings.Repeat("n", 500),
		Lines:       []models.LineRequest{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Len(t, order.Notes, 500)

	order, err = b.Build(context.Background(), BuildRequest{
		CustomerRef: "alice",
		Notes:       "   ",
		Lines:       []models.LineRequest{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Empty(t, order.Notes)
}

func TestBuild_ReaderFailuresPropagate(t *testing.T) {
	catalog := newFakeCatalog(widget)
	catalog.err = errBackend
	_, err := newBuilder(catalog, newFakeDirectory(alice)).Build(context.Background(), BuildRequest{
		CustomerRef: "alice",
		Lines:       []models.LineRequest{{ProductID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, errBackend)
	assert.NotErrorIs(t, err, orderdomain.ErrProductNotFound)

	directory := newFakeDirectory(alice)
	directory.err = errBackend
	_, err = newBuilder(newFakeCatalog(widget), directory).Build(context.Background(), BuildRequest{
		CustomerRef: "alice",
		Lines:       []models.LineRequest{{ProductID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, errBackend)
}

func TestNewOrderBuilder_DefaultClock(t *testing.T) {
	b := NewOrderBuilder(newFakeCatalog(widget), newFakeDirectory(alice), nil)
	before := time.Now().UTC()
	order, err := b.Build(context.Background(), BuildRequest{CustomerRef: "alice", Lines: []models.LineRequest{{ProductID: 1, Quantity: 1}}})
	require.NoError(t, err)
	assert.False(t, order.OrderDate.Before(before))
}

func TestBuild_QuantityAboveMaximum(t *testing.T) {
	catalog := newFakeCatalog(widget)
	_, err := newBuilder(catalog, newFakeDirectory(alice)).Build(context.Background(), BuildRequest{
		CustomerRef: "alice",
		Lines:       []models.LineRequest{{ProductID: 1, Quantity: 2}, {ProductID: 1, Quantity: MaxLineQuantity + 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, orderdomain.ErrInvalidOrder)
	assert.Empty(t, catalog.lookups)

	var verrs orderdomain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.FieldErrors()["lines"], "Quantity must not exceed")
}

func TestBuild_QuantityAtMaximum(t *testing.T) {
	order, err := newBuilder(newFakeCatalog(gadget), newFakeDirectory(alice)).Build(context.Background(), BuildRequest{
		CustomerRef: "alice",
		Lines:       []models.LineRequest{{ProductID: 2, Quantity: MaxLineQuantity}},
	})
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("10737418235.00")), order.TotalAmount.String())
}

func TestBuild_TotalAboveMaximum(t *testing.T) {
	pricey := models.CatalogProduct{ID: 7, Name: "Yacht", Price: decimal.RequireFromString("9999999999.99")}
	b := newBuilder(newFakeCatalog(pricey), newFakeDirectory(alice))

	order, err := b.Build(context.Background(), BuildRequest{
		CustomerRef: "alice",
		Lines:       []models.LineRequest{{ProductID: 7, Quantity: 100}},
	})
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.LessThanOrEqual(MaxOrderAmount))

	_, err = b.Build(context.Background(), BuildRequest{
		CustomerRef: "alice",
		Lines:       []models.LineRequest{{ProductID: 7, Quantity: 100}, {ProductID: 7, Quantity: 1}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, orderdomain.ErrInvalidOrder)

	var verrs orderdomain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.FieldErrors()["lines"], "Order total must not exceed")
}

func TestBuild_EmptyOrderWinsOverDirectoryOutage(t *testing.T) {
	directory := newFakeDirectory(alice)
	directory.err = errBackend

	_, err := newBuilder(newFakeCatalog(widget), directory).Build(context.Background(), BuildRequest{
		CustomerRef: "alice",
		Lines:       []models.LineRequest{{ProductID: 1, Quantity: 0}},
	})
	assert.ErrorIs(t, err, orderdomain.ErrEmptyOrder)
	assert.NotErrorIs(t, err, errBackend)
}
