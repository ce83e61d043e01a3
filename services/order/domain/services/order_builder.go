// Package services contains the order domain services: the builder that turns
// a raw request into a priced Order, and the monthly revenue projection.
package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
	"github.com/ghuser/orderdesk/services/order/domain/models"
	"github.com/ghuser/orderdesk/services/order/domain/repositories"
)

const (
	maxCustomerNameLength = 100
	maxNotesLength        = 500

	// MaxLineQuantity is the largest quantity a single line may carry.
	MaxLineQuantity = math.MaxInt32
)

// MaxOrderAmount bounds every subtotal and order total; amounts are stored
// with 14 digits of precision and 2 decimals.
var MaxOrderAmount = decimal.RequireFromString("999999999999.99")

// BuildRequest is a raw order as submitted by a client.
type BuildRequest struct {
	CustomerRef string
	Notes       string
	Lines       []models.LineRequest
}

// OrderBuilder validates a BuildRequest against the live catalog and directory
// and produces an unsaved, fully priced Order.
type OrderBuilder struct {
	catalog   repositories.CatalogReader
	directory repositories.DirectoryReader
	now       func() time.Time
}

// NewOrderBuilder returns a builder. now defaults to time.Now when nil.
func NewOrderBuilder(catalog repositories.CatalogReader, directory repositories.DirectoryReader, now func() time.Time) *OrderBuilder {
	if now == nil {
		now = time.Now
	}
	return &OrderBuilder{catalog: catalog, directory: directory, now: now}
}

// FilterLines keeps the lines with a positive product ID and quantity, in order.
func FilterLines(lines []models.LineRequest) []models.LineRequest {
	out := make([]models.LineRequest, 0, len(lines))
	for _, l := range lines {
		if l.ProductID > 0 && l.Quantity > 0 {
			out = append(out, l)
		}
	}
	return out
}

// Build runs the order-entry rules:
//  1. drop lines with productId <= 0 or quantity <= 0
//  2. collect field problems (no lines, quantity, customer, notes) into ValidationErrors
//  3. resolve every line against the catalog, stopping at the first unknown product
//  4. snapshot unit prices and compute subtotals and the total exactly,
//     rejecting totals above MaxOrderAmount
func (b *OrderBuilder) Build(ctx context.Context, req BuildRequest) (*models.Order, error) {
	lines := FilterLines(req.Lines)

	var verrs orderdomain.ValidationErrors
	if len(lines) == 0 {
		verrs = append(verrs, &orderdomain.FieldError{
			Field:   "lines",
			Message: "Please add at least one product to the order.",
			Err:     orderdomain.ErrEmptyOrder,
		})
	}

	for _, l := range lines {
		if l.Quantity > MaxLineQuantity {
			verrs = append(verrs, &orderdomain.FieldError{
				Field:   "lines",
				Message: fmt.Sprintf("Quantity must not exceed %d.", MaxLineQuantity),
				Err:     orderdomain.ErrInvalidOrder,
			})
			break
		}
	}

	customerName, fieldErr, lookupErr := b.resolveCustomer(ctx, req.CustomerRef)
	if fieldErr != nil {
		verrs = append(verrs, fieldErr)
	}

	notes := strings.TrimSpace(req.Notes)
	if utf8.RuneCountInString(notes) > maxNotesLength {
		verrs = append(verrs, &orderdomain.FieldError{
			Field:   "notes",
			Message: fmt.Sprintf("Notes must not exceed %d characters.", maxNotesLength),
			Err:     orderdomain.ErrInvalidOrder,
		})
	}

	// Field problems win over a directory outage.
	if len(verrs) > 0 {
		return nil, verrs
	}
	if lookupErr != nil {
		return nil, lookupErr
	}

	order := &models.Order{
		CustomerName: customerName,
		OrderDate:    b.now().UTC(),
		Notes:        notes,
		Lines:        make([]models.OrderLine, 0, len(lines)),
	}

	total := decimal.Zero
	for _, l := range lines {
		product, err := b.catalog.FindProduct(ctx, l.ProductID)
		if err != nil {
			if errors.Is(err, orderdomain.ErrProductNotFound) {
				return nil, &orderdomain.ProductNotFoundError{ProductID: l.ProductID}
			}
			return nil, fmt.Errorf("find product %d: %w", l.ProductID, err)
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		total = total.Add(subtotal)
		if total.GreaterThan(MaxOrderAmount) {
			return nil, orderdomain.ValidationErrors{{
				Field:   "lines",
				Message: fmt.Sprintf("Order total must not exceed %s.", MaxOrderAmount.StringFixed(2)),
				Err:     orderdomain.ErrInvalidOrder,
			}}
		}
		order.Lines = append(order.Lines, models.OrderLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    l.Quantity,
			UnitPrice:   product.Price,
			Subtotal:    subtotal,
		})
	}
	order.TotalAmount = total

	return order, nil
}

// resolveCustomer returns the trimmed display name, a field error for
// user-correctable problems, or err for lookup failures.
func (b *OrderBuilder) resolveCustomer(ctx context.Context, ref string) (string, *orderdomain.FieldError, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", &orderdomain.FieldError{
			Field:   "customer_id",
			Message: "Customer is required.",
			Err:     orderdomain.ErrInvalidOrder,
		}, nil
	}

	customer, err := b.directory.FindUser(ctx, ref)
	if err != nil {
		if errors.Is(err, orderdomain.ErrCustomerNotFound) {
			return "", &orderdomain.FieldError{
				Field:   "customer_id",
				Message: "Customer not found.",
				Err:     orderdomain.ErrCustomerNotFound,
			}, nil
		}
		return "", nil, fmt.Errorf("find customer: %w", err)
	}

	name := strings.TrimSpace(customer.DisplayName)
	switch {
	case name == "":
		return "", &orderdomain.FieldError{
			Field:   "customer_id",
			Message: "Customer has no display name.",
			Err:     orderdomain.ErrInvalidOrder,
		}, nil
	case utf8.RuneCountInString(name) > maxCustomerNameLength:
		return "", &orderdomain.FieldError{
			Field:   "customer_id",
			Message: fmt.Sprintf("Customer name must not exceed %d characters.", maxCustomerNameLength),
			Err:     orderdomain.ErrInvalidOrder,
		}, nil
	}
	return name, nil, nil
}
