package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the order domain. Use errors.Is() to check these.
var (
	// ErrEmptyOrder indicates no line survived filtering.
	ErrEmptyOrder = errors.New("order has no valid lines")

	// ErrCustomerNotFound indicates the customer reference matched no directory user.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrProductNotFound indicates an order line referenced an unknown product.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidOrder indicates a field-level violation (missing or oversized value).
	ErrInvalidOrder = errors.New("invalid order")

	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrPersistence indicates the store failed to commit. Never retried automatically.
	ErrPersistence = errors.New("order could not be saved")

	// ErrNoProducts indicates the catalog is empty, so no order can be entered.
	ErrNoProducts = errors.New("no products available, please add products first")
)

// ProductNotFoundError names the first product that could not be resolved.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %d not found", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrProductNotFound }

// FieldError is one rejected request field. Err is the sentinel it reports
// under (ErrEmptyOrder, ErrCustomerNotFound or ErrInvalidOrder).
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Message }

func (e *FieldError) Unwrap() error { return e.Err }

// ValidationErrors collects every field-level problem found while building an order.
// errors.Is matches each contained sentinel.
type ValidationErrors []*FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return "invalid order: " + strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, e := range v {
		errs[i] = e
	}
	return errs
}

// FieldErrors returns field name to message, for rendering next to a form.
func (v ValidationErrors) FieldErrors() map[string]string {
	out := make(map[string]string, len(v))
	for _, e := range v {
		if _, seen := out[e.Field]; !seen {
			out[e.Field] = e.Message
		}
	}
	return out
}
