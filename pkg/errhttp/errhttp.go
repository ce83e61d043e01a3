// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/pkg/httpx"
	"github.com/ghuser/orderdesk/pkg/telemetry"
	catalogdomain "github.com/ghuser/orderdesk/services/catalog/domain"
	directorydomain "github.com/ghuser/orderdesk/services/directory/domain"
	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
)

var production atomic.Bool

// SetProduction switches 5xx messages to the generic status text.
// Called once at startup.
func SetProduction(enabled bool) {
	production.Store(enabled)
}

// fieldErrorer is implemented by errors that carry per-field messages.
type fieldErrorer interface {
	FieldErrors() map[string]string
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors, which are
// also reported to Sentry.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapErrorToStatus(err)
	if status >= http.StatusInternalServerError {
		telemetry.CaptureError(r.Context(), err)
	}

	var fe fieldErrorer
	if status == http.StatusUnprocessableEntity && errors.As(err, &fe) {
		httpx.JSON(w, status, map[string]any{
			"error":  "Validation failed",
			"fields": fe.FieldErrors(),
		})
		return
	}

	httpx.JSONError(w, status, httpx.SafeError(err, status, production.Load()))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, httpx.ErrInvalidID):
		return http.StatusBadRequest // 400

	case errors.Is(err, directorydomain.ErrInvalidCredentials),
		errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized // 401

	case errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, directorydomain.ErrUserNotFound),
		errors.Is(err, orderdomain.ErrOrderNotFound):
		return http.StatusNotFound // 404

	case errors.Is(err, directorydomain.ErrEmailTaken),
		errors.Is(err, directorydomain.ErrCannotDeleteSelf),
		errors.Is(err, catalogdomain.ErrProductInUse),
		errors.Is(err, orderdomain.ErrNoProducts):
		return http.StatusConflict // 409

	case errors.Is(err, orderdomain.ErrPersistence):
		return http.StatusInternalServerError // 500

	case errors.Is(err, catalogdomain.ErrInvalidProduct),
		errors.Is(err, directorydomain.ErrInvalidUser),
		errors.Is(err, directorydomain.ErrInvalidRole),
		errors.Is(err, orderdomain.ErrEmptyOrder),
		errors.Is(err, orderdomain.ErrCustomerNotFound),
		errors.Is(err, orderdomain.ErrProductNotFound),
		errors.Is(err, orderdomain.ErrInvalidOrder):
		return http.StatusUnprocessableEntity // 422

	default:
		return http.StatusInternalServerError // 500
	}
}
