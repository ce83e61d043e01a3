package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ErrInvalidID is returned by IDParam when the URL parameter is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// IDParam parses the chi URL parameter name as a positive int64 identifier.
func IDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
