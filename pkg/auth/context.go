package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const principalKey contextKey = "principal"

// ErrUnauthenticated is returned when no Principal exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrUnauthenticated = errors.New("authentication required")

// Principal is the authenticated user acting on a request.
type Principal struct {
	UserID   uuid.UUID
	Email    string
	FullName string
	Role     Role // empty when the user has no role assigned
}

// PrincipalFromCtx extracts the authenticated Principal from the request context.
// Returns ErrUnauthenticated if none is set or its UserID is uuid.Nil.
func PrincipalFromCtx(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok || p.UserID == uuid.Nil {
		return Principal{}, ErrUnauthenticated
	}
	return p, nil
}

// WithPrincipal returns a new context with p attached.
// Used by RequireAuth after validating the session.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}
