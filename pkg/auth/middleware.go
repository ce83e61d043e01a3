package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/orderdesk/pkg/httpx"
	"github.com/ghuser/orderdesk/pkg/logger"
)

const sessionName = "orderdesk_session"
const sessionUserIDKey = "user_id"

// ErrPrincipalGone is returned by a PrincipalLoader when the session refers
// to a user that no longer exists.
var ErrPrincipalGone = errors.New("session user no longer exists")

// PrincipalLoader resolves a session's user ID into a fresh Principal.
// Loading on every request means role changes and deletions apply immediately.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, userID uuid.UUID) (Principal, error)
}

// RequireAuth is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, loads the user through loader and injects the
// Principal into the request context. Returns 401 when the session is missing,
// invalid, or points at a deleted user.
//
// After this middleware, handlers can safely call auth.PrincipalFromCtx(r.Context()).
func RequireAuth(store sessions.Store, loader PrincipalLoader, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, ErrUnauthenticated.Error())
				return
			}

			userIDStr, ok := session.Values[sessionUserIDKey].(string)
			if !ok || userIDStr == "" {
				httpx.JSONError(w, http.StatusUnauthorized, ErrUnauthenticated.Error())
				return
			}

			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid user_id in session", "user_id", userIDStr, "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "invalid session data")
				return
			}

			principal, err := loader.LoadPrincipal(r.Context(), userID)
			if err != nil {
				if errors.Is(err, ErrPrincipalGone) {
					log.WarnContext(r.Context(), "session user no longer exists", "user_id", userID)
					httpx.JSONError(w, http.StatusUnauthorized, ErrUnauthenticated.Error())
					return
				}
				log.ErrorContext(r.Context(), "failed to load session user", "user_id", userID, "error", err)
				httpx.JSONError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
				return
			}

			ctx := WithPrincipal(r.Context(), principal)
			ctx = logger.WithAttrs(ctx, slog.String("user_id", principal.UserID.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects requests whose Principal does not satisfy policy with
// 403 Forbidden (401 if RequireAuth did not run). Core services never see the
// caller's identity; this check is the whole authorization boundary.
func RequireRole(policy Policy, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := PrincipalFromCtx(r.Context())
			if err != nil {
				httpx.JSONError(w, http.StatusUnauthorized, err.Error())
				return
			}
			if !policy.Allows(principal.Role) {
				log.WarnContext(r.Context(), "access denied",
					"policy", policy.Name,
					"role", string(principal.Role),
					"path", r.URL.Path,
				)
				httpx.JSONError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// StartSession binds userID to a fresh session and writes the cookie.
func StartSession(w http.ResponseWriter, r *http.Request, store sessions.Store, userID uuid.UUID) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie still yields a usable new session.
		session, err = store.New(r, sessionName)
		if err != nil {
			return err
		}
	}
	if _, ok := store.(*RedisStore); ok {
		// Fresh server-side ID on login; the previous key expires on its own.
		session.ID = ""
	}
	session.Values[sessionUserIDKey] = userID.String()
	return session.Save(r, w)
}

// EndSession expires the session cookie and its server-side data.
func EndSession(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		return nil //nolint:nilerr // nothing to end
	}
	session.Options.MaxAge = -1
	delete(session.Values, sessionUserIDKey)
	return session.Save(r, w)
}
