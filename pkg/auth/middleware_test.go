package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/orderdesk/pkg/logger"
)

// newTestStore returns a gorilla CookieStore (no Redis required) for unit tests.
// In production the RedisStore is used; the sessions.Store interface is identical.
func newTestStore() sessions.Store {
	return NewCookieSessionStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
		false,
	)
}

type stubLoader struct {
	principals map[uuid.UUID]Principal
	err        error
}

func (s *stubLoader) LoadPrincipal(_ context.Context, id uuid.UUID) (Principal, error) {
	if s.err != nil {
		return Principal{}, s.err
	}
	p, ok := s.principals[id]
	if !ok {
		return Principal{}, ErrPrincipalGone
	}
	return p, nil
}

// requestWithSession builds an *http.Request that carries a valid session
// cookie for userID, created through StartSession.
func requestWithSession(t *testing.T, store sessions.Store, userID uuid.UUID) *http.Request {
	t.Helper()

	w := httptest.NewRecorder()
	if err := StartSession(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil), store, userID); err != nil {
		t.Fatalf("start session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestRequireAuth_ValidSession(t *testing.T) {
	store := newTestStore()
	userID := uuid.New()
	loader := &stubLoader{principals: map[uuid.UUID]Principal{
		userID: {UserID: userID, Email: "ana@example.com", Role: RoleCashier},
	}}

	var captured Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = PrincipalFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	RequireAuth(store, loader, logger.Discard())(next).ServeHTTP(w, requestWithSession(t, store, userID))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if captured.UserID != userID || captured.Role != RoleCashier {
		t.Fatalf("unexpected principal in context: %+v", captured)
	}
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	w := httptest.NewRecorder()
	RequireAuth(newTestStore(), &stubLoader{}, logger.Discard())(next).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_InvalidUserIDInSession(t *testing.T) {
	store := newTestStore()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	writeReq := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	w1 := httptest.NewRecorder()
	session, _ := store.Get(writeReq, sessionName)
	session.Values[sessionUserIDKey] = "not-a-valid-uuid"
	_ = session.Save(writeReq, w1)

	r := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	for _, c := range w1.Result().Cookies() {
		r.AddCookie(c)
	}

	w := httptest.NewRecorder()
	RequireAuth(store, &stubLoader{}, logger.Discard())(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_DeletedUser(t *testing.T) {
	store := newTestStore()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	w := httptest.NewRecorder()
	RequireAuth(store, &stubLoader{}, logger.Discard())(next).ServeHTTP(w, requestWithSession(t, store, uuid.New()))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_LoaderFailure(t *testing.T) {
	store := newTestStore()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	w := httptest.NewRecorder()
	RequireAuth(store, &stubLoader{err: errors.New("db down")}, logger.Discard())(next).
		ServeHTTP(w, requestWithSession(t, store, uuid.New()))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestEndSession_ClearsCookie(t *testing.T) {
	store := newTestStore()
	userID := uuid.New()
	loader := &stubLoader{principals: map[uuid.UUID]Principal{userID: {UserID: userID, Role: RoleAdmin}}}

	w := httptest.NewRecorder()
	if err := EndSession(w, requestWithSession(t, store, userID), store); err != nil {
		t.Fatalf("end session: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called after logout")
	})
	w2 := httptest.NewRecorder()
	RequireAuth(store, loader, logger.Discard())(next).ServeHTTP(w2, r)
	if w2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w2.Code)
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		ctx        func() context.Context
		policy     Policy
		wantStatus int
	}{
		{
			name:       "no principal",
			ctx:        context.Background,
			policy:     AllRoles,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "role allowed",
			ctx: func() context.Context {
				return WithPrincipal(context.Background(), Principal{UserID: uuid.New(), Role: RoleAccountant})
			},
			policy:     AccountantOrAdmin,
			wantStatus: http.StatusOK,
		},
		{
			name: "role denied",
			ctx: func() context.Context {
				return WithPrincipal(context.Background(), Principal{UserID: uuid.New(), Role: RoleCashier})
			},
			policy:     AdminOnly,
			wantStatus: http.StatusForbidden,
		},
		{
			name: "no role assigned",
			ctx: func() context.Context {
				return WithPrincipal(context.Background(), Principal{UserID: uuid.New()})
			},
			policy:     AllRoles,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			r := httptest.NewRequest(http.MethodGet, "/api/products", nil).WithContext(tt.ctx())
			w := httptest.NewRecorder()
			RequireRole(tt.policy, logger.Discard())(next).ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}
