package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	"github.com/ghuser/orderdesk/pkg/logger"
	pkgvalidator "github.com/ghuser/orderdesk/pkg/validator"
	appsvcs "github.com/ghuser/orderdesk/services/directory/application/services"
)

// LoginHandler handles POST /auth/login.
type LoginHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
	log   logger.Logger
}

func NewLoginHandler(svc *appsvcs.Services, store sessions.Store, log logger.Logger) *LoginHandler {
	return &LoginHandler{svc: svc, store: store, log: log}
}

// Execute checks the credentials and starts a session.
//
//	@Summary	Log in
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LoginRequest	true	"Credentials"
//	@Success	200		{object}	PrincipalResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/auth/login [post]
func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	u, err := h.svc.User.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	if err := auth.StartSession(w, r, h.store, u.ID); err != nil {
		h.log.ErrorContext(r.Context(), "failed to start session", "target_user_id", u.ID, "error", err)
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPrincipalResponse(u.Principal()))
}

// LogoutHandler handles POST /auth/logout.
type LogoutHandler struct {
	store sessions.Store
}

func NewLogoutHandler(store sessions.Store) *LogoutHandler {
	return &LogoutHandler{store: store}
}

// Execute ends the caller's session.
//
//	@Summary	Log out
//	@Tags		auth
//	@Success	204
//	@Failure	401	{object}	ErrorResponse
//	@Router		/auth/logout [post]
func (h *LogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := auth.EndSession(w, r, h.store); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MeHandler handles GET /auth/me.
type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// Execute returns the authenticated caller.
//
//	@Summary	Current user
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	PrincipalResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/auth/me [get]
func (h *MeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	p, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPrincipalResponse(p))
}
