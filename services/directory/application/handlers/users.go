package handlers

import (
	"net/http"

	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	pkgvalidator "github.com/ghuser/orderdesk/pkg/validator"
	appsvcs "github.com/ghuser/orderdesk/services/directory/application/services"
)

// ListRolesHandler handles GET /admin/roles.
type ListRolesHandler struct{}

func NewListRolesHandler() *ListRolesHandler {
	return &ListRolesHandler{}
}

// Execute lists the assignable roles.
//
//	@Summary	List roles
//	@Tags		admin
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/admin/roles [get]
func (h *ListRolesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	roles := auth.Roles()
	out := make([]string, len(roles))
	for i, role := range roles {
		out[i] = string(role)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// ListUsersHandler handles GET /admin/users.
type ListUsersHandler struct {
	svc *appsvcs.Services
}

func NewListUsersHandler(svc *appsvcs.Services) *ListUsersHandler {
	return &ListUsersHandler{svc: svc}
}

// Execute lists every user with their role.
//
//	@Summary	List users
//	@Tags		admin
//	@Produce	json
//	@Success	200	{array}		UserResponse
//	@Failure	403	{object}	ErrorResponse
//	@Router		/admin/users [get]
func (h *ListUsersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.User.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// GetUserHandler handles GET /admin/users/{id}.
type GetUserHandler struct {
	svc *appsvcs.Services
}

func NewGetUserHandler(svc *appsvcs.Services) *GetUserHandler {
	return &GetUserHandler{svc: svc}
}

// Execute returns one user.
//
//	@Summary	Get user
//	@Tags		admin
//	@Produce	json
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	UserResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/users/{id} [get]
func (h *GetUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	u, err := h.svc.User.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toUserResponse(u))
}

// CreateUserHandler handles POST /admin/users.
type CreateUserHandler struct {
	svc *appsvcs.Services
}

func NewCreateUserHandler(svc *appsvcs.Services) *CreateUserHandler {
	return &CreateUserHandler{svc: svc}
}

// Execute registers a user with an optional role.
//
//	@Summary		Create user
//	@Description	Password is 8-40 characters and must match confirm_password
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateUserRequest	true	"User"
//	@Success		201		{object}	UserResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/admin/users [post]
func (h *CreateUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateUserRequest](w, r)
	if !ok {
		return
	}
	u, err := h.svc.User.Create(r.Context(), appsvcs.CreateUserInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
	})
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toUserResponse(u))
}

// UpdateUserHandler handles PUT /admin/users/{id}.
type UpdateUserHandler struct {
	svc *appsvcs.Services
}

func NewUpdateUserHandler(svc *appsvcs.Services) *UpdateUserHandler {
	return &UpdateUserHandler{svc: svc}
}

// Execute edits a user's name, email and role.
//
//	@Summary	Update user
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"User ID"
//	@Param		request	body		UpdateUserRequest	true	"User"
//	@Success	200		{object}	UserResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/admin/users/{id} [put]
func (h *UpdateUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateUserRequest](w, r)
	if !ok {
		return
	}
	u, err := h.svc.User.Update(r.Context(), id, appsvcs.UpdateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toUserResponse(u))
}

// AssignRoleHandler handles PUT /admin/users/{id}/role.
type AssignRoleHandler struct {
	svc *appsvcs.Services
}

func NewAssignRoleHandler(svc *appsvcs.Services) *AssignRoleHandler {
	return &AssignRoleHandler{svc: svc}
}

// Execute replaces the user's role.
//
//	@Summary	Assign role
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"User ID"
//	@Param		request	body		AssignRoleRequest	true	"Role"
//	@Success	200		{object}	UserResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/admin/users/{id}/role [put]
func (h *AssignRoleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AssignRoleRequest](w, r)
	if !ok {
		return
	}
	u, err := h.svc.User.AssignRole(r.Context(), id, req.Role)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toUserResponse(u))
}

// DeleteUserHandler handles DELETE /admin/users/{id}.
type DeleteUserHandler struct {
	svc *appsvcs.Services
}

func NewDeleteUserHandler(svc *appsvcs.Services) *DeleteUserHandler {
	return &DeleteUserHandler{svc: svc}
}

// Execute deletes a user other than the caller.
//
//	@Summary	Delete user
//	@Tags		admin
//	@Param		id	path	string	true	"User ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/admin/users/{id} [delete]
func (h *DeleteUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	id, err := userIDParam(r)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	if err := h.svc.User.Delete(r.Context(), actor.UserID, id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ChangePasswordHandler handles POST /admin/users/password.
type ChangePasswordHandler struct {
	svc *appsvcs.Services
}

func NewChangePasswordHandler(svc *appsvcs.Services) *ChangePasswordHandler {
	return &ChangePasswordHandler{svc: svc}
}

// Execute sets a new password for the user with the given email.
//
//	@Summary	Change password
//	@Tags		admin
//	@Accept		json
//	@Param		request	body	ChangePasswordRequest	true	"New password"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Router		/admin/users/password [post]
func (h *ChangePasswordHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ChangePasswordRequest](w, r)
	if !ok {
		return
	}
	if err := h.svc.User.ChangePassword(r.Context(), req.Email, req.Password, req.ConfirmPassword); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
