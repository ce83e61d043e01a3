package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/pkg/httpx"
	"github.com/ghuser/orderdesk/services/directory/domain/models"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"admin@example.com"`
	Password string `json:"password" validate:"required"       example:"password123"`
} // @name LoginRequest

// CreateUserRequest is the request body for POST /admin/users.
type CreateUserRequest struct {
	FullName        string `json:"full_name"        validate:"required,max=100"           example:"Ana Lima"`
	Email           string `json:"email"            validate:"required,email,max=254"     example:"ana@example.com"`
	Password        string `json:"password"         validate:"required"                   example:"password123"`
	ConfirmPassword string `json:"confirm_password" validate:"required"                   example:"password123"`
	Role            string `json:"role"                                                   example:"Cashier"`
} // @name CreateUserRequest

// UpdateUserRequest is the request body for PUT /admin/users/{id}.
// An empty role removes the user's role.
type UpdateUserRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"       example:"Ana Lima"`
	Email    string `json:"email"     validate:"required,email,max=254" example:"ana@example.com"`
	Role     string `json:"role"                                        example:"Accountant"`
} // @name UpdateUserRequest

// AssignRoleRequest is the request body for PUT /admin/users/{id}/role.
type AssignRoleRequest struct {
	Role string `json:"role" validate:"required" example:"Admin"`
} // @name AssignRoleRequest

// ChangePasswordRequest is the request body for POST /admin/users/password.
type ChangePasswordRequest struct {
	Email           string `json:"email"            validate:"required,email" example:"ana@example.com"`
	Password        string `json:"password"         validate:"required"       example:"new-password"`
	ConfirmPassword string `json:"confirm_password" validate:"required"       example:"new-password"`
} // @name ChangePasswordRequest

// UserResponse is one directory user. Role reads "No Role" when unset.
type UserResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	FullName  string    `json:"full_name"  example:"Ana Lima"`
	Email     string    `json:"email"      example:"ana@example.com"`
	Role      string    `json:"role"       example:"Cashier"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name UserResponse

// PrincipalResponse is the authenticated caller.
type PrincipalResponse struct {
	UserID   uuid.UUID `json:"user_id"   example:"123e4567-e89b-12d3-a456-426614174000"`
	FullName string    `json:"full_name" example:"Ana Lima"`
	Email    string    `json:"email"     example:"ana@example.com"`
	Role     string    `json:"role"      example:"Admin"`
} // @name PrincipalResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"user not found"`
} // @name ErrorResponse

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.RoleLabel(),
		CreatedAt: u.CreatedAt,
	}
}

func toPrincipalResponse(p auth.Principal) PrincipalResponse {
	role := string(p.Role)
	if role == "" {
		role = models.NoRoleLabel
	}
	return PrincipalResponse{UserID: p.UserID, FullName: p.FullName, Email: p.Email, Role: role}
}

func userIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", httpx.ErrInvalidID, chi.URLParam(r, "id"))
	}
	return id, nil
}
