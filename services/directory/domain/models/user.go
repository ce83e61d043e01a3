package models

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ghuser/orderdesk/pkg/auth"
)

const (
	maxFullNameLength = 100
	maxEmailLength    = 254
)

// NoRoleLabel is displayed for users without an assigned role.
const NoRoleLabel = "No Role"

// User is the aggregate for the directory bounded context.
type User struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	PasswordHash string
	Role         auth.Role // empty when no role is assigned
	CreatedAt    time.Time
}

// NewUser constructs a User with a generated ID. fullName and email must
// already be normalized with NormalizeFullName and NormalizeEmail.
func NewUser(fullName, email, passwordHash string, role auth.Role) *User {
	return &User{
		ID:           uuid.New(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
}

// RoleLabel returns the role name, or NoRoleLabel when unset.
func (u *User) RoleLabel() string {
	if u.Role == "" {
		return NoRoleLabel
	}
	return string(u.Role)
}

// Principal projects the user into the identity carried on authenticated requests.
func (u *User) Principal() auth.Principal {
	return auth.Principal{
		UserID:   u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}
}

// NormalizeFullName trims s and enforces 1..100 characters.
func NormalizeFullName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("full name is required")
	}
	if utf8.RuneCountInString(s) > maxFullNameLength {
		return "", fmt.Errorf("full name must not exceed %d characters", maxFullNameLength)
	}
	return s, nil
}

// NormalizeEmail trims and lower-cases s and checks it is a bare address.
func NormalizeEmail(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("email is required")
	}
	if len(s) > maxEmailLength {
		return "", fmt.Errorf("email must not exceed %d characters", maxEmailLength)
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return "", fmt.Errorf("email %q is not a valid address", s)
	}
	return s, nil
}
