package domain

import "errors"

// Sentinel errors for the directory domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates another user already owns the email address.
	ErrEmailTaken = errors.New("a user with this email already exists")

	// ErrInvalidUser indicates a name, email or password violates domain constraints.
	ErrInvalidUser = errors.New("invalid user")

	// ErrInvalidRole indicates the role is not one of Admin, Accountant or Cashier.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidCredentials indicates a failed login. It deliberately does not
	// distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrCannotDeleteSelf indicates an admin tried to delete their own account.
	ErrCannotDeleteSelf = errors.New("you cannot delete your own account")
)
