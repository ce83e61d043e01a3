// Package services contains stateless domain services for the directory bounded context.
package services

import (
	"fmt"
	"unicode/utf8"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 40
)

// PasswordHasher hashes and verifies passwords. Infrastructure supplies the algorithm.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// ValidateNewPassword enforces the password policy for new and changed passwords:
// 8 to 40 characters, and the confirmation must match exactly.
func ValidateNewPassword(password, confirm string) error {
	n := utf8.RuneCountInString(password)
	if n < minPasswordLength || n > maxPasswordLength {
		return fmt.Errorf("password must be between %d and %d characters", minPasswordLength, maxPasswordLength)
	}
	if password != confirm {
		return fmt.Errorf("password does not match confirmation")
	}
	return nil
}
