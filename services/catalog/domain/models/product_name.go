package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ProductName is a value object representing a valid product name.
// Encapsulates validation rules: 1 <= len(trimmed name) <= 100 characters.
type ProductName string

const (
	minProductNameLength = 1
	maxProductNameLength = 100
)

// NewProductName trims s and returns a valid ProductName or an error if constraints are violated.
func NewProductName(s string) (ProductName, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < minProductNameLength {
		return "", fmt.Errorf("product name must be at least %d character", minProductNameLength)
	}
	if n > maxProductNameLength {
		return "", fmt.Errorf("product name must not exceed %d characters", maxProductNameLength)
	}
	return ProductName(s), nil
}

// String returns the underlying string value.
func (n ProductName) String() string {
	return string(n)
}
