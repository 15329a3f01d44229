package service

import (
	"errors"
	"fmt"

	"github.com/inkwellgoods/storefront/internal/repository"
)

// ErrNotFound signals that a referenced entity does not exist
var ErrNotFound = repository.ErrNotFound

// ErrEmptyCart signals a checkout attempt on a cart with no items
var ErrEmptyCart = errors.New("cart is empty")

// ErrConflict signals a uniqueness violation (e.g. duplicate category name)
var ErrConflict = errors.New("already exists")

// ValidationError reports malformed form input for a single field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
