package domain

import (
	"errors"
	"strings"
)

// Business-rule rejections. None of these indicate corrupted state; the
// operation that returns them leaves the entity untouched.
var (
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrProductMismatch      = errors.New("items reference different products")
	ErrItemNotFound         = errors.New("item not found in cart")
	ErrCouponInvalid        = errors.New("coupon is not valid")
	ErrCouponAlreadyApplied = errors.New("coupon already applied to cart")
	ErrCouponMinimumNotMet  = errors.New("cart subtotal below coupon minimum")
	ErrCouponNotApplied     = errors.New("coupon not applied to cart")
	ErrNegativeShipping     = errors.New("shipping cost cannot be negative")
)

// ValidationError aggregates the human-readable messages produced by a
// Validate call into a single error value.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}
