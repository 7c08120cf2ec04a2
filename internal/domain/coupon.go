package domain

import (
	"fmt"
	"strings"
	"time"
)

// CouponType enumerates the supported discount strategies.
type CouponType string

const (
	// CouponPercentage discounts a percentage of the amount it is applied to.
	CouponPercentage CouponType = "percentage"
	// CouponFixed discounts a fixed value, capped at the amount it is applied to.
	CouponFixed CouponType = "fixed"
)

// Coupon is a discount rule with eligibility and usage constraints.
// Codes are case-insensitive and stored upper-cased.
type Coupon struct {
	Code          string     `json:"code"`
	Type          CouponType `json:"type"`
	Value         float64    `json:"value"`
	MinimumAmount float64    `json:"minimum_amount"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	UsageLimit    int        `json:"usage_limit,omitempty"` // 0 means unlimited
	UsageCount    int        `json:"usage_count"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
}

func NewCoupon(code string, couponType CouponType, value float64) *Coupon {
	return &Coupon{
		Code:      NormalizeCouponCode(code),
		Type:      couponType,
		Value:     value,
		Active:    true,
		CreatedAt: time.Now(),
	}
}

// NormalizeCouponCode maps a user-entered code to its canonical form.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValid reports whether the coupon can currently be applied: it must be
// active, not expired and not exhausted. An expired coupon stays queryable
// but is permanently invalid.
func (c *Coupon) IsValid() bool {
	if !c.Active {
		return false
	}
	if c.ExpiresAt != nil && time.Now().After(*c.ExpiresAt) {
		return false
	}
	if c.UsageLimit > 0 && c.UsageCount >= c.UsageLimit {
		return false
	}
	return true
}

// Apply consumes one use of the coupon. Validity is re-checked at apply time
// even when the caller already checked it.
func (c *Coupon) Apply() error {
	if !c.IsValid() {
		return ErrCouponInvalid
	}
	c.UsageCount++
	return nil
}

// Revert returns one use of the coupon, flooring the count at zero.
func (c *Coupon) Revert() {
	if c.UsageCount > 0 {
		c.UsageCount--
	}
}

// Discount computes the discount this coupon grants on amount. It returns 0
// when the coupon is invalid or the amount is below the coupon's minimum;
// callers that need to distinguish ineligibility must check separately.
// The discount never exceeds the amount it is applied to.
func (c *Coupon) Discount(amount float64) float64 {
	if !c.IsValid() || amount < c.MinimumAmount {
		return 0
	}
	switch c.Type {
	case CouponPercentage:
		return amount * c.Value / 100
	case CouponFixed:
		if c.Value > amount {
			return amount
		}
		return c.Value
	default:
		return 0
	}
}

// Validate reports constraint violations for the coupon definition.
func (c *Coupon) Validate() []string {
	var errs []string
	if c.Code == "" {
		errs = append(errs, "coupon code is required")
	}
	if c.Type != CouponPercentage && c.Type != CouponFixed {
		errs = append(errs, fmt.Sprintf("coupon type must be %q or %q", CouponPercentage, CouponFixed))
	}
	if c.Value <= 0 {
		errs = append(errs, "coupon value must be greater than zero")
	}
	if c.Type == CouponPercentage && c.Value > 100 {
		errs = append(errs, "percentage coupon value cannot exceed 100")
	}
	if c.MinimumAmount < 0 {
		errs = append(errs, "coupon minimum amount cannot be negative")
	}
	if c.UsageLimit < 0 {
		errs = append(errs, "coupon usage limit cannot be negative")
	}
	if c.UsageCount < 0 {
		errs = append(errs, "coupon usage count cannot be negative")
	}
	return errs
}
