package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func percentageCoupon(value float64) *Coupon {
	return NewCoupon("promo10", CouponPercentage, value)
}

func TestNewCoupon_NormalizesCode(t *testing.T) {
	c := NewCoupon("  welcome10 ", CouponPercentage, 10)
	assert.Equal(t, "WELCOME10", c.Code)
	assert.True(t, c.Active)
}

func TestCoupon_IsValid(t *testing.T) {
	c := percentageCoupon(10)
	assert.True(t, c.IsValid())

	c.Active = false
	assert.False(t, c.IsValid())
}

func TestCoupon_IsValid_Expiry(t *testing.T) {
	c := percentageCoupon(10)
	past := time.Now().Add(-time.Hour)
	c.ExpiresAt = &past
	assert.False(t, c.IsValid())

	future := time.Now().Add(time.Hour)
	c.ExpiresAt = &future
	assert.True(t, c.IsValid())
}

func TestCoupon_Apply_UsageLimit(t *testing.T) {
	c := percentageCoupon(10)
	c.UsageLimit = 2

	require.NoError(t, c.Apply())
	require.NoError(t, c.Apply())
	assert.Equal(t, 2, c.UsageCount)

	assert.ErrorIs(t, c.Apply(), ErrCouponInvalid)
	assert.Equal(t, 2, c.UsageCount)
}

func TestCoupon_Revert_FlooredAtZero(t *testing.T) {
	c := percentageCoupon(10)
	require.NoError(t, c.Apply())

	c.Revert()
	assert.Equal(t, 0, c.UsageCount)

	c.Revert()
	assert.Equal(t, 0, c.UsageCount)
}

func TestCoupon_Discount_Percentage(t *testing.T) {
	c := percentageCoupon(10)
	assert.InDelta(t, 10, c.Discount(100), 1e-9)
}

func TestCoupon_Discount_FixedCappedAtAmount(t *testing.T) {
	c := NewCoupon("SAVE20", CouponFixed, 20)

	assert.InDelta(t, 10, c.Discount(10), 1e-9)
	assert.InDelta(t, 20, c.Discount(50), 1e-9)
}

func TestCoupon_Discount_BelowMinimumIsZero(t *testing.T) {
	c := percentageCoupon(10)
	c.MinimumAmount = 50

	assert.InDelta(t, 0, c.Discount(30), 1e-9)
	assert.InDelta(t, 5, c.Discount(50), 1e-9)
}

func TestCoupon_Discount_InvalidIsZero(t *testing.T) {
	c := percentageCoupon(10)
	c.Active = false

	assert.InDelta(t, 0, c.Discount(100), 1e-9)
}

func TestCoupon_Validate(t *testing.T) {
	c := percentageCoupon(10)
	assert.Empty(t, c.Validate())

	bad := &Coupon{Code: "", Type: "bogus", Value: 0, MinimumAmount: -1, UsageLimit: -1, UsageCount: -1}
	assert.Len(t, bad.Validate(), 6)

	over := NewCoupon("BIG", CouponPercentage, 150)
	assert.Contains(t, over.Validate(), "percentage coupon value cannot exceed 100")
}
