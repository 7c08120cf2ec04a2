package service

import (
	"testing"
	"time"

	"github.com/Danilo019/Projeto-shopee-cart-system/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_Checkout_EndToEnd(t *testing.T) {
	f := setup(t)
	p := f.addProduct(t, "Keyboard", 100, 10)
	cart := f.carts.CartForUser("alice")
	require.NoError(t, f.carts.AddProduct(cart.ID, p.ID, 3))

	order, err := f.checkout.Checkout(cart.ID)
	require.NoError(t, err)

	assert.Equal(t, 7, p.Stock)
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	assert.NotEqual(t, "", order.ID.String())
	assert.True(t, cart.IsEmpty())

	// The order is in persisted history.
	history := f.orders.ListByUser("alice")
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
}

func TestCheckoutService_Checkout_CartNotFound(t *testing.T) {
	f := setup(t)

	_, err := f.checkout.Checkout("nope")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCheckoutService_Checkout_EmptyCartFailsValidation(t *testing.T) {
	f := setup(t)
	cart := f.carts.CartForUser("alice")

	_, err := f.checkout.Checkout(cart.ID)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Errors, "cart is empty")
}

func TestCheckoutService_Checkout_ExpiredCouponBlocks(t *testing.T) {
	f := setup(t)
	p := f.addProduct(t, "Keyboard", 100, 10)
	f.addCoupon(t, domain.NewCoupon("TEN", domain.CouponPercentage, 10))
	cart := f.carts.CartForUser("alice")
	require.NoError(t, f.carts.AddProduct(cart.ID, p.ID, 1))

	cp, err := f.carts.ApplyCoupon(cart.ID, "TEN")
	require.NoError(t, err)
	past := time.Now().Add(-time.Minute)
	cp.ExpiresAt = &past

	_, err = f.checkout.Checkout(cart.ID)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 10, p.Stock, "no stock committed on failed validation")
	assert.False(t, cart.IsEmpty(), "cart survives a failed checkout")
}

func TestCheckoutService_Checkout_SummaryFrozenOnOrder(t *testing.T) {
	f := setup(t)
	p := f.addProduct(t, "Keyboard", 100, 10)
	p.DiscountPercent = 10
	f.addCoupon(t, domain.NewCoupon("SAVE20", domain.CouponFixed, 20))
	cart := f.carts.CartForUser("alice")
	require.NoError(t, f.carts.AddProduct(cart.ID, p.ID, 2)) // subtotal 180
	_, err := f.carts.ApplyCoupon(cart.ID, "SAVE20")
	require.NoError(t, err)
	require.NoError(t, f.carts.SetShipping(cart.ID, &domain.Address{PostalCode: "01310100"}, 10))

	order, err := f.checkout.Checkout(cart.ID)
	require.NoError(t, err)

	assert.InDelta(t, 200, order.Summary.OriginalSubtotal, 1e-9)
	assert.InDelta(t, 20, order.Summary.ProductDiscounts, 1e-9)
	assert.InDelta(t, 180, order.Summary.Subtotal, 1e-9)
	assert.InDelta(t, 20, order.Summary.CouponDiscounts, 1e-9)
	assert.InDelta(t, 170, order.Summary.Total, 1e-9)
	assert.Equal(t, []string{"SAVE20"}, order.CouponCodes)

	// Shipping cost survives the post-checkout clear.
	assert.InDelta(t, 10, cart.ShippingCost, 1e-9)
}

func TestCheckoutService_Checkout_PartialStockCommitIsNotRolledBack(t *testing.T) {
	f := setup(t)
	a := f.addProduct(t, "First", 50, 10)
	b := f.addProduct(t, "Second", 50, 10)
	cart := f.carts.CartForUser("alice")
	require.NoError(t, f.carts.AddProduct(cart.ID, a.ID, 2))
	require.NoError(t, f.carts.AddProduct(cart.ID, b.ID, 2))

	// Fail the commit for b only: validation passes, a's stock is
	// reduced, then the loop stops. The earlier decrement stays.
	broken := NewCheckoutService(f.carts, &flakyCatalog{Store: f.catalog, failID: b.ID}, f.orders)

	_, err := broken.Checkout(cart.ID)
	require.ErrorIs(t, err, errStorageBroken)

	assert.Equal(t, 8, a.Stock, "committed decrement is not rolled back")
	assert.Equal(t, 10, b.Stock)
	assert.False(t, cart.IsEmpty(), "cart survives a failed checkout")
	assert.Empty(t, f.orders.List(), "no order recorded")
}
