package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder_SnapshotsCartState(t *testing.T) {
	cart := testCart()
	p := validProduct()
	p.DiscountPercent = 10
	require.NoError(t, cart.AddProduct(p, 2))
	require.NoError(t, cart.ApplyCoupon(NewCoupon("TEN", CouponPercentage, 10)))
	require.NoError(t, cart.SetShippingCost(15))
	cart.SetShippingAddress(&Address{City: "São Paulo", PostalCode: "01310100"})

	order := NewOrder(cart)

	assert.NotEqual(t, "", order.ID.String())
	assert.Equal(t, cart.ID, order.CartID)
	assert.Equal(t, cart.UserID, order.UserID)
	assert.Equal(t, OrderStatusConfirmed, order.Status)
	assert.Equal(t, []string{"TEN"}, order.CouponCodes)
	assert.False(t, order.ProcessedAt.IsZero())

	require.Len(t, order.Items, 1)
	assert.Equal(t, p.ID, order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.InDelta(t, 90, order.Items[0].UnitPrice, 1e-9)
	assert.InDelta(t, 180, order.Items[0].Subtotal, 1e-9)
}

func TestNewOrder_CopiesNotReferences(t *testing.T) {
	cart := testCart()
	p := validProduct()
	require.NoError(t, cart.AddProduct(p, 1))
	cart.SetShippingAddress(&Address{PostalCode: "01310100"})

	order := NewOrder(cart)

	// Later catalog and cart mutations must not rewrite history.
	p.Name = "renamed"
	p.Price = 1
	cart.ShippingAddress.PostalCode = "99999999"

	assert.Equal(t, "Wireless Headphones", order.Items[0].ProductName)
	assert.InDelta(t, 100, order.Items[0].UnitPrice, 1e-9)
	assert.Equal(t, "01310100", order.ShippingAddress.PostalCode)
}
