package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
)

// OrderItem is a line item frozen at checkout time. Unlike a CartItem it
// copies the product fields instead of referencing the catalog entry, so
// later catalog changes do not rewrite history.
type OrderItem struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// Order is the immutable record produced by checkout.
type Order struct {
	ID              uuid.UUID   `json:"id"`
	CartID          string      `json:"cart_id"`
	UserID          string      `json:"user_id"`
	Items           []OrderItem `json:"items"`
	Summary         Summary     `json:"summary"`
	ShippingAddress *Address    `json:"shipping_address,omitempty"`
	CouponCodes     []string    `json:"coupon_codes,omitempty"`
	Status          OrderStatus `json:"status"`
	ProcessedAt     time.Time   `json:"processed_at"`
}

// NewOrder snapshots the cart's current items, summary and coupons into a
// confirmed order.
func NewOrder(cart *Cart) *Order {
	items := make([]OrderItem, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = OrderItem{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.Product.FinalPrice(),
			Subtotal:    item.Subtotal(),
		}
	}
	codes := make([]string, len(cart.Coupons))
	for i, cp := range cart.Coupons {
		codes[i] = cp.Code
	}
	var addr *Address
	if cart.ShippingAddress != nil {
		copied := *cart.ShippingAddress
		addr = &copied
	}
	return &Order{
		ID:              uuid.New(),
		CartID:          cart.ID,
		UserID:          cart.UserID,
		Items:           items,
		Summary:         cart.Summary(),
		ShippingAddress: addr,
		CouponCodes:     codes,
		Status:          OrderStatusConfirmed,
		ProcessedAt:     time.Now(),
	}
}
