package domain

import "time"

// Address is a shipping destination. PostalCode is an 8-digit CEP.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// Summary is the cart's financial breakdown. Every field derives from the
// one above it: product discounts come off the original subtotal, coupon
// discounts come off the subtotal, shipping is added last.
type Summary struct {
	OriginalSubtotal float64 `json:"original_subtotal"`
	ProductDiscounts float64 `json:"product_discounts"`
	Subtotal         float64 `json:"subtotal"`
	CouponDiscounts  float64 `json:"coupon_discounts"`
	ShippingCost     float64 `json:"shipping_cost"`
	Total            float64 `json:"total"`
	TotalSavings     float64 `json:"total_savings"`
}

// Cart aggregates line items, applied coupons and a shipping cost for one
// user session. It holds at most one item per product id.
type Cart struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	Items           []*CartItem `json:"items"`
	Coupons         []*Coupon   `json:"coupons"`
	ShippingAddress *Address    `json:"shipping_address,omitempty"`
	ShippingCost    float64     `json:"shipping_cost"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func NewCart(id, userID string) *Cart {
	now := time.Now()
	return &Cart{
		ID:        id,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FindItem returns the line item for productID, or nil.
func (c *Cart) FindItem(productID int64) *CartItem {
	for _, item := range c.Items {
		if item.Product.ID == productID {
			return item
		}
	}
	return nil
}

// FindCoupon returns the applied coupon with the given code, or nil.
func (c *Cart) FindCoupon(code string) *Coupon {
	code = NormalizeCouponCode(code)
	for _, cp := range c.Coupons {
		if cp.Code == code {
			return cp
		}
	}
	return nil
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalQuantity is the number of units across all line items.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// AddProduct adds quantity units of product to the cart. A product already
// in the cart is merged into its existing line through the stock-checked
// update path, so the call either fully succeeds or changes nothing.
func (c *Cart) AddProduct(product *Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if existing := c.FindItem(product.ID); existing != nil {
		if err := existing.UpdateQuantity(existing.Quantity + quantity); err != nil {
			return err
		}
		c.UpdatedAt = time.Now()
		return nil
	}
	item, err := NewCartItem(product, quantity)
	if err != nil {
		return err
	}
	c.Items = append(c.Items, item)
	c.UpdatedAt = time.Now()
	return nil
}

// RemoveProduct removes the line item for productID.
func (c *Cart) RemoveProduct(productID int64) error {
	for i, item := range c.Items {
		if item.Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrItemNotFound
}

// UpdateProductQuantity sets the quantity of an existing line item. A
// quantity of zero or less removes the item.
func (c *Cart) UpdateProductQuantity(productID int64, quantity int) error {
	if quantity <= 0 {
		return c.RemoveProduct(productID)
	}
	item := c.FindItem(productID)
	if item == nil {
		return ErrItemNotFound
	}
	if err := item.UpdateQuantity(quantity); err != nil {
		return err
	}
	c.UpdatedAt = time.Now()
	return nil
}

// ApplyCoupon attaches a coupon to the cart. It does not consume a use of
// the coupon; the caller increments usage separately once the application
// is accepted.
func (c *Cart) ApplyCoupon(coupon *Coupon) error {
	if !coupon.IsValid() {
		return ErrCouponInvalid
	}
	if c.FindCoupon(coupon.Code) != nil {
		return ErrCouponAlreadyApplied
	}
	if c.Summary().Subtotal < coupon.MinimumAmount {
		return ErrCouponMinimumNotMet
	}
	c.Coupons = append(c.Coupons, coupon)
	c.UpdatedAt = time.Now()
	return nil
}

// RemoveCoupon detaches the coupon with the given code.
func (c *Cart) RemoveCoupon(code string) error {
	code = NormalizeCouponCode(code)
	for i, cp := range c.Coupons {
		if cp.Code == code {
			c.Coupons = append(c.Coupons[:i], c.Coupons[i+1:]...)
			c.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrCouponNotApplied
}

// SetShippingCost sets the flat shipping cost for the order.
func (c *Cart) SetShippingCost(cost float64) error {
	if cost < 0 {
		return ErrNegativeShipping
	}
	c.ShippingCost = cost
	c.UpdatedAt = time.Now()
	return nil
}

// SetShippingAddress sets the destination address.
func (c *Cart) SetShippingAddress(addr *Address) {
	c.ShippingAddress = addr
	c.UpdatedAt = time.Now()
}

// Summary computes the financial breakdown. Every applied coupon discounts
// the same subtotal; coupons do not stack against a shrinking base. The
// total is floored at zero and shipping never counts as a saving.
func (c *Cart) Summary() Summary {
	var s Summary
	for _, item := range c.Items {
		s.OriginalSubtotal += item.OriginalSubtotal()
		s.ProductDiscounts += item.TotalDiscount()
	}
	s.Subtotal = s.OriginalSubtotal - s.ProductDiscounts
	for _, cp := range c.Coupons {
		s.CouponDiscounts += cp.Discount(s.Subtotal)
	}
	s.ShippingCost = c.ShippingCost
	s.Total = s.Subtotal - s.CouponDiscounts + s.ShippingCost
	if s.Total < 0 {
		s.Total = 0
	}
	s.TotalSavings = s.ProductDiscounts + s.CouponDiscounts
	return s
}

// Clear empties items and coupons. The shipping cost is deliberately kept:
// checkout clears the cart right after snapshotting the order, and a fresh
// order for the same destination reuses the estimate.
func (c *Cart) Clear() {
	c.Items = nil
	c.Coupons = nil
	c.UpdatedAt = time.Now()
}

// Validate is the pre-checkout gate. A cart is invalid when empty, when any
// line item fails its own validation, or when an applied coupon has since
// expired or been exhausted.
func (c *Cart) Validate() []string {
	var errs []string
	if c.IsEmpty() {
		return append(errs, "cart is empty")
	}
	for _, item := range c.Items {
		errs = append(errs, item.Validate()...)
	}
	for _, cp := range c.Coupons {
		if !cp.IsValid() {
			errs = append(errs, "coupon "+cp.Code+" is no longer valid")
		}
	}
	return errs
}
