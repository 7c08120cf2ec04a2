package domain

import "time"

// CartItem pairs a catalog product with a quantity. The product is held by
// reference: price, discount and stock changes on the catalog entry are
// visible through every cart that carries it.
type CartItem struct {
	Product   *Product  `json:"product"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCartItem(product *Product, quantity int) (*CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if !product.IsAvailable(quantity) {
		return nil, ErrInsufficientStock
	}
	now := time.Now()
	return &CartItem{
		Product:   product,
		Quantity:  quantity,
		AddedAt:   now,
		UpdatedAt: now,
	}, nil
}

// Subtotal is the discounted price of the line.
func (i *CartItem) Subtotal() float64 {
	return i.Product.FinalPrice() * float64(i.Quantity)
}

// OriginalSubtotal is the line price before the product discount.
func (i *CartItem) OriginalSubtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// TotalDiscount is the saving from the product discount across the line.
func (i *CartItem) TotalDiscount() float64 {
	return i.Product.DiscountAmount() * float64(i.Quantity)
}

// UpdateQuantity sets the quantity. The item is left unchanged when the new
// quantity is not positive or not covered by the product's stock. Removal on
// zero is a cart-level concern; the item itself never self-deletes.
func (i *CartItem) UpdateQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !i.Product.IsAvailable(quantity) {
		return ErrInsufficientStock
	}
	i.Quantity = quantity
	i.UpdatedAt = time.Now()
	return nil
}

func (i *CartItem) IncreaseQuantity(amount int) error {
	return i.UpdateQuantity(i.Quantity + amount)
}

func (i *CartItem) DecreaseQuantity(amount int) error {
	return i.UpdateQuantity(i.Quantity - amount)
}

// CombineWith merges another line for the same product into this one by
// summing quantities. The merge goes through the stock-checked update path,
// so it either fully succeeds or leaves both items untouched.
func (i *CartItem) CombineWith(other *CartItem) error {
	if other.Product.ID != i.Product.ID {
		return ErrProductMismatch
	}
	return i.UpdateQuantity(i.Quantity + other.Quantity)
}

// Validate reports constraint violations for the line item.
func (i *CartItem) Validate() []string {
	var errs []string
	if i.Product == nil {
		return append(errs, "cart item has no product")
	}
	if i.Quantity <= 0 {
		errs = append(errs, "cart item quantity must be positive")
	}
	if !i.Product.IsAvailable(i.Quantity) {
		errs = append(errs, "cart item quantity exceeds available stock for "+i.Product.Name)
	}
	errs = append(errs, i.Product.Validate()...)
	return errs
}
