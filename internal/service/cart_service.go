package service

import (
	"errors"
	"fmt"

	"github.com/Danilo019/Projeto-shopee-cart-system/internal/catalog"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/coupon"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/domain"
	"github.com/google/uuid"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrProductInUse = errors.New("product is referenced by an open cart")
)

// CartService owns the open carts and mediates between them, the catalog
// and the coupon store. Cart items reference live catalog products, so a
// price or stock change on the catalog entry is immediately visible in
// every cart holding it.
type CartService struct {
	catalog catalog.Store
	coupons coupon.Store
	carts   map[string]*domain.Cart
	byUser  map[string]string
}

func NewCartService(catalogStore catalog.Store, couponStore coupon.Store) *CartService {
	return &CartService{
		catalog: catalogStore,
		coupons: couponStore,
		carts:   make(map[string]*domain.Cart),
		byUser:  make(map[string]string),
	}
}

// CartForUser returns the user's open cart, creating one when absent.
func (s *CartService) CartForUser(userID string) *domain.Cart {
	if id, ok := s.byUser[userID]; ok {
		return s.carts[id]
	}
	cart := domain.NewCart(uuid.New().String(), userID)
	s.carts[cart.ID] = cart
	s.byUser[userID] = cart.ID
	return cart
}

// GetCart returns the cart with the given id.
func (s *CartService) GetCart(cartID string) (*domain.Cart, error) {
	cart, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// AddProduct resolves productID against the catalog and adds quantity units
// to the cart.
func (s *CartService) AddProduct(cartID string, productID int64, quantity int) error {
	cart, err := s.GetCart(cartID)
	if err != nil {
		return err
	}
	product, err := s.catalog.GetProduct(productID)
	if err != nil {
		return err
	}
	return cart.AddProduct(product, quantity)
}

// RemoveProduct removes the line item for productID from the cart.
func (s *CartService) RemoveProduct(cartID string, productID int64) error {
	cart, err := s.GetCart(cartID)
	if err != nil {
		return err
	}
	return cart.RemoveProduct(productID)
}

// UpdateQuantity sets the quantity of an existing line item; zero removes it.
func (s *CartService) UpdateQuantity(cartID string, productID int64, quantity int) error {
	cart, err := s.GetCart(cartID)
	if err != nil {
		return err
	}
	return cart.UpdateProductQuantity(productID, quantity)
}

// ApplyCoupon resolves code in the coupon store, applies it to the cart and
// consumes one use. The cart application and the usage increment are two
// steps: when the increment fails the coupon is detached again, so the cart
// never holds a coupon whose use was not counted.
func (s *CartService) ApplyCoupon(cartID, code string) (*domain.Coupon, error) {
	cart, err := s.GetCart(cartID)
	if err != nil {
		return nil, err
	}
	cp, err := s.coupons.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if err := cart.ApplyCoupon(cp); err != nil {
		return nil, err
	}
	if err := cp.Apply(); err != nil {
		_ = cart.RemoveCoupon(cp.Code)
		return nil, err
	}
	if err := s.coupons.Persist(); err != nil {
		return nil, fmt.Errorf("persist coupon usage: %w", err)
	}
	return cp, nil
}

// RemoveCoupon detaches the coupon from the cart and returns its use.
func (s *CartService) RemoveCoupon(cartID, code string) error {
	cart, err := s.GetCart(cartID)
	if err != nil {
		return err
	}
	if err := cart.RemoveCoupon(code); err != nil {
		return err
	}
	if cp, err := s.coupons.GetByCode(code); err == nil {
		cp.Revert()
		if err := s.coupons.Persist(); err != nil {
			return fmt.Errorf("persist coupon usage: %w", err)
		}
	}
	return nil
}

// SetShipping stores the destination and the quoted cost on the cart.
func (s *CartService) SetShipping(cartID string, addr *domain.Address, cost float64) error {
	cart, err := s.GetCart(cartID)
	if err != nil {
		return err
	}
	if err := cart.SetShippingCost(cost); err != nil {
		return err
	}
	if addr != nil {
		cart.SetShippingAddress(addr)
	}
	return nil
}

// ClearCart empties the cart's items and coupons, returning the use of
// every applied coupon.
func (s *CartService) ClearCart(cartID string) error {
	cart, err := s.GetCart(cartID)
	if err != nil {
		return err
	}
	for _, cp := range cart.Coupons {
		cp.Revert()
	}
	if len(cart.Coupons) > 0 {
		if err := s.coupons.Persist(); err != nil {
			return fmt.Errorf("persist coupon usage: %w", err)
		}
	}
	cart.Clear()
	return nil
}

// ProductInUse reports whether any open cart holds a line item for
// productID.
func (s *CartService) ProductInUse(productID int64) bool {
	for _, cart := range s.carts {
		if cart.FindItem(productID) != nil {
			return true
		}
	}
	return false
}

// RemoveCatalogProduct deletes a product from the catalog, refusing while
// an open cart still references it.
func (s *CartService) RemoveCatalogProduct(productID int64) error {
	if s.ProductInUse(productID) {
		return ErrProductInUse
	}
	return s.catalog.Remove(productID)
}
