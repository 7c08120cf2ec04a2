package service

import (
	"fmt"

	"github.com/Danilo019/Projeto-shopee-cart-system/internal/catalog"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/domain"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/orders"
)

// CheckoutService turns a validated cart into an order record: it commits
// the stock decrement for every line item, snapshots the cart into an
// immutable order, persists it and clears the cart.
type CheckoutService struct {
	carts   *CartService
	catalog catalog.Store
	orders  orders.Repository
}

func NewCheckoutService(carts *CartService, catalogStore catalog.Store, repo orders.Repository) *CheckoutService {
	return &CheckoutService{
		carts:   carts,
		catalog: catalogStore,
		orders:  repo,
	}
}

// Checkout processes the cart with the given id.
//
// Stock commits are per item and not rolled back when a later item fails:
// a multi-item checkout that fails halfway leaves the earlier decrements in
// place. The pre-checkout validation makes that window small, but it is an
// accepted property of the commit, not an atomic transaction.
func (s *CheckoutService) Checkout(cartID string) (*domain.Order, error) {
	cart, err := s.carts.GetCart(cartID)
	if err != nil {
		return nil, err
	}

	if errs := cart.Validate(); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	for _, item := range cart.Items {
		if err := s.catalog.ReduceStock(item.Product.ID, item.Quantity); err != nil {
			return nil, fmt.Errorf("commit stock for product %q: %w", item.Product.Name, err)
		}
	}

	order := domain.NewOrder(cart)
	if err := s.orders.Append(order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	cart.Clear()
	return order, nil
}
