package catalog

import (
	"errors"

	"github.com/Danilo019/Projeto-shopee-cart-system/internal/domain"
)

// Common errors returned by the catalog
var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
	ErrInvalidProduct  = errors.New("product failed validation")
)

// Store defines the catalog operations the cart and checkout layers consume.
type Store interface {
	// GetProduct returns the live catalog entry for id. Carts hold the
	// returned pointer, so catalog mutations are visible to them.
	GetProduct(id int64) (*domain.Product, error)

	// List returns all products ordered by id.
	List() []*domain.Product

	// Add validates and inserts a new product, assigning its id.
	Add(p *domain.Product) error

	// Update validates and persists changes to an existing product.
	Update(p *domain.Product) error

	// Remove deletes a product from the catalog.
	Remove(id int64) error

	// ReduceStock commits a stock decrement for id, used by checkout.
	ReduceStock(id int64, quantity int) error

	// IncreaseStock returns stock for id, used by order reversal.
	IncreaseStock(id int64, quantity int) error
}
