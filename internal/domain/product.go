package domain

import (
	"fmt"
	"time"
)

type Product struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	Stock           int       `json:"stock"`
	Rating          float64   `json:"rating"`
	DiscountPercent float64   `json:"discount_percent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FinalPrice returns the unit price after the product-level discount.
// The discount is clamped to [0,100] so a corrupted value loaded from disk
// can never produce a negative price.
func (p *Product) FinalPrice() float64 {
	discount := p.DiscountPercent
	if discount < 0 {
		discount = 0
	}
	if discount > 100 {
		discount = 100
	}
	return p.Price * (1 - discount/100)
}

// DiscountAmount returns the per-unit saving from the product discount.
func (p *Product) DiscountAmount() float64 {
	return p.Price - p.FinalPrice()
}

// IsAvailable reports whether the product has at least quantity units in stock.
func (p *Product) IsAvailable(quantity int) bool {
	return p.Stock >= quantity
}

// ReduceStock decrements stock by quantity. The stock is left unchanged when
// the quantity is not positive or exceeds the current stock.
func (p *Product) ReduceStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !p.IsAvailable(quantity) {
		return ErrInsufficientStock
	}
	p.Stock -= quantity
	p.UpdatedAt = time.Now()
	return nil
}

// IncreaseStock adds quantity units back to stock. There is no upper bound.
func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	p.Stock += quantity
	p.UpdatedAt = time.Now()
	return nil
}

// Validate returns the list of constraint violations, empty when the product
// is well formed. It never mutates the product.
func (p *Product) Validate() []string {
	var errs []string
	if p.Name == "" {
		errs = append(errs, "product name is required")
	}
	if p.Price <= 0 {
		errs = append(errs, "product price must be greater than zero")
	}
	if p.Category == "" {
		errs = append(errs, "product category is required")
	}
	if p.Stock < 0 {
		errs = append(errs, "product stock cannot be negative")
	}
	if p.Rating < 0 || p.Rating > 5 {
		errs = append(errs, fmt.Sprintf("product rating must be between 0 and 5, got %.1f", p.Rating))
	}
	if p.DiscountPercent < 0 || p.DiscountPercent > 100 {
		errs = append(errs, fmt.Sprintf("product discount must be between 0 and 100, got %.1f", p.DiscountPercent))
	}
	return errs
}
