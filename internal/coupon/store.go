package coupon

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Danilo019/Projeto-shopee-cart-system/internal/domain"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/storage"
)

// Common errors returned by the coupon store
var (
	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponExists   = errors.New("coupon already exists")
	ErrInvalidCoupon  = errors.New("coupon failed validation")
)

// Store resolves coupon codes for the cart layer and persists usage-count
// changes.
type Store interface {
	// GetByCode looks up a coupon case-insensitively.
	GetByCode(code string) (*domain.Coupon, error)

	// List returns all coupons ordered by code.
	List() []*domain.Coupon

	// Add validates and inserts a new coupon.
	Add(c *domain.Coupon) error

	// Persist rewrites the backing file, flushing usage-count mutations
	// made through pointers handed out by GetByCode.
	Persist() error
}

// FileStore keeps coupons in memory keyed by upper-cased code and rewrites
// the backing JSON file after every mutation.
type FileStore struct {
	col     *storage.Collection[*domain.Coupon]
	coupons map[string]*domain.Coupon
}

// Open loads the coupon store from path. A missing file yields an empty
// store.
func Open(path string) (*FileStore, error) {
	s := &FileStore{
		col:     storage.NewCollection[*domain.Coupon](path),
		coupons: make(map[string]*domain.Coupon),
	}
	loaded, err := s.col.Load()
	if err != nil {
		return nil, fmt.Errorf("load coupons: %w", err)
	}
	for _, c := range loaded {
		s.coupons[domain.NormalizeCouponCode(c.Code)] = c
	}
	return s, nil
}

// Len returns the number of coupons in the store.
func (s *FileStore) Len() int {
	return len(s.coupons)
}

// Seed inserts coupons only when the store is empty.
func (s *FileStore) Seed(coupons []*domain.Coupon) error {
	if len(s.coupons) > 0 {
		return nil
	}
	for _, c := range coupons {
		if err := s.Add(c); err != nil {
			return fmt.Errorf("seed coupon %q: %w", c.Code, err)
		}
	}
	return nil
}

func (s *FileStore) GetByCode(code string) (*domain.Coupon, error) {
	c, ok := s.coupons[domain.NormalizeCouponCode(code)]
	if !ok {
		return nil, ErrCouponNotFound
	}
	return c, nil
}

func (s *FileStore) List() []*domain.Coupon {
	out := make([]*domain.Coupon, 0, len(s.coupons))
	for _, c := range s.coupons {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func (s *FileStore) Add(c *domain.Coupon) error {
	c.Code = domain.NormalizeCouponCode(c.Code)
	if errs := c.Validate(); len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCoupon, &domain.ValidationError{Errors: errs})
	}
	if _, exists := s.coupons[c.Code]; exists {
		return ErrCouponExists
	}
	s.coupons[c.Code] = c
	return s.Persist()
}

func (s *FileStore) Persist() error {
	return s.col.Save(s.List())
}
