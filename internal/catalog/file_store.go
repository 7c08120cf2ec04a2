package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/Danilo019/Projeto-shopee-cart-system/internal/domain"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/storage"
)

// DefaultMaxNameLen bounds product names when the config does not say
// otherwise.
const DefaultMaxNameLen = 100

// FileStore keeps the catalog in memory and rewrites the backing JSON file
// after every mutation.
type FileStore struct {
	col        *storage.Collection[*domain.Product]
	products   map[int64]*domain.Product
	nextID     int64
	maxNameLen int
}

// Open loads the catalog from path. A missing file yields an empty catalog.
func Open(path string, maxNameLen int) (*FileStore, error) {
	if maxNameLen <= 0 {
		maxNameLen = DefaultMaxNameLen
	}
	s := &FileStore{
		col:        storage.NewCollection[*domain.Product](path),
		products:   make(map[int64]*domain.Product),
		nextID:     1,
		maxNameLen: maxNameLen,
	}
	loaded, err := s.col.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	for _, p := range loaded {
		s.products[p.ID] = p
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s, nil
}

// Len returns the number of products in the catalog.
func (s *FileStore) Len() int {
	return len(s.products)
}

// Seed inserts products only when the catalog is empty.
func (s *FileStore) Seed(products []*domain.Product) error {
	if len(s.products) > 0 {
		return nil
	}
	for _, p := range products {
		if err := s.Add(p); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}
	return nil
}

func (s *FileStore) GetProduct(id int64) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *FileStore) List() []*domain.Product {
	out := make([]*domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *FileStore) Add(p *domain.Product) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if p.ID != 0 {
		if _, exists := s.products[p.ID]; exists {
			return ErrProductExists
		}
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	} else {
		p.ID = s.nextID
		s.nextID++
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	s.products[p.ID] = p
	return s.save()
}

func (s *FileStore) Update(p *domain.Product) error {
	if _, ok := s.products[p.ID]; !ok {
		return ErrProductNotFound
	}
	if err := s.validate(p); err != nil {
		return err
	}
	p.UpdatedAt = time.Now()
	s.products[p.ID] = p
	return s.save()
}

func (s *FileStore) Remove(id int64) error {
	if _, ok := s.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(s.products, id)
	return s.save()
}

func (s *FileStore) ReduceStock(id int64, quantity int) error {
	p, ok := s.products[id]
	if !ok {
		return ErrProductNotFound
	}
	if err := p.ReduceStock(quantity); err != nil {
		return err
	}
	return s.save()
}

func (s *FileStore) IncreaseStock(id int64, quantity int) error {
	p, ok := s.products[id]
	if !ok {
		return ErrProductNotFound
	}
	if err := p.IncreaseStock(quantity); err != nil {
		return err
	}
	return s.save()
}

func (s *FileStore) validate(p *domain.Product) error {
	errs := p.Validate()
	if len(p.Name) > s.maxNameLen {
		errs = append(errs, fmt.Sprintf("product name cannot exceed %d characters", s.maxNameLen))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProduct, &domain.ValidationError{Errors: errs})
	}
	return nil
}

func (s *FileStore) save() error {
	return s.col.Save(s.List())
}
